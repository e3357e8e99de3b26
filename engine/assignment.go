package engine

// assignment holds one boolean per variable, indexed by variable id.
type assignment []bool

// newAssignment returns the first assignment for n variables: all true.
func newAssignment(n int) assignment {
	a := make(assignment, n)
	for i := range a {
		a[i] = true
	}
	return a
}

// next steps to the following assignment in place: the rightmost true bit is
// cleared and every bit to its right is set. It reports false, leaving a
// unchanged, once a is all false.
func (a assignment) next() bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] {
			a[i] = false
			for j := i + 1; j < len(a); j++ {
				a[j] = true
			}
			return true
		}
	}
	return false
}
