package scanner

import "strings"

// keywords are the multi-letter operator spellings a misspelt word is
// compared against.
var keywords = []string{"AND", "OR"}

// suggestKeyword returns the keyword word most likely meant, or "" when
// there is no close match. A word matches when its upper-cased form equals
// a keyword or differs from it by one swap of adjacent letters.
func suggestKeyword(word string) string {
	upper := strings.ToUpper(word)
	for _, kw := range keywords {
		if upper == kw || isAdjacentTransposition(upper, kw) {
			return kw
		}
	}
	return ""
}

func isAdjacentTransposition(a, b string) bool {
	if len(a) != len(b) || a == b {
		return false
	}
	i := 0
	for i < len(a) && a[i] == b[i] {
		i++
	}
	if i+1 >= len(a) || a[i] != b[i+1] || a[i+1] != b[i] {
		return false
	}
	return a[i+2:] == b[i+2:]
}
