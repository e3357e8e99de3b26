package nodes

// VariableTable assigns stable small-integer ids to variable names in order
// of first appearance. One table is shared by every statement of a program.
type VariableTable struct {
	ids   map[string]int
	names []string
}

// NewVariableTable returns an empty table.
func NewVariableTable() *VariableTable {
	return &VariableTable{ids: make(map[string]int)}
}

// Intern returns the id for name, assigning the next id on first use.
func (t *VariableTable) Intern(name string) int {
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := len(t.names)
	t.ids[name] = id
	t.names = append(t.names, name)
	return id
}

// Lookup returns the id for name without assigning one.
func (t *VariableTable) Lookup(name string) (int, bool) {
	id, ok := t.ids[name]
	return id, ok
}

// Name returns the name for id.
func (t *VariableTable) Name(id int) string {
	return t.names[id]
}

// Names returns a copy of the id-ordered names.
func (t *VariableTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of distinct variables.
func (t *VariableTable) Len() int {
	return len(t.names)
}

// Program is the parser's output: one tree per successfully parsed line and
// the variable table they share.
type Program struct {
	Trees     []Node
	Variables *VariableTable
}

// NewProgram builds a Program. A nil table is replaced by an empty one.
func NewProgram(trees []Node, vars *VariableTable) *Program {
	if vars == nil {
		vars = NewVariableTable()
	}
	return &Program{Trees: trees, Variables: vars}
}
