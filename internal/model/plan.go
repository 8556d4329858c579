package model

// Plan is a declared session loaded from a plan file. Entries keep the order
// in which they were declared.
type Plan struct {
	Name       string
	Source     Path
	Requires   []Path
	EnsureDirs []Path
	Notes      []string
	Entries    []Entry
}
