package clause

import "strings"

// Ref is a raw reference with an optional alias.
type Ref struct {
	Name  string
	Alias string
}

// RefList is an append-ordered list of references. Duplicates are kept.
type RefList struct {
	refs []Ref
}

// Add appends a reference.
func (l *RefList) Add(name, alias string) {
	l.refs = append(l.refs, Ref{Name: name, Alias: alias})
}

// Len returns the number of references.
func (l *RefList) Len() int {
	return len(l.refs)
}

// Names returns the reference names in call order.
func (l *RefList) Names() []string {
	names := make([]string, len(l.refs))
	for i, r := range l.refs {
		names[i] = r.Name
	}
	return names
}

// Render joins the references with ", ", writing "name AS alias" when an
// alias is present.
func (l *RefList) Render() string {
	parts := make([]string, len(l.refs))
	for i, r := range l.refs {
		if r.Alias != "" {
			parts[i] = r.Name + " AS " + r.Alias
		} else {
			parts[i] = r.Name
		}
	}
	return strings.Join(parts, ", ")
}
