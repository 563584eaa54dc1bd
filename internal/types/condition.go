package types

// Predicate is one entry of a WHERE, HAVING or ON list. An entry is either a
// block marker or a comparison. Connector is recorded for every entry but
// only rendered when the entry is neither first in its list nor directly
// after an opening marker.
type Predicate struct {
	Marker    Marker
	Connector Connector
	Left      string
	Operator  Operator
	// Right holds the raw column reference when Value is nil.
	Right string
	Value *Value
}

// IsComparison reports whether p compares two operands rather than marking
// a block boundary.
func (p Predicate) IsComparison() bool {
	return p.Marker == MarkerNone
}
