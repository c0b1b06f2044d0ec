package order

const (
	PriorityMin Priority = 1
	PriorityMax Priority = 5
)

// Priority is the 1..5 label shown next to an order. It never gates a
// transition, so values outside the range are kept as the backend sent them.
type Priority int

// IsKnown reports whether p is inside PriorityMin..PriorityMax.
func (p Priority) IsKnown() bool {
	return p >= PriorityMin && p <= PriorityMax
}
