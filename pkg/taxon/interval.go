package taxon

// Interval is a nested-set (left, right) pair (spec.md §3). Ancestry
// reduces to a range check: A is an ancestor of B iff
// A.Left < B.Left && B.Right < A.Right.
type Interval struct {
	Left  int
	Right int
}

// Contains reports whether in properly contains other — i.e. other
// is a strict descendant of in under the nested-set encoding.
func (in Interval) Contains(other Interval) bool {
	return in.Left < other.Left && other.Right < in.Right
}
