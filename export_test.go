package xlist

// Verify exposes the structural check to external tests.
func (ls *List[T]) Verify() error {
	return ls.verify()
}

// Values returns the elements from head to tail and the index of the
// cursor among them, or -1 if the list is empty.
func (ls *List[T]) Values() (vals []T, cursor int) {
	cursor = -1
	for r := ls.head; !r.IsZero(); {
		if r == ls.cursor {
			cursor = len(vals)
		}

		n := ls.nodes.Node(r)
		vals = append(vals, n.Val)
		r = n.Next
	}
	return vals, cursor
}
