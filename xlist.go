// Package xlist provides a doubly-linked list with a built-in cursor
// that can walk the list in either direction and remove the element
// under it in constant time.
//
// Nodes are kept in an arena and linked by index rather than by
// pointer, so head, tail, cursor, and neighboring nodes can all refer
// to the same node without any of them owning it.
package xlist

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
