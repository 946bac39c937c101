package list

import (
	"github.com/platonlukyanov/HomeAssignment7/lib/infra"
)

// ringNode is one link of the ring. A solitary node links to itself in both
// directions, which keeps the ring invariant without a dedicated sentinel
// node. The value may be a small size type.
// It should be placed at the end of the struct to avoid taking too much padding.
type ringNode[T infra.Ordered] struct {
	prev, next *ringNode[T]
	value      T
}

func newRingNode[T infra.Ordered](v T) *ringNode[T] {
	n := &ringNode[T]{
		value: v,
	}
	n.prev = n
	n.next = n
	return n
}
