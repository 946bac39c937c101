package list

import (
	"github.com/platonlukyanov/HomeAssignment7/lib/infra"
)

// CircularList is a circular doubly linked list. One node is designated as
// the head, the logical front; the head's prev link is the logical back.
// An empty list holds no ring at all instead of a permanent sentinel node.
// Not thread safe. Callers who share one list across goroutines must bring
// their own mutual exclusion around the whole container.
type CircularList[T infra.Ordered] interface {
	Len() int64
	Empty() bool
	// Front returns a mutable reference to the head value.
	Front() (*T, error)
	// Back returns a mutable reference to the logical back value.
	Back() (*T, error)
	// PushFront inserts a new node and redesignates it as the head.
	PushFront(v T)
	// PushBack inserts a new node as the new logical back.
	PushBack(v T)
	// PopFront removes the head node and returns its value. The head moves
	// to the next node, or away entirely if it was the only one.
	PopFront() (T, error)
	// PopBack removes the logical back node and returns its value.
	PopBack() (T, error)
	// Insert links a new node immediately before pos and returns an iterator
	// to it. The end sentinel or an empty list degenerates to PushBack; an
	// insertion in front of the head redesignates the head.
	Insert(pos *Iterator[T], v T) *Iterator[T]
	// Erase unlinks the node under pos and returns an iterator to the node
	// that followed it, or the end sentinel if the removed node was the
	// logical back. Only iterators referencing the removed node are
	// invalidated.
	Erase(pos *Iterator[T]) (*Iterator[T], error)
	// Assign replaces the whole content with n copies of v.
	Assign(n int64, v T)
	Clear()
	// Swap exchanges the contents of both lists in O(1). It never fails.
	Swap(other CircularList[T])
	// Clone builds an independent deep copy of the list. The source ring is
	// validated while copying; on any failure the half-built copy is torn
	// down and the error is reported instead.
	Clone() (CircularList[T], error)
	// CopyFrom replaces the content with a deep copy of src. The original
	// content survives unchanged if copying fails.
	CopyFrom(src CircularList[T]) error
	// MoveFrom steals the whole ring of src in O(1), leaving src empty.
	// Moving a list into itself is a no-op.
	MoveFrom(src CircularList[T])

	Equal(other CircularList[T]) bool
	NotEqual(other CircularList[T]) bool
	// Less orders lists lexicographically front to back; on a common prefix
	// the shorter list orders first.
	Less(other CircularList[T]) bool
	Greater(other CircularList[T]) bool
	LessEqual(other CircularList[T]) bool
	GreaterEqual(other CircularList[T]) bool

	Begin() *Iterator[T]
	End() *Iterator[T]
	CBegin() *ConstIterator[T]
	CEnd() *ConstIterator[T]
	Rbegin() *ReverseIterator[T]
	Rend() *ReverseIterator[T]
	CRbegin() *ConstReverseIterator[T]
	CRend() *ConstReverseIterator[T]

	// Foreach visits the values front to back and stops at the first error
	// reported by fn.
	Foreach(fn func(idx int64, v *T) error) error
	// ReverseForeach visits the values back to front.
	ReverseForeach(fn func(idx int64, v *T))
	// Values snapshots the content front to back.
	Values() []T
}
