package queue

import (
	"github.com/platonlukyanov/HomeAssignment7/lib/infra"
)

// Deque is a double-ended queue with O(1) insertion and removal at both
// ends. Not thread safe.
type Deque[E infra.Ordered] interface {
	Len() int64
	Empty() bool
	PushFront(v E)
	PushBack(v E)
	// PopFront removes and returns the front element, or reports an empty
	// container error.
	PopFront() (E, error)
	// PopBack removes and returns the back element, or reports an empty
	// container error.
	PopBack() (E, error)
	Front() (E, error)
	Back() (E, error)
	Clear()
}
