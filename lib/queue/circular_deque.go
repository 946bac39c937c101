package queue

import (
	"github.com/platonlukyanov/HomeAssignment7/lib/infra"
	"github.com/platonlukyanov/HomeAssignment7/lib/list"
)

var _ Deque[int] = (*circularDeque[int])(nil) // Type check assertion

// circularDeque rides on the circular doubly linked list. Both ends of the
// ring are one hop away from the head, so every deque operation stays O(1).
type circularDeque[E infra.Ordered] struct {
	ring list.CircularList[E]
}

func NewCircularDeque[E infra.Ordered]() Deque[E] {
	return &circularDeque[E]{
		ring: list.NewCircularList[E](),
	}
}

func (dq *circularDeque[E]) Len() int64 {
	return dq.ring.Len()
}

func (dq *circularDeque[E]) Empty() bool {
	return dq.ring.Empty()
}

func (dq *circularDeque[E]) PushFront(v E) {
	dq.ring.PushFront(v)
}

func (dq *circularDeque[E]) PushBack(v E) {
	dq.ring.PushBack(v)
}

func (dq *circularDeque[E]) PopFront() (E, error) {
	return dq.ring.PopFront()
}

func (dq *circularDeque[E]) PopBack() (E, error) {
	return dq.ring.PopBack()
}

func (dq *circularDeque[E]) Front() (val E, err error) {
	ref, err := dq.ring.Front()
	if err != nil {
		return val, err
	}
	return *ref, nil
}

func (dq *circularDeque[E]) Back() (val E, err error) {
	ref, err := dq.ring.Back()
	if err != nil {
		return val, err
	}
	return *ref, nil
}

func (dq *circularDeque[E]) Clear() {
	dq.ring.Clear()
}
