package list

// References:
// https://en.cppreference.com/w/cpp/container/list
// https://github.com/torvalds/linux/blob/master/include/linux/list.h
// https://github.com/liyue201/gostl
// https://github.com/chen3feng/stl4go

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/platonlukyanov/HomeAssignment7/lib/infra"
)

var _ CircularList[int] = (*circularList[int])(nil) // Type check assertion

var (
	ErrCircularListEmpty           = errors.New("[circular-list] empty list")
	ErrCircularListInvalidPosition = errors.New("[circular-list] invalid position")
	ErrCircularListIterDeref       = errors.New("[circular-list] dereference of the end iterator")
	ErrCircularListIterIncrement   = errors.New("[circular-list] increment of the end iterator")
	ErrCircularListIterDecrement   = errors.New("[circular-list] decrement without a head anchor")
	ErrCircularListCorrupted       = errors.New("[circular-list] ring structure corrupted")
)

type circularList[T infra.Ordered] struct {
	head  *ringNode[T]
	count int64
}

func NewCircularList[T infra.Ordered]() CircularList[T] {
	return &circularList[T]{}
}

func (l *circularList[T]) Len() int64 {
	return l.count
}

func (l *circularList[T]) Empty() bool {
	return l.count == 0
}

func (l *circularList[T]) Front() (*T, error) {
	if l.head == nil {
		return nil, infra.WrapErrorStack(ErrCircularListEmpty)
	}
	return &l.head.value, nil
}

func (l *circularList[T]) Back() (*T, error) {
	if l.head == nil {
		return nil, infra.WrapErrorStack(ErrCircularListEmpty)
	}
	return &l.head.prev.value, nil
}

func (l *circularList[T]) PushBack(v T) {
	node := newRingNode(v)
	if l.head == nil {
		l.head = node
	} else {
		tail := l.head.prev
		tail.next = node
		node.prev = tail
		node.next = l.head
		l.head.prev = node
	}
	l.count++
}

func (l *circularList[T]) PushFront(v T) {
	// The new back and the new front are the same ring position, only the
	// head designation differs.
	l.PushBack(v)
	l.head = l.head.prev
}

func (l *circularList[T]) PopBack() (val T, err error) {
	if l.head == nil {
		return val, infra.WrapErrorStack(ErrCircularListEmpty)
	}
	tail := l.head.prev
	val = tail.value
	if tail == l.head {
		l.head = nil
	} else {
		tail.prev.next = l.head
		l.head.prev = tail.prev
	}
	// avoid memory leaks
	tail.prev = nil
	tail.next = nil
	l.count--
	return val, nil
}

func (l *circularList[T]) PopFront() (val T, err error) {
	if l.head == nil {
		return val, infra.WrapErrorStack(ErrCircularListEmpty)
	}
	oldHead := l.head
	val = oldHead.value
	if oldHead.next == oldHead {
		l.head = nil
	} else {
		oldHead.prev.next = oldHead.next
		oldHead.next.prev = oldHead.prev
		l.head = oldHead.next
	}
	// avoid memory leaks
	oldHead.prev = nil
	oldHead.next = nil
	l.count--
	return val, nil
}

func (l *circularList[T]) Insert(pos *Iterator[T], v T) *Iterator[T] {
	if pos == nil || pos.node == nil || l.head == nil {
		l.PushBack(v)
		return &Iterator[T]{node: l.head.prev, head: l.head}
	}
	cur := pos.node
	node := newRingNode(v)
	node.next = cur
	node.prev = cur.prev
	cur.prev.next = node
	cur.prev = node
	if cur == l.head {
		l.head = node
	}
	l.count++
	return &Iterator[T]{node: node, head: l.head}
}

func (l *circularList[T]) Erase(pos *Iterator[T]) (*Iterator[T], error) {
	if l.head == nil {
		return nil, infra.WrapErrorStack(ErrCircularListEmpty)
	}
	if pos == nil || pos.node == nil {
		return nil, infra.WrapErrorStack(ErrCircularListInvalidPosition)
	}
	node := pos.node
	// The follower is resolved against the head as it was before the
	// unlink, mirroring where the erased position used to sit.
	follower := &Iterator[T]{head: l.head}
	if node.next != l.head {
		follower.node = node.next
	}
	if node.next == node {
		l.head = nil
	} else {
		node.prev.next = node.next
		node.next.prev = node.prev
		if node == l.head {
			l.head = node.next
		}
	}
	// avoid memory leaks
	node.prev = nil
	node.next = nil
	l.count--
	return follower, nil
}

func (l *circularList[T]) Clear() {
	for l.head != nil {
		_, _ = l.PopFront()
	}
}

func (l *circularList[T]) Assign(n int64, v T) {
	l.Clear()
	for i := int64(0); i < n; i++ {
		l.PushBack(v)
	}
}

func (l *circularList[T]) Swap(other CircularList[T]) {
	rhs, ok := other.(*circularList[T])
	if !ok || rhs == nil || rhs == l {
		// avoid type mismatch and self swap
		return
	}
	l.head, rhs.head = rhs.head, l.head
	l.count, rhs.count = rhs.count, l.count
}

// checkIntegrity walks the ring once and gathers every invariant violation
// it can observe: nil links, broken next/prev reciprocity, a ring that does
// not close back on the head within the declared node count.
func (l *circularList[T]) checkIntegrity() error {
	if l.head == nil {
		if l.count != 0 {
			return multierr.Append(ErrCircularListCorrupted,
				fmt.Errorf("declared %d nodes without a head", l.count))
		}
		return nil
	}

	var (
		findings  error
		traversed int64
	)
	for cur := l.head; ; {
		if cur.next == nil || cur.prev == nil {
			findings = multierr.Append(findings,
				fmt.Errorf("node %d carries a nil link", traversed))
			break
		}
		if cur.next.prev != cur {
			findings = multierr.Append(findings,
				fmt.Errorf("node %d next/prev reciprocity broken", traversed))
		}
		traversed++
		if traversed > l.count {
			findings = multierr.Append(findings,
				fmt.Errorf("ring not closed after %d declared nodes", l.count))
			break
		}
		cur = cur.next
		if cur == l.head {
			break
		}
	}
	if findings == nil && traversed != l.count {
		findings = fmt.Errorf("traversed %d nodes, declared %d", traversed, l.count)
	}
	if findings != nil {
		return multierr.Append(ErrCircularListCorrupted, findings)
	}
	return nil
}

func (l *circularList[T]) Clone() (CircularList[T], error) {
	cloned := &circularList[T]{}
	if l.head == nil && l.count == 0 {
		return cloned, nil
	}
	if err := l.checkIntegrity(); err != nil {
		return nil, infra.WrapErrorStack(err)
	}

	copied := int64(0)
	for cur := l.head; ; {
		cloned.PushBack(cur.value)
		cur = cur.next
		copied++
		if copied > l.count || (cur == l.head && copied != l.count) {
			// Never hand out a half-built list.
			cloned.Clear()
			return nil, infra.AppendErrorStack(ErrCircularListCorrupted,
				"copy traversal disagrees with the declared size")
		}
		if cur == l.head {
			break
		}
	}
	return cloned, nil
}

func (l *circularList[T]) CopyFrom(src CircularList[T]) error {
	if src == nil {
		return nil
	}
	if rhs, ok := src.(*circularList[T]); ok && rhs == l {
		// self assignment
		return nil
	}
	cloned, err := src.Clone()
	if err != nil {
		return err
	}
	l.Swap(cloned)
	return nil
}

func (l *circularList[T]) MoveFrom(src CircularList[T]) {
	rhs, ok := src.(*circularList[T])
	if !ok || rhs == nil || rhs == l {
		// avoid type mismatch and self move
		return
	}
	l.Clear()
	l.head, l.count = rhs.head, rhs.count
	rhs.head, rhs.count = nil, 0
}

func (l *circularList[T]) Equal(other CircularList[T]) bool {
	if other == nil || l.Len() != other.Len() {
		return false
	}
	if l.Empty() {
		return true
	}
	it1, it2 := l.CBegin(), other.CBegin()
	// The ring wraps around on itself, so both walks are bounded by the
	// node count instead of an end condition.
	for compared := int64(0); compared < l.Len(); compared++ {
		v1, err1 := it1.Value()
		v2, err2 := it2.Value()
		if err1 != nil || err2 != nil || v1 != v2 {
			return false
		}
		_ = it1.Next()
		_ = it2.Next()
	}
	return true
}

func (l *circularList[T]) NotEqual(other CircularList[T]) bool {
	return !l.Equal(other)
}

func (l *circularList[T]) Less(other CircularList[T]) bool {
	if other == nil {
		return false
	}
	if l.Empty() {
		return !other.Empty()
	}
	if other.Empty() {
		return false
	}
	it1, it2 := l.CBegin(), other.CBegin()
	for compared := int64(0); compared < min(l.Len(), other.Len()); compared++ {
		v1, err1 := it1.Value()
		v2, err2 := it2.Value()
		if err1 != nil || err2 != nil {
			return false
		}
		if v1 < v2 {
			return true
		}
		if v2 < v1 {
			return false
		}
		_ = it1.Next()
		_ = it2.Next()
	}
	return l.Len() < other.Len()
}

func (l *circularList[T]) Greater(other CircularList[T]) bool {
	if other == nil {
		return !l.Empty()
	}
	return other.Less(l)
}

func (l *circularList[T]) LessEqual(other CircularList[T]) bool {
	if other == nil {
		return l.Empty()
	}
	return !other.Less(l)
}

func (l *circularList[T]) GreaterEqual(other CircularList[T]) bool {
	return !l.Less(other)
}

func (l *circularList[T]) Foreach(fn func(idx int64, v *T) error) error {
	if fn == nil || l.head == nil {
		return infra.WrapErrorStack(ErrCircularListEmpty)
	}
	cur := l.head
	for idx := int64(0); idx < l.count; idx++ {
		// Capture the follower first, the callback may pop the visited node.
		next := cur.next
		if err := fn(idx, &cur.value); err != nil {
			return err
		}
		cur = next
	}
	return nil
}

func (l *circularList[T]) ReverseForeach(fn func(idx int64, v *T)) {
	if fn == nil || l.head == nil {
		return
	}
	cur := l.head.prev
	for idx := int64(0); idx < l.count; idx++ {
		prev := cur.prev
		fn(idx, &cur.value)
		cur = prev
	}
}

func (l *circularList[T]) Values() []T {
	values := make([]T, 0, l.count)
	_ = l.Foreach(func(_ int64, v *T) error {
		values = append(values, *v)
		return nil
	})
	return values
}
