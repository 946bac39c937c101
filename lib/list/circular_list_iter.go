package list

import (
	"github.com/platonlukyanov/HomeAssignment7/lib/infra"
)

// Iterator is a bidirectional cursor over the ring. A nil current node marks
// the end sentinel, one past the logical back.
//
// The head anchor is captured when the iterator is created and is the only
// way to resolve a decrement from the sentinel. A mutation that changes the
// head designation afterwards (PopFront, PushFront, Erase of the head) is
// not reflected in cursors handed out earlier: their sentinel keeps
// resolving against the old head. Known subtlety, kept deliberately.
type Iterator[T infra.Ordered] struct {
	node *ringNode[T]
	head *ringNode[T]
}

// Ref returns a mutable reference to the value under the cursor.
func (it *Iterator[T]) Ref() (*T, error) {
	if it == nil || it.node == nil {
		return nil, infra.WrapErrorStack(ErrCircularListIterDeref)
	}
	return &it.node.value, nil
}

func (it *Iterator[T]) Value() (val T, err error) {
	ref, err := it.Ref()
	if err != nil {
		return val, err
	}
	return *ref, nil
}

// Next advances along the next links. The ring wraps around on itself, so a
// cursor never runs onto the end sentinel; only incrementing the sentinel
// itself fails.
func (it *Iterator[T]) Next() error {
	if it == nil || it.node == nil {
		return infra.WrapErrorStack(ErrCircularListIterIncrement)
	}
	it.node = it.node.next
	return nil
}

// Prev steps back along the prev links. From the end sentinel it lands on
// the logical back of the anchored ring.
func (it *Iterator[T]) Prev() error {
	if it == nil || it.head == nil {
		return infra.WrapErrorStack(ErrCircularListIterDecrement)
	}
	if it.node == nil {
		it.node = it.head.prev
	} else {
		it.node = it.node.prev
	}
	return nil
}

// Eq reports whether both cursors sit on the same node. Two end sentinels
// compare equal regardless of their anchors.
func (it *Iterator[T]) Eq(other *Iterator[T]) bool {
	if it == nil || other == nil {
		return it == nil && other == nil
	}
	return it.node == other.node
}

// ConstIterator is the read-only flavor of Iterator. Traversal is shared
// with the mutable cursor; only the mutable dereference is withheld.
type ConstIterator[T infra.Ordered] struct {
	base Iterator[T]
}

func (it *ConstIterator[T]) Value() (val T, err error) {
	if it == nil {
		return val, infra.WrapErrorStack(ErrCircularListIterDeref)
	}
	return it.base.Value()
}

func (it *ConstIterator[T]) Next() error {
	if it == nil {
		return infra.WrapErrorStack(ErrCircularListIterIncrement)
	}
	return it.base.Next()
}

func (it *ConstIterator[T]) Prev() error {
	if it == nil {
		return infra.WrapErrorStack(ErrCircularListIterDecrement)
	}
	return it.base.Prev()
}

func (it *ConstIterator[T]) Eq(other *ConstIterator[T]) bool {
	if it == nil || other == nil {
		return it == nil && other == nil
	}
	return it.base.Eq(&other.base)
}

// ReverseIterator adapts a forward cursor into a back-to-front walk: it
// dereferences one position before its base, so reverse-begin wraps the
// forward end and reverse-end wraps the forward begin.
type ReverseIterator[T infra.Ordered] struct {
	base Iterator[T]
}

func (it *ReverseIterator[T]) Ref() (*T, error) {
	if it == nil {
		return nil, infra.WrapErrorStack(ErrCircularListIterDeref)
	}
	probe := it.base
	if err := probe.Prev(); err != nil {
		return nil, err
	}
	return probe.Ref()
}

func (it *ReverseIterator[T]) Value() (val T, err error) {
	ref, err := it.Ref()
	if err != nil {
		return val, err
	}
	return *ref, nil
}

func (it *ReverseIterator[T]) Next() error {
	if it == nil {
		return infra.WrapErrorStack(ErrCircularListIterIncrement)
	}
	return it.base.Prev()
}

func (it *ReverseIterator[T]) Prev() error {
	if it == nil {
		return infra.WrapErrorStack(ErrCircularListIterDecrement)
	}
	return it.base.Next()
}

func (it *ReverseIterator[T]) Eq(other *ReverseIterator[T]) bool {
	if it == nil || other == nil {
		return it == nil && other == nil
	}
	return it.base.Eq(&other.base)
}

// ConstReverseIterator is the read-only flavor of ReverseIterator.
type ConstReverseIterator[T infra.Ordered] struct {
	base ReverseIterator[T]
}

func (it *ConstReverseIterator[T]) Value() (val T, err error) {
	if it == nil {
		return val, infra.WrapErrorStack(ErrCircularListIterDeref)
	}
	return it.base.Value()
}

func (it *ConstReverseIterator[T]) Next() error {
	if it == nil {
		return infra.WrapErrorStack(ErrCircularListIterIncrement)
	}
	return it.base.Next()
}

func (it *ConstReverseIterator[T]) Prev() error {
	if it == nil {
		return infra.WrapErrorStack(ErrCircularListIterDecrement)
	}
	return it.base.Prev()
}

func (it *ConstReverseIterator[T]) Eq(other *ConstReverseIterator[T]) bool {
	if it == nil || other == nil {
		return it == nil && other == nil
	}
	return it.base.Eq(&other.base)
}

func (l *circularList[T]) Begin() *Iterator[T] {
	return &Iterator[T]{node: l.head, head: l.head}
}

func (l *circularList[T]) End() *Iterator[T] {
	return &Iterator[T]{head: l.head}
}

func (l *circularList[T]) CBegin() *ConstIterator[T] {
	return &ConstIterator[T]{base: Iterator[T]{node: l.head, head: l.head}}
}

func (l *circularList[T]) CEnd() *ConstIterator[T] {
	return &ConstIterator[T]{base: Iterator[T]{head: l.head}}
}

func (l *circularList[T]) Rbegin() *ReverseIterator[T] {
	return &ReverseIterator[T]{base: Iterator[T]{head: l.head}}
}

func (l *circularList[T]) Rend() *ReverseIterator[T] {
	return &ReverseIterator[T]{base: Iterator[T]{node: l.head, head: l.head}}
}

func (l *circularList[T]) CRbegin() *ConstReverseIterator[T] {
	return &ConstReverseIterator[T]{base: ReverseIterator[T]{base: Iterator[T]{head: l.head}}}
}

func (l *circularList[T]) CRend() *ConstReverseIterator[T] {
	return &ConstReverseIterator[T]{base: ReverseIterator[T]{base: Iterator[T]{node: l.head, head: l.head}}}
}
