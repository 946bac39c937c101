package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_ForwardTraversalWraps(t *testing.T) {
	clist := NewCircularList[int]()
	clist.PushBack(1)
	clist.PushBack(2)
	clist.PushBack(3)

	it := clist.Begin()
	visited := make([]int, 0, 3)
	for i := int64(0); i < clist.Len(); i++ {
		val, err := it.Value()
		require.NoError(t, err)
		visited = append(visited, val)
		require.NoError(t, it.Next())
	}
	require.Equal(t, []int{1, 2, 3}, visited)

	// the ring wraps: after a full pass the cursor is back at the head and
	// never lands on the end sentinel
	require.True(t, it.Eq(clist.Begin()))
	require.False(t, it.Eq(clist.End()))
}

func TestIterator_EndSentinelErrors(t *testing.T) {
	clist := NewCircularList[int]()
	clist.PushBack(1)

	end := clist.End()
	_, err := end.Value()
	require.ErrorIs(t, err, ErrCircularListIterDeref)
	_, err = end.Ref()
	require.ErrorIs(t, err, ErrCircularListIterDeref)
	require.ErrorIs(t, end.Next(), ErrCircularListIterIncrement)

	// decrement of the sentinel is anchored by the head
	require.NoError(t, end.Prev())
	val, err := end.Value()
	require.NoError(t, err)
	require.Equal(t, 1, val)
}

func TestIterator_DecrementOnEmptyList(t *testing.T) {
	clist := NewCircularList[int]()
	require.ErrorIs(t, clist.End().Prev(), ErrCircularListIterDecrement)
	require.ErrorIs(t, clist.Begin().Prev(), ErrCircularListIterDecrement)
}

func TestIterator_DecrementFromEnd(t *testing.T) {
	clist := NewCircularList[int]()
	clist.PushBack(1)
	clist.PushBack(2)
	clist.PushBack(3)

	it := clist.End()
	require.NoError(t, it.Prev())
	val, _ := it.Value()
	require.Equal(t, 3, val)
	require.NoError(t, it.Prev())
	val, _ = it.Value()
	require.Equal(t, 2, val)
	require.NoError(t, it.Prev())
	val, _ = it.Value()
	require.Equal(t, 1, val)
	require.True(t, it.Eq(clist.Begin()))

	// decrement of the head wraps to the logical back
	require.NoError(t, it.Prev())
	val, _ = it.Value()
	require.Equal(t, 3, val)
}

func TestIterator_MutateThroughRef(t *testing.T) {
	clist := NewCircularList[int]()
	clist.PushBack(1)
	clist.PushBack(2)

	it := clist.Begin()
	require.NoError(t, it.Next())
	ref, err := it.Ref()
	require.NoError(t, err)
	*ref = 20
	require.Equal(t, []int{1, 20}, clist.Values())
}

func TestIterator_ValidityAcrossErase(t *testing.T) {
	clist := NewCircularList[int]()
	clist.PushBack(1)
	clist.PushBack(2)
	clist.PushBack(3)

	it := clist.Begin()
	require.NoError(t, it.Next()) // on node 2

	_, err := clist.Erase(clist.Begin()) // unlink node 1
	require.NoError(t, err)

	// only cursors on the erased node are invalidated
	val, err := it.Value()
	require.NoError(t, err)
	require.Equal(t, 2, val)
	require.NoError(t, it.Next())
	val, _ = it.Value()
	require.Equal(t, 3, val)
}

// The end sentinel resolves decrements against the head captured at iterator
// creation. Head changes afterwards are deliberately not reflected.
func TestIterator_StaleEndAnchor(t *testing.T) {
	t.Run("push front rebinds the head, stale anchor keeps the old one", func(t *testing.T) {
		clist := NewCircularList[int]()
		clist.PushBack(1)
		clist.PushBack(2)
		clist.PushBack(3)

		stale := clist.End()
		clist.PushFront(0)

		// the fresh sentinel lands on the logical back
		fresh := clist.End()
		require.NoError(t, fresh.Prev())
		val, _ := fresh.Value()
		require.Equal(t, 3, val)

		// the stale one anchors on the old head and lands before it
		require.NoError(t, stale.Prev())
		val, _ = stale.Value()
		require.Equal(t, 0, val)
	})

	t.Run("pop front detaches the anchor entirely", func(t *testing.T) {
		clist := NewCircularList[int]()
		clist.PushBack(1)
		clist.PushBack(2)

		stale := clist.End()
		_, err := clist.PopFront()
		require.NoError(t, err)

		// the anchor node left the ring; the cursor stays on the sentinel
		require.NoError(t, stale.Prev())
		_, err = stale.Value()
		require.ErrorIs(t, err, ErrCircularListIterDeref)
	})
}

func TestConstIterator_Traversal(t *testing.T) {
	clist := NewCircularList[int]()
	clist.PushBack(1)
	clist.PushBack(2)
	clist.PushBack(3)

	it := clist.CBegin()
	visited := make([]int, 0, 3)
	for i := int64(0); i < clist.Len(); i++ {
		val, err := it.Value()
		require.NoError(t, err)
		visited = append(visited, val)
		require.NoError(t, it.Next())
	}
	require.Equal(t, []int{1, 2, 3}, visited)
	require.True(t, it.Eq(clist.CBegin()))

	_, err := clist.CEnd().Value()
	require.ErrorIs(t, err, ErrCircularListIterDeref)
	require.ErrorIs(t, clist.CEnd().Next(), ErrCircularListIterIncrement)

	back := clist.CEnd()
	require.NoError(t, back.Prev())
	val, err := back.Value()
	require.NoError(t, err)
	require.Equal(t, 3, val)
}

func TestReverseIterator_Traversal(t *testing.T) {
	clist := NewCircularList[int]()
	clist.PushBack(1)
	clist.PushBack(2)
	clist.PushBack(3)

	visited := make([]int, 0, 3)
	for it := clist.Rbegin(); !it.Eq(clist.Rend()); {
		val, err := it.Value()
		require.NoError(t, err)
		visited = append(visited, val)
		require.NoError(t, it.Next())
	}
	require.Equal(t, []int{3, 2, 1}, visited)
}

func TestReverseIterator_MutateThroughRef(t *testing.T) {
	clist := NewCircularList[int]()
	clist.PushBack(1)
	clist.PushBack(2)

	rit := clist.Rbegin()
	ref, err := rit.Ref()
	require.NoError(t, err)
	*ref = 20
	require.Equal(t, []int{1, 20}, clist.Values())
}

func TestConstReverseIterator_Traversal(t *testing.T) {
	clist := NewCircularList[int]()
	clist.PushBack(1)
	clist.PushBack(2)
	clist.PushBack(3)

	visited := make([]int, 0, 3)
	for it := clist.CRbegin(); !it.Eq(clist.CRend()); {
		val, err := it.Value()
		require.NoError(t, err)
		visited = append(visited, val)
		require.NoError(t, it.Next())
	}
	require.Equal(t, []int{3, 2, 1}, visited)
}

func TestIterators_OnEmptyList(t *testing.T) {
	clist := NewCircularList[int]()
	assert.True(t, clist.Begin().Eq(clist.End()))
	assert.True(t, clist.CBegin().Eq(clist.CEnd()))
	assert.True(t, clist.Rbegin().Eq(clist.Rend()))
	assert.True(t, clist.CRbegin().Eq(clist.CRend()))

	_, err := clist.Rbegin().Value()
	require.ErrorIs(t, err, ErrCircularListIterDecrement)
}

func TestIterator_NilReceivers(t *testing.T) {
	var it *Iterator[int]
	_, err := it.Value()
	require.ErrorIs(t, err, ErrCircularListIterDeref)
	require.ErrorIs(t, it.Next(), ErrCircularListIterIncrement)
	require.ErrorIs(t, it.Prev(), ErrCircularListIterDecrement)
	require.False(t, it.Eq(&Iterator[int]{}))

	var nilIt *Iterator[int]
	require.True(t, it.Eq(nilIt))
}
