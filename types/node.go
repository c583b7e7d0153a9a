package types

import "fmt"

// Node is a handle onto one element of a List. It refers back to the owning
// list, which holds the storage; copying a Node copies the handle only.
type Node[T any] struct {
	list *List[T]
	idx  int
	gen  uint32
}

// List returns the list that owns the node.
func (n *Node[T]) List() *List[T] {
	return n.list
}

// Valid reports whether the node is still linked into its list.
func (n *Node[T]) Valid() bool {
	if n == nil || n.list == nil || n.idx < 0 || n.idx >= len(n.list.slots) {
		return false
	}
	s := &n.list.slots[n.idx]
	return s.used && s.gen == n.gen
}

func (n *Node[T]) Item() T {
	return n.slot().item
}

func (n *Node[T]) SetItem(item T) {
	n.slot().item = item
}

func (n *Node[T]) Next() *Node[T] {
	s := n.slot()
	return n.list.handle(s.next)
}

func (n *Node[T]) Prev() *Node[T] {
	s := n.slot()
	return n.list.handle(s.prev)
}

// PushNext inserts item right after n. When n is the tail the insertion is
// delegated to the owning list.
func (n *Node[T]) PushNext(item T) *Node[T] {
	s := n.slot()
	if s.next == nilIndex {
		return n.list.PushTail(item)
	}

	l := n.list
	oldNext := s.next
	idx := l.alloc(item)
	// alloc may grow the arena, so slots are addressed by index from here on.
	l.slots[idx].prev = n.idx
	l.slots[idx].next = oldNext
	l.slots[oldNext].prev = idx
	l.slots[n.idx].next = idx
	l.size++

	return l.handle(idx)
}

// PushPrev inserts item right before n. When n is the head the insertion is
// delegated to the owning list.
func (n *Node[T]) PushPrev(item T) *Node[T] {
	s := n.slot()
	if s.prev == nilIndex {
		return n.list.PushHead(item)
	}

	l := n.list
	oldPrev := s.prev
	idx := l.alloc(item)
	l.slots[idx].next = n.idx
	l.slots[idx].prev = oldPrev
	l.slots[oldPrev].next = idx
	l.slots[n.idx].prev = idx
	l.size++

	return l.handle(idx)
}

// PopNext unlinks the node after n and returns its item. It reports false
// when n is the tail.
func (n *Node[T]) PopNext() (item T, ok bool) {
	s := n.slot()
	if s.next == nilIndex {
		return item, false
	}

	l := n.list
	victim := s.next
	after := l.slots[victim].next

	s.next = after
	if after == nilIndex {
		l.tail = n.idx
	} else {
		l.slots[after].prev = n.idx
	}
	l.size--

	return l.release(victim), true
}

// PopPrev unlinks the node before n and returns its item. It reports false
// when n is the head.
func (n *Node[T]) PopPrev() (item T, ok bool) {
	s := n.slot()
	if s.prev == nilIndex {
		return item, false
	}

	l := n.list
	victim := s.prev
	before := l.slots[victim].prev

	s.prev = before
	if before == nilIndex {
		l.head = n.idx
	} else {
		l.slots[before].next = n.idx
	}
	l.size--

	return l.release(victim), true
}

func (n *Node[T]) slot() *slot[T] {
	if !n.Valid() {
		if n == nil {
			panic(fmt.Errorf("%w: nil node", ErrStaleNode))
		}
		panic(fmt.Errorf("%w: slot %d", ErrStaleNode, n.idx))
	}
	return &n.list.slots[n.idx]
}
