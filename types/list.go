package types

import (
	"errors"
	"fmt"
	"strings"
)

const nilIndex = -1

var ErrStaleNode = errors.New("node handle is stale")

type slot[T any] struct {
	item T
	next int
	prev int
	gen  uint32
	used bool
}

// List is a doubly linked list backed by a slot arena. Links are slot
// indices, released slots are recycled through a free list.
// The zero value is an empty list ready to use. Not safe for concurrent use.
type List[T any] struct {
	slots []slot[T]
	free  int // head of the free list, threaded through slot.next
	head  int
	tail  int
	size  int
	ready bool
}

func New[T any]() *List[T] {
	l := &List[T]{}
	l.init()
	return l
}

func (l *List[T]) init() {
	if l.ready {
		return
	}
	l.head = nilIndex
	l.tail = nilIndex
	l.free = nilIndex
	l.ready = true
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *List[T]) Head() *Node[T] {
	l.init()
	return l.handle(l.head)
}

func (l *List[T]) Tail() *Node[T] {
	l.init()
	return l.handle(l.tail)
}

func (l *List[T]) PushHead(item T) *Node[T] {
	l.init()
	idx := l.alloc(item)

	if l.size == 0 {
		l.head = idx
		l.tail = idx
	} else {
		l.slots[idx].next = l.head
		l.slots[l.head].prev = idx
		l.head = idx
	}
	l.size++

	return l.handle(idx)
}

func (l *List[T]) PushTail(item T) *Node[T] {
	l.init()
	idx := l.alloc(item)

	if l.size == 0 {
		l.head = idx
		l.tail = idx
	} else {
		l.slots[idx].prev = l.tail
		l.slots[l.tail].next = idx
		l.tail = idx
	}
	l.size++

	return l.handle(idx)
}

// PopHead removes the first node and returns its item.
func (l *List[T]) PopHead() (item T, ok bool) {
	l.init()
	if l.head == nilIndex {
		return item, false
	}

	idx := l.head
	l.head = l.slots[idx].next
	if l.head == nilIndex {
		l.tail = nilIndex
	} else {
		l.slots[l.head].prev = nilIndex
	}
	l.size--

	return l.release(idx), true
}

// PopTail removes the last node and returns its item.
func (l *List[T]) PopTail() (item T, ok bool) {
	l.init()
	if l.tail == nilIndex {
		return item, false
	}

	idx := l.tail
	l.tail = l.slots[idx].prev
	if l.tail == nilIndex {
		l.head = nilIndex
	} else {
		l.slots[l.tail].next = nilIndex
	}
	l.size--

	return l.release(idx), true
}

// Clear releases every node in link order. Handles taken before the call
// become stale.
func (l *List[T]) Clear() {
	l.init()
	for idx := l.head; idx != nilIndex; {
		next := l.slots[idx].next
		l.release(idx)
		idx = next
	}
	l.head = nilIndex
	l.tail = nilIndex
	l.size = 0
}

// Each calls fn for every item from head to tail until fn returns false.
func (l *List[T]) Each(fn func(T) bool) {
	l.init()
	for idx := l.head; idx != nilIndex; idx = l.slots[idx].next {
		if !fn(l.slots[idx].item) {
			return
		}
	}
}

func (l *List[T]) Items() []T {
	items := make([]T, 0, l.size)
	l.Each(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

// Reversed returns the items walking prev links from the tail.
func (l *List[T]) Reversed() []T {
	l.init()
	items := make([]T, 0, l.size)
	for idx := l.tail; idx != nilIndex; idx = l.slots[idx].prev {
		items = append(items, l.slots[idx].item)
	}
	return items
}

func (l *List[T]) String() string {
	var sb strings.Builder
	l.Each(func(item T) bool {
		fmt.Fprint(&sb, item)
		return true
	})
	return sb.String()
}

func (l *List[T]) alloc(item T) int {
	if l.free != nilIndex {
		idx := l.free
		s := &l.slots[idx]
		l.free = s.next
		s.item = item
		s.next = nilIndex
		s.prev = nilIndex
		s.used = true
		return idx
	}

	l.slots = append(l.slots, slot[T]{item: item, next: nilIndex, prev: nilIndex, used: true})
	return len(l.slots) - 1
}

// release returns the slot to the free list and invalidates its handles.
func (l *List[T]) release(idx int) T {
	var zero T
	s := &l.slots[idx]
	item := s.item

	s.item = zero
	s.prev = nilIndex
	s.next = l.free
	s.used = false
	s.gen++
	l.free = idx

	return item
}

func (l *List[T]) handle(idx int) *Node[T] {
	if idx == nilIndex {
		return nil
	}
	return &Node[T]{list: l, idx: idx, gen: l.slots[idx].gen}
}
