package types

// Cursor is a movable position inside a List. Moving it never allocates or
// frees list storage.
type Cursor[T any] struct {
	current Node[T]
}

func NewCursor[T any](node *Node[T]) *Cursor[T] {
	return &Cursor[T]{current: *node}
}

// Node returns a handle to the addressed node.
func (c *Cursor[T]) Node() *Node[T] {
	n := c.current
	return &n
}

func (c *Cursor[T]) List() *List[T] {
	return c.current.list
}

// MoveNext advances to the next node. At the tail it reports false and
// stays in place.
func (c *Cursor[T]) MoveNext() bool {
	next := c.current.Next()
	if next == nil {
		return false
	}
	c.current = *next
	return true
}

// MovePrev steps back to the previous node. At the head it reports false
// and stays in place.
func (c *Cursor[T]) MovePrev() bool {
	prev := c.current.Prev()
	if prev == nil {
		return false
	}
	c.current = *prev
	return true
}

// Seek moves forward steps times. It stops at the tail and reports whether
// all steps were taken.
func (c *Cursor[T]) Seek(steps int) bool {
	for ; steps > 0; steps-- {
		if !c.MoveNext() {
			return false
		}
	}
	return true
}

func (c *Cursor[T]) Item() T {
	return c.current.Item()
}

func (c *Cursor[T]) SetItem(item T) {
	c.current.SetItem(item)
}

func (c *Cursor[T]) PushNext(item T) *Node[T] {
	return c.current.PushNext(item)
}

func (c *Cursor[T]) PushPrev(item T) *Node[T] {
	return c.current.PushPrev(item)
}

func (c *Cursor[T]) PopNext() (T, bool) {
	return c.current.PopNext()
}

func (c *Cursor[T]) PopPrev() (T, bool) {
	return c.current.PopPrev()
}

// String renders the whole owning list, not only the addressed node.
func (c *Cursor[T]) String() string {
	return c.current.list.String()
}
