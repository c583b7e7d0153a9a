package types

type entry[K comparable, V any] struct {
	node  *Node[K]
	value V
}

// OrderedMap is a map that remembers key insertion order.
type OrderedMap[K comparable, V any] struct {
	kv   map[K]*entry[K, V]
	keys *List[K]
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		kv:   make(map[K]*entry[K, V]),
		keys: New[K](),
	}
}

func (m *OrderedMap[K, V]) Get(key K) (value V, ok bool) {
	e, ok := m.kv[key]
	if ok {
		value = e.value
	}

	return
}

func (m *OrderedMap[K, V]) Set(key K, value V) bool {
	if e, alreadyExist := m.kv[key]; alreadyExist {
		e.value = value
		return false
	}

	m.kv[key] = &entry[K, V]{node: m.keys.PushTail(key), value: value}
	return true
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.kv)
}

func (m *OrderedMap[K, V]) Keys() []K {
	return m.keys.Items()
}

func (m *OrderedMap[K, V]) Delete(key K) (didDelete bool) {
	e, ok := m.kv[key]
	if !ok {
		return false
	}

	// A node is unlinked by its predecessor, or by the list when it is first.
	if prev := e.node.Prev(); prev != nil {
		prev.PopNext()
	} else {
		m.keys.PopHead()
	}
	delete(m.kv, key)

	return true
}
