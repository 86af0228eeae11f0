package go_maidenhead

import (
	"github.com/golang/geo/s2"
)

// Node is a cell of the locator hierarchy. The root covers the globe, its
// children are fields, then squares and finally subsquares, which hold the values.
type Node[T any] struct {
	key      string
	level    level
	rect     s2.Rect
	values   []*Value[T]
	children []*Node[T]
	parent   *Node[T]
}

func newNode[T any](key string, l level, lngUnit, latUnit int, parent *Node[T]) *Node[T] {
	return &Node[T]{
		key:    key,
		level:  l,
		rect:   cellBounds(l, lngUnit, latUnit).Rect(),
		parent: parent,
	}
}

// Key returns the locator prefix of the cell, empty for the root.
func (n *Node[T]) Key() string {
	return n.key
}

func (n *Node[T]) IsLeaveNode() bool {
	return n.level == levelSubsquare
}

func (n *Node[T]) ValuesCount() []int {
	result := make([]int, 0)
	for _, child := range n.children {
		result = append(result, child.ValuesCount()...)
	}
	if len(n.values) > 0 {
		result = append(result, len(n.values))
	}
	return result
}

func (n *Node[T]) GetOrCreateChild(key string, lngUnit, latUnit int) *Node[T] {
	for _, child := range n.children {
		if child.key == key {
			return child
		}
	}
	child := newNode[T](key, n.level+1, lngUnit, latUnit, n)
	n.children = append(n.children, child)
	return child
}

// Distance returns the angle between point and the closest edge of the cell,
// zero if the cell contains the point.
func (n *Node[T]) Distance(point s2.LatLng) float64 {
	return float64(n.rect.DistanceToLatLng(point))
}

func (n *Node[T]) AddChildrenToQueue(point s2.LatLng, addFunction func(interface{}, float64)) {
	for _, child := range n.children {
		addFunction(child, child.Distance(point))
	}
}

func (n *Node[T]) AddValuesToQueue(point s2.LatLng, addFunction func(interface{}, float64)) {
	for _, value := range n.values {
		addFunction(value, float64(value.coordinate.S2().Distance(point)))
	}
}

func (n *Node[T]) SetValue(value *Value[T]) {
	n.values = append(n.values, value)
}

// RemoveValue removes the value with the given key and reports whether the
// node is empty afterwards.
func (n *Node[T]) RemoveValue(key string) bool {
	foundIndex := -1
	for i := range n.values {
		if n.values[i].key == key {
			foundIndex = i
			break
		}
	}
	if foundIndex != -1 {
		n.values[foundIndex] = n.values[len(n.values)-1]
		n.values = n.values[:len(n.values)-1]
	}
	return len(n.values) == 0
}

func (n *Node[T]) RemoveChild(key string) {
	for i, child := range n.children {
		if child.key == key {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
