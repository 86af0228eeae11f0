package go_maidenhead

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/oleiade/lane/v2"
)

// Index stores values under the subsquare they are located in and finds the
// values closest to a position.
type Index[T any] struct {
	sync.RWMutex
	root   *Node[T]
	lookup map[string]*Node[T]
}

func NewIndex[T any]() *Index[T] {
	return &Index[T]{
		root:   newNode[T]("", levelGlobe, 0, 0, nil),
		lookup: make(map[string]*Node[T]),
	}
}

// AddValue adds a value at the given position. An existing value with the same
// id is replaced. The position must pass the same checks as ToGridLocator.
func (a *Index[T]) AddValue(id string, value T, lat float64, lng float64) error {
	c, err := validateCoordinate(Coordinate{Lat: lat, Lng: lng})
	if err != nil {
		return err
	}
	a.Lock()
	defer a.Unlock()
	a.add(id, value, c)
	return nil
}

// AddValueAt adds a value at the center of the given locator.
func (a *Index[T]) AddValueAt(id string, value T, locator string) error {
	c, err := Center(locator)
	if err != nil {
		return err
	}
	a.Lock()
	defer a.Unlock()
	a.add(id, value, c)
	return nil
}

// UpsertValue updates a value in the index or inserts it if it does not exist.
func (a *Index[T]) UpsertValue(id string, value T, lat float64, lng float64) error {
	c, err := validateCoordinate(Coordinate{Lat: lat, Lng: lng})
	if err != nil {
		return err
	}
	a.Lock()
	defer a.Unlock()
	// If the value stays in the same subsquare, it is enough to update it in place.
	if node, ok := a.lookup[id]; ok && node.key == encodeCoordinate(c) {
		for _, v := range node.values {
			if v.key == id {
				v.value = value
				v.coordinate = c
			}
		}
		return nil
	}
	a.add(id, value, c)
	return nil
}

func (a *Index[T]) add(id string, value T, c Coordinate) {
	a.remove(id)
	lngUnit, latUnit := lngAxis.unit(c.Lng), latAxis.unit(c.Lat)
	locator := encodeUnits(lngUnit, latUnit)
	node := a.root
	// Building the tree-path, from the field down to the subsquare.
	for l := levelField; l <= levelSubsquare; l++ {
		node = node.GetOrCreateChild(locator[:2*l], lngUnit, latUnit)
	}
	node.SetValue(&Value[T]{key: id, value: value, coordinate: c, locator: locator})
	a.lookup[id] = node
}

// RemoveValue removes a value from the index.
// The function will return false if the value was not found and true if the value
// was removed successfully.
func (a *Index[T]) RemoveValue(id string) bool {
	a.Lock()
	defer a.Unlock()
	return a.remove(id)
}

func (a *Index[T]) remove(id string) bool {
	node, ok := a.lookup[id]
	if !ok {
		return false
	}
	isEmptyNode := node.RemoveValue(id)
	// Drop cells that became empty, up to the first ancestor which still has children.
	if isEmptyNode {
		for node.parent != nil {
			parentNode := node.parent
			parentNode.RemoveChild(node.key)
			if len(parentNode.children) > 0 {
				break
			}
			node = parentNode
		}
	}
	delete(a.lookup, id)
	return true
}

// HasValue checks if a value exists in the index.
func (a *Index[T]) HasValue(id string) bool {
	a.RLock()
	defer a.RUnlock()
	_, ok := a.lookup[id]
	return ok
}

func (a *Index[T]) Len() int {
	a.RLock()
	defer a.RUnlock()
	return len(a.lookup)
}

// Search calls callback for the stored values ordered by their distance to the
// given position, closest first. The search stops when the callback returns true,
// the context is canceled or all values have been visited.
// The index is read locked during the search, the callback must not modify it.
func (a *Index[T]) Search(ctx context.Context, lat float64, lng float64, callback func(*Value[T]) bool) {
	point := Coordinate{Lat: lat, Lng: lng}.S2()
	// The distance of a cell is a lower bound of the distances of all values
	// inside it, so popping in priority order yields the values in exact order.
	priorityQueue := lane.NewMinPriorityQueue[interface{}, float64]()
	priorityQueue.Push(a.root, 0)

	a.RLock()
	defer a.RUnlock()
	for {
		if ctx.Err() != nil {
			return
		}
		poppedNode, _, ok := priorityQueue.Pop()
		if !ok {
			return
		}
		switch node := poppedNode.(type) {
		case *Node[T]:
			if node.IsLeaveNode() {
				node.AddValuesToQueue(point, priorityQueue.Push)
			} else {
				node.AddChildrenToQueue(point, priorityQueue.Push)
			}
		case *Value[T]:
			if callback(node) {
				return
			}
		}
	}
}

// Stats summarises how the values are spread over the subsquares.
func (a *Index[T]) Stats() IndexStats {
	a.RLock()
	valuesCount := a.root.ValuesCount()
	a.RUnlock()
	stats := IndexStats{}
	for _, value := range valuesCount {
		if value > stats.MaxValuesPerLeave {
			stats.MaxValuesPerLeave = value
		}
		stats.ValueCount += value
	}
	stats.LeaveCount = len(valuesCount)
	if stats.LeaveCount > 0 {
		stats.AVGValuesPerLeave = float64(stats.ValueCount) / float64(stats.LeaveCount)
	}
	return stats
}

type IndexStats struct {
	ValueCount        int
	MaxValuesPerLeave int
	AVGValuesPerLeave float64
	LeaveCount        int
}

func (receiver IndexStats) String() string {
	builder := &strings.Builder{}
	fmt.Fprintf(builder, "Index Stats: \n")
	fmt.Fprintf(builder, "Count: %d\n", receiver.ValueCount)
	fmt.Fprintf(builder, "Max ValuesPerLeave: %d\n", receiver.MaxValuesPerLeave)
	fmt.Fprintf(builder, "AVG ValuesPerLeave: %f\n", receiver.AVGValuesPerLeave)
	fmt.Fprintf(builder, "Leave Count: %d\n", receiver.LeaveCount)
	return builder.String()
}
