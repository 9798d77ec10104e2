package list

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set"
)

var (
	// ErrCycle is returned by Check when a node is reachable more than once
	// from the sentinel of a list.
	ErrCycle = errors.New("list nodes form a cycle")

	// ErrStaleTail is returned by Check when the tail of a list is not one of
	// its nodes, which happens after UnlinkAfter detached the last node.
	ErrStaleTail = errors.New("list tail is not reachable from the sentinel")

	// ErrTailNotLast is returned by Check when the tail of a list has a
	// successor.
	ErrTailNotLast = errors.New("list tail is not the last node")
)

// Check validates the structure of the list, returning a non-nil error if the
// nodes reachable from the sentinel form a cycle, or if the tail of the list
// does not point at the last node (or at the sentinel when the list is empty).
//
// The method does not modify the list and can be called whether or not the
// list was created in debug mode.
//
// Complexity: O(n)
func (l *List) Check() error {
	seen := mapset.NewThreadUnsafeSet()
	last := &l.sentinel
	tailFound := l.tail == &l.sentinel

	for node := l.sentinel.next; node != nil; node = node.next {
		if !seen.Add(node) {
			return fmt.Errorf("node [%d] reached twice after %d nodes: %w", node.Value, seen.Cardinality(), ErrCycle)
		}
		if node == l.tail {
			tailFound = true
		}
		last = node
	}

	switch {
	case !tailFound:
		return fmt.Errorf("tail [%d] after %d nodes: %w", l.tail.Value, seen.Cardinality(), ErrStaleTail)
	case last != l.tail:
		if l.tail == &l.sentinel {
			return fmt.Errorf("tail is the sentinel of a list of %d nodes: %w", seen.Cardinality(), ErrTailNotLast)
		}
		return fmt.Errorf("tail [%d] is followed by [%d]: %w", l.tail.Value, l.tail.next.Value, ErrTailNotLast)
	}
	return nil
}
