// Package list contains the implementation of a singly-linked list of int
// values, with an explicit pointer to its last node.
//
// The list supports stack-style operations at the front (Push and Pop),
// queue-style insertion at the back (Append), and link/unlink primitives which
// address nodes by position rather than by value (LinkAfter, InsertAfter and
// UnlinkAfter).
//
// A List always holds a sentinel node placed before its first element. The
// sentinel is never returned as an element, but it can be used as the anchor
// of operations that need to happen at the front of the list:
//
//	l := list.New()
//	l.Append(1)
//	l.Append(2)
//	l.InsertAfter(l.Sentinel(), 0)
//
//	for n := l.Front(); n != nil; n = n.Next() {
//		fmt.Println(n.Value)
//	}
//
// The anchors passed to the link and unlink operations must belong to the list
// they are passed to. This precondition is not verified unless the list is
// created with the Debug option. UnlinkAfter never moves the tail pointer of
// the list, which means that detaching the last node leaves Back returning the
// detached node; programs that unlink at the back of the list must account for
// it. The Check method reports this situation.
//
// Lists are not safe to use concurrently from multiple goroutines.
package list

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

var (
	// ErrEmptyList is returned when attempting to pop a value from an empty
	// list.
	ErrEmptyList = errors.New("cannot pop a value from an empty list")

	// ErrForeignAnchor is raised by lists in debug mode when the anchor of a
	// link or unlink operation is not part of the list.
	ErrForeignAnchor = errors.New("anchor node does not belong to the list")

	// ErrReleased is raised when a released node is released again, or
	// linked into a list in debug mode.
	ErrReleased = errors.New("node was already released")

	// ErrLinked is raised by lists in debug mode when linking a node which is
	// already part of the list.
	ErrLinked = errors.New("node is already linked in the list")
)

// sentinelValue is the payload of the sentinel node, it is never observed as
// an element value.
const sentinelValue = math.MinInt

// List is a singly-linked list of int values.
//
// The zero-value is not a valid list, programs must use New or Init to
// construct lists.
type List struct {
	sentinel Node
	tail     *Node
	debug    bool
}

// New constructs an empty list, using the list of options passed as arguments
// to configure it.
func New(options ...Option) *List {
	l := new(List)
	l.Init(options...)
	return l
}

// Init initializes (or re-initializes) the list. Nodes that were part of the
// list are dropped without being released.
//
// Complexity: O(1)
func (l *List) Init(options ...Option) {
	config := DefaultConfig()
	config.Apply(options...)
	l.sentinel = Node{Value: sentinelValue}
	l.tail = &l.sentinel
	l.debug = config.Debug
}

// Sentinel returns the node placed before the first element of the list.
//
// The sentinel is meant to be used as anchor to link or unlink nodes at the
// front of the list.
func (l *List) Sentinel() *Node { return &l.sentinel }

// IsEmpty returns true if the list contains no elements.
//
// Complexity: O(1)
func (l *List) IsEmpty() bool { return l.sentinel.next == nil }

// Len returns the number of elements in the list.
//
// Complexity: O(n)
func (l *List) Len() int {
	n := 0
	for node := l.sentinel.next; node != nil; node = node.next {
		n++
	}
	return n
}

// Front returns the first node of the list, or nil if the list is empty.
func (l *List) Front() *Node { return l.sentinel.next }

// Back returns the node that the list tracks as its tail, or nil if the list is
// empty.
func (l *List) Back() *Node {
	if l.tail == &l.sentinel {
		return nil
	}
	return l.tail
}

// Find returns the first node holding value, or nil if no such node exists.
//
// Complexity: O(n)
func (l *List) Find(value int) *Node {
	for node := l.sentinel.next; node != nil; node = node.next {
		if node.Value == value {
			return node
		}
	}
	return nil
}

// Push inserts value at the front of the list.
//
// Complexity: O(1)
func (l *List) Push(value int) {
	node := NewNode(value)
	if l.IsEmpty() {
		l.tail = node
	} else {
		node.next = l.sentinel.next
	}
	l.sentinel.next = node
}

// Pop removes the first element of the list and returns its value. The method
// returns ErrEmptyList if the list had no elements.
//
// Popping the last reachable element always resets the tail to the sentinel,
// even when UnlinkAfter had left the list tracking a detached node.
//
// Complexity: O(1)
func (l *List) Pop() (int, error) {
	node := l.sentinel.next
	if node == nil {
		return 0, ErrEmptyList
	}
	if node.next == nil {
		l.sentinel.next = nil
		l.tail = &l.sentinel
	} else {
		l.sentinel.next = node.next
	}
	value := node.Value
	node.dispose()
	return value, nil
}

// Append inserts value at the back of the list.
//
// Complexity: O(1)
func (l *List) Append(value int) {
	if l.IsEmpty() {
		l.Push(value)
		return
	}
	node := NewNode(value)
	l.tail.next = node
	l.tail = node
}

// Clear removes all elements from the list, releasing them one at a time.
//
// Complexity: O(n)
func (l *List) Clear() {
	for l.sentinel.next != nil {
		node := l.sentinel.next
		l.sentinel.next = node.next
		node.dispose()
	}
	l.tail = &l.sentinel
}

// LinkAfter links node right after anchor. When anchor has no successor, node
// becomes the tail of the list.
//
// The anchor must be the sentinel or one of the nodes of the list, and the
// caller must own node. Ownership of node is transferred to the list.
//
// Complexity: O(1), O(n) in debug mode
func (l *List) LinkAfter(anchor, node *Node) {
	if l.debug {
		l.mustContain("link", anchor)
		if node.released {
			panic(fmt.Errorf("linking node after [%d]: %w", anchor.Value, ErrReleased))
		}
		if node == &l.sentinel || l.contains(node) {
			panic(fmt.Errorf("linking node [%d] after [%d]: %w", node.Value, anchor.Value, ErrLinked))
		}
	}
	if anchor.next == nil {
		anchor.next = node
		node.next = nil
		l.tail = node
	} else {
		node.next = anchor.next
		anchor.next = node
	}
}

// InsertAfter creates a node holding value and links it after anchor.
//
// The anchor must be the sentinel or one of the nodes of the list.
//
// Complexity: O(1), O(n) in debug mode
func (l *List) InsertAfter(anchor *Node, value int) {
	l.LinkAfter(anchor, NewNode(value))
}

// UnlinkAfter detaches the node right after anchor and returns it, or returns
// nil if anchor has no successor.
//
// The returned node is owned by the caller, which is responsible for releasing
// it or linking it elsewhere. The tail of the list is never updated by this
// method: unlinking the last node leaves the list tracking the detached node as
// its tail.
//
// The anchor must be the sentinel or one of the nodes of the list.
//
// Complexity: O(1), O(n) in debug mode
func (l *List) UnlinkAfter(anchor *Node) *Node {
	if l.debug {
		l.mustContain("unlink", anchor)
	}
	node := anchor.next
	if node == nil {
		return nil
	}
	anchor.next = node.next
	node.next = nil
	return node
}

// Range calls f for each node of the list, from front to back. If f returns
// false, the iteration is stopped.
//
// The function must not modify the list.
func (l *List) Range(f func(*Node) bool) {
	for node := l.sentinel.next; node != nil; node = node.next {
		if !f(node) {
			break
		}
	}
}

// Values returns the values of the list, from front to back.
//
// Complexity: O(n)
func (l *List) Values() []int {
	values := make([]int, 0, 8)
	for node := l.sentinel.next; node != nil; node = node.next {
		values = append(values, node.Value)
	}
	return values
}

// String renders the nodes of the list from front to back, for example:
//
//	[1]-->[2]-->[3]--|
func (l *List) String() string {
	s := new(strings.Builder)
	for node := l.sentinel.next; node != nil; node = node.next {
		s.WriteString(node.String())
	}
	return s.String()
}

// Print writes the list to w on a line prefixed with "List:  ", preceded by a
// line break and followed by two line breaks.
func (l *List) Print(w io.Writer) error {
	_, err := io.WriteString(w, "\nList:  "+l.String()+"\n\n")
	return err
}

func (l *List) contains(node *Node) bool {
	for n := l.sentinel.next; n != nil; n = n.next {
		if n == node {
			return true
		}
	}
	return false
}

func (l *List) mustContain(op string, anchor *Node) {
	if anchor != &l.sentinel && !l.contains(anchor) {
		panic(fmt.Errorf("%s after [%d]: %w", op, anchor.Value, ErrForeignAnchor))
	}
}
