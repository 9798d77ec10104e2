package list

import (
	"fmt"
	"strconv"
)

// Node is a storage cell of a List, holding an int payload and a link to its
// successor.
//
// A node is owned by exactly one predecessor at a time: another node, or the
// sentinel of the list it was linked into. References returned by methods such
// as List.Find or List.Front do not transfer that ownership, they are only
// valid until the node is removed from the list.
type Node struct {
	Value    int
	next     *Node
	released bool
}

// NewNode allocates a node holding value and no successor.
//
// The caller owns the returned node until it is linked into a list with
// List.LinkAfter, or disposed of with Release.
func NewNode(value int) *Node {
	return &Node{Value: value}
}

// Next returns the successor of n, or nil if n is the last node of its chain.
func (n *Node) Next() *Node { return n.next }

// Released reports whether n was disposed of by a call to Release, or by the
// list that owned it.
func (n *Node) Released() bool { return n.released }

// Release disposes of a node owned by the caller, typically one that was
// returned by List.UnlinkAfter.
//
// Releasing a node which is still linked in a list, or releasing a node twice,
// is a precondition violation. Lists created in debug mode panic when they are
// asked to link a released node.
func (n *Node) Release() {
	if n.released {
		panic(fmt.Errorf("releasing node [%d]: %w", n.Value, ErrReleased))
	}
	n.dispose()
}

func (n *Node) dispose() {
	n.Value = 0
	n.next = nil
	n.released = true
}

// String renders n as its payload followed by an arrow when the node has a
// successor, or by a terminator when it is the last node of the chain:
//
//	[42]-->
//	[42]--|
func (n *Node) String() string {
	b := make([]byte, 0, 24)
	b = append(b, '[')
	b = strconv.AppendInt(b, int64(n.Value), 10)
	b = append(b, ']')
	if n.next != nil {
		b = append(b, "-->"...)
	} else {
		b = append(b, "--|"...)
	}
	return string(b)
}
