package list

import (
	"errors"
	"testing"
)

func TestNodeString(t *testing.T) {
	tests := []struct {
		scenario string
		node     *Node
		want     string
	}{
		{
			scenario: "a node without successor is rendered with a terminator",
			node:     NewNode(3),
			want:     "[3]--|",
		},

		{
			scenario: "a node with a successor is rendered with an arrow",
			node:     &Node{Value: 1, next: NewNode(2)},
			want:     "[1]-->",
		},

		{
			scenario: "negative values are rendered with their sign",
			node:     NewNode(-42),
			want:     "[-42]--|",
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			if s := test.node.String(); s != test.want {
				t.Errorf("wrong node rendering: got=%q want=%q", s, test.want)
			}
		})
	}
}

func TestNodeRelease(t *testing.T) {
	n := NewNode(7)

	if n.Released() {
		t.Fatal("a newly created node is marked as released")
	}

	n.Release()

	if !n.Released() {
		t.Error("a released node is not marked as released")
	}
	if n.Value != 0 || n.Next() != nil {
		t.Errorf("a released node still holds data: %+v", n)
	}

	assertPanic(t, ErrReleased, n.Release)
}

func TestNodePopReleases(t *testing.T) {
	l := New()
	l.Append(1)
	n := l.Front()

	if _, err := l.Pop(); err != nil {
		t.Fatal(err)
	}
	if !n.Released() {
		t.Error("popped node was not released")
	}

	err := func() (err error) {
		defer func() { err, _ = recover().(error) }()
		n.Release()
		return nil
	}()
	if !errors.Is(err, ErrReleased) {
		t.Errorf("releasing a popped node did not fail: %v", err)
	}
}
