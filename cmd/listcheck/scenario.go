package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/lab5/linkedlist/list"
	log "github.com/sjqzhang/seelog"
)

var errCheck = errors.New("check failed")

// checker accumulates the position in the sequence so that failures report
// which check did not hold.
type checker struct {
	list *list.List
	out  io.Writer
	step int
}

func (c *checker) assert(cond bool, format string, args ...interface{}) error {
	c.step++
	if !cond {
		return fmt.Errorf("check %d: %s: %w", c.step, fmt.Sprintf(format, args...), errCheck)
	}
	log.Tracef("check %d passed", c.step)
	return nil
}

func (c *checker) length(want int) error {
	n := c.list.Len()
	return c.assert(n == want, "length of %s is %d, want %d", c.list, n, want)
}

func (c *checker) pop(want int) error {
	v, err := c.list.Pop()
	if err != nil {
		return fmt.Errorf("check %d: %w", c.step+1, err)
	}
	return c.assert(v == want, "popped %d, want %d", v, want)
}

func (c *checker) unlink(anchor *list.Node, want int) error {
	n := c.list.UnlinkAfter(anchor)
	if err := c.assert(n != nil, "nothing unlinked after [%d], want %d", anchor.Value, want); err != nil {
		return err
	}
	defer n.Release()
	return c.assert(n.Value == want, "unlinked %d, want %d", n.Value, want)
}

func (c *checker) print() error {
	return c.list.Print(c.out)
}

// run performs the fixed sequence of operations on a new list, writing the
// list to w at each checkpoint.
func run(w io.Writer, debug bool) error {
	c := &checker{list: list.New(list.Debug(debug)), out: w}
	l := c.list

	log.Debugf("starting checks (debug=%t)", debug)

	steps := []func() error{
		func() error { return c.assert(l.IsEmpty(), "new list is not empty") },
		func() error { return c.length(0) },
		func() error { return c.assert(l.Find(1) == nil, "found 1 in an empty list") },
		func() error {
			l.Append(1)
			l.Append(2)
			l.Append(3)
			return c.print()
		},
		func() error { return c.assert(!l.IsEmpty(), "list is empty after appending") },
		func() error { return c.length(3) },
		func() error { return c.assert(l.Find(2) != nil, "2 not found in %s", l) },
		func() error { return c.assert(l.Find(42) == nil, "42 found in %s", l) },
		func() error {
			l.Push(99)
			l.Push(98)
			l.Push(97)
			return c.print()
		},
		func() error { return c.length(6) },
		func() error { return c.assert(l.Find(2) != nil, "2 not found in %s", l) },
		func() error { return c.assert(l.Find(99) != nil, "99 not found in %s", l) },
		func() error { return c.pop(97) },
		func() error { return c.pop(98) },
		func() error { return c.print() },
		func() error { return c.length(4) },
		func() error {
			l.Clear()
			return c.assert(l.IsEmpty(), "list is not empty after clear")
		},
		func() error {
			log.Info("link / unlink checks")
			l.LinkAfter(l.Sentinel(), list.NewNode(100))
			l.LinkAfter(l.Front(), list.NewNode(102))
			l.LinkAfter(l.Front(), list.NewNode(101))
			l.LinkAfter(l.Back(), list.NewNode(103))
			return c.print()
		},
		func() error { return c.length(4) },
		func() error {
			n := l.UnlinkAfter(l.Back())
			return c.assert(n == nil, "unlinked [%d] after the tail", valueOf(n))
		},
		func() error { return c.length(4) },
		func() error {
			if err := c.unlink(l.Front(), 101); err != nil {
				return err
			}
			return c.print()
		},
		func() error { return c.length(3) },
		func() error {
			if err := c.unlink(l.Front().Next(), 103); err != nil {
				return err
			}
			return c.print()
		},
		func() error { return c.length(2) },
		func() error {
			err := l.Check()
			return c.assert(errors.Is(err, list.ErrStaleTail), "checking %s after unlinking its tail: %v", l, err)
		},
		func() error {
			if err := c.unlink(l.Sentinel(), 100); err != nil {
				return err
			}
			return c.print()
		},
		func() error { return c.length(1) },
		func() error {
			l.Clear()
			return c.assert(l.IsEmpty(), "list is not empty after clear")
		},
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func valueOf(n *list.Node) int {
	if n == nil {
		return 0
	}
	return n.Value
}
