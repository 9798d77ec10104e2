package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lab5/linkedlist/list"
)

func TestRun(t *testing.T) {
	want := strings.Join([]string{
		"\nList:  [1]-->[2]-->[3]--|\n\n",
		"\nList:  [97]-->[98]-->[99]-->[1]-->[2]-->[3]--|\n\n",
		"\nList:  [99]-->[1]-->[2]-->[3]--|\n\n",
		"\nList:  [100]-->[101]-->[102]-->[103]--|\n\n",
		"\nList:  [100]-->[102]-->[103]--|\n\n",
		"\nList:  [100]-->[102]--|\n\n",
		"\nList:  [102]--|\n\n",
	}, "")

	for _, debug := range []bool{false, true} {
		b := new(bytes.Buffer)

		if err := run(b, debug); err != nil {
			t.Fatalf("debug=%t: %v", debug, err)
		}
		if s := b.String(); s != want {
			t.Errorf("debug=%t: wrong output:\n got=%q\nwant=%q", debug, s, want)
		}
	}
}

func TestCheckerFailures(t *testing.T) {
	tests := []struct {
		scenario string
		function func(*checker) error
		err      error
	}{
		{
			scenario: "a length mismatch reports a failed check",
			function: func(c *checker) error { return c.length(1) },
			err:      errCheck,
		},

		{
			scenario: "popping from an empty list reports the list error",
			function: func(c *checker) error { return c.pop(1) },
			err:      list.ErrEmptyList,
		},

		{
			scenario: "unlinking after the tail reports a failed check",
			function: func(c *checker) error {
				c.list.Append(1)
				return c.unlink(c.list.Back(), 1)
			},
			err: errCheck,
		},

		{
			scenario: "unlinking an unexpected value reports a failed check",
			function: func(c *checker) error {
				c.list.Append(1)
				c.list.Append(2)
				return c.unlink(c.list.Sentinel(), 2)
			},
			err: errCheck,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			c := &checker{list: list.New(), out: new(bytes.Buffer)}
			if err := test.function(c); !errors.Is(err, test.err) {
				t.Errorf("wrong error: got=%v want=%v", err, test.err)
			}
		})
	}
}

func TestInitLogger(t *testing.T) {
	if err := initLogger("warn"); err != nil {
		t.Fatal(err)
	}
	if err := initLogger("not-a-level"); err == nil {
		t.Error("initializing the logger with an invalid level did not fail")
	}
}
