package list

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		scenario string
		err      error
		function func(*List)
	}{
		{
			scenario: "an empty list is valid",
			function: func(l *List) {},
		},

		{
			scenario: "a list built with push and append is valid",
			function: func(l *List) {
				l.Append(2)
				l.Push(1)
				l.Append(3)
			},
		},

		{
			scenario: "unlinking the last node leaves a stale tail",
			err:      ErrStaleTail,
			function: func(l *List) {
				l.Append(1)
				l.Append(2)
				l.UnlinkAfter(l.Front())
			},
		},

		{
			scenario: "unlinking every node leaves a stale tail",
			err:      ErrStaleTail,
			function: func(l *List) {
				l.Append(1)
				l.UnlinkAfter(l.Sentinel())
			},
		},

		{
			scenario: "relinking a detached tail in the middle of the list is detected",
			err:      ErrTailNotLast,
			function: func(l *List) {
				l.Append(1)
				l.Append(2)
				l.Append(3)
				tail := l.UnlinkAfter(l.Front().Next())
				l.LinkAfter(l.Front(), tail)
			},
		},

		{
			scenario: "nodes linked back onto themselves are detected",
			err:      ErrCycle,
			function: func(l *List) {
				l.Append(1)
				l.Append(2)
				l.Back().next = l.Front()
			},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			l := New()
			test.function(l)
			if err := l.Check(); !errors.Is(err, test.err) {
				t.Errorf("wrong error checking the list: got=%v want=%v", err, test.err)
			}
		})
	}
}
