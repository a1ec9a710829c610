// Package selftest exercises every operation of the stack container as a
// single runnable battery of named checks.
//
// The battery is a diagnostic aid surfaced by the check command; it is
// not part of the container's runtime contract.
package selftest

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/stax-cli/stax/stack"
)

// Check is a single named assertion over the container's behavior.
type Check struct {
	Name string
	Run  func() error
}

// Result pairs a check with its outcome; a nil Err means the check passed.
type Result struct {
	Name string
	Err  error
}

// Report is the outcome of running the full battery.
type Report struct {
	Results []Result
}

// Passed returns the number of successful checks.
func (r Report) Passed() int {
	return lo.CountBy(r.Results, func(res Result) bool { return res.Err == nil })
}

// Failed returns the number of failed checks.
func (r Report) Failed() int {
	return len(r.Results) - r.Passed()
}

// Ok reports whether every check passed.
func (r Report) Ok() bool {
	return r.Failed() == 0
}

// RunAll executes the full battery and collects per-check outcomes.
func RunAll() Report {
	checks := Checks()
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		results = append(results, Result{Name: c.Name, Err: c.Run()})
	}
	return Report{Results: results}
}

// expect turns a failed condition into a descriptive error.
func expect(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	return fmt.Errorf(format, args...)
}

// Checks returns the battery in execution order. Each check builds its
// own stacks, so checks are independent and rerunnable.
func Checks() []Check {
	return []Check{
		{"construction keeps push order", func() error {
			s := stack.New(0, 1, 2)
			if err := expect(slices.Equal(s.Items(), []int{0, 1, 2}), "items = %v, want [0 1 2]", s.Items()); err != nil {
				return err
			}
			return expect(slices.Equal(s.List(), []int{2, 1, 0}), "list = %v, want [2 1 0]", s.List())
		}},

		{"empty stack is empty and falsy", func() error {
			s := stack.New[int]()
			if err := expect(s.IsEmpty(), "IsEmpty() = false, want true"); err != nil {
				return err
			}
			return expect(!s.Bool(), "Bool() = true, want false")
		}},

		{"non-empty stack is truthy", func() error {
			s := stack.New(1)
			if err := expect(!s.IsEmpty(), "IsEmpty() = true, want false"); err != nil {
				return err
			}
			return expect(s.Bool(), "Bool() = false, want true")
		}},

		{"top of empty stack is absent", func() error {
			return expect(stack.New[int]().Top().IsAbsent(), "Top() present on empty stack")
		}},

		{"top peeks without removing", func() error {
			s := stack.New(0, 1, 2)
			top, ok := s.Top().Get()
			if err := expect(ok && top == 2, "Top() = %v, want 2", top); err != nil {
				return err
			}
			return expect(s.Len() == 3, "Len() = %d after Top, want 3", s.Len())
		}},

		{"push appends at the top", func() error {
			s := stack.New(0, 1).Push(2)
			return expect(slices.Equal(s.List(), []int{2, 1, 0}), "list = %v, want [2 1 0]", s.List())
		}},

		{"pop removes from the top", func() error {
			s := stack.New(0, 1, 2)
			item, ok := s.Pop().Get()
			if err := expect(ok && item == 2, "Pop() = %v, want 2", item); err != nil {
				return err
			}
			if err := expect(s.Len() == 2, "Len() = %d after Pop, want 2", s.Len()); err != nil {
				return err
			}
			return expect(stack.New[int]().Pop().IsAbsent(), "Pop() present on empty stack")
		}},

		{"extend appends in argument order", func() error {
			s := stack.New(2).Extend(3, 4)
			return expect(slices.Equal(s.Items(), []int{2, 3, 4}), "items = %v, want [2 3 4]", s.Items())
		}},

		{"extend with no items is a no-op", func() error {
			s := stack.New(1, 2).Extend()
			return expect(slices.Equal(s.Items(), []int{1, 2}), "items = %v, want [1 2]", s.Items())
		}},

		{"concat appends operand bottom to top", func() error {
			a := stack.New("0", "1", "2")
			b := stack.New("3")
			if _, err := a.Concat(b); err != nil {
				return err
			}
			if err := expect(slices.Equal(a.Items(), []string{"0", "1", "2", "3"}), "items = %v", a.Items()); err != nil {
				return err
			}
			return expect(slices.Equal(b.Items(), []string{"3"}), "operand mutated: %v", b.Items())
		}},

		{"concat rejects a non-stack operand", func() error {
			_, err := stack.New(1).Concat(42)
			return expect(errors.Is(err, stack.ErrNotAStack), "err = %v, want ErrNotAStack", err)
		}},

		{"repeat multiplies contents", func() error {
			s := stack.New(0, 1, 2)
			if _, err := s.Repeat(2); err != nil {
				return err
			}
			return expect(slices.Equal(s.Items(), []int{0, 1, 2, 0, 1, 2}), "items = %v", s.Items())
		}},

		{"repeat once is the identity", func() error {
			s := stack.New(0, 1, 2)
			if _, err := s.Repeat(1); err != nil {
				return err
			}
			return expect(slices.Equal(s.Items(), []int{0, 1, 2}), "items = %v, want [0 1 2]", s.Items())
		}},

		{"repeat zero empties the stack", func() error {
			s := stack.New(0, 1, 2)
			if _, err := s.Repeat(0); err != nil {
				return err
			}
			return expect(s.IsEmpty(), "stack not empty after Repeat(0): %v", s.Items())
		}},

		{"repeat rejects a negative count", func() error {
			_, err := stack.New(1).Repeat(-1)
			return expect(errors.Is(err, stack.ErrNegativeCount), "err = %v, want ErrNegativeCount", err)
		}},

		{"iteration goes top to bottom", func() error {
			s := stack.New(0, 1, 2)
			var got []int
			for item := range s.All() {
				got = append(got, item)
			}
			return expect(slices.Equal(got, []int{2, 1, 0}), "iterated %v, want [2 1 0]", got)
		}},

		{"iteration is restartable", func() error {
			s := stack.New(0, 1, 2)
			for range 2 {
				var got []int
				for item := range s.All() {
					got = append(got, item)
				}
				if err := expect(slices.Equal(got, []int{2, 1, 0}), "iterated %v, want [2 1 0]", got); err != nil {
					return err
				}
			}
			return expect(s.Len() == 3, "Len() = %d after iteration, want 3", s.Len())
		}},

		{"containment uses value equality", func() error {
			s := stack.New(2, 3, 4)
			if err := expect(s.Contains(2), "Contains(2) = false, want true"); err != nil {
				return err
			}
			return expect(!s.Contains(9), "Contains(9) = true, want false")
		}},

		{"count tallies equal elements", func() error {
			s := stack.New(2, 3, 4, 3)
			return expect(s.Count(3) == 2, "Count(3) = %d, want 2", s.Count(3))
		}},

		{"snapshots do not alias storage", func() error {
			s := stack.New(0, 1, 2)
			items := s.Items()
			items[0] = 99
			return expect(slices.Equal(s.Items(), []int{0, 1, 2}), "snapshot aliased storage: %v", s.Items())
		}},

		{"equal compares contents in order", func() error {
			if err := expect(stack.New(0, 1).Equal(stack.New(0, 1)), "equal stacks reported unequal"); err != nil {
				return err
			}
			return expect(!stack.New(0, 1).Equal(stack.New(1, 0)), "unequal stacks reported equal")
		}},
	}
}
