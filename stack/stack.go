// Package stack implements a featureful, generic Last-In-First-Out container.
//
// The container mirrors sequence ergonomics on top of the usual stack
// operations: iteration, containment, counting, concatenation and
// repetition. Concat and Repeat mutate the receiver and return it, they
// are not value-semantics combinators.
package stack

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Failure conditions for the two partial operations. Everything else in
// this package is total, including reads on an empty stack.
var (
	// ErrNotAStack is returned by Concat when the operand is not a stack
	// of the same item type.
	ErrNotAStack = errors.New("operand is not a stack")

	// ErrNegativeCount is returned by Repeat for a negative multiplier.
	ErrNegativeCount = errors.New("repeat count is negative")
)

// Stack is an ordered collection of items where the end of the sequence is
// the top. Items must be comparable since containment, counting and
// equality are defined by ==; use Stack[any] when heterogeneous contents
// are needed.
//
// The zero value is an empty stack ready for use.
type Stack[T comparable] struct {
	elts []T
}

// New creates a stack containing items in the given order; the last
// argument becomes the top.
func New[T comparable](items ...T) *Stack[T] {
	return &Stack[T]{elts: slices.Clone(items)}
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return len(s.elts)
}

// IsEmpty reports whether the stack contains no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.elts) == 0
}

// Bool is the truthiness hook: false iff the stack is empty.
func (s *Stack[T]) Bool() bool {
	return len(s.elts) > 0
}

// Top returns the topmost item without removing it, or None when the
// stack is empty.
func (s *Stack[T]) Top() mo.Option[T] {
	if len(s.elts) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.elts[len(s.elts)-1])
}

// Pop removes and returns the topmost item, or None when the stack is
// empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	if len(s.elts) == 0 {
		return mo.None[T]()
	}
	idx := len(s.elts) - 1
	item := s.elts[idx]
	s.elts = s.elts[:idx]
	return mo.Some(item)
}

// Push appends a single item to the top and returns the stack for
// chaining.
func (s *Stack[T]) Push(item T) *Stack[T] {
	s.elts = append(s.elts, item)
	return s
}

// Extend appends items in the given order to the top and returns the
// stack. Extending with no items is a no-op.
func (s *Stack[T]) Extend(items ...T) *Stack[T] {
	s.elts = append(s.elts, items...)
	return s
}

// Concat appends the items of other, from bottom to top, onto the
// receiver. The receiver is mutated and returned; other is left
// unmodified. Any operand that is not a *Stack[T] fails with
// ErrNotAStack.
func (s *Stack[T]) Concat(other any) (*Stack[T], error) {
	o, ok := other.(*Stack[T])
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotAStack, other)
	}
	s.elts = append(s.elts, o.elts...)
	return s, nil
}

// Repeat multiplies the stack's contents by n in place: the current
// bottom-to-top sequence is appended onto itself n-1 additional times.
// n == 1 is the identity, n == 0 empties the stack, and a negative n
// fails with ErrNegativeCount.
func (s *Stack[T]) Repeat(n int) (*Stack[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if n == 0 {
		s.elts = nil
		return s, nil
	}
	base := s.elts[:len(s.elts):len(s.elts)]
	for range n - 1 {
		s.elts = append(s.elts, base...)
	}
	return s, nil
}

// All returns an iterator over the stack's items from top to bottom. The
// iterator is lazy and restartable; ranging over it does not mutate the
// stack.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.elts) - 1; i >= 0; i-- {
			if !yield(s.elts[i]) {
				return
			}
		}
	}
}

// Contains reports whether item equals any element of the stack.
func (s *Stack[T]) Contains(item T) bool {
	return lo.Contains(s.elts, item)
}

// Count returns the number of elements equal to item.
func (s *Stack[T]) Count(item T) int {
	return lo.Count(s.elts, item)
}

// Items returns a snapshot of the stack's contents from bottom to top,
// i.e. in push order. The result does not alias the stack's storage.
func (s *Stack[T]) Items() []T {
	return slices.Clone(s.elts)
}

// List returns a snapshot of the stack's contents from top to bottom,
// the reverse of Items.
func (s *Stack[T]) List() []T {
	return lo.Reverse(slices.Clone(s.elts))
}

// Equal reports whether other holds the same items in the same order.
func (s *Stack[T]) Equal(other *Stack[T]) bool {
	if other == nil {
		return false
	}
	return slices.Equal(s.elts, other.elts)
}

// Clear removes all items and returns the stack.
func (s *Stack[T]) Clear() *Stack[T] {
	s.elts = nil
	return s
}

// String renders the stack from bottom to top, e.g. Stack[0 1 2]. An
// empty stack renders as [].
func (s *Stack[T]) String() string {
	if len(s.elts) == 0 {
		return "[]"
	}
	parts := lo.Map(s.elts, func(item T, _ int) string {
		return fmt.Sprint(item)
	})
	return "Stack[" + strings.Join(parts, " ") + "]"
}
