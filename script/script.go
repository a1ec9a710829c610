// Package script implements the application's non-interactive, programmable
// execution mode: a line-oriented command language evaluated against a stack.
//
// Commands arrive as terminal tokens, so the driven container is a
// Stack[string]; heterogeneous-looking scripts (mixed numbers and words)
// work naturally.
package script

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/stax-cli/stax/stack"
)

// ErrUnknownCommand is returned for a command name outside the language.
var ErrUnknownCommand = errors.New("unknown command")

// commands is the full language, in help order.
var commands = []string{
	"push", "extend", "pop", "top", "concat", "repeat",
	"items", "list", "len", "count", "has", "empty", "clear",
}

// Commands returns the names of all script commands.
func Commands() []string {
	return commands
}

// Complete returns the script commands fuzzy-matching a partial input,
// best match first.
func Complete(prefix string) []string {
	if prefix == "" {
		return nil
	}
	ranked := fuzzy.RankFindFold(prefix, commands)
	sort.Sort(ranked)
	return lo.Map(ranked, func(r fuzzy.Rank, _ int) string {
		return r.Target
	})
}

// Suggest returns the command closest to an unknown name, when any is
// reasonably close.
func Suggest(name string) mo.Option[string] {
	closest := lo.MinBy(commands, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	if levenshtein.Distance(name, closest) > 3 {
		return mo.None[string]()
	}
	return mo.Some(closest)
}

// errUnknown builds the unknown-command error, with a "did you mean"
// hint when a near match exists.
func errUnknown(name string) error {
	if closest, ok := Suggest(name).Get(); ok {
		return fmt.Errorf("%w %q, did you mean %q?", ErrUnknownCommand, name, closest)
	}
	return fmt.Errorf("%w %q", ErrUnknownCommand, name)
}

// Entry records one evaluated command and its textual output.
type Entry struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Result carries the transcript of an evaluation and the final stack.
type Result struct {
	Transcript []Entry
	Stack      *stack.Stack[string]
}

// Apply evaluates a single command line against s and returns its
// textual output. Mutators report the resulting stack; queries report
// their answer. Stack errors (stack.ErrNotAStack, stack.ErrNegativeCount)
// pass through wrapped and remain matchable with errors.Is.
func Apply(s *stack.Stack[string], line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	name, args := fields[0], fields[1:]

	arity := func(want string, ok bool) error {
		if ok {
			return nil
		}
		return fmt.Errorf("%s: expected %s", name, want)
	}

	switch name {
	case "push":
		if err := arity("exactly one item", len(args) == 1); err != nil {
			return "", err
		}
		return s.Push(args[0]).String(), nil

	case "extend":
		return s.Extend(args...).String(), nil

	case "pop":
		if err := arity("no arguments", len(args) == 0); err != nil {
			return "", err
		}
		return s.Pop().OrElse("none"), nil

	case "top":
		if err := arity("no arguments", len(args) == 0); err != nil {
			return "", err
		}
		return s.Top().OrElse("none"), nil

	case "concat":
		// The arguments form a second stack which is then concatenated,
		// mirroring Stack + Stack.
		got, err := s.Concat(stack.New(args...))
		if err != nil {
			return "", fmt.Errorf("concat: %w", err)
		}
		return got.String(), nil

	case "repeat":
		if err := arity("exactly one count", len(args) == 1); err != nil {
			return "", err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("repeat: invalid count %q", args[0])
		}
		got, err := s.Repeat(n)
		if err != nil {
			return "", fmt.Errorf("repeat: %w", err)
		}
		return got.String(), nil

	case "items":
		return fmt.Sprint(s.Items()), nil

	case "list":
		return fmt.Sprint(s.List()), nil

	case "len":
		return strconv.Itoa(s.Len()), nil

	case "count":
		if err := arity("exactly one item", len(args) == 1); err != nil {
			return "", err
		}
		return strconv.Itoa(s.Count(args[0])), nil

	case "has":
		if err := arity("exactly one item", len(args) == 1); err != nil {
			return "", err
		}
		return strconv.FormatBool(s.Contains(args[0])), nil

	case "empty":
		return strconv.FormatBool(s.IsEmpty()), nil

	case "clear":
		return s.Clear().String(), nil

	default:
		return "", errUnknown(name)
	}
}

// Evaluate runs a whole script, commands separated by newlines or
// semicolons, against a fresh stack. Evaluation stops at the first
// failing command.
func Evaluate(text string) (Result, error) {
	result := Result{Stack: stack.New[string]()}

	for i, line := range splitCommands(text) {
		output, err := Apply(result.Stack, line)
		if err != nil {
			return result, fmt.Errorf("command %d: %w", i+1, err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.Transcript = append(result.Transcript, Entry{Input: line, Output: output})
	}

	return result, nil
}

func splitCommands(text string) []string {
	split := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ';'
	})
	return lo.Map(split, func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
}
