package script

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stax-cli/stax/stack"
)

func TestApply(t *testing.T) {
	Convey("Apply", t, func() {
		s := stack.New[string]()

		Convey("push should append and report the stack", func() {
			out, err := Apply(s, "push 1")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "Stack[1]")
		})

		Convey("extend should append items in order", func() {
			_, err := Apply(s, "extend 1 2 3")
			So(err, ShouldBeNil)
			So(s.Items(), ShouldResemble, []string{"1", "2", "3"})
		})

		Convey("pop and top should report none on an empty stack", func() {
			out, err := Apply(s, "pop")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "none")

			out, err = Apply(s, "top")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "none")
		})

		Convey("concat should build a stack from its arguments", func() {
			_, err := Apply(s, "extend 0 1")
			So(err, ShouldBeNil)

			out, err := Apply(s, "concat 2 3")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "Stack[0 1 2 3]")
		})

		Convey("repeat should pass stack errors through", func() {
			_, err := Apply(s, "push x")
			So(err, ShouldBeNil)

			_, err = Apply(s, "repeat -1")
			So(errors.Is(err, stack.ErrNegativeCount), ShouldBeTrue)

			_, err = Apply(s, "repeat two")
			So(err, ShouldNotBeNil)
		})

		Convey("queries should not mutate", func() {
			_, err := Apply(s, "extend a b a")
			So(err, ShouldBeNil)

			out, err := Apply(s, "count a")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "2")

			out, err = Apply(s, "has b")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "true")

			out, err = Apply(s, "len")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "3")
			So(s.Len(), ShouldEqual, 3)
		})

		Convey("unknown commands should carry a suggestion", func() {
			_, err := Apply(s, "psuh 1")
			So(errors.Is(err, ErrUnknownCommand), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "push")
		})

		Convey("blank input should be a no-op", func() {
			out, err := Apply(s, "   ")
			So(err, ShouldBeNil)
			So(out, ShouldBeEmpty)
		})
	})
}

func TestEvaluate(t *testing.T) {
	Convey("Evaluate", t, func() {
		Convey("Should run commands separated by semicolons or newlines", func() {
			result, err := Evaluate("push 1; push 2\nextend 3 4; list")
			So(err, ShouldBeNil)
			So(result.Stack.Items(), ShouldResemble, []string{"1", "2", "3", "4"})
			So(result.Transcript, ShouldHaveLength, 4)
			So(result.Transcript[3].Output, ShouldEqual, "[4 3 2 1]")
		})

		Convey("Should stop at the first failing command", func() {
			result, err := Evaluate("push 1; frobnicate; push 2")
			So(errors.Is(err, ErrUnknownCommand), ShouldBeTrue)
			So(result.Stack.Items(), ShouldResemble, []string{"1"})
		})

		Convey("Empty script should produce an empty stack", func() {
			result, err := Evaluate("")
			So(err, ShouldBeNil)
			So(result.Stack.IsEmpty(), ShouldBeTrue)
			So(result.Transcript, ShouldBeEmpty)
		})
	})
}

func TestSuggestAndComplete(t *testing.T) {
	Convey("Suggest", t, func() {
		So(Suggest("pussh").MustGet(), ShouldEqual, "push")
		So(Suggest("zzzzzzzzzz").IsAbsent(), ShouldBeTrue)
	})

	Convey("Complete", t, func() {
		So(Complete("pu"), ShouldContain, "push")
		So(Complete(""), ShouldBeEmpty)
	})
}

func TestJsonOutput(t *testing.T) {
	Convey("AsJson", t, func() {
		result, err := Evaluate("extend 1 2; top")
		So(err, ShouldBeNil)

		raw, err := AsJson("extend 1 2; top", result)
		So(err, ShouldBeNil)

		var out Output
		So(json.Unmarshal(raw, &out), ShouldBeNil)
		So(out.Items, ShouldResemble, []string{"1", "2"})
		So(out.List, ShouldResemble, []string{"2", "1"})
		So(out.Len, ShouldEqual, 2)
		So(out.Top, ShouldNotBeNil)
		So(*out.Top, ShouldEqual, "2")
	})

	Convey("AsJson on an empty stack", t, func() {
		result, err := Evaluate("")
		So(err, ShouldBeNil)

		raw, err := AsJson("", result)
		So(err, ShouldBeNil)

		var out Output
		So(json.Unmarshal(raw, &out), ShouldBeNil)
		So(out.Top, ShouldBeNil)
		So(out.Len, ShouldEqual, 0)
	})

	Convey("Schema", t, func() {
		raw, err := Schema()
		So(err, ShouldBeNil)
		So(string(raw), ShouldContainSubstring, "transcript")
	})
}
