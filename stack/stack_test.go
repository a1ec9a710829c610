package stack

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConstruction(t *testing.T) {
	Convey("New", t, func() {
		Convey("Should keep argument order, last on top", func() {
			s := New(0, 1, 2)
			So(s.Items(), ShouldResemble, []int{0, 1, 2})
			So(s.List(), ShouldResemble, []int{2, 1, 0})
			So(s.Top().MustGet(), ShouldEqual, 2)
		})
		Convey("Should allow zero items", func() {
			s := New[int]()
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
		})
		Convey("Should not alias the argument slice", func() {
			items := []string{"a", "b"}
			s := New(items...)
			items[0] = "mutated"
			So(s.Items(), ShouldResemble, []string{"a", "b"})
		})
		Convey("Zero value should be usable", func() {
			var s Stack[int]
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Push(1).Top().MustGet(), ShouldEqual, 1)
		})
	})
}

func TestEmptinessAndTruthiness(t *testing.T) {
	Convey("IsEmpty/Bool", t, func() {
		So(New[int]().IsEmpty(), ShouldBeTrue)
		So(New[int]().Bool(), ShouldBeFalse)

		s := New(1)
		So(s.IsEmpty(), ShouldBeFalse)
		So(s.Bool(), ShouldBeTrue)

		s.Pop()
		So(s.Bool(), ShouldBeFalse)
	})
}

func TestTopAndPop(t *testing.T) {
	Convey("Top", t, func() {
		Convey("Should be absent on an empty stack", func() {
			So(New[int]().Top().IsAbsent(), ShouldBeTrue)
		})
		Convey("Should peek without removing", func() {
			s := New(0, 1, 2)
			So(s.Top().MustGet(), ShouldEqual, 2)
			So(s.Len(), ShouldEqual, 3)
		})
	})

	Convey("Pop", t, func() {
		Convey("Should remove from the top", func() {
			s := New("a", "b")
			So(s.Pop().MustGet(), ShouldEqual, "b")
			So(s.Pop().MustGet(), ShouldEqual, "a")
			So(s.Pop().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestPushAndExtend(t *testing.T) {
	Convey("Push", t, func() {
		Convey("Should append at the top and chain", func() {
			s := New(0, 1).Push(2)
			So(s.List(), ShouldResemble, []int{2, 1, 0})
		})
	})

	Convey("Extend", t, func() {
		Convey("Should append items in order", func() {
			s := New(2).Extend(3, 4)
			So(s.Items(), ShouldResemble, []int{2, 3, 4})
		})
		Convey("Should be a no-op for zero items", func() {
			s := New(1, 2)
			So(s.Extend().Items(), ShouldResemble, []int{1, 2})
		})
	})
}

func TestConcat(t *testing.T) {
	Convey("Concat", t, func() {
		Convey("Should append the operand bottom to top, mutating the receiver", func() {
			a := New("0", "1", "2")
			b := New("3")

			got, err := a.Concat(b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, a)
			So(a.Items(), ShouldResemble, []string{"0", "1", "2", "3"})
			So(b.Items(), ShouldResemble, []string{"3"})
		})
		Convey("Should reject a non-stack operand", func() {
			_, err := New(1).Concat([]int{2, 3})
			So(errors.Is(err, ErrNotAStack), ShouldBeTrue)
		})
		Convey("Should reject a stack of a different item type", func() {
			_, err := New(1).Concat(New("1"))
			So(errors.Is(err, ErrNotAStack), ShouldBeTrue)
		})
	})
}

func TestRepeat(t *testing.T) {
	Convey("Repeat", t, func() {
		Convey("Should multiply contents in place", func() {
			s := New("0", "1", "2", "3")
			_, err := s.Repeat(2)
			So(err, ShouldBeNil)
			So(s.Items(), ShouldResemble, []string{"0", "1", "2", "3", "0", "1", "2", "3"})
		})
		Convey("Should be the identity for n == 1", func() {
			s := New(0, 1, 2)
			got, err := s.Repeat(1)
			So(err, ShouldBeNil)
			So(got.Items(), ShouldResemble, []int{0, 1, 2})
		})
		Convey("Should empty the stack for n == 0", func() {
			s := New(0, 1, 2)
			_, err := s.Repeat(0)
			So(err, ShouldBeNil)
			So(s.IsEmpty(), ShouldBeTrue)
		})
		Convey("Should reject a negative count", func() {
			_, err := New(1).Repeat(-1)
			So(errors.Is(err, ErrNegativeCount), ShouldBeTrue)
		})
	})
}

func TestIteration(t *testing.T) {
	Convey("All", t, func() {
		s := New(0, 1, 2)

		collect := func() []int {
			var got []int
			for item := range s.All() {
				got = append(got, item)
			}
			return got
		}

		Convey("Should yield items top to bottom", func() {
			So(collect(), ShouldResemble, []int{2, 1, 0})
		})
		Convey("Should be restartable", func() {
			So(collect(), ShouldResemble, []int{2, 1, 0})
			So(collect(), ShouldResemble, []int{2, 1, 0})
			So(s.Len(), ShouldEqual, 3)
		})
		Convey("Should support early termination", func() {
			for item := range s.All() {
				So(item, ShouldEqual, 2)
				break
			}
		})
	})
}

func TestContainsAndCount(t *testing.T) {
	Convey("Contains", t, func() {
		s := New(2, 3, 4)
		So(s.Contains(2), ShouldBeTrue)
		So(s.Contains(9), ShouldBeFalse)
	})

	Convey("Count", t, func() {
		So(New(2, 3, 4, 3).Count(3), ShouldEqual, 2)
		So(New[int]().Count(3), ShouldEqual, 0)
	})
}

func TestSnapshots(t *testing.T) {
	Convey("Items/List", t, func() {
		s := New(0, 1, 2)

		Convey("Should be reverses of each other", func() {
			So(s.Items(), ShouldResemble, []int{0, 1, 2})
			So(s.List(), ShouldResemble, []int{2, 1, 0})
		})
		Convey("Should not alias the stack's storage", func() {
			items := s.Items()
			items[0] = 99
			So(s.Items(), ShouldResemble, []int{0, 1, 2})
		})
		Convey("Should be empty for an empty stack", func() {
			So(New[int]().Items(), ShouldBeEmpty)
			So(New[int]().List(), ShouldBeEmpty)
		})
	})
}

func TestEqual(t *testing.T) {
	Convey("Equal", t, func() {
		So(New(0, 1, 2).Equal(New(0, 1, 2)), ShouldBeTrue)
		So(New(0, 1, 2).Equal(New(2, 1, 0)), ShouldBeFalse)
		So(New(0, 1).Equal(New(0, 1, 2)), ShouldBeFalse)
		So(New[int]().Equal(New[int]()), ShouldBeTrue)
		So(New(1).Equal(nil), ShouldBeFalse)
	})
}

func TestClearAndString(t *testing.T) {
	Convey("Clear", t, func() {
		s := New(1, 2, 3)
		So(s.Clear().IsEmpty(), ShouldBeTrue)
	})

	Convey("String", t, func() {
		So(New(0, 1, 2).String(), ShouldEqual, "Stack[0 1 2]")
		So(New[int]().String(), ShouldEqual, "[]")
	})
}
