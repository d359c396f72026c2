package stack_test

import (
	"stackvm/pkg/stack"
	"testing"
)

func TestPushPop(t *testing.T) {
	s := stack.NewStack[int](4, 1, 2)
	s.Push(3)

	if s.Size() != 3 {
		t.Fatalf("expected size 3, got %d", s.Size())
	}

	for _, expected := range []int{3, 2, 1} {
		v, ok := s.Pop()
		if !ok || v != expected {
			t.Errorf("expected %d, got %d (ok=%v)", expected, v, ok)
		}
	}

	if _, ok := s.Pop(); ok {
		t.Errorf("expected pop on empty stack to fail")
	}
}

func TestRelativeAddressing(t *testing.T) {
	s := stack.NewStack[string](0, "a", "b", "c")

	tests := []struct {
		offset   int
		expected string
		ok       bool
	}{
		{-1, "c", true},
		{-2, "b", true},
		{-3, "a", true},
		{-4, "", false},
		{0, "", false},
		{1, "", false},
	}

	for _, test := range tests {
		v, ok := s.At(test.offset)
		if ok != test.ok || v != test.expected {
			t.Errorf("At(%d): expected (%q, %v), got (%q, %v)", test.offset, test.expected, test.ok, v, ok)
		}
	}

	if !s.Set(-2, "B") {
		t.Fatalf("Set(-2) failed")
	}
	if v, _ := s.At(-2); v != "B" {
		t.Errorf("expected B after Set, got %q", v)
	}

	if !s.Set(0, "d") {
		t.Fatalf("Set(0) should append")
	}
	if top, _ := s.Peek(); top != "d" || s.Size() != 4 {
		t.Errorf("expected append of d, got top %q size %d", top, s.Size())
	}

	if s.Set(-5, "x") || s.Set(2, "x") {
		t.Errorf("out of range Set should fail")
	}
}

func TestTruncateAndArray(t *testing.T) {
	s := stack.NewStack[int](0, 1, 2, 3, 4)
	s.Truncate(2)

	arr := s.Array()
	if len(arr) != 2 || arr[0] != 1 || arr[1] != 2 {
		t.Errorf("unexpected contents %v", arr)
	}

	arr[0] = 99
	if v, _ := s.At(-2); v != 1 {
		t.Errorf("Array must return a copy")
	}

	s.Truncate(10)
	if s.Size() != 0 {
		t.Errorf("expected empty stack, got %d", s.Size())
	}

	s.Push(5)
	s.Clear()
	if s.Size() != 0 {
		t.Errorf("expected Clear to empty the stack")
	}
}
