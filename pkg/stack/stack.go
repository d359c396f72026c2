package stack

// Stack is a growable LIFO sequence addressed relative to its top.
// Offset -1 is the top element, -2 the one below it.
type Stack[T any] struct {
	a []T
}

// NewStack creates a new stack instance with room for capacity elements
func NewStack[T any](capacity int, elm ...T) *Stack[T] {
	if capacity < len(elm) {
		capacity = len(elm)
	}

	s := Stack[T]{
		a: make([]T, 0, capacity),
	}
	s.a = append(s.a, elm...)

	return &s
}

// Push adds an element to the top of the stack
func (s *Stack[T]) Push(elm T) {
	s.a = append(s.a, elm)
}

// Pop removes and returns the top element of the stack
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.a) < 1 {
		return zero, false
	}

	l := len(s.a) - 1
	elm := s.a[l]
	s.a[l] = zero
	s.a = s.a[:l]

	return elm, true
}

// Peek returns the top element of the stack without removing it
func (s *Stack[T]) Peek() (T, bool) {
	return s.At(-1)
}

// At returns the element at a top-relative offset
func (s *Stack[T]) At(offset int) (T, bool) {
	var zero T
	idx := len(s.a) + offset
	if offset >= 0 || idx < 0 {
		return zero, false
	}

	return s.a[idx], true
}

// Set replaces the element at a top-relative offset. Offset 0 appends.
func (s *Stack[T]) Set(offset int, elm T) bool {
	if offset == 0 {
		s.Push(elm)
		return true
	}

	idx := len(s.a) + offset
	if offset > 0 || idx < 0 {
		return false
	}

	s.a[idx] = elm
	return true
}

// Truncate drops the top n elements
func (s *Stack[T]) Truncate(n int) {
	if n > len(s.a) {
		n = len(s.a)
	}

	var zero T
	for i := len(s.a) - n; i < len(s.a); i++ {
		s.a[i] = zero
	}
	s.a = s.a[:len(s.a)-n]
}

// Clear empties the stack, keeping its capacity
func (s *Stack[T]) Clear() {
	s.Truncate(len(s.a))
}

// Get the size of the stack
func (s *Stack[T]) Size() int {
	return len(s.a)
}

// Array returns a copy of the stack contents, bottom first
func (s *Stack[T]) Array() []T {
	return append([]T(nil), s.a...)
}
