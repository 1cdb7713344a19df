package dbg

import (
	"cmp"
	"slices"
)

// Stack is a last-in-first-out container. The formatter drains a copy,
// top first, so printing leaves the stack intact.
type Stack[T any] struct {
	items []T
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top of the stack.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// Len returns the number of stacked values.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s Stack[T]) drainVals() []any {
	vals := make([]any, len(s.items))
	for i, v := range s.items {
		vals[len(s.items)-1-i] = v
	}
	return vals
}

// Queue is a first-in-first-out container. The formatter drains a copy,
// front first, so printing leaves the queue intact.
type Queue[T any] struct {
	items []T
}

// Push appends v to the back of the queue.
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Pop removes and returns the front of the queue.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

func (q Queue[T]) drainVals() []any {
	vals := make([]any, len(q.items))
	for i, v := range q.items {
		vals[i] = v
	}
	return vals
}

// Set is an ordered set: it renders in ascending element order. A plain
// map[T]struct{} works too and renders in sorted order when the key type
// sorts; Set guarantees it by construction.
type Set[T cmp.Ordered] map[T]struct{}

// Add inserts v into the set.
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) drainVals() []any {
	elems := make([]T, 0, len(s))
	for v := range s {
		elems = append(elems, v)
	}
	slices.Sort(elems)
	vals := make([]any, len(elems))
	for i, v := range elems {
		vals[i] = v
	}
	return vals
}

// Shared boxes a value with shared-ownership rendering: the annotation
// line is <TypeLabel> rather than the < -> TypeLabel> exclusive form.
type Shared[T any] struct {
	ptr *T
}

// NewShared boxes v.
func NewShared[T any](v T) Shared[T] {
	return Shared[T]{ptr: &v}
}

// Get returns the boxed pointer, nil for an empty box.
func (s Shared[T]) Get() *T {
	return s.ptr
}

func (s Shared[T]) sharedVal() (any, bool) {
	if s.ptr == nil {
		return nil, false
	}
	return *s.ptr, true
}
