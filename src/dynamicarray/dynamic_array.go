// Package dynamicarray implements a contiguous, comparator-bound array.
//
// Elements are stored back to back starting at index 0. Results that name an
// element are returned as Ref values, which fail with result.StaleReference
// once the array has been modified. Slices handed out by Data are borrowed in
// the same way but cannot detect it, so they must not be kept across a
// mutating call.
//
// An Array is not safe for concurrent use.
package dynamicarray

import (
	"unsafe"

	"golang.org/x/exp/slices"

	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/comparator"
	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/result"
)

// Array is created with New. A zero Array stores elements but has no
// comparator, so lookups and Sort on it fail with result.NullParameter.
type Array[T any] struct {
	cmp      comparator.Func[T]
	data     []T
	size     int
	capacity int
	gen      uint64
	alloc    Allocator[T]
	growth   GrowthPolicy
}

type Option[T any] func(*Array[T])

func WithAllocator[T any](alloc Allocator[T]) Option[T] {
	return func(a *Array[T]) {
		if alloc != nil {
			a.alloc = alloc
		}
	}
}

func WithGrowth[T any](policy GrowthPolicy) Option[T] {
	return func(a *Array[T]) {
		a.growth = policy
	}
}

// New creates an empty array ordered by cmp. It fails with
// result.NullParameter when cmp is nil.
func New[T any](cmp comparator.Func[T], opts ...Option[T]) (*Array[T], error) {
	if cmp == nil {
		return nil, result.NullParameter
	}
	a := &Array[T]{
		cmp:   cmp,
		alloc: GoAllocator[T]{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *Array[T]) Comparator() comparator.Func[T] {
	if a == nil {
		return nil
	}
	return a.cmp
}

func (a *Array[T]) Size() int {
	if a == nil {
		return 0
	}
	return a.size
}

func (a *Array[T]) Capacity() int {
	if a == nil {
		return 0
	}
	return a.capacity
}

func (a *Array[T]) IsEmpty() bool {
	return a.Size() == 0
}

func (a *Array[T]) Growth() GrowthPolicy {
	if a == nil {
		return ExactFit
	}
	return a.growth
}

// ItemSize reports the in-memory width of one element.
func (a *Array[T]) ItemSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Generation changes every time the array is modified.
func (a *Array[T]) Generation() uint64 {
	if a == nil {
		return 0
	}
	return a.gen
}

// At returns a copy of the element at index.
func (a *Array[T]) At(index int) (T, error) {
	var zero T
	if a == nil {
		return zero, result.NullParameter
	}
	if index < 0 || index >= a.size {
		return zero, result.InvalidIndex
	}
	return a.data[index], nil
}

// RefAt returns a Ref to the element at index.
func (a *Array[T]) RefAt(index int) (Ref[T], error) {
	if a == nil {
		return Ref[T]{}, result.NullParameter
	}
	if index < 0 || index >= a.size {
		return Ref[T]{}, result.InvalidIndex
	}
	return a.ref(index), nil
}

// Data returns the live elements without copying. The slice is only valid
// until the next mutating call and writes through it bypass the generation
// check.
func (a *Array[T]) Data() []T {
	if a == nil || a.size == 0 {
		return nil
	}
	return a.data[:a.size]
}

// Values returns a copy of the elements in index order.
func (a *Array[T]) Values() []T {
	if a == nil || a.size == 0 {
		return nil
	}
	return slices.Clone(a.data[:a.size])
}

func (a *Array[T]) Clone() *Array[T] {
	if a == nil {
		return nil
	}
	clone := &Array[T]{
		cmp:    a.cmp,
		alloc:  a.alloc,
		growth: a.growth,
		size:   a.size,
	}
	if a.size > 0 {
		clone.data = make([]T, a.capacity)
		copy(clone.data, a.data[:a.size])
		clone.capacity = a.capacity
	}
	return clone
}

// Reserve makes room for at least newCap elements without changing the
// contents. It is a no-op when the capacity is already large enough.
func (a *Array[T]) Reserve(newCap int) error {
	if a == nil {
		return result.NullParameter
	}
	if newCap <= a.capacity {
		return nil
	}
	return a.realloc(newCap)
}

func (a *Array[T]) realloc(newCap int) error {
	if a.alloc == nil {
		a.alloc = GoAllocator[T]{}
	}
	buf, err := a.alloc.Realloc(a.data[:a.size], newCap)
	if err != nil || len(buf) < newCap {
		return result.FailedMemoryAllocation
	}
	a.data = buf[:newCap]
	a.capacity = newCap
	a.gen++
	return nil
}

func (a *Array[T]) grow() error {
	if a.size < a.capacity {
		return nil
	}
	return a.realloc(a.growth.next(a.capacity, a.size+1))
}

// InsertAtHead shifts every element one slot toward the tail and stores item
// at index 0. O(n).
func (a *Array[T]) InsertAtHead(item T) error {
	if a == nil {
		return result.NullParameter
	}
	if err := a.grow(); err != nil {
		return err
	}
	copy(a.data[1:a.size+1], a.data[:a.size])
	a.data[0] = item
	a.size++
	a.gen++
	return nil
}

// InsertAtTail stores item after the current last element.
func (a *Array[T]) InsertAtTail(item T) error {
	if a == nil {
		return result.NullParameter
	}
	if err := a.grow(); err != nil {
		return err
	}
	a.data[a.size] = item
	a.size++
	a.gen++
	return nil
}

// Search scans in index order and returns the first element e with
// cmp(item, e) == 0.
func (a *Array[T]) Search(item T) (Ref[T], error) {
	if a == nil || a.cmp == nil {
		return Ref[T]{}, result.NullParameter
	}
	for i := 0; i < a.size; i++ {
		if a.cmp(item, a.data[i]) == 0 {
			return a.ref(i), nil
		}
	}
	return Ref[T]{}, result.NotFound
}

// Enumerate calls visit once per element in index order.
func (a *Array[T]) Enumerate(visit func(item T)) error {
	if a == nil || visit == nil {
		return result.NullParameter
	}
	items := a.data[:a.size]
	for _, item := range items {
		visit(item)
	}
	return nil
}

// Max returns the greatest element. When several elements tie, the first one
// wins.
func (a *Array[T]) Max() (Ref[T], error) {
	if a == nil || a.cmp == nil {
		return Ref[T]{}, result.NullParameter
	}
	if a.size == 0 {
		return Ref[T]{}, result.Empty
	}
	best := 0
	for i := 1; i < a.size; i++ {
		if a.cmp(a.data[best], a.data[i]) < 0 {
			best = i
		}
	}
	return a.ref(best), nil
}

// Predecessor returns the greatest element strictly less than searchFor.
// searchFor itself must be present: the array needs no particular order.
//
// Fails with result.Empty on an empty array, result.NotFound when no element
// equals searchFor and result.ArgumentOutOfRange when searchFor is the
// minimum.
func (a *Array[T]) Predecessor(searchFor T) (Ref[T], error) {
	if a == nil || a.cmp == nil {
		return Ref[T]{}, result.NullParameter
	}
	if a.size == 0 {
		return Ref[T]{}, result.Empty
	}
	candidate := -1
	found := false
	for i := 0; i < a.size; i++ {
		c := a.cmp(searchFor, a.data[i])
		if c == 0 {
			found = true
			continue
		}
		if c > 0 && (candidate < 0 || a.cmp(a.data[i], a.data[candidate]) > 0) {
			candidate = i
		}
	}
	if !found {
		return Ref[T]{}, result.NotFound
	}
	if candidate < 0 {
		return Ref[T]{}, result.ArgumentOutOfRange
	}
	return a.ref(candidate), nil
}

// Rank counts the elements strictly less than item. item must be present.
func (a *Array[T]) Rank(item T) (int, error) {
	if a == nil || a.cmp == nil {
		return 0, result.NullParameter
	}
	if a.size == 0 {
		return 0, result.Empty
	}
	rank := 0
	found := false
	for i := 0; i < a.size; i++ {
		c := a.cmp(a.data[i], item)
		if c == 0 {
			found = true
		} else if c < 0 {
			rank++
		}
	}
	if !found {
		return 0, result.NotFound
	}
	return rank, nil
}

// Sort orders the elements with the array's comparator. Equal elements keep
// their relative order.
func (a *Array[T]) Sort() error {
	if a == nil || a.cmp == nil {
		return result.NullParameter
	}
	slices.SortStableFunc(a.data[:a.size], (func(T, T) int)(a.cmp))
	a.gen++
	return nil
}

// Destroy drops the backing storage. The array is left empty and every
// outstanding Ref goes stale. Destroy on a nil array does nothing.
func (a *Array[T]) Destroy() {
	if a == nil {
		return
	}
	a.data = nil
	a.size = 0
	a.capacity = 0
	a.gen++
}

func (a *Array[T]) ref(index int) Ref[T] {
	return Ref[T]{arr: a, index: index, gen: a.gen}
}
