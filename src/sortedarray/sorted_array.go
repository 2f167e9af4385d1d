// Package sortedarray provides order-statistic lookups over a
// dynamicarray.Array whose elements are already in non-decreasing order
// under the array's own comparator.
//
// Nothing here checks that order. Calling these functions on an unsorted
// array gives wrong answers rather than errors; use IsSorted or Array.Sort
// to establish it first.
//
// Predecessor and Successor here work by position: they return the
// neighbour of the matching element. Array.Predecessor in package
// dynamicarray works by value and needs no ordering.
package sortedarray

import (
	"golang.org/x/exp/slices"

	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/comparator"
	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/dynamicarray"
	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/result"
)

// BinarySearch looks for target in items and returns its index.
//
// Each step probes half = n>>1 of the current window [lo, lo+n). A greater
// target continues in [half+1, n), anything else in [0, half). Among equal
// elements the one hit first by this probe sequence is returned.
func BinarySearch[T any](items []T, cmp comparator.Func[T], target T) (int, error) {
	if cmp == nil {
		return 0, result.NullParameter
	}
	lo, n := 0, len(items)
	for n > 0 {
		half := n >> 1
		c := cmp(target, items[lo+half])
		if c == 0 {
			return lo + half, nil
		}
		if c > 0 {
			lo += half + 1
			n -= half + 1
		} else {
			n = half
		}
	}
	return 0, result.NotFound
}

func Search[T any](a *dynamicarray.Array[T], item T) (dynamicarray.Ref[T], error) {
	if a == nil {
		return dynamicarray.Ref[T]{}, result.NullParameter
	}
	i, err := BinarySearch(a.Data(), a.Comparator(), item)
	if err != nil {
		return dynamicarray.Ref[T]{}, err
	}
	return a.RefAt(i)
}

// Min returns the first element.
func Min[T any](a *dynamicarray.Array[T]) (dynamicarray.Ref[T], error) {
	if a == nil {
		return dynamicarray.Ref[T]{}, result.NullParameter
	}
	if a.IsEmpty() {
		return dynamicarray.Ref[T]{}, result.Empty
	}
	return a.RefAt(0)
}

// Max returns the last element.
func Max[T any](a *dynamicarray.Array[T]) (dynamicarray.Ref[T], error) {
	if a == nil {
		return dynamicarray.Ref[T]{}, result.NullParameter
	}
	if a.IsEmpty() {
		return dynamicarray.Ref[T]{}, result.Empty
	}
	return a.RefAt(a.Size() - 1)
}

// Predecessor finds item and returns the element stored just before it.
// result.InvalidIndex means item sits at index 0.
func Predecessor[T any](a *dynamicarray.Array[T], item T) (dynamicarray.Ref[T], error) {
	i, err := find(a, item)
	if err != nil {
		return dynamicarray.Ref[T]{}, err
	}
	if i == 0 {
		return dynamicarray.Ref[T]{}, result.InvalidIndex
	}
	return a.RefAt(i - 1)
}

// Successor finds item and returns the element stored just after it.
// result.InvalidIndex means item is the last element.
func Successor[T any](a *dynamicarray.Array[T], item T) (dynamicarray.Ref[T], error) {
	i, err := find(a, item)
	if err != nil {
		return dynamicarray.Ref[T]{}, err
	}
	if i == a.Size()-1 {
		return dynamicarray.Ref[T]{}, result.InvalidIndex
	}
	return a.RefAt(i + 1)
}

func Select[T any](a *dynamicarray.Array[T], index int) (dynamicarray.Ref[T], error) {
	if a == nil {
		return dynamicarray.Ref[T]{}, result.NullParameter
	}
	return a.RefAt(index)
}

// Rank returns the index of item. With distinct elements this equals the
// number of elements less than item.
func Rank[T any](a *dynamicarray.Array[T], item T) (int, error) {
	return find(a, item)
}

// IsSorted reports whether a is in non-decreasing order under its
// comparator. A nil or empty array is sorted.
func IsSorted[T any](a *dynamicarray.Array[T]) bool {
	if a.IsEmpty() {
		return true
	}
	return slices.IsSortedFunc(a.Data(), (func(T, T) int)(a.Comparator()))
}

func find[T any](a *dynamicarray.Array[T], item T) (int, error) {
	if a == nil {
		return 0, result.NullParameter
	}
	if a.IsEmpty() {
		return 0, result.Empty
	}
	return BinarySearch(a.Data(), a.Comparator(), item)
}
