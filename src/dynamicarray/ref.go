package dynamicarray

import "github.com/hyperbolic-timechamber/ordered-arrays-go/src/result"

// Ref points at one element of an Array. It is tagged with the array's
// generation at the time it was issued and stops resolving as soon as the
// array changes: inserts, Reserve, Sort and Destroy all invalidate every
// outstanding Ref.
type Ref[T any] struct {
	arr   *Array[T]
	index int
	gen   uint64
}

func (r Ref[T]) Valid() bool {
	return r.arr != nil && r.arr.gen == r.gen && r.index < r.arr.size
}

func (r Ref[T]) check() error {
	if r.arr == nil {
		return result.NullParameter
	}
	if !r.Valid() {
		return result.StaleReference
	}
	return nil
}

// Index returns the position the Ref was issued for.
func (r Ref[T]) Index() (int, error) {
	if err := r.check(); err != nil {
		return 0, err
	}
	return r.index, nil
}

// Value returns a copy of the referenced element.
func (r Ref[T]) Value() (T, error) {
	var zero T
	if err := r.check(); err != nil {
		return zero, err
	}
	return r.arr.data[r.index], nil
}

// MustValue is Value for callers that have just obtained r and hold no
// other reference to the array. It panics on a stale Ref.
func (r Ref[T]) MustValue() T {
	v, err := r.Value()
	if err != nil {
		panic(err)
	}
	return v
}
