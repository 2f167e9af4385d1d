// Package comparator holds the three-way ordering functions that bind a
// container to its element type.
package comparator

import (
	"bytes"

	"golang.org/x/exp/constraints"
)

// Func returns a negative number when a orders before b, zero when they are
// equal and a positive number when a orders after b. It must be pure and
// describe a total order for as long as a container uses it.
type Func[T any] func(a, b T) int

// Comparer is the method form of Func.
type Comparer[T any] interface {
	Compare(a, b T) int
}

// FromComparer adapts c to a Func. A nil c yields a nil Func.
func FromComparer[T any](c Comparer[T]) Func[T] {
	if c == nil {
		return nil
	}
	return c.Compare
}

// Ordered orders values with the built-in < operator.
func Ordered[T constraints.Ordered]() Func[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// Bytes orders byte slices lexicographically.
func Bytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// PInt orders the ints that a and b point to. Nil sorts before any value.
func PInt(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

// Reverse flips the order described by f.
func Reverse[T any](f Func[T]) Func[T] {
	if f == nil {
		return nil
	}
	return func(a, b T) int {
		return f(b, a)
	}
}
