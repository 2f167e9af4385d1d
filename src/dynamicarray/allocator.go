package dynamicarray

import (
	"math"
	"unsafe"

	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/result"
)

// Allocator supplies backing storage. Realloc returns a buffer of length n
// whose leading elements hold a copy of old. It must not modify old, so a
// failed Realloc leaves the caller's buffer intact.
type Allocator[T any] interface {
	Realloc(old []T, n int) ([]T, error)
}

// GoAllocator allocates from the Go heap. Every call returns a fresh buffer,
// so a previously borrowed Data slice never aliases the new one.
type GoAllocator[T any] struct{}

func (GoAllocator[T]) Realloc(old []T, n int) ([]T, error) {
	if n < 0 {
		return nil, result.ArgumentOutOfRange
	}
	var zero T
	if size := unsafe.Sizeof(zero); size > 0 && uintptr(n) > uintptr(math.MaxInt)/size {
		return nil, result.FailedMemoryAllocation
	}
	buf := make([]T, n)
	copy(buf, old)
	return buf, nil
}

// GrowthPolicy decides how much room an insert reserves.
type GrowthPolicy int

const (
	// ExactFit reallocates to exactly size+1 on every insert. Inserts cost
	// O(n) each but the buffer never carries unused slots.
	ExactFit GrowthPolicy = iota
	// Doubling grows capacity geometrically. Fewer reallocations, same
	// logical contents and results as ExactFit.
	Doubling
)

func (p GrowthPolicy) String() string {
	switch p {
	case ExactFit:
		return "exact"
	case Doubling:
		return "doubling"
	}
	return "unknown"
}

// ParseGrowthPolicy accepts the names produced by GrowthPolicy.String.
func ParseGrowthPolicy(s string) (GrowthPolicy, error) {
	switch s {
	case "exact":
		return ExactFit, nil
	case "doubling":
		return Doubling, nil
	}
	return ExactFit, result.ArgumentOutOfRange
}

func (p GrowthPolicy) next(capacity, needed int) int {
	if p != Doubling {
		return needed
	}
	newCap := 1
	if capacity > 0 {
		newCap = capacity * 2
	}
	if newCap < needed {
		newCap = needed
	}
	return newCap
}
