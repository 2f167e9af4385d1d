package comparator_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/comparator"
	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/comparator/mocks"
)

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestOrdered(t *testing.T) {
	ints := comparator.Ordered[int]()
	assert.Equal(t, -1, ints(1, 2))
	assert.Equal(t, 0, ints(2, 2))
	assert.Equal(t, 1, ints(3, 2))

	strs := comparator.Ordered[string]()
	assert.Equal(t, -1, strs("apple", "banana"))

	floats := comparator.Ordered[float64]()
	assert.Equal(t, 1, floats(0.5, -0.5))
}

func TestBytes(t *testing.T) {
	assert.Equal(t, -1, comparator.Bytes([]byte("a"), []byte("b")))
	assert.Equal(t, 0, comparator.Bytes(nil, []byte{}))
	assert.Equal(t, 1, comparator.Bytes([]byte("ab"), []byte("a")))
}

func TestPInt(t *testing.T) {
	one, two, otherOne := 1, 2, 1
	assert.Equal(t, -1, comparator.PInt(&one, &two))
	assert.Equal(t, 0, comparator.PInt(&one, &otherOne))
	assert.Equal(t, 1, comparator.PInt(&two, &one))
	assert.Equal(t, -1, comparator.PInt(nil, &one))
	assert.Equal(t, 1, comparator.PInt(&one, nil))
	assert.Equal(t, 0, comparator.PInt(nil, nil))
}

func TestReverse(t *testing.T) {
	rev := comparator.Reverse(comparator.Ordered[int]())
	for _, pair := range [][2]int{{1, 2}, {2, 1}, {3, 3}} {
		assert.Equal(t, -sign(comparator.Ordered[int]()(pair[0], pair[1])), sign(rev(pair[0], pair[1])))
	}
	assert.Nil(t, comparator.Reverse[int](nil))
}

func TestFromComparer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockIntComparer(ctrl)
	m.EXPECT().Compare(4, 7).Return(-3)

	f := comparator.FromComparer[int](m)
	assert.Equal(t, -3, f(4, 7))

	assert.Nil(t, comparator.FromComparer[int](nil))
}
