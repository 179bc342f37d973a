package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 3, TotalPages(11, 5))
	assert.Equal(t, 1, TotalPages(3, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 3))
	assert.Equal(t, 1, Clamp(-5, 3))
	assert.Equal(t, 2, Clamp(2, 3))
	assert.Equal(t, 3, Clamp(9, 3))
}

func TestElidedRange_Short(t *testing.T) {
	assert.Equal(t, []int{1}, ElidedRange(1, 1, 2))
	assert.Equal(t, []int{1, 2, 3}, ElidedRange(2, 3, 2))
}

func TestElidedRange_MiddleGaps(t *testing.T) {
	// Current page in the middle leaves a gap on both sides
	assert.Equal(t, []int{1, GapMarker, 3, 4, 5, 6, 7, GapMarker, 10}, ElidedRange(5, 10, 2))
}

func TestElidedRange_FirstPage(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, GapMarker, 10}, ElidedRange(1, 10, 2))
}

func TestElidedRange_LastPage(t *testing.T) {
	assert.Equal(t, []int{1, GapMarker, 8, 9, 10}, ElidedRange(10, 10, 2))
}

func TestElidedRange_NoGapWhenAdjacent(t *testing.T) {
	// Window touching the edges produces no markers
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ElidedRange(3, 5, 2))
}
