package imaging

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLargestRectEmptySet(t *testing.T) {
	index, _, ok := LargestRect(nil)
	assert.False(t, ok)
	assert.Equal(t, -1, index)

	index, _, ok = LargestRect([]image.Rectangle{})
	assert.False(t, ok)
	assert.Equal(t, -1, index)
}

func TestLargestRectSingle(t *testing.T) {
	r := image.Rect(5, 5, 15, 25)
	index, best, ok := LargestRect([]image.Rectangle{r})
	assert.True(t, ok)
	assert.Equal(t, 0, index)
	assert.Equal(t, r, best)
}

func TestLargestRectTiesKeepFirst(t *testing.T) {
	// Areas 10, 50, 50, 30: the first rect of area 50 wins.
	rects := []image.Rectangle{
		image.Rect(0, 0, 5, 2),
		image.Rect(10, 10, 20, 15),
		image.Rect(30, 30, 35, 40),
		image.Rect(0, 0, 6, 5),
	}

	index, best, ok := LargestRect(rects)
	assert.True(t, ok)
	assert.Equal(t, 1, index)
	assert.Equal(t, rects[1], best)
}

func TestLargestRectIgnoresZeroAreaRects(t *testing.T) {
	// Degenerate detections (width or height 0) never qualify.
	rects := []image.Rectangle{
		image.Rect(0, 0, 0, 10),
		image.Rect(1, 1, 1, 1),
	}

	index, _, ok := LargestRect(rects)
	assert.False(t, ok)
	assert.Equal(t, -1, index)
}

func TestLargestRectZeroAreaLosesToPositiveArea(t *testing.T) {
	rects := []image.Rectangle{
		image.Rect(0, 0, 0, 10),
		image.Rect(2, 2, 4, 4),
	}

	index, best, ok := LargestRect(rects)
	assert.True(t, ok)
	assert.Equal(t, 1, index)
	assert.Equal(t, rects[1], best)
}
