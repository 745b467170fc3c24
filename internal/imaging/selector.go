package imaging

import "image"

// LargestRect returns the index and value of the rectangle with the greatest
// area. Only a strictly positive area can win, so degenerate zero-area
// rectangles are never selected. Ties keep the first candidate in traversal
// order. The boolean is false when no rectangle qualifies.
func LargestRect(rects []image.Rectangle) (int, image.Rectangle, bool) {
	maxIndex := -1
	maxArea := 0
	for i, r := range rects {
		area := r.Dx() * r.Dy()
		if area > maxArea {
			maxIndex = i
			maxArea = area
		}
	}
	if maxIndex < 0 {
		return -1, image.Rectangle{}, false
	}
	return maxIndex, rects[maxIndex], true
}
