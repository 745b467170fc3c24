// Debug annotations for detected faces
package imaging

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// outlineColor is the green used for face outlines.
var outlineColor = color.RGBA{R: 0, G: 255, B: 0, A: 0}

// DrawFaceRect outlines the detected face rectangle on img.
func DrawFaceRect(img *gocv.Mat, r image.Rectangle) {
	gocv.Rectangle(img, r, outlineColor, 1)
}

// DrawFaceEllipse draws an ellipse inscribed in the detected face rectangle.
func DrawFaceEllipse(img *gocv.Mat, r image.Rectangle) {
	center := image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
	axes := image.Pt(r.Dx()/2, r.Dy()/2)
	gocv.Ellipse(img, center, axes, 0, 0, 360, outlineColor, 1)
}
