// Video canvas displaying the rendered camera frames
package gui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/sirupsen/logrus"
)

// VideoCanvas wraps a fyne canvas.Image that is refreshed with each rendered
// frame. UpdateFrame must be called from the UI thread.
type VideoCanvas struct {
	image  *canvas.Image
	logger *logrus.Logger
}

// NewVideoCanvas creates a canvas sized to the camera frame, showing a dark
// placeholder until the first frame arrives.
func NewVideoCanvas(size image.Point, logger *logrus.Logger) *VideoCanvas {
	placeholder := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			placeholder.Set(x, y, color.RGBA{R: 32, G: 32, B: 32, A: 255})
		}
	}

	img := canvas.NewImageFromImage(placeholder)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	img.SetMinSize(fyne.NewSize(float32(size.X), float32(size.Y)))

	return &VideoCanvas{
		image:  img,
		logger: logger,
	}
}

func (vc *VideoCanvas) GetContainer() fyne.CanvasObject {
	return vc.image
}

// UpdateFrame replaces the displayed image and redraws at (0,0).
func (vc *VideoCanvas) UpdateFrame(frame image.Image) {
	vc.image.Image = frame
	vc.image.Refresh()
}
