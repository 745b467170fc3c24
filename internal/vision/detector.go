// Face locator backed by an OpenCV cascade classifier
package vision

import (
	"errors"
	"fmt"
	"image"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

// ErrClassifierLoad indicates the cascade classifier resource is missing or
// malformed.
var ErrClassifierLoad = errors.New("failed to load cascade classifier")

// FaceDetector wraps a gocv.CascadeClassifier as the pipeline's face locator.
type FaceDetector struct {
	classifier gocv.CascadeClassifier
	logger     *logrus.Logger
}

// NewFaceDetector loads the cascade classifier at cascadePath.
func NewFaceDetector(cascadePath string, logger *logrus.Logger) (*FaceDetector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cascadePath) {
		classifier.Close()
		return nil, fmt.Errorf("%w: %s", ErrClassifierLoad, cascadePath)
	}

	logger.WithField("cascade", cascadePath).Info("Cascade classifier loaded")

	return &FaceDetector{
		classifier: classifier,
		logger:     logger,
	}, nil
}

// Detect returns the bounding rectangles of all faces found in frame. The
// result may be empty; order carries no meaning.
func (d *FaceDetector) Detect(frame gocv.Mat) []image.Rectangle {
	rects := d.classifier.DetectMultiScale(frame)
	d.logger.WithField("faces", len(rects)).Debug("Face detection completed")
	return rects
}

// Close releases the classifier.
func (d *FaceDetector) Close() error {
	return d.classifier.Close()
}
