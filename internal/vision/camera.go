// Camera frame source backed by an OpenCV video capture device
package vision

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

// ErrDeviceUnavailable indicates the capture device could not be opened.
var ErrDeviceUnavailable = errors.New("capture device unavailable")

// Camera wraps a gocv.VideoCapture as the pipeline's frame source.
type Camera struct {
	device  int
	capture *gocv.VideoCapture
	logger  *logrus.Logger
}

// OpenCamera opens the capture device with the given index.
func OpenCamera(device int, logger *logrus.Logger) (*Camera, error) {
	capture, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrDeviceUnavailable, device, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("%w: device %d", ErrDeviceUnavailable, device)
	}

	logger.WithField("device", device).Info("Camera opened")

	return &Camera{
		device:  device,
		capture: capture,
		logger:  logger,
	}, nil
}

// Read grabs the next frame into dst, reusing dst's storage when possible.
// It returns false when no frame is available.
func (c *Camera) Read(dst *gocv.Mat) bool {
	return c.capture.Read(dst) && !dst.Empty()
}

// Close releases the capture device.
func (c *Camera) Close() error {
	c.logger.WithField("device", c.device).Info("Releasing camera")
	return c.capture.Close()
}
