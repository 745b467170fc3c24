// Frame pipeline: capture, detect, select, composite
package core

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"camera-face-overlay/internal/imaging"
	"camera-face-overlay/internal/metrics"
)

// ErrCaptureFailed indicates the frame source could not deliver a frame.
// During steady state the caller should skip the cycle and retry on the next
// tick; transient camera hiccups are expected.
var ErrCaptureFailed = errors.New("failed to capture frame")

// FrameSource produces raw color frames on demand.
type FrameSource interface {
	// Read grabs the next frame into dst, returning false when no frame is
	// available.
	Read(dst *gocv.Mat) bool
	Close() error
}

// FaceLocator returns bounding rectangles for the faces in a frame.
type FaceLocator interface {
	Detect(frame gocv.Mat) []image.Rectangle
	Close() error
}

// Options holds the cosmetic per-cycle toggles.
type Options struct {
	DrawRectangles bool
	DrawCircles    bool
}

// Pipeline owns the frame source, the face locator, the overlay asset and
// the reused camera buffer, and runs one full refresh cycle at a time. It is
// not safe for concurrent use; every call must come from the display thread.
type Pipeline struct {
	source  FrameSource
	locator FaceLocator
	overlay gocv.Mat
	frame   gocv.Mat
	opts    Options
	perf    *metrics.PerfTracker
	logger  *logrus.Logger

	// Decided once at startup from channel counts of the camera feed and
	// the overlay asset.
	overlayEligible bool
}

// NewPipeline acquires the first camera frame and decides overlay
// eligibility. A failed first acquisition is fatal: the caller gets
// ErrCaptureFailed and should abort startup. The pipeline takes ownership of
// source, locator and overlay.
func NewPipeline(source FrameSource, locator FaceLocator, overlay gocv.Mat, opts Options, perf *metrics.PerfTracker, logger *logrus.Logger) (*Pipeline, error) {
	p := &Pipeline{
		source:  source,
		locator: locator,
		overlay: overlay,
		frame:   gocv.NewMat(),
		opts:    opts,
		perf:    perf,
		logger:  logger,
	}

	if !source.Read(&p.frame) {
		p.frame.Close()
		return nil, fmt.Errorf("%w: first frame acquisition", ErrCaptureFailed)
	}

	// Compositing needs a color camera feed and an overlay with an alpha
	// channel.
	p.overlayEligible = p.frame.Channels() >= 3 && overlay.Channels() >= 4

	logger.WithFields(logrus.Fields{
		"frame_width":      p.frame.Cols(),
		"frame_height":     p.frame.Rows(),
		"frame_channels":   p.frame.Channels(),
		"overlay_channels": overlay.Channels(),
		"overlay_eligible": p.overlayEligible,
	}).Info("Pipeline initialized")

	return p, nil
}

// RunCycle executes one refresh cycle and returns the rendered frame for the
// display sink. A capture failure leaves the previous frame intact and
// returns ErrCaptureFailed; the next tick is the retry.
func (p *Pipeline) RunCycle() (image.Image, error) {
	start := time.Now()

	if !p.source.Read(&p.frame) {
		p.logger.Warn("Frame capture failed, skipping cycle")
		return nil, ErrCaptureFailed
	}

	faces := p.locator.Detect(p.frame)

	// Debug annotations are independent of face selection.
	if p.opts.DrawCircles {
		for _, r := range faces {
			imaging.DrawFaceEllipse(&p.frame, r)
		}
	}
	if p.opts.DrawRectangles {
		for _, r := range faces {
			imaging.DrawFaceRect(&p.frame, r)
		}
	}

	if p.overlayEligible {
		// The selector yields nothing for an empty set or when every
		// detection is degenerate; compositing is skipped, not an error.
		if _, face, ok := imaging.LargestRect(faces); ok {
			if err := p.compositeOnto(face); err != nil {
				// Guarded by the eligibility check, so this is a contract
				// violation rather than a runtime condition.
				p.logger.WithError(err).Error("Overlay compositing failed")
				return nil, err
			}
		}
	}

	rendered, err := p.frame.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert frame for display: %w", err)
	}

	p.perf.RecordCycle(time.Since(start))
	return rendered, nil
}

// compositeOnto scales a copy of the overlay asset to the face rectangle and
// blends it onto the camera frame at the rectangle's origin. The scaled copy
// lives only for this cycle; the asset itself is never mutated.
func (p *Pipeline) compositeOnto(face image.Rectangle) error {
	scaled := gocv.NewMat()
	defer scaled.Close()

	gocv.Resize(p.overlay, &scaled, image.Pt(face.Dx(), face.Dy()), 0, 0, gocv.InterpolationLinear)

	return imaging.Composite(p.frame, scaled, face.Min.X, face.Min.Y)
}

// FrameSize returns the camera frame dimensions established at startup.
func (p *Pipeline) FrameSize() image.Point {
	return image.Pt(p.frame.Cols(), p.frame.Rows())
}

// OverlayEligible reports whether overlay compositing is enabled for this
// run.
func (p *Pipeline) OverlayEligible() bool {
	return p.overlayEligible
}

// Close releases the frame source, the face locator and all owned buffers.
func (p *Pipeline) Close() {
	if err := p.source.Close(); err != nil {
		p.logger.WithError(err).Warn("Failed to release frame source")
	}
	if err := p.locator.Close(); err != nil {
		p.logger.WithError(err).Warn("Failed to release face locator")
	}
	p.frame.Close()
	p.overlay.Close()
}
