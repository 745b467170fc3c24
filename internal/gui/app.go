// Main application window wiring the pipeline to the display
package gui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"

	"camera-face-overlay/internal/config"
	"camera-face-overlay/internal/core"
	"camera-face-overlay/internal/io"
	"camera-face-overlay/internal/metrics"
	"camera-face-overlay/internal/vision"
)

// Application owns the window, the frame pipeline and the refresh driver.
// The pipeline runs exclusively on the UI thread; the driver only requests
// redraws.
type Application struct {
	app    fyne.App
	window fyne.Window
	logger *logrus.Logger

	pipeline *core.Pipeline
	driver   *core.RefreshDriver
	video    *VideoCanvas

	closing bool
}

// NewApplication opens the camera, loads the classifier and the overlay
// asset, and builds the main window. Any failure here aborts startup before
// a window is shown.
func NewApplication(app fyne.App, cfg *config.Config, logger *logrus.Logger) (*Application, error) {
	loader := io.NewImageLoader(logger)
	overlay, err := loader.LoadOverlay(cfg.OverlayPath)
	if err != nil {
		return nil, fmt.Errorf("overlay asset: %w", err)
	}

	camera, err := vision.OpenCamera(cfg.CameraDevice, logger)
	if err != nil {
		overlay.Close()
		return nil, err
	}

	detector, err := vision.NewFaceDetector(cfg.CascadePath, logger)
	if err != nil {
		overlay.Close()
		camera.Close()
		return nil, err
	}

	perf := metrics.NewPerfTracker(cfg.PerfLogEnabled, logger)
	pipeline, err := core.NewPipeline(camera, detector, overlay, core.Options{
		DrawRectangles: cfg.DrawRectangles,
		DrawCircles:    cfg.DrawCircles,
	}, perf, logger)
	if err != nil {
		overlay.Close()
		camera.Close()
		detector.Close()
		return nil, err
	}

	frameSize := pipeline.FrameSize()
	window := app.NewWindow(cfg.WindowTitle)
	window.Resize(fyne.NewSize(float32(frameSize.X), float32(frameSize.Y)))
	window.SetFixedSize(true)
	window.CenterOnScreen()

	a := &Application{
		app:      app,
		window:   window,
		logger:   logger,
		pipeline: pipeline,
		video:    NewVideoCanvas(frameSize, logger),
	}
	a.driver = core.NewRefreshDriver(a.requestRefresh, logger)

	window.SetContent(a.video.GetContainer())
	window.SetCloseIntercept(a.shutdown)

	return a, nil
}

// requestRefresh runs on the driver goroutine. It only schedules a render
// cycle on the UI thread; the driver never touches pixel data itself.
func (a *Application) requestRefresh() {
	fyne.Do(a.renderCycle)
}

// renderCycle runs one pipeline cycle on the UI thread and updates the
// video canvas.
func (a *Application) renderCycle() {
	if a.closing {
		return
	}

	frame, err := a.pipeline.RunCycle()
	if err != nil {
		if errors.Is(err, core.ErrCaptureFailed) {
			// Skip this cycle; the next tick is the retry.
			return
		}
		a.logger.WithError(err).Error("Render cycle failed")
		return
	}

	a.video.UpdateFrame(frame)
}

// ShowAndRun starts the refresh driver and blocks in the fyne event loop.
func (a *Application) ShowAndRun(cfg *config.Config) error {
	if err := a.driver.Start(cfg.RefreshInterval()); err != nil {
		return err
	}
	a.logger.WithFields(logrus.Fields{
		"interval_ms":      cfg.RefreshMillis,
		"overlay_eligible": a.pipeline.OverlayEligible(),
	}).Info("Showing main window")

	a.window.ShowAndRun()
	return nil
}

// shutdown runs on the UI thread when the window is closed. Pending render
// cycles see the closing flag and become no-ops, so the pipeline is never
// used after release.
func (a *Application) shutdown() {
	a.closing = true
	a.driver.Terminate()
	a.pipeline.Close()
	a.logger.Info("Shutting down")
	a.app.Quit()
}
