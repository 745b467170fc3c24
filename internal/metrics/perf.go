// Per-cycle performance tracking for diagnostic logging
package metrics

import (
	"time"

	"github.com/sirupsen/logrus"
)

// logEvery controls how often the running average is reported.
const logEvery = 10

// PerfTracker accumulates per-cycle processing time. It is diagnostic only
// and not part of the pipeline's correctness contract. All methods must be
// called from the same goroutine that runs the pipeline.
type PerfTracker struct {
	enabled         bool
	totalProcessing time.Duration
	framesProcessed int64
	logger          *logrus.Logger
}

// NewPerfTracker creates a tracker. When enabled is false, RecordCycle is a
// counter-only no-op and nothing is logged.
func NewPerfTracker(enabled bool, logger *logrus.Logger) *PerfTracker {
	return &PerfTracker{
		enabled: enabled,
		logger:  logger,
	}
}

// RecordCycle adds one processed frame and its duration, logging the running
// average every few frames when enabled.
func (p *PerfTracker) RecordCycle(d time.Duration) {
	p.framesProcessed++
	p.totalProcessing += d

	if p.enabled && p.framesProcessed%logEvery == 0 {
		p.logger.WithFields(logrus.Fields{
			"frames":     p.framesProcessed,
			"avg_ms":     p.Average().Milliseconds(),
			"last_cycle": d.String(),
		}).Info("Frame processing time")
	}
}

// Frames returns the number of recorded cycles.
func (p *PerfTracker) Frames() int64 {
	return p.framesProcessed
}

// Average returns the mean cycle duration, or zero before the first cycle.
func (p *PerfTracker) Average() time.Duration {
	if p.framesProcessed == 0 {
		return 0
	}
	return p.totalProcessing / time.Duration(p.framesProcessed)
}
