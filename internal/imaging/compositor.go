// Alpha compositing of an RGBA overlay onto a BGR background
package imaging

import (
	"fmt"

	"gocv.io/x/gocv"
)

// InvalidFormatError reports a compositing call with insufficient channel
// counts. The background needs at least 3 channels (B, G, R) and the overlay
// at least 4 (B, G, R, A).
type InvalidFormatError struct {
	BackgroundChannels int
	OverlayChannels    int
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid image format (src=%d,dst=%d)", e.OverlayChannels, e.BackgroundChannels)
}

// Composite blends the overlay onto the background in place, with the
// overlay's upper-left corner at (originX, originY) in background
// coordinates. The origin may be negative or otherwise place parts of the
// overlay outside the background; out-of-bounds pixels are skipped silently.
//
// Per-pixel opacity is the overlay's alpha channel scaled to [0,1]. Each
// color channel is blended as dst*(1-opacity) + src*opacity in float64 and
// stored back with truncating uint8 conversion. The background's own alpha,
// if any, is left untouched.
func Composite(background gocv.Mat, overlay gocv.Mat, originX, originY int) error {
	bgChannels := background.Channels()
	ovChannels := overlay.Channels()
	if bgChannels < 3 || ovChannels < 4 {
		return &InvalidFormatError{BackgroundChannels: bgChannels, OverlayChannels: ovChannels}
	}

	bgRows := background.Rows()
	bgCols := background.Cols()

	for row := 0; row < overlay.Rows(); row++ {
		destRow := originY + row
		if destRow < 0 || destRow >= bgRows {
			continue
		}
		for col := 0; col < overlay.Cols(); col++ {
			destCol := originX + col
			if destCol < 0 || destCol >= bgCols {
				continue
			}

			opacity := float64(overlay.GetUCharAt(row, col*ovChannels+3)) / 255.0

			for channel := 0; channel < 3; channel++ {
				src := float64(overlay.GetUCharAt(row, col*ovChannels+channel))
				dst := float64(background.GetUCharAt(destRow, destCol*bgChannels+channel))
				blended := dst*(1.0-opacity) + src*opacity
				background.SetUCharAt(destRow, destCol*bgChannels+channel, uint8(blended))
			}
		}
	}

	return nil
}
