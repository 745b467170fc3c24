// Overlay asset loading
package io

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

// ImageLoader handles image file operations.
type ImageLoader struct {
	logger *logrus.Logger
}

func NewImageLoader(logger *logrus.Logger) *ImageLoader {
	return &ImageLoader{
		logger: logger,
	}
}

// LoadOverlay decodes the overlay asset at filepath, preserving the alpha
// channel when the file carries one. Whether the result is actually usable
// for compositing (4 channels) is the pipeline's eligibility decision, not
// an error here. On error the returned Mat is the zero value and needs no
// Close.
func (il *ImageLoader) LoadOverlay(filepath string) (gocv.Mat, error) {
	il.logger.WithField("filepath", filepath).Debug("Loading overlay image")

	if !il.isSupportedImageFormat(filepath) {
		return gocv.Mat{}, fmt.Errorf("unsupported image format: %s", filepath)
	}

	mat := gocv.IMRead(filepath, gocv.IMReadUnchanged)
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, fmt.Errorf("failed to load overlay image: %s", filepath)
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": filepath,
		"width":    mat.Cols(),
		"height":   mat.Rows(),
		"channels": mat.Channels(),
	}).Info("Overlay image loaded")

	return mat, nil
}

func (il *ImageLoader) isSupportedImageFormat(filepath string) bool {
	ext := strings.ToLower(getFileExtension(filepath))
	supportedFormats := []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp"}

	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}

	return false
}

func getFileExtension(filepath string) string {
	for i := len(filepath) - 1; i >= 0; i-- {
		if filepath[i] == '.' {
			return filepath[i:]
		}
		if filepath[i] == '/' || filepath[i] == '\\' {
			break
		}
	}
	return ""
}
