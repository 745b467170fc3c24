package main

import (
	"flag"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"camera-face-overlay/internal/config"
	"camera-face-overlay/internal/gui"
)

const (
	AppID = "com.example.camera-face-overlay"
)

func main() {
	debugMode := flag.Bool("debug", false, "Enable debug mode with verbose logging")
	configPath := flag.String("config", "", "Path to an optional YAML config file")
	flag.Parse()

	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	logger := initLogger(*debugMode)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	logger.WithFields(logrus.Fields{
		"camera_device": cfg.CameraDevice,
		"cascade":       cfg.CascadePath,
		"overlay":       cfg.OverlayPath,
		"refresh_ms":    cfg.RefreshMillis,
		"debug_mode":    *debugMode,
	}).Info("Starting face overlay application")

	fyneApp := app.NewWithID(AppID)

	mainApp, err := gui.NewApplication(fyneApp, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize application")
	}

	if err := mainApp.ShowAndRun(cfg); err != nil {
		logger.WithError(err).Fatal("Failed to start refresh driver")
	}

	logger.Info("Application shut down")
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
