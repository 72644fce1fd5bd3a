package logger

import (
	"os"

	"agenda-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger is the bootstrap-time logger used before (and around) the
// zap logger: startup, fatal wiring failures, shutdown notices.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()
	switch internalConfig.App.Env {
	case "production":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{})
	}
	log.SetOutput(os.Stdout)
	return log
}
