package config

import (
	"os"

	"go.uber.org/zap"
)

func NewLogger() *zap.Logger {
	if os.Getenv("LOG_MODE") == "development" {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}
