package main

import (
	"go.uber.org/zap/zapcore"

	"github.com/agenthands/chronicle/internal/logger"
)

func initLogger(jsonOutput bool, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	return logger.InitializeLevel(jsonOutput, lvl)
}
