package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"atelier/internal/config"
)

// New builds the process-wide structured logger. An unknown LOG_LEVEL falls
// back to info rather than preventing startup.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapCfg.Build()
}
