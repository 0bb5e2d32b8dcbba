package logx

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = mustBuild()

// mustBuild reads ENV and LOG_LEVEL directly so the logger is usable before
// the config package is.
func mustBuild() *zap.Logger {
	var cfg zap.Config
	if os.Getenv("ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
		cfg.DisableStacktrace = true
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	if lvl := strings.ToLower(os.Getenv("LOG_LEVEL")); lvl != "" {
		_ = cfg.Level.UnmarshalText([]byte(lvl))
	}
	l, err := cfg.Build(zap.AddCaller())
	if err != nil {
		panic(err)
	}
	return l
}

// L returns the process-wide logger.
func L() *zap.Logger {
	return logger
}
