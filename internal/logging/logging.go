// Package logging configures the process-wide zap logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init installs a console logger on stderr as the global zap logger and
// returns it. Verbose enables debug-level engine traces; otherwise only
// warnings and errors are shown so normal CLI output stays clean.
func Init(verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	logger := zap.New(core)
	zap.ReplaceGlobals(logger)
	return logger
}
