// Package logger provides adapters for popular logger libraries to work with
// the pagetree.Logger interface, and a zap setup for the pagetree command.
//
// Note that the standard library's slog.Logger already implements
// pagetree.Logger directly.
//
// Example with zap:
//
//	import (
//	    "pagetree"
//	    "pagetree/logger"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    zapLogger, _ := zap.NewProduction()
//
//	    tree, err := pagetree.New(
//	        pagetree.WithRank(3),
//	        pagetree.WithLogger(logger.NewZap(zapLogger)),
//	    )
//	    if err != nil {
//	        panic(err)
//	    }
//	    _ = tree.Insert(42)
//	}
package logger

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings for New.
type Config struct {
	// Level sets the minimum log level ("debug", "info", "warn", "error").
	Level string
	// Format is "json" or "console".
	Format string
	// OutputFile is a path to append to, or "stdout"/"stderr".
	OutputFile string
}

// New builds a zap.Logger from config. Unknown levels fall back to info.
func New(config Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	sink, err := writeSyncer(config.OutputFile)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder(config.Format), sink, level)
	return zap.New(core).With(zap.String("component", "pagetree")), nil
}

func encoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	if strings.ToLower(format) == "console" {
		return zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewJSONEncoder(cfg)
}

func writeSyncer(output string) (zapcore.WriteSyncer, error) {
	switch strings.ToLower(output) {
	case "stderr", "":
		return zapcore.AddSync(os.Stderr), nil
	case "stdout":
		return zapcore.AddSync(os.Stdout), nil
	default:
		file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "open log file %s", output)
		}
		return zapcore.AddSync(file), nil
	}
}
