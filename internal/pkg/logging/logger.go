package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the logger flavour.
type Options struct {
	Production bool
	// Level is a zap level name ("debug", "info", "warn", ...). Empty keeps
	// the mode's default.
	Level string
	// File, when set, receives JSON logs with size-based rotation in
	// addition to the console output.
	File string
}

// New builds a zap logger. Console output goes to stderr so it never mixes
// with command output on stdout.
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	if opts.Production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	if opts.Level != "" {
		lvl, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	if opts.File == "" {
		return cfg.Build(zap.AddCaller())
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    16,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   false,
	}
	consoleEncoder := zap.NewDevelopmentEncoderConfig()
	if opts.Production {
		consoleEncoder = zap.NewProductionEncoderConfig()
	}
	core := zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			cfg.Level,
		),
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoder),
			zapcore.Lock(os.Stderr),
			cfg.Level,
		),
	)
	return zap.New(core, zap.AddCaller()), nil
}
