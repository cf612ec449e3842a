package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	global *zap.SugaredLogger
)

// NewLogger creates a new zap logger with appropriate configuration.
// Diagnostics always go to stderr so stdout stays reserved for transcripts.
func NewLogger(development bool) (*zap.Logger, error) {
	var config zap.Config

	if development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.EncoderConfig.TimeKey = ""
		config.DisableCaller = true
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build()
}

// Init replaces the package logger. Called once from the CLI root.
func Init(development bool) {
	l, err := NewLogger(development)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	mu.Lock()
	defer mu.Unlock()
	global = l.Sugar()
}

// S returns the package-level sugared logger, initializing a default one on
// first use so library code and tests never need explicit setup.
func S() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		l, err := NewLogger(false)
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		global = l.Sugar()
	}
	return global
}
