package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop().Sugar()
)

// New creates a new zap logger for the given environment
func New(environment string) *zap.SugaredLogger {
	var (
		base *zap.Logger
		err  error
	)
	switch environment {
	case "production":
		base, err = zap.NewProduction()
	case "test":
		base = zap.NewNop()
	default:
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		base = zap.NewExample()
	}
	return base.Sugar()
}

// Init replaces the process-wide logger
func Init(environment string) {
	l := New(environment)
	mu.Lock()
	logger = l
	mu.Unlock()
}

// L returns the process-wide logger. It is a no-op logger until Init is called.
func L() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Sync flushes buffered log entries
func Sync() {
	_ = L().Sync()
}
