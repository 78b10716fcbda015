// Package rolog provides the package-level structured logger used for the
// tokenizer's handful of diagnostics: lexicon-load summaries and
// pre-tokenizer desync warnings (spec §7, §9 "structured logs, not
// standard-error prints"). Callers that embed this module in a larger
// service can redirect it to their own *zap.Logger via SetLogger.
package rolog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger *zap.SugaredLogger
)

func init() {
	z, err := zap.NewProduction()
	if err != nil {
		// Fall back to a no-op logger rather than fail module init over
		// a logging backend that couldn't build (e.g. restrictive sandbox).
		z = zap.NewNop()
	}
	logger = z.Sugar()
}

// SetLogger replaces the package-level logger. Pass nil to install a
// no-op logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l.Sugar()
}

// L returns the current package-level sugared logger.
func L() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
