package logger

import (
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

var (
	once   sync.Once
	logger *otelzap.Logger
)

// OtelZapLogger returns the process-wide otel-aware logger, created on first
// use and tagged with the calling package's name.
func OtelZapLogger(pkg string) otelzap.Logger {
	once.Do(func() {
		l := New(pkg)
		logger = otelzap.New(l.Logger)
	})
	return *logger
}
