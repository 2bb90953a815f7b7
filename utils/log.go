// Package utils holds small, dependency-light helpers shared across the
// gateway: logging, pointer helpers, and hex decoding.
package utils

import (
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"
)

// SimpleLogger is the logging surface every core component depends on.
// Handlers and transports never reach for the global zap logger or the
// stdlib log package directly.
type SimpleLogger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps a *zap.Logger as a SimpleLogger.
func NewZapLogger(l *zap.Logger) SimpleLogger {
	return &zapLogger{sugar: l.Sugar()}
}

func (z *zapLogger) Debugw(msg string, keysAndValues ...any) { z.sugar.Debugw(msg, keysAndValues...) }
func (z *zapLogger) Infow(msg string, keysAndValues ...any)  { z.sugar.Infow(msg, keysAndValues...) }
func (z *zapLogger) Warnw(msg string, keysAndValues ...any)  { z.sugar.Warnw(msg, keysAndValues...) }
func (z *zapLogger) Errorw(msg string, keysAndValues ...any) { z.sugar.Errorw(msg, keysAndValues...) }

type nopLogger struct{}

func (nopLogger) Debugw(string, ...any) {}
func (nopLogger) Infow(string, ...any)  {}
func (nopLogger) Warnw(string, ...any)  {}
func (nopLogger) Errorw(string, ...any) {}

// NewNopZapLogger returns a SimpleLogger that discards everything, for use
// in tests where log output is noise.
func NewNopZapLogger() SimpleLogger {
	return nopLogger{}
}

// Ptr returns a pointer to a copy of v. Handy for optional struct fields
// populated from a literal.
func Ptr[T any](v T) *T {
	return &v
}

// HexToBytes decodes a lowercase, no-0x-prefix hex string of the expected
// byte length. It is the canonical hash/hex decode path for DatabaseAdapter
// queries (§4.1: "malformed hex fails with InvalidArgument").
func HexToBytes(s string, expectedLen int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	if expectedLen > 0 && len(b) != expectedLen {
		return nil, fmt.Errorf("expected %d bytes, got %d", expectedLen, len(b))
	}
	return b, nil
}

// BytesToHex encodes bytes as lowercase hex with no 0x prefix, per §4.2.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}
