// ==============================================================================================
// FILE: internal/tracelog/tracelog.go
// ==============================================================================================
// PACKAGE: tracelog
// PURPOSE: Structured trace/debug logging for the resolution engine and CLI, built on
//          go.uber.org/zap (SPEC_FULL.md §4.4). Purely observational — nothing in this package
//          may influence resolution order or answers; it only watches.
// ==============================================================================================

package tracelog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console-encoded zap.Logger. When trace is false the logger
// is a no-op (zap.NewNop()), so call sites never need their own on/off
// check — they can log unconditionally and pay only the cost of a disabled
// level check.
func New(trace bool) (*zap.Logger, error) {
	if !trace {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.EncoderConfig.TimeKey = "" // proof traces are read live, not greppable by time
	return cfg.Build()
}
