// Package log is the structured logging facade used across tiny64.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Records are built by the standard
// library slog and routed through a handler that applies our Formatter and
// Outputs, so every entry is formatted once and fanned out.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.WarnLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.WithComponent("generator")
//	l.Error("clock before epoch", log.Err(err))
//
// Libraries that accept an optional Logger default to NewNopLogger.
package log
