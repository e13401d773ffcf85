// Package logging provides structured logging configuration for jsond.
//
// This package wraps log/slog to provide consistent logging across all jsond
// components. It supports configurable log levels and output formats.
//
// # Usage
//
// Create a logger with desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("server started", "port", 3000)
//	logger.Error("snapshot fetch failed", "error", err)
//
// # Output Formats
//
//   - Text: human-readable format for development; colorized via tint when
//     the output is a terminal
//   - JSON: structured format for log aggregation systems
package logging
