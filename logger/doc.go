// Package logger provides structured logging for utilkit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with map-valued structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("util")
//	log.Debug("random token generated", logger.Fields(logger.FieldLength, 16))
package logger
