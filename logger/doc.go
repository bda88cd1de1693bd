// Package logger provides structured logging backed by zerolog.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("webservice")
//	log.Info("resource loaded", logger.Fields("url", url, "status", 200))
package logger
