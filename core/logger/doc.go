// Package logger wires zap into the application.
//
// It builds a production or development zap configuration from the loaded
// Config and exposes WithRayID, a helper that stamps the per-request ray id
// onto a logger so request-scoped log lines can be correlated.
package logger
