// Package telemetry provides OpenTelemetry initialization and helpers
// for distributed tracing across the Kondate service.
//
// The package configures OTLP HTTP export for traces and logs.
package telemetry
