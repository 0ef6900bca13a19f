// Package tracing provides OpenTelemetry tracing integration.
//
// It exposes the application tracer and an HTTP middleware that extracts
// W3C Trace Context from incoming requests, opens a server span per request
// and echoes the trace ID back in the X-Trace-Id response header.
//
// Example usage:
//
//	import "stucode/internal/observability/tracing"
//
//	func processRequest(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "process-request")
//	    defer span.End()
//	    // ... process request ...
//	}
package tracing
