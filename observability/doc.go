// Package observability wires OpenTelemetry tracing and metrics for
// resource loads.
//
// Hosts that export telemetry install providers once at startup:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
// Webservices pick up the global providers unless others are injected.
package observability
