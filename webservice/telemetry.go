package webservice

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/resourcekit/observability"
	"github.com/kbukum/resourcekit/version"
)

// Outcome labels recorded on spans and metrics.
const (
	outcomeSuccess = "success"
)

type telemetry struct {
	tracer  trace.Tracer
	metrics *observability.LoadMetrics
}

func newTelemetry(tp trace.TracerProvider, mp metric.MeterProvider) (*telemetry, error) {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	metrics, err := observability.NewLoadMetrics(mp.Meter(observability.InstrumentationName,
		metric.WithInstrumentationVersion(version.Version)))
	if err != nil {
		return nil, err
	}
	return &telemetry{
		tracer:  tp.Tracer(observability.InstrumentationName, trace.WithInstrumentationVersion(version.Version)),
		metrics: metrics,
	}, nil
}

func (t *telemetry) start(ctx context.Context, method, url, requestID string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, observability.SpanResourceLoad,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(observability.AttrHTTPMethod, method),
			attribute.String(observability.AttrURL, url),
			attribute.String(observability.AttrRequestID, requestID),
		),
	)
}

func (t *telemetry) finish(ctx context.Context, span trace.Span, method string, status int, loadErr *Error, d time.Duration) {
	outcome := outcomeSuccess
	if loadErr != nil {
		outcome = loadErr.Kind.String()
		span.RecordError(loadErr)
		span.SetStatus(codes.Error, loadErr.Message)
	}
	if status > 0 {
		span.SetAttributes(attribute.Int(observability.AttrHTTPStatus, status))
	}
	span.SetAttributes(
		attribute.String(observability.AttrOutcome, outcome),
		attribute.Int64(observability.AttrDurationMs, d.Milliseconds()),
	)
	span.End()

	t.metrics.RecordLoad(ctx, method, outcome, d)
}
