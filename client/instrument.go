package client

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/BaSui01/fusionbrain-go/types"
	"github.com/BaSui01/fusionbrain-go/validate"
)

const instrumentationName = "github.com/BaSui01/fusionbrain-go/client"

// Outcome labels besides the error kinds.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Observer receives one notification per completed operation. outcome is
// OutcomeOK, OutcomeRejected, an error kind, or validate.Kind; status is 0
// when no response was received.
type Observer interface {
	ObserveRequest(op types.Operation, outcome string, status int, duration time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveRequest(types.Operation, string, int, time.Duration) {}

// instruments holds the OpenTelemetry handles shared by every call.
type instruments struct {
	tracer trace.Tracer
	// 计数
	requestTotal metric.Int64Counter
	// 直方图
	requestDuration metric.Float64Histogram
}

func newInstruments(tp trace.TracerProvider, mp metric.MeterProvider) (*instruments, error) {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)
	in := &instruments{tracer: tp.Tracer(instrumentationName)}

	var err error
	in.requestTotal, err = meter.Int64Counter("fusionbrain.client.requests",
		metric.WithDescription("Total number of FusionBrain API operations"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, err
	}

	in.requestDuration, err = meter.Float64Histogram("fusionbrain.client.duration",
		metric.WithDescription("Operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30))
	if err != nil {
		return nil, err
	}
	return in, nil
}

// call tracks one public operation from start to finish.
type call struct {
	c        *Client
	op       types.Operation
	span     trace.Span
	start    time.Time
	status   int
	rejected bool
}

// begin opens the span for op.
func (c *Client) begin(ctx context.Context, op types.Operation) (context.Context, *call) {
	ctx, span := c.inst.tracer.Start(ctx, "fusionbrain."+string(op),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("fusionbrain.operation", string(op))))
	return ctx, &call{c: c, op: op, span: span, start: time.Now()}
}

// finish records metrics, notifies the observer and ends the span.
func (cl *call) finish(ctx context.Context, err error) {
	defer cl.span.End()

	duration := time.Since(cl.start)
	outcome := outcomeOf(err, cl.rejected)
	attrs := []attribute.KeyValue{
		attribute.String("operation", string(cl.op)),
		attribute.String("outcome", outcome),
	}

	// Metrics must not be recorded against a cancelled context.
	mctx := context.WithoutCancel(ctx)
	cl.c.inst.requestTotal.Add(mctx, 1, metric.WithAttributes(attrs...))
	cl.c.inst.requestDuration.Record(mctx, duration.Seconds(), metric.WithAttributes(attrs...))
	cl.c.observer.ObserveRequest(cl.op, outcome, cl.status, duration)

	cl.span.SetAttributes(attribute.String("fusionbrain.outcome", outcome))
	if cl.status != 0 {
		cl.span.SetAttributes(attribute.Int("http.response.status_code", cl.status))
	}
	if err != nil {
		cl.span.RecordError(err)
		cl.span.SetStatus(codes.Error, outcome)
		cl.c.logger.Warn("operation failed",
			zap.String("operation", string(cl.op)),
			zap.String("outcome", outcome),
			zap.Int("status", cl.status),
			zap.Duration("duration", duration),
			zap.Error(err))
		return
	}
	cl.span.SetStatus(codes.Ok, "")
}

func outcomeOf(err error, rejected bool) string {
	switch {
	case err == nil && rejected:
		return OutcomeRejected
	case err == nil:
		return OutcomeOK
	case errors.Is(err, validate.ErrValidationFailed):
		return validate.Kind
	}
	if kind := types.GetErrorKind(err); kind != "" {
		return string(kind)
	}
	return OutcomeError
}
