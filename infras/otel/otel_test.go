package otel_test

import (
	"context"
	"errors"
	"sitepro/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder() (otel.Otel, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	return otel.NewWithProvider(provider), recorder
}

func TestScope_RecordsSpan(t *testing.T) {
	tracer, recorder := newRecorder()

	_, scope := tracer.NewScope(context.Background(), "service", "service.bid.Transition")
	scope.SetAttributes(map[string]any{
		"bid.id":     "b1",
		"approved":   true,
		"rate":       12.5,
		"recipients": []string{"vendor-1", "pm-1"},
	})
	scope.AddEvent("contract_created")
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "service.bid.Transition", span.Name())
	assert.Equal(t, "service", span.InstrumentationScope().Name)
	assert.Equal(t, codes.Unset, span.Status().Code)
	assert.Contains(t, span.Attributes(), attribute.String("bid.id", "b1"))
	assert.Contains(t, span.Attributes(), attribute.Bool("approved", true))
	assert.Contains(t, span.Attributes(), attribute.Float64("rate", 12.5))
	assert.Contains(t, span.Attributes(), attribute.StringSlice("recipients", []string{"vendor-1", "pm-1"}))
	require.Len(t, span.Events(), 1)
	assert.Equal(t, "contract_created", span.Events()[0].Name)
}

func TestScope_TraceError(t *testing.T) {
	tracer, recorder := newRecorder()

	_, scope := tracer.NewScope(context.Background(), "repository", "repository.rental.Update")
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("stale status"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "stale status", spans[0].Status().Description)
}

func TestScope_NestedSpansShareTrace(t *testing.T) {
	tracer, recorder := newRecorder()

	ctx, parent := tracer.NewScope(context.Background(), "handler", "handler.rental.Transition")
	_, child := tracer.NewScope(ctx, "service", "service.rental.Transition")
	child.End()
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext().TraceID(), spans[0].SpanContext().TraceID())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}
