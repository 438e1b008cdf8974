package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewWithoutEndpointIsNoop(t *testing.T) {
	tp, shutdown, err := New(context.Background(), "", "amply")
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "intake.submit")
	span.End()

	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewWithEndpoint(t *testing.T) {
	tp, shutdown, err := New(context.Background(), "http://127.0.0.1:4318", "amply")
	require.NoError(t, err)
	require.NotNil(t, tp)

	_, ok := tp.(*sdktrace.TracerProvider)
	assert.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}

func TestNewProviderRecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := NewProvider(sdktrace.WithSyncer(exporter), "amply")

	_, span := tp.Tracer("test").Start(context.Background(), "intake.field_changed")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "intake.field_changed", spans[0].Name)

	var service string
	for _, kv := range spans[0].Resource.Attributes() {
		if kv.Key == "service.name" {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, "amply", service)
}
