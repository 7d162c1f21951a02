package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordedHooks(t *testing.T) (*TracingHooks, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewTracingHooks(tp), rec
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestTracingHooks_Layout(t *testing.T) {
	hooks, rec := newRecordedHooks(t)
	ctx := context.Background()

	hooks.OnLayoutStart(ctx, "balanced", 6)
	hooks.OnLayoutComplete(ctx, "balanced", 25*time.Millisecond, nil)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	span := spans[0]

	assert.Equal(t, "layout", span.Name())
	assert.Equal(t, "balanced", attrMap(span.Attributes())["layout.strategy"].AsString())
	assert.Equal(t, 25*time.Millisecond, span.EndTime().Sub(span.StartTime()))
	assert.Equal(t, codes.Unset, span.Status().Code)
}

func TestTracingHooks_RenderError(t *testing.T) {
	hooks, rec := newRecordedHooks(t)
	ctx := context.Background()

	hooks.OnRenderComplete(ctx, []string{"svg", "png"}, time.Millisecond, errors.New("graphviz failed"))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	span := spans[0]

	assert.Equal(t, "render", span.Name())
	assert.Equal(t, []string{"svg", "png"}, attrMap(span.Attributes())["render.formats"].AsStringSlice())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "graphviz failed", span.Status().Description)
	require.NotEmpty(t, span.Events())
	assert.Equal(t, "exception", span.Events()[0].Name)
}

func TestTracingHooks_HTTP(t *testing.T) {
	hooks, rec := newRecordedHooks(t)
	ctx := context.Background()

	hooks.OnRequest(ctx, "POST", "/v1/render")
	hooks.OnResponse(ctx, "POST", "/v1/render", 200, time.Millisecond)
	hooks.OnResponse(ctx, "POST", "/v1/render", 503, time.Millisecond)

	spans := rec.Ended()
	require.Len(t, spans, 2)

	ok := attrMap(spans[0].Attributes())
	assert.Equal(t, "POST /v1/render", spans[0].Name())
	assert.Equal(t, int64(200), ok["http.status_code"].AsInt64())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Contains(t, spans[1].Status().Description, "503")
}

func TestTracingHooks_NestedSpans(t *testing.T) {
	hooks, rec := newRecordedHooks(t)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	ctx, parent := tp.Tracer("test").Start(context.Background(), "request")

	hooks.OnLayoutStart(ctx, "flow", 3)
	hooks.OnLayoutComplete(ctx, "flow", time.Millisecond, nil)
	parent.End()

	spans := rec.Ended()
	require.Len(t, spans, 2)
	layout, request := spans[0], spans[1]

	assert.Equal(t, request.SpanContext().SpanID(), layout.Parent().SpanID())
	require.Len(t, request.Events(), 1)
	assert.Equal(t, "layout.start", request.Events()[0].Name)
}

func TestSetupTracing_Disabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	Reset()

	shutdown, err := SetupTracing(context.Background(), "adaptivegrid")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	_, isNoop := Pipeline().(NoopPipelineHooks)
	assert.True(t, isNoop, "hooks should stay untouched without an endpoint")
}

func TestSetupTracing_Enabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://127.0.0.1:4318")
	t.Setenv("OTEL_SERVICE_NAME", "grid-test")
	t.Cleanup(Reset)

	shutdown, err := SetupTracing(context.Background(), "adaptivegrid")
	require.NoError(t, err)

	_, isTracing := Pipeline().(*TracingHooks)
	assert.True(t, isTracing)
	_, isTracing = HTTP().(*TracingHooks)
	assert.True(t, isTracing)

	// Nothing was recorded, so shutdown does not need to reach the collector.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = shutdown(ctx)
}
