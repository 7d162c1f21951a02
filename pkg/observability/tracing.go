package observability

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans emitted by this module.
const TracerName = "github.com/matzehuels/adaptivegrid"

// TracingHooks turns hook events into OpenTelemetry spans.
//
// Hooks only learn about an operation once it is complete, so spans are
// created on completion and backdated to the start with the reported
// duration. Start events become span events on whatever span ctx carries.
type TracingHooks struct {
	tracer oteltrace.Tracer
}

var (
	_ PipelineHooks = (*TracingHooks)(nil)
	_ HTTPHooks     = (*TracingHooks)(nil)
)

// NewTracingHooks creates hooks that record spans with tp.
func NewTracingHooks(tp oteltrace.TracerProvider) *TracingHooks {
	return &TracingHooks{tracer: tp.Tracer(TracerName)}
}

func (h *TracingHooks) OnLayoutStart(ctx context.Context, strategy string, itemCount int) {
	oteltrace.SpanFromContext(ctx).AddEvent("layout.start", oteltrace.WithAttributes(
		attribute.String("layout.strategy", strategy),
		attribute.Int("layout.items", itemCount),
	))
}

func (h *TracingHooks) OnLayoutComplete(ctx context.Context, strategy string, duration time.Duration, err error) {
	h.record(ctx, "layout", duration, err, attribute.String("layout.strategy", strategy))
}

func (h *TracingHooks) OnRenderStart(ctx context.Context, formats []string) {
	oteltrace.SpanFromContext(ctx).AddEvent("render.start", oteltrace.WithAttributes(
		attribute.StringSlice("render.formats", formats),
	))
}

func (h *TracingHooks) OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error) {
	h.record(ctx, "render", duration, err, attribute.StringSlice("render.formats", formats))
}

func (h *TracingHooks) OnRequest(ctx context.Context, method, route string) {
	oteltrace.SpanFromContext(ctx).AddEvent("http.request", oteltrace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
	))
}

func (h *TracingHooks) OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration) {
	var err error
	if statusCode >= 500 {
		err = httpStatusError(statusCode)
	}
	h.record(ctx, method+" "+route, duration, err,
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", statusCode),
	)
}

func (h *TracingHooks) OnError(ctx context.Context, method, route string, err error) {
	span := oteltrace.SpanFromContext(ctx)
	span.RecordError(err, oteltrace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
	))
}

func (h *TracingHooks) record(ctx context.Context, name string, duration time.Duration, err error, attrs ...attribute.KeyValue) {
	end := time.Now()
	_, span := h.tracer.Start(ctx, name,
		oteltrace.WithTimestamp(end.Add(-duration)),
		oteltrace.WithAttributes(attrs...),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End(oteltrace.WithTimestamp(end))
}

type httpStatusError int

func (e httpStatusError) Error() string {
	return fmt.Sprintf("server responded %d", int(e))
}

// SetupTracing installs [TracingHooks] backed by an OTLP/HTTP exporter when
// OTEL_EXPORTER_OTLP_ENDPOINT is set. OTEL_SERVICE_NAME overrides
// serviceName. Without an endpoint the hooks stay untouched and the returned
// shutdown function does nothing.
func SetupTracing(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	var opts []otlptracehttp.Option
	if strings.Contains(endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		serviceName = name
	}
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	)
	otel.SetTracerProvider(provider)

	th := NewTracingHooks(provider)
	SetPipelineHooks(th)
	SetHTTPHooks(th)

	return provider.Shutdown, nil
}
