// Package observability lets adaptivegrid report what it is doing without
// knowing who is listening.
//
// The pipeline calls [Pipeline] around every layout and render, and the HTTP
// server calls [HTTP] for every request. Both return no-op hooks until a
// binary installs something else with [SetPipelineHooks] or [SetHTTPHooks].
//
// [TracingHooks] turns those calls into OpenTelemetry spans. [SetupTracing]
// installs it for both registries, exporting over OTLP/HTTP when
// OTEL_EXPORTER_OTLP_ENDPOINT is set:
//
//	shutdown, err := observability.SetupTracing(ctx, "adaptivegrid")
//	if err != nil {
//	    return err
//	}
//	defer shutdown(context.WithoutCancel(ctx))
//
// A layout pass reports itself like this:
//
//	start := time.Now()
//	observability.Pipeline().OnLayoutStart(ctx, "balanced", len(items))
//	// measure and place
//	observability.Pipeline().OnLayoutComplete(ctx, "balanced", time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks observes layout passes and artifact rendering.
type PipelineHooks interface {
	// OnLayoutStart fires before a strategy measures its items.
	OnLayoutStart(ctx context.Context, strategy string, itemCount int)
	OnLayoutComplete(ctx context.Context, strategy string, duration time.Duration, err error)

	// OnRenderStart fires once per render call with every requested format.
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// HTTPHooks observes requests to the layout API. route is the chi route
// pattern when one matched, otherwise the raw path.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)

	// OnError fires for requests answered with an error body, before the
	// response is written.
	OnError(ctx context.Context, method, route string, err error)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int)                       {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, time.Duration, error)   {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopHTTPHooks ignores every event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// registry holds the installed hooks. Reads vastly outnumber writes, which
// happen once at startup and in tests.
type registry struct {
	mu       sync.RWMutex
	pipeline PipelineHooks
	http     HTTPHooks
}

var hooks = registry{
	pipeline: NoopPipelineHooks{},
	http:     NoopHTTPHooks{},
}

// SetPipelineHooks installs h for every later [Pipeline] call. A nil h
// leaves the current hooks in place.
func SetPipelineHooks(h PipelineHooks) {
	if h == nil {
		return
	}
	hooks.mu.Lock()
	hooks.pipeline = h
	hooks.mu.Unlock()
}

// SetHTTPHooks installs h for every later [HTTP] call. A nil h leaves the
// current hooks in place.
func SetHTTPHooks(h HTTPHooks) {
	if h == nil {
		return
	}
	hooks.mu.Lock()
	hooks.http = h
	hooks.mu.Unlock()
}

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.pipeline
}

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return hooks.http
}

// Reset puts the no-op hooks back. Tests that install hooks call it in
// t.Cleanup.
func Reset() {
	hooks.mu.Lock()
	hooks.pipeline = NoopPipelineHooks{}
	hooks.http = NoopHTTPHooks{}
	hooks.mu.Unlock()
}
