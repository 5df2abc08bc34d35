package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys shared by every instrument.
const (
	attrMethod   = "method"
	attrPath     = "path"
	attrStatus   = "status"
	attrProvider = "provider"
	attrOutcome  = "outcome"

	outcomeOK    = "ok"
	outcomeError = "error"
)

// Render latency covers three sequential upstream calls, so buckets reach further than for
// plain HTTP handling.
var renderBucketsMs = []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000}

type otelInstruments struct {
	ctx               context.Context
	requests          metric.Int64Counter
	requestLatencyMs  metric.Float64Histogram
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	rateLimitHits     metric.Int64Counter
	retryAfterMs      metric.Float64Histogram
	renders           metric.Int64Counter
	renderLatencyMs   metric.Float64Histogram
}

// instrumentBuilder creates instruments on one meter and keeps the first error.
type instrumentBuilder struct {
	meter metric.Meter
	err   error
}

func (b *instrumentBuilder) counter(name, desc string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil && b.err == nil {
		b.err = err
	}
	return c
}

func (b *instrumentBuilder) histogramMs(name, desc string, buckets ...float64) metric.Float64Histogram {
	opts := []metric.Float64HistogramOption{metric.WithDescription(desc)}
	if len(buckets) > 0 {
		opts = append(opts, metric.WithExplicitBucketBoundaries(buckets...))
	}
	h, err := b.meter.Float64Histogram(name, opts...)
	if err != nil && b.err == nil {
		b.err = err
	}
	return h
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	b := &instrumentBuilder{meter: provider.Meter(serviceName)}
	inst := &otelInstruments{
		ctx:               context.Background(),
		requests:          b.counter("http_requests_total", "HTTP requests by method, path and status"),
		requestLatencyMs:  b.histogramMs("http_request_duration_ms", "HTTP request latency"),
		providerAttempts:  b.counter("provider_attempts_total", "Upstream fetches by provider"),
		providerErrors:    b.counter("provider_errors_total", "Failed upstream fetches by provider"),
		providerLatencyMs: b.histogramMs("provider_duration_ms", "Upstream fetch latency"),
		rateLimitHits:     b.counter("provider_rate_limit_hits_total", "Upstream 429 responses"),
		retryAfterMs:      b.histogramMs("provider_retry_after_ms", "Retry-After advertised on 429"),
		renders:           b.counter("thread_renders_total", "Thread renders by outcome"),
		renderLatencyMs:   b.histogramMs("thread_render_duration_ms", "End-to-end thread render latency", renderBucketsMs...),
	}
	if b.err != nil {
		return nil, b.err
	}
	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(attrMethod, method),
		attribute.String(attrPath, path),
		attribute.Int(attrStatus, status),
	)
	o.requests.Add(o.ctx, 1, attrs)
	o.requestLatencyMs.Record(o.ctx, durationMs(duration), attrs)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(attrProvider, provider))
	o.providerAttempts.Add(o.ctx, 1, attrs)
	o.providerLatencyMs.Record(o.ctx, durationMs(duration), attrs)
	if err != nil {
		o.providerErrors.Add(o.ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordRateLimit(provider string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(attrProvider, provider))
	o.rateLimitHits.Add(o.ctx, 1, attrs)
	if retryAfter > 0 {
		o.retryAfterMs.Record(o.ctx, durationMs(retryAfter), attrs)
	}
}

// recordRender counts errors through the outcome attribute rather than a second counter.
func (o *otelInstruments) recordRender(duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(attrOutcome, outcomeOf(err)))
	o.renders.Add(o.ctx, 1, attrs)
	o.renderLatencyMs.Record(o.ctx, durationMs(duration), attrs)
}

func outcomeOf(err error) string {
	if err != nil {
		return outcomeError
	}
	return outcomeOK
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
