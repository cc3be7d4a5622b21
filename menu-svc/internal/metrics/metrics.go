package metrics

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Recorder holds the OpenTelemetry counters of menu-svc.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	assetsSaved        metric.Int64Counter
	assetSaveFailures  metric.Int64Counter
	assetsDeleted      metric.Int64Counter
	assetDeleteSkipped metric.Int64Counter
	httpRequests       metric.Int64Counter
}

func NewRecorder() *Recorder {
	m := otel.GetMeterProvider().Meter("menu-svc")
	return &Recorder{
		assetsSaved:        counter(m, "assets_saved_total"),
		assetSaveFailures:  counter(m, "assets_save_failures_total"),
		assetsDeleted:      counter(m, "assets_deleted_total"),
		assetDeleteSkipped: counter(m, "assets_delete_skipped_total"),
		httpRequests:       counter(m, "http_requests_total"),
	}
}

func counter(m metric.Meter, name string) metric.Int64Counter {
	c, err := m.Int64Counter(name)
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}

func (r *Recorder) AssetSaved(ctx context.Context) {
	if r == nil {
		return
	}
	r.assetsSaved.Add(ctx, 1)
}

func (r *Recorder) AssetSaveFailed(ctx context.Context, reason string) {
	if r == nil {
		return
	}
	r.assetSaveFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (r *Recorder) AssetDeleted(ctx context.Context) {
	if r == nil {
		return
	}
	r.assetsDeleted.Add(ctx, 1)
}

func (r *Recorder) AssetDeleteSkipped(ctx context.Context, reason string) {
	if r == nil {
		return
	}
	r.assetDeleteSkipped.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (r *Recorder) HTTPRequest(ctx context.Context, method string, status int) {
	if r == nil {
		return
	}
	r.httpRequests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("status", StatusClass(status)),
	))
}

func StatusClass(code int) string {
	if code < 100 || code > 599 {
		return "0"
	}
	return strconv.Itoa(code/100) + "xx"
}
