// SPDX-License-Identifier: MIT

package apsp

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("tiledapsp.apsp")

// Run outcomes used as the "outcome" label.
const (
	outcomeOK      = "ok"
	outcomeAborted = "aborted"
	outcomeError   = "error"
)

var (
	// relaxTasksTotal counts kernel invocations by phase.
	relaxTasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tiledapsp_relax_tasks_total",
		Help: "Tile relaxations executed, by phase",
	}, []string{"phase"})

	// barriersTotal counts barriers crossed (four per primary block).
	barriersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tiledapsp_barriers_total",
		Help: "Synchronisation barriers crossed by the tiled executor",
	})

	// runDuration tracks executor wall time by outcome.
	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tiledapsp_run_duration_seconds",
		Help:    "Tiled Floyd-Warshall run duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12), // 0.1ms to ~7min
	}, []string{"outcome"})

	// matrixNodes tracks the matrix dimension per computation.
	matrixNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tiledapsp_matrix_nodes",
		Help:    "Distance matrix dimension (n) per computation",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
	})
)

// startSpan opens a span with the given attributes.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// failSpan records err on span and marks it as failed. Returns err.
func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
