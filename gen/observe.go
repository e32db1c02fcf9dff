package gen

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// EngineMetrics 封装 prometheus 指标
type EngineMetrics struct {
	generationCounter  *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	generatedRows      *prometheus.CounterVec
	memoryDelta        *prometheus.GaugeVec
}

// NewEngineMetrics 创建指标收集器并注册到指定 registry
func NewEngineMetrics(name string, registerer prometheus.Registerer) *EngineMetrics {
	metrics := &EngineMetrics{
		generationCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: name + "_generations_total",
				Help: "Total number of dataset generations",
			},
			[]string{"dataset", "status"},
		),
		generationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    name + "_generation_duration_seconds",
				Help:    "Duration of dataset generations in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
			},
			[]string{"dataset"},
		),
		generatedRows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: name + "_generated_rows_total",
				Help: "Total number of generated rows",
			},
			[]string{"dataset"},
		),
		memoryDelta: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: name + "_generation_memory_delta_bytes",
				Help: "Heap allocation delta of the last generation",
			},
			[]string{"dataset"},
		),
	}

	registerer.MustRegister(
		metrics.generationCounter,
		metrics.generationDuration,
		metrics.generatedRows,
		metrics.memoryDelta,
	)

	return metrics
}

// observeGenerate 统一的生成观测逻辑
// fn 返回实际生成的行数，用于行数指标
func (e *Engine) observeGenerate(ctx context.Context, datasetType string, fn func(context.Context) (int, error)) error {
	start := time.Now()

	var memBefore runtime.MemStats
	if e.enableMetrics && e.metrics != nil {
		runtime.ReadMemStats(&memBefore)
	}

	var span trace.Span
	if e.enableTracing && e.tracer != nil {
		ctx, span = e.tracer.Start(ctx, fmt.Sprintf("tempdataset.generate.%s", datasetType),
			trace.WithAttributes(
				attribute.String("dataset", datasetType),
			),
		)
		defer span.End()
	}

	rows, err := fn(ctx)
	duration := time.Since(start)

	if e.enableTracing && span != nil {
		span.SetAttributes(
			attribute.Int("rows", rows),
			attribute.Int64("duration_ms", duration.Milliseconds()),
		)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			span.RecordError(err)
		} else {
			span.SetStatus(codes.Ok, "")
		}
	}

	if e.enableMetrics && e.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		e.metrics.generationCounter.WithLabelValues(datasetType, status).Inc()
		e.metrics.generationDuration.WithLabelValues(datasetType).Observe(duration.Seconds())
		if err == nil {
			e.metrics.generatedRows.WithLabelValues(datasetType).Add(float64(rows))

			var memAfter runtime.MemStats
			runtime.ReadMemStats(&memAfter)
			e.metrics.memoryDelta.WithLabelValues(datasetType).Set(float64(memAfter.HeapAlloc) - float64(memBefore.HeapAlloc))
		}
	}

	if e.logger != nil {
		if err != nil {
			e.logger.ErrorContext(ctx, "dataset generation failed",
				"dataset", datasetType,
				"duration_ms", duration.Milliseconds(),
				"error", err.Error(),
			)
		} else {
			e.logger.InfoContext(ctx, "dataset generation completed",
				"dataset", datasetType,
				"rows", rows,
				"duration_ms", duration.Milliseconds(),
			)
		}
	}

	return err
}
