// Package metrics provides internal metrics collection.
// This package is internal and should not be imported by external projects.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/BaSui01/fusionbrain-go/client"
	"github.com/BaSui01/fusionbrain-go/types"
)

var _ client.Observer = (*Collector)(nil)

// =============================================================================
// 📊 指标收集器
// =============================================================================

// Collector 指标收集器，注册在独立的 Registry 上
type Collector struct {
	registry *prometheus.Registry

	// API 请求指标
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	// 任务指标
	taskSnapshots     *prometheus.CounterVec
	generationSeconds prometheus.Histogram

	logger *zap.Logger
}

// NewCollector 创建指标收集器
func NewCollector(namespace string, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	c := &Collector{
		registry: reg,
		logger:   logger.With(zap.String("component", "metrics")),
	}

	// API 请求指标
	c.requestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of FusionBrain API operations",
		},
		[]string{"operation", "outcome", "status"},
	)

	c.requestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "FusionBrain API operation duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	// 任务指标
	c.taskSnapshots = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_snapshots_total",
			Help:      "Task snapshots fetched, by remote status and result",
		},
		[]string{"status", "result"},
	)

	c.generationSeconds = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_time_seconds",
			Help:      "Server-reported generation time of finished tasks",
			Buckets:   []float64{5, 10, 20, 30, 45, 60, 90, 120, 300},
		},
	)

	c.logger.Debug("metrics collector initialized", zap.String("namespace", namespace))

	return c
}

// Registry 返回收集器使用的 Registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// =============================================================================
// 🎯 API 请求指标记录
// =============================================================================

// ObserveRequest 记录一次 API 操作，实现 client.Observer
func (c *Collector) ObserveRequest(op types.Operation, outcome string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(string(op), outcome, statusCode(status)).Inc()
	c.requestDuration.WithLabelValues(string(op)).Observe(duration.Seconds())
}

// =============================================================================
// 🖼️ 任务指标记录
// =============================================================================

// ObserveTask 记录一次任务快照
func (c *Collector) ObserveTask(task types.Task) {
	c.taskSnapshots.WithLabelValues(string(task.Status), taskResult(task)).Inc()
	if task.IsFinished() && task.GenerationTime != nil {
		c.generationSeconds.Observe(*task.GenerationTime)
	}
}

// =============================================================================
// 💾 导出
// =============================================================================

// WriteTextfile 以 node_exporter textfile 格式原子写入全部指标
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	c.logger.Debug("metrics textfile written", zap.String("path", path))
	return nil
}

// =============================================================================
// 🔧 辅助函数
// =============================================================================

// statusCode 将 HTTP 状态码转换为字符串
func statusCode(code int) string {
	switch {
	case code == 0:
		return "none"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// taskResult 归类任务快照
func taskResult(task types.Task) string {
	switch {
	case !task.IsFinished():
		return "pending"
	case task.IsSuccess():
		return "success"
	case task.IsCensored():
		return "censored"
	default:
		return "failed"
	}
}
