package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaSui01/fusionbrain-go/types"
)

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

// =============================================================================
// 🧪 Collector 测试
// =============================================================================

func TestNewCollector(t *testing.T) {
	collector := NewCollector("test", zap.NewNop())

	assert.NotNil(t, collector)
	assert.NotNil(t, collector.requestsTotal)
	assert.NotNil(t, collector.requestDuration)
	assert.NotNil(t, collector.taskSnapshots)
	assert.NotNil(t, collector.generationSeconds)
	assert.NotNil(t, collector.Registry())
}

// Each collector owns its registry, so two collectors with the same
// namespace do not collide.
func TestNewCollector_IsolatedRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCollector("same", zap.NewNop())
		NewCollector("same", nil)
	})
}

func TestCollector_ObserveRequest(t *testing.T) {
	collector := NewCollector("test", zap.NewNop())

	collector.ObserveRequest(types.OpCheckStatus, "ok", 200, 100*time.Millisecond)
	collector.ObserveRequest(types.OpCheckStatus, "ok", 200, 50*time.Millisecond)
	collector.ObserveRequest(types.OpCheckStatus, string(types.KindExpired), 404, 10*time.Millisecond)
	collector.ObserveRequest(types.OpListModels, string(types.KindUnexpected), 0, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.requestsTotal.WithLabelValues("checkStatus", "ok", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.requestsTotal.WithLabelValues("checkStatus", "EXPIRED", "4xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.requestsTotal.WithLabelValues("listModels", "UNEXPECTED", "none")))
	assert.Equal(t, 3, testutil.CollectAndCount(collector.requestsTotal))
	assert.Equal(t, 2, testutil.CollectAndCount(collector.requestDuration))
}

func TestCollector_ObserveTask(t *testing.T) {
	collector := NewCollector("test", zap.NewNop())

	collector.ObserveTask(types.Task{ID: "a", Status: types.TaskStatusProcessing, GenerationTime: floatPtr(3)})
	collector.ObserveTask(types.Task{ID: "a", Status: types.TaskStatusDone, Images: []string{"x"}, GenerationTime: floatPtr(12)})
	collector.ObserveTask(types.Task{ID: "b", Status: types.TaskStatusDone, Images: []string{"x"}, Censored: boolPtr(true)})
	collector.ObserveTask(types.Task{ID: "c", Status: types.TaskStatusFail})

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.taskSnapshots.WithLabelValues("PROCESSING", "pending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.taskSnapshots.WithLabelValues("DONE", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.taskSnapshots.WithLabelValues("DONE", "censored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.taskSnapshots.WithLabelValues("FAIL", "failed")))

	// Only the finished task with a generation time is observed.
	expected := `
# HELP test_generation_time_seconds Server-reported generation time of finished tasks
# TYPE test_generation_time_seconds histogram
test_generation_time_seconds_bucket{le="5"} 0
test_generation_time_seconds_bucket{le="10"} 0
test_generation_time_seconds_bucket{le="20"} 1
test_generation_time_seconds_bucket{le="30"} 1
test_generation_time_seconds_bucket{le="45"} 1
test_generation_time_seconds_bucket{le="60"} 1
test_generation_time_seconds_bucket{le="90"} 1
test_generation_time_seconds_bucket{le="120"} 1
test_generation_time_seconds_bucket{le="300"} 1
test_generation_time_seconds_bucket{le="+Inf"} 1
test_generation_time_seconds_sum 12
test_generation_time_seconds_count 1
`
	require.NoError(t, testutil.CollectAndCompare(collector.generationSeconds, strings.NewReader(expected)))
}

func TestCollector_WriteTextfile(t *testing.T) {
	collector := NewCollector("fb", zap.NewNop())
	collector.ObserveRequest(types.OpGenerate, "rejected", 200, time.Second)

	path := filepath.Join(t.TempDir(), "fusionbrain.prom")
	require.NoError(t, collector.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fb_api_requests_total{operation="generate",outcome="rejected",status="2xx"} 1`)
}

func TestCollector_WriteTextfile_BadPath(t *testing.T) {
	collector := NewCollector("fb", zap.NewNop())
	err := collector.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	assert.Error(t, err)
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{0, "none"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{415, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
		{100, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusCode(tt.code))
		})
	}
}
