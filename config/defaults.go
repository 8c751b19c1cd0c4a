// =============================================================================
// 📦 fusionbrain-go 默认配置
// =============================================================================
// 提供所有配置项的合理默认值
// =============================================================================
package config

import (
	"time"

	"github.com/BaSui01/fusionbrain-go/client"
)

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		API:       DefaultAPIConfig(),
		Log:       DefaultLogConfig(),
		Telemetry: DefaultTelemetryConfig(),
		Metrics:   DefaultMetricsConfig(),
		Poll:      DefaultPollConfig(),
	}
}

// DefaultAPIConfig 返回默认 API 配置（凭据必须由文件或环境变量提供）
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Endpoint:  client.DefaultEndpoint,
		StylesURL: client.DefaultStylesURL,
		Timeout:   client.DefaultTimeout,
	}
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:            "info",
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		EnableCaller:     false,
		EnableStacktrace: false,
	}
}

// DefaultTelemetryConfig 返回默认遥测配置
func DefaultTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		Enabled:      false,
		OTLPEndpoint: "localhost:4317",
		ServiceName:  "fusionbrain",
		SampleRate:   0.1,
	}
}

// DefaultMetricsConfig 返回默认指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "fusionbrain",
	}
}

// DefaultPollConfig 返回默认轮询配置
func DefaultPollConfig() PollConfig {
	return PollConfig{
		Interval: 5 * time.Second,
		MaxWait:  5 * time.Minute,
	}
}
