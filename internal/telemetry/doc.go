// Package telemetry 封装 OpenTelemetry SDK 初始化逻辑，
// 为 FusionBrain 客户端提供 TracerProvider 和 MeterProvider，
// 并通过 Providers.ClientOptions 注入 client.New。
// 当遥测功能禁用时，使用 noop 实现，不连接任何外部服务。
package telemetry
