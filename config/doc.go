// Package config 提供 fusionbrain-go 命令行的配置管理功能。
//
// 配置按 默认值 → YAML 文件 → 环境变量（FUSIONBRAIN_ 前缀）的顺序叠加，
// Validate 一次报告全部问题。APIConfig.ClientConfig 将 API 配置转换为
// client.Config；PollConfig 仅供命令行的等待逻辑使用。
package config
