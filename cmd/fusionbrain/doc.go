// Copyright (c) fusionbrain-go Authors.
// Licensed under the MIT License.

/*
Package main 提供 FusionBrain 文生图命令行客户端。

# 概述

cmd/fusionbrain 基于 cobra 组织子命令，启动时依次加载 .env（godotenv）、
YAML 配置与 FUSIONBRAIN_* 环境变量，构建 zap 日志、OpenTelemetry
遥测、Prometheus 指标收集器以及 TLS 加固的 API 客户端。

# 子命令

  - check     — 检查模型是否可用，--strict 时不可用即失败
  - generate  — 提交生成任务，--wait 时轮询至结束并保存图片
  - status    — 查询任务快照，--out 时保存图片
  - models / styles / catalog — 列出模型与风格（catalog 并发请求）
  - version   — 显示构建信息

# 轮询

客户端库本身不轮询。generate --wait 按 poll.interval 定时查询，
超过 poll.max_wait 或收到错误（例如任务过期）即停止。

# 构建注入

Version、BuildTime、GitCommit 通过 ldflags 设置。
*/
package main
