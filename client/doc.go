// Copyright (c) fusionbrain-go Authors.
// Licensed under the MIT License.

/*
Package client 是 FusionBrain 文生图 API 的客户端门面。

# 概述

每个公开方法对应一次请求-响应交换：构造请求，经 Transport 发送，
非 2xx 状态或传输失败交给 classify 包归类为 *types.Error，
2xx 响应体解码后交给 validate 包校验为类型化实体。
客户端本身不重试、不缓存、不限流、不轮询；构造后无可变状态，可并发使用。

# 核心类型

  - Client        — 五个操作：CheckAvailability、Generate、CheckStatus、ListModels、ListStyles
  - Config        — API Key / Secret、Endpoint 与目录 URL，构造时复制
  - Transport     — 可替换的 HTTP 传输；HTTPTransport 为默认实现（TLS 加固）
  - Observer      — 每次操作结束后的回调，用于外部指标采集

# 主要能力

  - 就绪检查：兼容 {"status"} 与 {"model_status"} 两种响应形态，Strict() 下返回 MODEL_NOT_READY
  - 提交生成：multipart 请求体（JSON params 部分 + model_id 字段）；
    响应不是合法任务时返回 Rejected(原始响应体)，而不是错误
  - 状态查询：每次返回新的 types.Task 快照；已取走的结果再次查询为 EXPIRED
  - 目录获取：任一条目校验失败则整个列表失败；风格目录请求不携带鉴权头
  - 可观测性：OpenTelemetry span 与 fusionbrain.client.requests / fusionbrain.client.duration 指标，
    zap 日志（Debug 记录每次交换，Warn 记录失败），日志中从不出现密钥
*/
package client
