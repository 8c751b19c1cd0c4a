// Copyright (c) fusionbrain-go Authors.
// Licensed under the MIT License.

/*
包 metrics 提供基于 Prometheus 的客户端指标采集能力。

# 概述

Collector 在独立的 prometheus.Registry 上通过 promauto.With 注册指标，
实现 client.Observer，可直接通过 client.WithObserver 注入客户端。
命令行进程生命周期短，指标在退出前以 node_exporter textfile 格式写出。

# 核心类型

  - Collector：持有 API 请求与任务快照两组 Prometheus 向量指标。

# 主要能力

  - API 指标：操作总数（operation/outcome/status 分组，状态码归类为
    2xx/3xx/4xx/5xx，未收到响应为 none）与操作耗时。
  - 任务指标：快照计数（按远端状态与 pending/success/censored/failed 归类）、
    服务端上报的生成耗时。
  - 导出：WriteTextfile 原子写入文本文件。
*/
package metrics
