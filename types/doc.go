// Copyright (c) fusionbrain-go Authors.
// Licensed under the MIT License.

/*
Package types 提供 FusionBrain 客户端的全局共享类型定义。

# 概述

types 是最底层的公共包，不依赖任何内部包，为 validate、classify、client
等上层模块提供统一的类型契约，避免循环依赖。

# 核心类型

  - Task / TaskStatus    — 远端生成任务的不可变快照（INITIAL → PROCESSING → DONE | FAIL）
  - ModelInfo / StyleInfo — 模型与风格目录条目
  - GenerationOutcome    — 提交结果的标签联合（Accepted / Rejected）
  - Error / ErrorKind    — 分类错误体系，含 Operation、HTTP 状态码、原始响应体与 Cause
  - Operation            — 客户端公开操作名称

# 主要能力

  - 任务谓词：IsFinished / IsCensored / IsSuccess，均为快照上的纯函数
  - 错误工具链：AsError / GetErrorKind / IsKind，以及按 Kind 匹配的 errors.Is 哨兵
  - 图像解码：Task.DecodeImages（base64，兼容 data URI 前缀）
  - 目录查找：FindModel / FindStyle
*/
package types
