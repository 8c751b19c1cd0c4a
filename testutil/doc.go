// Copyright (c) fusionbrain-go Authors.
// Licensed under the MIT License.

/*
Package testutil 提供 fusionbrain-go 测试的共享工具和辅助函数。

# 概述

testutil 包为客户端、命令行与内部包的测试提供统一的辅助能力，
避免各包重复实现相似的测试基础设施。

# 核心能力

  - 上下文辅助: TestContext / TestContextWithTimeout / CancelledContext，
    自动注册 Cleanup 防止泄漏
  - 断言工具: AssertJSONEqual
  - 异步辅助: WaitFor
  - 数据工具: MustJSON

# 子包

  - testutil/mocks: MockTransport（client.Transport，支持脚本化响应与错误注入）、
    MockStatusChecker（按顺序回放任务快照）
  - testutil/fixtures: FusionBrain 响应样例，包括任务快照、模型与风格目录、
    PNG/JPEG 图片数据

# 使用示例

	ctx := testutil.TestContext(t)
	transport := mocks.NewMockTransport().WithJSON(200, fixtures.Models())
	c, _ := client.New(cfg, nil, client.WithTransport(transport))
	models, err := c.ListModels(ctx)
*/
package testutil
