/*
Package validate 是边界校验器：把 encoding/json 解码得到的无类型值转换为
types 包中的实体（Task、ModelInfo、StyleInfo），或返回结构化的 *Error。

# 概述

必填字段的校验是穷尽式的：一次调用报告所有缺失或类型错误的字段，
仅凭错误信息即可定位远端 API 的变化。可选字段的校验是宽松的：
只有存在且类型正确时才会保留，类型错误的可选字段被静默丢弃。

# 核心函数

  - DecodeJSON            — 解码响应体，数字保留为 json.Number
  - Task                  — uuid、status 必填，其余字段可选
  - ModelInfo / StyleInfo — 四个字段全部必填
  - ModelList / StyleList — 顶层必须是数组（ErrNotArray），任一元素失败则整体失败

所有校验错误都满足 errors.Is(err, ErrValidationFailed)，对应错误体系中的
VALIDATION_FAILED。
*/
package validate
