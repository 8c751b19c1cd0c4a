// MockStatusChecker 按顺序回放任务快照，用于测试轮询逻辑。
package mocks

import (
	"context"
	"sync"

	"github.com/BaSui01/fusionbrain-go/types"
)

// MockStatusChecker 模拟任务状态查询，最后一个快照重复返回
type MockStatusChecker struct {
	mu        sync.Mutex
	snapshots []types.Task
	err       error
	calls     int
}

// NewMockStatusChecker 创建按顺序返回 snapshots 的 MockStatusChecker
func NewMockStatusChecker(snapshots ...types.Task) *MockStatusChecker {
	return &MockStatusChecker{snapshots: snapshots}
}

// WithError 设置每次查询返回的错误
func (m *MockStatusChecker) WithError(err error) *MockStatusChecker {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// CheckStatus 返回下一个快照
func (m *MockStatusChecker) CheckStatus(ctx context.Context, id string) (types.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if err := ctx.Err(); err != nil {
		return types.Task{}, err
	}
	if m.err != nil {
		return types.Task{}, m.err
	}
	if len(m.snapshots) == 0 {
		return types.Task{ID: id, Status: types.TaskStatusProcessing}, nil
	}
	i := m.calls - 1
	if i >= len(m.snapshots) {
		i = len(m.snapshots) - 1
	}
	return m.snapshots[i], nil
}

// CallCount 返回查询次数
func (m *MockStatusChecker) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
