// MockTransport 是 client.Transport 的测试模拟实现。
//
// 支持按顺序回放响应、错误注入与自定义处理函数，并记录每次请求。
package mocks

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/BaSui01/fusionbrain-go/client"
)

var _ client.Transport = (*MockTransport)(nil)

// --- MockTransport 结构 ---

// MockTransport 模拟 HTTP 传输层
type MockTransport struct {
	mu sync.Mutex

	// 响应配置：按顺序回放，最后一个重复使用
	responses []*client.Response
	err       error
	sendFunc  func(ctx context.Context, req *client.Request) (*client.Response, error)

	// 调用记录
	calls []*client.Request
}

// --- 构造函数和 Builder 方法 ---

// NewMockTransport 创建新的 MockTransport，默认返回 200 与空 JSON 对象
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// WithResponse 追加一个原始响应
func (m *MockTransport) WithResponse(status int, body string) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, &client.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(body),
	})
	return m
}

// WithJSON 追加一个 JSON 编码的响应
func (m *MockTransport) WithJSON(status int, v any) *MockTransport {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return m.WithResponse(status, string(data))
}

// WithError 设置返回的传输错误
func (m *MockTransport) WithError(err error) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// WithSendFunc 设置自定义处理函数，优先于其他配置
func (m *MockTransport) WithSendFunc(fn func(ctx context.Context, req *client.Request) (*client.Response, error)) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendFunc = fn
	return m
}

// --- client.Transport 实现 ---

// Send 记录请求并返回配置的响应
func (m *MockTransport) Send(ctx context.Context, req *client.Request) (*client.Response, error) {
	m.mu.Lock()
	recorded := *req
	recorded.Header = req.Header.Clone()
	m.calls = append(m.calls, &recorded)
	fn := m.sendFunc
	injected := m.err
	var resp *client.Response
	if n := len(m.responses); n > 0 {
		resp = m.responses[0]
		if n > 1 {
			m.responses = m.responses[1:]
		}
	}
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if injected != nil {
		return nil, injected
	}
	if resp == nil {
		return &client.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: []byte("{}")}, nil
	}
	return resp, nil
}

// --- 调用记录 ---

// Calls 返回全部请求记录的副本
func (m *MockTransport) Calls() []*client.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*client.Request(nil), m.calls...)
}

// LastCall 返回最后一次请求，没有请求时返回 nil
func (m *MockTransport) LastCall() *client.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return nil
	}
	return m.calls[len(m.calls)-1]
}

// CallCount 返回请求次数
func (m *MockTransport) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
