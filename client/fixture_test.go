package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BaSui01/fusionbrain-go/types"
)

const (
	testAPIKey    = "test-key"
	testSecretKey = "test-secret"
)

// part is one multipart section seen by the fake server.
type part struct {
	ContentType string
	FileName    string
	Data        string
}

// seenRequest is what the fake server recorded about one request.
type seenRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Parts  map[string]part
}

type observedCall struct {
	Op      types.Operation
	Outcome string
	Status  int
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []observedCall
}

func (r *recordingObserver) ObserveRequest(op types.Operation, outcome string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, observedCall{Op: op, Outcome: outcome, Status: status})
}

func (r *recordingObserver) snapshot() []observedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]observedCall(nil), r.calls...)
}

type fixture struct {
	client   *Client
	server   *httptest.Server
	requests chan seenRequest
	logs     *observer.ObservedLogs
	spans    *tracetest.SpanRecorder
	reader   *sdkmetric.ManualReader
	observer *recordingObserver
}

// newFixture starts a fake API whose every response is produced by reply.
// Styles are served from /styles on the same server.
func newFixture(t *testing.T, reply func(w http.ResponseWriter, r *http.Request)) *fixture {
	t.Helper()

	f := &fixture{
		requests: make(chan seenRequest, 16),
		spans:    tracetest.NewSpanRecorder(),
		reader:   sdkmetric.NewManualReader(),
		observer: &recordingObserver{},
	}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests <- record(t, r)
		reply(w, r)
	}))
	t.Cleanup(f.server.Close)

	core, logs := observer.New(zap.DebugLevel)
	f.logs = logs

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(f.spans))
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(f.reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	c, err := New(Config{
		APIKey:    testAPIKey,
		SecretKey: testSecretKey,
		Endpoint:  f.server.URL,
		StylesURL: f.server.URL + "/styles",
	}, zap.New(core),
		WithHTTPClient(f.server.Client()),
		WithObserver(f.observer),
		WithTracerProvider(tp),
		WithMeterProvider(mp),
	)
	require.NoError(t, err)
	f.client = c
	return f
}

func record(t *testing.T, r *http.Request) seenRequest {
	seen := seenRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	}
	mr, err := r.MultipartReader()
	if err != nil {
		return seen
	}
	seen.Parts = make(map[string]part)
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Errorf("read multipart: %v", err)
			break
		}
		data, _ := io.ReadAll(p)
		seen.Parts[p.FormName()] = part{
			ContentType: p.Header.Get("Content-Type"),
			FileName:    p.FileName(),
			Data:        string(data),
		}
	}
	return seen
}

// lastRequest returns the request the server saw, failing if there was none.
func (f *fixture) lastRequest(t *testing.T) seenRequest {
	t.Helper()
	select {
	case r := <-f.requests:
		return r
	default:
		t.Fatal("server received no request")
		return seenRequest{}
	}
}

// requestCount returns how many operations the counter recorded per outcome.
func (f *fixture) requestCount(t *testing.T) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, f.reader.Collect(context.Background(), &rm))

	out := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "fusionbrain.client.requests" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				outcome, _ := dp.Attributes.Value(attribute.Key("outcome"))
				out[outcome.AsString()] += dp.Value
			}
		}
	}
	return out
}

func respond(status int, body string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}
