package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransport_Send(t *testing.T) {
	type seen struct {
		method string
		header string
		body   string
		length int64
	}
	got := make(chan seen, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		got <- seen{method: r.Method, header: r.Header.Get("X-Probe"), body: string(data), length: r.ContentLength}
		w.Header().Set("X-Reply", "yes")
		w.WriteHeader(http.StatusTeapot)
		_, _ = io.WriteString(w, "short and stout")
	}))
	defer srv.Close()

	tr := NewHTTPTransport(srv.Client())
	header := make(http.Header)
	header.Set("X-Probe", "1")

	resp, err := tr.Send(context.Background(), &Request{
		Method: http.MethodPost,
		URL:    srv.URL,
		Header: header,
		Body:   []byte("payload"),
	})
	require.NoError(t, err, "a failure status is not a transport error")
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "short and stout", string(resp.Body))
	assert.Equal(t, "yes", resp.Header.Get("X-Reply"))

	s := <-got
	assert.Equal(t, http.MethodPost, s.method)
	assert.Equal(t, "1", s.header)
	assert.Equal(t, "payload", s.body)
	assert.Equal(t, int64(len("payload")), s.length)
}

func TestHTTPTransport_EmptyBody(t *testing.T) {
	lengths := make(chan int64, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lengths <- r.ContentLength
	}))
	defer srv.Close()

	resp, err := NewHTTPTransport(srv.Client()).Send(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Body)
	assert.Equal(t, int64(0), <-lengths)
}

func TestHTTPTransport_DefaultClient(t *testing.T) {
	tr := NewHTTPTransport(nil)
	require.NotNil(t, tr.client)
	assert.Equal(t, DefaultTimeout, tr.client.Timeout)
	assert.NotNil(t, tr.client.Transport)
}

func TestHTTPTransport_BadURL(t *testing.T) {
	_, err := NewHTTPTransport(nil).Send(context.Background(), &Request{Method: http.MethodGet, URL: "::bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build request")
}

func TestHTTPTransport_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPTransport(srv.Client()).Send(ctx, &Request{Method: http.MethodGet, URL: srv.URL})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
