package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/BaSui01/fusionbrain-go/classify"
	"github.com/BaSui01/fusionbrain-go/validate"
)

// Client talks to the FusionBrain text-to-image API. It holds no mutable
// state after New and is safe for concurrent use.
type Client struct {
	cfg       Config
	transport Transport
	logger    *zap.Logger
	observer  Observer
	inst      *instruments
}

type options struct {
	transport      Transport
	httpClient     *http.Client
	observer       Observer
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// Option configures a Client.
type Option func(*options)

// WithTransport replaces the HTTP transport entirely.
func WithTransport(t Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithHTTPClient uses client inside the default transport.
// Ignored when WithTransport is also given.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithObserver registers an observer notified after every operation.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithTracerProvider sets the provider for client spans. Defaults to the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithMeterProvider sets the provider for client metrics. Defaults to the
// global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// New creates a Client. A nil logger disables logging.
func New(cfg Config, logger *zap.Logger, opts ...Option) (*Client, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.transport == nil {
		o.transport = NewHTTPTransport(o.httpClient)
	}
	if o.observer == nil {
		o.observer = nopObserver{}
	}

	inst, err := newInstruments(o.tracerProvider, o.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("create instruments: %w", err)
	}

	return &Client{
		cfg:       cfg,
		transport: o.transport,
		logger:    logger.With(zap.String("component", "fusionbrain_client")),
		observer:  o.observer,
		inst:      inst,
	}, nil
}

// Endpoint returns the configured API base URL.
func (c *Client) Endpoint() string { return c.cfg.Endpoint }

// authHeaders builds the key/secret headers for authenticated operations.
func (c *Client) authHeaders() http.Header {
	h := make(http.Header)
	h.Set("X-Key", "Key "+c.cfg.APIKey)
	h.Set("X-Secret", "Secret "+c.cfg.SecretKey)
	return h
}

// exchange sends req and returns the response of a 2xx exchange. Transport
// failures and other statuses come back as classified errors.
func (c *Client) exchange(ctx context.Context, cl *call, req *Request) (*Response, error) {
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	if cl.op.Authenticated() {
		for k, vs := range c.authHeaders() {
			req.Header[k] = vs
		}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("operation", string(cl.op)),
			zap.String("method", req.Method),
			zap.String("path", urlPath(req.URL)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return nil, classify.Transport(cl.op, err)
	}

	cl.status = resp.StatusCode
	c.logger.Debug("request completed",
		zap.String("operation", string(cl.op)),
		zap.String("method", req.Method),
		zap.String("path", urlPath(req.URL)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if !classify.IsSuccess(resp.StatusCode) {
		return nil, classify.HTTPStatus(cl.op, resp.StatusCode, resp.Body)
	}
	return resp, nil
}

// decode parses a 2xx body. A body that is not JSON is UNEXPECTED.
func (c *Client) decode(cl *call, resp *Response) (any, error) {
	v, err := validate.DecodeJSON(resp.Body)
	if err != nil {
		return nil, classify.Decode(cl.op, resp.Body, err).WithHTTPStatus(resp.StatusCode)
	}
	return v, nil
}

// urlPath returns the path component of raw, or "" if it does not parse.
func urlPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Path
}
