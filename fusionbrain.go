// Package fusionbrain provides a top-level convenience entry point for
// creating a FusionBrain client with minimal boilerplate.
//
// Usage:
//
//	import "github.com/BaSui01/fusionbrain-go"
//
//	c, err := fusionbrain.New("key", "secret")
//	c, err := fusionbrain.NewFromEnv(logger)   // FUSIONBRAIN_API_KEY / FUSIONBRAIN_API_SECRET
//
// Both are thin wrappers around [client.New]. Use the client package
// directly for full control over transport and telemetry.
package fusionbrain

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/BaSui01/fusionbrain-go/client"
	"github.com/BaSui01/fusionbrain-go/config"
	"github.com/BaSui01/fusionbrain-go/internal/tlsutil"
)

// Option configures the client created by [New] and [NewFromEnv].
type Option = client.Option

// New creates a client for the public endpoint with the given credentials.
func New(apiKey, secretKey string, opts ...Option) (*client.Client, error) {
	return client.New(client.Config{APIKey: apiKey, SecretKey: secretKey}, nil, opts...)
}

// NewFromEnv creates a client from FUSIONBRAIN_API_* environment variables,
// applying the same defaults as the command line. The HTTP timeout comes from
// FUSIONBRAIN_API_TIMEOUT unless opts replace the transport.
func NewFromEnv(logger *zap.Logger, opts ...Option) (*client.Client, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}
	base := []Option{client.WithHTTPClient(tlsutil.SecureHTTPClient(cfg.API.Timeout))}
	return client.New(cfg.API.ClientConfig(), logger, append(base, opts...)...)
}

// Re-export option shortcuts so callers never need to import client/.

// WithTransport replaces the HTTP transport.
var WithTransport = client.WithTransport

// WithHTTPClient sets the *http.Client used by the default transport.
var WithHTTPClient = client.WithHTTPClient

// WithObserver registers a per-operation observer.
var WithObserver = client.WithObserver
