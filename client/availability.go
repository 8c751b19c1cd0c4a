package client

import (
	"context"
	"net/http"

	"github.com/BaSui01/fusionbrain-go/classify"
	"github.com/BaSui01/fusionbrain-go/types"
)

const statusActive = "ACTIVE"

type availabilityOptions struct {
	strict bool
}

// AvailabilityOption configures CheckAvailability.
type AvailabilityOption func(*availabilityOptions)

// Strict makes a negative answer fail with MODEL_NOT_READY carrying the
// response body instead of returning false.
func Strict() AvailabilityOption {
	return func(o *availabilityOptions) { o.strict = true }
}

// CheckAvailability reports whether modelID currently accepts generation
// requests. The service answers either {"status": ...} or
// {"model_status": ...}; ACTIVE in either field means ready.
func (c *Client) CheckAvailability(ctx context.Context, modelID int64, opts ...AvailabilityOption) (ready bool, err error) {
	var o availabilityOptions
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cl := c.begin(ctx, types.OpCheckAvailability)
	defer func() { cl.finish(ctx, err) }()

	resp, err := c.exchange(ctx, cl, &Request{
		Method: http.MethodGet,
		URL:    c.cfg.availabilityURL(modelID),
	})
	if err != nil {
		return false, err
	}
	v, err := c.decode(cl, resp)
	if err != nil {
		return false, err
	}

	if isActive(v) {
		return true, nil
	}
	if o.strict {
		return false, classify.ModelNotReady(types.OpCheckAvailability, resp.Body).WithHTTPStatus(resp.StatusCode)
	}
	return false, nil
}

func isActive(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, key := range []string{"status", "model_status"} {
		if s, ok := obj[key].(string); ok && s == statusActive {
			return true
		}
	}
	return false
}
