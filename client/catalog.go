package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BaSui01/fusionbrain-go/types"
	"github.com/BaSui01/fusionbrain-go/validate"
)

// ListModels returns the model catalogue. One malformed entry fails the
// whole listing.
func (c *Client) ListModels(ctx context.Context) (models []types.ModelInfo, err error) {
	ctx, cl := c.begin(ctx, types.OpListModels)
	defer func() { cl.finish(ctx, err) }()

	resp, err := c.exchange(ctx, cl, &Request{Method: http.MethodGet, URL: c.cfg.ModelsURL})
	if err != nil {
		return nil, err
	}
	v, err := c.decode(cl, resp)
	if err != nil {
		return nil, err
	}
	models, err = validate.ModelList(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", types.OpListModels, err)
	}
	return models, nil
}

// ListStyles returns the style catalogue. The request is sent without
// credentials.
func (c *Client) ListStyles(ctx context.Context) (styles []types.StyleInfo, err error) {
	ctx, cl := c.begin(ctx, types.OpListStyles)
	defer func() { cl.finish(ctx, err) }()

	resp, err := c.exchange(ctx, cl, &Request{Method: http.MethodGet, URL: c.cfg.StylesURL})
	if err != nil {
		return nil, err
	}
	v, err := c.decode(cl, resp)
	if err != nil {
		return nil, err
	}
	styles, err = validate.StyleList(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", types.OpListStyles, err)
	}
	return styles, nil
}
