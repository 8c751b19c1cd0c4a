package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/BaSui01/fusionbrain-go/types"
	"github.com/BaSui01/fusionbrain-go/validate"
)

// ErrEmptyTaskID is returned by CheckStatus before any request is made.
var ErrEmptyTaskID = errors.New("task id is required")

// CheckStatus fetches a fresh snapshot of task id. A finished task can be
// fetched only once; later calls fail with EXPIRED.
func (c *Client) CheckStatus(ctx context.Context, id string) (task types.Task, err error) {
	if id == "" {
		return types.Task{}, fmt.Errorf("%s: %w", types.OpCheckStatus, ErrEmptyTaskID)
	}

	ctx, cl := c.begin(ctx, types.OpCheckStatus)
	defer func() { cl.finish(ctx, err) }()

	resp, err := c.exchange(ctx, cl, &Request{
		Method: http.MethodGet,
		URL:    c.cfg.statusURL(id),
	})
	if err != nil {
		return types.Task{}, err
	}
	v, err := c.decode(cl, resp)
	if err != nil {
		return types.Task{}, err
	}

	task, err = validate.Task(v)
	if err != nil {
		return types.Task{}, fmt.Errorf("%s: %w", types.OpCheckStatus, err)
	}
	return task, nil
}
