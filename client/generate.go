package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"

	"go.uber.org/zap"

	"github.com/BaSui01/fusionbrain-go/types"
	"github.com/BaSui01/fusionbrain-go/validate"
)

// Generation defaults.
const (
	DefaultStyle  = "DEFAULT"
	DefaultWidth  = 768
	DefaultHeight = 768
)

type generateOptions struct {
	style          string
	negativePrompt string
	width          int
	height         int
	images         int
}

func defaultGenerateOptions() generateOptions {
	return generateOptions{
		style:  DefaultStyle,
		width:  DefaultWidth,
		height: DefaultHeight,
		images: 1,
	}
}

// GenerateOption configures Generate.
type GenerateOption func(*generateOptions)

// WithStyle selects a style by name, as listed by ListStyles.
func WithStyle(style string) GenerateOption {
	return func(o *generateOptions) { o.style = style }
}

// WithNegativePrompt describes what the image should not contain.
func WithNegativePrompt(prompt string) GenerateOption {
	return func(o *generateOptions) { o.negativePrompt = prompt }
}

// WithSize sets the image dimensions in pixels.
func WithSize(width, height int) GenerateOption {
	return func(o *generateOptions) {
		o.width = width
		o.height = height
	}
}

// WithImages requests n images. The service currently produces a single
// image per task, so one is always requested.
func WithImages(n int) GenerateOption {
	return func(o *generateOptions) { o.images = n }
}

type generateParams struct {
	Type                 string      `json:"type"`
	Style                string      `json:"style"`
	NumImages            int         `json:"numImages"`
	Width                int         `json:"width"`
	Height               int         `json:"height"`
	NegativePromptUnclip string      `json:"negativePromptUnclip"`
	GenerateParams       promptQuery `json:"generateParams"`
}

type promptQuery struct {
	Query string `json:"query"`
}

// Generate submits a generation task. A response that is a valid task is
// Accepted; any other JSON reply is Rejected with the raw body as reason.
// Only transport failures, non-2xx statuses and non-JSON bodies are errors.
func (c *Client) Generate(ctx context.Context, modelID int64, prompt string, opts ...GenerateOption) (outcome types.GenerationOutcome, err error) {
	o := defaultGenerateOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.images != 1 {
		c.logger.Debug("only one image per task is supported", zap.Int("requested", o.images))
	}

	ctx, cl := c.begin(ctx, types.OpGenerate)
	defer func() { cl.finish(ctx, err) }()

	body, contentType, err := encodeRun(modelID, prompt, o)
	if err != nil {
		return types.GenerationOutcome{}, err
	}
	header := make(http.Header)
	header.Set("Content-Type", contentType)

	resp, err := c.exchange(ctx, cl, &Request{
		Method: http.MethodPost,
		URL:    c.cfg.runURL(),
		Header: header,
		Body:   body,
	})
	if err != nil {
		return types.GenerationOutcome{}, err
	}
	v, err := c.decode(cl, resp)
	if err != nil {
		return types.GenerationOutcome{}, err
	}

	task, verr := validate.Task(v)
	if verr != nil {
		cl.rejected = true
		c.logger.Info("generation rejected",
			zap.Int64("model_id", modelID),
			zap.String("reason", verr.Error()))
		return types.Rejected(string(resp.Body)), nil
	}
	return types.Accepted(task), nil
}

// encodeRun builds the multipart body: a JSON "params" part and a plain
// "model_id" field.
func encodeRun(modelID int64, prompt string, o generateOptions) ([]byte, string, error) {
	params, err := json.Marshal(generateParams{
		Type:                 "GENERATE",
		Style:                o.style,
		NumImages:            1,
		Width:                o.width,
		Height:               o.height,
		NegativePromptUnclip: o.negativePrompt,
		GenerateParams:       promptQuery{Query: prompt},
	})
	if err != nil {
		return nil, "", fmt.Errorf("encode params: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="params"`)
	h.Set("Content-Type", "application/json")
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("create params part: %w", err)
	}
	if _, err := part.Write(params); err != nil {
		return nil, "", fmt.Errorf("write params part: %w", err)
	}
	if err := w.WriteField("model_id", strconv.FormatInt(modelID, 10)); err != nil {
		return nil, "", fmt.Errorf("write model_id: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
