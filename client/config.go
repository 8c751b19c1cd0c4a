package client

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultEndpoint is the production API host.
	DefaultEndpoint = "https://api-key.fusionbrain.ai/"
	// DefaultStylesURL serves the public style catalogue.
	DefaultStylesURL = "https://cdn.fusionbrain.ai/static/styles/key"

	text2imagePath = "key/api/v1/text2image"
	modelsPath     = "key/api/v1/models"
)

// Config holds credentials and endpoints. It is copied into the Client at
// construction and never mutated afterwards.
type Config struct {
	APIKey    string
	SecretKey string
	// Endpoint is the API base URL. Empty means DefaultEndpoint.
	Endpoint string
	// ModelsURL overrides {Endpoint}/key/api/v1/models.
	ModelsURL string
	// StylesURL overrides DefaultStylesURL.
	StylesURL string
}

// withDefaults fills the empty endpoint fields.
func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if !strings.HasSuffix(c.Endpoint, "/") {
		c.Endpoint += "/"
	}
	if c.ModelsURL == "" {
		c.ModelsURL = c.Endpoint + modelsPath
	}
	if c.StylesURL == "" {
		c.StylesURL = DefaultStylesURL
	}
	return c
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.APIKey) == "" {
		errs = append(errs, errors.New("api key is required"))
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		errs = append(errs, errors.New("secret key is required"))
	}
	urls := []struct{ name, raw string }{
		{"endpoint", c.Endpoint},
		{"models url", c.ModelsURL},
		{"styles url", c.StylesURL},
	}
	for _, u := range urls {
		if u.raw == "" {
			continue
		}
		parsed, err := url.Parse(u.raw)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			errs = append(errs, fmt.Errorf("%s %q is not an absolute URL", u.name, u.raw))
		}
	}
	return errors.Join(errs...)
}

func (c Config) availabilityURL(modelID int64) string {
	return fmt.Sprintf("%s%s/availability?model_id=%d", c.Endpoint, text2imagePath, modelID)
}

func (c Config) runURL() string {
	return c.Endpoint + text2imagePath + "/run"
}

func (c Config) statusURL(id string) string {
	return c.Endpoint + text2imagePath + "/status/" + url.PathEscape(id)
}
