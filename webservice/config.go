package webservice

import (
	"time"

	"github.com/kbukum/resourcekit/security"
	"github.com/kbukum/resourcekit/validation"
	"github.com/kbukum/resourcekit/version"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultContentType = "application/json"
	defaultAccept      = "application/json"
)

// Config configures a Webservice.
type Config struct {
	// Name identifies the webservice in logs and lifecycle summaries.
	Name string `yaml:"name" mapstructure:"name" validate:"omitempty,max=64"`

	// Timeout bounds each load, including reading the response body.
	// Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// TLS configures TLS settings for the HTTP transport.
	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Headers are sent with every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// ContentType is sent with POST and PUT payloads. Defaults to application/json.
	ContentType string `yaml:"content_type" mapstructure:"content_type" validate:"required"`

	// Accept is sent with every request. Defaults to application/json.
	Accept string `yaml:"accept" mapstructure:"accept" validate:"required"`

	// UserAgent is sent with every request. Defaults to "resourcekit/<version>".
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// RequestIDHeader, when set, carries the generated per-load request id.
	RequestIDHeader string `yaml:"request_id_header" mapstructure:"request_id_header"`

	// DisableTokenHeader stops the authentication token from being sent as
	// an Authorization bearer header.
	DisableTokenHeader bool `yaml:"disable_token_header" mapstructure:"disable_token_header"`

	// Auth is applied when no authentication token is set.
	Auth *AuthConfig `yaml:"-" mapstructure:"-" validate:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "webservice"
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.ContentType == "" {
		c.ContentType = defaultContentType
	}
	if c.Accept == "" {
		c.Accept = defaultAccept
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
