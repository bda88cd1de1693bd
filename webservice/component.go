package webservice

import (
	"context"
	"fmt"

	"github.com/kbukum/resourcekit/component"
)

// Component wraps a Webservice with lifecycle management, for hosts that
// start and stop their infrastructure through a component.Registry.
type Component struct {
	ws     *Webservice
	config Config
	opts   []Option
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a webservice component. The Webservice is built in Start.
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	if c.config.Name == "" {
		return "webservice"
	}
	return c.config.Name
}

// Start builds the Webservice.
func (c *Component) Start(_ context.Context) error {
	ws, err := New(c.config, c.opts...)
	if err != nil {
		return err
	}
	c.ws = ws
	return nil
}

// Stop releases idle connections.
func (c *Component) Stop(_ context.Context) error {
	if c.ws != nil {
		return c.ws.Close()
	}
	return nil
}

// Health reports healthy once the Webservice is built.
func (c *Component) Health(_ context.Context) component.Health {
	if c.ws == nil {
		return component.Health{Name: c.Name(), Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}

// Describe returns the component description for startup summaries.
func (c *Component) Describe() component.Description {
	cfg := c.config
	cfg.ApplyDefaults()
	return component.Description{
		Name:    c.Name(),
		Type:    "webservice",
		Details: fmt.Sprintf("timeout=%s tls=%t", cfg.Timeout, cfg.TLS.IsEnabled()),
	}
}

// Webservice returns the underlying Webservice. Must be called after Start.
func (c *Component) Webservice() *Webservice {
	return c.ws
}
