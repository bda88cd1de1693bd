package component

import "context"

// HealthStatus is a component's health state.
type HealthStatus string

// Health states.
const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDegraded  HealthStatus = "degraded"
)

// Health is a point-in-time health report.
type Health struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// Component is long-lived infrastructure with a start/stop lifecycle.
// Name must be unique within a Registry.
type Component interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Health(ctx context.Context) Health
}

// Description summarizes a component for startup logs.
type Description struct {
	Name    string
	Type    string
	Details string
}

// Describable is implemented by components that can summarize their
// configuration.
type Describable interface {
	Describe() Description
}
