// Package component defines the lifecycle interface for long-lived
// infrastructure such as webservices.
//
// Components are registered with a Registry, started in registration order
// and stopped in reverse order.
package component
