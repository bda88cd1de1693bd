package component

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kbukum/resourcekit/logger"
)

// StopTimeout bounds each component's Stop call.
const StopTimeout = 10 * time.Second

// Registry starts components in registration order and stops them in
// reverse. It is safe for concurrent use.
type Registry struct {
	mu         sync.Mutex
	components []Component
	byName     map[string]Component
	// running holds started components in start order.
	running []Component
	log     *logger.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Component),
		log:    logger.Get("component"),
	}
}

// Register adds c. Register dependencies before their dependents.
func (r *Registry) Register(c Component) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, dup := r.byName[name]; dup {
		return fmt.Errorf("component: %q already registered", name)
	}
	r.components = append(r.components, c)
	r.byName[name] = c
	return nil
}

// StartAll starts every component that is not running. If one fails, the
// components started by this call are stopped again in reverse order.
func (r *Registry) StartAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	base := len(r.running)
	for _, c := range r.components {
		if r.isRunning(c) {
			continue
		}
		if err := c.Start(ctx); err != nil {
			r.log.Error("component start failed", logger.MergeWithError(
				logger.Fields(logger.FieldComponent, c.Name()), err))
			startErr := fmt.Errorf("component: start %s: %w", c.Name(), err)
			return errors.Join(startErr, r.stopFrom(ctx, base))
		}
		r.running = append(r.running, c)
		r.log.Debug("component started", logger.Fields(logger.FieldComponent, c.Name()))
	}
	return nil
}

// StopAll stops running components in reverse start order. Every component
// is stopped even if an earlier Stop fails; the errors are joined.
func (r *Registry) StopAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopFrom(ctx, 0)
}

// stopFrom stops running[from:] in reverse and truncates running.
func (r *Registry) stopFrom(ctx context.Context, from int) error {
	var errs []error
	for i := len(r.running) - 1; i >= from; i-- {
		c := r.running[i]
		stopCtx, cancel := context.WithTimeout(ctx, StopTimeout)
		err := c.Stop(stopCtx)
		cancel()
		if err != nil {
			errs = append(errs, fmt.Errorf("component: stop %s: %w", c.Name(), err))
			continue
		}
		r.log.Debug("component stopped", logger.Fields(logger.FieldComponent, c.Name()))
	}
	r.running = r.running[:from]
	return errors.Join(errs...)
}

func (r *Registry) isRunning(c Component) bool {
	for _, rc := range r.running {
		if rc == c {
			return true
		}
	}
	return false
}

// HealthAll reports the health of every registered component in
// registration order.
func (r *Registry) HealthAll(ctx context.Context) []Health {
	r.mu.Lock()
	components := append([]Component(nil), r.components...)
	r.mu.Unlock()

	out := make([]Health, len(components))
	for i, c := range components {
		out[i] = c.Health(ctx)
	}
	return out
}

// Get returns the component registered under name, or nil.
func (r *Registry) Get(name string) Component {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byName[name]
}
