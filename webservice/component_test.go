package webservice

import (
	"context"
	"strings"
	"testing"

	"github.com/kbukum/resourcekit/component"
)

func TestComponent_Lifecycle(t *testing.T) {
	srv, _ := newTestAPI(t)
	c := NewComponent(Config{Name: "todos-api"}, WithLogger(quietLogger()))

	if c.Name() != "todos-api" {
		t.Errorf("unexpected name %q", c.Name())
	}
	if h := c.Health(context.Background()); h.Status != component.StatusUnhealthy {
		t.Errorf("expected unhealthy before start, got %s", h.Status)
	}

	reg := component.NewRegistry()
	if err := reg.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := reg.StartAll(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if h := c.Health(context.Background()); h.Status != component.StatusHealthy {
		t.Errorf("expected healthy after start, got %s", h.Status)
	}

	res := loadSync(t, c.Webservice(), NewResource[[]todo](srv.URL+"/todos"))
	if !res.IsSuccess() {
		t.Errorf("expected load through component to succeed, got %v", res.Err())
	}

	if err := reg.StopAll(context.Background()); err != nil {
		t.Errorf("stop failed: %v", err)
	}
}

func TestComponent_Describe(t *testing.T) {
	d := NewComponent(Config{}).Describe()
	if d.Name != "webservice" || d.Type != "webservice" {
		t.Errorf("unexpected description %+v", d)
	}
	if d.Details != "timeout=30s tls=false" {
		t.Errorf("unexpected details %q", d.Details)
	}
}

func TestComponent_StartInvalidConfig(t *testing.T) {
	c := NewComponent(Config{Name: strings.Repeat("n", 100)})
	if err := c.Start(context.Background()); err == nil {
		t.Fatal("expected start to fail")
	}
	if err := c.Stop(context.Background()); err != nil {
		t.Errorf("stop without start should be a no-op, got %v", err)
	}
}
