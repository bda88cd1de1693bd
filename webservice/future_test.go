package webservice

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestLoadFuture_Resolves(t *testing.T) {
	srv, _ := newTestAPI(t)
	ws := newTestWebservice(t, Config{})

	f := LoadFuture(context.Background(), ws, NewResource[[]todo](srv.URL+"/todos"))

	select {
	case <-f.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("future did not resolve")
	}
	first := f.Result()
	if !first.IsSuccess() {
		t.Fatalf("expected success, got %v", first.Err())
	}

	second, err := f.Await(context.Background())
	if err != nil {
		t.Fatalf("Await on resolved future failed: %v", err)
	}
	if len(second.Value()) != len(first.Value()) {
		t.Error("expected the same result on every read")
	}
}

func TestLoadFuture_AwaitAbandoned(t *testing.T) {
	release := make(chan struct{})
	client := doerFunc(func(*http.Request) (*http.Response, error) {
		<-release
		return jsonResponse(http.StatusOK, `{"id":5}`), nil
	})
	ws := newTestWebservice(t, Config{}, WithHTTPClient(client))

	f := LoadFuture(context.Background(), ws, NewResource[created]("http://example.test/posts/5"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	abandoned, err := f.Await(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if abandoned.IsSuccess() {
		t.Error("an abandoned wait must not report success")
	}
	var calledSuccess bool
	abandoned.Match(func(created) { calledSuccess = true }, nil)
	if calledSuccess {
		t.Error("an abandoned wait must not match the success branch")
	}

	close(release)
	res := f.Result()
	if v, err := res.Get(); err != nil || v.ID != 5 {
		t.Errorf("expected the load to finish after the wait was abandoned, got %+v, %v", v, err)
	}
}

func TestLoadFuture_Failure(t *testing.T) {
	srv, _ := newTestAPI(t)
	ws := newTestWebservice(t, Config{})

	res := LoadFuture(context.Background(), ws, NewResource[map[string]string](srv.URL+"/unauthorized")).Result()
	if !IsNotAuthenticated(res.Err()) {
		t.Errorf("expected NotAuthenticated, got %v", res.Err())
	}
}
