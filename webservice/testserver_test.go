package webservice

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kbukum/resourcekit/logger"
)

type todo struct {
	UserID    int    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type created struct {
	ID int `json:"id"`
}

const (
	todosJSON        = `[{"userId":1,"id":1,"title":"x","completed":false}]`
	unauthorizedJSON = `{"error":"unauthorized"}`
)

var testSecret = []byte("test-secret")

// received captures what the test API saw for the last request.
type received struct {
	mu      sync.Mutex
	method  string
	body    []byte
	headers http.Header
	length  int64
}

func (r *received) record(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.method = c.Request.Method
	r.body = body
	r.headers = c.Request.Header.Clone()
	r.length = c.Request.ContentLength
}

func (r *received) snapshot() (string, []byte, http.Header, int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.method, r.body, r.headers, r.length
}

// newTestAPI serves the endpoints exercised by the webservice tests.
func newTestAPI(t *testing.T) (*httptest.Server, *received) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := &received{}

	r := gin.New()
	r.GET("/todos", func(c *gin.Context) {
		rec.record(c)
		c.Data(http.StatusOK, "application/json", []byte(todosJSON))
	})
	r.POST("/posts", func(c *gin.Context) {
		rec.record(c)
		c.Data(http.StatusCreated, "application/json", []byte(`{"id":101}`))
	})
	r.PUT("/posts/1", func(c *gin.Context) {
		rec.record(c)
		c.Data(http.StatusOK, "application/json", []byte(`{"id":1}`))
	})
	r.DELETE("/posts/1", func(c *gin.Context) {
		rec.record(c)
		c.Data(http.StatusOK, "application/json", []byte(`{}`))
	})
	r.GET("/unauthorized", func(c *gin.Context) {
		c.Data(http.StatusUnauthorized, "application/json", []byte(unauthorizedJSON))
	})
	r.GET("/unauthorized-todos", func(c *gin.Context) {
		c.Data(http.StatusUnauthorized, "application/json", []byte(todosJSON))
	})
	r.GET("/empty", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/garbage", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/plain", []byte("<html>not json</html>"))
	})
	r.GET("/missing", func(c *gin.Context) {
		c.Data(http.StatusNotFound, "application/json", []byte(`{"error":"not found"}`))
	})
	r.GET("/headers", func(c *gin.Context) {
		rec.record(c)
		c.Data(http.StatusOK, "application/json", []byte(`{}`))
	})
	r.GET("/slow", func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
		case <-time.After(2 * time.Second):
		}
		c.Data(http.StatusOK, "application/json", []byte(`{}`))
	})
	r.GET("/me", requireJWT(testSecret), func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(`{"id":7}`))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, rec
}

func requireJWT(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		_, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func signToken(t *testing.T, secret []byte) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := tok.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, io.Discard, "test")
}

func newTestWebservice(t *testing.T, cfg Config, opts ...Option) *Webservice {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	ws, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

// loadSync waits for the single completion of a Load.
func loadSync[T any](t *testing.T, ws *Webservice, r Resource[T]) Result[T] {
	t.Helper()
	ch := make(chan Result[T], 1)
	Load(ws, r, func(res Result[T]) { ch <- res })
	select {
	case res := <-ch:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("completion not delivered")
		return Result[T]{}
	}
}

// doerFunc adapts a function to Doer.
type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
