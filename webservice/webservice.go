package webservice

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/resourcekit/logger"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Webservice executes Resources. It is safe for concurrent use; apart from
// the authentication token it holds no mutable state.
type Webservice struct {
	client Doer
	// owned is the client built from Config, nil when one was injected.
	owned    *http.Client
	config   Config
	token    atomic.Pointer[string]
	log      *logger.Logger
	dispatch func(func())

	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	telemetry      *telemetry
}

// Option configures a Webservice.
type Option func(*Webservice)

// WithHTTPClient injects the transport used for every load. The Config's
// Timeout still bounds each load; its TLS settings are ignored.
func WithHTTPClient(client Doer) Option {
	return func(ws *Webservice) {
		ws.client = client
	}
}

// WithLogger sets the logger. Defaults to the global logger tagged with the
// webservice name.
func WithLogger(l *logger.Logger) Option {
	return func(ws *Webservice) {
		ws.log = l
	}
}

// WithDispatcher sets how completions are delivered, e.g. onto a host's
// event loop. The dispatcher must run each function exactly once. It is
// called on the load goroutine, so a dispatcher that runs fn inline while
// holding a lock the completion also takes will deadlock.
// By default completions run on the goroutine that performed the load.
func WithDispatcher(dispatch func(func())) Option {
	return func(ws *Webservice) {
		if dispatch != nil {
			ws.dispatch = dispatch
		}
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider. Defaults to the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(ws *Webservice) {
		ws.tracerProvider = tp
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider. Defaults to the global one.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(ws *Webservice) {
		ws.meterProvider = mp
	}
}

// WithAuthenticationToken sets the initial authentication token.
func WithAuthenticationToken(token string) Option {
	return func(ws *Webservice) {
		ws.SetAuthenticationToken(token)
	}
}

// New creates a Webservice with the given configuration.
func New(cfg Config, opts ...Option) (*Webservice, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ws := &Webservice{
		config:   cfg,
		dispatch: func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(ws)
	}

	if ws.client == nil {
		hc, err := newHTTPClient(cfg)
		if err != nil {
			return nil, err
		}
		ws.client = hc
		ws.owned = hc
	}
	if ws.log == nil {
		ws.log = logger.Get(cfg.Name)
	}

	tel, err := newTelemetry(ws.tracerProvider, ws.meterProvider)
	if err != nil {
		return nil, err
	}
	ws.telemetry = tel

	return ws, nil
}

// newHTTPClient builds an explicitly configured client instead of relying on
// http.DefaultClient.
func newHTTPClient(cfg Config) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}, nil
}

// SetAuthenticationToken stores the bearer token sent with later loads.
// An empty token clears it. Loads already issued keep the token they
// started with.
func (ws *Webservice) SetAuthenticationToken(token string) {
	if token == "" {
		ws.token.Store(nil)
		return
	}
	ws.token.Store(&token)
}

// ClearAuthenticationToken removes the authentication token.
func (ws *Webservice) ClearAuthenticationToken() {
	ws.token.Store(nil)
}

// AuthenticationToken returns the current token and whether one is set.
func (ws *Webservice) AuthenticationToken() (string, bool) {
	p := ws.token.Load()
	if p == nil {
		return "", false
	}
	return *p, true
}

// Config returns the webservice's configuration.
func (ws *Webservice) Config() Config {
	return ws.config
}

// Close releases idle connections of a client built by New. Injected
// clients are left untouched.
func (ws *Webservice) Close() error {
	if ws.owned != nil {
		ws.owned.CloseIdleConnections()
	}
	return nil
}

// Load issues the resource's request asynchronously and calls completion
// exactly once with the outcome. Load never blocks on the network and
// completion never runs before Load returns.
func Load[T any](ws *Webservice, resource Resource[T], completion func(Result[T])) {
	LoadContext(context.Background(), ws, resource, completion)
}

// LoadContext is Load with a parent context. Values such as the active
// span are kept; cancellation of ctx is ignored, since an issued load
// always runs to completion. Config.Timeout bounds the request.
func LoadContext[T any](ctx context.Context, ws *Webservice, resource Resource[T], completion func(Result[T])) {
	ctx = context.WithoutCancel(ctx)
	token, _ := ws.AuthenticationToken()

	go func() {
		result := execute(ctx, ws, resource, token)
		ws.dispatch(func() {
			if completion != nil {
				completion(result)
			}
		})
	}()
}

// execute performs one load and classifies its outcome.
func execute[T any](ctx context.Context, ws *Webservice, resource Resource[T], token string) Result[T] {
	method := resource.Method()
	requestID := uuid.NewString()
	start := time.Now()

	ctx, span := ws.telemetry.start(ctx, method.Name(), resource.URL(), requestID)

	status, body, loadErr := ws.roundTrip(ctx, method, resource.URL(), token, requestID)

	var result Result[T]
	switch {
	case loadErr != nil:
		result = Failure[T](loadErr)
	case len(body) == 0:
		result = Failure[T](newDecodeError(status, nil))
	default:
		value, err := safeParse(resource, body)
		if err != nil {
			result = Failure[T](newDecodeError(status, err))
		} else {
			result = Success(value)
		}
	}

	duration := time.Since(start)
	ws.telemetry.finish(ctx, span, method.Name(), status, result.Err(), duration)
	ws.logLoad(method.Name(), resource.URL(), requestID, status, result.Err(), duration)

	return result
}

// roundTrip sends the request and reads the response body. A non-nil
// *Error means no body is available for decoding.
func (ws *Webservice) roundTrip(ctx context.Context, method Method, url, token, requestID string) (int, []byte, *Error) {
	ctx, cancel := context.WithTimeout(ctx, ws.config.Timeout)
	defer cancel()

	req, err := ws.buildRequest(ctx, method, url, token, requestID)
	if err != nil {
		return 0, nil, newBadInputError(fmt.Errorf("create request: %w", err))
	}

	resp, err := ws.client.Do(req)
	if err != nil {
		return 0, nil, newBadInputError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return resp.StatusCode, nil, newNotAuthenticatedError()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		loadErr := newBadInputError(fmt.Errorf("read response body: %w", err))
		loadErr.StatusCode = resp.StatusCode
		return resp.StatusCode, nil, loadErr
	}
	return resp.StatusCode, body, nil
}

// buildRequest constructs an *http.Request for one load.
func (ws *Webservice) buildRequest(ctx context.Context, method Method, url, token, requestID string) (*http.Request, error) {
	var body io.Reader
	if method.HasBody() {
		body = bytes.NewReader(method.Body())
	}

	req, err := http.NewRequestWithContext(ctx, method.Name(), url, body)
	if err != nil {
		return nil, err
	}

	for k, v := range ws.config.Headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", ws.config.UserAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", ws.config.Accept)
	}
	if method.HasBody() && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", ws.config.ContentType)
	}
	if ws.config.RequestIDHeader != "" {
		req.Header.Set(ws.config.RequestIDHeader, requestID)
	}

	auth := ws.config.Auth
	if token != "" && !ws.config.DisableTokenHeader {
		auth = BearerAuth(token)
	}
	auth.apply(req)

	return req, nil
}

// safeParse runs the resource's decoder, turning a panic into a decode failure.
func safeParse[T any](resource Resource[T], body []byte) (value T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("webservice: parse panicked: %v", p)
		}
	}()
	return resource.Parse(body)
}

func (ws *Webservice) logLoad(method, url, requestID string, status int, loadErr *Error, d time.Duration) {
	fields := logger.Fields(
		"method", method,
		"url", url,
		logger.FieldRequestID, requestID,
		logger.FieldStatus, status,
		logger.FieldDuration, d.Milliseconds(),
	)
	if loadErr != nil {
		fields["kind"] = loadErr.Kind.String()
		ws.log.Warn("resource load failed", logger.MergeWithError(fields, loadErr))
		return
	}
	ws.log.Debug("resource loaded", fields)
}
