package leagueapi

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/phl-league/internal/platform/logging"
	"github.com/riskibarqy/phl-league/internal/platform/resilience"
	"github.com/riskibarqy/phl-league/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	maxResponseBytes = 6 << 20
	maxLoggedBody    = 4096
)

var (
	errLeagueTransient = crerr.New("league backend transient failure")
	errLeagueRejected  = crerr.New("league backend rejected request")
)

// RequestRecorder receives one observation per backend call.
type RequestRecorder interface {
	ObserveBackendRequest(operation, outcome string, elapsed time.Duration)
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	PlayersURL     string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Recorder       RequestRecorder
	// OnCircuitStateChange is called outside the breaker lock on every transition.
	OnCircuitStateChange func(from, to resilience.CircuitState)
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	playersURL     string
	maxRetries     int
	retryBackoff   time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	recorder       RequestRecorder
	flight         resilience.Group[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	var breakerOpts []resilience.CircuitBreakerOption
	if cfg.OnCircuitStateChange != nil {
		breakerOpts = append(breakerOpts, resilience.WithStateChange(cfg.OnCircuitStateChange))
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		playersURL:     strings.TrimRight(strings.TrimSpace(cfg.PlayersURL), "/"),
		maxRetries:     max(cfg.MaxRetries, 0),
		retryBackoff:   time.Second,
		logger:         logger.Named("leagueapi"),
		breaker:        resilience.NewCircuitBreaker(breakerCfg, breakerOpts...),
		circuitEnabled: breakerCfg.Enabled,
		recorder:       cfg.Recorder,
	}
}

func (c *Client) CircuitState() resilience.CircuitState {
	return c.breaker.State()
}

// call is one request against either the league endpoint or the players endpoint.
type call struct {
	operation string
	method    string
	endpoint  string
	query     url.Values
	body      any
}

func (c *Client) leagueCall(operation, method, path string, id int64, body any) call {
	query := url.Values{}
	query.Set("path", path)
	if id > 0 {
		query.Set("id", fmt.Sprintf("%d", id))
	}
	return call{operation: operation, method: method, endpoint: c.baseURL, query: query, body: body}
}

func (c *Client) playersCall(operation, method string, query url.Values, body any) call {
	return call{operation: operation, method: method, endpoint: c.playersURL, query: query, body: body}
}

// doJSON executes the call and decodes a successful body into target (nil skips decoding).
// Every failure is reported as usecase.ErrDependencyUnavailable.
func (c *Client) doJSON(ctx context.Context, req call, target any) error {
	startedAt := time.Now()
	err := c.do(ctx, req, target)
	c.observe(req.operation, err, time.Since(startedAt))
	if err == nil {
		return nil
	}

	c.logger.WarnContext(ctx, "league backend request failed",
		"operation", req.operation,
		"method", req.method,
		"error", err,
	)
	if stderrors.Is(err, usecase.ErrDependencyUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", usecase.ErrDependencyUnavailable, req.operation, err)
}

func (c *Client) do(ctx context.Context, req call, target any) error {
	if strings.TrimSpace(req.endpoint) == "" {
		return crerr.Newf("%s: endpoint is not configured", req.operation)
	}
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "league backend circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: league backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := req.endpoint
	if encoded := req.query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var payload []byte
	if req.body != nil {
		encoded, err := sonic.Marshal(req.body)
		if err != nil {
			return crerr.Wrap(err, "marshal request body")
		}
		payload = encoded
		c.announceMutation(ctx, req, fullURL, payload)
	}

	var (
		raw []byte
		err error
	)
	if req.method == http.MethodGet {
		raw, err, _ = c.flight.Do(req.method+" "+fullURL, func() ([]byte, error) {
			out, reqErr := c.executeRequest(ctx, req.method, fullURL, nil, c.maxRetries)
			c.recordCircuitResult(reqErr)
			return out, reqErr
		})
	} else {
		raw, err = c.executeRequest(ctx, req.method, fullURL, payload, 0)
		c.recordCircuitResult(err)
	}
	if err != nil {
		return err
	}

	if err := checkStatusBody(raw); err != nil {
		return err
	}
	if target == nil {
		return nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s payload", req.operation)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, method, fullURL string, body []byte, retries int) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			lastErr = fmt.Errorf("%w: send request: %v", errLeagueTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil && ctx.Err() != nil:
				return nil, ctx.Err()
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errLeagueTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: backend status=%d body=%s", errLeagueTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("%w: backend status=%d body=%s", errLeagueRejected, resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == retries {
			break
		}
		backoff := time.Duration(attempt+1) * c.retryBackoff
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("backend request failed")
	}
	return nil, lastErr
}

// statusBody is the shape of every mutation response and of backend-side errors,
// which the backend reports with a 2xx status.
type statusBody struct {
	Success *bool `json:"success"`
	Error   any   `json:"error"`
}

func checkStatusBody(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var status statusBody
	if err := sonic.Unmarshal(trimmed, &status); err != nil {
		return nil
	}
	if status.Error != nil {
		if text := strings.TrimSpace(fmt.Sprint(status.Error)); text != "" {
			return fmt.Errorf("%w: backend error: %s", errLeagueRejected, abbreviateBody([]byte(text)))
		}
	}
	if status.Success != nil && !*status.Success {
		return fmt.Errorf("%w: backend reported success=false", errLeagueRejected)
	}
	return nil
}

func (c *Client) announceMutation(ctx context.Context, req call, fullURL string, payload []byte) {
	bodyText := truncateForLog(string(payload), maxLoggedBody)
	preview := buildCurlPreview(req.method, fullURL, bodyText)

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("leagueapi.operation", req.operation),
			attribute.String("leagueapi.method", req.method),
			attribute.String("leagueapi.url", fullURL),
			attribute.String("leagueapi.request_curl_preview", preview),
		)
	}
	c.logger.InfoContext(ctx, "league backend mutation", "operation", req.operation, "curl_preview", preview)
}

func (c *Client) observe(operation string, err error, elapsed time.Duration) {
	if c.recorder == nil {
		return
	}
	outcome := "ok"
	switch {
	case err == nil:
	case stderrors.Is(err, usecase.ErrDependencyUnavailable):
		outcome = "circuit_open"
	case stderrors.Is(err, errLeagueRejected):
		outcome = "rejected"
	case isCallerAbort(err):
		outcome = "canceled"
	default:
		outcome = "error"
	}
	c.recorder.ObserveBackendRequest(operation, outcome, elapsed)
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if isCallerAbort(err) {
		c.breaker.Release()
		return
	}
	c.breaker.Record(isCircuitFailure(err))
}

// isCallerAbort reports errors caused by the caller's context rather than the backend,
// such as sibling reads cancelled after one read of a fetch cycle failed.
func isCallerAbort(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errLeagueTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusRequestTimeout ||
		code == http.StatusTooManyRequests ||
		code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func truncateForLog(value string, limit int) string {
	if limit <= 0 || len(value) <= limit {
		return value
	}
	return value[:limit] + "...(truncated)"
}
