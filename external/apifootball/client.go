// Package apifootball is the API-Football v3 client behind upstream.Provider.
package apifootball

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"github.com/riskibarqy/football-portal/internal/domain/upstream"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/riskibarqy/football-portal/internal/platform/resilience"
)

const (
	DefaultBaseURL = "https://v3.football.api-sports.io"
	apiKeyHeader   = "x-apisports-key"
	maxBodyBytes   = 6 << 20
)

// Metrics receives per-call observations. *metrics.Recorder satisfies it.
type Metrics interface {
	ObserveUpstream(endpoint, outcome string, d time.Duration)
	SetCircuitState(state string)
}

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Metrics        Metrics
}

type Client struct {
	httpClient   *fasthttp.Client
	baseURL      string
	apiKey       string
	timeout      time.Duration
	maxRetries   int
	retryBackoff time.Duration
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	metrics      Metrics
	flight       resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := logging.OrDefault(cfg.Logger).Named("apifootball")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "football-portal",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxBodyBytes,
			MaxIdleConnDuration: 30 * time.Second,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}

	c := &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		timeout:      timeout,
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		logger:       logger,
		breaker:      resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
		metrics:      cfg.Metrics,
	}
	if c.breaker != nil {
		c.breaker.OnStateChange(func(from, to resilience.CircuitState) {
			c.logger.Warn("football provider circuit changed", "from", from, "to", to)
			if c.metrics != nil {
				c.metrics.SetCircuitState(string(to))
			}
		})
	}
	return c
}

// Call performs GET endpoint?params and returns the raw "response" member of
// the provider envelope. Failures to reach the provider, non-2xx statuses
// and undecodable envelopes all match upstream.ErrUnavailable.
func (c *Client) Call(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if c.apiKey == "" {
		return nil, upstream.Unavailable(nil, "football api key is not configured")
	}
	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "football provider circuit rejected request", "endpoint", endpoint, "state", c.breaker.State())
			c.observe(endpoint, "rejected", 0)
			return nil, upstream.Unavailable(err, "call %s", endpoint)
		}
	}

	fullURL := c.baseURL + endpoint
	encoded := params.Encode()
	if encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(endpoint+"?"+encoded, func() (any, error) {
		started := time.Now()
		// Shared by every caller of this key; per-attempt timeouts still apply.
		raw, reqErr := c.executeRequest(context.WithoutCancel(ctx), endpoint, fullURL)
		c.observe(endpoint, outcomeOf(reqErr), time.Since(started))
		if c.breaker != nil {
			if isCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	var env upstream.Envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return nil, upstream.Unavailable(err, "decode %s envelope", endpoint)
	}
	if hasEnvelopeErrors(env.Errors) {
		c.logger.WarnContext(ctx, "football provider reported errors", "endpoint", endpoint, "errors", env.Errors, "results", env.Results)
	}
	if len(env.Response) == 0 {
		return []byte("[]"), nil
	}
	return env.Response, nil
}

func (c *Client) executeRequest(ctx context.Context, endpoint, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, upstream.Unavailable(err, "call %s", endpoint)
		}

		raw, err := c.do(ctx, endpoint, fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !isRetryable(err) || attempt == c.maxRetries {
			break
		}

		c.logger.WarnContext(ctx, "retrying football provider request", "endpoint", endpoint, "attempt", attempt+1, "error", err)
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, upstream.Unavailable(ctx.Err(), "call %s", endpoint)
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "football provider request failed", "url", c.redact(fullURL), "error", lastErr)
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, endpoint, fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return nil, upstream.Unavailable(transportError{msg: c.sanitize(err.Error())}, "call %s", endpoint)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	if status < 200 || status >= 300 {
		return nil, &upstream.StatusError{
			Endpoint: endpoint,
			Status:   status,
			Body:     abbreviateBody(c.sanitize(string(body))),
		}
	}
	return body, nil
}

func (c *Client) observe(endpoint, outcome string, d time.Duration) {
	if c.metrics != nil {
		c.metrics.ObserveUpstream(endpoint, outcome, d)
	}
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return value
}

func (c *Client) redact(rawURL string) string {
	parsed, err := url.Parse(c.sanitize(rawURL))
	if err != nil {
		return rawURL
	}
	return parsed.Redacted()
}

// transportError marks failures where no HTTP response was received.
type transportError struct {
	msg string
}

func (e transportError) Error() string {
	return e.msg
}

func isRetryable(err error) bool {
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	var te transportError
	return errors.As(err, &te)
}

// isCircuitFailure counts transport errors and 429/5xx; client errors such
// as a bad parameter must not trip the breaker.
func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return isRetryable(err)
}

func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("status_%dxx", statusErr.Status/100)
	}
	return "error"
}

func hasEnvelopeErrors(v any) bool {
	switch e := v.(type) {
	case nil:
		return false
	case []any:
		return len(e) > 0
	case map[string]any:
		return len(e) > 0
	case string:
		return strings.TrimSpace(e) != ""
	default:
		return true
	}
}

func abbreviateBody(text string) string {
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
