// Package gephi contains the HTTP client for the Gephi MCP plugin's control
// API and the normalized Outcome type every call is reduced to. The client
// never lets a raw transport error escape: success, malformed responses,
// connection failures, timeouts, and HTTP error statuses all come back as a
// uniform Outcome the caller can branch on.
package gephi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/graphbridge/gephi-mcp/internal/config"
)

const tracerName = "github.com/graphbridge/gephi-mcp"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 10 << 20

// Client issues calls against the Gephi plugin's HTTP API. It holds only
// immutable configuration; there is no per-call or cross-call mutable state,
// no connection reuse, and no retrying. Safe for concurrent use.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
	tracer     trace.Tracer
}

// NewClient creates a client for the configured Gephi instance. Keep-alives
// are disabled so every invocation opens a fresh connection scoped to that
// single call.
func NewClient(cfg config.GephiConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
		},
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// BaseURL returns the configured base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Execute performs exactly one HTTP request and normalizes every possible
// result into an Outcome. method must be GET, POST, or DELETE; path is
// appended to the base URL; query and body are both optional.
func (c *Client) Execute(ctx context.Context, method, path string, query url.Values, body any) Outcome {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	ctx, span := c.tracer.Start(ctx, "gephi.execute",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("gephi.path", path),
		),
	)
	defer span.End()

	outcome := c.execute(ctx, method, reqURL, body)
	if f := outcome.Failure; f != nil {
		span.SetStatus(codes.Error, string(f.Kind))
		c.logger.Warn("gephi call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("kind", string(f.Kind)),
			zap.Int("status", f.Status),
		)
	} else {
		c.logger.Debug("gephi call completed",
			zap.String("method", method),
			zap.String("path", path),
		)
	}
	return outcome
}

func (c *Client) execute(ctx context.Context, method, reqURL string, body any) Outcome {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Fail(FailureOther, fmt.Sprintf("Request failed: %v", err))
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return Fail(FailureOther, fmt.Sprintf("Request failed: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.classify(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.classify(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(respBody) == 0 || !json.Valid(respBody) {
			return Fail(FailureDecode, fmt.Sprintf("Response from Gephi was not valid JSON: %s", truncate(respBody, 200)))
		}
		return Ok(respBody)
	}

	// Non-2xx: the plugin conventionally answers error statuses with its own
	// {success: false, error: ...} body. When that body parses, it is passed
	// through verbatim; only unparseable bodies get a synthesized message.
	if len(respBody) > 0 && json.Valid(respBody) {
		return Ok(respBody)
	}
	return FailStatus(resp.StatusCode, fmt.Sprintf("HTTP %d: %s", resp.StatusCode, respBody))
}

// classify maps a transport-layer error to a Failure kind. Dial errors are
// reported as connection failures even when the dial itself timed out: the
// actionable diagnosis in both cases is that Gephi is not reachable.
func (c *Client) classify(err error) Outcome {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return Fail(FailureConnection, c.connectMessage())
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return Fail(FailureConnection, c.connectMessage())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Fail(FailureTimeout, timeoutMessage)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Fail(FailureTimeout, timeoutMessage)
	}

	return Fail(FailureOther, fmt.Sprintf("Request failed: %v", err))
}

// timeoutMessage deliberately notes that the remote operation may still be
// running: layout runs and statistics are fire-and-forget on the plugin
// side, so a client-side timeout does not imply the operation aborted.
const timeoutMessage = "Request timed out. The operation may still be running in Gephi."

func (c *Client) connectMessage() string {
	return fmt.Sprintf("Cannot connect to Gephi at %s. Ensure Gephi is running with the MCP plugin installed.", c.baseURL)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
