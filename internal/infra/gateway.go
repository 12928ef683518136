package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"exploraneiva/internal/session"

	"github.com/rs/zerolog/log"
)

// maxErrorBody bounds how much of a failed response is read to find "message".
const maxErrorBody = 64 << 10

// Gateway is the single HTTP client for the remote tourism API.
// Every resource service goes through it, so base URL, timeout, headers,
// error normalisation and failure logging live in one place.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewGateway creates a Gateway rooted at baseURL (e.g. http://localhost:9000/api).
// timeout applies to every request; there is no retry.
func NewGateway(baseURL string, timeout time.Duration) *Gateway {
	return &Gateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured API root.
func (g *Gateway) BaseURL() string { return g.baseURL }

// Get decodes the JSON response of GET path into out.
func (g *Gateway) Get(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodGet, path, nil, out)
}

// Post sends body as JSON and decodes the response into out (may be nil).
func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPost, path, body, out)
}

// Put sends body as JSON and decodes the response into out (may be nil).
func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues DELETE path and discards any response body.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil)
}

// Ping checks that the API host answers at all. Any HTTP status counts as
// reachable; only transport failures are reported.
func (g *Gateway) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL, nil)
	if err != nil {
		return fmt.Errorf("gateway: create request: %w", err)
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return transportError(g.baseURL, err)
	}
	resp.Body.Close()
	return nil
}

func (g *Gateway) do(ctx context.Context, method, path string, body, out any) error {
	url := g.baseURL + path
	start := time.Now()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: marshal payload: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("gateway: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s, ok := session.FromContext(ctx); ok && s.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIToken)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		observe(method, "error", start)
		return g.fail(transportError(url, err))
	}
	defer resp.Body.Close()
	observe(method, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return g.fail(statusError(url, resp))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			// 2xx with an empty body: leave out untouched
			return nil
		}
		return g.fail(&GatewayError{
			Kind:       KindDecode,
			Message:    "Respuesta inválida del servidor",
			StatusCode: resp.StatusCode,
			URL:        url,
			Err:        err,
		})
	}
	return nil
}

// fail logs every failure once, at the point it happens.
func (g *Gateway) fail(e *GatewayError) error {
	log.Error().
		Str("url", e.URL).
		Int("status", e.StatusCode).
		Str("kind", string(e.Kind)).
		Str("message", e.Message).
		Msg("Error API")
	return e
}

func transportError(url string, err error) *GatewayError {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return &GatewayError{Kind: KindTimeout, Message: ConnectionErrorMessage, URL: url, Err: err}
	}
	msg := err.Error()
	if msg == "" {
		msg = ConnectionErrorMessage
	}
	return &GatewayError{Kind: KindTransport, Message: msg, URL: url, Err: err}
}

func statusError(url string, resp *http.Response) *GatewayError {
	var envelope struct {
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(raw, &envelope)

	msg := strings.TrimSpace(envelope.Message)
	if msg == "" {
		msg = fmt.Sprintf("Request failed with status code %d", resp.StatusCode)
	}
	return &GatewayError{Kind: KindStatus, Message: msg, StatusCode: resp.StatusCode, URL: url}
}

func observe(method, status string, start time.Time) {
	apiRequestsTotal.WithLabelValues(method, status).Inc()
	apiRequestDuration.WithLabelValues(method, status).Observe(time.Since(start).Seconds())
}
