package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/TemirB/storefront/internal/observability"
	"github.com/TemirB/storefront/internal/pkg/breaker"
)

// transport is the shared HTTP plumbing of the store and admin clients.
type transport struct {
	http    *http.Client
	baseURL string
	scope   string
	auth    func(*http.Request)

	breaker *breaker.Breaker
	metrics observability.Metrics
	tracer  trace.Tracer
	logger  *zap.Logger
}

type errorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (t *transport) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	op = t.scope + "." + op
	ctx, span := t.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("medusa.path", path),
	))
	defer span.End()

	if err := t.breaker.Allow(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now()
	status, err := t.roundTrip(ctx, op, method, path, query, body, out)
	durMs := float64(time.Since(start).Microseconds()) / 1000
	span.SetAttributes(attribute.Int("http.status_code", status))

	// 4xx answers are the backend working as intended.
	if err != nil && (status == 0 || status >= 500) {
		t.breaker.Failure()
	} else {
		t.breaker.Success()
	}
	t.metrics.ObserveBackend(op, durMs, err == nil)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if status == 0 || status >= 500 {
			t.logger.Warn("backend call failed",
				zap.String("op", op),
				zap.Int("status", status),
				zap.Float64("dur_ms", durMs),
				zap.Error(err),
			)
		}
		return err
	}
	return nil
}

func (t *transport) roundTrip(ctx context.Context, op, method, path string, query url.Values, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	u := t.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.auth != nil {
		t.auth(req)
	}
	// Admin requests already carry basic auth and never act as a customer.
	if tok := tokenFrom(ctx); tok != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Op: op, Status: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.Message = eb.Message
			apiErr.Type = eb.Type
		}
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(http.StatusText(resp.StatusCode))
		}
		return resp.StatusCode, apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return resp.StatusCode, nil
}

// IsUnavailable reports a call rejected by the open circuit breaker.
func IsUnavailable(err error) bool {
	return errors.Is(err, breaker.ErrOpenState)
}
