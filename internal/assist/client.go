// Package assist drafts listing descriptions with a generative text model.
// Every call returns a usable string; failures degrade to a fixed fallback.
package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	FallbackNotConfigured = "API Key not configured. Please add a valid Gemini API key to your environment variables."
	FallbackEmpty         = "Failed to generate description."
	FallbackFailed        = "Error generating content. Please check your API configuration."
)

const (
	DefaultModel   = "gemini-3-flash-preview"
	DefaultTimeout = 15 * time.Second
)

var errEmptyResponse = errors.New("empty response")

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FallbackRecorder is notified whenever a fallback string is returned.
type FallbackRecorder interface {
	AssistFallback(ctx context.Context, reason string)
}

type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type Client struct {
	gen     Generator
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[string]
	sfg     singleflight.Group // shares one in-flight call between identical requests
	flights *flights
	metrics FallbackRecorder
	logger  *zap.Logger
}

// NewClient builds a client backed by Gemini. Without an API key the client
// still works and answers every call with FallbackNotConfigured.
func NewClient(ctx context.Context, cfg Config, metrics FallbackRecorder, logger *zap.Logger) (*Client, error) {
	var gen Generator
	if cfg.APIKey != "" {
		g, err := NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		gen = g
		if logger != nil {
			logger.Info("gemini generator ready", zap.String("model", g.Model()))
		}
	}
	return NewClientWithGenerator(gen, cfg.Timeout, metrics, logger), nil
}

// NewClientWithGenerator wires an arbitrary generator; a nil gen means no credentials.
func NewClientWithGenerator(gen Generator, timeout time.Duration, metrics FallbackRecorder, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		gen:     gen,
		timeout: timeout,
		metrics: metrics,
		logger:  logger,
	}
	c.flights = newFlights(c.sfg.Forget)
	c.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "assist",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		IsSuccessful: func(err error) bool {
			// callers walking away says nothing about the provider
			return err == nil || errors.Is(err, errEmptyResponse) || errors.Is(err, context.Canceled)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return c
}

// GenerateDescription drafts a short business description. It never fails:
// on missing credentials, errors, timeouts or empty output it returns one
// of the fallback strings.
func (c *Client) GenerateDescription(ctx context.Context, name, industry, keywords string) string {
	if c.gen == nil {
		c.fallback(ctx, "not_configured")
		return FallbackNotConfigured
	}

	prompt := Prompt(name, industry, keywords)
	f := c.flights.join(ctx, prompt)
	defer c.flights.leave(prompt, f)

	ch := c.sfg.DoChan(prompt, func() (interface{}, error) {
		defer c.flights.done(prompt, f)
		return c.breaker.Execute(func() (string, error) {
			return c.generate(f.ctx, prompt)
		})
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		c.logger.Debug("text generation abandoned by caller",
			zap.String("business", name),
			zap.Error(ctx.Err()))
		c.fallback(ctx, "canceled")
		return FallbackFailed
	}

	if res.Err != nil {
		if errors.Is(res.Err, errEmptyResponse) {
			c.fallback(ctx, "empty")
			return FallbackEmpty
		}
		c.logger.Error("text generation failed",
			zap.String("business", name),
			zap.Bool("shared", res.Shared),
			zap.Error(res.Err))
		c.fallback(ctx, reason(res.Err))
		return FallbackFailed
	}
	return res.Val.(string)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errEmptyResponse
	}
	return text, nil
}

func (c *Client) fallback(ctx context.Context, reason string) {
	if c.metrics != nil {
		c.metrics.AssistFallback(ctx, reason)
	}
}

func reason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "breaker_open"
	default:
		return "error"
	}
}

// Prompt is the instruction sent to the model.
func Prompt(name, industry, keywords string) string {
	return fmt.Sprintf("Generate a sleek, professional business description for a company named %q in the %s industry. "+
		"Use these keywords: %s. Keep it under 200 characters and make it sound modern and corporate.",
		name, industry, keywords)
}
