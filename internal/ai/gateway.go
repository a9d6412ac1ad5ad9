package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultGatewayTimeout = 15 * time.Second
	defaultMaxRetries     = 3
	defaultRetryBaseDelay = 1 * time.Second
)

// GatewayConfig configures the direct backend client.
type GatewayConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	Timeout        time.Duration
	MaxRetries     int           // retries after the first attempt, on throttling only
	RetryBaseDelay time.Duration // doubled on every retry
}

// Gateway wraps the generative backend's native text-generation endpoint. It
// owns all response parsing: callers get normalized text or one error from the
// package taxonomy, never a raw backend shape. The gateway keeps no state
// between calls.
type Gateway struct {
	httpClient     *http.Client
	apiKey         string
	baseURL        string
	model          string
	maxRetries     int
	retryBaseDelay time.Duration
	logger         *zap.Logger
}

// NewGateway creates a gateway client. A missing API key is not an error here;
// Complete reports it so the failure participates in the normal taxonomy.
func NewGateway(cfg GatewayConfig, logger *zap.Logger) *Gateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultGatewayTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = defaultRetryBaseDelay
	}
	return &Gateway{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		model:          cfg.Model,
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
		logger:         logger.Named("AIGateway"),
	}
}

// generateRequest is the native generateContent request body.
type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// generateResponse is the subset of the response body the gateway consumes.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Complete sends a fully-formed prompt and returns the generated text.
// Throttled requests are retried up to MaxRetries times with a doubling delay
// (1s, 2s, 4s by default); every other failure propagates immediately.
func (g *Gateway) Complete(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)

	attempt := 0
	for {
		attempt++
		generationAttemptsTotal.WithLabelValues("gateway").Inc()

		text, err := g.doRequest(ctx, url, body)
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, ErrRateLimited) {
			return "", err
		}
		if attempt > g.maxRetries {
			g.logger.Warn("Gateway retry budget exhausted",
				zap.Int("attempts", attempt),
			)
			return "", ErrRateLimited
		}

		delay := g.retryBaseDelay << (attempt - 1)
		g.logger.Warn("Backend throttled request, backing off",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
		)
		gatewayRetriesTotal.Inc()
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ErrTimeout
		}
	}
}

func (g *Gateway) doRequest(ctx context.Context, url string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The key travels in a header so it never shows up in request logs.
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		return "", ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		g.logger.Warn("Backend returned non-2xx status", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: malformed response body: %v", ErrUpstream, err)
	}
	if len(parsed.Candidates) == 0 ||
		len(parsed.Candidates[0].Content.Parts) == 0 ||
		parsed.Candidates[0].Content.Parts[0].Text == "" {
		return "", fmt.Errorf("%w: no text generated", ErrUpstream)
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
