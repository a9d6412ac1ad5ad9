package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func generateBody(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
}

func newTestGateway(baseURL string) *Gateway {
	return NewGateway(GatewayConfig{
		APIKey:         "test-key",
		BaseURL:        baseURL,
		Model:          "test-model",
		Timeout:        2 * time.Second,
		MaxRetries:     3,
		RetryBaseDelay: time.Millisecond,
	}, zap.NewNop())
}

func TestGatewayComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful generation", func(t *testing.T) {
		var gotPath, gotKey string
		var gotReq generateRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("x-goog-api-key")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			fmt.Fprint(w, generateBody("Once upon a time."))
		}))
		defer srv.Close()

		text, err := newTestGateway(srv.URL).Complete(ctx, "tell me a story")

		require.NoError(t, err)
		assert.Equal(t, "Once upon a time.", text)
		assert.Equal(t, "/models/test-model:generateContent", gotPath)
		assert.Equal(t, "test-key", gotKey)
		require.Len(t, gotReq.Contents, 1)
		assert.Equal(t, "tell me a story", gotReq.Contents[0].Parts[0].Text)
		assert.Equal(t, 0.7, gotReq.GenerationConfig.Temperature)
		assert.Equal(t, 40, gotReq.GenerationConfig.TopK)
		assert.Equal(t, 0.95, gotReq.GenerationConfig.TopP)
		assert.Equal(t, 1024, gotReq.GenerationConfig.MaxOutputTokens)
	})

	t.Run("Missing API key fails before any request", func(t *testing.T) {
		g := NewGateway(GatewayConfig{BaseURL: "http://unreachable.invalid"}, zap.NewNop())
		_, err := g.Complete(ctx, "prompt")
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("Throttling is retried and eventually succeeds", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) <= 2 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			fmt.Fprint(w, generateBody("finally"))
		}))
		defer srv.Close()

		text, err := newTestGateway(srv.URL).Complete(ctx, "prompt")

		require.NoError(t, err)
		assert.Equal(t, "finally", text)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("Retry budget is exhausted after max retries", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := newTestGateway(srv.URL).Complete(ctx, "prompt")

		assert.ErrorIs(t, err, ErrRateLimited)
		// первый запрос + три повтора
		assert.Equal(t, int32(4), calls.Load())
	})

	t.Run("Non-throttling upstream errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newTestGateway(srv.URL).Complete(ctx, "prompt")

		assert.ErrorIs(t, err, ErrUpstream)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("Malformed response body maps to upstream error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "not json")
		}))
		defer srv.Close()

		_, err := newTestGateway(srv.URL).Complete(ctx, "prompt")
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("Empty candidate list maps to upstream error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"candidates":[]}`)
		}))
		defer srv.Close()

		_, err := newTestGateway(srv.URL).Complete(ctx, "prompt")
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("Cancelled context aborts the backoff wait", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		g := NewGateway(GatewayConfig{
			APIKey:         "test-key",
			BaseURL:        srv.URL,
			Model:          "test-model",
			MaxRetries:     3,
			RetryBaseDelay: time.Minute,
		}, zap.NewNop())

		timeoutCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := g.Complete(timeoutCtx, "prompt")

		assert.ErrorIs(t, err, ErrTimeout)
		assert.Less(t, time.Since(start), time.Second, "must not sit out the full backoff")
	})
}
