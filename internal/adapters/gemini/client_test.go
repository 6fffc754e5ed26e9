package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: returns the first candidate text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Contains(t, r.URL.Path, "gemini-2.5-flash")
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			var req generateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Contents, 1)
			assert.Equal(t, "hola", req.Contents[0].Parts[0].Text)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"candidates": [
					{"content": {"parts": [{"text": "Lo estás haciendo muy bien."}]}}
				]
			}`))
		}))
		defer server.Close()

		client := NewClient("test-key", WithBaseURL(server.URL))

		text, err := client.Generate(ctx, "hola")
		require.NoError(t, err)
		assert.Equal(t, "Lo estás haciendo muy bien.", text)
	})

	t.Run("Fail: non-200 status surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded"}}`))
		}))
		defer server.Close()

		client := NewClient("test-key", WithBaseURL(server.URL))

		_, err := client.Generate(ctx, "hola")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("Fail: empty candidate list surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates": []}`))
		}))
		defer server.Close()

		client := NewClient("test-key", WithBaseURL(server.URL))

		_, err := client.Generate(ctx, "hola")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no candidates")
	})

	t.Run("Fail: missing api key short-circuits before any request", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		client := NewClient("", WithBaseURL(server.URL))

		_, err := client.Generate(ctx, "hola")
		require.Error(t, err)
		assert.False(t, called)
	})
}
