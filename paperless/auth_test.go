package paperless

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAuthCode(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/oauth/authorize", r.URL.Path)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "code", r.PostForm.Get("response_type"))
			assert.Equal(t, "true", r.PostForm.Get("agentCheck"))
			assert.Equal(t, "my-client", r.PostForm.Get("client_id"))

			json.NewEncoder(w).Encode(map[string]string{
				"state": "ok",
				"code":  "auth-code-123",
			})
		}))

		code, err := client.GetAuthCode(ctx, "my-client")
		require.NoError(t, err)
		assert.Equal(t, "auth-code-123", code)
	})

	t.Run("state not ok", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{
				"state": "fail",
				"auth":  "access_denied",
				"desc":  "unknown client",
			})
		}))

		_, err := client.GetAuthCode(ctx, "my-client")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access_denied")
		assert.Contains(t, err.Error(), "unknown client")
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))

		_, err := client.GetAuthCode(ctx, "my-client")
		require.Error(t, err)

		var clientErr *Error
		assert.ErrorAs(t, err, &clientErr)
	})
}

func TestGetAuthToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns token object verbatim", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/oauth/token", r.URL.Path)

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "my-client", r.PostForm.Get("client_id"))
			assert.Equal(t, "my-secret", r.PostForm.Get("client_secret"))
			assert.Equal(t, "auth-code-123", r.PostForm.Get("code"))

			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "tok",
				"expires_in":   3600,
			})
		}))

		token, err := client.GetAuthToken(ctx, "my-client", "my-secret", "auth-code-123")
		require.NoError(t, err)
		assert.Equal(t, "tok", token["access_token"])
		assert.Equal(t, float64(3600), token["expires_in"])
	})

	t.Run("error key in body", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_grant",
				"error_description": "code expired",
			})
		}))

		_, err := client.GetAuthToken(ctx, "my-client", "my-secret", "stale")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_grant")
		assert.Contains(t, err.Error(), "code expired")
	})
}
