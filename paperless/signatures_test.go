package paperless

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDocumentSignatures(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sign/42", r.URL.Path)
		w.Write([]byte(`[{"keyType":"PERSONAL_KEY","signer":"О. Коваль"}]`))
	}))

	result, err := client.GetDocumentSignatures(context.Background(), "id", "token", "42")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"keyType":"PERSONAL_KEY","signer":"О. Коваль"}]`, string(result))
}

func TestAddDocumentSignature(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		keyType     string
		wantKeyType string
	}{
		{"explicit key type", "ORG_SEAL", "ORG_SEAL"},
		{"empty key type defaults", "", "PERSONAL_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/sign/0", r.URL.Path)
				assert.Equal(t, tt.wantKeyType, r.URL.Query().Get("keyType"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.JSONEq(t, `{"42": ["base64-signature"]}`, string(body))
			}))

			err := client.AddDocumentSignature(ctx, "id", "token", "42", "base64-signature", tt.keyType)
			require.NoError(t, err)
		})
	}
}
