package paperless

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadDocument(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)

		mr, err := r.MultipartReader()
		require.NoError(t, err)

		part, err := mr.NextPart()
		require.NoError(t, err)
		assert.Equal(t, "file", part.FormName())
		assert.Equal(t, "report.pdf", part.FileName())
		assert.Equal(t, "application/octet-stream", part.Header.Get("Content-Type"))
		assert.Equal(t, "binary", part.Header.Get("Content-Transfer-Encoding"))

		content, err := io.ReadAll(part)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4 payload"), content)

		_, err = mr.NextPart()
		assert.Equal(t, io.EOF, err, "expected a single part")
	}))

	err := client.UploadDocument(context.Background(), "id", "token", []byte("%PDF-1.4 payload"), "report.pdf")
	require.NoError(t, err)
}

func TestRandomBoundary(t *testing.T) {
	// Collision resistance is best-effort; two draws repeating within one
	// process run would make concurrent uploads ambiguous.
	assert.NotEqual(t, randomBoundary(), randomBoundary())
}

func TestSearchDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("nil filter fails without a network call", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should reach the server")
		}))

		_, err := client.SearchDocuments(ctx, "id", "token", nil)
		require.Error(t, err)

		var clientErr *Error
		assert.ErrorAs(t, err, &clientErr)
	})

	t.Run("serializes filter and returns result verbatim", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/resource/search", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{
				"searchQuery": "invoice",
				"contractor": null,
				"author": "all",
				"signed": null,
				"dateFrom": null,
				"dateTo": null,
				"docList": "docs",
				"offset": 0,
				"limit": 40
			}`, string(body))

			w.Write([]byte(`[{"id":1,"name":"invoice.pdf"}]`))
		}))

		filter := NewSearchFilter()
		filter.SearchQuery = "invoice"

		result, err := client.SearchDocuments(ctx, "id", "token", filter)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1,"name":"invoice.pdf"}]`, string(result))
	})
}

func TestGetDocumentFilePathVariants(t *testing.T) {
	tests := []struct {
		name     string
		signed   bool
		wantPath string
	}{
		{"without signatures", false, "/resource/withoutsign/42/abc"},
		{"with signatures", true, "/resource/withsign/42/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				w.Write([]byte("pdf"))
			}))

			data, err := client.GetDocumentFile(context.Background(), "id", "token", "42", "abc", tt.signed)
			require.NoError(t, err)
			assert.Equal(t, []byte("pdf"), data)
		})
	}
}

func TestRenameDocument(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/resource/name/42", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "Q3 report", string(body))
	}))

	err := client.RenameDocument(context.Background(), "id", "token", "42", "Q3 report")
	require.NoError(t, err)
}

func TestTrashAndRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("trash", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/resource/42", r.URL.Path)
		}))
		require.NoError(t, client.TrashOrDeleteDocument(ctx, "id", "token", "42"))
	})

	t.Run("restore", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/resource/restore/42", r.URL.Path)
		}))
		require.NoError(t, client.RestoreDocumentFromTrash(ctx, "id", "token", "42"))
	})
}

func TestSetDocumentSharingByURL(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		wantMethod string
	}{
		{"enable uses PUT", true, http.MethodPut},
		{"disable uses DELETE", false, http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantMethod, r.Method)
				assert.Equal(t, "/resource/shareall/42", r.URL.Path)
			}))

			err := client.SetDocumentSharingByURL(context.Background(), "id", "token", "42", tt.enabled)
			require.NoError(t, err)
		})
	}
}

func TestGetDocumentSharingURL(t *testing.T) {
	client, err := NewClient("", zerolog.Nop())
	require.NoError(t, err)

	t.Run("hash precedes id in the link", func(t *testing.T) {
		link, err := client.GetDocumentSharingURL("123", "abc")
		require.NoError(t, err)
		assert.Equal(t, "https://paperless.com.ua/share/abc123", link)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := client.GetDocumentSharingURL("", "abc")
		require.Error(t, err)

		var clientErr *Error
		assert.ErrorAs(t, err, &clientErr)
	})

	t.Run("missing hash", func(t *testing.T) {
		_, err := client.GetDocumentSharingURL("123", "")
		require.Error(t, err)
	})
}
