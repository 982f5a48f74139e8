package paperless

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
)

// randomBoundary returns a multipart boundary token derived from a random
// base-36 string. Uniqueness across concurrent calls is best-effort; each
// upload is an independent request, so a collision within one body is the
// only thing that matters.
func randomBoundary() string {
	return "--------------------------" + strconv.FormatUint(rand.Uint64(), 36)
}

// UploadDocument uploads a document as a single multipart part named "file".
func (c *Client) UploadDocument(ctx context.Context, clientID, accessToken string, fileBytes []byte, fileName string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary(randomBoundary()); err != nil {
		return errorf("failed to set multipart boundary: %v", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", "application/octet-stream")
	header.Set("Content-Transfer-Encoding", "binary")

	part, err := w.CreatePart(header)
	if err != nil {
		return errorf("failed to create multipart body: %v", err)
	}
	if _, err := part.Write(fileBytes); err != nil {
		return errorf("failed to write multipart body: %v", err)
	}
	if err := w.Close(); err != nil {
		return errorf("failed to finalize multipart body: %v", err)
	}

	req, err := c.newAuthenticatedRequest(ctx, http.MethodPost, "/upload", &buf, clientID, accessToken)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	if _, err := c.do(req, false); err != nil {
		return err
	}

	c.logger.Debug().
		Str("file_name", fileName).
		Int("size", len(fileBytes)).
		Msg("Uploaded document")
	return nil
}

// SearchDocuments runs a search with the given filter and returns the
// decoded result set verbatim. No pagination loop is performed; offset and
// limit on the filter are the caller's paging controls.
func (c *Client) SearchDocuments(ctx context.Context, clientID, accessToken string, filter *SearchFilter) (json.RawMessage, error) {
	if filter == nil {
		return nil, errorf("search filter is required")
	}

	payload, err := json.Marshal(filter)
	if err != nil {
		return nil, errorf("failed to encode search filter: %v", err)
	}

	req, err := c.newAuthenticatedRequest(ctx, http.MethodPost, "/resource/search", bytes.NewReader(payload), clientID, accessToken)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req, false)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// GetDocumentInfo retrieves the metadata object for a document.
func (c *Client) GetDocumentInfo(ctx context.Context, clientID, accessToken, documentID string) (json.RawMessage, error) {
	req, err := c.newAuthenticatedRequest(ctx, http.MethodGet, "/resource/"+url.PathEscape(documentID), nil, clientID, accessToken)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req, false)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// GetDocumentFile downloads the document content (a PDF), with or without
// attached signatures. The document hash acts as a capability token and is
// required alongside the id. This is the one call that follows redirects:
// the content endpoint may redirect to a storage location.
func (c *Client) GetDocumentFile(ctx context.Context, clientID, accessToken, documentID, documentHash string, signed bool) ([]byte, error) {
	variant := "withoutsign"
	if signed {
		variant = "withsign"
	}
	path := fmt.Sprintf("/resource/%s/%s/%s", variant, url.PathEscape(documentID), url.PathEscape(documentHash))

	req, err := c.newAuthenticatedRequest(ctx, http.MethodGet, path, nil, clientID, accessToken)
	if err != nil {
		return nil, err
	}
	return c.do(req, true)
}

// RenameDocument sets a new display name for a document. The name travels
// as the raw request body.
func (c *Client) RenameDocument(ctx context.Context, clientID, accessToken, documentID, newName string) error {
	req, err := c.newAuthenticatedRequest(ctx, http.MethodPut, "/resource/name/"+url.PathEscape(documentID), strings.NewReader(newName), clientID, accessToken)
	if err != nil {
		return err
	}
	_, err = c.do(req, false)
	return err
}

// TrashOrDeleteDocument moves a document to trash, or deletes it permanently
// if it is already trashed. The distinction is server policy; the client
// cannot tell which happened.
func (c *Client) TrashOrDeleteDocument(ctx context.Context, clientID, accessToken, documentID string) error {
	req, err := c.newAuthenticatedRequest(ctx, http.MethodDelete, "/resource/"+url.PathEscape(documentID), nil, clientID, accessToken)
	if err != nil {
		return err
	}
	_, err = c.do(req, false)
	return err
}

// RestoreDocumentFromTrash moves a trashed document back to the active list.
func (c *Client) RestoreDocumentFromTrash(ctx context.Context, clientID, accessToken, documentID string) error {
	req, err := c.newAuthenticatedRequest(ctx, http.MethodPut, "/resource/restore/"+url.PathEscape(documentID), nil, clientID, accessToken)
	if err != nil {
		return err
	}
	_, err = c.do(req, false)
	return err
}

// SetDocumentSharingByURL toggles public link sharing for a document.
// Success does not distinguish "changed" from "already in the requested
// state"; the service reports both the same way.
func (c *Client) SetDocumentSharingByURL(ctx context.Context, clientID, accessToken, documentID string, enabled bool) error {
	method := http.MethodPut
	if !enabled {
		method = http.MethodDelete
	}

	req, err := c.newAuthenticatedRequest(ctx, method, "/resource/shareall/"+url.PathEscape(documentID), nil, clientID, accessToken)
	if err != nil {
		return err
	}
	_, err = c.do(req, false)
	return err
}

// GetDocumentSharingURL computes the public sharing link for a document.
// No network call is made. The link embeds hash before id; that order is
// the service's published link format.
func (c *Client) GetDocumentSharingURL(documentID, documentHash string) (string, error) {
	if documentID == "" || documentHash == "" {
		return "", errorf("document id and hash are required for a sharing link")
	}
	return fmt.Sprintf("%s/share/%s%s", c.baseURL, documentHash, documentID), nil
}
