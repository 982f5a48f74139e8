package paperless

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// DefaultKeyType is the signature key type used when none is given.
const DefaultKeyType = "PERSONAL_KEY"

// GetDocumentSignatures retrieves the signatures attached to a document.
func (c *Client) GetDocumentSignatures(ctx context.Context, clientID, accessToken, documentID string) (json.RawMessage, error) {
	req, err := c.newAuthenticatedRequest(ctx, http.MethodGet, "/sign/"+url.PathEscape(documentID), nil, clientID, accessToken)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req, false)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// AddDocumentSignature attaches a digital signature to a document. The body
// maps the document id to a single-element array holding the signature
// payload; the key type travels as a query parameter. An empty keyType
// selects DefaultKeyType.
func (c *Client) AddDocumentSignature(ctx context.Context, clientID, accessToken, documentID, signatureData, keyType string) error {
	if keyType == "" {
		keyType = DefaultKeyType
	}

	payload, err := json.Marshal(map[string][]string{documentID: {signatureData}})
	if err != nil {
		return errorf("failed to encode signature payload: %v", err)
	}

	req, err := c.newAuthenticatedRequest(ctx, http.MethodPost, "/sign/0?keyType="+url.QueryEscape(keyType), bytes.NewReader(payload), clientID, accessToken)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req, false)
	return err
}
