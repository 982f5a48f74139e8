package paperless

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// GetAuthCode requests an authorization code for the given client id.
// Transport success alone is not enough: the response body must carry
// state "ok", otherwise the server's auth/desc diagnostics are surfaced
// in the error. A redirect response is a failure for this call.
func (c *Client) GetAuthCode(ctx context.Context, clientID string) (string, error) {
	form := url.Values{}
	form.Set("response_type", "code")
	form.Set("agentCheck", "true")
	form.Set("client_id", clientID)

	req, err := c.newRequest(ctx, http.MethodPost, "/oauth/authorize", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req, false)
	if err != nil {
		return "", err
	}

	var payload struct {
		State string `json:"state"`
		Code  string `json:"code"`
		Auth  string `json:"auth"`
		Desc  string `json:"desc"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", errorf("failed to decode authorization response: %v", err)
	}

	if payload.State != "ok" {
		return "", errorf("authorization refused: auth=%s desc=%s", payload.Auth, payload.Desc)
	}

	c.logger.Debug().Str("client_id", clientID).Msg("Obtained authorization code")
	return payload.Code, nil
}

// GetAuthToken exchanges an authorization code and client secret for a token
// bundle. The service imposes no shape on the bundle beyond "JSON object",
// so the decoded object is returned verbatim. A body carrying an "error" key
// is a semantic failure even on a 2xx. A redirect response is a failure for
// this call.
func (c *Client) GetAuthToken(ctx context.Context, clientID, clientSecret, authCode string) (map[string]any, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)
	form.Set("code", authCode)

	req, err := c.newRequest(ctx, http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req, false)
	if err != nil {
		return nil, err
	}

	var token map[string]any
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, errorf("failed to decode token response: %v", err)
	}

	if errVal, ok := token["error"]; ok {
		return nil, errorf("token request rejected: %v: %v", errVal, token["error_description"])
	}

	c.logger.Debug().Str("client_id", clientID).Msg("Obtained access token")
	return token, nil
}
