//go:build integration

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/DanielPopoola/laybuy-gateway/internal/api"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to the gateway. Redirects are returned, not followed.
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// StartPayment calls the post-process endpoint and returns the redirect target.
func (c *TestClient) StartPayment(t *testing.T, orderID int64) *url.URL {
	resp, err := c.httpClient.Post(fmt.Sprintf("%s/orders/%d/payment", c.baseURL, orderID), "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	location, err := resp.Location()
	require.NoError(t, err)
	return location
}

// Callback replays the provider return URL and returns the redirect target.
func (c *TestClient) Callback(t *testing.T, orderID int64, status, token string) *url.URL {
	q := url.Values{}
	q.Set("status", status)
	q.Set("token", token)

	resp, err := c.httpClient.Get(fmt.Sprintf("%s/laybuy/callback/%d?%s", c.baseURL, orderID, q.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusFound, resp.StatusCode)
	location, err := resp.Location()
	require.NoError(t, err)
	return location
}

func (c *TestClient) Refund(t *testing.T, orderID int64, amount, note string) (*api.Refund, error) {
	body := []byte(fmt.Sprintf(`{"amount": %s, "note": %q}`, amount, note))

	var out api.RefundResponse
	if err := c.postJSON(t, fmt.Sprintf("/orders/%d/refunds", orderID), body, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *TestClient) Reconcile(t *testing.T, orderID int64) (*api.Reconciliation, error) {
	var out api.ReconcileResponse
	if err := c.postJSON(t, fmt.Sprintf("/orders/%d/refunds/reconcile", orderID), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *TestClient) Breakdown(t *testing.T, query string) *api.Breakdown {
	resp, err := c.httpClient.Get(c.baseURL + "/price-breakdown?" + query)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out api.BreakdownResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return &out.Data
}

func (c *TestClient) postJSON(t *testing.T, path string, body []byte, out any) error {
	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if resp.StatusCode >= 400 {
		var errResp api.ErrorResponse
		_ = json.Unmarshal(bodyBytes, &errResp)
		return fmt.Errorf("status %d: %s: %s", resp.StatusCode, errResp.Error.Code, errResp.Error.Message)
	}

	require.NoError(t, json.Unmarshal(bodyBytes, out))
	return nil
}
