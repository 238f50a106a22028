// Package laybuy is the HTTP client for the Laybuy merchant API.
package laybuy

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/DanielPopoola/laybuy-gateway/internal/config"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
)

const userAgent = "laybuy-gateway/1.0"

type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

func NewClient(cfg config.LaybuyConfig) *Client {
	return NewClientWithBaseURL(cfg, cfg.BaseURL())
}

// NewClientWithBaseURL points the client at an explicit endpoint instead of
// the production or sandbox API.
func NewClientWithBaseURL(cfg config.LaybuyConfig, baseURL string) *Client {
	credentials := fmt.Sprintf("%s:%s", cfg.MerchantID, cfg.AuthenticationKey)
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/") + "/",
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials)),
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

func (c *Client) CreateOrder(ctx context.Context, req CreateRequest) (*CreateResponse, error) {
	return send[CreateResponse](ctx, c, req)
}

func (c *Client) ConfirmOrder(ctx context.Context, req ConfirmRequest) (*ConfirmResponse, error) {
	return send[ConfirmResponse](ctx, c, req)
}

func (c *Client) GetOrder(ctx context.Context, req GetRequest) (*GetResponse, error) {
	return send[GetResponse](ctx, c, req)
}

func (c *Client) RefundOrder(ctx context.Context, req RefundRequest) (*RefundResponse, error) {
	return send[RefundResponse](ctx, c, req)
}

func (c *Client) CancelOrder(ctx context.Context, req CancelRequest) (*CancelResponse, error) {
	return send[CancelResponse](ctx, c, req)
}

// send issues req and decodes whatever body comes back into Resp. The HTTP
// status is not interpreted; the envelope's result is authoritative.
func send[Resp any](ctx context.Context, c *Client, req Request) (*Resp, error) {
	var bodyReader io.Reader
	if req.Method() != http.MethodGet {
		jsonData, err := json.Marshal(req)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), c.baseURL+req.Path(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Authorization", c.authHeader)
	if bodyReader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.NewTransportFailureError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewTransportFailureError(err)
	}

	var laybuyResp Resp
	if err := json.Unmarshal(body, &laybuyResp); err != nil {
		return nil, domain.NewUnrecognizedResponseError(string(body), &ResponseError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Err:        err,
		})
	}

	return &laybuyResp, nil
}
