package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DjordjeVuckovic/news-verifier/internal/apperr"
)

type HTTPConfig func(client *HTTPClient)

// HTTPClient talks to a local sentiment inference server. Local inference is
// treated like any other suspension point: bounded timeout, typed errors.
type HTTPClient struct {
	base url.URL
	http *http.Client
}

const defaultTimeout = 30 * time.Second

func NewHTTPClient(baseUrl string, opts ...HTTPConfig) (*HTTPClient, error) {
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}

	client := &HTTPClient{
		base: *base,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, cfg := range opts {
		cfg(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) HTTPConfig {
	return func(client *HTTPClient) {
		client.http = httpClient
	}
}

func (c *HTTPClient) Classify(ctx context.Context, req Request) (*Response, error) {
	if req.Text == "" {
		return nil, apperr.NewValidation("missing text to classify")
	}
	if req.Model == "" {
		req.Model = defaultModel
	}

	var resp Response
	if err := c.do(ctx, http.MethodPost, "/classify", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, reqData, respData any) error {
	reqDataBytes, err := json.Marshal(reqData)
	if err != nil {
		return err
	}

	reqURL := c.base.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, method, reqURL.String(), bytes.NewReader(reqDataBytes))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(request)
	if err != nil {
		return apperr.NewTransient("inference request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, respData); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
