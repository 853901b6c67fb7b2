package page

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/meghashyamc/ecssnav/models"
)

const searchPath = "/api/search"

// Client sends a search to the navigator's own search endpoint.
type Client interface {
	Search(ctx context.Context, request models.SearchRequest) (models.Response, error)
}

// StatusError is a non-2xx answer from the search endpoint.
type StatusError struct {
	StatusCode int
	StatusText string
}

func (e *StatusError) Error() string {
	return "Search failed: " + e.StatusText
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *HTTPClient) Search(ctx context.Context, request models.SearchRequest) (models.Response, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return models.Response{}, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return models.Response{}, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Response{}, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return models.Response{}, &StatusError{StatusCode: resp.StatusCode, StatusText: statusText(resp)}
	}

	var response models.Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return models.Response{}, fmt.Errorf("failed to decode search response: %w", err)
	}

	return response, nil
}

// statusText is the reason phrase of the status line, e.g. "Bad Gateway".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}
