package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meghashyamc/ecssnav/config"
	"github.com/meghashyamc/ecssnav/logger"
	"github.com/meghashyamc/ecssnav/metrics"
	"github.com/meghashyamc/ecssnav/models"
)

// HTTPClient talks to the backend over plain HTTP GETs. It makes exactly
// one attempt per call and sets no timeout of its own; cancellation comes
// from the caller's context.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

func New(logger logger.Logger, cfg *config.Config) *HTTPClient {
	return NewHTTPClient(logger, cfg.GetBackendBaseURL(), nil)
}

func NewHTTPClient(logger logger.Logger, baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

func (h *HTTPClient) BaseURL() string {
	return h.baseURL
}

// Search returns the backend's results in backend order. A body without a
// results field is an empty result set, not an error.
func (h *HTTPClient) Search(ctx context.Context, query string) ([]models.Result, error) {
	params := url.Values{}
	params.Set("q", query)

	var body struct {
		Results []models.Result `json:"results"`
	}
	if err := h.getJSON(ctx, searchPath, params, &body); err != nil {
		return nil, err
	}

	if body.Results == nil {
		return []models.Result{}, nil
	}

	return body.Results, nil
}

func (h *HTTPClient) Documents(ctx context.Context) ([]models.Document, error) {
	var body struct {
		Documents []models.Document `json:"documents"`
	}
	if err := h.getJSON(ctx, documentsPath, nil, &body); err != nil {
		return nil, err
	}

	if body.Documents == nil {
		return []models.Document{}, nil
	}

	return body.Documents, nil
}

// Health succeeds when the backend answers its health route with a 2xx status.
func (h *HTTPClient) Health(ctx context.Context) error {
	return h.getJSON(ctx, healthPath, nil, nil)
}

func (h *HTTPClient) getJSON(ctx context.Context, path string, params url.Values, target any) (err error) {
	start := time.Now()
	defer func() {
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = metrics.OutcomeError
		}
		metrics.BackendRequestDuration.WithLabelValues(path, outcome).Observe(time.Since(start).Seconds())
	}()

	endpoint := h.baseURL + path
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		h.logger.Error("could not build backend request", "endpoint", endpoint, "err", err.Error())
		return fmt.Errorf("could not build backend request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	h.logger.Debug("calling backend", "endpoint", endpoint)
	resp, err := h.httpClient.Do(req)
	if err != nil {
		h.logger.Warn("backend request failed", "endpoint", endpoint, "err", err.Error())
		return fmt.Errorf("backend request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		h.logger.Warn("backend answered with non-success status", "endpoint", endpoint, "status", resp.StatusCode)
		return &StatusError{Endpoint: path, StatusCode: resp.StatusCode}
	}

	if target == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		h.logger.Warn("could not decode backend response", "endpoint", endpoint, "err", err.Error())
		return &DecodeError{Endpoint: path, Err: err}
	}

	return nil
}
