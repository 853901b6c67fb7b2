// Common test helpers
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/ecssnav/backend"
	"github.com/meghashyamc/ecssnav/logger"
	"github.com/meghashyamc/ecssnav/models"
	"github.com/meghashyamc/ecssnav/services/catalog"
	"github.com/meghashyamc/ecssnav/services/search"
	"github.com/meghashyamc/ecssnav/validation"
	"github.com/stretchr/testify/require"
)

var defaultTestRequestHeaders = map[string]string{"Content-Type": "application/json"}

type testCase struct {
	name             string
	method           string
	requestHeaders   map[string]string
	requestBody      any
	queryParams      map[string]string
	expectedStatus   int
	expectedIDs      []string
	expectedQuery    string
	expectError      bool
	expectedBackendQ string
}

// panickingBackend stands in for a backend client that breaks in a way the
// fallback corpus cannot absorb.
type panickingBackend struct{}

func (panickingBackend) Search(ctx context.Context, query string) ([]models.Result, error) {
	panic("backend client bug")
}

func newTestLogger() logger.Logger {

	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

// unreachableURL returns the address of a server that has already been shut down.
func unreachableURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	return server.URL
}

func setupTestServer(assert *require.Assertions, searchBackend search.Backend, catalogBackend catalog.Backend) *gin.Engine {

	testLogger := newTestLogger()

	validator, err := validation.New(testLogger)
	assert.NoError(err, "could not create validator")

	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupSearch(router, testLogger, search.New(testLogger, searchBackend, search.DefaultCorpus()), validator)
	SetupCatalog(router, testLogger, catalog.New(testLogger, catalogBackend))

	return router
}

func newTestBackend(logger logger.Logger, baseURL string) *backend.HTTPClient {
	return backend.NewHTTPClient(logger, baseURL, nil)
}

func makeTestHTTPRequest(router *gin.Engine, assert *require.Assertions, method string, endpoint string, headers map[string]string, requestBody any, queryParams map[string]string) *httptest.ResponseRecorder {

	var err error
	w := httptest.NewRecorder()

	if len(queryParams) > 0 {
		values := url.Values{}
		for key, value := range queryParams {
			values.Set(key, value)
		}
		endpoint = endpoint + "?" + values.Encode()
	}

	var jsonBody []byte
	switch body := requestBody.(type) {
	case nil:
	case string:
		jsonBody = []byte(body)
	default:
		jsonBody, err = json.Marshal(body)
		assert.NoError(err)
	}

	slog.Info("Making test request", "method", method, "endpoint", endpoint, "headers", headers, "body", string(jsonBody))

	var req *http.Request
	if len(jsonBody) > 0 {
		req, err = http.NewRequest(method, endpoint, bytes.NewBuffer(jsonBody))
	} else {
		req, err = http.NewRequest(method, endpoint, nil)
	}
	assert.NoError(err)

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	router.ServeHTTP(w, req)

	return w
}

func decodeSearchResponse(assert *require.Assertions, w *httptest.ResponseRecorder) (models.Response, map[string]any) {
	var response models.Response
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &response), "could not decode %s", w.Body.String())

	var raw map[string]any
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &raw))

	return response, raw
}

func resultIDs(results []models.Result) []string {
	ids := make([]string, 0, len(results))
	for _, result := range results {
		ids = append(ids, result.ID)
	}
	return ids
}
