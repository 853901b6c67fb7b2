package backend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/meghashyamc/ecssnav/logger"
	"github.com/meghashyamc/ecssnav/models"
	"github.com/stretchr/testify/require"
)

func newTestLogger() logger.Logger {
	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

type backendReply struct {
	status int
	body   string
}

var searchTestCases = []struct {
	name          string
	reply         backendReply
	expectedIDs   []string
	expectedError error
}{
	{
		name:        "Results",
		reply:       backendReply{status: http.StatusOK, body: `{"results": [{"id": "b", "score": 0.4}, {"id": "a", "score": 0.9}]}`},
		expectedIDs: []string{"b", "a"},
	},
	{
		name:        "MissingResultsField",
		reply:       backendReply{status: http.StatusOK, body: `{"total": 0}`},
		expectedIDs: []string{},
	},
	{
		name:        "NullBody",
		reply:       backendReply{status: http.StatusOK, body: `null`},
		expectedIDs: []string{},
	},
	{
		name:          "ServerError",
		reply:         backendReply{status: http.StatusInternalServerError, body: `{"results": [{"id": "x"}]}`},
		expectedError: ErrUnexpectedStatus,
	},
	{
		name:          "NotFound",
		reply:         backendReply{status: http.StatusNotFound, body: `not here`},
		expectedError: ErrUnexpectedStatus,
	},
	{
		name:          "MalformedJSON",
		reply:         backendReply{status: http.StatusOK, body: `{"results": [`},
		expectedError: ErrDecode,
	},
	{
		name:          "WrongShape",
		reply:         backendReply{status: http.StatusOK, body: `{"results": "none"}`},
		expectedError: ErrDecode,
	},
}

func TestHTTPClientSearch(t *testing.T) {
	for _, testCase := range searchTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.reply.status)
				w.Write([]byte(testCase.reply.body))
			}))
			defer server.Close()

			client := NewHTTPClient(newTestLogger(), server.URL, nil)
			results, err := client.Search(context.Background(), "thermal control")

			if testCase.expectedError != nil {
				assert.Error(err)
				assert.True(errors.Is(err, testCase.expectedError), "unexpected error %v", err)
				assert.Nil(results)
				return
			}

			assert.NoError(err)
			ids := make([]string, 0, len(results))
			for _, result := range results {
				ids = append(ids, result.ID)
			}
			assert.Equal(testCase.expectedIDs, ids)
		})
	}
}

func TestHTTPClientSearchRequestShape(t *testing.T) {
	assert := require.New(t)

	var gotPath, gotQuery, gotRawQuery, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotRawQuery = r.URL.RawQuery
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewHTTPClient(newTestLogger(), server.URL+"/", nil)
	_, err := client.Search(context.Background(), "software & product assurance")
	assert.NoError(err)

	assert.Equal(http.MethodGet, gotMethod)
	assert.Equal("/api/search", gotPath)
	assert.Equal("software & product assurance", gotQuery)
	assert.Equal("q=software+%26+product+assurance", gotRawQuery)
}

func TestHTTPClientUnreachable(t *testing.T) {
	assert := require.New(t)

	server := httptest.NewServer(http.NotFoundHandler())
	unreachableURL := server.URL
	server.Close()

	client := NewHTTPClient(newTestLogger(), unreachableURL, nil)
	results, err := client.Search(context.Background(), "space systems")
	assert.Error(err)
	assert.Nil(results)
	assert.False(errors.Is(err, ErrUnexpectedStatus))
}

func TestHTTPClientDocuments(t *testing.T) {
	assert := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/api/documents", r.URL.Path)
		w.Write([]byte(`{"documents": [{"id": "doc-1", "filename": "ECSS-E-ST-50C.pdf", "status": "completed", "metadata": {"branch": "E"}}], "total": 1}`))
	}))
	defer server.Close()

	client := NewHTTPClient(newTestLogger(), server.URL, nil)
	documents, err := client.Documents(context.Background())
	assert.NoError(err)
	assert.Equal([]models.Document{{
		ID:       "doc-1",
		Filename: "ECSS-E-ST-50C.pdf",
		Status:   "completed",
		Metadata: models.Metadata{"branch": "E"},
	}}, documents)
}

func TestHTTPClientHealth(t *testing.T) {
	assert := require.New(t)

	var status atomic.Int32
	status.Store(http.StatusOK)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/api/health", r.URL.Path)
		w.WriteHeader(int(status.Load()))
	}))
	defer server.Close()

	client := NewHTTPClient(newTestLogger(), server.URL, nil)
	assert.NoError(client.Health(context.Background()))

	status.Store(http.StatusServiceUnavailable)
	err := client.Health(context.Background())
	assert.Error(err)

	var statusErr *StatusError
	assert.True(errors.As(err, &statusErr))
	assert.Equal(http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestHTTPClientCancelledContext(t *testing.T) {
	assert := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewHTTPClient(newTestLogger(), server.URL, nil)
	_, err := client.Search(ctx, "space")
	assert.Error(err)
	assert.True(errors.Is(err, context.Canceled))
}
