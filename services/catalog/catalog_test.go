package catalog

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/meghashyamc/ecssnav/logger"
	"github.com/meghashyamc/ecssnav/models"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	documents    []models.Document
	documentsErr error
	healthErr    error
}

func (f *fakeBackend) Documents(ctx context.Context) ([]models.Document, error) {
	return f.documents, f.documentsErr
}

func (f *fakeBackend) Health(ctx context.Context) error {
	return f.healthErr
}

func newTestLogger() logger.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestDocuments(t *testing.T) {
	assert := require.New(t)

	documents := []models.Document{
		{ID: "a", Filename: "ECSS-E-ST-10C.pdf", Status: "completed"},
		{ID: "b", Filename: "ECSS-Q-ST-80C.pdf", Status: "processing"},
	}
	service := New(newTestLogger(), &fakeBackend{documents: documents})

	response := service.Documents(context.Background())
	assert.Equal(documents, response.Documents)
	assert.Equal(2, response.Total)
	assert.Empty(response.Error)
}

func TestDocumentsBackendDown(t *testing.T) {
	assert := require.New(t)
	service := New(newTestLogger(), &fakeBackend{documentsErr: errors.New("connection refused")})

	response := service.Documents(context.Background())
	assert.NotNil(response.Documents)
	assert.Empty(response.Documents)
	assert.Equal(0, response.Total)
	assert.Equal(documentsErrorMarker, response.Error)
}

func TestHealth(t *testing.T) {
	assert := require.New(t)

	healthy := New(newTestLogger(), &fakeBackend{})
	assert.Equal(models.HealthResponse{Status: StatusHealthy, BackendConnected: true}, healthy.Health(context.Background()))

	degraded := New(newTestLogger(), &fakeBackend{healthErr: errors.New("503")})
	assert.Equal(models.HealthResponse{Status: StatusDegraded, BackendConnected: false}, degraded.Health(context.Background()))
}
