package catalog

import (
	"context"

	"github.com/meghashyamc/ecssnav/logger"
	"github.com/meghashyamc/ecssnav/models"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"

	documentsErrorMarker = "backend unavailable"
)

// Backend represents the remote operations the catalog forwards to.
type Backend interface {
	Documents(ctx context.Context) ([]models.Document, error)
	Health(ctx context.Context) error
}

type Service struct {
	logger  logger.Logger
	backend Backend
}

func New(logger logger.Logger, backend Backend) *Service {
	return &Service{
		logger:  logger,
		backend: backend,
	}
}

// Documents never fails: a backend failure becomes an empty list with an error marker.
func (s *Service) Documents(ctx context.Context) models.DocumentsResponse {
	documents, err := s.backend.Documents(ctx)
	if err != nil {
		s.logger.Warn("could not list backend documents", "err", err.Error())
		return models.DocumentsResponse{
			Documents: []models.Document{},
			Total:     0,
			Error:     documentsErrorMarker,
		}
	}

	return models.DocumentsResponse{
		Documents: documents,
		Total:     len(documents),
	}
}

func (s *Service) Health(ctx context.Context) models.HealthResponse {
	if err := s.backend.Health(ctx); err != nil {
		s.logger.Warn("backend health check failed", "err", err.Error())
		return models.HealthResponse{Status: StatusDegraded, BackendConnected: false}
	}

	return models.HealthResponse{Status: StatusHealthy, BackendConnected: true}
}
