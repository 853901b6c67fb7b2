package backend

import (
	"context"

	"github.com/meghashyamc/ecssnav/models"
)

const (
	searchPath    = "/api/search"
	documentsPath = "/api/documents"
	healthPath    = "/api/health"
)

// Client is the remote service that performs document retrieval and ranking.
type Client interface {
	Search(ctx context.Context, query string) ([]models.Result, error)
	Documents(ctx context.Context) ([]models.Document, error)
	Health(ctx context.Context) error
}
