package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/meghashyamc/ecssnav/logger"
	"github.com/meghashyamc/ecssnav/metrics"
	"github.com/meghashyamc/ecssnav/models"
)

// Source names the path that produced an Outcome.
type Source string

const (
	SourceEmpty            Source = "empty"
	SourceLive             Source = "live"
	SourceFallback         Source = "fallback"
	SourceDegradedFallback Source = "degraded_fallback"
)

const (
	degradedResultCount = 2
	degradedErrorMarker = "Using fallback data due to search error"
)

// Backend represents the remote search operation needed for dispatch.
type Backend interface {
	Search(ctx context.Context, query string) ([]models.Result, error)
}

type Outcome struct {
	Source  Source
	Results []models.Result
	// Query is the query exactly as received. It is left empty for the
	// empty-query short circuit.
	Query string
	// Cause is why live results were not used. Nil for live and empty outcomes.
	Cause error
}

func (o Outcome) Response() models.Response {
	response := models.Response{
		Results: o.Results,
		Total:   len(o.Results),
		Query:   o.Query,
	}
	if response.Results == nil {
		response.Results = []models.Result{}
	}
	if o.Source == SourceDegradedFallback {
		response.Error = degradedErrorMarker
	}

	return response
}

type Service struct {
	logger  logger.Logger
	backend Backend
	corpus  []models.Result
}

func New(logger logger.Logger, backend Backend, corpus []models.Result) *Service {
	return &Service{
		logger:  logger,
		backend: backend,
		corpus:  corpus,
	}
}

// Search makes a single backend attempt for a non-blank query, swaps in the
// fallback corpus if that attempt fails, then narrows by filters. A returned
// error means dispatch itself broke; callers answer with Degraded.
func (s *Service) Search(ctx context.Context, query string, filters models.Filters) (outcome Outcome, err error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		s.record(SourceEmpty)
		return Outcome{Source: SourceEmpty, Results: []models.Result{}}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("search dispatch panicked", "query", query, "panic", fmt.Sprint(r))
			outcome = Outcome{}
			err = fmt.Errorf("search dispatch panicked: %v", r)
		}
	}()

	source := SourceLive
	results, remoteErr := s.backend.Search(ctx, trimmed)
	if remoteErr != nil {
		s.logger.Warn("backend search failed, using fallback corpus", "query", trimmed, "err", remoteErr.Error())
		source = SourceFallback
		results = s.fallbackFor(trimmed)
	}

	if err := ctx.Err(); err != nil {
		return Outcome{}, fmt.Errorf("search request ended before results were ready: %w", err)
	}

	outcome = Outcome{
		Source:  source,
		Results: filters.Apply(results),
		Query:   query,
		Cause:   remoteErr,
	}
	s.logger.Debug("search dispatched", "query", trimmed, "source", string(source), "total", len(outcome.Results))
	s.record(source)

	return outcome, nil
}

// Degraded is the coarse answer used when dispatch fails outright: the first
// corpus entries, unfiltered, with the received query echoed back.
func (s *Service) Degraded(query string, cause error) Outcome {
	if cause == nil {
		cause = errors.New("search dispatch failed")
	}
	s.logger.Error("answering with degraded fallback", "query", query, "err", cause.Error())
	s.record(SourceDegradedFallback)

	results := make([]models.Result, 0, degradedResultCount)
	results = append(results, s.corpus[:min(degradedResultCount, len(s.corpus))]...)

	return Outcome{
		Source:  SourceDegradedFallback,
		Results: results,
		Query:   query,
		Cause:   cause,
	}
}

func (s *Service) fallbackFor(query string) []models.Result {
	results := make([]models.Result, 0, len(s.corpus))
	for _, result := range s.corpus {
		if result.ContainsText(query) {
			results = append(results, result)
		}
	}

	return results
}

func (s *Service) record(source Source) {
	metrics.SearchOutcomesTotal.WithLabelValues(string(source)).Inc()
}
