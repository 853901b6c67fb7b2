package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/ecssnav/logger"
	"github.com/meghashyamc/ecssnav/models"
	"github.com/meghashyamc/ecssnav/services/search"
	"github.com/meghashyamc/ecssnav/validation"
)

// SearchParams is the query-string form of a search: GET /api/search?q=&branch=&discipline=&revision=
type SearchParams struct {
	Query      string `form:"q" json:"q" validate:"valid_query"`
	Branch     string `form:"branch" json:"branch" validate:"valid_filter"`
	Discipline string `form:"discipline" json:"discipline" validate:"valid_filter"`
	Revision   string `form:"revision" json:"revision" validate:"valid_filter"`
}

// SearchRequest is the body form of a search, as sent by the search page.
type SearchRequest struct {
	Query   string        `json:"query" validate:"valid_query"`
	Filters SearchFilters `json:"filters"`
}

type SearchFilters struct {
	Branch     string `json:"branch" validate:"valid_filter"`
	Discipline string `json:"discipline" validate:"valid_filter"`
	Revision   string `json:"revision" validate:"valid_filter"`
}

func (p SearchParams) filters() models.Filters {
	return models.Filters{Branch: p.Branch, Discipline: p.Discipline, Revision: p.Revision}
}

func (f SearchFilters) filters() models.Filters {
	return models.Filters{Branch: f.Branch, Discipline: f.Discipline, Revision: f.Revision}
}

func SetupSearch(router gin.IRouter, logger logger.Logger, service *search.Service, validator *validation.Validator) {
	router.GET("/api/search", handleSearchQuery(service, logger, validator))
	router.POST("/api/search", handleSearchBody(service, logger, validator))
}

// handleSearchQuery godoc
// @Summary      Search ECSS documents
// @Description  Forwards the query to the search backend, falling back to built-in results when it fails. Always answers 200.
// @Tags         search
// @Produce      json
// @Param        q           query  string  false  "Search query"
// @Param        branch      query  string  false  "Exact branch"
// @Param        discipline  query  string  false  "Exact discipline"
// @Param        revision    query  string  false  "Exact revision"
// @Success      200  {object}  models.Response
// @Router       /api/search [get]
func handleSearchQuery(service *search.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := SearchParams{}
		if err := c.ShouldBindQuery(&params); err != nil {
			logger.Warn("could not extract expected params from search request", "err", err.Error())
			writeSearchResponse(c, service.Degraded(c.Query("q"), err))
			return
		}

		if isBlank(params.Query) {
			dispatchSearch(c, service, logger, params.Query, params.filters())
			return
		}

		if err := validator.Validate(params); err != nil {
			logger.Warn("could not validate search request", "err", err.Error())
			writeSearchResponse(c, service.Degraded(params.Query, err))
			return
		}

		dispatchSearch(c, service, logger, params.Query, params.filters())
	}
}

// handleSearchBody godoc
// @Summary      Search ECSS documents
// @Description  Body form of the search used by the search page. Always answers 200.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request  body  SearchRequest  true  "Query and filters"
// @Success      200  {object}  models.Response
// @Router       /api/search [post]
func handleSearchBody(service *search.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := SearchRequest{}
		if err := c.ShouldBindJSON(&request); err != nil {
			logger.Warn("could not extract expected body from search request", "err", err.Error())
			writeSearchResponse(c, service.Degraded(request.Query, err))
			return
		}

		if isBlank(request.Query) {
			dispatchSearch(c, service, logger, request.Query, request.Filters.filters())
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate search request", "err", err.Error())
			writeSearchResponse(c, service.Degraded(request.Query, err))
			return
		}

		dispatchSearch(c, service, logger, request.Query, request.Filters.filters())
	}
}

// Blank queries skip validation; they always get the empty answer.
func isBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

func dispatchSearch(c *gin.Context, service *search.Service, logger logger.Logger, query string, filters models.Filters) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("search handler panicked", "panic", fmt.Sprint(r))
			writeSearchResponse(c, service.Degraded(query, fmt.Errorf("search handler panicked: %v", r)))
		}
	}()

	outcome, err := service.Search(c.Request.Context(), query, filters)
	if err != nil {
		logger.Error("search dispatch failed", "query", query, "err", err.Error())
		outcome = service.Degraded(query, err)
	}

	logger.Info("search answered", "source", string(outcome.Source), "total", len(outcome.Results))
	writeSearchResponse(c, outcome)
}
