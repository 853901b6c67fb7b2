package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/ecssnav/services/search"
)

func writeResponse(c *gin.Context, data interface{}, statusCode int) {

	if statusCode == http.StatusNoContent {
		c.JSON(statusCode, nil)
		return

	}

	c.JSON(statusCode, data)
}

// Every search answer is a 200, whichever tier produced it.
func writeSearchResponse(c *gin.Context, outcome search.Outcome) {
	writeResponse(c, outcome.Response(), http.StatusOK)
}
