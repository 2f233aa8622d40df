package api

import (
	"errors"
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"milkstore/internal/service" // Workflow error taxonomy

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// writeServiceError maps workflow errors onto the API's status codes.
// NotFound is 404, the client-fault taxonomy is 400, everything else is a 500
// with a generic body; the cause only goes to the log.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"error": err.Error(),
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// pageParams reads pageIndex and pageSize from the query string, defaulting to
// 1 and 10. There is no upper bound on pageSize.
func pageParams(c *gin.Context) (int, int) {
	pageIndex := 1
	pageSize := 10
	if p := c.Query("pageIndex"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			pageIndex = v // Set page index if valid
		}
	}
	if ps := c.Query("pageSize"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 {
			pageSize = v // Set page size if valid
		}
	}
	return pageIndex, pageSize
}
