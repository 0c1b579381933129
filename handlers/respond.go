package handlers

import (
	"net/http"
	"strconv"

	"restaurant-api/domain"

	"github.com/gin-gonic/gin"
)

// fail maps a domain error kind to its HTTP status and writes the
// caller-safe message. Unclassified errors surface as 500.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch domain.KindOf(err) {
	case domain.KindInvalidInput:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindConflict:
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": domain.Message(err)})
}

// parseID reads a numeric path parameter, failing with invalid-input on
// anything non-numeric.
func parseID(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id64), true
}
