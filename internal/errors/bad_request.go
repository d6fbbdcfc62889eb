package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AbortWithBadRequest sends a 400 Bad Request response and aborts the request.
func AbortWithBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, NewAPIError(message))
}

// BadRequest sends a 400 Bad Request response without aborting.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, NewAPIError(message))
}
