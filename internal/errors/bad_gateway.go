package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BadGateway sends a 502 Bad Gateway response carrying the raw upstream
// payload so callers can see what the model actually returned.
func BadGateway(c *gin.Context, message string, raw interface{}) {
	c.JSON(http.StatusBadGateway, NewAPIErrorWithRaw(message, raw))
}
