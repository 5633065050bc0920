package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// Success writes a 200 envelope with a payload.
func Success(c *gin.Context, message string, data interface{}) {
	RespondJSON(c, "success", http.StatusOK, message, data, nil)
}

// ValidationError writes a 400 envelope with field-level details so the
// SPA can render the message next to the offending input.
func ValidationError(c *gin.Context, message string, fields interface{}) {
	RespondJSON(c, "error", http.StatusBadRequest, message, nil, fields)
}
