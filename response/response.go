package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is the JSON error body: every failure carries a message field, as the
// frontend expects.
type Error struct {
	Message string `json:"message"`
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Error{Message: message})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Error{Message: message})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, Error{Message: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Error{Message: message})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Error{Message: message})
}

func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, Error{Message: message})
}

func Internal(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Error{Message: message})
}

func BadGateway(c *gin.Context, message string) {
	c.JSON(http.StatusBadGateway, Error{Message: message})
}
