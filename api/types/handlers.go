package types

import (
	"github.com/gin-gonic/gin"

	"github.com/krishvsoni/suno/pkg/errors"
)

// RespondError writes err as {"error": message} with its mapped status
func RespondError(c *gin.Context, err error) {
	c.JSON(errors.GetHTTPCode(err), ErrorResponse{Error: errors.Message(err)})
}
