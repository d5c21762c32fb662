package play

import (
	"github.com/gin-gonic/gin"

	"github.com/krishvsoni/suno/api/types"
)

// RegisterRoutes registers play routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", Get(deps))
}
