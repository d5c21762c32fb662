package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishvsoni/suno/api/types"
)

// Get handles version requests
// @Summary      Build information
// @Tags         system
// @Produce      json
// @Success      200 {object} types.VersionResponse
// @Router       /version [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.VersionResponse{Name: "Suno API"}
		if deps != nil {
			response.BuildInfo = deps.Build
		}
		c.JSON(http.StatusOK, response)
	}
}
