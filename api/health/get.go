package health

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/krishvsoni/suno/api/types"
	"github.com/krishvsoni/suno/internal/services/cache"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports liveness, whether upstream credentials are configured and in-process cache usage
// @Tags         system
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			Status:    types.StatusOK,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Upstreams: map[string]string{},
		}

		if deps != nil {
			names := make([]string, 0, len(deps.Upstreams))
			for name := range deps.Upstreams {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				if deps.Upstreams[name] {
					response.Upstreams[name] = "configured"
					continue
				}
				response.Upstreams[name] = "not configured"
				response.Status = types.StatusDegraded
			}

			if reporter, ok := deps.Cache.(cache.StatsReporter); ok {
				stats := reporter.Stats()
				response.Cache = &stats
			}
		}

		// Degraded still answers 200: the process itself is up
		c.JSON(http.StatusOK, response)
	}
}
