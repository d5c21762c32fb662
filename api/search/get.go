package search

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishvsoni/suno/api/types"
)

// Get relays a catalog search
// @Summary      Search the music catalog
// @Description  Forwards q to the catalog multi-search and returns its body unchanged
// @Tags         search
// @Produce      json
// @Param        q   query     string  true  "Search text"
// @Success      200 {object}  object  "Catalog search response"
// @Failure      400 {object}  types.ErrorResponse "Query parameter \"q\" is required"
// @Failure      404 {object}  types.ErrorResponse "No results found for the query"
// @Failure      500 {object}  types.ErrorResponse "Failed to fetch data from Spotify API"
// @Router       /api/search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := deps.Music.Search(c.Request.Context(), c.Query("q"))
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	}
}
