package play

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishvsoni/suno/api/types"
)

// Get resolves a song to a playable video
// @Summary      Find a video for a song
// @Description  Searches for the best video match of songName and artistName
// @Tags         play
// @Produce      json
// @Param        songName    query     string  true   "Song name"
// @Param        artistName  query     string  false  "Artist name"
// @Success      200 {object}  music.PlayResult
// @Failure      400 {object}  types.ErrorResponse "Song name is required"
// @Failure      404 {object}  types.ErrorResponse "No video found for the song."
// @Failure      500 {object}  types.ErrorResponse "Failed to fetch video data from YouTube API"
// @Router       /api/play [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := deps.Music.Play(c.Request.Context(), c.Query("songName"), c.Query("artistName"))
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
