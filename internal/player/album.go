package player

import (
	"fmt"
	"strings"
)

// Display defaults for missing catalog fields
const (
	UnknownAlbum  = "Unknown Album"
	UnknownArtist = "Unknown Artist"
	NoImage       = "No Image"
)

// Album is one search result as the client renders it
type Album struct {
	URI      string
	Name     string
	Artists  []string
	CoverURL string
}

// Selection is what the client asks the proxy to play
type Selection struct {
	SongName   string
	ArtistName string
}

// VideoReference is the video returned for a selection
type VideoReference struct {
	Title   string `json:"title"`
	VideoID string `json:"videoId"`
	URL     string `json:"url"`
}

// AlbumTitle returns the album name or the Unknown Album placeholder
func AlbumTitle(a Album) string {
	if strings.TrimSpace(a.Name) == "" {
		return UnknownAlbum
	}
	return a.Name
}

// ArtistLine joins every artist name, or returns Unknown Artist
func ArtistLine(a Album) string {
	if len(a.Artists) == 0 {
		return UnknownArtist
	}
	return strings.Join(a.Artists, ", ")
}

// FirstArtist is the artist sent with a play request
func FirstArtist(a Album) string {
	if len(a.Artists) == 0 || strings.TrimSpace(a.Artists[0]) == "" {
		return UnknownArtist
	}
	return a.Artists[0]
}

// CoverLabel returns the cover URL or the No Image placeholder
func CoverLabel(a Album) string {
	if a.CoverURL == "" {
		return NoImage
	}
	return a.CoverURL
}

// EmbedURL is the autoplaying embed for a video id
func EmbedURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1", videoID)
}
