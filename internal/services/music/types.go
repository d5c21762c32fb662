package music

// VideoReference identifies the video chosen for a song
type VideoReference struct {
	Title   string `json:"title"`
	VideoID string `json:"videoId"`
	URL     string `json:"url"`
}

// PlayResult is the payload returned for a play request
type PlayResult struct {
	Message string         `json:"message"`
	Video   VideoReference `json:"video"`
}

// Client-facing messages
const (
	MsgQueryRequired = `Query parameter "q" is required`
	MsgNoResults     = "No results found for the query"
	MsgCatalogFailed = "Failed to fetch data from Spotify API"
	MsgSongRequired  = "Song name is required"
	MsgNoVideo       = "No video found for the song."
	MsgVideoFailed   = "Failed to fetch video data from YouTube API"
	UnknownArtist    = "Unknown Artist"
)
