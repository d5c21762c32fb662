package player

// SearchPhase tags the search state
type SearchPhase int

const (
	SearchIdle SearchPhase = iota
	Searching
	SearchResults
	SearchEmpty
	SearchFailed
)

func (p SearchPhase) String() string {
	switch p {
	case Searching:
		return "searching"
	case SearchResults:
		return "results"
	case SearchEmpty:
		return "empty"
	case SearchFailed:
		return "failed"
	default:
		return "idle"
	}
}

// PlaybackPhase tags the playback state
type PlaybackPhase int

const (
	PlaybackIdle PlaybackPhase = iota
	LoadingTrack
	Playing
	PlaybackFailed
)

func (p PlaybackPhase) String() string {
	switch p {
	case LoadingTrack:
		return "loading"
	case Playing:
		return "playing"
	case PlaybackFailed:
		return "failed"
	default:
		return "idle"
	}
}

// User-facing messages
const (
	MsgNoResults    = "No results found. Try another search term."
	MsgSearchFailed = "Failed to fetch music. Please try again."
	MsgNoSongName   = "No song name available for this track."
	MsgVideoFailed  = "Failed to fetch video data. Please try again."
	MsgNoVideo      = "No video found for the song."
)

// SearchState is the search half of the client state. Albums is set only in
// SearchResults and Message only in SearchEmpty or SearchFailed.
type SearchState struct {
	Phase   SearchPhase
	Query   string
	Albums  []Album
	Message string
}

// PlaybackState is the playback half of the client state. Video is set only
// in Playing.
type PlaybackState struct {
	Phase     PlaybackPhase
	Selection Selection
	Video     *VideoReference
	Message   string
}

// Snapshot is a consistent copy of the controller state
type Snapshot struct {
	Version  uint64
	Input    string
	Search   SearchState
	Playback PlaybackState
}
