package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRendering(t *testing.T) {
	tests := []struct {
		name        string
		album       Album
		wantTitle   string
		wantArtists string
		wantFirst   string
		wantCover   string
	}{
		{
			name:        "complete album",
			album:       Album{Name: "Blue", Artists: []string{"Joni Mitchell", "Guest"}, CoverURL: "https://i.scdn.co/a.jpg"},
			wantTitle:   "Blue",
			wantArtists: "Joni Mitchell, Guest",
			wantFirst:   "Joni Mitchell",
			wantCover:   "https://i.scdn.co/a.jpg",
		},
		{
			name:        "empty album",
			album:       Album{},
			wantTitle:   UnknownAlbum,
			wantArtists: UnknownArtist,
			wantFirst:   UnknownArtist,
			wantCover:   NoImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTitle, AlbumTitle(tt.album))
			assert.Equal(t, tt.wantArtists, ArtistLine(tt.album))
			assert.Equal(t, tt.wantFirst, FirstArtist(tt.album))
			assert.Equal(t, tt.wantCover, CoverLabel(tt.album))
		})
	}
}

func TestEmbedURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/abc123?autoplay=1", EmbedURL("abc123"))
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "searching", Searching.String())
	assert.Equal(t, "empty", SearchEmpty.String())
	assert.Equal(t, "idle", SearchIdle.String())
	assert.Equal(t, "loading", LoadingTrack.String())
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "failed", PlaybackFailed.String())
}
