package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlbumHelpers(t *testing.T) {
	const body = `{
		"albums": {
			"totalCount": 2,
			"items": [
				{"data": {
					"uri": "spotify:album:1",
					"name": "Blue",
					"artists": {"items": [{"profile": {"name": "Joni Mitchell"}}, {"profile": {"name": ""}}, {"profile": {"name": "Guest"}}]},
					"coverArt": {"sources": [{"url": "https://i.scdn.co/a.jpg", "width": 300, "height": 300}]}
				}},
				{"data": {"uri": "spotify:album:2"}}
			]
		}
	}`

	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Albums.Items, 2)

	first := resp.Albums.Items[0].Data
	assert.Equal(t, []string{"Joni Mitchell", "Guest"}, first.ArtistNames())
	assert.Equal(t, "https://i.scdn.co/a.jpg", first.CoverURL())

	second := resp.Albums.Items[1].Data
	assert.Empty(t, second.ArtistNames())
	assert.Empty(t, second.CoverURL())
}
