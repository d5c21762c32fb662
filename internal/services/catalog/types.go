package catalog

// SearchResponse is the subset of a multi-search body the client renders.
// Only albums are shown; the other sections are relayed but not decoded.
type SearchResponse struct {
	Albums AlbumPage `json:"albums"`
}

// AlbumPage is one section of a multi-search response
type AlbumPage struct {
	TotalCount int         `json:"totalCount"`
	Items      []AlbumItem `json:"items"`
}

// AlbumItem wraps a single album entry
type AlbumItem struct {
	Data *Album `json:"data"`
}

// Album is a catalog album entry. Every field may be missing.
type Album struct {
	URI      string    `json:"uri"`
	Name     string    `json:"name"`
	Artists  ArtistSet `json:"artists"`
	CoverArt CoverArt  `json:"coverArt"`
	Date     struct {
		Year int `json:"year"`
	} `json:"date"`
}

// ArtistSet holds the album artists
type ArtistSet struct {
	Items []Artist `json:"items"`
}

// Artist is a single catalog artist
type Artist struct {
	URI     string `json:"uri"`
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
}

// CoverArt lists cover image renditions, largest first
type CoverArt struct {
	Sources []ImageSource `json:"sources"`
}

// ImageSource is one cover image rendition
type ImageSource struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ArtistNames returns the non-empty artist names in catalog order
func (a *Album) ArtistNames() []string {
	names := make([]string, 0, len(a.Artists.Items))
	for _, artist := range a.Artists.Items {
		if artist.Profile.Name != "" {
			names = append(names, artist.Profile.Name)
		}
	}
	return names
}

// CoverURL returns the first cover image URL, or "" when there is none
func (a *Album) CoverURL() string {
	if len(a.CoverArt.Sources) == 0 {
		return ""
	}
	return a.CoverArt.Sources[0].URL
}
