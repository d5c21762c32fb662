package music

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/krishvsoni/suno/internal/services/video"
	"github.com/krishvsoni/suno/pkg/errors"
)

type Service struct {
	catalog CatalogSearcher
	videos  VideoSearcher
	logger  Logger
}

func NewService(catalog CatalogSearcher, videos VideoSearcher, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		videos:  videos,
		logger:  logger,
	}
}

// Search forwards query to the catalog and relays its body unchanged
func (s *Service) Search(ctx context.Context, query string) (json.RawMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.MissingField("q", MsgQueryRequired)
	}

	body, err := s.catalog.Search(ctx, query)
	if err != nil {
		s.logger.Error("catalog search failed", "query", query, "err", err)
		return nil, errors.Upstream("catalog", err, MsgCatalogFailed)
	}

	// An empty item list still relays as 200; only a falsy body means no results
	if isFalsy(body) {
		s.logger.Debug("catalog returned an empty body", "query", query)
		return nil, errors.NotFound(MsgNoResults)
	}

	return json.RawMessage(body), nil
}

// Play looks up the best video for a song and artist
func (s *Service) Play(ctx context.Context, songName, artistName string) (*PlayResult, error) {
	songName = strings.TrimSpace(songName)
	artistName = strings.TrimSpace(artistName)
	if songName == "" {
		return nil, errors.MissingField("songName", MsgSongRequired)
	}

	query := strings.TrimSpace(songName + " " + artistName)

	result, err := s.videos.Search(ctx, query)
	if err != nil {
		s.logger.Error("video search failed", "query", query, "err", err)
		return nil, errors.Upstream("video", err, MsgVideoFailed)
	}
	if result == nil {
		return nil, errors.NotFound(MsgNoVideo)
	}

	artist := artistName
	if artist == "" {
		artist = UnknownArtist
	}

	return &PlayResult{
		Message: fmt.Sprintf("Playing: %s by %s", songName, artist),
		Video: VideoReference{
			Title:   result.Title,
			VideoID: result.VideoID,
			URL:     video.WatchURL(result.VideoID),
		},
	}, nil
}

// isFalsy reports a body that decodes to an empty or zero JSON value
func isFalsy(body []byte) bool {
	switch string(bytes.TrimSpace(body)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}
