package player

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend delegates to per-test functions and records calls
type fakeBackend struct {
	mu       sync.Mutex
	searches []string
	plays    []Selection

	searchFn func(ctx context.Context, query string) ([]Album, error)
	playFn   func(ctx context.Context, sel Selection) (*VideoReference, error)
}

func (f *fakeBackend) Search(ctx context.Context, query string) ([]Album, error) {
	f.mu.Lock()
	f.searches = append(f.searches, query)
	f.mu.Unlock()
	if f.searchFn == nil {
		return []Album{{Name: query}}, nil
	}
	return f.searchFn(ctx, query)
}

func (f *fakeBackend) Play(ctx context.Context, sel Selection) (*VideoReference, error) {
	f.mu.Lock()
	f.plays = append(f.plays, sel)
	f.mu.Unlock()
	if f.playFn == nil {
		return &VideoReference{Title: sel.SongName, VideoID: "vid", URL: "https://www.youtube.com/watch?v=vid"}, nil
	}
	return f.playFn(ctx, sel)
}

func (f *fakeBackend) searchCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searches...)
}

func (f *fakeBackend) playCalls() []Selection {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Selection(nil), f.plays...)
}

func waitForSearch(t *testing.T, c *Controller, phase SearchPhase) Snapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		return c.Snapshot().Search.Phase == phase
	}, time.Second, 5*time.Millisecond)
	return c.Snapshot()
}

func waitForPlayback(t *testing.T, c *Controller, phase PlaybackPhase) Snapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		return c.Snapshot().Playback.Phase == phase
	}, time.Second, 5*time.Millisecond)
	return c.Snapshot()
}

func TestController_DebouncedTyping(t *testing.T) {
	backend := &fakeBackend{}
	c := NewController(backend, WithDebounce(50*time.Millisecond))
	defer c.Close()

	c.SetQuery("a")
	c.SetQuery("ab")
	c.SetQuery("abc")

	snap := waitForSearch(t, c, SearchResults)
	assert.Equal(t, "abc", snap.Search.Query)
	assert.Equal(t, "abc", snap.Input)

	// no late timers fire for the earlier keystrokes
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, []string{"abc"}, backend.searchCalls())
}

func TestController_KeystrokeDuringFiredTimerIsSearched(t *testing.T) {
	backend := &fakeBackend{}
	c := NewController(backend, WithDebounce(30*time.Millisecond))
	defer c.Close()

	// "abcd" re-arms the timer while the callback for "abc" is still running
	c.SetQuery("abcd")
	c.runSearch("abc")

	require.Eventually(t, func() bool {
		snap := c.Snapshot()
		return snap.Search.Phase == SearchResults && snap.Search.Query == "abcd"
	}, time.Second, 5*time.Millisecond)
	assert.ElementsMatch(t, []string{"abc", "abcd"}, backend.searchCalls())
}

func TestController_BlankInputDoesNotSearch(t *testing.T) {
	backend := &fakeBackend{}
	c := NewController(backend, WithDebounce(20*time.Millisecond))
	defer c.Close()

	c.SetQuery("blue")
	c.SetQuery("   ")
	time.Sleep(100 * time.Millisecond)

	assert.Empty(t, backend.searchCalls())
	assert.Equal(t, SearchIdle, c.Snapshot().Search.Phase)

	c.Search("  ")
	assert.Equal(t, SearchIdle, c.Snapshot().Search.Phase)
}

func TestController_SearchOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		searchFn    func(ctx context.Context, query string) ([]Album, error)
		wantPhase   SearchPhase
		wantMessage string
		wantAlbums  int
	}{
		{
			name: "results",
			searchFn: func(ctx context.Context, query string) ([]Album, error) {
				return []Album{{Name: "Blue"}, {Name: "Court and Spark"}}, nil
			},
			wantPhase:  SearchResults,
			wantAlbums: 2,
		},
		{
			name: "no albums",
			searchFn: func(ctx context.Context, query string) ([]Album, error) {
				return []Album{}, nil
			},
			wantPhase:   SearchEmpty,
			wantMessage: MsgNoResults,
		},
		{
			name: "proxy error",
			searchFn: func(ctx context.Context, query string) ([]Album, error) {
				return nil, &APIError{StatusCode: 500}
			},
			wantPhase:   SearchFailed,
			wantMessage: MsgSearchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(&fakeBackend{searchFn: tt.searchFn})
			defer c.Close()

			c.Search("joni")
			snap := waitForSearch(t, c, tt.wantPhase)

			assert.Equal(t, "joni", snap.Search.Query)
			assert.Equal(t, tt.wantMessage, snap.Search.Message)
			assert.Len(t, snap.Search.Albums, tt.wantAlbums)
		})
	}
}

func TestController_StaleSearchIsDropped(t *testing.T) {
	release := make(chan struct{})
	backend := &fakeBackend{
		searchFn: func(ctx context.Context, query string) ([]Album, error) {
			if query == "slow" {
				// ignores cancellation so only the generation check can stop it
				<-release
				return []Album{{Name: "stale"}}, nil
			}
			return []Album{{Name: "fresh"}}, nil
		},
	}
	c := NewController(backend)
	defer c.Close()

	c.Search("slow")
	require.Eventually(t, func() bool { return len(backend.searchCalls()) == 1 }, time.Second, time.Millisecond)

	c.Search("fast")
	snap := waitForSearch(t, c, SearchResults)
	require.Equal(t, "fresh", snap.Search.Albums[0].Name)

	close(release)
	c.wg.Wait()

	snap = c.Snapshot()
	assert.Equal(t, "fast", snap.Search.Query)
	assert.Equal(t, "fresh", snap.Search.Albums[0].Name)
}

func TestController_SupersededSearchIsCancelled(t *testing.T) {
	cancelled := make(chan struct{})
	backend := &fakeBackend{
		searchFn: func(ctx context.Context, query string) ([]Album, error) {
			if query == "first" {
				<-ctx.Done()
				close(cancelled)
				return nil, ctx.Err()
			}
			return []Album{{Name: query}}, nil
		},
	}
	c := NewController(backend)
	defer c.Close()

	c.Search("first")
	require.Eventually(t, func() bool { return len(backend.searchCalls()) == 1 }, time.Second, time.Millisecond)
	c.Search("second")

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("first search was not cancelled")
	}

	snap := waitForSearch(t, c, SearchResults)
	assert.Equal(t, "second", snap.Search.Query)
}

func TestController_Play(t *testing.T) {
	tests := []struct {
		name        string
		album       Album
		playFn      func(ctx context.Context, sel Selection) (*VideoReference, error)
		wantPhase   PlaybackPhase
		wantMessage string
		wantCalls   []Selection
	}{
		{
			name:      "first artist is sent",
			album:     Album{Name: "Blue", Artists: []string{"Joni Mitchell", "Guest"}},
			wantPhase: Playing,
			wantCalls: []Selection{{SongName: "Blue", ArtistName: "Joni Mitchell"}},
		},
		{
			name:      "missing artist defaults",
			album:     Album{Name: "Blue"},
			wantPhase: Playing,
			wantCalls: []Selection{{SongName: "Blue", ArtistName: UnknownArtist}},
		},
		{
			name:        "missing song name",
			album:       Album{Artists: []string{"Joni Mitchell"}},
			wantPhase:   PlaybackFailed,
			wantMessage: MsgNoSongName,
		},
		{
			name:  "no video",
			album: Album{Name: "Blue"},
			playFn: func(ctx context.Context, sel Selection) (*VideoReference, error) {
				return nil, nil
			},
			wantPhase:   PlaybackFailed,
			wantMessage: MsgNoVideo,
			wantCalls:   []Selection{{SongName: "Blue", ArtistName: UnknownArtist}},
		},
		{
			name:  "proxy error",
			album: Album{Name: "Blue"},
			playFn: func(ctx context.Context, sel Selection) (*VideoReference, error) {
				return nil, errors.New("connection refused")
			},
			wantPhase:   PlaybackFailed,
			wantMessage: MsgVideoFailed,
			wantCalls:   []Selection{{SongName: "Blue", ArtistName: UnknownArtist}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{playFn: tt.playFn}
			c := NewController(backend)
			defer c.Close()

			c.Play(tt.album)
			snap := waitForPlayback(t, c, tt.wantPhase)

			assert.Equal(t, tt.wantMessage, snap.Playback.Message)
			assert.Equal(t, tt.wantCalls, backend.playCalls())
			if tt.wantPhase == Playing {
				require.NotNil(t, snap.Playback.Video)
				assert.Equal(t, "vid", snap.Playback.Video.VideoID)
				assert.Equal(t, tt.wantCalls[0], snap.Playback.Selection)
			} else {
				assert.Nil(t, snap.Playback.Video)
			}
		})
	}
}

func TestController_StalePlayIsDropped(t *testing.T) {
	release := make(chan struct{})
	backend := &fakeBackend{
		playFn: func(ctx context.Context, sel Selection) (*VideoReference, error) {
			if sel.SongName == "Slow" {
				<-release
				return &VideoReference{VideoID: "slow"}, nil
			}
			return &VideoReference{VideoID: "fast"}, nil
		},
	}
	c := NewController(backend)
	defer c.Close()

	c.Play(Album{Name: "Slow"})
	require.Eventually(t, func() bool { return len(backend.playCalls()) == 1 }, time.Second, time.Millisecond)
	c.Play(Album{Name: "Fast"})
	waitForPlayback(t, c, Playing)

	close(release)
	c.wg.Wait()

	snap := c.Snapshot()
	assert.Equal(t, "fast", snap.Playback.Video.VideoID)
	assert.Equal(t, "Fast", snap.Playback.Selection.SongName)
}

func TestController_OnChangeIsOrdered(t *testing.T) {
	var mu sync.Mutex
	var versions []uint64

	c := NewController(&fakeBackend{}, WithOnChange(func(s Snapshot) {
		mu.Lock()
		versions = append(versions, s.Version)
		mu.Unlock()
	}))

	for _, q := range []string{"a", "b", "c", "d"} {
		c.Search(q)
	}
	c.Play(Album{Name: "x"})
	c.wg.Wait()
	c.Close()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, versions)
	for i := 1; i < len(versions); i++ {
		assert.Greater(t, versions[i], versions[i-1])
	}
}

func TestController_CloseStopsPendingSearch(t *testing.T) {
	backend := &fakeBackend{}
	c := NewController(backend, WithDebounce(30*time.Millisecond))

	c.SetQuery("blue")
	c.Close()
	time.Sleep(100 * time.Millisecond)

	assert.Empty(t, backend.searchCalls())

	// calls after Close are ignored
	c.Search("blue")
	c.Play(Album{Name: "Blue"})
	assert.Empty(t, backend.searchCalls())
	assert.Empty(t, backend.playCalls())
}
