package player

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultDebounce is the quiet period before typed input is searched
const DefaultDebounce = 500 * time.Millisecond

// Backend is what the controller calls to search and resolve videos.
// *APIClient implements it against the proxy.
type Backend interface {
	Search(ctx context.Context, query string) ([]Album, error)
	Play(ctx context.Context, sel Selection) (*VideoReference, error)
}

// Option configures a Controller
type Option func(*Controller)

// WithDebounce overrides the typing quiet period
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithLogger sets the logger used for dropped and failed requests
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOnChange registers fn to receive every state change. Calls are
// serialized and never go back to an older version.
func WithOnChange(fn func(Snapshot)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller owns the client state. Every search and play request captures a
// generation number when dispatched; a response whose generation is no longer
// current is discarded, and its request context is cancelled.
type Controller struct {
	backend  Backend
	logger   *log.Logger
	delay    time.Duration
	debounce *Debouncer
	onChange func(Snapshot)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu           sync.Mutex
	closed       bool
	version      uint64
	input        string
	search       SearchState
	playback     PlaybackState
	searchGen    uint64
	playGen      uint64
	cancelSearch context.CancelFunc
	cancelPlay   context.CancelFunc

	notifyMu sync.Mutex
	notified uint64
}

func NewController(backend Backend, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		backend: backend,
		logger:  log.New(io.Discard),
		delay:   DefaultDebounce,
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.debounce = NewDebouncer(c.delay)
	return c
}

// SetQuery records typed input and schedules a search after the quiet
// period. Blank input cancels the pending search and leaves results alone.
func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.input = query
	c.version++
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	if strings.TrimSpace(query) == "" {
		c.debounce.Stop()
		return
	}
	c.debounce.Trigger(func() { c.runSearch(query) })
}

// Search runs a search for query right away, superseding any pending or
// in-flight search
func (c *Controller) Search(query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	c.debounce.Stop()
	c.runSearch(query)
}

// runSearch dispatches a search without touching the debouncer. The timer
// callback uses it so a keystroke that re-armed the timer is never cancelled.
func (c *Controller) runSearch(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.searchGen++
	gen := c.searchGen
	if c.cancelSearch != nil {
		c.cancelSearch()
	}
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelSearch = cancel
	c.search = SearchState{Phase: Searching, Query: query}
	c.version++
	snap := c.snapshotLocked()
	c.wg.Add(1)
	c.mu.Unlock()
	c.notify(snap)

	go func() {
		defer c.wg.Done()
		defer cancel()

		albums, err := c.backend.Search(ctx, query)

		c.mu.Lock()
		if c.closed || gen != c.searchGen {
			c.mu.Unlock()
			c.logger.Debug("dropping stale search response", "query", query, "generation", gen)
			return
		}

		switch {
		case err != nil:
			c.logger.Error("search failed", "query", query, "err", err)
			c.search = SearchState{Phase: SearchFailed, Query: query, Message: MsgSearchFailed}
		case len(albums) == 0:
			c.search = SearchState{Phase: SearchEmpty, Query: query, Message: MsgNoResults}
		default:
			c.search = SearchState{Phase: SearchResults, Query: query, Albums: albums}
		}
		c.version++
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
	}()
}

// Play resolves album to a video, superseding any in-flight play request
func (c *Controller) Play(album Album) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.playGen++
	gen := c.playGen
	if c.cancelPlay != nil {
		c.cancelPlay()
		c.cancelPlay = nil
	}

	name := strings.TrimSpace(album.Name)
	if name == "" {
		c.playback = PlaybackState{Phase: PlaybackFailed, Message: MsgNoSongName}
		c.version++
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
		return
	}

	sel := Selection{SongName: name, ArtistName: FirstArtist(album)}
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelPlay = cancel
	c.playback = PlaybackState{Phase: LoadingTrack, Selection: sel}
	c.version++
	snap := c.snapshotLocked()
	c.wg.Add(1)
	c.mu.Unlock()
	c.notify(snap)

	go func() {
		defer c.wg.Done()
		defer cancel()

		video, err := c.backend.Play(ctx, sel)

		c.mu.Lock()
		if c.closed || gen != c.playGen {
			c.mu.Unlock()
			c.logger.Debug("dropping stale play response", "song", sel.SongName, "generation", gen)
			return
		}

		switch {
		case err != nil:
			c.logger.Error("play failed", "song", sel.SongName, "artist", sel.ArtistName, "err", err)
			c.playback = PlaybackState{Phase: PlaybackFailed, Selection: sel, Message: MsgVideoFailed}
		case video == nil || video.VideoID == "":
			c.playback = PlaybackState{Phase: PlaybackFailed, Selection: sel, Message: MsgNoVideo}
		default:
			c.playback = PlaybackState{Phase: Playing, Selection: sel, Video: video}
		}
		c.version++
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
	}()
}

// Snapshot returns the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close stops the debounce timer, cancels in-flight requests and waits for
// them to return. No state changes are delivered afterwards.
func (c *Controller) Close() {
	c.debounce.Stop()

	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

func (c *Controller) snapshotLocked() Snapshot {
	search := c.search
	if search.Albums != nil {
		search.Albums = append([]Album(nil), search.Albums...)
	}
	playback := c.playback
	if playback.Video != nil {
		v := *playback.Video
		playback.Video = &v
	}
	return Snapshot{
		Version:  c.version,
		Input:    c.input,
		Search:   search,
		Playback: playback,
	}
}

func (c *Controller) notify(snap Snapshot) {
	if c.onChange == nil {
		return
	}

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	if snap.Version <= c.notified {
		return
	}
	c.notified = snap.Version
	c.onChange(snap)
}
