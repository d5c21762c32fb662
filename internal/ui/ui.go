package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/krishvsoni/suno/internal/player"
)

// Model is the terminal front end over a [player.Controller]
type Model struct {
	ctrl    *player.Controller
	updates <-chan player.Snapshot
	openURL func(string) error

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	snap   player.Snapshot
	cursor int
	notice string
	width  int
	height int
}

// NewModel creates the TUI model. updates must receive every snapshot the
// controller publishes (see [Forward]).
func NewModel(ctrl *player.Controller, updates <-chan player.Snapshot) *Model {
	input := textinput.New()
	input.Placeholder = "Search for songs, artists, albums..."
	input.Prompt = "🔍 "
	input.CharLimit = 200
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.warn

	return &Model{
		ctrl:    ctrl,
		updates: updates,
		openURL: player.OpenBrowser,
		input:   input,
		spinner: sp,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init starts the cursor blink, the spinner and the state listener
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.waitForState())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-6, 10)
		return m, nil

	case stateMsg:
		m.applyState(player.Snapshot(msg))
		return m, m.waitForState()

	case openedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("Could not open browser: %v", msg.err)
		} else {
			m.notice = "Opened " + msg.url
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the search box, the result list and the now-playing panel
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Suno"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderSearch())
	b.WriteString("\n")
	b.WriteString(m.renderPlayback())

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(styles.help.Render(m.notice))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.down):
		if m.cursor < len(m.snap.Search.Albums)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.enter):
		m.submit()
		return m, nil

	case key.Matches(msg, m.keys.open):
		return m, m.openPlaying()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.ctrl.SetQuery(value)
	}
	return m, cmd
}

// submit plays the highlighted album when the list matches the input,
// otherwise searches the input right away
func (m *Model) submit() {
	query := strings.TrimSpace(m.input.Value())
	search := m.snap.Search

	if search.Phase == player.SearchResults && search.Query == query && m.cursor < len(search.Albums) {
		m.notice = ""
		m.ctrl.Play(search.Albums[m.cursor])
		return
	}
	m.ctrl.Search(query)
}

func (m *Model) applyState(snap player.Snapshot) {
	if snap.Search.Query != m.snap.Search.Query || snap.Search.Phase != m.snap.Search.Phase {
		m.cursor = 0
	}
	m.snap = snap
}

func (m *Model) openPlaying() tea.Cmd {
	video := m.snap.Playback.Video
	if m.snap.Playback.Phase != player.Playing || video == nil {
		return nil
	}

	url := player.EmbedURL(video.VideoID)
	open := m.openURL
	return func() tea.Msg {
		return openedMsg{url: url, err: open(url)}
	}
}

func (m *Model) waitForState() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-m.updates
		if !ok {
			return nil
		}
		return stateMsg(snap)
	}
}

func (m *Model) renderSearch() string {
	search := m.snap.Search

	switch search.Phase {
	case player.Searching:
		return fmt.Sprintf("%s Searching for %q...", m.spinner.View(), search.Query)
	case player.SearchEmpty:
		return styles.warn.Render(search.Message)
	case player.SearchFailed:
		return styles.err.Render(search.Message)
	case player.SearchResults:
		var b strings.Builder
		for i, album := range search.Albums {
			line := fmt.Sprintf("%s · %s", player.AlbumTitle(album), player.ArtistLine(album))
			cover := styles.help.Render("  " + player.CoverLabel(album))
			if i == m.cursor {
				b.WriteString(styles.selected.Render("▶ " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
			b.WriteString(cover)
			b.WriteString("\n")
		}
		return b.String()
	default:
		return styles.help.Render("Start typing to search.")
	}
}

func (m *Model) renderPlayback() string {
	playback := m.snap.Playback

	switch playback.Phase {
	case player.LoadingTrack:
		return fmt.Sprintf("%s Loading %s...", m.spinner.View(), playback.Selection.SongName)
	case player.Playing:
		return styles.ok.Render(fmt.Sprintf("♪ Now playing: %s by %s", playback.Selection.SongName, playback.Selection.ArtistName))
	case player.PlaybackFailed:
		return styles.err.Render(playback.Message)
	default:
		return ""
	}
}
