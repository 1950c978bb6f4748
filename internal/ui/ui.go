package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/aurabeat/internal/services"
)

// pollInterval matches the display layer's now-playing refresh cadence.
const pollInterval = 5 * time.Second

// TokenFunc hands the view a currently valid access token or an error.
type TokenFunc func(ctx context.Context) (string, error)

// Model represents the now-playing view state.
type Model struct {
	ctx      context.Context
	spotify  services.Listening
	token    TokenFunc
	playing  *services.SpotifyCurrentlyPlaying
	fetching bool
	err      error
	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	width    int
}

type tickMsg time.Time

type playingFetchedMsg struct {
	playing *services.SpotifyCurrentlyPlaying
	err     error
}

// NewModel creates a now-playing view with the provided dependencies.
func NewModel(ctx context.Context, spotify services.Listening, token TokenFunc) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.ok

	return &Model{
		ctx:     ctx,
		spotify: spotify,
		token:   token,
		spinner: sp,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init starts the spinner and issues the first fetch.
func (m *Model) Init() tea.Cmd {
	m.fetching = true
	return tea.Batch(m.spinner.Tick, m.fetchNowPlaying())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if !m.fetching {
				m.fetching = true
				return m, m.fetchNowPlaying()
			}
		}
		return m, nil

	case tickMsg:
		if m.fetching {
			return m, m.schedulePoll()
		}
		m.fetching = true
		return m, tea.Batch(m.fetchNowPlaying(), m.schedulePoll())

	case playingFetchedMsg:
		m.fetching = false
		m.err = msg.err
		if msg.err == nil {
			m.playing = msg.playing
		}
		return m, m.schedulePoll()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the now-playing card.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Now Playing"))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(styles.err.Render(fmt.Sprintf("✗ %v", m.err)))
	case m.fetching && m.playing == nil:
		b.WriteString(m.spinner.View() + " fetching playback state...")
	case m.playing == nil || !m.playing.IsPlaying:
		b.WriteString(styles.card.Render(styles.help.Render("Nothing playing right now")))
	default:
		b.WriteString(styles.card.Render(m.renderTrack()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) renderTrack() string {
	track := m.playing.Item

	var artists []string
	for _, artist := range track.Artists {
		artists = append(artists, artist.Name)
	}

	lines := []string{
		styles.ok.Render(track.Name),
		strings.Join(artists, ", "),
	}
	if track.Album.Name != "" {
		lines = append(lines, styles.help.Render(track.Album.Name))
	}
	lines = append(lines, "", progressLine(m.playing.ProgressMS, track.DurationMS, 30))

	return strings.Join(lines, "\n")
}

// progressLine renders elapsed/total playback as a fixed-width bar.
func progressLine(progressMS, durationMS, width int) string {
	if durationMS <= 0 {
		return ""
	}
	if progressMS > durationMS {
		progressMS = durationMS
	}

	filled := progressMS * width / durationMS
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	return fmt.Sprintf("%s %s/%s", bar, formatDuration(progressMS), formatDuration(durationMS))
}

func formatDuration(ms int) string {
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func (m *Model) schedulePoll() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) fetchNowPlaying() tea.Cmd {
	return func() tea.Msg {
		accessToken, err := m.token(m.ctx)
		if err != nil {
			return playingFetchedMsg{err: err}
		}

		playing, err := m.spotify.CurrentlyPlaying(m.ctx, accessToken)
		return playingFetchedMsg{playing: playing, err: err}
	}
}
