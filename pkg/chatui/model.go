package chatui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	bspinner "github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/go-go-golems/chinwag/pkg/backend"
	"github.com/go-go-golems/chinwag/pkg/transcript"
)

const (
	composerHeight = 3
	// chrome rows around the viewport and composer: header, typing line, help line
	chromeRows = 3
)

// Model is the chat surface: a header, a scrollable transcript, a typing
// indicator and a composer. All state transitions are local; the only
// asynchronous input is the backend's ReplyMsg.
type Model struct {
	store   *transcript.Store
	backend backend.Backend
	theme   Theme
	keys    keyMap

	composer textarea.Model
	viewport viewport.Model
	spinner  bspinner.Model
	renderer *glamour.TermRenderer

	ctx     context.Context
	pending bool
	ready   bool
	width   int
	height  int
}

func NewModel(store *transcript.Store, b backend.Backend, theme Theme) Model {
	ta := textarea.New()
	ta.Placeholder = "Type a message…"
	ta.Prompt = "┃ "
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(composerHeight)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	sp := bspinner.New()
	sp.Spinner = bspinner.Dot
	sp.Style = theme.Spinner

	return Model{
		store:    store,
		backend:  b,
		theme:    theme,
		keys:     defaultKeyMap(),
		composer: ta,
		spinner:  sp,
		ctx:      context.Background(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.composer.SetWidth(msg.Width - m.theme.Composer.GetHorizontalFrameSize())
		vpHeight := msg.Height - composerHeight - m.theme.Composer.GetVerticalFrameSize() - chromeRows
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.rebuildRenderer()
		m.refreshTranscript()
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.backend.Kill()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Send):
			return m.submit()
		case key.Matches(msg, m.keys.Clear):
			m.clear()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copyLast()
			return m, nil
		}

	case backend.ReplyMsg:
		if _, err := m.store.Append(transcript.RoleAssistant, msg.Text); err != nil {
			log.Error().Err(err).Msg("chatui: failed to append reply")
		}
		m.pending = false
		m.refreshTranscript()
		m.viewport.GotoBottom()
		return m, nil

	case bspinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit implements the submission contract: whitespace-only input and
// submissions while a reply is pending are ignored without feedback.
func (m Model) submit() (Model, tea.Cmd) {
	text := m.composer.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}
	if m.pending {
		log.Debug().Msg("chatui: submit ignored, reply pending")
		return m, nil
	}

	if _, err := m.store.Append(transcript.RoleUser, text); err != nil {
		log.Error().Err(err).Msg("chatui: failed to append user message")
		return m, nil
	}
	m.composer.Reset()
	m.pending = true
	m.refreshTranscript()
	m.viewport.GotoBottom()

	cmd, err := m.backend.Start(m.ctx, text)
	if err != nil {
		log.Error().Err(err).Msg("chatui: backend refused to start")
		m.pending = false
		return m, nil
	}
	return m, tea.Batch(cmd, m.spinner.Tick)
}

// clear reseeds the transcript. The pending flag is deliberately left
// alone: an in-flight reply still lands in the fresh transcript.
func (m *Model) clear() {
	m.store.Clear()
	m.refreshTranscript()
	m.viewport.GotoTop()
}

func (m *Model) copyLast() {
	last, ok := m.store.Last()
	if !ok {
		return
	}
	if err := clipboard.WriteAll(last.Text); err != nil {
		log.Warn().Err(err).Msg("chatui: clipboard write failed")
	}
}

func (m *Model) rebuildRenderer() {
	wrap := m.width - 4
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		log.Warn().Err(err).Msg("chatui: glamour renderer unavailable, using plain text")
		m.renderer = nil
		return
	}
	m.renderer = renderer
}

func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	var blocks []string
	for _, msg := range m.store.Messages() {
		blocks = append(blocks, m.renderMessage(msg))
	}
	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
}

func (m Model) renderMessage(msg transcript.Message) string {
	label := m.theme.LabelStyle(msg.Role).Render(msg.Role.Label())
	text := msg.Text
	if msg.Role == transcript.RoleAssistant && m.renderer != nil {
		if out, err := m.renderer.Render(msg.Text); err == nil {
			text = strings.Trim(out, "\n")
		} else {
			log.Debug().Err(err).Msg("chatui: markdown render failed")
		}
	}
	bubble := m.theme.BubbleStyle(msg.Role)
	if m.width > 0 {
		bubble = bubble.MaxWidth(m.width)
	}
	return label + "\n" + bubble.Render(text)
}

func (m Model) View() string {
	if !m.ready {
		return "Loading chat…"
	}

	header := m.theme.Header.Render("chinwag")

	typing := " "
	if m.pending {
		typing = m.spinner.View() + m.theme.Typing.Render(" assistant is typing…")
	}

	composer := m.theme.Composer.Render(m.composer.View())
	help := m.theme.Help.Render("enter send • ctrl+l clear • ctrl+y copy last • esc quit")

	return header + "\n" + m.viewport.View() + "\n" + typing + "\n" + composer + "\n" + help
}

// Pending reports whether a synthetic reply is in flight.
func (m Model) Pending() bool {
	return m.pending
}
