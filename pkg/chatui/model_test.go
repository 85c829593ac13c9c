package chatui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/go-go-golems/chinwag/pkg/backend"
	"github.com/go-go-golems/chinwag/pkg/transcript"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := transcript.NewStore()
	b := backend.NewEchoBackend(time.Millisecond)
	m := NewModel(store, b, FlatTheme())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model, ok := updated.(Model)
	require.True(t, ok)
	return model
}

func pressEnter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, ok := updated.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestSubmitAppendsUserMessageAndSetsPending(t *testing.T) {
	m := newTestModel(t)
	m.composer.SetValue("hi")

	m, cmd := pressEnter(t, m)
	require.NotNil(t, cmd)
	require.True(t, m.Pending())
	require.Equal(t, 3, m.store.Len())

	last, ok := m.store.Last()
	require.True(t, ok)
	require.Equal(t, transcript.RoleUser, last.Role)
	require.Equal(t, "hi", last.Text)
	require.Empty(t, m.composer.Value())
}

func TestReplyAppendsAssistantMessageAndClearsPending(t *testing.T) {
	m := newTestModel(t)
	m.composer.SetValue("hi")
	m, _ = pressEnter(t, m)

	updated, _ := m.Update(backend.ReplyMsg{Text: transcript.DemoReplyText})
	m = updated.(Model)

	require.False(t, m.Pending())
	require.Equal(t, 4, m.store.Len())
	last, ok := m.store.Last()
	require.True(t, ok)
	require.Equal(t, transcript.RoleAssistant, last.Role)
	require.Equal(t, transcript.DemoReplyText, last.Text)
}

func TestSubmitIgnoresWhitespaceOnlyInput(t *testing.T) {
	m := newTestModel(t)
	m.composer.SetValue("   \t ")

	m, cmd := pressEnter(t, m)
	require.Nil(t, cmd)
	require.False(t, m.Pending())
	require.Equal(t, 2, m.store.Len())
}

func TestSubmitIgnoredWhileReplyPending(t *testing.T) {
	m := newTestModel(t)
	m.composer.SetValue("first")
	m, _ = pressEnter(t, m)
	require.True(t, m.Pending())
	require.Equal(t, 3, m.store.Len())

	m.composer.SetValue("second")
	m, cmd := pressEnter(t, m)
	require.Nil(t, cmd)
	require.Equal(t, 3, m.store.Len())
	require.True(t, m.Pending())
}

func TestClearReseedsTranscriptAndLeavesPendingAlone(t *testing.T) {
	m := newTestModel(t)
	m.composer.SetValue("hi")
	m, _ = pressEnter(t, m)
	require.True(t, m.Pending())
	require.Equal(t, 3, m.store.Len())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = updated.(Model)

	require.Equal(t, 2, m.store.Len())
	require.True(t, m.Pending())

	msgs := m.store.Messages()
	require.Equal(t, transcript.RoleSystem, msgs[0].Role)
	require.Equal(t, transcript.RoleAssistant, msgs[1].Role)

	// the in-flight reply still lands in the fresh transcript
	updated, _ = m.Update(backend.ReplyMsg{Text: transcript.DemoReplyText})
	m = updated.(Model)
	require.False(t, m.Pending())
	require.Equal(t, 3, m.store.Len())
}

func TestQuitKillsBackend(t *testing.T) {
	store := transcript.NewStore()
	b := backend.NewEchoBackend(time.Minute)
	m := NewModel(store, b, FlatTheme())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	m.composer.SetValue("hi")
	m, _ = pressEnter(t, m)
	require.False(t, b.IsFinished())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.True(t, b.IsFinished())
}

func TestViewShowsTypingIndicatorOnlyWhilePending(t *testing.T) {
	m := newTestModel(t)
	require.NotContains(t, m.View(), "assistant is typing")

	m.composer.SetValue("hi")
	m, _ = pressEnter(t, m)
	require.Contains(t, m.View(), "assistant is typing")

	updated, _ := m.Update(backend.ReplyMsg{Text: transcript.DemoReplyText})
	m = updated.(Model)
	require.NotContains(t, m.View(), "assistant is typing")
}

func TestAssistantFallsBackToPlainTextWithoutRenderer(t *testing.T) {
	m := newTestModel(t)
	m.renderer = nil

	out := m.renderMessage(transcript.NewMessage(transcript.RoleAssistant, "plain fallback reply"))
	require.Contains(t, out, "plain fallback reply")

	// the transcript still shows the literal text end to end
	m.composer.SetValue("hi")
	m, _ = pressEnter(t, m)
	updated, _ := m.Update(backend.ReplyMsg{Text: "plain fallback reply"})
	m = updated.(Model)
	require.Contains(t, m.View(), "plain fallback reply")
}

func TestNonAssistantRolesNeverUseTheRenderer(t *testing.T) {
	m := newTestModel(t)
	require.NotNil(t, m.renderer)

	// markdown-significant text stays literal for user and system bubbles
	out := m.renderMessage(transcript.NewMessage(transcript.RoleUser, "*not rendered*"))
	require.Contains(t, out, "*not rendered*")
	out = m.renderMessage(transcript.NewMessage(transcript.RoleSystem, "# heading"))
	require.Contains(t, out, "# heading")
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := NewModel(transcript.NewStore(), backend.NewEchoBackend(time.Millisecond), FlatTheme())
	require.Contains(t, m.View(), "Loading")
}
