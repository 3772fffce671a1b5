package update

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskchat/internal/session"
	"github.com/sandeepkv93/taskchat/internal/views"
)

func (m Model) handleChatInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submitChat()
	case "esc":
		m.setFocus(FocusTaskList)
		return m, nil
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) submitChat() (Model, tea.Cmd) {
	turn, err := m.Session.Submit(m.chatInput.Value())
	switch {
	case errors.Is(err, session.ErrBusy):
		m.Status = StatusBar{Text: "assistant is still replying", IsError: true}
		return m, nil
	case errors.Is(err, session.ErrEmptyMessage):
		return m, nil
	case err != nil:
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.chatInput.SetValue("")
	m.clampCursor()
	m.refreshChatLog()
	if turn.Pending {
		m.Status = StatusBar{Text: "assistant is thinking"}
		return m, tea.Batch(m.busySpinner.Tick, resolveCmd(m.ctx, m.Session, turn.Prompt))
	}
	return m, nil
}

// resolveCmd runs the remote fallback outside the update loop.
func resolveCmd(ctx context.Context, sess *session.Session, prompt string) tea.Cmd {
	return func() tea.Msg {
		return CompletionMsg{Reply: sess.Resolve(ctx, prompt)}
	}
}

func (m *Model) refreshChatLog() {
	msgs := m.Session.Messages()
	parts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		body := msg.Content
		if !msg.IsUser {
			cached, ok := m.rendered[msg.ID]
			if !ok {
				cached = views.RenderMarkdown(msg.Content, m.chatViewport.Width-2)
				m.rendered[msg.ID] = cached
			}
			body = cached
		}
		parts = append(parts, views.RenderChatMessage(views.ChatMessageData{IsUser: msg.IsUser, Body: body}))
	}
	m.chatViewport.SetContent(strings.Join(parts, "\n\n"))
	m.chatViewport.GotoBottom()
}

func (m Model) renderChatPanel() string {
	if !m.Session.ChatOpen() {
		return ""
	}
	return views.RenderChatPanel(views.ChatPanelData{
		ViewportView: m.chatViewport.View(),
		InputView:    m.chatInput.View(),
		Busy:         m.Session.Busy(),
		SpinnerView:  m.busySpinner.View(),
	})
}
