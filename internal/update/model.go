package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/taskchat/internal/session"
)

type Focus string

const (
	FocusTaskInput Focus = "task input"
	FocusTaskList  Focus = "task list"
	FocusChatInput Focus = "chat input"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Help       string
	Quit       string
	ToggleChat string
	NextFocus  string
}

type Model struct {
	Session     *session.Session
	Focus       Focus
	Cursor      int
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	ctx          context.Context
	taskInput    textinput.Model
	chatInput    textinput.Model
	chatViewport viewport.Model
	busySpinner  spinner.Model
	doneBar      progress.Model
	helpModel    help.Model
	// Rendered assistant markdown keyed by message id.
	rendered map[int64]string
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// CompletionMsg carries the reply for a pending chat turn.
type CompletionMsg struct {
	Reply string
}

type SwitchFocusMsg struct {
	Focus Focus
}

// NewModel wraps sess. ctx bounds remote completions started from the UI.
func NewModel(ctx context.Context, sess *session.Session) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		Session: sess,
		Focus:   FocusTaskInput,
		Keys: GlobalKeyMap{
			Help:       "?",
			Quit:       "q",
			ToggleChat: "c",
			NextFocus:  "tab",
		},
		ctx:      ctx,
		rendered: make(map[int64]string),
	}
	m.initBubbleComponents()
	m.syncFocus()
	m.refreshChatLog()
	return m
}

func (m *Model) initBubbleComponents() {
	m.taskInput = textinput.New()
	m.taskInput.Prompt = "add> "
	m.taskInput.Placeholder = "new task"
	m.taskInput.CharLimit = 256
	m.taskInput.Width = 42

	m.chatInput = textinput.New()
	m.chatInput.Prompt = "say> "
	m.chatInput.Placeholder = "ask the assistant"
	m.chatInput.CharLimit = 512
	m.chatInput.Width = 42

	m.chatViewport = viewport.New(50, 14)

	m.busySpinner = spinner.New()
	m.busySpinner.Spinner = spinner.Dot

	m.doneBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))

	m.helpModel = help.New()
	m.helpModel.ShowAll = true
}

func (m *Model) syncFocus() {
	if m.Focus == FocusTaskInput {
		m.taskInput.Focus()
	} else {
		m.taskInput.Blur()
	}
	if m.Focus == FocusChatInput {
		m.chatInput.Focus()
	} else {
		m.chatInput.Blur()
	}
}

func (m *Model) setFocus(f Focus) {
	if f == FocusChatInput && !m.Session.ChatOpen() {
		f = FocusTaskList
	}
	m.Focus = f
	m.syncFocus()
}

func (m *Model) cycleFocus() {
	order := []Focus{FocusTaskInput, FocusTaskList}
	if m.Session.ChatOpen() {
		order = append(order, FocusChatInput)
	}
	next := order[0]
	for i, f := range order {
		if f == m.Focus {
			next = order[(i+1)%len(order)]
			break
		}
	}
	m.setFocus(next)
}

func (m Model) inputFocused() bool {
	return m.Focus == FocusTaskInput || m.Focus == FocusChatInput
}

func (m Model) TaskInputValue() string { return m.taskInput.Value() }

func (m Model) ChatInputValue() string { return m.chatInput.Value() }
