package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskchat/internal/model"
	"github.com/sandeepkv93/taskchat/internal/views"
)

func (m Model) handleTaskInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if task, ok := m.Session.AddTask(m.taskInput.Value()); ok {
			m.Status = StatusBar{Text: "added: " + task.Text}
			m.Cursor = len(m.Session.Tasks()) - 1
		}
		m.taskInput.SetValue("")
		return m, nil
	case "esc":
		m.setFocus(FocusTaskList)
		return m, nil
	}
	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	return m, cmd
}

func (m Model) handleTaskListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	tasks := m.Session.Tasks()
	switch msg.String() {
	case "j", "down":
		if m.Cursor < len(tasks)-1 {
			m.Cursor++
		}
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case " ", "space":
		if task, ok := m.selectedTask(); ok {
			m.Session.ToggleCompleted(task.ID)
		}
	case "x":
		if task, ok := m.selectedTask(); ok {
			m.Session.DeleteTask(task.ID)
			m.Status = StatusBar{Text: "deleted: " + task.Text}
			m.clampCursor()
		}
	case "i", "a":
		m.setFocus(FocusTaskInput)
	}
	return m, nil
}

func (m Model) selectedTask() (model.Task, bool) {
	tasks := m.Session.Tasks()
	if m.Cursor < 0 || m.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.Session.Tasks())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) renderTaskPanel() string {
	tasks := m.Session.Tasks()
	items := make([]views.TaskItemData, 0, len(tasks))
	for i, t := range tasks {
		items = append(items, views.TaskItemData{
			Text:      t.Text,
			Completed: t.Completed,
			Selected:  i == m.Cursor,
		})
	}
	return views.RenderTaskPanel(views.TaskPanelData{
		InputView:   m.taskInput.View(),
		ProgressBar: m.doneBar.ViewAs(m.Session.Stats().Ratio()),
		Items:       items,
		Completed:   m.Session.CompletedCount(),
		Focused:     m.Focus == FocusTaskList,
	})
}
