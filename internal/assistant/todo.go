package assistant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepkv93/taskchat/internal/commands"
	"github.com/sandeepkv93/taskchat/internal/model"
)

func (a *Assistant) handleTodo(message string) string {
	cmd, err := commands.Parse(message)
	if err != nil {
		var ce *commands.CommandError
		if errors.As(err, &ce) && ce.Code == commands.ErrCodeInvalidArgument {
			return addRetry
		}
		return todoHelp
	}
	res, err := commands.Execute(cmd, commands.Handlers{
		Add:      a.addTask,
		List:     a.listTasks,
		Complete: a.askComplete,
		Delete:   a.askDelete,
		Help:     func() (commands.Result, error) { return commands.Result{Message: todoHelp}, nil },
	})
	if err != nil {
		a.logger.Printf("[assistant] todo command %q failed: %v", cmd.Type, err)
		return todoHelp
	}
	return res.Message
}

func (a *Assistant) addTask(args commands.AddArgs) (commands.Result, error) {
	task, ok := a.store.Add(args.Text)
	if !ok {
		return commands.Result{Message: addRetry}, nil
	}
	return commands.Result{Message: fmt.Sprintf(addConfirm, task.Text, len(a.store.Pending()))}, nil
}

func (a *Assistant) listTasks() (commands.Result, error) {
	st := a.store.Stats()
	if st.Total == 0 {
		return commands.Result{Message: listEmpty}, nil
	}
	var b strings.Builder
	pending := a.store.Pending()
	if len(pending) == 0 {
		b.WriteString(listNonePend)
	} else {
		b.WriteString(listHeader)
		for i, t := range pending {
			fmt.Fprintf(&b, "\n%d. %s", i+1, t.Text)
		}
	}
	if st.Completed > 0 {
		b.WriteString("\n\n")
		fmt.Fprintf(&b, listCompleted, st.Completed)
	}
	return commands.Result{Message: b.String()}, nil
}

func (a *Assistant) askComplete() (commands.Result, error) {
	pending := a.store.Pending()
	if len(pending) == 0 {
		return commands.Result{Message: completeNone}, nil
	}
	return commands.Result{Message: fmt.Sprintf(completeAsk, quoteJoin(pending))}, nil
}

func (a *Assistant) askDelete() (commands.Result, error) {
	tasks := a.store.Tasks()
	if len(tasks) == 0 {
		return commands.Result{Message: deleteEmpty}, nil
	}
	return commands.Result{Message: fmt.Sprintf(deleteAsk, quoteJoin(tasks))}, nil
}

func quoteJoin(tasks []model.Task) string {
	parts := make([]string, 0, len(tasks))
	for _, t := range tasks {
		parts = append(parts, `"`+t.Text+`"`)
	}
	return strings.Join(parts, ", ")
}
