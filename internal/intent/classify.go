// Package intent maps a raw chat message to one handler category using
// ordered keyword substring tests. The first matching rule wins.
package intent

import "strings"

type Category string

const (
	CategoryTodo      Category = "todo"
	CategoryOrganize  Category = "organize"
	CategoryMotivate  Category = "motivate"
	CategoryBreakdown Category = "breakdown"
	CategoryTime      Category = "time"
	CategoryProgress  Category = "progress"
	CategoryGreeting  Category = "greeting"
	CategoryHelp      Category = "help"
	CategoryFallback  Category = "fallback"
)

type Rule struct {
	Category Category
	Keywords []string
}

// Order matters. "done" is a progress keyword; a message reaches the
// complete sub-command only when it also carries a todo keyword.
var rules = []Rule{
	{CategoryTodo, []string{"todo", "task", "add", "delete", "complete", "list", "show", "remove"}},
	{CategoryOrganize, []string{"organize", "plan", "schedule"}},
	{CategoryMotivate, []string{"motivat", "productiv", "focus"}},
	{CategoryBreakdown, []string{"break down", "complex", "overwhelm"}},
	{CategoryTime, []string{"time", "deadline", "priority"}},
	{CategoryProgress, []string{"progress", "status", "done"}},
	{CategoryGreeting, []string{"hello", "hi", "hey"}},
	{CategoryHelp, []string{"help", "what can", "how"}},
}

func Classify(message string) Category {
	lower := strings.ToLower(message)
	for _, r := range rules {
		if ContainsAny(lower, r.Keywords...) {
			return r.Category
		}
	}
	return CategoryFallback
}

// Rules returns a copy of the rule table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Category: r.Category, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// ContainsAny reports whether s contains any of the substrings. Callers
// lower-case s first.
func ContainsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
