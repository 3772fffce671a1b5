package commands

import (
	"strings"
	"unicode"
)

// Add requests follow a small grammar:
//
//	add [:|,] [filler...] [task|todo] [:] <text>
//	add [:|,] <text>
//
// When the keyword is followed by nothing, the words between "add" and the
// keyword are the text ("add buy milk to my todo").

type token struct {
	text       string
	start, end int
}

var fillerWords = map[string]bool{
	"a": true, "an": true, "the": true, "new": true, "my": true, "to": true,
	"another": true, "this": true, "one": true, "please": true, "list": true,
}

// ExtractTaskText returns the task text of an add request with its original
// casing. ok is false when the request names no text.
func ExtractTaskText(raw string) (string, bool) {
	toks := tokenize(raw)
	addAt := -1
	for i, tk := range toks {
		n := hasWordPrefix(tk.text, "add")
		if n == 0 || (n < len(tk.text) && !isAddSeparator(tk.text[n])) {
			continue
		}
		addAt = i
		// "add:task" carries the keyword in the same token; split it off.
		if n+1 < len(tk.text) {
			head := token{text: tk.text[:n+1], start: tk.start, end: tk.start + n + 1}
			tail := token{text: tk.text[n+1:], start: tk.start + n + 1, end: tk.end}
			toks = append(toks[:i:i], append([]token{head, tail}, toks[i+1:]...)...)
		}
		break
	}
	if addAt < 0 {
		return "", false
	}

	for j := addAt + 1; j < len(toks); j++ {
		n := keywordLen(toks[j].text)
		if n == 0 {
			continue
		}
		if text := cleanText(raw[toks[j].start+n:]); !onlyFiller(text) {
			return text, true
		}
		text := joinTokens(raw, trimFiller(toks[addAt+1:j]))
		return text, text != ""
	}

	text := cleanText(raw[toks[addAt].start+len("add"):])
	return text, text != ""
}

func isAddSeparator(b byte) bool {
	return b == ':' || b == ','
}

func tokenize(s string) []token {
	var out []token
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, token{text: s[start:i], start: start, end: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, token{text: s[start:], start: start, end: len(s)})
	}
	return out
}

// hasWordPrefix returns len(word) when s starts with word, ignoring ASCII case.
func hasWordPrefix(s, word string) int {
	if len(s) < len(word) || !strings.EqualFold(s[:len(word)], word) {
		return 0
	}
	return len(word)
}

// keywordLen matches task, tasks, todo and todos, optionally followed by a
// colon, and returns the byte length of the keyword itself.
func keywordLen(s string) int {
	for _, kw := range []string{"tasks", "todos", "task", "todo"} {
		n := hasWordPrefix(s, kw)
		if n == 0 {
			continue
		}
		if n == len(s) || s[n] == ':' {
			return n
		}
	}
	return 0
}

func trimFiller(toks []token) []token {
	for len(toks) > 0 && fillerWords[strings.ToLower(toks[0].text)] {
		toks = toks[1:]
	}
	for len(toks) > 0 && fillerWords[strings.ToLower(toks[len(toks)-1].text)] {
		toks = toks[:len(toks)-1]
	}
	return toks
}

func onlyFiller(s string) bool {
	for _, w := range strings.Fields(s) {
		if !fillerWords[strings.ToLower(w)] {
			return false
		}
	}
	return true
}

func joinTokens(raw string, toks []token) string {
	if len(toks) == 0 {
		return ""
	}
	return cleanText(raw[toks[0].start:toks[len(toks)-1].end])
}

func cleanText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, ":,")
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
