// Package conversation holds the text protocol of the chat assessment:
// command recognition, answer parsing and message rendering. It has no I/O.
package conversation

import (
	"strings"
	"unicode"
)

type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandReady
	CommandReset
)

// Normalize lower-cases and trims text, then drops one leading "/" and one
// layer of surrounding [] or (). "[RESET]", "(reset)", "/reset" and
// " Reset " all normalize to "reset".
func Normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.TrimPrefix(s, "/")
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '[' && last == ']') || (first == '(' && last == ')') {
			s = s[1 : len(s)-1]
		}
	}
	return strings.TrimSpace(s)
}

func ParseCommand(text string) Command {
	switch Normalize(text) {
	case "reset":
		return CommandReset
	case "hi", "hello", "start":
		return CommandStart
	case "ready":
		return CommandReady
	default:
		return CommandNone
	}
}

// ParseChoice returns the upper-cased option label (A-E) carried by the first
// non-space character of text, or false. "b) something" answers B.
func ParseChoice(text string) (string, bool) {
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		r = unicode.ToUpper(r)
		if r >= 'A' && r <= 'E' {
			return string(r), true
		}
		return "", false
	}
	return "", false
}
