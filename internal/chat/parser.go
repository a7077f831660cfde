// Package chat implements the chat-style query interface: a constrained
// command parser, per-session append-only transcripts, and the reply
// flow that reuses the news search path.
package chat

import (
	"errors"
	"strings"
)

// queryPrefix is the only command the assistant understands.
const queryPrefix = "find news on "

// Parse failure modes, distinguished so callers can tell "wrong shape"
// from "right shape, nothing after the prefix".
var (
	ErrUnparseableQuery = errors.New("message does not match the expected command")
	ErrEmptyKeyword     = errors.New("no keyword after the command prefix")
)

// ParseQuery extracts the search phrase from a chat message. The match
// is a case-insensitive prefix check against "find news on "; the
// remainder, trimmed, is the keyword. Only leading whitespace is
// stripped before the match, so a bare "find news on" (with or without
// trailing spaces) still counts as the command with an empty keyword
// rather than an unknown message.
func ParseQuery(message string) (string, error) {
	trimmed := strings.TrimLeft(message, " \t\r\n")

	command := strings.TrimRight(queryPrefix, " ")
	if strings.EqualFold(strings.TrimSpace(trimmed), command) {
		return "", ErrEmptyKeyword
	}
	if len(trimmed) < len(queryPrefix) || !strings.EqualFold(trimmed[:len(queryPrefix)], queryPrefix) {
		return "", ErrUnparseableQuery
	}

	keyword := strings.TrimSpace(trimmed[len(queryPrefix):])
	if keyword == "" {
		return "", ErrEmptyKeyword
	}
	return keyword, nil
}
