package corpus

import "strings"

// Fields splits a line on single space characters and discards empty tokens.
// Consecutive spaces therefore never produce spurious empty words. Tokens are
// kept verbatim: no lowercasing, no punctuation stripping, no stemming.
func Fields(line string) []string {
	if line == "" {
		return nil
	}
	parts := strings.Split(line, " ")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
