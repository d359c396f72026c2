package lexer

import (
	"regexp"
)

// Token regex patterns
var tokenRegexes = map[TokenType]*regexp.Regexp{
	TRUE:   regexp.MustCompile(`^true`),
	FALSE:  regexp.MustCompile(`^false`),
	NUM:    regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?`),
	STRING: regexp.MustCompile(`^"([^"\\\n]|\\.)*"`),
	WORD:   regexp.MustCompile(`^[^\s"]+`),
}

var (
	whitespaceRegex = regexp.MustCompile(`^\s+`)
	commentRegex    = regexp.MustCompile(`^//[^\n]*`)
)

// Token precedence order for matching; WORD catches everything else
var tokenPrecedenceOrder = []TokenType{
	STRING, TRUE, FALSE, NUM, WORD,
}

// MatchToken matches the token at the start of the string. Whitespace and
// comments come back as EOF with a non-empty lexeme so the caller can skip them.
// A literal must end at whitespace or end of input, otherwise the whole run is a WORD.
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	} else if match := commentRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		match := tokenRegexes[tokenType].FindString(s)
		if match == "" {
			continue
		}
		if tokenType != WORD && !endsWord(s, len(match)) {
			continue
		}
		return tokenType, match, true
	}

	return ILLEGAL, string(s[0]), false
}

// endsWord reports whether position n in s is a word boundary
func endsWord(s string, n int) bool {
	if n >= len(s) {
		return true
	}
	return isSpace(s[n])
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
