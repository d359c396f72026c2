package lexer

import "strconv"

type Lexer struct {
	input    string // input string to be tokenized
	length   int    // length of the input string
	position int    // current position in the input string
	line     int    // current line number for error reporting
	column   int    // current column number for error reporting
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:    s,
		length:   len(s),
		position: 0,
		line:     1,
		column:   1,
	}
}

// Get the next token from the input
func (l *Lexer) NextToken() Token {
	for {
		if l.position >= l.length {
			return NewToken(EOF, "", "", l.currentPosition())
		}

		// Regex match the first token it sees from the remaining input
		remaining := l.input[l.position:]
		tokenType, lexeme, matched := MatchToken(remaining)

		if tokenType == EOF && matched {
			// whitespace or comment
			l.advance(len(lexeme))
			continue
		}

		pos := l.currentPosition()

		if !matched {
			// only a malformed string gets here
			l.advance(len(remaining))
			return NewToken(ILLEGAL, remaining, "", pos)
		}

		var literal string
		switch tokenType {
		case STRING:
			unquoted, err := strconv.Unquote(lexeme)
			if err != nil {
				l.advance(len(lexeme))
				return NewToken(ILLEGAL, lexeme, "", pos)
			}
			literal = unquoted
		case NUM, TRUE, FALSE:
			literal = lexeme
		}

		l.advance(len(lexeme))
		return NewToken(tokenType, lexeme, literal, pos)
	}
}

// View next token without advancing the position
func (l *Lexer) Peek() Token {
	// save state
	cpos := l.position
	cline := l.line
	ccol := l.column

	token := l.NextToken()

	// restore state
	l.position = cpos
	l.line = cline
	l.column = ccol

	return token
}

// Tokens scans the remaining input, stopping after EOF or the first ILLEGAL token
func (l *Lexer) Tokens() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF || tok.Type == ILLEGAL {
			return tokens
		}
	}
}

// Check if there are more characters to read
func (l *Lexer) HasMore() bool {
	return l.position < l.length
}

// Advance the lexer position by n bytes
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.position >= l.length {
			break
		}

		if l.input[l.position] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}

		l.position++
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}
