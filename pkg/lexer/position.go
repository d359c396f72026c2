package lexer

import "fmt"

// Position locates a token in the source. Offset is in bytes.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Returns the position as line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
