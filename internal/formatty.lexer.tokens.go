package internal

import "fmt"

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token is one literal run followed by an optional field.
//
// A token sequence produced by the lexer always ends with exactly one token
// whose HasField is false (the trailing literal, possibly empty). Every other
// token carries a field.
type Token struct {
	Literal    string `yaml:"literal"`
	Field      string `yaml:"field,omitempty"`
	Spec       string `yaml:"spec,omitempty"`
	HasField   bool   `yaml:"has_field"`
	HasSpec    bool   `yaml:"has_spec"`
	Offset     int    `yaml:"offset"`      // index of the field's opening brace
	SpecOffset int    `yaml:"spec_offset"` // index of the first spec character
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	if !t.HasField {
		return fmt.Sprintf("Token{%q}", t.Literal)
	}
	if t.HasSpec {
		return fmt.Sprintf("Token{%q, field=%q, spec=%q @ %d}", t.Literal, t.Field, t.Spec, t.Offset)
	}
	return fmt.Sprintf("Token{%q, field=%q @ %d}", t.Literal, t.Field, t.Offset)
}

// IsTrailing returns true for the final literal-only token
func (t Token) IsTrailing() bool {
	return !t.HasField
}

// NewLiteralToken creates a trailing literal token
func NewLiteralToken(literal string) Token {
	return Token{Literal: literal}
}

// NewFieldToken creates a token carrying a field without a spec
func NewFieldToken(literal, field string, offset int) Token {
	return Token{Literal: literal, Field: field, HasField: true, Offset: offset}
}

// NewSpecFieldToken creates a token carrying a field and its spec
func NewSpecFieldToken(literal, field, spec string, offset, specOffset int) Token {
	return Token{
		Literal:    literal,
		Field:      field,
		Spec:       spec,
		HasField:   true,
		HasSpec:    true,
		Offset:     offset,
		SpecOffset: specOffset,
	}
}

// calculatePosition calculates the Position (line, column, offset) for a given prefix string.
func calculatePosition(prefix string) Position {
	pos := Position{
		Offset: len(prefix),
		Line:   1,
		Column: 1,
	}

	for i := 0; i < len(prefix); i++ {
		if prefix[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	return pos
}
