package internal

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Lexer scans template text into a token sequence.
//
// The scanner is linear and single pass with one character of lookahead for
// brace doubling. Its only states are "in literal" and "in field"; the field
// state is handled entirely by extractField.
type Lexer struct {
	source string
	pos    int // Current byte position
	logger *zap.Logger
}

// NewLexer creates a new lexer for the given template source
func NewLexer(source string, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldSource, len(source)))
	return &Lexer{
		source: source,
		pos:    0,
		logger: logger,
	}
}

// Tokenize is a convenience function that creates a lexer and runs it
func Tokenize(source string, logger *zap.Logger) ([]Token, error) {
	return NewLexer(source, logger).Tokenize()
}

// Tokenize processes the source and returns the token sequence
func (l *Lexer) Tokenize() ([]Token, error) {
	l.logger.Debug(LogMsgTokenizerStart)
	var tokens []Token
	var literal strings.Builder

	for !l.isAtEnd() {
		ch := l.peek()
		switch ch {
		case CharOpenBrace:
			// Doubled opening brace is an escaped literal
			if l.peekNext() == CharOpenBrace {
				literal.WriteByte(CharOpenBrace)
				l.pos += 2
				continue
			}
			tok, err := l.scanField(literal.String())
			if err != nil {
				return nil, l.fail(err)
			}
			tokens = append(tokens, tok)
			literal.Reset()

		case CharCloseBrace:
			if l.peekNext() == CharCloseBrace {
				literal.WriteByte(CharCloseBrace)
				l.pos += 2
				continue
			}
			return nil, l.fail(NewSyntaxError(KindUnmatchedClosing, l.source, l.pos))

		default:
			literal.WriteByte(ch)
			l.pos++
		}
	}

	tokens = append(tokens, NewLiteralToken(literal.String()))
	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldTokens, len(tokens)))
	return tokens, nil
}

// scanField consumes one field starting at the current opening brace
func (l *Lexer) scanField(literal string) (Token, *SyntaxError) {
	start := l.pos
	ext, ok := extractField(l.source[start+1:])
	if !ok {
		return Token{}, NewSyntaxError(KindUnmatchedOpening, l.source, start)
	}
	l.pos = start + 1 + ext.Length

	if !ext.HasSpec {
		return NewFieldToken(literal, ext.Name, start), nil
	}
	return NewSpecFieldToken(literal, ext.Name, ext.Spec, start, start+1+ext.SpecStart), nil
}

// fieldExtract is the result of scanning the inside of a field
type fieldExtract struct {
	Length    int // bytes consumed including the closing brace
	Name      string
	Spec      string
	HasSpec   bool
	SpecStart int // offset of the spec within the scanned text
}

// extractField scans text that follows an unescaped opening brace up to the
// brace that closes it. The first separator seen at depth zero splits the field
// name from the spec; the spec may hold balanced inner fields, which are left
// unparsed here. ok is false when the text ends before the field is closed.
func extractField(remainder string) (fieldExtract, bool) {
	depth := 0
	sep := -1

	for i := 0; i < len(remainder); i++ {
		switch remainder[i] {
		case CharSpecSep:
			if sep < 0 && depth == 0 {
				sep = i
			}
		case CharOpenBrace:
			depth++
		case CharCloseBrace:
			depth--
			if depth >= 0 {
				continue
			}
			if sep < 0 {
				return fieldExtract{Length: i + 1, Name: remainder[:i]}, true
			}
			return fieldExtract{
				Length:    i + 1,
				Name:      remainder[:sep],
				Spec:      remainder[sep+1 : i],
				HasSpec:   true,
				SpecStart: sep + 1,
			}, true
		}
	}

	return fieldExtract{}, false
}

// fail logs a tokenization failure and passes the error through
func (l *Lexer) fail(err *SyntaxError) error {
	l.logger.Debug(LogMsgTokenizerError,
		zap.String(LogFieldKind, err.Kind),
		zap.Int(LogFieldIndex, err.Index),
	)
	return err
}

// isAtEnd returns true if we've reached the end of source
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// peek returns the current character without advancing
func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.pos]
}

// peekNext returns the character after the current one
func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.source) {
		return 0
	}
	return l.source[l.pos+1]
}

// SyntaxError reports a malformed template: an opening brace that is never
// closed, or a closing brace that is neither doubled nor closing a field.
type SyntaxError struct {
	Kind     string
	Template string
	Index    int // byte offset of the offending brace
	Position Position
}

// NewSyntaxError creates a syntax error for the brace at index
func NewSyntaxError(kind, template string, index int) *SyntaxError {
	return &SyntaxError{
		Kind:     kind,
		Template: template,
		Index:    index,
		Position: calculatePosition(template[:index]),
	}
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	return e.Message()
}

// Message renders the multi-line diagnostic with a caret under the brace.
func (e *SyntaxError) Message() string {
	phrase := ErrMsgUnmatchedClosing
	if e.Kind == KindUnmatchedOpening {
		phrase = ErrMsgUnmatchedOpening
	}

	caret := FormatText(CaretMarker, Spec{
		Fill:    CaretFill,
		HasFill: true,
		Align:   AlignRight,
		Width:   utf8.RuneCountInString(e.Template[:e.Index]) + 1,
	})

	var sb strings.Builder
	sb.WriteString(ErrMsgMalformedTemplate)
	sb.WriteByte('\n')
	sb.WriteString(e.Template)
	sb.WriteByte('\n')
	sb.WriteString(caret)
	sb.WriteByte('\n')
	sb.WriteString(phrase)
	return sb.String()
}

// Rebase moves an error found inside a nested spec onto the enclosing template.
func (e *SyntaxError) Rebase(template string, offset int) *SyntaxError {
	return NewSyntaxError(e.Kind, template, offset+e.Index)
}
