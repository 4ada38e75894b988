package formatty

import (
	"errors"
	"strings"

	"github.com/itsatony/go-formatty/internal"
	"go.uber.org/zap"
)

// Renderer is a compiled template. It is immutable once built and safe for
// concurrent use; each call gets its own argument cursor.
type Renderer struct {
	source string
	tokens []internal.Token
	steps  []renderStep
	engine *Engine
}

// renderStep emits one literal and, unless it is the trailing step, one field
type renderStep struct {
	literal  string
	hasField bool
	field    string
	ref      fieldRef
	spec     string    // static spec text
	nested   *Renderer // set when the spec holds fields of its own
}

// Render formats the template with the given arguments
func (r *Renderer) Render(args ...any) (string, error) {
	return r.RenderArgs(args)
}

// RenderArgs formats the template with an explicit argument list. Either the
// complete text or an error is returned, never partial output.
func (r *Renderer) RenderArgs(args []any) (string, error) {
	out, err := r.render(newArgCursor(args))
	if err != nil {
		r.engine.logger.Debug(LogMsgRenderFailed,
			zap.String(LogFieldTemplate, r.source),
			zap.Error(err),
		)
		return "", err
	}
	return out, nil
}

// MustRender is like Render but panics on error
func (r *Renderer) MustRender(args ...any) string {
	out, err := r.RenderArgs(args)
	if err != nil {
		panic(err)
	}
	return out
}

// Source returns the template text the renderer was compiled from
func (r *Renderer) Source() string {
	return r.source
}

// Tokens returns a copy of the renderer's token sequence
func (r *Renderer) Tokens() []Token {
	out := make([]Token, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// FieldCount returns the number of top-level fields in the template
func (r *Renderer) FieldCount() int {
	return len(r.steps) - 1
}

// render walks the steps with a shared cursor. Fields inside a spec are
// resolved before the field that owns the spec.
func (r *Renderer) render(c *argCursor) (string, error) {
	var sb strings.Builder
	for i := range r.steps {
		step := &r.steps[i]
		sb.WriteString(step.literal)
		if !step.hasField {
			continue
		}

		spec := step.spec
		if step.nested != nil {
			var err error
			if spec, err = step.nested.render(c); err != nil {
				return "", err
			}
		}

		text, err := r.engine.formatValue(step.field, step.ref.resolve(c), spec)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// build tokenizes source and compiles its steps. Syntax errors found in a
// nested spec are reported against source.
func (e *Engine) build(source string) (*Renderer, *internal.SyntaxError) {
	tokens, err := internal.Tokenize(source, e.logger)
	if err != nil {
		var serr *internal.SyntaxError
		if errors.As(err, &serr) {
			return nil, serr
		}
		return nil, internal.NewSyntaxError(internal.KindUnmatchedOpening, source, 0)
	}

	steps := make([]renderStep, len(tokens))
	for i, tok := range tokens {
		steps[i] = renderStep{literal: tok.Literal, hasField: tok.HasField}
		if !tok.HasField {
			continue
		}
		steps[i].field = tok.Field
		steps[i].ref = parseFieldRef(tok.Field)
		steps[i].spec = tok.Spec

		if tok.HasSpec && strings.ContainsRune(tok.Spec, internal.CharOpenBrace) {
			nested, serr := e.build(tok.Spec)
			if serr != nil {
				return nil, serr.Rebase(source, tok.SpecOffset)
			}
			steps[i].nested = nested
		}
	}

	return &Renderer{
		source: source,
		tokens: tokens,
		steps:  steps,
		engine: e,
	}, nil
}
