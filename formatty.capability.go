package formatty

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/itsatony/go-formatty/internal"
)

// SpecFormatter is implemented by values that interpret a format spec
// themselves. FormatSpec receives the spec text exactly as written in the
// template, after any nested fields inside it have been substituted.
type SpecFormatter interface {
	FormatSpec(spec string) (string, error)
}

// FormatterFunc formats a value of a registered type under a spec. It is the
// capability for types the caller cannot add methods to.
type FormatterFunc func(value any, spec string) (string, error)

// undefinedValue is the type of the Undefined sentinel
type undefinedValue struct{}

// String implements fmt.Stringer
func (undefinedValue) String() string {
	return DefaultUndefinedText
}

// Undefined is the value a field resolves to when no argument matches it.
// Engines render it as their undefined text ("undefined" by default).
var Undefined any = undefinedValue{}

// RegisterType registers a typed formatter for values of type T.
//
//	formatty.RegisterType(engine, func(p Point, spec string) (string, error) {
//	    return fmt.Sprintf("(%d, %d)", p.X, p.Y), nil
//	})
func RegisterType[T any](e *Engine, fn func(value T, spec string) (string, error)) error {
	if fn == nil {
		return NewNilFormatterError(ErrMsgNilFormatter)
	}
	return e.RegisterFormatter(reflect.TypeOf((*T)(nil)).Elem(), func(value any, spec string) (string, error) {
		return fn(value.(T), spec)
	})
}

// formatValue turns one resolved field into text.
//
// Dispatch order: the undefined and nil placeholders, then (for a non-empty
// spec) the value's own SpecFormatter and the registered type formatters,
// then the predeclared numeric types, fmt.Stringer and error values, named
// numeric kinds, and finally fmt.Sprint. Everything that is not a number is
// laid out with the text rules.
func (e *Engine) formatValue(field string, value any, spec string) (string, error) {
	switch value.(type) {
	case undefinedValue:
		return internal.FormatText(e.undefinedText, internal.ParseSpec(spec)), nil
	case nil:
		return internal.FormatText(NilText, internal.ParseSpec(spec)), nil
	}

	if spec != "" {
		if f, ok := value.(SpecFormatter); ok {
			text, err := f.FormatSpec(spec)
			if err != nil {
				return "", NewFormatterError(field, spec, value, err)
			}
			return text, nil
		}
		if fn := e.formatterFor(reflect.TypeOf(value)); fn != nil {
			text, err := fn(value, spec)
			if err != nil {
				return "", NewFormatterError(field, spec, value, err)
			}
			return text, nil
		}
	}

	parsed := internal.ParseSpec(spec)
	if n, ok := internal.BasicNumberOf(value); ok {
		return e.formatNumber(field, n, parsed)
	}

	switch v := value.(type) {
	case string:
		return internal.FormatText(v, parsed), nil
	case fmt.Stringer:
		return internal.FormatText(v.String(), parsed), nil
	case error:
		return internal.FormatText(v.Error(), parsed), nil
	}

	if n, ok := internal.NumberOf(value); ok {
		return e.formatNumber(field, n, parsed)
	}
	return internal.FormatText(fmt.Sprint(value), parsed), nil
}

func (e *Engine) formatNumber(field string, n internal.Number, spec internal.Spec) (string, error) {
	text, err := internal.FormatNumber(n, spec, e.locale)
	if err != nil {
		var typeErr *internal.PresentationTypeError
		if errors.As(err, &typeErr) {
			return "", NewUnknownTypeError(typeErr.Type, field)
		}
		return "", err
	}
	return text, nil
}

// formatterFor returns the registered formatter for t, or nil
func (e *Engine) formatterFor(t reflect.Type) FormatterFunc {
	e.fmtMu.RLock()
	defer e.fmtMu.RUnlock()
	return e.formatters[t]
}

// timeFormatter is the built-in capability for time.Time values
func (e *Engine) timeFormatter(value any, spec string) (string, error) {
	return internal.FormatTime(value.(time.Time), spec, e.calendar), nil
}
