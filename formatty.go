// Package formatty renders brace templates with positional and named
// arguments and a per-type format spec mini-language.
//
// Fields are written in braces and replaced by arguments:
//
//	formatty.Format("{} and {}", "coffee", "cigarettes")
//	// "coffee and cigarettes"
//
// # Field Names
//
// An empty field takes the next argument. Digits select an argument by
// position, and an identifier looks a key up in the only argument when
// exactly one is given. Dotted segments walk into maps, structs and slices:
//
//	formatty.Format("{0} {1} {0}", "a", "b")                 // "a b a"
//	formatty.Format("{name}", map[string]any{"name": "Ada"}) // "Ada"
//	formatty.Format("{0.City}", addr)                        // addr.City
//
// A field that matches no argument renders as "undefined". Doubled braces
// are literal: "{{" gives "{" and "}}" gives "}".
//
// # Format Specs
//
// Text after the first colon of a field is the format spec:
//
//	[[fill]align][sign][#][0][width][.precision][type]
//
// Alignment is one of < > ^ =, sign one of + - or space, # asks for base
// prefixes and a leading 0 pads with zeros after the sign. Types are
// b c d o x X e E f F g G % n and s:
//
//	formatty.Format("{:^9}", "hello")     // "  hello  "
//	formatty.Format("{:#x}", 255)         // "0xff"
//	formatty.Format("{:+08.3f}", 3.14159) // "+003.142"
//
// A spec may contain fields of its own. They are resolved first, so
// "{:{}}" takes the spec from the first argument and the value from the
// second.
//
// # Custom Formatting
//
// A value that implements SpecFormatter receives the spec text and formats
// itself. Types you do not own can be registered on an Engine with
// RegisterType or Engine.RegisterFormatter. time.Time is handled by a
// built-in strftime style formatter:
//
//	formatty.Format("{:%Y-%m-%d}", time.Now())
//
// # Engines and Caching
//
// Compiled renderers are cached per template text in a bounded LRU cache.
// The package-level functions share a default Engine; create your own with
// New to choose the cache size, locale, logger and formatters.
package formatty

import (
	"fmt"
	"time"

	"github.com/itsatony/go-formatty/internal"
)

// Spec is a parsed format spec
type Spec = internal.Spec

// Token is one literal run followed by an optional field
type Token = internal.Token

// Calendar holds the day and month names used for time values
type Calendar = internal.Calendar

// DefaultCalendar uses English names
var DefaultCalendar = internal.DefaultCalendar

var defaultEngine = MustNew()

// Default returns the engine used by the package-level functions
func Default() *Engine {
	return defaultEngine
}

// Format renders template with variadic arguments using the default engine.
func Format(template string, args ...any) (string, error) {
	return defaultEngine.FormatArgs(template, args)
}

// FormatArgs renders template with an explicit argument list using the
// default engine.
func FormatArgs(template string, args []any) (string, error) {
	return defaultEngine.FormatArgs(template, args)
}

// MustFormat is like Format but panics on error
func MustFormat(template string, args ...any) string {
	out, err := defaultEngine.FormatArgs(template, args)
	if err != nil {
		panic(err)
	}
	return out
}

// Compile returns the default engine's renderer for template
func Compile(template string) (*Renderer, error) {
	return defaultEngine.Compile(template)
}

// Tokenize splits a template into its token sequence without compiling it.
func Tokenize(template string) ([]Token, error) {
	tokens, err := internal.Tokenize(template, nil)
	if err != nil {
		if serr, ok := err.(*internal.SyntaxError); ok {
			return nil, NewSyntaxError(serr)
		}
		return nil, err
	}
	return tokens, nil
}

// ParseSpec parses a format spec. It never fails; unmatched parts keep their
// defaults.
func ParseSpec(spec string) Spec {
	return internal.ParseSpec(spec)
}

// FormatText applies precision, width, fill and alignment to text.
func FormatText(value string, spec string) string {
	return internal.FormatText(value, internal.ParseSpec(spec))
}

// FormatNumber formats any Go integer or float under spec with the default
// engine's locale. It returns ErrUnknownPresentationType for a type the
// numeric formatter does not know; values that are not numbers are laid out
// as text.
func FormatNumber(value any, spec string) (string, error) {
	n, ok := internal.NumberOf(value)
	if !ok {
		return FormatText(fmt.Sprint(value), spec), nil
	}
	return defaultEngine.formatNumber("", n, internal.ParseSpec(spec))
}

// FormatTime renders t with strftime style directives such as %Y-%m-%d.
func FormatTime(t time.Time, spec string) string {
	return internal.FormatTime(t, spec, internal.DefaultCalendar)
}
