package formatty

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-formatty/internal"
)

// Sentinel errors for pattern matching with errors.Is
var (
	ErrUnmatchedOpeningBrace   = errors.New(ErrMsgUnmatchedOpening)
	ErrUnmatchedClosingBrace   = errors.New(ErrMsgUnmatchedClosing)
	ErrUnknownPresentationType = errors.New(ErrMsgUnknownType)
)

// NewSyntaxError converts a tokenizer failure into a caller-facing error.
// The message is the multi-line diagnostic with a caret under the brace; the
// kind is matched with errors.Is against ErrUnmatchedOpeningBrace or
// ErrUnmatchedClosingBrace.
func NewSyntaxError(serr *internal.SyntaxError) error {
	sentinel := ErrUnmatchedClosingBrace
	if serr.Kind == internal.KindUnmatchedOpening {
		sentinel = ErrUnmatchedOpeningBrace
	}
	return newKindError(sentinel, ErrCodeSyntax, serr.Message()).
		WithMetadata(MetaKeyTemplate, serr.Template).
		WithMetadata(MetaKeyIndex, strconv.Itoa(serr.Index)).
		WithMetadata(MetaKeyLine, strconv.Itoa(serr.Position.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(serr.Position.Column))
}

// NewUnknownTypeError creates an error for a presentation type the numeric
// formatter does not understand.
func NewUnknownTypeError(typ rune, field string) error {
	msg := fmt.Sprintf("%s: %q", ErrMsgUnknownType, typ)
	return newKindError(ErrUnknownPresentationType, ErrCodeFormat, msg).
		WithMetadata(MetaKeyType, string(typ)).
		WithMetadata(MetaKeyField, field)
}

// newKindError matches sentinel with errors.Is while Error() is exactly msg
func newKindError(sentinel error, code, msg string) *cuserr.CustomError {
	err := cuserr.NewCustomError(sentinel, nil, msg)
	err.Code = code
	return err
}

// NewFormatterError wraps a failure returned by a value's own formatter
func NewFormatterError(field, spec string, value any, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeFormat, ErrMsgFormatterFailed).
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeySpec, spec).
		WithMetadata(MetaKeyValueType, fmt.Sprintf("%T", value))
}

// NewEmptyTemplateNameError creates an error for an empty template name
func NewEmptyTemplateNameError() error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgEmptyTemplateName)
}

// NewTemplateExistsError creates an error for a duplicate template name
func NewTemplateExistsError(name string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgTemplateExists).
		WithMetadata(MetaKeyTemplateName, name)
}

// NewTemplateNotFoundError creates an error for an unknown template name.
// Similar registered names are appended to the message as suggestions.
func NewTemplateNotFoundError(name string, suggestions []string) error {
	err := cuserr.NewNotFoundError(MetaKeyTemplateName, ErrMsgTemplateNotFound+internal.FormatSuggestions(suggestions)).
		WithMetadata(MetaKeyTemplateName, name)
	if len(suggestions) > 0 {
		err = err.WithMetadata(MetaKeySuggestions, strings.Join(suggestions, ","))
	}
	return err
}

// NewNilFormatterError creates an error for a formatter registration without
// a function or without a target type.
func NewNilFormatterError(msg string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, msg)
}

// NewCacheSizeError creates an error for a negative cache size
func NewCacheSizeError(size int) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidCacheSize).
		WithMetadata(MetaKeyCacheSize, strconv.Itoa(size))
}

// NewLocaleError wraps a locale tag that failed to parse
func NewLocaleError(name string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgUnsupportedLocale).
		WithMetadata(MetaKeyLocale, name)
}

// IsSyntaxError reports whether err is a malformed template error of either kind
func IsSyntaxError(err error) bool {
	return errors.Is(err, ErrUnmatchedOpeningBrace) || errors.Is(err, ErrUnmatchedClosingBrace)
}

// ErrorIndex returns the byte index of the offending brace carried by a
// syntax error.
func ErrorIndex(err error) (int, bool) {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return 0, false
	}
	raw, ok := customErr.GetMetadata(MetaKeyIndex)
	if !ok {
		return 0, false
	}
	index, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, false
	}
	return index, true
}
