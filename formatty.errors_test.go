package formatty

import (
	"errors"
	"strings"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-formatty/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSyntaxError(t *testing.T) {
	t.Run("unmatched opening brace", func(t *testing.T) {
		err := NewSyntaxError(internal.NewSyntaxError(internal.KindUnmatchedOpening, "ab\n{c", 3))

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnmatchedOpeningBrace))
		assert.False(t, errors.Is(err, ErrUnmatchedClosingBrace))
		assert.True(t, IsSyntaxError(err))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		template, ok := customErr.GetMetadata(MetaKeyTemplate)
		assert.True(t, ok)
		assert.Equal(t, "ab\n{c", template)

		index, ok := customErr.GetMetadata(MetaKeyIndex)
		assert.True(t, ok)
		assert.Equal(t, "3", index)

		line, ok := customErr.GetMetadata(MetaKeyLine)
		assert.True(t, ok)
		assert.Equal(t, "2", line)

		column, ok := customErr.GetMetadata(MetaKeyColumn)
		assert.True(t, ok)
		assert.Equal(t, "1", column)
	})

	t.Run("unmatched closing brace", func(t *testing.T) {
		err := NewSyntaxError(internal.NewSyntaxError(internal.KindUnmatchedClosing, "x}", 1))

		assert.True(t, errors.Is(err, ErrUnmatchedClosingBrace))
		assert.Contains(t, err.Error(), "x}\n-^\nUnmatched closing brace.")
		assert.True(t, strings.HasSuffix(err.Error(), "Unmatched closing brace."), err.Error())
		assert.Equal(t, 1, strings.Count(err.Error(), "nmatched"))
		assert.True(t, cuserr.IsErrorCode(err, ErrCodeSyntax))

		index, ok := ErrorIndex(err)
		assert.True(t, ok)
		assert.Equal(t, 1, index)
	})
}

func TestNewUnknownTypeError(t *testing.T) {
	err := NewUnknownTypeError('q', "price")

	assert.True(t, errors.Is(err, ErrUnknownPresentationType))
	assert.False(t, IsSyntaxError(err))
	assert.Equal(t, ErrMsgUnknownType+": 'q'", err.Error())
	assert.True(t, cuserr.IsErrorCode(err, ErrCodeFormat))

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))

	typ, ok := customErr.GetMetadata(MetaKeyType)
	assert.True(t, ok)
	assert.Equal(t, "q", typ)

	field, ok := customErr.GetMetadata(MetaKeyField)
	assert.True(t, ok)
	assert.Equal(t, "price", field)

	_, ok = ErrorIndex(err)
	assert.False(t, ok)
}

func TestNewFormatterError(t *testing.T) {
	cause := errors.New("bad spec")
	err := NewFormatterError("0", ">5", 3.5, cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), ErrMsgFormatterFailed)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))

	valueType, ok := customErr.GetMetadata(MetaKeyValueType)
	assert.True(t, ok)
	assert.Equal(t, "float64", valueType)

	spec, ok := customErr.GetMetadata(MetaKeySpec)
	assert.True(t, ok)
	assert.Equal(t, ">5", spec)
}

func TestRegistryErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		meta    string
	}{
		{name: "empty name", err: NewEmptyTemplateNameError(), message: ErrMsgEmptyTemplateName},
		{name: "exists", err: NewTemplateExistsError("greeting"), message: ErrMsgTemplateExists, meta: "greeting"},
		{name: "not found", err: NewTemplateNotFoundError("farewell", nil), message: ErrMsgTemplateNotFound, meta: "farewell"},
		{name: "nil formatter", err: NewNilFormatterError(ErrMsgNilFormatter), message: ErrMsgNilFormatter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Contains(t, tt.err.Error(), tt.message)

			var customErr *cuserr.CustomError
			require.True(t, errors.As(tt.err, &customErr))

			if tt.meta != "" {
				name, ok := customErr.GetMetadata(MetaKeyTemplateName)
				assert.True(t, ok)
				assert.Equal(t, tt.meta, name)
			}
		})
	}
}

func TestNewTemplateNotFoundError_Suggestions(t *testing.T) {
	err := NewTemplateNotFoundError("greting", []string{"greeting", "greetings"})
	assert.Contains(t, err.Error(), ErrMsgTemplateNotFound+". Did you mean 'greeting' or 'greetings'?")

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	suggestions, ok := customErr.GetMetadata(MetaKeySuggestions)
	assert.True(t, ok)
	assert.Equal(t, "greeting,greetings", suggestions)

	customErr = nil
	require.True(t, errors.As(NewTemplateNotFoundError("x", nil), &customErr))
	_, ok = customErr.GetMetadata(MetaKeySuggestions)
	assert.False(t, ok)
}

func TestConfigErrors(t *testing.T) {
	err := NewCacheSizeError(-3)
	assert.Contains(t, err.Error(), ErrMsgInvalidCacheSize)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	size, ok := customErr.GetMetadata(MetaKeyCacheSize)
	assert.True(t, ok)
	assert.Equal(t, "-3", size)

	cause := errors.New("not a tag")
	err = NewLocaleError("??", cause)
	assert.True(t, errors.Is(err, cause))
}

func TestErrorIndex_NonCustomError(t *testing.T) {
	_, ok := ErrorIndex(errors.New("plain"))
	assert.False(t, ok)
	_, ok = ErrorIndex(nil)
	assert.False(t, ok)
}
