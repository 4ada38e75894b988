package formatty

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type point struct {
	X, Y int
}

func TestNew_Options(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		engine, err := New()
		require.NoError(t, err)
		assert.Equal(t, language.English, engine.Locale())
		assert.Equal(t, "undefined", engine.MustCompile("{}").MustRender())
	})

	t.Run("negative cache size", func(t *testing.T) {
		engine, err := New(WithCacheSize(-1))
		require.Error(t, err)
		assert.Nil(t, engine)
		assert.Contains(t, err.Error(), ErrMsgInvalidCacheSize)
	})

	t.Run("locale by tag", func(t *testing.T) {
		engine := MustNew(WithLocale(language.German))
		out, err := engine.Format("{:n}", 1234567)
		require.NoError(t, err)
		assert.Equal(t, "1.234.567", out)
	})

	t.Run("locale by name", func(t *testing.T) {
		engine := MustNew(WithLocaleName("de"))
		assert.Equal(t, language.German, engine.Locale())
	})

	t.Run("malformed locale name", func(t *testing.T) {
		_, err := New(WithLocaleName("not a locale!"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnsupportedLocale)
	})

	t.Run("undefined text", func(t *testing.T) {
		engine := MustNew(WithUndefinedText("?"))
		out, err := engine.Format("{} {} {:>3}", "a")
		require.NoError(t, err)
		assert.Equal(t, "a ?   ?", out)
	})

	t.Run("calendar", func(t *testing.T) {
		cal := DefaultCalendar
		cal.Months[2] = "Mars"
		engine := MustNew(WithCalendar(cal))
		ts := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "Mars", engine.MustCompile("{:%B}").MustRender(ts))
		assert.Equal(t, "March", DefaultCalendar.Months[2])
	})

	t.Run("formatter option", func(t *testing.T) {
		engine := MustNew(WithFormatter(reflect.TypeOf((*point)(nil)).Elem(), func(v any, spec string) (string, error) {
			p := v.(point)
			return fmt.Sprintf("<%d|%d|%s>", p.X, p.Y, spec), nil
		}))
		assert.Equal(t, "<1|2|x>", engine.MustCompile("{:x}").MustRender(point{1, 2}))
	})

	t.Run("nil formatter option", func(t *testing.T) {
		_, err := New(WithFormatter(reflect.TypeOf((*point)(nil)).Elem(), nil))
		require.Error(t, err)
		_, err = New(WithFormatter(nil, func(any, string) (string, error) { return "", nil }))
		require.Error(t, err)
	})

	t.Run("must new panics on bad options", func(t *testing.T) {
		assert.Panics(t, func() { MustNew(WithCacheSize(-5)) })
	})
}

func TestEngine_Templates(t *testing.T) {
	engine := MustNew()

	require.NoError(t, engine.RegisterTemplate("greeting", "Hello, {name}!"))
	require.NoError(t, engine.RegisterTemplate("row", "{:<6}|{:>6.2f}"))

	t.Run("format by name", func(t *testing.T) {
		out, err := engine.FormatTemplate("greeting", map[string]any{"name": "Ada"})
		require.NoError(t, err)
		assert.Equal(t, "Hello, Ada!", out)

		out, err = engine.FormatTemplate("row", "tea", 2.5)
		require.NoError(t, err)
		assert.Equal(t, "tea   |  2.50", out)
	})

	t.Run("lookup", func(t *testing.T) {
		assert.True(t, engine.HasTemplate("greeting"))
		assert.False(t, engine.HasTemplate("farewell"))

		r, ok := engine.GetTemplate("row")
		require.True(t, ok)
		assert.Equal(t, "{:<6}|{:>6.2f}", r.Source())
		assert.Equal(t, 2, r.FieldCount())

		assert.Equal(t, []string{"greeting", "row"}, engine.ListTemplates())
		assert.Equal(t, 2, engine.TemplateCount())
	})

	t.Run("registration errors", func(t *testing.T) {
		err := engine.RegisterTemplate("", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgEmptyTemplateName)

		err = engine.RegisterTemplate("greeting", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgTemplateExists)

		err = engine.RegisterTemplate("bad", "{oops")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnmatchedOpeningBrace))
		assert.False(t, engine.HasTemplate("bad"))

		assert.Panics(t, func() { engine.MustRegisterTemplate("greeting", "again") })
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := engine.FormatTemplate("farewell")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgTemplateNotFound)
		assert.NotContains(t, err.Error(), "Did you mean")

		_, err = engine.FormatTemplate("Greting")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Did you mean 'greeting'?")
	})

	t.Run("unregister", func(t *testing.T) {
		assert.True(t, engine.UnregisterTemplate("row"))
		assert.False(t, engine.UnregisterTemplate("row"))
		assert.Equal(t, []string{"greeting"}, engine.ListTemplates())
	})

	t.Run("templates survive a cache clear", func(t *testing.T) {
		engine.ClearCache()
		out, err := engine.FormatTemplate("greeting", map[string]any{"name": "Bo"})
		require.NoError(t, err)
		assert.Equal(t, "Hello, Bo!", out)
	})
}

func TestEngine_RegisterFormatter(t *testing.T) {
	engine := MustNew()

	t.Run("typed registration", func(t *testing.T) {
		err := RegisterType(engine, func(p point, spec string) (string, error) {
			text := fmt.Sprintf("(%d, %d)", p.X, p.Y)
			if spec == "x" {
				text = strings.ReplaceAll(text, ", ", "x")
			}
			return text, nil
		})
		require.NoError(t, err)

		out, err := engine.Format("{:x} {:-}", point{3, 4}, point{5, 6})
		require.NoError(t, err)
		assert.Equal(t, "(3x4) (5, 6)", out)
	})

	t.Run("empty spec falls back to text", func(t *testing.T) {
		out, err := engine.Format("{}", point{1, 2})
		require.NoError(t, err)
		assert.Equal(t, "{1 2}", out)
	})

	t.Run("replacing the time formatter", func(t *testing.T) {
		err := engine.RegisterFormatter(reflect.TypeOf((*time.Time)(nil)).Elem(), func(v any, spec string) (string, error) {
			return v.(time.Time).Format(spec), nil
		})
		require.NoError(t, err)

		ts := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
		out, err := engine.Format("{:2006/01/02}", ts)
		require.NoError(t, err)
		assert.Equal(t, "2024/03/05", out)
	})

	t.Run("formatter errors carry the field", func(t *testing.T) {
		cause := errors.New("no")
		require.NoError(t, engine.RegisterFormatter(reflect.TypeOf((*[]int)(nil)).Elem(), func(any, string) (string, error) {
			return "", cause
		}))

		_, err := engine.Format("{0:x}", []int{1})
		require.Error(t, err)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("nil registrations", func(t *testing.T) {
		assert.Error(t, engine.RegisterFormatter(nil, func(any, string) (string, error) { return "", nil }))
		assert.Error(t, engine.RegisterFormatter(reflect.TypeOf((*point)(nil)).Elem(), nil))
		assert.Error(t, RegisterType[point](engine, nil))
	})
}

func TestEngine_DefaultEngine(t *testing.T) {
	assert.Same(t, defaultEngine, Default())

	r, err := Compile("{}!")
	require.NoError(t, err)
	assert.Equal(t, "hi!", r.MustRender("hi"))
	assert.Equal(t, []Token{
		{Literal: "", Field: "", HasField: true, Offset: 0},
		{Literal: "!"},
	}, r.Tokens())
}
