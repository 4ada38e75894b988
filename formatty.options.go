package formatty

import (
	"reflect"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	cacheSize     int
	locale        language.Tag
	calendar      Calendar
	undefinedText string
	formatters    map[reflect.Type]FormatterFunc
	logger        *zap.Logger
	err           error
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		cacheSize:     DefaultCacheSize,
		locale:        language.English,
		calendar:      DefaultCalendar,
		undefinedText: DefaultUndefinedText,
		formatters:    make(map[reflect.Type]FormatterFunc),
		logger:        nil,
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithCacheSize bounds the number of compiled renderers kept by the engine.
// Use 0 for an unbounded cache.
// Default: 1024
func WithCacheSize(size int) Option {
	return func(c *engineConfig) {
		if size < 0 {
			c.err = NewCacheSizeError(size)
			return
		}
		c.cacheSize = size
	}
}

// WithLocale sets the language used for digit grouping by the `n` type.
// Default: English
func WithLocale(tag language.Tag) Option {
	return func(c *engineConfig) {
		c.locale = tag
	}
}

// WithLocaleName parses a BCP 47 tag such as "de-CH" and sets it as the locale.
func WithLocaleName(name string) Option {
	return func(c *engineConfig) {
		tag, err := language.Parse(name)
		if err != nil {
			c.err = NewLocaleError(name, err)
			return
		}
		c.locale = tag
	}
}

// WithCalendar replaces the day and month names used for time values.
func WithCalendar(cal Calendar) Option {
	return func(c *engineConfig) {
		c.calendar = cal
	}
}

// WithUndefinedText sets the text rendered for fields that resolve to no
// argument.
// Default: "undefined"
func WithUndefinedText(text string) Option {
	return func(c *engineConfig) {
		c.undefinedText = text
	}
}

// WithFormatter registers a formatter for values of type t at construction.
// See Engine.RegisterFormatter.
func WithFormatter(t reflect.Type, fn FormatterFunc) Option {
	return func(c *engineConfig) {
		if t == nil {
			c.err = NewNilFormatterError(ErrMsgNilFormatterType)
			return
		}
		if fn == nil {
			c.err = NewNilFormatterError(ErrMsgNilFormatter)
			return
		}
		c.formatters[t] = fn
	}
}
