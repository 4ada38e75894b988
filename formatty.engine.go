package formatty

import (
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/itsatony/go-formatty/internal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Engine compiles and renders format templates. It owns a renderer cache, a
// set of named templates and the formatters registered for value types.
// An Engine is safe for concurrent use.
type Engine struct {
	cache         *RendererCache
	templates     map[string]*Renderer // Named templates
	tmplMu        sync.RWMutex         // Protects templates map
	formatters    map[reflect.Type]FormatterFunc
	fmtMu         sync.RWMutex // Protects formatters map
	locale        *internal.Locale
	calendar      Calendar
	undefinedText string
	logger        *zap.Logger
}

// New creates a new formatty Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}
	if config.err != nil {
		return nil, config.err
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		cache:         NewRendererCache(config.cacheSize, logger),
		templates:     make(map[string]*Renderer),
		formatters:    make(map[reflect.Type]FormatterFunc, len(config.formatters)+1),
		locale:        internal.NewLocale(config.locale),
		calendar:      config.calendar,
		undefinedText: config.undefinedText,
		logger:        logger,
	}

	e.formatters[reflect.TypeOf((*time.Time)(nil)).Elem()] = e.timeFormatter
	for t, fn := range config.formatters {
		e.formatters[t] = fn
	}

	logger.Debug(LogMsgEngineCreated,
		zap.Int(LogFieldCacheSize, config.cacheSize),
		zap.String(LogFieldLocale, config.locale.String()),
	)
	return e, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Compile returns the renderer for template, building and caching it on
// first use.
func (e *Engine) Compile(template string) (*Renderer, error) {
	return e.cache.GetOrBuild(template, func() (*Renderer, error) {
		return e.compile(template)
	})
}

// MustCompile is like Compile but panics on error
func (e *Engine) MustCompile(template string) *Renderer {
	r, err := e.Compile(template)
	if err != nil {
		panic(err)
	}
	return r
}

// compile builds a renderer without consulting the cache
func (e *Engine) compile(template string) (*Renderer, error) {
	e.logger.Debug(LogMsgCompileStart, zap.Int(LogFieldLength, len(template)))

	r, serr := e.build(template)
	if serr != nil {
		e.logger.Debug(LogMsgCompileFailed,
			zap.String(LogFieldTemplate, template),
			zap.String(LogFieldError, serr.Kind),
		)
		return nil, NewSyntaxError(serr)
	}

	e.logger.Debug(LogMsgCompileDone, zap.Int(LogFieldFields, r.FieldCount()))
	return r, nil
}

// Format renders template with variadic arguments.
func (e *Engine) Format(template string, args ...any) (string, error) {
	return e.FormatArgs(template, args)
}

// FormatArgs renders template with an explicit argument list.
func (e *Engine) FormatArgs(template string, args []any) (string, error) {
	r, err := e.Compile(template)
	if err != nil {
		return "", err
	}
	return r.RenderArgs(args)
}

// RegisterTemplate compiles source and stores it under name.
// Returns an error if the name is empty, already taken, or the source is
// malformed.
func (e *Engine) RegisterTemplate(name string, source string) error {
	if name == "" {
		return NewEmptyTemplateNameError()
	}

	e.tmplMu.Lock()
	defer e.tmplMu.Unlock()

	if _, exists := e.templates[name]; exists {
		return NewTemplateExistsError(name)
	}

	r, err := e.Compile(source)
	if err != nil {
		return err
	}

	e.templates[name] = r
	e.logger.Debug(LogMsgTemplateRegistered, zap.String(LogFieldName, name))
	return nil
}

// MustRegisterTemplate registers a template and panics on error.
func (e *Engine) MustRegisterTemplate(name string, source string) {
	if err := e.RegisterTemplate(name, source); err != nil {
		panic(err)
	}
}

// UnregisterTemplate removes a registered template by name.
// Returns true if the template existed and was removed, false otherwise.
func (e *Engine) UnregisterTemplate(name string) bool {
	e.tmplMu.Lock()
	defer e.tmplMu.Unlock()

	if _, exists := e.templates[name]; exists {
		delete(e.templates, name)
		e.logger.Debug(LogMsgTemplateRemoved, zap.String(LogFieldName, name))
		return true
	}
	return false
}

// GetTemplate retrieves a registered template by name.
func (e *Engine) GetTemplate(name string) (*Renderer, bool) {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	r, ok := e.templates[name]
	return r, ok
}

// HasTemplate checks if a template is registered with the given name.
func (e *Engine) HasTemplate(name string) bool {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	_, ok := e.templates[name]
	return ok
}

// ListTemplates returns all registered template names in sorted order.
func (e *Engine) ListTemplates() []string {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TemplateCount returns the number of registered templates.
func (e *Engine) TemplateCount() int {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	return len(e.templates)
}

// FormatTemplate renders a registered template by name.
func (e *Engine) FormatTemplate(name string, args ...any) (string, error) {
	r, ok := e.GetTemplate(name)
	if !ok {
		suggestions := internal.FindSimilarStrings(name, e.ListTemplates(), maxTemplateSuggestions)
		return "", NewTemplateNotFoundError(name, suggestions)
	}
	return r.RenderArgs(args)
}

// RegisterFormatter installs fn as the capability for values of type t,
// replacing any earlier registration (the built-in time.Time formatter
// included). It is consulted only for fields with a non-empty spec, after
// the value's own SpecFormatter.
func (e *Engine) RegisterFormatter(t reflect.Type, fn FormatterFunc) error {
	if t == nil {
		return NewNilFormatterError(ErrMsgNilFormatterType)
	}
	if fn == nil {
		return NewNilFormatterError(ErrMsgNilFormatter)
	}

	e.fmtMu.Lock()
	e.formatters[t] = fn
	e.fmtMu.Unlock()

	e.logger.Debug(LogMsgFormatterAdded, zap.String(LogFieldType, t.String()))
	return nil
}

// Cache returns the engine's renderer cache
func (e *Engine) Cache() *RendererCache {
	return e.cache
}

// CacheStats returns the renderer cache statistics
func (e *Engine) CacheStats() CacheStats {
	return e.cache.Stats()
}

// ClearCache drops every cached renderer. Registered templates are kept.
func (e *Engine) ClearCache() {
	e.cache.Clear()
}

// Locale returns the language used by the `n` presentation type
func (e *Engine) Locale() language.Tag {
	return e.locale.Tag()
}
