package formatty

// Default configuration values
const (
	DefaultCacheSize     = 1024
	DefaultUndefinedText = "undefined"
	NilText              = "<nil>"
)

// maxTemplateSuggestions caps the "did you mean" names in a not-found error
const maxTemplateSuggestions = 3

// Error message constants - every message is a constant
const (
	ErrMsgUnmatchedOpening  = "unmatched opening brace"
	ErrMsgUnmatchedClosing  = "unmatched closing brace"
	ErrMsgUnknownType       = "unrecognized presentation type"
	ErrMsgFormatterFailed   = "value formatter failed"
	ErrMsgEmptyTemplateName = "template name cannot be empty"
	ErrMsgTemplateExists    = "template already registered"
	ErrMsgTemplateNotFound  = "template not found"
	ErrMsgNilFormatter      = "formatter cannot be nil"
	ErrMsgNilFormatterType  = "formatter type cannot be nil"
	ErrMsgInvalidCacheSize  = "cache size cannot be negative"
	ErrMsgUnsupportedLocale = "unsupported locale"
)

// Error code constants for categorization
const (
	ErrCodeSyntax   = "FORMATTY_SYNTAX"
	ErrCodeFormat   = "FORMATTY_FORMAT"
	ErrCodeRegistry = "FORMATTY_REGISTRY"
	ErrCodeConfig   = "FORMATTY_CONFIG"
)

// Error metadata keys
const (
	MetaKeyTemplate     = "template"
	MetaKeyTemplateName = "template_name"
	MetaKeyIndex        = "index"
	MetaKeyLine         = "line"
	MetaKeyColumn       = "column"
	MetaKeyType         = "type"
	MetaKeyField        = "field"
	MetaKeySpec         = "spec"
	MetaKeyValueType    = "value_type"
	MetaKeyCacheSize    = "cache_size"
	MetaKeyLocale       = "locale"
	MetaKeySuggestions  = "suggestions"
)

// Log message constants
const (
	LogMsgEngineCreated      = "formatty engine created"
	LogMsgCompileStart       = "compiling template"
	LogMsgCompileDone        = "template compiled"
	LogMsgCompileFailed      = "template compilation failed"
	LogMsgCacheHit           = "renderer cache hit"
	LogMsgCacheMiss          = "renderer cache miss"
	LogMsgCacheEvict         = "renderer evicted"
	LogMsgCacheCleared       = "renderer cache cleared"
	LogMsgTemplateRegistered = "template registered"
	LogMsgTemplateRemoved    = "template unregistered"
	LogMsgFormatterAdded     = "type formatter registered"
	LogMsgRenderFailed       = "render failed"
)

// Log field names
const (
	LogFieldTemplate  = "template"
	LogFieldLength    = "template_length"
	LogFieldName      = "name"
	LogFieldFields    = "field_count"
	LogFieldCacheSize = "cache_size"
	LogFieldEntries   = "entries"
	LogFieldType      = "type"
	LogFieldLocale    = "locale"
	LogFieldError     = "error"
)

// Field reference syntax
const (
	attrSeparator = "."
)
