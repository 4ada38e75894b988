package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameTokenize = "tokenize"
	CmdNameSpec     = "spec"
	CmdNameVersion  = "version"
)

// Flag names - long form
const (
	FlagConfig        = "config"
	FlagLocale        = "locale"
	FlagLogLevel      = "log-level"
	FlagCacheSize     = "cache-size"
	FlagUndefinedText = "undefined-text"
	FlagTemplateFile  = "template-file"
	FlagArgsFile      = "args-file"
	FlagOutput        = "output"
	FlagWatch         = "watch"
	FlagFormat        = "format"
)

// Flag names - short form
const (
	FlagTemplateFileShort = "t"
	FlagArgsFileShort     = "a"
	FlagOutputShort       = "o"
	FlagWatchShort        = "w"
	FlagFormatShort       = "F"
	FlagLogLevelShort     = "l"
)

// Flag default values
const (
	FlagDefaultOutput   = "-" // stdout
	FlagDefaultFormat   = OutputFormatText
	FlagDefaultLogLevel = "warn"
)

// Config keys, also read from FORMATTY_<KEY> environment variables
const (
	ConfigKeyLocale        = "locale"
	ConfigKeyCacheSize     = "cache_size"
	ConfigKeyLogLevel      = "log_level"
	ConfigKeyUndefinedText = "undefined_text"
)

// Config file lookup
const (
	ConfigEnvPrefix   = "FORMATTY"
	ConfigEnvFile     = "FORMATTY_CONFIG_FILE"
	ConfigFileName    = ".formatty"
	ConfigFileType    = "yaml"
	ConfigDefaultPath = "."
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Exit codes
const (
	ExitCodeSuccess     = 0
	ExitCodeError       = 1
	ExitCodeUsageError  = 2
	ExitCodeSyntaxError = 3
	ExitCodeInputError  = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgMissingTemplate    = "template source required"
	ErrMsgWatchNeedsFile     = "--watch requires a template file"
	ErrMsgReadFileFailed     = "failed to read file"
	ErrMsgReadStdinFailed    = "failed to read from stdin"
	ErrMsgWriteOutputFailed  = "failed to write output"
	ErrMsgInvalidArgsFile    = "invalid args file"
	ErrMsgCompileFailed      = "template compilation failed"
	ErrMsgRenderFailed       = "template rendering failed"
	ErrMsgInvalidFormat      = "invalid output format"
	ErrMsgInvalidConfig      = "invalid configuration"
	ErrMsgReadConfigFailed   = "failed to read config file"
	ErrMsgInvalidLogLevel    = "invalid log level"
	ErrMsgWatchFailed        = "failed to watch template file"
	ErrMsgEncodeOutputFailed = "failed to encode output"
)

// Log messages
const (
	LogMsgConfigLoaded  = "configuration loaded"
	LogMsgWatchStarted  = "watching template file"
	LogMsgWatchEvent    = "template file changed"
	LogMsgWatchError    = "file watcher error"
	LogMsgWatchRerender = "re-render failed"
	LogMsgWatchStopped  = "watch stopped"
	LogFieldConfigFile  = "config_file"
	LogFieldPath        = "path"
	LogFieldOp          = "op"
	LogFieldLocale      = "locale"
	LogFieldCacheSize   = "cache_size"
)

// Help text
const (
	CLIName  = "formatty"
	CLIShort = "Render brace templates with format specs"
	CLILong  = `formatty renders brace templates such as "{name:>10}" or "{:08.3f}"
with positional and named arguments.

Configuration is read from .formatty.yaml in the current directory, the file
named by --config or FORMATTY_CONFIG_FILE, and FORMATTY_* environment
variables (FORMATTY_LOCALE, FORMATTY_CACHE_SIZE, FORMATTY_LOG_LEVEL,
FORMATTY_UNDEFINED_TEXT). Flags take precedence.`

	HelpRenderShort = "Render a template with arguments"
	HelpRenderLong  = `Render a template with arguments.

The template is the first argument unless --template-file is given ("-" reads
it from stdin). Remaining arguments are YAML scalars: 42 is an integer, 2.5 a
float, true a boolean, 2024-03-05 a time value and anything else a string.
Quote a value to keep it a string.

--args-file reads arguments from a YAML or JSON file: a sequence gives the
positional arguments, a mapping gives one keyword argument for named fields.
File arguments come before command line arguments.`

	HelpRenderExample = `  formatty render "{} and {}" coffee cigarettes
  formatty render "{:>8.2f}|" 3.14159
  formatty render -t invoice.txt -a invoice.yaml -o invoice.out
  formatty render -t report.txt -a data.yaml --watch`

	HelpTokenizeShort = "Print the token sequence of a template as YAML"
	HelpSpecShort     = "Print a parsed format spec as YAML"
	HelpVersionShort  = "Show version information"
)

// Version output
const (
	VersionTextTemplate = "formatty version %s\nCommit: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionDevel        = "(devel)"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtNewline = "\n"
)
