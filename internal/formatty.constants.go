package internal

// Brace and separator characters
const (
	CharOpenBrace    = '{'
	CharCloseBrace   = '}'
	CharSpecSep      = ':'
	CharAttrSep      = '.'
	CharPercent      = '%'
	CharSpace        = ' '
	CharZero         = '0'
	CharAlternate    = '#'
	CharPrecisionSep = '.'
)

// Alignment characters
const (
	AlignLeft      byte = '<'
	AlignRight     byte = '>'
	AlignCenter    byte = '^'
	AlignAfterSign byte = '='
)

// Sign policy characters
const (
	SignAlways   byte = '+'
	SignNegative byte = '-'
	SignSpace    byte = ' '
)

// Presentation type characters
const (
	TypeNone         rune = 0
	TypeBinary       rune = 'b'
	TypeChar         rune = 'c'
	TypeDecimal      rune = 'd'
	TypeOctal        rune = 'o'
	TypeHex          rune = 'x'
	TypeHexUpper     rune = 'X'
	TypeExp          rune = 'e'
	TypeExpUpper     rune = 'E'
	TypeFixed        rune = 'f'
	TypeFixedUpper   rune = 'F'
	TypeGeneral      rune = 'g'
	TypeGeneralUpper rune = 'G'
	TypePercent      rune = '%'
	TypeNumber       rune = 'n'
	TypeString       rune = 's'
)

// presentationTypes lists every character accepted in the type slot of a spec.
const presentationTypes = "bcdoxXeEfFgG%ns"

// Base prefixes for the alternate form
const (
	PrefixBinary = "0b"
	PrefixOctal  = "0o"
	PrefixHex    = "0x"
)

// Numeric defaults
const (
	DefaultFixedPrecision    = 6
	PercentSignificantDigits = 7
	PercentMultiplier        = 100
	GeneralMinFixed          = 1e-6
	GeneralMaxFixed          = 1e21
)

// Canonical text for values that bypass the spec
const (
	TextPosInf = "+Inf"
	TextNegInf = "-Inf"
	TextNaN    = "NaN"
)

// Syntax error kinds
const (
	KindUnmatchedOpening = "unmatched_opening_brace"
	KindUnmatchedClosing = "unmatched_closing_brace"
)

// Syntax error message parts
const (
	ErrMsgMalformedTemplate = "Malformed format template:"
	ErrMsgUnmatchedOpening  = "Unmatched opening brace."
	ErrMsgUnmatchedClosing  = "Unmatched closing brace."
	ErrMsgUnknownType       = "Unrecognized format type"
	CaretMarker             = "^"
	CaretFill               = '-'
)

// Log message constants
const (
	LogMsgLexerCreated   = "lexer created"
	LogMsgTokenizerStart = "starting tokenization"
	LogMsgTokenizerEnd   = "tokenization complete"
	LogMsgTokenizerError = "tokenization failed"
)

// Log field names
const (
	LogFieldSource = "source_length"
	LogFieldTokens = "token_count"
	LogFieldIndex  = "index"
	LogFieldKind   = "kind"
)
