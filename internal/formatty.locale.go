package internal

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale renders numbers with language-specific digit grouping for the `n`
// presentation type.
type Locale struct {
	tag     language.Tag
	printer *message.Printer
}

// DefaultLocale groups digits the English way
var DefaultLocale = NewLocale(language.English)

// NewLocale creates a locale for the given language tag
func NewLocale(tag language.Tag) *Locale {
	return &Locale{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// Tag returns the locale's language tag
func (l *Locale) Tag() language.Tag {
	return l.tag
}

// FormatDecimal renders the magnitude of n with grouping separators. The sign
// is left to the caller. A precision caps the fraction digits.
func (l *Locale) FormatDecimal(n Number, precision int, hasPrecision bool) string {
	if n.IsInt {
		return l.printer.Sprintf("%v", number.Decimal(n.Mag))
	}

	var opts []number.Option
	if hasPrecision {
		opts = append(opts, number.MaxFractionDigits(precision))
	}
	return l.printer.Sprintf("%v", number.Decimal(n.Abs(), opts...))
}
