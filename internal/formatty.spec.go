package internal

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxSpecNumber caps width and precision values read from a spec.
const MaxSpecNumber = 1 << 16

// Spec is a parsed format spec:
//
//	[[fill]align][sign][#][0][width][.precision][type]
//
// Groups absent from the input keep their zero values, which stand for the
// documented defaults: space fill, no explicit alignment, negative-only sign,
// no minimum width, no precision and no presentation type.
type Spec struct {
	Fill         rune
	HasFill      bool
	Align        byte
	Sign         byte
	Alternate    bool
	ZeroPad      bool
	Width        int
	Precision    int
	HasPrecision bool
	Type         rune
}

// ParseSpec matches the spec grammar greedily from the left. It never fails:
// whatever does not match a group is left at its default. The character after
// the last matched group is the presentation type, whether known or not, and
// anything after it is ignored.
func ParseSpec(spec string) Spec {
	var s Spec
	i := 0

	// [[fill]align]
	if r0, n0 := utf8.DecodeRuneInString(spec); n0 > 0 {
		if n0 < len(spec) && isAlign(spec[n0]) {
			s.Fill, s.HasFill = r0, true
			s.Align = spec[n0]
			i = n0 + 1
		} else if isAlign(spec[0]) {
			s.Align = spec[0]
			i = 1
		}
	}

	// [sign]
	if i < len(spec) && isSign(spec[i]) {
		s.Sign = spec[i]
		i++
	}

	// [#]
	if i < len(spec) && spec[i] == CharAlternate {
		s.Alternate = true
		i++
	}

	// [0]
	if i < len(spec) && spec[i] == CharZero {
		s.ZeroPad = true
		i++
	}

	// [width]
	if n, w := scanDigits(spec[i:]); n > 0 {
		s.Width = w
		i += n
	}

	// [.precision] only when at least one digit follows the dot
	if i < len(spec) && spec[i] == CharPrecisionSep {
		if n, p := scanDigits(spec[i+1:]); n > 0 {
			s.Precision, s.HasPrecision = p, true
			i += n + 1
		}
	}

	// [type] is taken as written; numeric formatting rejects unknown types
	if r, n := utf8.DecodeRuneInString(spec[i:]); n > 0 {
		s.Type = r
	}

	return s
}

// FillRune returns the fill character, defaulting to a space
func (s Spec) FillRune() rune {
	if s.HasFill {
		return s.Fill
	}
	return CharSpace
}

// SignPolicy returns the sign policy, defaulting to negative-only
func (s Spec) SignPolicy() byte {
	if s.Sign == 0 {
		return SignNegative
	}
	return s.Sign
}

// String rebuilds the canonical spec text
func (s Spec) String() string {
	var sb strings.Builder
	if s.HasFill {
		sb.WriteRune(s.Fill)
	}
	if s.Align != 0 {
		sb.WriteByte(s.Align)
	}
	if s.Sign != 0 {
		sb.WriteByte(s.Sign)
	}
	if s.Alternate {
		sb.WriteByte(CharAlternate)
	}
	if s.ZeroPad {
		sb.WriteByte(CharZero)
	}
	if s.Width > 0 {
		sb.WriteString(strconv.Itoa(s.Width))
	}
	if s.HasPrecision {
		sb.WriteByte(CharPrecisionSep)
		sb.WriteString(strconv.Itoa(s.Precision))
	}
	if s.Type != TypeNone {
		sb.WriteRune(s.Type)
	}
	return sb.String()
}

// KnownType reports whether t is a presentation type understood by the
// numeric formatter (TypeNone included).
func KnownType(t rune) bool {
	return t == TypeNone || strings.ContainsRune(presentationTypes, t)
}

func isAlign(ch byte) bool {
	return ch == AlignLeft || ch == AlignRight || ch == AlignCenter || ch == AlignAfterSign
}

func isSign(ch byte) bool {
	return ch == SignAlways || ch == SignNegative || ch == SignSpace
}

// scanDigits reads a run of ASCII digits, saturating at MaxSpecNumber.
func scanDigits(s string) (int, int) {
	n, v := 0, 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		if v < MaxSpecNumber {
			v = v*10 + int(s[n]-'0')
		}
		n++
	}
	if v > MaxSpecNumber {
		v = MaxSpecNumber
	}
	return n, v
}
