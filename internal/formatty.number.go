package internal

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// twoPow64 is the first float magnitude that no longer fits a uint64
const twoPow64 = float64(1 << 64)

// Number is a numeric argument split into sign and magnitude. Integers keep
// their exact magnitude so that 64-bit values never pass through a float.
type Number struct {
	IsInt bool
	Neg   bool
	Mag   uint64  // magnitude, integers only
	Float float64 // signed value, floats only
}

// NumberOf converts any Go integer or float kind into a Number
func NumberOf(v any) (Number, bool) {
	if n, ok := BasicNumberOf(v); ok {
		return n, true
	}

	// Named numeric types
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intNumber(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number{IsInt: true, Mag: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return floatNumber(rv.Float()), true
	}
	return Number{}, false
}

// BasicNumberOf converts the predeclared integer and float types only
func BasicNumberOf(v any) (Number, bool) {
	switch n := v.(type) {
	case int:
		return intNumber(int64(n)), true
	case int8:
		return intNumber(int64(n)), true
	case int16:
		return intNumber(int64(n)), true
	case int32:
		return intNumber(int64(n)), true
	case int64:
		return intNumber(n), true
	case uint:
		return Number{IsInt: true, Mag: uint64(n)}, true
	case uint8:
		return Number{IsInt: true, Mag: uint64(n)}, true
	case uint16:
		return Number{IsInt: true, Mag: uint64(n)}, true
	case uint32:
		return Number{IsInt: true, Mag: uint64(n)}, true
	case uint64:
		return Number{IsInt: true, Mag: n}, true
	case uintptr:
		return Number{IsInt: true, Mag: uint64(n)}, true
	case float32:
		return float32Number(n), true
	case float64:
		return floatNumber(n), true
	}
	return Number{}, false
}

// float32Number widens through the shortest float32 text so 3.14 stays 3.14
func float32Number(v float32) Number {
	f, err := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
	if err != nil {
		f = float64(v)
	}
	return floatNumber(f)
}

func intNumber(v int64) Number {
	if v < 0 {
		// -(v+1)+1 keeps math.MinInt64 in range
		return Number{IsInt: true, Neg: true, Mag: uint64(-(v + 1)) + 1}
	}
	return Number{IsInt: true, Mag: uint64(v)}
}

func floatNumber(v float64) Number {
	return Number{Float: v, Neg: v < 0}
}

// Abs returns the magnitude as a float
func (n Number) Abs() float64 {
	if n.IsInt {
		return float64(n.Mag)
	}
	return math.Abs(n.Float)
}

// IsFinite reports false for infinities and NaN
func (n Number) IsFinite() bool {
	return n.IsInt || !(math.IsInf(n.Float, 0) || math.IsNaN(n.Float))
}

// PresentationTypeError reports a type character the numeric formatter does
// not understand.
type PresentationTypeError struct {
	Type rune
}

// Error implements the error interface
func (e *PresentationTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMsgUnknownType, e.Type)
}

// FormatNumber renders a number under spec.
//
// The sign is taken from the signed value, digits are generated from the
// magnitude, and the result is padded by the text formatter. With `=`
// alignment the sign (and base prefix) stay in front of the padding. A zero
// flag without an explicit fill means fill `0` with `=` alignment.
func FormatNumber(n Number, spec Spec, loc *Locale) (string, error) {
	if !n.IsFinite() {
		return nonFiniteText(n.Float), nil
	}
	if loc == nil {
		loc = DefaultLocale
	}
	// d floors the signed value, so -1.5 is -2
	if spec.Type == TypeDecimal && !n.IsInt {
		n = floatNumber(math.Floor(n.Float))
	}

	pad := Spec{Fill: spec.FillRune(), HasFill: true, Align: spec.Align, Width: spec.Width}
	if spec.ZeroPad && !spec.HasFill {
		pad.Fill = CharZero
		if pad.Align == 0 {
			pad.Align = AlignAfterSign
		}
	}

	sign := signText(spec.SignPolicy(), n.Neg)
	prefix, digits, err := numberDigits(n, spec, loc)
	if err != nil {
		return "", err
	}

	if pad.Align == AlignAfterSign {
		pad.Align = AlignRight
		pad.Width -= len(sign) + len(prefix)
		return sign + prefix + FormatText(digits, pad), nil
	}
	return FormatText(sign+prefix+digits, pad), nil
}

// numberDigits generates the unsigned text of n for the spec's type
func numberDigits(n Number, spec Spec, loc *Locale) (string, string, error) {
	switch spec.Type {
	case TypeDecimal:
		return "", integerText(n, 10), nil

	case TypeBinary:
		return alternatePrefix(spec, PrefixBinary), integerText(n, 2), nil

	case TypeOctal:
		return alternatePrefix(spec, PrefixOctal), integerText(n, 8), nil

	case TypeHex:
		return alternatePrefix(spec, PrefixHex), integerText(n, 16), nil

	case TypeHexUpper:
		return alternatePrefix(spec, PrefixHex), strings.ToUpper(integerText(n, 16)), nil

	case TypeChar:
		return "", charText(n), nil

	case TypeExp, TypeExpUpper:
		prec := -1
		if spec.HasPrecision {
			prec = spec.Precision
		}
		s := expText(n.Abs(), prec)
		if spec.Type == TypeExpUpper {
			s = strings.ToUpper(s)
		}
		return "", s, nil

	case TypeFixed, TypeFixedUpper:
		prec := DefaultFixedPrecision
		if spec.HasPrecision {
			prec = spec.Precision
		}
		return "", strconv.FormatFloat(n.Abs(), 'f', prec, 64), nil

	case TypePercent:
		return "", percentText(n.Abs(), spec), nil

	case TypeNumber:
		return "", loc.FormatDecimal(n, spec.Precision, spec.HasPrecision), nil

	case TypeNone, TypeString, TypeGeneral, TypeGeneralUpper:
		var s string
		switch {
		case n.IsInt:
			s = strconv.FormatUint(n.Mag, 10)
		case spec.HasPrecision:
			s = roundedGeneralText(n.Abs(), spec.Precision)
		default:
			s = generalText(n.Abs())
		}
		if spec.Type == TypeGeneralUpper {
			s = strings.ToUpper(s)
		}
		return "", s, nil
	}

	return "", "", &PresentationTypeError{Type: spec.Type}
}

func signText(policy byte, negative bool) string {
	if negative {
		return string(SignNegative)
	}
	switch policy {
	case SignAlways:
		return string(SignAlways)
	case SignSpace:
		return string(SignSpace)
	}
	return ""
}

func alternatePrefix(spec Spec, prefix string) string {
	if spec.Alternate {
		return prefix
	}
	return ""
}

func nonFiniteText(v float64) string {
	switch {
	case math.IsNaN(v):
		return TextNaN
	case v > 0:
		return TextPosInf
	}
	return TextNegInf
}

// integerText renders the integer part of the magnitude in base. Floats are
// truncated toward zero.
func integerText(n Number, base int) string {
	if n.IsInt {
		return strconv.FormatUint(n.Mag, base)
	}
	t := math.Trunc(n.Abs())
	if t < twoPow64 {
		return strconv.FormatUint(uint64(t), base)
	}
	bi, _ := new(big.Float).SetFloat64(t).Int(nil)
	return bi.Text(base)
}

func charText(n Number) string {
	code := n.Mag
	if !n.IsInt {
		code = uint64(math.Min(math.Trunc(n.Abs()), float64(unicode.MaxRune+1)))
	}
	if code > unicode.MaxRune {
		return string(utf8.RuneError)
	}
	return string(rune(code))
}

// expText formats in scientific notation with an unpadded exponent (1e+3).
// A negative prec gives the shortest mantissa.
func expText(x float64, prec int) string {
	s := strconv.FormatFloat(x, 'e', prec, 64)
	e := strings.IndexByte(s, 'e')
	if e < 0 || e+2 >= len(s) {
		return s
	}
	exp := strings.TrimLeft(s[e+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return s[:e+2] + exp
}

// generalText is fixed-point for ordinary magnitudes and exponential for very
// large or very small ones, always with the shortest exact digits.
func generalText(x float64) string {
	if x != 0 && (x >= GeneralMaxFixed || x < GeneralMinFixed) {
		return expText(x, -1)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// roundedGeneralText rounds to prec fraction digits, then keeps at most
// prec+1 characters without cutting into the integer part. A dot left at the
// end stays, so .1 of 3.14 is "3.".
func roundedGeneralText(x float64, prec int) string {
	s := generalText(roundTo(x, prec))
	if strings.ContainsAny(s, "eE") {
		return s
	}

	keep := prec + 1
	if dot := strings.IndexByte(s, CharPrecisionSep); dot < 0 {
		keep = max(keep, len(s))
	} else {
		keep = max(keep, dot)
	}
	if keep < len(s) {
		s = s[:keep]
	}
	return s
}

func percentText(x float64, spec Spec) string {
	v := x * PercentMultiplier
	if spec.HasPrecision {
		return strconv.FormatFloat(v, 'f', spec.Precision, 64) + string(TypePercent)
	}
	// Seven significant digits hide binary noise such as 42.010000000000005
	v, _ = strconv.ParseFloat(strconv.FormatFloat(v, 'g', PercentSignificantDigits, 64), 64)
	return strconv.FormatFloat(v, 'f', -1, 64) + string(TypePercent)
}

func roundTo(x float64, prec int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', prec, 64), 64)
	if err != nil {
		return x
	}
	return v
}
