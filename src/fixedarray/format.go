package fixedarray

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const separator = ","

// String joins the elements with commas. nil elements become empty strings
// and nested slices are joined the same way. Floats use plain decimal
// notation between 1e-6 and 1e21 and exponent notation outside it, so
// 1000000.0 prints as "1000000" rather than "1e+06".
func (a *Array[T]) String() string {
	return a.Join(separator)
}

// Join joins the elements with sep. Nested slices are still joined with commas.
func (a *Array[T]) Join(sep string) string {
	return a.join(sep, formatPlain)
}

// LocaleString is String with numbers formatted for tag, e.g. 1234567
// becomes "1,234,567" for language.English.
func (a *Array[T]) LocaleString(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return a.join(separator, func(v any) string {
		return p.Sprint(v)
	})
}

func formatPlain(v any) string {
	if _, ok := v.(fmt.Stringer); ok {
		return fmt.Sprint(v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	// Go pads the exponent to two digits; drop the padding ("1e-07" -> "1e-7").
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, bitSize), "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

func (a *Array[T]) join(sep string, format func(any) string) string {
	parts := make([]string, len(a.data))
	for i, v := range a.data {
		parts[i] = stringify(v, format)
	}
	return strings.Join(parts, sep)
}

func stringify(v any, format func(any) string) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return ""
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return ""
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = stringify(rv.Index(i).Interface(), format)
		}
		return strings.Join(parts, separator)
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return ""
		}
	}
	return format(v)
}
