package validator

import (
	"context"
	"fmt"
	"strconv"
)

// Number is the set of numeric result types produced by the numeric validators.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// bounds holds the range constraints shared by all numeric validators.
//
// Hard limits are checked before coercion: a value outside [min, max] is
// rejected even when a coercion bound would bring it back into range. The
// two kinds of constraint are meant to be used independently. Note that
// DateTimeValidator applies them in the opposite order.
type bounds[T Number] struct {
	min       *T
	max       *T
	coerceMin *T
	coerceMax *T
}

func (b *bounds[T]) check(n T, noun string) Result {
	if b.min != nil && n < *b.min {
		return Invalid(KindInvalidSize, fmt.Sprintf("The provided %s is too small (minimum size is %v)", noun, *b.min))
	}
	if b.max != nil && n > *b.max {
		return Invalid(KindInvalidSize, fmt.Sprintf("The provided %s is too large (maximum size is %v)", noun, *b.max))
	}

	if b.coerceMin != nil && n < *b.coerceMin {
		n = *b.coerceMin
	}
	if b.coerceMax != nil && n > *b.coerceMax {
		n = *b.coerceMax
	}

	return Valid(n)
}

// NumberValidator parses a parameter into a number of type T and enforces
// optional bounds and coercion.
type NumberValidator[T Number] struct {
	bounds[T]
	noun     string
	kind     Kind
	parseErr string
	parse    func(string) (T, error)
}

// Short validates 16-bit signed integers.
func Short() *NumberValidator[int16] {
	return &NumberValidator[int16]{
		noun:     "short",
		kind:     KindInvalidShort,
		parseErr: "The provided value does not represent a short",
		parse:    parseInteger[int16](16),
	}
}

// Int validates 32-bit signed integers.
func Int() *NumberValidator[int32] {
	return &NumberValidator[int32]{
		noun:     "integer",
		kind:     KindInvalidInt,
		parseErr: "The provided value does not represent an integer",
		parse:    parseInteger[int32](32),
	}
}

// Long validates 64-bit signed integers.
func Long() *NumberValidator[int64] {
	return &NumberValidator[int64]{
		noun:     "long",
		kind:     KindInvalidLong,
		parseErr: "The provided value does not represent a long",
		parse:    parseInteger[int64](64),
	}
}

// Float validates 32-bit floating point numbers.
func Float() *NumberValidator[float32] {
	return &NumberValidator[float32]{
		noun:     "float",
		kind:     KindInvalidFloat,
		parseErr: "The provided value does not represent a float",
		parse:    parseFloat[float32](32),
	}
}

// Double validates 64-bit floating point numbers.
func Double() *NumberValidator[float64] {
	return &NumberValidator[float64]{
		noun:     "double",
		kind:     KindInvalidDouble,
		parseErr: "The provided value does not represent a double",
		parse:    parseFloat[float64](64),
	}
}

// Min requires the value to be at least n.
func (v *NumberValidator[T]) Min(n T) *NumberValidator[T] {
	v.min = &n
	return v
}

// Max requires the value to be at most n.
func (v *NumberValidator[T]) Max(n T) *NumberValidator[T] {
	v.max = &n
	return v
}

// CoerceMin raises values below n to n.
func (v *NumberValidator[T]) CoerceMin(n T) *NumberValidator[T] {
	v.coerceMin = &n
	return v
}

// CoerceMax lowers values above n to n.
func (v *NumberValidator[T]) CoerceMax(n T) *NumberValidator[T] {
	v.coerceMax = &n
	return v
}

func (v *NumberValidator[T]) Validate(_ context.Context, p Param) Result {
	n, err := v.parse(p.Value)
	if err != nil {
		return Invalid(v.kind, v.parseErr)
	}
	return v.check(n, v.noun)
}

// ByteValidator parses 8-bit parameters. Input is read as a signed byte
// unless ParseAsUnsigned is set.
type ByteValidator struct {
	bounds[int8]
	unsigned bool
}

// Byte returns a byte validator in signed mode.
func Byte() *ByteValidator {
	return &ByteValidator{}
}

// ParseAsSigned accepts inputs in [-128, 127]. This is the default.
func (v *ByteValidator) ParseAsSigned() *ByteValidator {
	v.unsigned = false
	return v
}

// ParseAsUnsigned accepts inputs in [0, 255] and stores them shifted down by
// 128, so "0" becomes -128 and "255" becomes 127.
func (v *ByteValidator) ParseAsUnsigned() *ByteValidator {
	v.unsigned = true
	return v
}

// Min requires the stored value to be at least n.
func (v *ByteValidator) Min(n int8) *ByteValidator {
	v.min = &n
	return v
}

// Max requires the stored value to be at most n.
func (v *ByteValidator) Max(n int8) *ByteValidator {
	v.max = &n
	return v
}

// CoerceMin raises stored values below n to n.
func (v *ByteValidator) CoerceMin(n int8) *ByteValidator {
	v.coerceMin = &n
	return v
}

// CoerceMax lowers stored values above n to n.
func (v *ByteValidator) CoerceMax(n int8) *ByteValidator {
	v.coerceMax = &n
	return v
}

func (v *ByteValidator) Validate(_ context.Context, p Param) Result {
	n, err := strconv.ParseInt(p.Value, 10, 32)
	if err != nil {
		return Invalid(KindInvalidByte, "The provided value does not represent a byte")
	}

	var b int8
	if v.unsigned {
		if n < 0 || n > 255 {
			return Invalid(KindInvalidByte, "The provided value does not represent an unsigned byte")
		}
		b = int8(n - 128)
	} else {
		if n < -128 || n > 127 {
			return Invalid(KindInvalidByte, "The provided value does not represent a signed byte")
		}
		b = int8(n)
	}

	return v.check(b, "byte")
}

func parseInteger[T ~int16 | ~int32 | ~int64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return 0, err
		}
		return T(n), nil
	}
}

func parseFloat[T ~float32 | ~float64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return 0, err
		}
		return T(f), nil
	}
}
