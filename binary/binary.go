// Package binary replaces the encoding/binary package in the standard library
// for the big-endian wire encoding used by the MessagePack family of formats.
// Decoders consume an exact number of bytes from the front of a slice and
// return the unconsumed remainder; encoders append to a slice. Float values
// travel as their IEEE-754 bit patterns, never as numeric conversions.
package binary

import (
	"fmt"
	"math"

	"github.com/bearlytools/msgpack/internal/conversions"
	"github.com/bearlytools/msgpack/internal/endian"
	"golang.org/x/exp/constraints"
)

// Number is a constraint for the fixed-width numeric types this codec
// carries on the wire. 8-bit types are absent: the wire format has no
// 1-byte payload that isn't a marker.
type Number interface {
	~int16 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// ShortInputError indicates a decode needed more bytes than the input held.
// Have is the number of bytes that were available; nothing was consumed.
type ShortInputError struct {
	Need int
	Have int
}

func (e *ShortInputError) Error() string {
	return fmt.Sprintf("short input: need %d bytes, have %d", e.Need, e.Have)
}

// RangeError indicates an encode value outside the target type's domain.
type RangeError struct {
	Value string // the offending value, formatted
	Type  string // the target type, such as "int16"
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %s does not fit in %s", e.Value, e.Type)
}

// Get decodes any Number type from the front of b, returning the value and
// the unconsumed remainder of b.
func Get[T Number](b []byte) (T, []byte, error) {
	var r T // This is only used for type detection.
	switch any(r).(type) {
	case int16:
		v, rest, err := Int16(b)
		return T(v), rest, err
	case int32:
		v, rest, err := Int32(b)
		return T(v), rest, err
	case int64:
		v, rest, err := Int64(b)
		return T(v), rest, err
	case uint16:
		v, rest, err := Uint16(b)
		return T(v), rest, err
	case uint32:
		v, rest, err := Uint32(b)
		return T(v), rest, err
	case uint64:
		v, rest, err := Uint64(b)
		return T(v), rest, err
	case float32:
		v, rest, err := Float32(b)
		return T(v), rest, err
	case float64:
		v, rest, err := Float64(b)
		return T(v), rest, err
	}
	panic(fmt.Sprintf("unsupported type that passed the type constraint %T", r))
}

// Append encodes any Number type onto the end of b.
func Append[T Number](b []byte, v T) []byte {
	switch t := any(v).(type) {
	case int16:
		return AppendInt16(b, t)
	case int32:
		return AppendInt32(b, t)
	case int64:
		return AppendInt64(b, t)
	case uint16:
		return AppendUint16(b, t)
	case uint32:
		return AppendUint32(b, t)
	case uint64:
		return AppendUint64(b, t)
	case float32:
		return AppendFloat32(b, t)
	case float64:
		return AppendFloat64(b, t)
	}
	panic(fmt.Sprintf("unsupported type that passed the type constraint %T", v))
}

// Direct type-specific functions below avoid type switch overhead for hot paths.

// Uint16 decodes a big-endian uint16 from the front of b.
func Uint16(b []byte) (uint16, []byte, error) {
	if len(b) < 2 {
		return 0, b, &ShortInputError{Need: 2, Have: len(b)}
	}
	var v uint16
	copy(conversions.NumToBytes(&v), b[:2])
	return endian.Ntoh16(v), b[2:], nil
}

// Uint32 decodes a big-endian uint32 from the front of b.
func Uint32(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, b, &ShortInputError{Need: 4, Have: len(b)}
	}
	var v uint32
	copy(conversions.NumToBytes(&v), b[:4])
	return endian.Ntoh32(v), b[4:], nil
}

// Uint64 decodes a big-endian uint64 from the front of b.
func Uint64(b []byte) (uint64, []byte, error) {
	if len(b) < 8 {
		return 0, b, &ShortInputError{Need: 8, Have: len(b)}
	}
	var v uint64
	copy(conversions.NumToBytes(&v), b[:8])
	return endian.Ntoh64(v), b[8:], nil
}

// Int16 decodes a big-endian int16 from the front of b.
func Int16(b []byte) (int16, []byte, error) {
	v, rest, err := Uint16(b)
	return int16(v), rest, err
}

// Int32 decodes a big-endian int32 from the front of b.
func Int32(b []byte) (int32, []byte, error) {
	v, rest, err := Uint32(b)
	return int32(v), rest, err
}

// Int64 decodes a big-endian int64 from the front of b.
func Int64(b []byte) (int64, []byte, error) {
	v, rest, err := Uint64(b)
	return int64(v), rest, err
}

// Float32 decodes a big-endian IEEE-754 single from the front of b. The
// 4 bytes are reinterpreted as float bits, not numerically converted, so
// NaN and infinity patterns survive decode bit-exact.
func Float32(b []byte) (float32, []byte, error) {
	bits, rest, err := Uint32(b)
	if err != nil {
		return 0, rest, err
	}
	return conversions.Float32FromBits(bits), rest, nil
}

// Float64 decodes a big-endian IEEE-754 double from the front of b.
func Float64(b []byte) (float64, []byte, error) {
	bits, rest, err := Uint64(b)
	if err != nil {
		return 0, rest, err
	}
	return conversions.Float64FromBits(bits), rest, nil
}

// AppendUint16 appends v to b as 2 big-endian bytes.
func AppendUint16(b []byte, v uint16) []byte {
	be := endian.Hton16(v)
	return append(b, conversions.NumToBytes(&be)...)
}

// AppendUint32 appends v to b as 4 big-endian bytes.
func AppendUint32(b []byte, v uint32) []byte {
	be := endian.Hton32(v)
	return append(b, conversions.NumToBytes(&be)...)
}

// AppendUint64 appends v to b as 8 big-endian bytes.
func AppendUint64(b []byte, v uint64) []byte {
	be := endian.Hton64(v)
	return append(b, conversions.NumToBytes(&be)...)
}

// AppendInt16 appends v to b as 2 big-endian bytes.
func AppendInt16(b []byte, v int16) []byte {
	return AppendUint16(b, uint16(v))
}

// AppendInt32 appends v to b as 4 big-endian bytes.
func AppendInt32(b []byte, v int32) []byte {
	return AppendUint32(b, uint32(v))
}

// AppendInt64 appends v to b as 8 big-endian bytes.
func AppendInt64(b []byte, v int64) []byte {
	return AppendUint64(b, uint64(v))
}

// AppendFloat32 appends the IEEE-754 bit pattern of v to b as 4 big-endian bytes.
func AppendFloat32(b []byte, v float32) []byte {
	return AppendUint32(b, conversions.Float32Bits(v))
}

// AppendFloat64 appends the IEEE-754 bit pattern of v to b as 8 big-endian bytes.
func AppendFloat64(b []byte, v float64) []byte {
	return AppendUint64(b, conversions.Float64Bits(v))
}

// The Put* functions narrow a dynamically-typed integer into a fixed wire
// width, failing with *RangeError instead of truncating. They serve callers
// that hold an int64/uint64 and a target width chosen at runtime.

// PutInt16 appends v to b as a big-endian int16. Fails if v is outside
// [-32768, 32767].
func PutInt16(b []byte, v int64) ([]byte, error) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return b, rangeErr(v, "int16")
	}
	return AppendInt16(b, int16(v)), nil
}

// PutInt32 appends v to b as a big-endian int32. Fails if v is outside
// [-2147483648, 2147483647].
func PutInt32(b []byte, v int64) ([]byte, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return b, rangeErr(v, "int32")
	}
	return AppendInt32(b, int32(v)), nil
}

// PutInt64 appends v to b as a big-endian int64. Cannot fail; the error is
// always nil and exists for uniformity with the narrower widths.
func PutInt64(b []byte, v int64) ([]byte, error) {
	return AppendInt64(b, v), nil
}

// PutUint16 appends v to b as a big-endian uint16. Fails if v > 65535.
func PutUint16(b []byte, v uint64) ([]byte, error) {
	if v > math.MaxUint16 {
		return b, rangeErr(v, "uint16")
	}
	return AppendUint16(b, uint16(v)), nil
}

// PutUint32 appends v to b as a big-endian uint32. Fails if v > 4294967295.
func PutUint32(b []byte, v uint64) ([]byte, error) {
	if v > math.MaxUint32 {
		return b, rangeErr(v, "uint32")
	}
	return AppendUint32(b, uint32(v)), nil
}

// PutUint64 appends v to b as a big-endian uint64. Cannot fail.
func PutUint64(b []byte, v uint64) ([]byte, error) {
	return AppendUint64(b, v), nil
}

func rangeErr[T constraints.Integer](v T, typ string) *RangeError {
	return &RangeError{Value: fmt.Sprintf("%d", v), Type: typ}
}
