// Package msgpack encodes dynamically-typed values into a MessagePack-style
// binary wire format. The supported value kinds are nil, bool, 64-bit signed
// integers, single- and double-precision floats and UTF-8 strings. Single
// versus double precision is an explicit caller choice made at Value
// construction, never inferred from magnitude.
//
// Pack writes one value to an output sink; the lower-level binary subpackage
// carries the fixed-width big-endian codec for callers that already know the
// exact wire width they want.
package msgpack

import (
	"fmt"

	"github.com/bearlytools/msgpack/internal/conversions"
)

// Kind represents the runtime kind held in a Value.
type Kind uint8

const (
	KindInvalid Kind = 0 // Invalid
	KindNil     Kind = 1 // nil
	KindBool    Kind = 2 // bool
	KindInt     Kind = 3 // int64
	KindFloat32 Kind = 4 // float32
	KindFloat64 Kind = 5 // float64
	KindString  Kind = 6 // string
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is a dynamically-typed value that the packer can encode. Exactly one
// variant is active at a time, identified by Kind. The zero Value is
// KindInvalid and fails to pack. Numeric payloads are stored as raw bits so
// a Value never loses float bit patterns (NaN payloads included).
type Value struct {
	kind Kind
	num  uint64
	str  string
}

// Nil returns the nil Value.
func Nil() Value {
	return Value{kind: KindNil}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// Int returns a 64-bit signed integer Value.
func Int(i int64) Value {
	return Value{kind: KindInt, num: uint64(i)}
}

// Float32 returns a single-precision float Value. This is the explicit
// "pack me in 4 bytes" request; use Float64 for the 8-byte representation.
func Float32(f float32) Value {
	return Value{kind: KindFloat32, num: uint64(conversions.Float32Bits(f))}
}

// Float64 returns a double-precision float Value.
func Float64(f float64) Value {
	return Value{kind: KindFloat64, num: conversions.Float64Bits(f)}
}

// Str returns a UTF-8 string Value.
func Str(s string) Value {
	return Value{kind: KindString, str: s}
}

// Kind reports which variant of the Value is active.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload. Panics if the Value is not KindBool.
func (v Value) Bool() bool {
	v.mustBe(KindBool)
	return v.num != 0
}

// Int returns the integer payload. Panics if the Value is not KindInt.
func (v Value) Int() int64 {
	v.mustBe(KindInt)
	return int64(v.num)
}

// Float32 returns the single-precision payload. Panics if the Value is not
// KindFloat32.
func (v Value) Float32() float32 {
	v.mustBe(KindFloat32)
	return conversions.Float32FromBits(uint32(v.num))
}

// Float64 returns the double-precision payload. Panics if the Value is not
// KindFloat64.
func (v Value) Float64() float64 {
	v.mustBe(KindFloat64)
	return conversions.Float64FromBits(v.num)
}

// Str returns the string payload. Panics if the Value is not KindString.
func (v Value) Str() string {
	v.mustBe(KindString)
	return v.str
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("called a %v accessor on a %v Value", k, v.kind))
	}
}
