// Package conversions reinterprets bit patterns between equal-sized types.
// Float/integer reinterpretation goes through math.Float32bits and friends,
// which copy the bit pattern unchanged. This is not numeric conversion:
// Float32FromBits(0x3FC00000) is the float 1.5, not the float 1069547520.0.
// The package also holds zero-copy string-to-byte aliasing used by the
// string encoding path.
package conversions

import (
	"fmt"
	"math"
	"unsafe"
)

// FixedIntegers are integer types that don't vary in size.
type FixedIntegers interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64
}

// Float32Bits returns the IEEE-754 bit pattern of f as a uint32. Total for
// all inputs; NaN and infinity patterns pass through bit-exact.
func Float32Bits(f float32) uint32 {
	return math.Float32bits(f)
}

// Float32FromBits returns the float32 whose IEEE-754 bit pattern is u.
func Float32FromBits(u uint32) float32 {
	return math.Float32frombits(u)
}

// Float64Bits returns the IEEE-754 bit pattern of f as a uint64.
func Float64Bits(f float64) uint64 {
	return math.Float64bits(f)
}

// Float64FromBits returns the float64 whose IEEE-754 bit pattern is u.
func Float64FromBits(u uint64) float64 {
	return math.Float64frombits(u)
}

// NumToBytes returns the underlying storage that value's integer points at,
// in host memory order. This is a pointer to an integer, because otherwise
// we'd have to make an allocation and at that point it would be a useless
// exercise.
func NumToBytes[N FixedIntegers](value *N) []byte {
	switch any(value).(type) {
	case *uint8, *int8:
		b := (*[1]byte)(unsafe.Pointer(value))
		return b[:]
	case *uint16, *int16:
		b := (*[2]byte)(unsafe.Pointer(value))
		return b[:]
	case *uint32, *int32:
		b := (*[4]byte)(unsafe.Pointer(value))
		return b[:]
	case *uint64, *int64:
		b := (*[8]byte)(unsafe.Pointer(value))
		return b[:]
	default:
		panic(fmt.Sprintf("unsupported type: %T", *value))
	}
}

// UnsafeGetBytes retrieves the underlying []byte held in string "s" without
// doing a copy. Works for any string length, including strings past 2 GiB
// that an array-pointer alias would cap. Do not modify the []byte or suffer
// the consequences.
func UnsafeGetBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
