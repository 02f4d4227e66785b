package msgpack

// This file holds the packer: kind dispatch plus the wire-format emitters.
// The full encoding for a value is computed into a scratch buffer before the
// sink sees any of it, so a failed pack never leaves a dangling marker byte
// in the stream.

import (
	"io"
	"math"
	"strconv"

	"github.com/bearlytools/msgpack/binary"
	"github.com/bearlytools/msgpack/internal/conversions"
	"github.com/bearlytools/msgpack/internal/endian"
	"github.com/pkg/errors"
)

// Wire-format marker bytes, MessagePack family.
const (
	nilCode   = 0xc0
	falseCode = 0xc2
	trueCode  = 0xc3

	floatCode  = 0xca
	doubleCode = 0xcb

	uint8Code  = 0xcc
	uint16Code = 0xcd
	uint32Code = 0xce
	uint64Code = 0xcf

	int8Code  = 0xd0
	int16Code = 0xd1
	int32Code = 0xd2
	int64Code = 0xd3

	fixStrCode = 0xa0
	str8Code   = 0xd9
	str16Code  = 0xda
	str32Code  = 0xdb
)

// Pack encodes v and writes the encoding to w in a single write. A non-nil
// error is one of *UnsupportedKindError, *binary.RangeError or *SinkError;
// on *UnsupportedKindError and *binary.RangeError nothing was written.
func Pack(w io.Writer, v Value) error {
	b, err := Append(make([]byte, 0, 16), v)
	if err != nil {
		return err
	}
	n, err := w.Write(b)
	if err != nil {
		return &SinkError{Err: err}
	}
	if n != len(b) {
		return &SinkError{Err: errors.Errorf("short write: %d of %d bytes", n, len(b))}
	}
	return nil
}

// Marshal returns the encoding of v.
func Marshal(v Value) ([]byte, error) {
	return Append(nil, v)
}

// Append appends the encoding of v to b. b is never rewritten in place, so
// encodings of sibling values already in b survive a failed Append.
func Append(b []byte, v Value) ([]byte, error) {
	switch v.kind {
	case KindNil:
		return append(b, nilCode), nil
	case KindBool:
		if v.num != 0 {
			return append(b, trueCode), nil
		}
		return append(b, falseCode), nil
	case KindInt:
		return appendInt(b, int64(v.num)), nil
	case KindFloat32:
		return appendBits32(append(b, floatCode), uint32(v.num)), nil
	case KindFloat64:
		return appendBits64(append(b, doubleCode), v.num), nil
	case KindString:
		return appendStr(b, v.str)
	}
	return b, &UnsupportedKindError{Kind: v.kind}
}

// appendInt picks the most compact correct representation for i: fixnums for
// [-32, 127], then the narrowest uint code for positives and the narrowest
// int code for negatives. Any int64 round-trips.
func appendInt(b []byte, i int64) []byte {
	switch {
	case i >= -32 && i <= math.MaxInt8:
		// Positive and negative fixnums are the value's own low byte.
		return append(b, byte(i))
	case i >= 0:
		switch u := uint64(i); {
		case u <= math.MaxUint8:
			return append(b, uint8Code, byte(u))
		case u <= math.MaxUint16:
			return appendBits16(append(b, uint16Code), uint16(u))
		case u <= math.MaxUint32:
			return appendBits32(append(b, uint32Code), uint32(u))
		default:
			return appendBits64(append(b, uint64Code), u)
		}
	case i >= math.MinInt8:
		return append(b, int8Code, byte(i))
	case i >= math.MinInt16:
		return appendBits16(append(b, int16Code), uint16(int16(i)))
	case i >= math.MinInt32:
		return appendBits32(append(b, int32Code), uint32(int32(i)))
	default:
		return appendBits64(append(b, int64Code), uint64(i))
	}
}

func appendStr(b []byte, s string) ([]byte, error) {
	switch l := uint64(len(s)); {
	case l <= 31:
		b = append(b, fixStrCode|byte(l))
	case l <= math.MaxUint8:
		b = append(b, str8Code, byte(l))
	case l <= math.MaxUint16:
		b = appendBits16(append(b, str16Code), uint16(l))
	case l <= math.MaxUint32:
		b = appendBits32(append(b, str32Code), uint32(l))
	default:
		return b, &binary.RangeError{Value: strconv.FormatUint(l, 10), Type: "str32 length"}
	}
	return append(b, conversions.UnsafeGetBytes(s)...), nil
}

// The packer emits raw patterns itself rather than going through the
// binary package: payloads here are already bits (floats were reinterpreted
// at Value construction), so host-to-big-endian plus a memory copy is the
// whole job.

func appendBits16(b []byte, v uint16) []byte {
	be := endian.Hton16(v)
	return append(b, conversions.NumToBytes(&be)...)
}

func appendBits32(b []byte, v uint32) []byte {
	be := endian.Hton32(v)
	return append(b, conversions.NumToBytes(&be)...)
}

func appendBits64(b []byte, v uint64) []byte {
	be := endian.Hton64(v)
	return append(b, conversions.NumToBytes(&be)...)
}
