package binary

import (
	"bytes"
	"testing"
)

// FuzzUint16 fuzzes the uint16 decoder.
func FuzzUint16(f *testing.F) {
	f.Add([]byte{0, 0})
	f.Add([]byte{0xFF, 0x7F})
	f.Add([]byte{0x80, 0x00})
	f.Add([]byte{0xFF, 0xFF})
	f.Add([]byte{0x01, 0x02})

	f.Fuzz(func(t *testing.T, data []byte) {
		v, rest, err := Uint16(data)
		if len(data) < 2 {
			if err == nil {
				t.Errorf("FuzzUint16: short input did not fail")
			}
			return
		}
		if err != nil {
			t.Errorf("FuzzUint16: unexpected err: %v", err)
			return
		}
		if len(rest) != len(data)-2 {
			t.Errorf("FuzzUint16: consumed %d bytes, want 2", len(data)-len(rest))
		}

		// Verify round-trip
		out := AppendUint16(nil, v)
		if !bytes.Equal(out, data[:2]) {
			t.Errorf("FuzzUint16: round-trip failed: got %v, want %v", out, data[:2])
		}
	})
}

// FuzzUint32 fuzzes the uint32 decoder.
func FuzzUint32(f *testing.F) {
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte{0x01, 0x02, 0x03, 0x04})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	f.Add([]byte{0x80, 0, 0, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		v, rest, err := Uint32(data)
		if len(data) < 4 {
			if err == nil {
				t.Errorf("FuzzUint32: short input did not fail")
			}
			return
		}
		if err != nil {
			t.Errorf("FuzzUint32: unexpected err: %v", err)
			return
		}
		if len(rest) != len(data)-4 {
			t.Errorf("FuzzUint32: consumed %d bytes, want 4", len(data)-len(rest))
		}

		out := AppendUint32(nil, v)
		if !bytes.Equal(out, data[:4]) {
			t.Errorf("FuzzUint32: round-trip failed: got %v, want %v", out, data[:4])
		}
	})
}

// FuzzUint64 fuzzes the uint64 decoder.
func FuzzUint64(f *testing.F) {
	f.Add([]byte{0, 0, 0, 0, 0, 0, 0, 0})
	f.Add([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		v, rest, err := Uint64(data)
		if len(data) < 8 {
			if err == nil {
				t.Errorf("FuzzUint64: short input did not fail")
			}
			return
		}
		if err != nil {
			t.Errorf("FuzzUint64: unexpected err: %v", err)
			return
		}
		if len(rest) != len(data)-8 {
			t.Errorf("FuzzUint64: consumed %d bytes, want 8", len(data)-len(rest))
		}

		out := AppendUint64(nil, v)
		if !bytes.Equal(out, data[:8]) {
			t.Errorf("FuzzUint64: round-trip failed: got %v, want %v", out, data[:8])
		}
	})
}

// FuzzFloat64 fuzzes the float64 decoder. Arbitrary 8-byte patterns include
// NaNs, so the round trip compares bytes, not values.
func FuzzFloat64(f *testing.F) {
	f.Add([]byte{0x3F, 0xF8, 0, 0, 0, 0, 0, 0})
	f.Add([]byte{0x7F, 0xF0, 0, 0, 0, 0, 0, 0})
	f.Add([]byte{0x7F, 0xF8, 0, 0, 0, 0, 0, 1})
	f.Add([]byte{0x80, 0, 0, 0, 0, 0, 0, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		v, _, err := Float64(data)
		if len(data) < 8 {
			if err == nil {
				t.Errorf("FuzzFloat64: short input did not fail")
			}
			return
		}
		if err != nil {
			t.Errorf("FuzzFloat64: unexpected err: %v", err)
			return
		}

		out := AppendFloat64(nil, v)
		if !bytes.Equal(out, data[:8]) {
			t.Errorf("FuzzFloat64: round-trip failed: got %v, want %v", out, data[:8])
		}
	})
}
