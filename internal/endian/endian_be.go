//go:build armbe || arm64be || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || sparc || sparc64

package endian

// Hton16 converts a host-order uint16 to big-endian. The host already is.
func Hton16(v uint16) uint16 { return v }

// Hton32 converts a host-order uint32 to big-endian.
func Hton32(v uint32) uint32 { return v }

// Hton64 converts a host-order uint64 to big-endian.
func Hton64(v uint64) uint64 { return v }
