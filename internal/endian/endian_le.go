//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

package endian

// Hton16 converts a host-order uint16 to big-endian.
func Hton16(v uint16) uint16 { return Swap16(v) }

// Hton32 converts a host-order uint32 to big-endian.
func Hton32(v uint32) uint32 { return Swap32(v) }

// Hton64 converts a host-order uint64 to big-endian.
func Hton64(v uint64) uint64 { return Swap64(v) }
