// Package endian converts fixed-width unsigned integers between host and
// big-endian (network) byte order. On big-endian hosts the conversions are
// the identity; on little-endian hosts they swap bytes. All functions are
// branch-free, total and their own inverse.
package endian

// Swap16 reverses the byte order of v.
func Swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

// Swap32 reverses the byte order of v. Defined by swapping the two 16-bit
// halves and swapping each half with Swap16.
func Swap32(v uint32) uint32 {
	return uint32(Swap16(uint16(v)))<<16 | uint32(Swap16(uint16(v>>16)))
}

// Swap64 reverses the byte order of v. Defined by swapping the two 32-bit
// halves and swapping each half with Swap32.
func Swap64(v uint64) uint64 {
	return uint64(Swap32(uint32(v)))<<32 | uint64(Swap32(uint32(v>>32)))
}

// Ntoh16 converts a big-endian uint16 to host order. Same operation as
// Hton16, named for readability at call sites that decode.
func Ntoh16(v uint16) uint16 { return Hton16(v) }

// Ntoh32 converts a big-endian uint32 to host order.
func Ntoh32(v uint32) uint32 { return Hton32(v) }

// Ntoh64 converts a big-endian uint64 to host order.
func Ntoh64(v uint64) uint64 { return Hton64(v) }
