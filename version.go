package msgpack

import "fmt"

// Library version, reported the way the C msgpack family does with its
// msgpack_version() accessors.
const (
	VersionMajor    = 0
	VersionMinor    = 1
	VersionRevision = 0
)

// Version returns the library version as "major.minor.revision".
func Version() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionRevision)
}
