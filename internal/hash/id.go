// Package hash provides stable 64-bit identifiers for element and attribute
// names, used as lookup keys by the document index.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
