package hash

import "github.com/cespare/xxhash/v2"

// Key computes the xxHash64 of an encoded key.
func Key(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Checksum computes the xxHash64 over the concatenation of parts without
// materializing it.
func Checksum(parts ...[]byte) uint64 {
	d := xxhash.New()
	for _, p := range parts {
		_, _ = d.Write(p)
	}

	return d.Sum64()
}
