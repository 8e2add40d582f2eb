package media

import (
	"fmt"
	"hash/fnv"
)

// ID derives the stable item id for a provider url. The same pair always
// yields the same id; distinct urls may collide on the 32-bit hash.
func ID(providerName, url string) string {
	return fmt.Sprintf("%s:%08x", providerName, Fingerprint(url))
}

// Fingerprint is the 32-bit FNV-1a hash of s.
func Fingerprint(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
