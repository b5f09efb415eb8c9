// Package account proxies TrustedForm account lookups for the configuration UI.
package account

import (
	"crypto/sha256"
	"encoding/hex"
)

// cachePrefix namespaces account entries in a shared cache.
const cachePrefix = "trustedform:account:"

// Result is the upstream answer to a lookup.
type Result struct {
	Status int
	Body   []byte
	Cached bool
}

// OK reports whether the lookup succeeded.
func (r *Result) OK() bool {
	return r.Status == 200
}

// cacheKey derives the cache key of an API key. The key itself is never
// stored.
func cacheKey(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return cachePrefix + hex.EncodeToString(sum[:])
}
