package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const cacheKeyPrefix = "chat:resp:"

// fingerprint derives a stable cache key from the request text. Case and
// whitespace runs are normalized so trivial rephrasings of the same
// request land on the same entry.
func fingerprint(requestText string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(requestText)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
