package spayway

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// GenerateRequestID returns an idempotency key of the form <32 hex chars>_<unix seconds>.
//
// The random half comes from crypto/rand; the gateway uses the key to deduplicate
// retried operations, so callers should reuse the same id when retrying.
func GenerateRequestID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand.Read never fails on supported platforms since Go 1.24.
		panic("spayway: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b[:]) + "_" + strconv.FormatInt(time.Now().Unix(), 10)
}
