package ttscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Store is a bounded cache for synthesized audio, keyed by the synth
// request fingerprint. Both backends treat misses and backend errors
// identically: (nil, false).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, audio []byte)
}

// Key fingerprints one synthesis request. Input kind participates so an
// SSML document and identical plain text never collide.
func Key(kind, voice, text string) string {
	h := sha256.New()
	h.Write([]byte(kind))
	h.Write([]byte{0})
	h.Write([]byte(voice))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
