package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Fingerprint computes a stable content digest of an entry sequence.
// Entries are serialised in struct-field order, so the digest depends
// only on entry content and ordering, never on the key order of the
// wire payload the entries were decoded from. Watch mode compares
// fingerprints to decide whether a re-render is needed.
func Fingerprint(entries []Entry) string {
	canonical, _ := json.Marshal(entries)
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
