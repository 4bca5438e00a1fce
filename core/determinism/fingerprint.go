// Package determinism provides content fingerprints so that identical
// inputs can be recognized across runs.
package determinism

import (
	"crypto/sha256"
	"encoding/hex"

	json "github.com/goccy/go-json"

	"support-cost/core/types"
)

// ContentHash is a SHA-256 hash for content integrity
type ContentHash [32]byte

// ComputeHash computes a content hash from bytes
func ComputeHash(data []byte) ContentHash {
	return sha256.Sum256(data)
}

// Hex returns the hash as a hex string
func (h ContentHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// String returns the short form used in reports
func (h ContentHash) String() string {
	return h.Hex()[:16]
}

// Fingerprint hashes the vendors and scenario behind a comparison. Map
// keys are encoded in sorted order, so equal inputs always hash the same.
func Fingerprint(vendors []types.Vendor, scenario *types.Scenario) (ContentHash, error) {
	data, err := json.Marshal(struct {
		Vendors  []types.Vendor  `json:"vendors"`
		Scenario *types.Scenario `json:"scenario"`
	}{vendors, scenario})
	if err != nil {
		return ContentHash{}, err
	}
	return ComputeHash(data), nil
}
