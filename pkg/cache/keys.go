package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// ResultKeyOpts identifies a query for cache key derivation.
type ResultKeyOpts struct {
	Mode       string `json:"mode"`
	Line       int64  `json:"line,omitempty"`
	BoundMax   int64  `json:"bound_max,omitempty"`
	Multiplier int64  `json:"multiplier,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ResultKey returns the key for the answer to a query over the input
	// whose hash is inputHash.
	ResultKey(inputHash string, opts ResultKeyOpts) string
}

// DefaultKeyer produces unprefixed keys of the form "result:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey hashes the input hash together with the query options.
func (DefaultKeyer) ResultKey(inputHash string, opts ResultKeyOpts) string {
	return hashKey("result", inputHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so several tools can share one
// backend without colliding:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "beaconzone:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ResultKey generates a prefixed result key.
func (k *ScopedKeyer) ResultKey(inputHash string, opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(inputHash, opts)
}

// Hash returns the hex SHA-256 of data. Runners use it to fingerprint raw
// input before deriving result keys.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns prefix:sha256(json(parts)).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
