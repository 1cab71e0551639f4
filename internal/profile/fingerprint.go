package profile

import (
	"crypto/sha256"
	"fmt"
	"maps"
	"slices"
)

// Digest is a fixed 256-bit hash, compatible with source.File.Hash.
type Digest [32]byte

// Fingerprint hashes everything that changes analysis results: goal, active
// checks and option values. Encoding and exclusions only change which bytes
// are read, and those are keyed by the content hash.
func (p *Profile) Fingerprint() Digest {
	h := sha256.New()
	fmt.Fprintf(h, "goal=%d\n", p.Goal)
	if p.Active == nil {
		fmt.Fprintln(h, "active=*")
	} else {
		fmt.Fprintf(h, "active=%q\n", p.Active)
	}
	for _, key := range slices.Sorted(maps.Keys(p.Disabled)) {
		fmt.Fprintf(h, "off=%s\n", key)
	}
	for _, key := range slices.Sorted(maps.Keys(p.Options)) {
		opts := p.Options[key]
		for _, name := range slices.Sorted(maps.Keys(opts)) {
			fmt.Fprintf(h, "opt=%s.%s=%q\n", key, name, opts[name])
		}
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Combine builds a cache key: H(content || part1 || part2 ...).
// The order of parts must be deterministic.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
