// Package state provides identity hashing, the keyed value store panels
// persist their layout in, and the per-window Memory that owns both the
// store and the shared drag slot.
package state

// FNV-1a constants, kept inline so ID derivation stays allocation free.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// ID identifies a panel or other persistent element. IDs are stable
// across frames and sessions as long as the seed strings are stable.
type ID uint64

// NewID derives an ID from a seed string.
func NewID(seed string) ID {
	return ID(hashString(fnvOffset64, seed))
}

// With derives a child ID from the parent and a suffix. Distinct parents
// produce distinct children even for equal suffixes.
func (id ID) With(child string) ID {
	return ID(hashString(uint64(id), child))
}

func hashString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}
