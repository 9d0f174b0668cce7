package packet

import "encoding/hex"

// KeyID is the 8-byte truncated identifier used for key lookup, per RFC
// 4880 section 12.2. The zero KeyID is the OpenPGP "wildcard" key ID used
// in the short-id matching mode some callers rely on (spec §6: "equality
// with an optional wildcard mode for the short-id form").
type KeyID [8]byte

// Equal reports whether id and other identify the same key. When
// wildcard is true, a zero KeyID on either side matches anything — the
// convention OpenPGP implementations use for "I don't know which key,
// try them all."
func (id KeyID) Equal(other KeyID, wildcard bool) bool {
	if wildcard && (id.IsWildcard() || other.IsWildcard()) {
		return true
	}
	return id == other
}

// IsWildcard reports whether id is the all-zero wildcard key ID.
func (id KeyID) IsWildcard() bool {
	return id == KeyID{}
}

// Hex returns the lower-case hex encoding of id, as used in fingerprint
// and key-ID displays.
func (id KeyID) Hex() string {
	return hex.EncodeToString(id[:])
}

// Fingerprint is the canonical cryptographic identifier of a key packet.
// Equality is always raw-byte equality; fingerprints have no wildcard
// mode (only the shorter KeyID does).
type Fingerprint []byte

// Equal reports whether f and other are byte-identical.
func (f Fingerprint) Equal(other Fingerprint) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if f[i] != other[i] {
			return false
		}
	}
	return true
}

// Hex returns the lower-case hex encoding of f.
func (f Fingerprint) Hex() string {
	return hex.EncodeToString(f)
}

// KeyID returns the low-order 8 bytes of the fingerprint, which is how
// OpenPGP derives a v4 key ID from a v4 fingerprint. Fingerprints shorter
// than 8 bytes return the zero KeyID.
func (f Fingerprint) KeyID() KeyID {
	var id KeyID
	if len(f) < 8 {
		return id
	}
	copy(id[:], f[len(f)-8:])
	return id
}
