package packet

import (
	"crypto/subtle"
	"time"
	"unicode/utf8"
)

// NormalizeDate floors t to whole seconds, since OpenPGP timestamps have
// one-second resolution and sub-second precision would make two
// otherwise-identical signatures compare unequal. The zero Time is left
// as the zero Time (spec §6: "maps null -> null") — it's the sentinel the
// validation engine uses for "don't check expiration."
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Unix(t.Unix(), 0).UTC()
}

// EncodeUTF8 returns s as UTF-8 bytes, validating along the way. OpenPGP
// user IDs and notation data are defined to be UTF-8; invalid sequences
// are replaced per the standard library's usual replacement-rune policy
// rather than rejected, since THE CORE's job is comparison and hashing,
// not input validation.
func EncodeUTF8(s string) []byte {
	if utf8.ValidString(s) {
		return []byte(s)
	}
	return []byte(string([]rune(s)))
}

// ConstantTimeEqual reports whether a and b hold the same bytes, in time
// independent of where they first differ. Used when comparing raw
// signature bytes during merge dedup, where the inputs may originate from
// an adversarial second copy of a key.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
