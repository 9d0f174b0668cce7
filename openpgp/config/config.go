// Package config holds the process-wide, immutable configuration record
// consumed by the validation, merge and generation engines. It mirrors
// ProtonMail/go-crypto's openpgp/packet.Config: a plain struct passed by
// pointer and read through the lifetime of a call tree, never mutated by
// the core itself.
package config

import (
	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
)

// Config is the set of knobs spec §6 calls out as required external
// configuration: the preferred hash floor, the default encryption cipher,
// whether revocation signatures themselves expire, whether to advertise
// modification-detection support on generated keys, and whether to prefer
// a native (WebCrypto/OS) crypto back end when one is available.
//
// A Config is immutable once constructed; there are no setters. Build a
// new value (typically via Default, mutated by copy) rather than changing
// one in place, since a Key may hold a reference to the Config that built
// it.
type Config struct {
	PreferredHashAlgorithm enums.HashAlgorithm
	EncryptionCipher       enums.SymmetricAlgorithm
	RevocationsExpire      bool
	IntegrityProtect       bool
	UseNative              bool

	// ExcludedAlgorithms lists public-key algorithms whose subkeys the
	// signing/encryption key selectors skip, even when otherwise eligible
	// (spec 4.7). The primary key is not checked against this list.
	ExcludedAlgorithms []enums.PublicKeyAlgorithm
}

// Default returns the configuration this module uses when the caller
// passes a nil *Config: SHA-256 as the preference floor, AES-256 as the
// default symmetric cipher, revocations that don't expire (the safer
// default — a key should stay revoked), modification-detection features
// advertised on generated self-certifications, and native crypto
// acceleration preferred when available.
func Default() *Config {
	return &Config{
		PreferredHashAlgorithm: enums.SHA256,
		EncryptionCipher:       enums.AES256,
		RevocationsExpire:      false,
		IntegrityProtect:       true,
		UseNative:              true,
	}
}

// OrDefault returns c if non-nil, else Default(). Every engine entry point
// that takes a *Config calls this first so callers may pass nil.
func OrDefault(c *Config) *Config {
	if c == nil {
		return Default()
	}
	return c
}
