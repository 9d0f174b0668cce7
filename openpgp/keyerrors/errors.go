// Package keyerrors defines the error kinds raised by the key structure,
// validation, merge and generation engines. The shape follows
// ProtonMail/go-crypto's openpgp/errors package: each kind is its own
// defined string type so callers can distinguish kinds with a type switch
// or errors.As, and the zero-allocation string payload carries the detail.
//
// Per spec §7, individual signature-verification failures never reach this
// package — they downgrade a status in the validation engine instead.
// Everything here is a structural failure: a precondition the caller must
// fix before retrying.
package keyerrors

// InvalidKeyError means a packet sequence yielded no primary key packet or
// no users (spec 4.1).
type InvalidKeyError string

func (e InvalidKeyError) Error() string { return "openpgp: invalid key: " + string(e) }

// MalformedArmorError means decoded ASCII-armor was neither a public-key
// nor a private-key block.
type MalformedArmorError string

func (e MalformedArmorError) Error() string { return "openpgp: malformed armor: " + string(e) }

// UnknownAlgorithmError means a numeric public-key algorithm ID has no
// entry in the algorithm parameter tables.
type UnknownAlgorithmError string

func (e UnknownAlgorithmError) Error() string { return "openpgp: unknown algorithm: " + string(e) }

// UnsupportedKeyTypeError means the generator was asked for a primary-key
// algorithm it refuses to produce (spec 4.9 step 2: rsa_encrypt_only,
// rsa_sign_only are deprecated for generation).
type UnsupportedKeyTypeError string

func (e UnsupportedKeyTypeError) Error() string {
	return "openpgp: unsupported key type: " + string(e)
}

// UnsupportedSubkeyTypeError is UnsupportedKeyTypeError's subkey-side twin.
type UnsupportedSubkeyTypeError string

func (e UnsupportedSubkeyTypeError) Error() string {
	return "openpgp: unsupported subkey type: " + string(e)
}

// UnknownCurveError means a requested curve name is not in the curve
// registry.
type UnknownCurveError string

func (e UnknownCurveError) Error() string { return "openpgp: unknown curve: " + string(e) }

// NotDecryptedError means a signing path needs a secret key's private
// parameters but they are still encrypted under a passphrase.
type NotDecryptedError string

func (e NotDecryptedError) Error() string { return "openpgp: not decrypted: " + string(e) }

// FingerprintMismatchError means Key.Update was called with a source key
// whose primary fingerprint differs from the receiver's (spec 4.8 step 2).
type FingerprintMismatchError string

func (e FingerprintMismatchError) Error() string {
	return "openpgp: fingerprint mismatch: " + string(e)
}

// SubkeyMismatchError means a public Key was asked to adopt a private
// primary key packet from a source whose subkey set doesn't match by
// fingerprint (spec 4.8 step 3).
type SubkeyMismatchError string

func (e SubkeyMismatchError) Error() string { return "openpgp: subkey mismatch: " + string(e) }

// NothingToEncryptError means Encrypt was called on a key packet with no
// private material.
type NothingToEncryptError string

func (e NothingToEncryptError) Error() string { return "openpgp: nothing to encrypt: " + string(e) }

// NothingToDecryptError means Decrypt was called on a key packet with no
// private material.
type NothingToDecryptError string

func (e NothingToDecryptError) Error() string { return "openpgp: nothing to decrypt: " + string(e) }

// SigningKeyNotFoundError means the operation selector could not find any
// key packet eligible to sign at the requested date / key-ID hint.
type SigningKeyNotFoundError string

func (e SigningKeyNotFoundError) Error() string {
	return "openpgp: signing key not found: " + string(e)
}

// PrimaryUserNotFoundError means getPrimaryUser found no surviving
// candidate (spec 4.2).
type PrimaryUserNotFoundError string

func (e PrimaryUserNotFoundError) Error() string {
	return "openpgp: primary user not found: " + string(e)
}

// EncryptionKeyNotFoundError means the operation selector could not find
// any key packet eligible to encrypt at the requested date / key-ID hint.
type EncryptionKeyNotFoundError string

func (e EncryptionKeyNotFoundError) Error() string {
	return "openpgp: encryption key not found: " + string(e)
}
