package keyerrors

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessagesIncludeDetail(t *testing.T) {
	cases := []struct {
		err    error
		prefix string
		detail string
	}{
		{InvalidKeyError("no primary key"), "openpgp: invalid key:", "no primary key"},
		{UnknownAlgorithmError("99"), "openpgp: unknown algorithm:", "99"},
		{UnsupportedKeyTypeError("rsa_sign_only"), "openpgp: unsupported key type:", "rsa_sign_only"},
		{UnknownCurveError("nope"), "openpgp: unknown curve:", "nope"},
		{NotDecryptedError("abcd1234"), "openpgp: not decrypted:", "abcd1234"},
		{FingerprintMismatchError("deadbeef"), "openpgp: fingerprint mismatch:", "deadbeef"},
		{SubkeyMismatchError("deadbeef"), "openpgp: subkey mismatch:", "deadbeef"},
		{SigningKeyNotFoundError("fp"), "openpgp: signing key not found:", "fp"},
		{EncryptionKeyNotFoundError("fp"), "openpgp: encryption key not found:", "fp"},
		{PrimaryUserNotFoundError("fp"), "openpgp: primary user not found:", "fp"},
	}
	for _, c := range cases {
		msg := c.err.Error()
		if !strings.HasPrefix(msg, c.prefix) {
			t.Errorf("%T: %q does not have prefix %q", c.err, msg, c.prefix)
		}
		if !strings.Contains(msg, c.detail) {
			t.Errorf("%T: %q does not contain detail %q", c.err, msg, c.detail)
		}
	}
}

func TestErrorsAsDistinguishesKinds(t *testing.T) {
	var err error = FingerprintMismatchError("x")
	var mismatch FingerprintMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatal("errors.As failed to match FingerprintMismatchError")
	}
	var subkey SubkeyMismatchError
	if errors.As(err, &subkey) {
		t.Fatal("errors.As incorrectly matched SubkeyMismatchError")
	}
}
