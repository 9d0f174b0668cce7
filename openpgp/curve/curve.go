// Package curve is the elliptic-curve registry: for each named curve
// supported by the core, its DER-encoded OID, its key category (ECDSA/ECDH
// vs EdDSA), its preferred hash and symmetric cipher, and its scalar/point
// payload size. The table is grounded directly on the OID table in
// ProtonMail/go-crypto's openpgp/internal/ecc.Curves — the raw OID bytes
// below are copied from there so that a key generated by this module and one
// generated by go-crypto agree byte-for-byte on curve identity.
package curve

import (
	"bytes"

	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/keyerrors"
)

// Category distinguishes the two shapes a curve's key material can take on
// the wire: ECDSA/ECDH curves carry a point, EdDSA curves carry a
// native-encoded point with different hashing conventions.
type Category int

const (
	CategoryECDSA Category = iota
	CategoryEdDSA
)

// Info is everything the core needs to know about a named curve in order to
// generate a key on it or to interpret one read off the wire.
type Info struct {
	Name CurveName

	// OID is the DER-encoded object identifier carried in the public-key
	// packet's parameter vector for ECDSA/ECDH/EdDSA keys.
	OID []byte

	// Category says whether this curve is used with ECDSA/ECDH framing or
	// EdDSA framing.
	Category Category

	// PreferredHash is the hash algorithm this curve's signatures should
	// use absent any stronger preference from the signing key's self
	// certification (spec 4.10, getPreferredHashAlgo).
	PreferredHash enums.HashAlgorithm

	// PreferredSymmetric is the symmetric cipher this curve's ECDH KDF
	// should wrap session keys with.
	PreferredSymmetric enums.SymmetricAlgorithm

	// PayloadSize is the size, in bytes, of the curve's scalar/point
	// encoding (used to size MPI/native buffers).
	PayloadSize int

	// NativeAccelerated hints that a WebCrypto/OS-crypto back end can
	// perform this curve's operations without falling back to software;
	// purely advisory, consumed only by Config.UseNative-aware callers.
	NativeAccelerated bool
}

type CurveName = enums.CurveName

var registry = []Info{
	{
		Name:                enums.CurveP256,
		OID:                 []byte{0x2A, 0x86, 0x48, 0xCE, 0x3D, 0x03, 0x01, 0x07},
		Category:            CategoryECDSA,
		PreferredHash:       enums.SHA256,
		PreferredSymmetric:  enums.AES128,
		PayloadSize:         32,
		NativeAccelerated:   true,
	},
	{
		Name:                enums.CurveP384,
		OID:                 []byte{0x2B, 0x81, 0x04, 0x00, 0x22},
		Category:            CategoryECDSA,
		PreferredHash:       enums.SHA384,
		PreferredSymmetric:  enums.AES192,
		PayloadSize:         48,
		NativeAccelerated:   true,
	},
	{
		Name:                enums.CurveP521,
		OID:                 []byte{0x2B, 0x81, 0x04, 0x00, 0x23},
		Category:            CategoryECDSA,
		PreferredHash:       enums.SHA512,
		PreferredSymmetric:  enums.AES256,
		PayloadSize:         66,
		NativeAccelerated:   true,
	},
	{
		Name:                enums.CurveSecp256k1,
		OID:                 []byte{0x2B, 0x81, 0x04, 0x00, 0x0A},
		Category:            CategoryECDSA,
		PreferredHash:       enums.SHA256,
		PreferredSymmetric:  enums.AES128,
		PayloadSize:         32,
		NativeAccelerated:   false,
	},
	{
		Name:                enums.CurveCurve25519,
		OID:                 []byte{0x2B, 0x06, 0x01, 0x04, 0x01, 0x97, 0x55, 0x01, 0x05, 0x01},
		Category:            CategoryECDSA, // ECDH framing, not EdDSA
		PreferredHash:       enums.SHA256,
		PreferredSymmetric:  enums.AES128,
		PayloadSize:         32,
		NativeAccelerated:   true,
	},
	{
		Name:                enums.CurveEd25519,
		OID:                 []byte{0x2B, 0x06, 0x01, 0x04, 0x01, 0xDA, 0x47, 0x0F, 0x01},
		Category:            CategoryEdDSA,
		PreferredHash:       enums.SHA256,
		PreferredSymmetric:  enums.AES128,
		PayloadSize:         32,
		NativeAccelerated:   true,
	},
	{
		Name:                enums.CurveBrainpoolP256r1,
		OID:                 []byte{0x2B, 0x24, 0x03, 0x03, 0x02, 0x08, 0x01, 0x01, 0x07},
		Category:            CategoryECDSA,
		PreferredHash:       enums.SHA256,
		PreferredSymmetric:  enums.AES128,
		PayloadSize:         32,
		NativeAccelerated:   false,
	},
	{
		Name:                enums.CurveBrainpoolP384r1,
		OID:                 []byte{0x2B, 0x24, 0x03, 0x03, 0x02, 0x08, 0x01, 0x01, 0x0B},
		Category:            CategoryECDSA,
		PreferredHash:       enums.SHA384,
		PreferredSymmetric:  enums.AES192,
		PayloadSize:         48,
		NativeAccelerated:   false,
	},
	{
		Name:                enums.CurveBrainpoolP512r1,
		OID:                 []byte{0x2B, 0x24, 0x03, 0x03, 0x02, 0x08, 0x01, 0x01, 0x0D},
		Category:            CategoryECDSA,
		PreferredHash:       enums.SHA512,
		PreferredSymmetric:  enums.AES256,
		PayloadSize:         64,
		NativeAccelerated:   false,
	},
}

// Find resolves a curve by its symbolic name. Returns keyerrors.UnknownCurveError
// if name is not in the registry.
func Find(name CurveName) (*Info, error) {
	for i := range registry {
		if registry[i].Name == name {
			return &registry[i], nil
		}
	}
	return nil, keyerrors.UnknownCurveError(string(name))
}

// FindByOID resolves a curve by its DER-encoded OID bytes, as read off a
// public-key packet's parameter vector. Returns keyerrors.UnknownCurveError
// if no curve in the registry carries this OID.
func FindByOID(oid []byte) (*Info, error) {
	for i := range registry {
		if bytes.Equal(registry[i].OID, oid) {
			return &registry[i], nil
		}
	}
	return nil, keyerrors.UnknownCurveError("oid")
}

// EdDSACounterpart returns the curve that must be used for the other half
// of an EdDSA primary / ECDH subkey pair: ed25519 pairs with curve25519 and
// vice versa (spec 4.9 step 3). Returns keyerrors.UnknownCurveError for any
// other curve, since only this one substitution is defined.
func EdDSACounterpart(name CurveName) (CurveName, error) {
	switch name {
	case enums.CurveEd25519:
		return enums.CurveCurve25519, nil
	case enums.CurveCurve25519:
		return enums.CurveEd25519, nil
	default:
		return "", keyerrors.UnknownCurveError(string(name))
	}
}

// ImpliesEdDSA reports whether generating a primary key on this curve
// should select the EdDSA algorithm rather than ECDSA (spec 4.9 step 1).
func ImpliesEdDSA(name CurveName) bool {
	return name == enums.CurveEd25519 || name == enums.CurveCurve25519
}
