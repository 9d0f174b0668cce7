// Package algorithm is the dynamic parameter-shape dispatch table of spec
// 4.10: for each public-key algorithm, the ordered list of parameter
// "slots" making up its public-key portion, its private-key portion, and
// its encrypted-session-key portion. It is grounded on the parsing switch
// statements in ProtonMail/go-crypto's openpgp/packet/public_key.go (public
// parameters) and openpgp/packet/encrypted_key.go (session-key parameters):
// the slot shapes below are exactly the fields those switches read off the
// wire for each algorithm, expressed as data instead of as parsing code.
package algorithm

import (
	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/keyerrors"
)

// Kind names the wire encoding of one parameter slot.
type Kind int

const (
	// KindMPI is an OpenPGP multi-precision integer: a 2-byte bit count
	// followed by that many bits of big-endian data.
	KindMPI Kind = iota
	// KindOID is a curve object identifier: a 1-byte length followed by
	// that many bytes of DER-encoded OID.
	KindOID
	// KindKDFParams is the ECDH key-derivation parameter block {hash id,
	// cipher id} from RFC 6637 section 9.
	KindKDFParams
	// KindECDHSymKey is the wrapped session-key field of an ECDH
	// encrypted-session-key packet: a 1-byte length followed by the
	// AES-key-wrapped symmetric key.
	KindECDHSymKey
)

// Slot names and types one parameter in an algorithm's parameter vector.
type Slot struct {
	Name string
	Kind Kind
}

type shapeSet struct {
	public     []Slot
	private    []Slot
	sessionKey []Slot
}

var shapes = map[enums.PublicKeyAlgorithm]shapeSet{
	enums.RSAEncryptSign: {
		public:     []Slot{{"n", KindMPI}, {"e", KindMPI}},
		private:    []Slot{{"d", KindMPI}, {"p", KindMPI}, {"q", KindMPI}, {"u", KindMPI}},
		sessionKey: []Slot{{"c", KindMPI}},
	},
	enums.RSAEncryptOnly: {
		public:     []Slot{{"n", KindMPI}, {"e", KindMPI}},
		private:    []Slot{{"d", KindMPI}, {"p", KindMPI}, {"q", KindMPI}, {"u", KindMPI}},
		sessionKey: []Slot{{"c", KindMPI}},
	},
	enums.RSASignOnly: {
		public:  []Slot{{"n", KindMPI}, {"e", KindMPI}},
		private: []Slot{{"d", KindMPI}, {"p", KindMPI}, {"q", KindMPI}, {"u", KindMPI}},
	},
	enums.ElGamal: {
		public:     []Slot{{"p", KindMPI}, {"g", KindMPI}, {"y", KindMPI}},
		private:    []Slot{{"x", KindMPI}},
		sessionKey: []Slot{{"c1", KindMPI}, {"c2", KindMPI}},
	},
	enums.DSA: {
		public:  []Slot{{"p", KindMPI}, {"q", KindMPI}, {"g", KindMPI}, {"y", KindMPI}},
		private: []Slot{{"x", KindMPI}},
	},
	enums.ECDSA: {
		public:  []Slot{{"oid", KindOID}, {"Q", KindMPI}},
		private: []Slot{{"d", KindMPI}},
	},
	enums.EdDSA: {
		public:  []Slot{{"oid", KindOID}, {"Q", KindMPI}},
		private: []Slot{{"d", KindMPI}},
	},
	enums.ECDH: {
		public:     []Slot{{"oid", KindOID}, {"Q", KindMPI}, {"kdf", KindKDFParams}},
		private:    []Slot{{"d", KindMPI}},
		sessionKey: []Slot{{"V", KindMPI}, {"C", KindECDHSymKey}},
	},
}

// PublicParams returns the ordered parameter slots making up algo's
// public-key portion.
func PublicParams(algo enums.PublicKeyAlgorithm) ([]Slot, error) {
	s, ok := shapes[algo]
	if !ok {
		return nil, keyerrors.UnknownAlgorithmError(algo.Name())
	}
	return s.public, nil
}

// PrivateParams returns the ordered parameter slots making up algo's
// secret-key portion. Algorithms with no secret-key role (none currently)
// would return an empty slice.
func PrivateParams(algo enums.PublicKeyAlgorithm) ([]Slot, error) {
	s, ok := shapes[algo]
	if !ok {
		return nil, keyerrors.UnknownAlgorithmError(algo.Name())
	}
	return s.private, nil
}

// SessionKeyParams returns the ordered parameter slots making up an
// encrypted session key for algo. DSA, RSA-sign-only, ECDSA and EdDSA have
// no session-key shape since they cannot encrypt; the returned slice is
// nil and ok is false.
func SessionKeyParams(algo enums.PublicKeyAlgorithm) (slots []Slot, ok bool) {
	s, present := shapes[algo]
	if !present || len(s.sessionKey) == 0 {
		return nil, false
	}
	return s.sessionKey, true
}

// Known reports whether algo has an entry in the dispatch table at all.
func Known(algo enums.PublicKeyAlgorithm) bool {
	_, ok := shapes[algo]
	return ok
}
