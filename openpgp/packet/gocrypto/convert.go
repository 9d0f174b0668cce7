// Package gocrypto is the one concrete implementation of the
// openpgp/packet capability interfaces this module ships. It adapts
// ProtonMail/go-crypto's own openpgp/packet.PublicKey, packet.PrivateKey
// and packet.Signature types — THE CORE's non-goals (MPI arithmetic, the
// symmetric cipher suite, the wire codec, the asymmetric primitives, the
// random-byte source) are satisfied by calling straight through to
// go-crypto rather than reimplementing any of it.
//
// Raw keypair generation is the one place this adapter has to reach past
// go-crypto's packet-level API: the curve math lives in
// openpgp/internal/ecc, which Go's internal-package rule keeps outside
// this module's reach. generatePrimary/generateSubkey below route around
// that by driving go-crypto's own openpgp/v2 entity constructors — which
// do have access to internal/ecc — and lifting the freshly generated
// packet.PrivateKey back out, discarding the throwaway entity scaffolding
// go-crypto built around it. The engine's own generator (generate.go)
// supplies the self-certifications and binding signatures itself; only
// the bare keypair comes from this detour.
package gocrypto

import (
	"crypto"
	"io"

	gcpacket "github.com/ProtonMail/go-crypto/openpgp/packet"
	gcv2 "github.com/ProtonMail/go-crypto/openpgp/v2"

	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/keyerrors"
)

func toGCAlgo(a enums.PublicKeyAlgorithm) gcpacket.PublicKeyAlgorithm {
	return gcpacket.PublicKeyAlgorithm(a)
}

func fromGCAlgo(a gcpacket.PublicKeyAlgorithm) enums.PublicKeyAlgorithm {
	return enums.PublicKeyAlgorithm(a)
}

func toGCHash(h enums.HashAlgorithm) crypto.Hash {
	switch h {
	case enums.SHA1:
		return crypto.SHA1
	case enums.SHA224:
		return crypto.SHA224
	case enums.SHA384:
		return crypto.SHA384
	case enums.SHA512:
		return crypto.SHA512
	default:
		return crypto.SHA256
	}
}

func toGCCipher(s enums.SymmetricAlgorithm) gcpacket.CipherFunction {
	return gcpacket.CipherFunction(s)
}

// genCurveName maps this module's curve names to the generation-name
// strings go-crypto's packet.Config.CurveName() accepts (the same strings
// key_generation.go in the teacher passes through to the internal ecc
// lookup tables).
func genCurveName(name enums.CurveName) gcpacket.Curve {
	switch name {
	case enums.CurveP256:
		return gcpacket.CurveNistP256
	case enums.CurveP384:
		return gcpacket.CurveNistP384
	case enums.CurveP521:
		return gcpacket.CurveNistP521
	case enums.CurveSecp256k1:
		return gcpacket.CurveSecP256k1
	case enums.CurveEd25519:
		return gcpacket.Curve25519 // legacy EdDSA shares the Curve25519 generation name
	case enums.CurveCurve25519:
		return gcpacket.Curve25519
	case enums.CurveBrainpoolP256r1:
		return gcpacket.CurveBrainpoolP256
	case enums.CurveBrainpoolP384r1:
		return gcpacket.CurveBrainpoolP384
	case enums.CurveBrainpoolP512r1:
		return gcpacket.CurveBrainpoolP512
	default:
		return gcpacket.Curve(name)
	}
}

// buildConfig assembles the go-crypto packet.Config that drives raw key
// generation for a single packet: the algorithm, curve and bit-size the
// caller asked for, plus the shared random source.
func buildConfig(rand io.Reader, algo enums.PublicKeyAlgorithm, numBits int, curveName enums.CurveName) *gcpacket.Config {
	cfg := &gcpacket.Config{
		Algorithm: toGCAlgo(algo),
		Rand:      rand,
	}
	if numBits > 0 {
		cfg.RSABits = numBits
	}
	if curveName != "" {
		c := genCurveName(curveName)
		cfg.Curve = c
	}
	return cfg
}

// generatePrimary asks go-crypto's entity constructor for a fresh
// primary signing keypair of the given algorithm/curve/bits, and returns
// the bare *packet.PrivateKey, discarding the rest of the throwaway
// entity go-crypto built to hold it.
func generatePrimary(rand io.Reader, algo enums.PublicKeyAlgorithm, numBits int, curveName enums.CurveName) (*gcpacket.PrivateKey, error) {
	cfg := buildConfig(rand, algo, numBits, curveName)
	e, err := gcv2.NewEntity("generated", "", "generated@local.invalid", cfg)
	if err != nil {
		return nil, err
	}
	return e.PrivateKey, nil
}

// generateSubkey asks go-crypto for a fresh encryption-subkey keypair of
// the given algorithm/curve/bits. It has to build a throwaway primary
// first, since go-crypto only exposes subkey generation as an Entity
// method that signs a binding with the entity's own primary key; the
// binding signature is discarded, the raw subkey keypair is kept.
func generateSubkey(rand io.Reader, algo enums.PublicKeyAlgorithm, numBits int, curveName enums.CurveName) (*gcpacket.PrivateKey, error) {
	scaffoldCfg := buildConfig(rand, enums.EdDSA, 0, enums.CurveEd25519)
	if algo == enums.RSAEncryptSign {
		scaffoldCfg = buildConfig(rand, enums.RSAEncryptSign, 2048, "")
	}
	e, err := gcv2.NewEntity("scaffold", "", "scaffold@local.invalid", scaffoldCfg)
	if err != nil {
		return nil, err
	}
	subCfg := buildConfig(rand, algo, numBits, curveName)
	if err := e.AddEncryptionSubkey(subCfg); err != nil {
		return nil, err
	}
	if len(e.Subkeys) == 0 {
		return nil, keyerrors.UnknownAlgorithmError(algo.Name())
	}
	return e.Subkeys[len(e.Subkeys)-1].PrivateKey, nil
}
