package gocrypto

import (
	"bytes"
	"io"
	"sync/atomic"
	"time"

	gcpacket "github.com/ProtonMail/go-crypto/openpgp/packet"

	"github.com/sanjanarajan/openpgpjs/openpgp/config"
	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/keyerrors"
	"github.com/sanjanarajan/openpgpjs/openpgp/packet"
)

// SignatureAdapter wraps a go-crypto *packet.Signature as a
// packet.SignaturePacket. The monotonic verified/revoked caches (spec
// §5) live here rather than on go-crypto's own type, since go-crypto has
// no equivalent field; atomic.Bool gives the false->true-only,
// racy-write-tolerant semantics the core relies on without a mutex.
type SignatureAdapter struct {
	sig      *gcpacket.Signature
	sigType  enums.SignatureType
	verified atomic.Bool
	revoked  atomic.Bool
}

func newSignatureAdapter(sigType enums.SignatureType) *SignatureAdapter {
	return &SignatureAdapter{
		sig:     &gcpacket.Signature{SigType: gcpacket.SignatureType(sigType)},
		sigType: sigType,
	}
}

// NewSignatureAdapter wraps an already-parsed go-crypto signature.
func NewSignatureAdapter(sig *gcpacket.Signature) *SignatureAdapter {
	return &SignatureAdapter{sig: sig, sigType: enums.SignatureType(sig.SigType)}
}

func (s *SignatureAdapter) SignatureType() enums.SignatureType { return s.sigType }

// Configure fills in the subpacket fields the generator sets on a fresh
// signature before calling Sign (spec 4.9 step 4). Each list/flag maps
// directly onto go-crypto's own packet.Signature fields.
func (s *SignatureAdapter) Configure(t packet.SignatureTemplate) {
	s.sig.FlagsValid = true
	s.sig.FlagCertify = t.KeyFlags.Has(enums.FlagCertify)
	s.sig.FlagSign = t.KeyFlags.Has(enums.FlagSign)
	s.sig.FlagEncryptCommunications = t.KeyFlags.Has(enums.FlagEncryptCommunications)
	s.sig.FlagEncryptStorage = t.KeyFlags.Has(enums.FlagEncryptStorage)
	s.sig.FlagSplitKey = t.KeyFlags.Has(enums.FlagSplit)
	s.sig.FlagAuthenticate = t.KeyFlags.Has(enums.FlagAuthenticate)
	s.sig.FlagGroupKey = t.KeyFlags.Has(enums.FlagGroupKey)

	if len(t.PreferredHashAlgorithms) > 0 {
		hashes := make([]uint8, len(t.PreferredHashAlgorithms))
		for i, h := range t.PreferredHashAlgorithms {
			hashes[i] = uint8(h)
		}
		s.sig.PreferredHash = hashes
	}
	if len(t.PreferredSymmetricAlgorithms) > 0 {
		ciphers := make([]uint8, len(t.PreferredSymmetricAlgorithms))
		for i, c := range t.PreferredSymmetricAlgorithms {
			ciphers[i] = uint8(c)
		}
		s.sig.PreferredSymmetric = ciphers
	}
	if len(t.PreferredCompressionAlgorithms) > 0 {
		comp := make([]uint8, len(t.PreferredCompressionAlgorithms))
		for i, c := range t.PreferredCompressionAlgorithms {
			comp[i] = uint8(c)
		}
		s.sig.PreferredCompression = comp
	}
	if len(t.Features) > 0 {
		f := t.Features[0]
		s.sig.SEIPDv1 = f&0x01 != 0
		s.sig.SEIPDv2 = f&0x08 != 0
	}

	if t.IsPrimaryUserID {
		primary := true
		s.sig.IsPrimaryId = &primary
	}

	if t.KeyNeverExpires {
		zero := uint32(0)
		s.sig.KeyLifetimeSecs = &zero
	} else if t.KeyExpirationSeconds > 0 {
		secs := t.KeyExpirationSeconds
		s.sig.KeyLifetimeSecs = &secs
	}
}

func (s *SignatureAdapter) IssuerKeyID() packet.KeyID {
	if s.sig.IssuerKeyId == nil {
		return packet.KeyID{}
	}
	return keyIDFromUint64(*s.sig.IssuerKeyId)
}

func (s *SignatureAdapter) Created() time.Time { return s.sig.CreationTime }

func (s *SignatureAdapter) KeyFlags() (enums.KeyFlag, bool) {
	if !s.sig.FlagsValid {
		return 0, false
	}
	var f enums.KeyFlag
	if s.sig.FlagCertify {
		f |= enums.FlagCertify
	}
	if s.sig.FlagSign {
		f |= enums.FlagSign
	}
	if s.sig.FlagEncryptCommunications {
		f |= enums.FlagEncryptCommunications
	}
	if s.sig.FlagEncryptStorage {
		f |= enums.FlagEncryptStorage
	}
	if s.sig.FlagSplitKey {
		f |= enums.FlagSplit
	}
	if s.sig.FlagAuthenticate {
		f |= enums.FlagAuthenticate
	}
	if s.sig.FlagGroupKey {
		f |= enums.FlagGroupKey
	}
	return f, true
}

func (s *SignatureAdapter) PreferredHashAlgorithms() []enums.HashAlgorithm {
	out := make([]enums.HashAlgorithm, len(s.sig.PreferredHash))
	for i, h := range s.sig.PreferredHash {
		out[i] = enums.HashAlgorithm(h)
	}
	return out
}

func (s *SignatureAdapter) PreferredSymmetricAlgorithms() []enums.SymmetricAlgorithm {
	out := make([]enums.SymmetricAlgorithm, len(s.sig.PreferredSymmetric))
	for i, c := range s.sig.PreferredSymmetric {
		out[i] = enums.SymmetricAlgorithm(c)
	}
	return out
}

func (s *SignatureAdapter) PreferredCompressionAlgorithms() []enums.CompressionAlgorithm {
	out := make([]enums.CompressionAlgorithm, len(s.sig.PreferredCompression))
	for i, c := range s.sig.PreferredCompression {
		out[i] = enums.CompressionAlgorithm(c)
	}
	return out
}

func (s *SignatureAdapter) Features() []byte {
	if !s.sig.SEIPDv1 && !s.sig.SEIPDv2 {
		return nil
	}
	var f byte
	if s.sig.SEIPDv1 {
		f |= 0x01
	}
	if s.sig.SEIPDv2 {
		f |= 0x08
	}
	return []byte{f}
}

func (s *SignatureAdapter) PrimaryUserIDWeight() (int, bool) {
	if s.sig.IsPrimaryId == nil {
		return 0, false
	}
	if *s.sig.IsPrimaryId {
		return 1, true
	}
	return 0, true
}

func (s *SignatureAdapter) KeyExpirationSeconds() (uint32, bool) {
	if s.sig.KeyLifetimeSecs == nil {
		return 0, false
	}
	return *s.sig.KeyLifetimeSecs, true
}

func (s *SignatureAdapter) KeyNeverExpires() bool {
	return s.sig.KeyLifetimeSecs != nil && *s.sig.KeyLifetimeSecs == 0
}

func (s *SignatureAdapter) Verified() bool { return s.verified.Load() }

func (s *SignatureAdapter) SetVerified(v bool) {
	if v {
		s.verified.Store(true)
	}
}

func (s *SignatureAdapter) Revoked() bool { return s.revoked.Load() }

func (s *SignatureAdapter) SetRevoked(v bool) {
	if v {
		s.revoked.Store(true)
	}
}

func (s *SignatureAdapter) Raw() []byte {
	var buf bytes.Buffer
	if err := s.sig.Serialize(&buf); err != nil {
		return nil
	}
	return buf.Bytes()
}

func publicKeyOf(k packet.KeyPacket) *gcpacket.PublicKey {
	switch v := k.(type) {
	case *PublicKeyPacket:
		return v.pk
	case *PrivateKeyPacket:
		if v.priv == nil {
			return nil
		}
		return &v.priv.PublicKey
	default:
		return nil
	}
}

func privateKeyOf(k packet.KeyPacket) *gcpacket.PrivateKey {
	v, ok := k.(*PrivateKeyPacket)
	if !ok {
		return nil
	}
	return v.priv
}

// Sign computes the signature per RFC 4880 section 5.2.4, dispatching to
// the go-crypto Signature method matching this signature's type and the
// shape of dataToSign: a self-certification over a user ID, a subkey
// binding, a direct key signature, or one of the two revocation
// variants.
func (s *SignatureAdapter) Sign(rand io.Reader, signingKey packet.KeyPacket, dataToSign packet.BoundData, cfg *config.Config) error {
	signer := privateKeyOf(signingKey)
	if signer == nil {
		return keyerrors.NotDecryptedError("signing key has no private material")
	}
	if signer.Encrypted {
		return keyerrors.NotDecryptedError(signingKey.KeyID().Hex())
	}
	cfg = config.OrDefault(cfg)
	gcCfg := &gcpacket.Config{
		DefaultHash:   toGCHash(cfg.PreferredHashAlgorithm),
		DefaultCipher: toGCCipher(cfg.EncryptionCipher),
		Rand:          rand,
	}

	switch s.sigType {
	case enums.SigKeyRevocation:
		target := publicKeyOf(dataToSign.Key)
		return s.sig.RevokeKey(target, signer, gcCfg)
	case enums.SigSubkeyRevocation:
		target := publicKeyOf(dataToSign.BindTarget)
		return s.sig.RevokeSubkey(target, signer, gcCfg)
	}
	switch {
	case dataToSign.HasUserID:
		target := publicKeyOf(dataToSign.Key)
		return s.sig.SignUserId(dataToSign.UserID, target, signer, gcCfg)
	case dataToSign.HasBindTarget:
		target := publicKeyOf(dataToSign.BindTarget)
		return s.sig.SignKey(target, signer, gcCfg)
	default:
		target := publicKeyOf(dataToSign.Key)
		return s.sig.SignDirectKeyBinding(target, signer, gcCfg)
	}
}

// Verify checks the signature against verifyingKey's public material and
// caches success via SetVerified (spec §5).
func (s *SignatureAdapter) Verify(verifyingKey packet.KeyPacket, dataToVerify packet.BoundData) error {
	verifier := publicKeyOf(verifyingKey)
	if verifier == nil {
		return keyerrors.InvalidKeyError("verifying key has no public material")
	}

	var err error
	switch s.sigType {
	case enums.SigKeyRevocation:
		err = verifier.VerifyRevocationSignature(s.sig)
	case enums.SigSubkeyRevocation:
		err = verifier.VerifySubkeyRevocationSignature(s.sig, publicKeyOf(dataToVerify.BindTarget))
	default:
		switch {
		case dataToVerify.HasUserID:
			err = verifier.VerifyUserIdSignature(dataToVerify.UserID, publicKeyOf(dataToVerify.Key), s.sig)
		case dataToVerify.HasBindTarget:
			err = verifier.VerifyKeySignature(publicKeyOf(dataToVerify.BindTarget), s.sig)
		default:
			err = verifier.VerifyDirectKeySignature(s.sig)
		}
	}
	if err != nil {
		return err
	}
	s.SetVerified(true)
	return nil
}

// IsExpired reports whether this signature's own SigLifetimeSecs window
// has elapsed at now; a zero now disables the check.
func (s *SignatureAdapter) IsExpired(now time.Time) bool {
	if now.IsZero() || s.sig.SigLifetimeSecs == nil || *s.sig.SigLifetimeSecs == 0 {
		return false
	}
	expiry := s.sig.CreationTime.Add(time.Duration(*s.sig.SigLifetimeSecs) * time.Second)
	return now.After(expiry)
}
