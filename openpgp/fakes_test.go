package openpgp

import (
	"io"
	"time"

	"github.com/sanjanarajan/openpgpjs/openpgp/config"
	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/packet"
)

// fakeKeyPacket is a minimal packet.KeyPacket double used across the
// engine's tests. It carries no real cryptographic material: Generate only
// marks the packet decrypted and every signature created against it verifies purely by
// fakeSignature's own bookkeeping, never by an actual asymmetric check.
type fakeKeyPacket struct {
	id          byte // used to build a distinguishable KeyID/Fingerprint
	version     int
	algo        enums.PublicKeyAlgorithm
	created     time.Time
	subkey      bool
	private     bool
	decrypted   bool
	expireDaysV3 uint16
	curveName   enums.CurveName
}

func newFakePrimary(id byte, created time.Time) *fakeKeyPacket {
	return &fakeKeyPacket{id: id, version: 4, algo: enums.RSAEncryptSign, created: created, private: true, decrypted: true}
}

func newFakeSubkey(id byte, created time.Time, algo enums.PublicKeyAlgorithm) *fakeKeyPacket {
	return &fakeKeyPacket{id: id, version: 4, algo: algo, created: created, subkey: true, private: true, decrypted: true}
}

func (k *fakeKeyPacket) Tag() enums.PacketTag {
	switch {
	case k.subkey && k.private:
		return enums.TagSecretSubkey
	case k.subkey:
		return enums.TagPublicSubkey
	case k.private:
		return enums.TagSecretKey
	default:
		return enums.TagPublicKey
	}
}

func (k *fakeKeyPacket) Version() int                       { return k.version }
func (k *fakeKeyPacket) Algorithm() enums.PublicKeyAlgorithm { return k.algo }
func (k *fakeKeyPacket) AlgorithmName() string               { return k.algo.Name() }
func (k *fakeKeyPacket) Created() time.Time                 { return k.created }
func (k *fakeKeyPacket) IsSubkey() bool                      { return k.subkey }
func (k *fakeKeyPacket) IsPrivate() bool                     { return k.private }
func (k *fakeKeyPacket) IsDecrypted() bool                   { return !k.private || k.decrypted }

func (k *fakeKeyPacket) KeyID() packet.KeyID {
	var id packet.KeyID
	id[7] = k.id
	return id
}

func (k *fakeKeyPacket) Fingerprint() packet.Fingerprint {
	fp := make(packet.Fingerprint, 20)
	fp[19] = k.id
	return fp
}

func (k *fakeKeyPacket) ExpirationTimeV3() uint16 { return k.expireDaysV3 }

func (k *fakeKeyPacket) Curve() (enums.CurveName, error) {
	if k.curveName == "" {
		return "", nil
	}
	return k.curveName, nil
}

func (k *fakeKeyPacket) Params() []packet.ParamValue { return nil }

func (k *fakeKeyPacket) WritePublicKey(w io.Writer) error {
	_, err := w.Write([]byte{k.id})
	return err
}

func (k *fakeKeyPacket) Generate(rand io.Reader, numBits int, curveName enums.CurveName) error {
	k.decrypted = true
	return nil
}

func (k *fakeKeyPacket) Encrypt(passphrase []byte, cfg *config.Config) error {
	k.decrypted = len(passphrase) == 0
	return nil
}

func (k *fakeKeyPacket) Decrypt(passphrase []byte) error {
	k.decrypted = true
	return nil
}

func (k *fakeKeyPacket) ClearPrivateParams() { k.decrypted = false }

// fakeSignature is a packet.SignaturePacket double whose Sign/Verify are
// pure bookkeeping: Sign records the issuer and marks itself verified;
// Verify succeeds unless forceInvalid is set, so tests can construct
// signatures already "signed" without needing a real private key.
type fakeSignature struct {
	sigType    enums.SignatureType
	issuer     packet.KeyID
	created    time.Time
	flags      enums.KeyFlag
	flagsSet   bool
	hashPrefs  []enums.HashAlgorithm
	symPrefs   []enums.SymmetricAlgorithm
	compPrefs  []enums.CompressionAlgorithm
	primaryWeight int
	primarySet    bool
	expSeconds    uint32
	expSet        bool
	neverExpires  bool
	sigExpired    bool
	forceInvalid  bool
	revoked       bool
	verified      bool
	raw           []byte
}

func newFakeSelfCert(issuer packet.KeyID, created time.Time) *fakeSignature {
	raw := append(append([]byte{}, issuer[:]...), byte(created.Unix()))
	return &fakeSignature{sigType: enums.SigGenericCert, issuer: issuer, created: created, raw: raw}
}

func (s *fakeSignature) SignatureType() enums.SignatureType { return s.sigType }
func (s *fakeSignature) IssuerKeyID() packet.KeyID           { return s.issuer }
func (s *fakeSignature) Created() time.Time                 { return s.created }

func (s *fakeSignature) Configure(t packet.SignatureTemplate) {
	s.flags, s.flagsSet = t.KeyFlags, true
	s.hashPrefs = t.PreferredHashAlgorithms
	s.symPrefs = t.PreferredSymmetricAlgorithms
	s.compPrefs = t.PreferredCompressionAlgorithms
	s.primarySet = true
	s.primaryWeight = 0
	if t.IsPrimaryUserID {
		s.primaryWeight = 1
	}
	s.expSeconds, s.expSet = t.KeyExpirationSeconds, t.KeyExpirationSeconds > 0
	s.neverExpires = t.KeyNeverExpires
}

func (s *fakeSignature) KeyFlags() (enums.KeyFlag, bool) { return s.flags, s.flagsSet }

func (s *fakeSignature) PreferredHashAlgorithms() []enums.HashAlgorithm { return s.hashPrefs }

func (s *fakeSignature) PreferredSymmetricAlgorithms() []enums.SymmetricAlgorithm { return s.symPrefs }

func (s *fakeSignature) PreferredCompressionAlgorithms() []enums.CompressionAlgorithm {
	return s.compPrefs
}

func (s *fakeSignature) Features() []byte { return nil }

func (s *fakeSignature) PrimaryUserIDWeight() (int, bool) { return s.primaryWeight, s.primarySet }

func (s *fakeSignature) KeyExpirationSeconds() (uint32, bool) { return s.expSeconds, s.expSet }

func (s *fakeSignature) KeyNeverExpires() bool { return s.neverExpires }

func (s *fakeSignature) Verified() bool     { return s.verified }
func (s *fakeSignature) SetVerified(v bool) { s.verified = s.verified || v }
func (s *fakeSignature) Revoked() bool      { return s.revoked }
func (s *fakeSignature) SetRevoked(v bool)  { s.revoked = s.revoked || v }

func (s *fakeSignature) Raw() []byte { return s.raw }

func (s *fakeSignature) Sign(rand io.Reader, signingKey packet.KeyPacket, dataToSign packet.BoundData, cfg *config.Config) error {
	s.issuer = signingKey.KeyID()
	s.verified = true
	return nil
}

func (s *fakeSignature) Verify(verifyingKey packet.KeyPacket, dataToVerify packet.BoundData) error {
	if s.forceInvalid {
		return errFakeVerifyFailed
	}
	s.verified = true
	return nil
}

func (s *fakeSignature) IsExpired(now time.Time) bool {
	return s.sigExpired && !now.IsZero()
}

type fakeError string

func (e fakeError) Error() string { return string(e) }

const errFakeVerifyFailed = fakeError("fake: signature does not verify")
