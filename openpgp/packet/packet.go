// Package packet declares THE CORE's required external interfaces (spec
// §6): the capability sets that a concrete packet implementation — key
// packets, signature packets, the packet list, the random-byte source —
// must provide. THE CORE never implements MPI arithmetic, the symmetric
// cipher suite, armor framing, the wire codec, or an asymmetric primitive;
// it only calls through these interfaces. The gocrypto subpackage is the
// one concrete implementation this module ships, adapting
// ProtonMail/go-crypto's packet.PublicKey/PrivateKey/Signature to satisfy
// them; a caller is free to supply any other implementation (a WASM/native
// crypto bridge, a hardware-token-backed one, …) since the engine package
// only ever imports this interface package, never gocrypto directly.
package packet

import (
	"io"
	"time"

	"github.com/sanjanarajan/openpgpjs/openpgp/config"
	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
)

// KeyPacket is the capability set THE CORE requires of a primary-key or
// subkey packet, public or private (spec §6). The four packet-tag
// variants (PublicKey, SecretKey, PublicSubkey, SecretSubkey) are
// addressed through IsSubkey/IsPrivate rather than through separate
// interfaces or types, following the capability-set design of spec §9.
type KeyPacket interface {
	Tag() enums.PacketTag
	Version() int
	Algorithm() enums.PublicKeyAlgorithm
	AlgorithmName() string
	Created() time.Time
	IsSubkey() bool

	// IsPrivate reports whether this packet carries (possibly encrypted)
	// secret material at all, independent of whether it is currently
	// decrypted.
	IsPrivate() bool

	// IsDecrypted reports whether a private packet's secret material is
	// presently usable for signing/decryption. Always true for a public
	// packet.
	IsDecrypted() bool

	KeyID() KeyID
	Fingerprint() Fingerprint

	// ExpirationTimeV3 returns the v3-only expiration-in-days field, or 0
	// if this is not a v3 key or it never expires. v4+ keys carry their
	// expiration on the governing signature instead (spec 4.4).
	ExpirationTimeV3() uint16

	// Curve returns the named curve this key uses, for ECDSA/ECDH/EdDSA
	// algorithms; keyerrors.UnknownCurveError for any other algorithm.
	Curve() (enums.CurveName, error)

	// Params returns the ordered parameter vector (MPIs, OID, KDF
	// parameters) making up this packet's public (and, if decrypted,
	// private) material, for algorithm-table validation (spec
	// property 9).
	Params() []ParamValue

	// WritePublicKey serializes this packet with all secret material
	// stripped, per RFC 4880 section 5.5.2.
	WritePublicKey(w io.Writer) error

	// Generate replaces this packet's material with a freshly generated
	// keypair for the receiver's algorithm. numBits is consulted for RSA;
	// curveName for ECDSA/ECDH/EdDSA.
	Generate(rand io.Reader, numBits int, curveName enums.CurveName) error

	// Encrypt wraps the private parameters under the given passphrase.
	// A no-op returning keyerrors.NothingToEncryptError on a public
	// packet.
	Encrypt(passphrase []byte, cfg *config.Config) error

	// Decrypt unwraps the private parameters under the given passphrase.
	// Returns keyerrors.NothingToDecryptError on a public packet.
	Decrypt(passphrase []byte) error

	// ClearPrivateParams zeroes the in-memory private parameters without
	// re-encrypting them, used by the generator's "unlocked=false" path
	// once the passphrase wrap has already happened.
	ClearPrivateParams()
}

// ParamValue is one entry of a KeyPacket's parameter vector, tagged with
// the algorithm.Slot name it fills — used to check a generated key's
// vector shape against the algorithm table (spec property 9) without the
// core needing to know each algorithm's MPI layout itself.
type ParamValue struct {
	Name string
	Data []byte
}

// BoundData names what a signature is over — the four combinations spec
// 4.2 through 4.6 verify against: a user-ID binding, a subkey binding, a
// bare key signature, or a revocation of any of those. At most one of
// HasUserID/HasBindTarget is set; a signature with neither is a direct
// key signature or a key revocation.
type BoundData struct {
	Key         KeyPacket
	UserID      string
	HasUserID   bool
	BindTarget  KeyPacket
	HasBindTarget bool
}

// SignatureTemplate carries the subpacket content the generator fills
// into a freshly minted signature before calling Sign (spec 4.9 step 4):
// key-usage flags, the three preference lists, the modification-detection
// feature byte, primary-user-ID assertion, and key-expiration assertion.
// A zero-value list, IsPrimaryUserID=false, or a zero expiration with
// KeyNeverExpires=false means "don't emit this subpacket at all". The
// key-flags subpacket is always emitted, even when KeyFlags is zero.
type SignatureTemplate struct {
	KeyFlags                       enums.KeyFlag
	PreferredHashAlgorithms         []enums.HashAlgorithm
	PreferredSymmetricAlgorithms    []enums.SymmetricAlgorithm
	PreferredCompressionAlgorithms  []enums.CompressionAlgorithm
	Features                        []byte

	IsPrimaryUserID bool

	KeyExpirationSeconds uint32
	KeyNeverExpires      bool
}

// SignaturePacket is the capability set THE CORE requires of a signature
// packet (spec §6).
type SignaturePacket interface {
	SignatureType() enums.SignatureType
	IssuerKeyID() KeyID
	Created() time.Time

	// Configure sets this signature's subpacket content ahead of Sign,
	// for the generator's own freshly minted certifications and bindings
	// (spec 4.9 step 4). Never called on a signature read off the wire.
	Configure(t SignatureTemplate)

	// KeyFlags returns the key-usage flags this signature asserts, and
	// whether the key-flags subpacket was present at all — spec 4.7's
	// eligibility rule treats "no keyFlags subpacket" as distinct from
	// "keyFlags present but empty."
	KeyFlags() (flags enums.KeyFlag, present bool)

	PreferredHashAlgorithms() []enums.HashAlgorithm
	PreferredSymmetricAlgorithms() []enums.SymmetricAlgorithm
	PreferredCompressionAlgorithms() []enums.CompressionAlgorithm
	Features() []byte

	// PrimaryUserIDWeight returns the numeric weight asserted by an
	// isPrimaryUserID subpacket and whether the subpacket was present at
	// all. Absent is treated as the lowest possible weight by the
	// primary-user selector (spec 4.2).
	PrimaryUserIDWeight() (weight int, present bool)

	// KeyExpirationSeconds returns the key-expiration-time subpacket
	// value and whether it was present.
	KeyExpirationSeconds() (seconds uint32, present bool)

	// KeyNeverExpires reports whether this signature explicitly asserts
	// the key never expires, overriding KeyExpirationSeconds (spec 4.4).
	KeyNeverExpires() bool

	// Verified and SetVerified implement the monotonic verification
	// cache of spec §5: false->true only, tolerant of racy repeated
	// writes, read before re-verifying.
	Verified() bool
	SetVerified(bool)

	// Revoked and SetRevoked cache whether this signature has itself
	// been judged revoked; the revocation check sets it when a surviving
	// revocation's issuer matches this signature's issuer (spec 4.3).
	Revoked() bool
	SetRevoked(bool)

	// Raw returns the signature's encoded bytes, used for dedup-by-bytes
	// during merge (spec 4.8) and for the round-trip property (spec
	// property 1).
	Raw() []byte

	// Sign computes this signature over dataToSign using signingKey's
	// private material, per RFC 4880 section 5.2.4. Returns
	// keyerrors.NotDecryptedError if signingKey's secret material is
	// still encrypted.
	Sign(rand io.Reader, signingKey KeyPacket, dataToSign BoundData, cfg *config.Config) error

	// Verify checks this signature against verifyingKey and
	// dataToVerify, caching the result via SetVerified on success. Does
	// not check expiration; call IsExpired separately (spec 4.3, 4.4
	// treat verification and expiration as independent axes).
	Verify(verifyingKey KeyPacket, dataToVerify BoundData) error

	// IsExpired reports whether this signature's own validity period
	// (not the key's) has elapsed at now. A zero now disables the
	// check (always false).
	IsExpired(now time.Time) bool
}

// PacketList is an ordered, typed sequence of OpenPGP packets — the flat
// wire-level representation that build() consumes and toPacketlist()
// produces (spec 4.1). Packet is deliberately `any`: THE CORE only ever
// type-switches on KeyPacket/SignaturePacket, and the concrete element
// type (e.g. go-crypto's packet.Packet) is owned by the adapter.
type PacketList interface {
	Len() int
	At(i int) any
	Append(p any) PacketList
	Concat(other PacketList) PacketList
	Slice(from, to int) PacketList

	// IndexOfTag returns the positions of every packet whose tag matches
	// one of tags, in order.
	IndexOfTag(tags ...enums.PacketTag) []int

	WriteTo(w io.Writer) error
}

// Factory constructs fresh, empty key and signature packets for the
// generator to populate via KeyPacket.Generate / SignaturePacket.Sign
// (spec 4.9's "key-packet factory"). A concrete Factory is what ties an
// algorithm/version choice to a particular packet implementation.
type Factory interface {
	NewKeyPacket(version int, isSubkey, private bool, algo enums.PublicKeyAlgorithm) KeyPacket
	NewSignaturePacket(sigType enums.SignatureType) SignaturePacket
}
