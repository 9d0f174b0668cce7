// Package enums holds the stable numeric constants of the OpenPGP wire
// format that the rest of the module dispatches on: public-key algorithm
// IDs, hash IDs, symmetric cipher IDs, compression IDs, signature types,
// packet tags, key flags, curve names, key-status codes and armor types.
// Public-key algorithms map both ways between symbolic name and numeric ID
// (Name and PublicKeyAlgorithmByName), since the generator's options name
// them symbolically while wire dispatch uses the numeric ID; hash and
// cipher IDs have a Name only, and the remaining sets have no name table.
package enums

import "strconv"

// PublicKeyAlgorithm identifies the public-key cryptosystem used by a key
// packet, per RFC 4880 section 9.1 and RFC 6637.
type PublicKeyAlgorithm uint8

const (
	RSAEncryptSign PublicKeyAlgorithm = 1
	RSAEncryptOnly PublicKeyAlgorithm = 2
	RSASignOnly    PublicKeyAlgorithm = 3
	ElGamal        PublicKeyAlgorithm = 16
	DSA            PublicKeyAlgorithm = 17
	ECDH           PublicKeyAlgorithm = 18
	ECDSA          PublicKeyAlgorithm = 19
	EdDSA          PublicKeyAlgorithm = 22
)

var pubKeyAlgoNames = map[PublicKeyAlgorithm]string{
	RSAEncryptSign: "rsa_encrypt_sign",
	RSAEncryptOnly: "rsa_encrypt_only",
	RSASignOnly:    "rsa_sign_only",
	ElGamal:        "elgamal",
	DSA:            "dsa",
	ECDH:           "ecdh",
	ECDSA:          "ecdsa",
	EdDSA:          "eddsa",
}

// Name returns the symbolic lowercase name used throughout the generator
// options and test vectors (e.g. "rsa_encrypt_sign", "ecdh").
func (a PublicKeyAlgorithm) Name() string {
	if name, ok := pubKeyAlgoNames[a]; ok {
		return name
	}
	return "unknown(" + strconv.Itoa(int(a)) + ")"
}

// PublicKeyAlgorithmByName resolves a symbolic algorithm name back to its
// numeric ID. ok is false for unrecognised names.
func PublicKeyAlgorithmByName(name string) (algo PublicKeyAlgorithm, ok bool) {
	for id, n := range pubKeyAlgoNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// CanSign reports whether keys of this algorithm may hold a signing role.
func (a PublicKeyAlgorithm) CanSign() bool {
	switch a {
	case RSAEncryptOnly, ElGamal, ECDH:
		return false
	default:
		return true
	}
}

// CanEncrypt reports whether keys of this algorithm may hold an encryption
// role.
func (a PublicKeyAlgorithm) CanEncrypt() bool {
	switch a {
	case DSA, RSASignOnly, ECDSA, EdDSA:
		return false
	default:
		return true
	}
}

// HashAlgorithm identifies a hash function by its RFC 4880 section 9.4 ID.
type HashAlgorithm uint8

const (
	MD5       HashAlgorithm = 1
	SHA1      HashAlgorithm = 2
	RIPEMD160 HashAlgorithm = 3
	SHA256    HashAlgorithm = 8
	SHA384    HashAlgorithm = 9
	SHA512    HashAlgorithm = 10
	SHA224    HashAlgorithm = 11
	SHA3_256  HashAlgorithm = 12
	SHA3_512  HashAlgorithm = 14
)

var hashAlgoNames = map[HashAlgorithm]string{
	MD5:       "md5",
	SHA1:      "sha1",
	RIPEMD160: "ripemd160",
	SHA256:    "sha256",
	SHA384:    "sha384",
	SHA512:    "sha512",
	SHA224:    "sha224",
	SHA3_256:  "sha3-256",
	SHA3_512:  "sha3-512",
}

// digest byte-length per hash, used by the "hash-length >=" preference
// rule in getPreferredHashAlgo (spec 4.10).
var hashAlgoSize = map[HashAlgorithm]int{
	MD5:       16,
	SHA1:      20,
	RIPEMD160: 20,
	SHA256:    32,
	SHA384:    48,
	SHA512:    64,
	SHA224:    28,
	SHA3_256:  32,
	SHA3_512:  64,
}

// Name returns the symbolic lowercase hash name.
func (h HashAlgorithm) Name() string {
	if name, ok := hashAlgoNames[h]; ok {
		return name
	}
	return "unknown(" + strconv.Itoa(int(h)) + ")"
}

// Size returns the digest length in bytes, or 0 for an unknown hash.
func (h HashAlgorithm) Size() int {
	return hashAlgoSize[h]
}

// Known reports whether h is a hash algorithm this module has a size entry
// for; unknown preferences are treated as absent during negotiation.
func (h HashAlgorithm) Known() bool {
	_, ok := hashAlgoSize[h]
	return ok
}

// SymmetricAlgorithm identifies a symmetric cipher by its RFC 4880 section
// 9.2 ID.
type SymmetricAlgorithm uint8

const (
	Plaintext SymmetricAlgorithm = 0
	IDEA      SymmetricAlgorithm = 1
	TripleDES SymmetricAlgorithm = 2
	CAST5     SymmetricAlgorithm = 3
	Blowfish  SymmetricAlgorithm = 4
	AES128    SymmetricAlgorithm = 7
	AES192    SymmetricAlgorithm = 8
	AES256    SymmetricAlgorithm = 9
	Twofish   SymmetricAlgorithm = 10
)

var symAlgoNames = map[SymmetricAlgorithm]string{
	Plaintext: "plaintext",
	IDEA:      "idea",
	TripleDES: "tripledes",
	CAST5:     "cast5",
	Blowfish:  "blowfish",
	AES128:    "aes128",
	AES192:    "aes192",
	AES256:    "aes256",
	Twofish:   "twofish",
}

// Name returns the symbolic lowercase cipher name.
func (s SymmetricAlgorithm) Name() string {
	if name, ok := symAlgoNames[s]; ok {
		return name
	}
	return "unknown(" + strconv.Itoa(int(s)) + ")"
}

// Known reports whether s is a recognised cipher ID. Plaintext and IDEA
// count as known; negotiation excludes them separately.
func (s SymmetricAlgorithm) Known() bool {
	_, ok := symAlgoNames[s]
	return ok
}

// CompressionAlgorithm identifies a compression method by its RFC 4880
// section 9.3 ID.
type CompressionAlgorithm uint8

const (
	CompressionNone  CompressionAlgorithm = 0
	CompressionZIP   CompressionAlgorithm = 1
	CompressionZLIB  CompressionAlgorithm = 2
	CompressionBZIP2 CompressionAlgorithm = 3
)

// SignatureType identifies the role a signature packet plays, per RFC
// 4880 section 5.2.1.
type SignatureType uint8

const (
	SigBinary                   SignatureType = 0x00
	SigText                     SignatureType = 0x01
	SigGenericCert               SignatureType = 0x10
	SigPersonaCert                SignatureType = 0x11
	SigCasualCert                 SignatureType = 0x12
	SigPositiveCert               SignatureType = 0x13
	SigSubkeyBinding              SignatureType = 0x18
	SigPrimaryKeyBinding          SignatureType = 0x19
	SigDirectSignature            SignatureType = 0x1F
	SigKeyRevocation              SignatureType = 0x20
	SigSubkeyRevocation           SignatureType = 0x28
	SigCertificationRevocation   SignatureType = 0x30
	SigTimestamp                 SignatureType = 0x40
	SigThirdPartyConfirmation    SignatureType = 0x50
)

// IsCertification reports whether t certifies a (key, user) binding —
// the "cert_*" family dispatched on by the structure builder (spec 4.1).
func (t SignatureType) IsCertification() bool {
	switch t {
	case SigGenericCert, SigPersonaCert, SigCasualCert, SigPositiveCert:
		return true
	default:
		return false
	}
}

// PacketTag identifies the kind of an OpenPGP packet, per RFC 4880
// section 4.3.
type PacketTag uint8

const (
	TagPublicKeyEncryptedSessionKey PacketTag = 1
	TagSignature                    PacketTag = 2
	TagSecretKey                    PacketTag = 5
	TagPublicKey                    PacketTag = 6
	TagSecretSubkey                 PacketTag = 7
	TagUserID                       PacketTag = 13
	TagPublicSubkey                 PacketTag = 14
	TagUserAttribute                PacketTag = 17
)

func (t PacketTag) String() string {
	switch t {
	case TagSecretKey:
		return "SecretKey"
	case TagPublicKey:
		return "PublicKey"
	case TagSecretSubkey:
		return "SecretSubkey"
	case TagPublicSubkey:
		return "PublicSubkey"
	case TagUserID:
		return "UserID"
	case TagUserAttribute:
		return "UserAttribute"
	case TagSignature:
		return "Signature"
	case TagPublicKeyEncryptedSessionKey:
		return "PublicKeyEncryptedSessionKey"
	default:
		return "Unknown(" + strconv.Itoa(int(t)) + ")"
	}
}

// KeyFlag is a bitmask of the key-usage flags carried in a signature's
// key-flags subpacket, per RFC 4880 section 5.2.3.21.
type KeyFlag uint8

const (
	FlagCertify               KeyFlag = 0x01
	FlagSign                  KeyFlag = 0x02
	FlagEncryptCommunications KeyFlag = 0x04
	FlagEncryptStorage        KeyFlag = 0x08
	FlagSplit                 KeyFlag = 0x10
	FlagAuthenticate          KeyFlag = 0x20
	FlagGroupKey              KeyFlag = 0x80
)

// Has reports whether flag is set in f.
func (f KeyFlag) Has(flag KeyFlag) bool {
	return f&flag != 0
}

// KeyStatus is the outcome of validating a primary key or subkey (spec
// 4.5, 4.6).
type KeyStatus int

const (
	StatusInvalid KeyStatus = iota
	StatusExpired
	StatusRevoked
	StatusNoSelfCert
	StatusValid
)

func (s KeyStatus) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusRevoked:
		return "revoked"
	case StatusNoSelfCert:
		return "no_self_cert"
	case StatusExpired:
		return "expired"
	default:
		return "invalid"
	}
}

// ArmorType names the ASCII-armor block types a Key may be exported as.
// THE CORE never frames armor itself (that's a non-goal); this constant
// set exists so the external armor collaborator and the core agree on
// names.
type ArmorType int

const (
	ArmorPublicKey ArmorType = iota
	ArmorPrivateKey
	ArmorMessage
	ArmorSignature
)

// CurveName is the symbolic name of a named elliptic curve, as accepted by
// the generator's "curve" option and returned by KeyPacket.Curve().
type CurveName string

const (
	CurveP256           CurveName = "p256"
	CurveP384           CurveName = "p384"
	CurveP521           CurveName = "p521"
	CurveSecp256k1      CurveName = "secp256k1"
	CurveEd25519        CurveName = "ed25519"
	CurveCurve25519     CurveName = "curve25519"
	CurveBrainpoolP256r1 CurveName = "brainpoolP256r1"
	CurveBrainpoolP384r1 CurveName = "brainpoolP384r1"
	CurveBrainpoolP512r1 CurveName = "brainpoolP512r1"
)
