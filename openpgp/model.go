// Package openpgp is the key structure, validation, merge and generation
// engine (spec §§3-4): turning an ordered packet stream into a canonical
// tree of primary key, users and subkeys; answering trust queries against
// that tree; merging updates from another copy of the same key; and
// producing fresh keys through generation or reformatting. It never
// implements a cryptographic primitive itself — every signature
// verification, every keypair generation, and every passphrase wrap goes
// through the packet.KeyPacket / packet.SignaturePacket interfaces, whose
// one concrete implementation lives in openpgp/packet/gocrypto.
package openpgp

import (
	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/packet"
)

// User is exactly one of a UserID or a UserAttribute packet (spec 3),
// plus the three ordered signature containers spec 3 names. Attribute is
// nil when this User carries a textual UserID and vice versa; exactly
// one of UserID/Attribute is ever populated, matching the original's
// "isAttribute" discriminator without a separate interface for it.
type User struct {
	UserID    string
	Attribute []byte
	IsAttribute bool

	SelfCertifications   []packet.SignaturePacket
	OtherCertifications  []packet.SignaturePacket
	RevocationSignatures []packet.SignaturePacket
}

// NewUserIDUser builds a User wrapping a textual identity.
func NewUserIDUser(id string) *User { return &User{UserID: id} }

// NewUserAttributeUser builds a User wrapping an opaque user-attribute
// packet's raw bytes.
func NewUserAttributeUser(attr []byte) *User {
	return &User{Attribute: attr, IsAttribute: true}
}

// SubKey owns exactly one subkey packet plus its ordered binding and
// revocation signatures (spec 3). Every binding signature's issuer is
// expected to be the enclosing Key's primary key; neither Build nor
// Update checks the issuer, and a binding that was not made by the
// primary key fails verification in VerifySubKey.
type SubKey struct {
	Packet                packet.KeyPacket
	BindingSignatures     []packet.SignaturePacket
	RevocationSignatures  []packet.SignaturePacket
}

// Key owns exactly one primary key packet, key-level revocation and
// direct signatures, a non-empty ordered sequence of Users, and an
// ordered sequence of SubKeys (spec 3). A Key constructed any other way
// than through Build, Generate or Reformat does not carry the structural
// guarantee that it has at least one User — those three are the only
// constructors this package exposes.
type Key struct {
	PrimaryKey           packet.KeyPacket
	RevocationSignatures []packet.SignaturePacket
	DirectSignatures     []packet.SignaturePacket
	Users                []*User
	SubKeys              []*SubKey
}

// IsPublic reports whether the primary key packet carries no private
// role (spec 3: isPublic() <=> primary is a PublicKey).
func (k *Key) IsPublic() bool { return !k.PrimaryKey.IsPrivate() }

// IsPrivate reports whether the primary key packet carries a (possibly
// encrypted) secret role.
func (k *Key) IsPrivate() bool { return k.PrimaryKey.IsPrivate() }

// matchUser reports whether u represents the same identity as other,
// per spec 4.8's "matches by UserID text or UserAttribute equality"
// rule — a known limitation (spec §9): this misses normalized-equal but
// byte-different forms, exactly as the original behaves.
func (u *User) matchUser(other *User) bool {
	if u.IsAttribute != other.IsAttribute {
		return false
	}
	if u.IsAttribute {
		return string(u.Attribute) == string(other.Attribute)
	}
	return u.UserID == other.UserID
}

// matchSubKey reports whether s is the same subkey as other, by
// fingerprint equality (spec 4.8).
func (s *SubKey) matchSubKey(other *SubKey) bool {
	return s.Packet.Fingerprint().Equal(other.Packet.Fingerprint())
}

// keyFlagsOf is a small helper used throughout validate.go/select.go:
// it returns the key-flags asserted by sig, treating an absent
// key-flags subpacket as "no flags asserted" rather than "all flags"
// (spec 4.7's eligibility rule depends on this distinction).
func keyFlagsOf(sig packet.SignaturePacket) enums.KeyFlag {
	flags, present := sig.KeyFlags()
	if !present {
		return 0
	}
	return flags
}
