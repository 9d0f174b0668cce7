package openpgp

import (
	"log"

	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/keyerrors"
	"github.com/sanjanarajan/openpgpjs/openpgp/packet"
)

// BuildOptions controls the structure builder's handling of packets that
// cannot be addressed to a parent (spec 4.1: "drop and log"). Logger
// defaults to log.Default() when nil, so callers needing silence or
// redirection only need to set one field.
type BuildOptions struct {
	Logger *log.Logger
}

func (o *BuildOptions) logger() *log.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// Build turns an ordered packet stream into the canonical Key tree (spec
// 4.1). Packets are consumed in their original order; a signature packet
// with no addressable parent (a certification with no current user, or a
// subkey-binding/-revocation with no current subkey) is dropped and
// logged rather than rejected, since a single malformed signature
// shouldn't invalidate an otherwise-readable key.
func Build(packets packet.PacketList, opts *BuildOptions) (*Key, error) {
	k := &Key{}
	var currentUser *User
	var currentSubKey *SubKey
	var primaryKeyID packet.KeyID
	havePrimary := false

	for i := 0; i < packets.Len(); i++ {
		item := packets.At(i)
		switch p := item.(type) {
		case packet.KeyPacket:
			if !p.IsSubkey() {
				if havePrimary {
					return nil, keyerrors.InvalidKeyError("more than one primary key packet")
				}
				k.PrimaryKey = p
				primaryKeyID = p.KeyID()
				havePrimary = true
				currentUser = nil
				currentSubKey = nil
				continue
			}
			currentSubKey = &SubKey{Packet: p}
			k.SubKeys = append(k.SubKeys, currentSubKey)
			currentUser = nil

		case *packetUserID:
			currentUser = NewUserIDUser(p.id)
			k.Users = append(k.Users, currentUser)
			currentSubKey = nil

		case *packetUserAttribute:
			currentUser = NewUserAttributeUser(p.data)
			k.Users = append(k.Users, currentUser)
			currentSubKey = nil

		case packet.SignaturePacket:
			dispatchSignature(k, p, primaryKeyID, &currentUser, &currentSubKey, opts.logger())

		default:
			// Not a packet kind the builder understands; ignored.
		}
	}

	if !havePrimary {
		return nil, keyerrors.InvalidKeyError("no primary key packet")
	}
	if len(k.Users) == 0 {
		return nil, keyerrors.InvalidKeyError("no user")
	}
	return k, nil
}

func dispatchSignature(k *Key, sig packet.SignaturePacket, primaryKeyID packet.KeyID, currentUser **User, currentSubKey **SubKey, logger *log.Logger) {
	t := sig.SignatureType()
	switch {
	case t.IsCertification():
		if *currentUser == nil {
			logger.Printf("openpgp: dropping certification signature with no current user")
			return
		}
		if sig.IssuerKeyID().Equal(primaryKeyID, false) {
			(*currentUser).SelfCertifications = append((*currentUser).SelfCertifications, sig)
		} else {
			(*currentUser).OtherCertifications = append((*currentUser).OtherCertifications, sig)
		}

	case t == enums.SigCertificationRevocation:
		if *currentUser != nil {
			(*currentUser).RevocationSignatures = append((*currentUser).RevocationSignatures, sig)
		} else {
			k.DirectSignatures = append(k.DirectSignatures, sig)
		}

	case t == enums.SigDirectSignature:
		k.DirectSignatures = append(k.DirectSignatures, sig)

	case t == enums.SigSubkeyBinding:
		if *currentSubKey == nil {
			logger.Printf("openpgp: dropping subkey-binding signature with no current subkey")
			return
		}
		(*currentSubKey).BindingSignatures = append((*currentSubKey).BindingSignatures, sig)

	case t == enums.SigKeyRevocation:
		k.RevocationSignatures = append(k.RevocationSignatures, sig)

	case t == enums.SigSubkeyRevocation:
		if *currentSubKey == nil {
			logger.Printf("openpgp: dropping subkey-revocation signature with no current subkey")
			return
		}
		(*currentSubKey).RevocationSignatures = append((*currentSubKey).RevocationSignatures, sig)

	default:
		// Signature types outside the transferable-key-object model
		// (timestamp, third-party confirmation, primary-key binding)
		// have no addressable parent here; dropped silently.
	}
}

// packetUserID and packetUserAttribute are the concrete packet.PacketList
// element types for UserID/UserAttribute packets. Unlike key and
// signature packets, a user identity carries no cryptographic material
// of its own, so it needs no external-collaborator adapter — these two
// plain structs are the only representation this module ever needs.
type packetUserID struct{ id string }

type packetUserAttribute struct{ data []byte }

// NewUserIDPacket wraps a textual user ID as a packet-list element for
// Build/ToPacketList.
func NewUserIDPacket(id string) any { return &packetUserID{id: id} }

// NewUserAttributePacket wraps an opaque user-attribute payload as a
// packet-list element for Build/ToPacketList.
func NewUserAttributePacket(data []byte) any { return &packetUserAttribute{data: data} }

// ToPacketList emits k's packets in the canonical order of spec 4.1: the
// primary key, its revocations, its direct signatures, then for each
// User the identity packet followed by its revocations,
// self-certifications and other-certifications, then for each SubKey the
// subkey packet followed by its revocations and bindings. Build(p) round
// trips through ToPacketList for any p this builder itself produced.
func (k *Key) ToPacketList() packet.PacketList {
	items := []any{k.PrimaryKey}
	for _, s := range k.RevocationSignatures {
		items = append(items, s)
	}
	for _, s := range k.DirectSignatures {
		items = append(items, s)
	}
	for _, u := range k.Users {
		if u.IsAttribute {
			items = append(items, &packetUserAttribute{data: u.Attribute})
		} else {
			items = append(items, &packetUserID{id: u.UserID})
		}
		for _, s := range u.RevocationSignatures {
			items = append(items, s)
		}
		for _, s := range u.SelfCertifications {
			items = append(items, s)
		}
		for _, s := range u.OtherCertifications {
			items = append(items, s)
		}
	}
	for _, sk := range k.SubKeys {
		items = append(items, sk.Packet)
		for _, s := range sk.RevocationSignatures {
			items = append(items, s)
		}
		for _, s := range sk.BindingSignatures {
			items = append(items, s)
		}
	}
	return packet.NewList(items...)
}
