package openpgp

import (
	"testing"
	"time"

	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/packet"
)

func TestBuildSimpleKey(t *testing.T) {
	now := time.Now()
	primary := newFakePrimary(1, now)
	selfCert := newFakeSelfCert(primary.KeyID(), now)
	selfCert.sigType = enums.SigGenericCert

	sub := newFakeSubkey(2, now, enums.ECDH)
	binding := newFakeSelfCert(primary.KeyID(), now)
	binding.sigType = enums.SigSubkeyBinding

	list := packet.NewList(
		primary,
		NewUserIDPacket("alice@example.com"),
		selfCert,
		sub,
		binding,
	)

	k, err := Build(list, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if k.PrimaryKey != primary {
		t.Error("Build did not record the primary key")
	}
	if len(k.Users) != 1 || k.Users[0].UserID != "alice@example.com" {
		t.Fatalf("unexpected users: %+v", k.Users)
	}
	if len(k.Users[0].SelfCertifications) != 1 {
		t.Fatalf("expected 1 self-certification, got %d", len(k.Users[0].SelfCertifications))
	}
	if len(k.SubKeys) != 1 {
		t.Fatalf("expected 1 subkey, got %d", len(k.SubKeys))
	}
	if len(k.SubKeys[0].BindingSignatures) != 1 {
		t.Fatalf("expected 1 binding signature, got %d", len(k.SubKeys[0].BindingSignatures))
	}
}

func TestBuildRejectsMissingPrimary(t *testing.T) {
	list := packet.NewList(NewUserIDPacket("alice@example.com"))
	if _, err := Build(list, nil); err == nil {
		t.Fatal("expected an error for a packet stream with no primary key")
	}
}

func TestBuildRejectsNoUsers(t *testing.T) {
	primary := newFakePrimary(1, time.Now())
	list := packet.NewList(primary)
	if _, err := Build(list, nil); err == nil {
		t.Fatal("expected an error for a packet stream with no users")
	}
}

func TestBuildDropsUnaddressableSignature(t *testing.T) {
	now := time.Now()
	primary := newFakePrimary(1, now)
	stray := newFakeSelfCert(primary.KeyID(), now)
	stray.sigType = enums.SigSubkeyBinding // no current subkey to attach to

	list := packet.NewList(primary, NewUserIDPacket("alice@example.com"), stray)
	k, err := Build(list, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(k.SubKeys) != 0 {
		t.Fatalf("expected the unaddressable binding to be dropped, got %d subkeys", len(k.SubKeys))
	}
}

func TestToPacketListRoundTrip(t *testing.T) {
	now := time.Now()
	primary := newFakePrimary(1, now)
	selfCert := newFakeSelfCert(primary.KeyID(), now)

	k := &Key{PrimaryKey: primary}
	user := NewUserIDUser("alice@example.com")
	user.SelfCertifications = append(user.SelfCertifications, selfCert)
	k.Users = append(k.Users, user)

	list := k.ToPacketList()
	rebuilt, err := Build(list, nil)
	if err != nil {
		t.Fatalf("Build(ToPacketList()): %v", err)
	}
	if rebuilt.PrimaryKey.KeyID() != primary.KeyID() {
		t.Error("round trip lost the primary key identity")
	}
	if len(rebuilt.Users) != 1 || rebuilt.Users[0].UserID != "alice@example.com" {
		t.Fatalf("round trip lost the user: %+v", rebuilt.Users)
	}
}
