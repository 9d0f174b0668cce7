package openpgp

import (
	"testing"
	"time"

	"github.com/sanjanarajan/openpgpjs/openpgp/config"
	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/keyerrors"
	"github.com/sanjanarajan/openpgpjs/openpgp/packet"
)

func TestDedupSignaturesByRawBytes(t *testing.T) {
	now := time.Now()
	a := newFakeSelfCert(packet.KeyID{1}, now)
	b := newFakeSelfCert(packet.KeyID{1}, now) // same issuer+created => same Raw()
	c := newFakeSelfCert(packet.KeyID{2}, now.Add(time.Minute))

	base := []packet.SignaturePacket{a}
	merged := dedupSignatures(base, []packet.SignaturePacket{b, c})
	if len(merged) != 2 {
		t.Fatalf("dedupSignatures produced %d entries, want 2 (b is a byte-duplicate of a)", len(merged))
	}
}

func TestMergeBindingsKeepsNewerByIssuer(t *testing.T) {
	issuer := packet.KeyID{9}
	older := newFakeSelfCert(issuer, time.Now().Add(-time.Hour))
	older.sigType = enums.SigSubkeyBinding
	newer := newFakeSelfCert(issuer, time.Now())
	newer.sigType = enums.SigSubkeyBinding

	out := mergeBindings([]packet.SignaturePacket{older}, []packet.SignaturePacket{newer})
	if len(out) != 1 {
		t.Fatalf("mergeBindings produced %d entries, want 1", len(out))
	}
	if out[0] != newer {
		t.Error("mergeBindings did not keep the newer binding from the same issuer")
	}
}

func TestMergeBindingsIgnoresOlderFromSameIssuer(t *testing.T) {
	issuer := packet.KeyID{9}
	existing := newFakeSelfCert(issuer, time.Now())
	stale := newFakeSelfCert(issuer, time.Now().Add(-time.Hour))

	out := mergeBindings([]packet.SignaturePacket{existing}, []packet.SignaturePacket{stale})
	if len(out) != 1 || out[0] != existing {
		t.Error("mergeBindings should not replace a newer binding with an older one")
	}
}

func TestMergeBindingsAppendsNewIssuer(t *testing.T) {
	existing := newFakeSelfCert(packet.KeyID{1}, time.Now())
	fresh := newFakeSelfCert(packet.KeyID{2}, time.Now())

	out := mergeBindings([]packet.SignaturePacket{existing}, []packet.SignaturePacket{fresh})
	if len(out) != 2 {
		t.Fatalf("mergeBindings produced %d entries, want 2", len(out))
	}
}

func TestSubKeySetsEqual(t *testing.T) {
	now := time.Now()
	a1 := &SubKey{Packet: newFakeSubkey(1, now, enums.ECDH)}
	a2 := &SubKey{Packet: newFakeSubkey(2, now, enums.ECDH)}
	b1 := &SubKey{Packet: newFakeSubkey(2, now, enums.ECDH)}
	b2 := &SubKey{Packet: newFakeSubkey(1, now, enums.ECDH)}

	if !subKeySetsEqual([]*SubKey{a1, a2}, []*SubKey{b1, b2}) {
		t.Error("expected equal subkey sets regardless of order")
	}
	if subKeySetsEqual([]*SubKey{a1}, []*SubKey{a1, a2}) {
		t.Error("sets of different sizes should not be equal")
	}
}

func TestKeyUpdateRejectsMismatchedFingerprint(t *testing.T) {
	now := time.Now()
	dst, _ := keyWithOneValidUser(now.Add(-time.Hour))
	src, _ := keyWithOneValidUser(now.Add(-time.Hour))
	src.PrimaryKey = newFakePrimary(99, now.Add(-time.Hour)) // different fingerprint

	// src still needs a verifying self cert to pass the VerifyPrimaryKey gate.
	srcSig := newFakeSelfCert(src.PrimaryKey.KeyID(), now.Add(-time.Hour))
	srcSig.neverExpires = true
	src.Users[0].SelfCertifications = []packet.SignaturePacket{srcSig}

	err := dst.Update(src, now, config.Default())
	if err == nil {
		t.Fatal("expected a FingerprintMismatchError")
	}
	if _, ok := err.(keyerrors.FingerprintMismatchError); !ok {
		t.Fatalf("got error of type %T, want FingerprintMismatchError", err)
	}
}

func TestKeyUpdateIgnoresSourceWithNoVerifyingSelfCert(t *testing.T) {
	now := time.Now()
	dst, _ := keyWithOneValidUser(now.Add(-time.Hour))

	unverifiable := newFakeSelfCert(dst.PrimaryKey.KeyID(), now)
	unverifiable.forceInvalid = true
	srcUser := NewUserIDUser("x@example.com")
	srcUser.SelfCertifications = append(srcUser.SelfCertifications, unverifiable)
	src := &Key{PrimaryKey: dst.PrimaryKey, Users: []*User{srcUser}}

	if err := dst.Update(src, now, config.Default()); err != nil {
		t.Fatalf("Update with an unverifiable source should not error: %v", err)
	}
	if len(dst.Users) != 1 {
		t.Errorf("a StatusInvalid source should be ignored entirely, got %d users", len(dst.Users))
	}
}

func TestKeyUpdateMergesNewUser(t *testing.T) {
	now := time.Now()
	dst, _ := keyWithOneValidUser(now.Add(-time.Hour))
	src, _ := keyWithOneValidUser(now.Add(-time.Hour))
	src.PrimaryKey = dst.PrimaryKey // same identity

	newUser := NewUserIDUser("second@example.com")
	newSig := newFakeSelfCert(dst.PrimaryKey.KeyID(), now.Add(-time.Hour))
	newSig.neverExpires = true
	newUser.SelfCertifications = append(newUser.SelfCertifications, newSig)
	src.Users = append(src.Users, newUser)

	if err := dst.Update(src, now, config.Default()); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(dst.Users) != 2 {
		t.Fatalf("expected dst to gain the second user, got %d users", len(dst.Users))
	}
}

func TestKeyUpdateMergesNewSubKey(t *testing.T) {
	now := time.Now()
	dst, _ := keyWithOneValidUser(now.Add(-time.Hour))
	src, _ := keyWithOneValidUser(now.Add(-time.Hour))
	src.PrimaryKey = dst.PrimaryKey

	sub := newFakeSubkey(5, now.Add(-time.Hour), enums.ECDH)
	binding := newFakeSelfCert(dst.PrimaryKey.KeyID(), now.Add(-time.Hour))
	binding.sigType = enums.SigSubkeyBinding
	src.SubKeys = append(src.SubKeys, &SubKey{Packet: sub, BindingSignatures: []packet.SignaturePacket{binding}})

	if err := dst.Update(src, now, config.Default()); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(dst.SubKeys) != 1 {
		t.Fatalf("expected dst to gain the subkey, got %d subkeys", len(dst.SubKeys))
	}
}

func TestKeyUpdateIsIdempotent(t *testing.T) {
	now := time.Now()
	dst, _ := keyWithOneValidUser(now.Add(-time.Hour))
	src, _ := keyWithOneValidUser(now.Add(-time.Hour))
	src.PrimaryKey = dst.PrimaryKey

	if err := dst.Update(src, now, config.Default()); err != nil {
		t.Fatalf("first Update: %v", err)
	}
	countAfterFirst := len(dst.Users[0].SelfCertifications)

	if err := dst.Update(src, now, config.Default()); err != nil {
		t.Fatalf("second Update: %v", err)
	}
	if len(dst.Users[0].SelfCertifications) != countAfterFirst {
		t.Errorf("repeated Update changed self-certification count: %d -> %d", countAfterFirst, len(dst.Users[0].SelfCertifications))
	}
}
