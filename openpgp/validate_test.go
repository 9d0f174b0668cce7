package openpgp

import (
	"testing"
	"time"

	"github.com/sanjanarajan/openpgpjs/openpgp/config"
	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/packet"
)

func keyWithOneValidUser(created time.Time) (*Key, *fakeSignature) {
	primary := newFakePrimary(1, created)
	sig := newFakeSelfCert(primary.KeyID(), created)
	sig.primarySet = true
	sig.neverExpires = true
	user := NewUserIDUser("alice@example.com")
	user.SelfCertifications = append(user.SelfCertifications, sig)
	return &Key{PrimaryKey: primary, Users: []*User{user}}, sig
}

func TestVerifyPrimaryKeyValid(t *testing.T) {
	k, _ := keyWithOneValidUser(time.Now().Add(-time.Hour))
	if got := VerifyPrimaryKey(k, time.Now(), config.Default()); got != enums.StatusValid {
		t.Errorf("VerifyPrimaryKey = %v, want valid", got)
	}
}

func TestVerifyPrimaryKeyNoSelfCert(t *testing.T) {
	primary := newFakePrimary(1, time.Now())
	user := NewUserIDUser("alice@example.com")
	k := &Key{PrimaryKey: primary, Users: []*User{user}}
	if got := VerifyPrimaryKey(k, time.Now(), config.Default()); got != enums.StatusNoSelfCert {
		t.Errorf("VerifyPrimaryKey = %v, want no_self_cert", got)
	}
}

func TestVerifyPrimaryKeyRevoked(t *testing.T) {
	k, _ := keyWithOneValidUser(time.Now().Add(-time.Hour))
	rev := newFakeSelfCert(k.PrimaryKey.KeyID(), time.Now())
	rev.sigType = enums.SigKeyRevocation
	k.RevocationSignatures = append(k.RevocationSignatures, rev)
	if got := VerifyPrimaryKey(k, time.Now(), config.Default()); got != enums.StatusRevoked {
		t.Errorf("VerifyPrimaryKey = %v, want revoked", got)
	}
}

func TestVerifyPrimaryKeyExpired(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	k, sig := keyWithOneValidUser(created)
	sig.neverExpires = false
	sig.expSeconds, sig.expSet = 60, true // expires 1 minute after creation
	if got := VerifyPrimaryKey(k, time.Now(), config.Default()); got != enums.StatusExpired {
		t.Errorf("VerifyPrimaryKey = %v, want expired", got)
	}
}

func TestGetPrimaryUserWeightTiebreak(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	primary := newFakePrimary(1, created)

	earlier := newFakeSelfCert(primary.KeyID(), created)
	earlier.primarySet, earlier.primaryWeight = true, 1
	laterSameWeight := newFakeSelfCert(primary.KeyID(), created.Add(time.Minute))
	laterSameWeight.primarySet, laterSameWeight.primaryWeight = true, 1
	lowWeightButLatest := newFakeSelfCert(primary.KeyID(), created.Add(2*time.Minute))
	lowWeightButLatest.primarySet, lowWeightButLatest.primaryWeight = true, 0

	u1 := NewUserIDUser("a@example.com")
	u1.SelfCertifications = append(u1.SelfCertifications, earlier)
	u2 := NewUserIDUser("b@example.com")
	u2.SelfCertifications = append(u2.SelfCertifications, laterSameWeight)
	u3 := NewUserIDUser("c@example.com")
	u3.SelfCertifications = append(u3.SelfCertifications, lowWeightButLatest)

	k := &Key{PrimaryKey: primary, Users: []*User{u1, u2, u3}}
	_, user, _, ok := GetPrimaryUser(k, time.Now(), config.Default())
	if !ok {
		t.Fatal("expected a primary user to be found")
	}
	if user.UserID != "b@example.com" {
		t.Errorf("GetPrimaryUser chose %q, want b@example.com (higher weight, later within the tie)", user.UserID)
	}
}

func TestGetPrimaryUserNoCandidates(t *testing.T) {
	primary := newFakePrimary(1, time.Now())
	k := &Key{PrimaryKey: primary, Users: []*User{NewUserIDUser("a@example.com")}}
	if _, _, _, ok := GetPrimaryUser(k, time.Now(), config.Default()); ok {
		t.Fatal("expected ok=false when no user has a self-certification")
	}
}

func TestVerifySubKeyFirstPassingBindingWins(t *testing.T) {
	now := time.Now()
	primary := newFakePrimary(1, now.Add(-time.Hour))
	sub := newFakeSubkey(2, now.Add(-time.Hour), enums.ECDH)

	bad := newFakeSelfCert(primary.KeyID(), now.Add(-50*time.Minute))
	bad.forceInvalid = true
	good := newFakeSelfCert(primary.KeyID(), now.Add(-30*time.Minute))
	good.neverExpires = true

	sk := &SubKey{Packet: sub, BindingSignatures: []packet.SignaturePacket{bad, good}}

	status := VerifySubKey(sk, primary, now, config.Default())
	if status != enums.StatusValid {
		t.Errorf("VerifySubKey = %v, want valid", status)
	}
}

func TestVerifySubKeyAllInvalid(t *testing.T) {
	now := time.Now()
	primary := newFakePrimary(1, now)
	sub := newFakeSubkey(2, now, enums.ECDH)
	bad := newFakeSelfCert(primary.KeyID(), now)
	bad.forceInvalid = true

	sk := &SubKey{Packet: sub, BindingSignatures: []packet.SignaturePacket{bad}}

	if got := VerifySubKey(sk, primary, now, config.Default()); got != enums.StatusInvalid {
		t.Errorf("VerifySubKey = %v, want invalid", got)
	}
}

func TestVerifySubKeyRevoked(t *testing.T) {
	now := time.Now()
	primary := newFakePrimary(1, now)
	sub := newFakeSubkey(2, now, enums.ECDH)
	binding := newFakeSelfCert(primary.KeyID(), now)
	binding.neverExpires = true

	rev := newFakeSelfCert(primary.KeyID(), now)
	rev.sigType = enums.SigSubkeyRevocation

	sk := &SubKey{
		Packet:                sub,
		BindingSignatures:     []packet.SignaturePacket{binding},
		RevocationSignatures:  []packet.SignaturePacket{rev},
	}

	if got := VerifySubKey(sk, primary, now, config.Default()); got != enums.StatusRevoked {
		t.Errorf("VerifySubKey = %v, want revoked", got)
	}
}

func TestIsDataExpiredBeforeCreation(t *testing.T) {
	created := time.Now()
	primary := newFakePrimary(1, created)
	sig := newFakeSelfCert(primary.KeyID(), created)
	sig.expSeconds, sig.expSet = 3600, true

	if !isDataExpired(primary, sig, created.Add(-time.Hour)) {
		t.Error("a check time before creation should count as expired")
	}
}

func TestIsDataExpiredNeverExpires(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	primary := newFakePrimary(1, created)
	sig := newFakeSelfCert(primary.KeyID(), created)
	sig.neverExpires = true

	if isDataExpired(primary, sig, time.Now()) {
		t.Error("a never-expiring signature should not report expired")
	}
}

func TestIsDataExpiredZeroTimeDisablesCheck(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	primary := newFakePrimary(1, created)
	sig := newFakeSelfCert(primary.KeyID(), created)
	sig.expSeconds, sig.expSet = 1, true

	if isDataExpired(primary, sig, time.Time{}) {
		t.Error("a zero check time should disable expiration checking")
	}
}

func TestVerifyCertificateCachesVerification(t *testing.T) {
	now := time.Now()
	primary := newFakePrimary(1, now)
	sig := newFakeSelfCert(primary.KeyID(), now)
	sig.verified = false
	user := NewUserIDUser("a@example.com")

	if !VerifyCertificate(sig, primary, user, config.Default()) {
		t.Fatal("expected verification to succeed")
	}
	if !sig.Verified() {
		t.Error("VerifyCertificate did not cache the verified=true result")
	}
}
