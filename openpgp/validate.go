package openpgp

import (
	"time"

	"github.com/sanjanarajan/openpgpjs/openpgp/config"
	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/packet"
)

// boundDataForUser builds the BoundData a user-identity certification
// verifies against. UserAttribute users are certified the same way as
// UserID users here, with an empty identity string standing in for the
// attribute payload — go-crypto's public certification API has no
// distinct user-attribute verb this module can ground a separate path
// on, so a certification over a user attribute is not checked against
// the attribute's own bytes.
func boundDataForUser(u *User, key packet.KeyPacket) packet.BoundData {
	id := u.UserID
	return packet.BoundData{Key: key, UserID: id, HasUserID: true}
}

// expirationTime resolves the expiration of kp under the governing
// signature sig, per spec 4.4: v3 keys carry a day count at the key
// level; v4+ keys derive it from sig's keyExpirationTime seconds added
// to kp's creation time, unless the signature explicitly asserts the key
// never expires. never is true when there is no expiration to check.
func expirationTime(kp packet.KeyPacket, sig packet.SignaturePacket) (exp time.Time, never bool) {
	if kp.Version() == 3 {
		days := kp.ExpirationTimeV3()
		if days == 0 {
			return time.Time{}, true
		}
		return kp.Created().AddDate(0, 0, int(days)), false
	}
	if sig.KeyNeverExpires() {
		return time.Time{}, true
	}
	secs, present := sig.KeyExpirationSeconds()
	if !present || secs == 0 {
		return time.Time{}, true
	}
	return kp.Created().Add(time.Duration(secs) * time.Second), false
}

// isDataExpired reports whether kp is expired at `at` under sig's
// governing expiration, or sig itself has expired (spec 4.4): "created
// <= t < expirationTime" failing, or the governing signature's own
// validity window elapsed. A zero `at` disables the check.
func isDataExpired(kp packet.KeyPacket, sig packet.SignaturePacket, at time.Time) bool {
	if at.IsZero() {
		return false
	}
	if sig.IsExpired(at) {
		return true
	}
	if at.Before(kp.Created()) {
		return true
	}
	exp, never := expirationTime(kp, sig)
	if never {
		return false
	}
	return !at.Before(exp)
}

// isDataRevoked implements spec 4.3: verify each candidate revocation
// (skipping expired ones when the config says revocations expire) and
// collect the issuer key-IDs of those that verify. With a target
// signature given, report (and cache via SetRevoked) whether any
// surviving revocation's issuer matches the target's issuer; without
// one, report whether any revocation survived at all.
func isDataRevoked(verifyingKey packet.KeyPacket, data packet.BoundData, candidates []packet.SignaturePacket, target packet.SignaturePacket, at time.Time, cfg *config.Config) bool {
	cfg = config.OrDefault(cfg)
	var survivors []packet.KeyID
	for _, rev := range candidates {
		if cfg.RevocationsExpire && rev.IsExpired(at) {
			continue
		}
		if !rev.Verified() {
			if err := rev.Verify(verifyingKey, data); err != nil {
				continue
			}
		}
		survivors = append(survivors, rev.IssuerKeyID())
	}
	if target != nil {
		for _, id := range survivors {
			if id.Equal(target.IssuerKeyID(), false) {
				target.SetRevoked(true)
				return true
			}
		}
		return false
	}
	return len(survivors) > 0
}

// GetPrimaryUser implements the primary-user selector of spec 4.2. It
// returns the index of the winning User in k.Users, the User itself, and
// the self-certification that won, or ok=false if no candidate survives.
func GetPrimaryUser(k *Key, at time.Time, cfg *config.Config) (index int, user *User, selfCert packet.SignaturePacket, ok bool) {
	bestWeight := -1
	var bestCreated time.Time

	for idx, u := range k.Users {
		if u.IsAttribute {
			continue
		}
		data := boundDataForUser(u, k.PrimaryKey)
		for _, sig := range u.SelfCertifications {
			if !sig.Verified() {
				if err := sig.Verify(k.PrimaryKey, data); err != nil {
					continue
				}
			}
			if isDataRevoked(k.PrimaryKey, data, u.RevocationSignatures, sig, at, cfg) {
				continue
			}
			if sig.IsExpired(at) {
				continue
			}
			weight, _ := sig.PrimaryUserIDWeight()
			created := sig.Created()
			if weight > bestWeight || (weight == bestWeight && !ok) || (weight == bestWeight && created.After(bestCreated)) {
				bestWeight, bestCreated = weight, created
				index, user, selfCert, ok = idx, u, sig, true
			}
		}
	}
	return
}

// hasAnySelfCert reports whether any User in k carries at least one
// self-certification at all, independent of whether it verifies (spec
// 4.5 step 2's distinct "no_self_cert" status).
func hasAnySelfCert(k *Key) bool {
	for _, u := range k.Users {
		if len(u.SelfCertifications) > 0 {
			return true
		}
	}
	return false
}

// VerifyPrimaryKey implements spec 4.5.
func VerifyPrimaryKey(k *Key, at time.Time, cfg *config.Config) enums.KeyStatus {
	data := packet.BoundData{Key: k.PrimaryKey}
	if isDataRevoked(k.PrimaryKey, data, k.RevocationSignatures, nil, at, cfg) {
		return enums.StatusRevoked
	}
	if !hasAnySelfCert(k) {
		return enums.StatusNoSelfCert
	}
	_, _, selfCert, ok := GetPrimaryUser(k, at, cfg)
	if !ok {
		return enums.StatusInvalid
	}
	if isDataExpired(k.PrimaryKey, selfCert, at) {
		return enums.StatusExpired
	}
	return enums.StatusValid
}

// VerifySubKey implements spec 4.6: walk sk's binding signatures in
// order, returning valid on the first binding that verifies, is not
// revoked, and is not expired; otherwise the status of the
// last-examined binding, defaulting to invalid if sk has none.
func VerifySubKey(sk *SubKey, primary packet.KeyPacket, at time.Time, cfg *config.Config) enums.KeyStatus {
	if sk.Packet.Version() == 3 {
		if days := sk.Packet.ExpirationTimeV3(); days > 0 {
			exp := sk.Packet.Created().AddDate(0, 0, int(days))
			if !at.IsZero() && !at.Before(exp) {
				return enums.StatusExpired
			}
		}
	}

	data := packet.BoundData{Key: primary, BindTarget: sk.Packet, HasBindTarget: true}
	status := enums.StatusInvalid
	for _, binding := range sk.BindingSignatures {
		if !binding.Verified() {
			if err := binding.Verify(primary, data); err != nil {
				status = enums.StatusInvalid
				continue
			}
		}
		if isDataRevoked(primary, data, sk.RevocationSignatures, nil, at, cfg) {
			status = enums.StatusRevoked
			continue
		}
		if isDataExpired(sk.Packet, binding, at) {
			status = enums.StatusExpired
			continue
		}
		return enums.StatusValid
	}
	return status
}

// SubKeyExpirationTime returns the maximum getExpirationTime over sk's
// binding signatures, or never=true if any binding asserts non-expiry or
// sk has no bindings at all (spec 4.6).
func SubKeyExpirationTime(sk *SubKey) (exp time.Time, never bool) {
	found := false
	for _, b := range sk.BindingSignatures {
		e, n := expirationTime(sk.Packet, b)
		if n {
			return time.Time{}, true
		}
		if !found || e.After(exp) {
			exp, found = e, true
		}
	}
	if !found {
		return time.Time{}, true
	}
	return exp, false
}

// VerifyUser reports whether u carries at least one self-certification
// that verifies against primary and is neither revoked nor expired at
// `at` — a general-purpose "is this identity still asserted" check used
// independently of primary-user selection.
func VerifyUser(u *User, primary packet.KeyPacket, at time.Time, cfg *config.Config) bool {
	data := boundDataForUser(u, primary)
	for _, sig := range u.SelfCertifications {
		if VerifyCertificate(sig, primary, u, cfg) && !isDataRevoked(primary, data, u.RevocationSignatures, sig, at, cfg) && !isDataExpired(primary, sig, at) {
			return true
		}
	}
	return false
}

// VerifyCertificate verifies a single certification (self or
// third-party) over u, caching success via the signature's monotonic
// verified flag. A previously verified signature short-circuits.
func VerifyCertificate(sig packet.SignaturePacket, issuer packet.KeyPacket, u *User, cfg *config.Config) bool {
	if sig.Verified() {
		return true
	}
	return sig.Verify(issuer, boundDataForUser(u, issuer)) == nil
}
