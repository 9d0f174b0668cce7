package openpgp

import (
	"time"

	"github.com/sanjanarajan/openpgpjs/openpgp/config"
	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/keyerrors"
	"github.com/sanjanarajan/openpgpjs/openpgp/packet"
)

// containsRaw reports whether raw already appears among sigs, comparing
// in constant time per entry — base/extra signatures may originate from an
// adversarial second copy of a key, so dedup never short-circuits on where
// two raw encodings first differ.
func containsRaw(sigs []packet.SignaturePacket, raw []byte) bool {
	for _, s := range sigs {
		if packet.ConstantTimeEqual(s.Raw(), raw) {
			return true
		}
	}
	return false
}

// dedupSignatures appends every signature from extra to base whose raw
// bytes don't already appear in base, preserving base's existing order
// and extra's relative order among the newly appended ones (spec 4.8:
// "dedup is by raw signature bytes").
func dedupSignatures(base []packet.SignaturePacket, extra []packet.SignaturePacket) []packet.SignaturePacket {
	for _, s := range extra {
		if containsRaw(base, s.Raw()) {
			continue
		}
		base = append(base, s)
	}
	return base
}

// mergeBindings implements spec 4.8's per-issuer keep-newer rule for
// subkey-binding signatures: a source binding sharing an issuer key-ID
// with an existing destination binding replaces it only if later-created;
// a source binding with a new issuer is appended (subject to dedup).
func mergeBindings(dst []packet.SignaturePacket, src []packet.SignaturePacket) []packet.SignaturePacket {
	byIssuer := make(map[packet.KeyID]int, len(dst))
	out := make([]packet.SignaturePacket, len(dst))
	copy(out, dst)
	for i, b := range out {
		byIssuer[b.IssuerKeyID()] = i
	}

	for _, b := range src {
		if containsRaw(out, b.Raw()) {
			continue
		}
		issuer := b.IssuerKeyID()
		if idx, ok := byIssuer[issuer]; ok {
			if b.Created().After(out[idx].Created()) {
				out[idx] = b
			}
			continue
		}
		byIssuer[issuer] = len(out)
		out = append(out, b)
	}
	return out
}

// mergeUser merges src into dst in place, per spec 4.8 step 4: self
// certifications are included only if they verify, other-certifications
// unconditionally, revocations only if they verify — all subject to
// dedup by raw bytes.
func mergeUser(dst, src *User, primary packet.KeyPacket, cfg *config.Config) {
	var verifiedSelf []packet.SignaturePacket
	for _, sig := range src.SelfCertifications {
		if VerifyCertificate(sig, primary, src, cfg) {
			verifiedSelf = append(verifiedSelf, sig)
		}
	}
	dst.SelfCertifications = dedupSignatures(dst.SelfCertifications, verifiedSelf)
	dst.OtherCertifications = dedupSignatures(dst.OtherCertifications, src.OtherCertifications)

	var verifiedRevs []packet.SignaturePacket
	data := boundDataForUser(dst, primary)
	for _, rev := range src.RevocationSignatures {
		if rev.Verified() {
			verifiedRevs = append(verifiedRevs, rev)
			continue
		}
		if err := rev.Verify(primary, data); err == nil {
			verifiedRevs = append(verifiedRevs, rev)
		}
	}
	dst.RevocationSignatures = dedupSignatures(dst.RevocationSignatures, verifiedRevs)
}

// mergeSubKey merges src into dst in place: bindings follow the
// keep-newer-by-issuer rule, revocations are included unconditionally
// (subject to dedup) since they are always re-verified lazily by
// VerifySubKey before being trusted.
func mergeSubKey(dst, src *SubKey) {
	dst.BindingSignatures = mergeBindings(dst.BindingSignatures, src.BindingSignatures)
	dst.RevocationSignatures = dedupSignatures(dst.RevocationSignatures, src.RevocationSignatures)
}

// subKeySetsEqual reports whether a and b contain the same subkeys under
// fingerprint equality, ignoring order (spec 4.8 step 3).
func subKeySetsEqual(a, b []*SubKey) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, sk := range a {
		found := false
		for i, other := range b {
			if used[i] {
				continue
			}
			if sk.matchSubKey(other) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Update implements spec 4.8: the idempotent, order-independent merge of
// src into the receiver. A structurally invalid src is ignored silently;
// a src with a differing primary fingerprint is a hard failure, since
// merging two different keys would silently corrupt the receiver.
func (k *Key) Update(src *Key, at time.Time, cfg *config.Config) error {
	cfg = config.OrDefault(cfg)

	if VerifyPrimaryKey(src, at, cfg) == enums.StatusInvalid {
		return nil
	}
	if !k.PrimaryKey.Fingerprint().Equal(src.PrimaryKey.Fingerprint()) {
		return keyerrors.FingerprintMismatchError(src.PrimaryKey.Fingerprint().Hex())
	}

	if k.IsPublic() && src.IsPrivate() {
		if !subKeySetsEqual(k.SubKeys, src.SubKeys) {
			return keyerrors.SubkeyMismatchError(src.PrimaryKey.Fingerprint().Hex())
		}
		k.PrimaryKey = src.PrimaryKey
	}

	var verifiedRevs []packet.SignaturePacket
	keyData := packet.BoundData{Key: k.PrimaryKey}
	for _, rev := range src.RevocationSignatures {
		if rev.IsExpired(at) {
			continue
		}
		if rev.Verified() {
			verifiedRevs = append(verifiedRevs, rev)
			continue
		}
		if err := rev.Verify(k.PrimaryKey, keyData); err == nil {
			verifiedRevs = append(verifiedRevs, rev)
		}
	}
	k.RevocationSignatures = dedupSignatures(k.RevocationSignatures, verifiedRevs)
	k.DirectSignatures = dedupSignatures(k.DirectSignatures, src.DirectSignatures)

	for _, srcUser := range src.Users {
		var match *User
		for _, dstUser := range k.Users {
			if dstUser.matchUser(srcUser) {
				match = dstUser
				break
			}
		}
		if match == nil {
			k.Users = append(k.Users, srcUser)
			continue
		}
		mergeUser(match, srcUser, k.PrimaryKey, cfg)
	}

	for _, srcSubKey := range src.SubKeys {
		var match *SubKey
		for _, dstSubKey := range k.SubKeys {
			if dstSubKey.matchSubKey(srcSubKey) {
				match = dstSubKey
				break
			}
		}
		if match == nil {
			k.SubKeys = append(k.SubKeys, srcSubKey)
			continue
		}
		mergeSubKey(match, srcSubKey)
	}

	return nil
}
