package openpgp

import (
	"time"

	"github.com/sanjanarajan/openpgpjs/openpgp/config"
	"github.com/sanjanarajan/openpgpjs/openpgp/curve"
	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/keyerrors"
	"github.com/sanjanarajan/openpgpjs/openpgp/packet"
)

// eligibleSubKey reports whether sk's most-recent valid binding (spec
// 4.6) asserts the given flag, is live at `at`, and is not carried by an
// algorithm excluded by cfg — the common shape of spec 4.7's two
// selectors.
func eligibleSubKey(sk *SubKey, primary packet.KeyPacket, flag enums.KeyFlag, at time.Time, cfg *config.Config) (packet.SignaturePacket, bool) {
	if VerifySubKey(sk, primary, at, cfg) != enums.StatusValid {
		return nil, false
	}
	for _, excluded := range cfg.ExcludedAlgorithms {
		if sk.Packet.Algorithm() == excluded {
			return nil, false
		}
	}
	var binding packet.SignaturePacket
	for _, b := range sk.BindingSignatures {
		if !b.Verified() {
			continue
		}
		if binding == nil || b.Created().After(binding.Created()) {
			binding = b
		}
	}
	if binding == nil {
		return nil, false
	}
	if !keyFlagsOf(binding).Has(flag) {
		return nil, false
	}
	return binding, true
}

// GetEncryptionKeyPacket implements spec 4.7's encryption-key selector:
// prefer the most recently bound, still-valid subkey asserting
// encryptCommunications or encryptStorage; fall back to the primary key
// itself when it is the only encryption-capable packet and no eligible
// subkey exists. keyIDHint, when non-zero, restricts the search to the
// packet with that key ID.
func (k *Key) GetEncryptionKeyPacket(keyIDHint packet.KeyID, at time.Time, cfg *config.Config) (packet.KeyPacket, error) {
	cfg = config.OrDefault(cfg)
	var best packet.KeyPacket
	var bestCreated time.Time

	for _, sk := range k.SubKeys {
		if !keyIDHint.IsWildcard() && !sk.Packet.KeyID().Equal(keyIDHint, false) {
			continue
		}
		binding, ok := eligibleSubKey(sk, k.PrimaryKey, enums.FlagEncryptCommunications, at, cfg)
		if !ok {
			binding, ok = eligibleSubKey(sk, k.PrimaryKey, enums.FlagEncryptStorage, at, cfg)
		}
		if !ok {
			continue
		}
		if best == nil || binding.Created().After(bestCreated) {
			best, bestCreated = sk.Packet, binding.Created()
		}
	}
	if best != nil {
		return best, nil
	}

	if (keyIDHint.IsWildcard() || k.PrimaryKey.KeyID().Equal(keyIDHint, false)) &&
		VerifyPrimaryKey(k, at, cfg) == enums.StatusValid && k.PrimaryKey.Algorithm().CanEncrypt() {
		if _, _, selfCert, ok := GetPrimaryUser(k, at, cfg); ok {
			flags, present := selfCert.KeyFlags()
			if !present || flags.Has(enums.FlagEncryptCommunications|enums.FlagEncryptStorage) {
				return k.PrimaryKey, nil
			}
		}
	}
	return nil, keyerrors.EncryptionKeyNotFoundError(k.PrimaryKey.Fingerprint().Hex())
}

// GetSigningKeyPacket implements spec 4.7's signing-key selector: unlike
// GetEncryptionKeyPacket, signing considers the primary key first and only
// falls through to the subkey loop when the primary is ineligible (spec
// 4.7: "Consider the primary key first... Otherwise iterate subkeys").
func (k *Key) GetSigningKeyPacket(keyIDHint packet.KeyID, at time.Time, cfg *config.Config) (packet.KeyPacket, error) {
	cfg = config.OrDefault(cfg)

	if (keyIDHint.IsWildcard() || k.PrimaryKey.KeyID().Equal(keyIDHint, false)) &&
		VerifyPrimaryKey(k, at, cfg) == enums.StatusValid && k.PrimaryKey.Algorithm().CanSign() {
		if _, _, selfCert, ok := GetPrimaryUser(k, at, cfg); ok {
			flags, present := selfCert.KeyFlags()
			if !present || flags.Has(enums.FlagSign) {
				return k.PrimaryKey, nil
			}
		}
	}

	var best packet.KeyPacket
	var bestCreated time.Time

	for _, sk := range k.SubKeys {
		if !keyIDHint.IsWildcard() && !sk.Packet.KeyID().Equal(keyIDHint, false) {
			continue
		}
		binding, ok := eligibleSubKey(sk, k.PrimaryKey, enums.FlagSign, at, cfg)
		if !ok {
			continue
		}
		if best == nil || binding.Created().After(bestCreated) {
			best, bestCreated = sk.Packet, binding.Created()
		}
	}
	if best != nil {
		return best, nil
	}
	return nil, keyerrors.SigningKeyNotFoundError(k.PrimaryKey.Fingerprint().Hex())
}

// GetPreferredHashAlgo implements spec 4.10's hash-negotiation rule: start
// from the config default; if target is non-nil, raise it to the first
// entry of its primary user's preferredHashAlgorithms when that entry's
// digest is at least as wide, then raise it again to target's primary
// key's curve's preferred hash under the same rule when that key is ECC.
// target may be nil to simply report the config default.
func GetPreferredHashAlgo(target *Key, at time.Time, cfg *config.Config) enums.HashAlgorithm {
	cfg = config.OrDefault(cfg)
	result := cfg.PreferredHashAlgorithm

	if target == nil {
		return result
	}
	if _, _, selfCert, ok := GetPrimaryUser(target, at, cfg); ok {
		prefs := selfCert.PreferredHashAlgorithms()
		if len(prefs) > 0 && prefs[0].Known() && prefs[0].Size() >= result.Size() {
			result = prefs[0]
		}
	}
	if curveName, err := target.PrimaryKey.Curve(); err == nil {
		if info, err := curve.Find(curveName); err == nil && info.PreferredHash.Size() >= result.Size() {
			result = info.PreferredHash
		}
	}
	return result
}

// GetPreferredSymAlgo implements spec 4.10's cipher-negotiation rule:
// score every known, non-plaintext, non-IDEA cipher that appears on
// every key's primary user's preferredSymmetricAlgorithms list, with list
// position i worth 64>>i, and return the highest-scoring cipher. Returns
// the config default if no cipher appears on every key's list, or if keys
// is empty.
func GetPreferredSymAlgo(keys []*Key, at time.Time, cfg *config.Config) enums.SymmetricAlgorithm {
	cfg = config.OrDefault(cfg)
	if len(keys) == 0 {
		return cfg.EncryptionCipher
	}

	prefLists := make([][]enums.SymmetricAlgorithm, 0, len(keys))
	for _, k := range keys {
		_, _, selfCert, ok := GetPrimaryUser(k, at, cfg)
		if !ok {
			return cfg.EncryptionCipher
		}
		prefLists = append(prefLists, selfCert.PreferredSymmetricAlgorithms())
	}

	scores := map[enums.SymmetricAlgorithm]int{}
	for i, algo := range prefLists[0] {
		if !qualifiesForNegotiation(algo) {
			continue
		}
		if !onEveryList(algo, prefLists) {
			continue
		}
		scores[algo] += 64 >> uint(i)
	}

	best := cfg.EncryptionCipher
	bestScore := -1
	for algo, score := range scores {
		if score > bestScore {
			best, bestScore = algo, score
		}
	}
	return best
}

func qualifiesForNegotiation(algo enums.SymmetricAlgorithm) bool {
	return algo.Known() && algo != enums.Plaintext && algo != enums.IDEA
}

func onEveryList(algo enums.SymmetricAlgorithm, lists [][]enums.SymmetricAlgorithm) bool {
	for _, list := range lists {
		found := false
		for _, a := range list {
			if a == algo {
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
