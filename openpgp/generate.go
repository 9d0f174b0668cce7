package openpgp

import (
	"io"
	"time"

	"github.com/sanjanarajan/openpgpjs/openpgp/config"
	"github.com/sanjanarajan/openpgpjs/openpgp/curve"
	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/keyerrors"
	"github.com/sanjanarajan/openpgpjs/openpgp/packet"
)

// defaultPreferredHashes/defaultPreferredCiphers/defaultPreferredComp are
// the fixed preference lists spec 4.9 step 4 names verbatim.
var (
	defaultPreferredHashes  = []enums.HashAlgorithm{enums.SHA256, enums.SHA512, enums.SHA1}
	defaultPreferredCiphers = []enums.SymmetricAlgorithm{enums.AES256, enums.AES128, enums.AES192, enums.CAST5, enums.TripleDES}
	defaultPreferredComp    = []enums.CompressionAlgorithm{enums.CompressionZLIB, enums.CompressionZIP}
)

// GenerateOptions carries spec 4.9's generation parameters. Either
// PrimaryAlgorithm or Curve (or both) selects the key type; when
// PrimaryAlgorithm is left zero it is derived from Curve per step 1.
type GenerateOptions struct {
	Factory packet.Factory
	Rand    io.Reader

	PrimaryAlgorithm enums.PublicKeyAlgorithm
	SubKeyAlgorithm  enums.PublicKeyAlgorithm
	NumBits          int
	Curve            enums.CurveName

	Version int // key packet version; 0 means 4.

	UserIDs    []string // non-empty; the first becomes primary.
	Passphrase []byte
	Unlocked   bool

	KeyExpirationSeconds uint32
}

// resolvedAlgorithms implements spec 4.9 steps 1-2: deriving the
// primary/subkey algorithm pair from explicit options or from the curve,
// and rejecting anything outside the two permitted algorithm sets.
func resolvedAlgorithms(opts *GenerateOptions) (primary, subkey enums.PublicKeyAlgorithm, primaryCurve, subCurve enums.CurveName, err error) {
	primary, subkey = opts.PrimaryAlgorithm, opts.SubKeyAlgorithm
	primaryCurve, subCurve = opts.Curve, opts.Curve

	if primary == 0 {
		switch {
		case opts.Curve == "":
			primary = enums.RSAEncryptSign
		case curve.ImpliesEdDSA(opts.Curve):
			primary = enums.EdDSA
		default:
			primary = enums.ECDSA
		}
	}
	if subkey == 0 {
		if primary == enums.RSAEncryptSign {
			subkey = enums.RSAEncryptSign
		} else {
			subkey = enums.ECDH
		}
	}

	if primary != enums.RSAEncryptSign && primary != enums.ECDSA && primary != enums.EdDSA {
		return 0, 0, "", "", keyerrors.UnsupportedKeyTypeError(primary.Name())
	}
	if subkey != enums.RSAEncryptSign && subkey != enums.ECDH {
		return 0, 0, "", "", keyerrors.UnsupportedSubkeyTypeError(subkey.Name())
	}

	if subkey == enums.ECDH && primaryCurve != "" {
		if swapped, err := curve.EdDSACounterpart(primaryCurve); err == nil {
			subCurve = swapped
		}
	}
	return primary, subkey, primaryCurve, subCurve, nil
}

func selfCertTemplate(isPrimaryUserID bool, cfg *config.Config, expirationSeconds uint32) packet.SignatureTemplate {
	t := packet.SignatureTemplate{
		KeyFlags:                       enums.FlagCertify | enums.FlagSign,
		PreferredSymmetricAlgorithms:    defaultPreferredCiphers,
		PreferredHashAlgorithms:         defaultPreferredHashes,
		PreferredCompressionAlgorithms:  defaultPreferredComp,
		IsPrimaryUserID:                 isPrimaryUserID,
	}
	if cfg.IntegrityProtect {
		t.Features = []byte{1}
	}
	if expirationSeconds > 0 {
		t.KeyExpirationSeconds = expirationSeconds
	} else {
		t.KeyNeverExpires = true
	}
	return t
}

// Generate implements spec 4.9: produces a fresh, private Key from opts.
func Generate(opts *GenerateOptions, cfg *config.Config) (*Key, error) {
	cfg = config.OrDefault(cfg)
	if len(opts.UserIDs) == 0 {
		return nil, keyerrors.InvalidKeyError("generate requires at least one userId")
	}

	primaryAlgo, subAlgo, primaryCurve, subCurve, err := resolvedAlgorithms(opts)
	if err != nil {
		return nil, err
	}

	version := opts.Version
	if version == 0 {
		version = 4
	}

	primaryShell := opts.Factory.NewKeyPacket(version, false, true, primaryAlgo)
	if err := primaryShell.Generate(opts.Rand, opts.NumBits, primaryCurve); err != nil {
		return nil, err
	}

	subShell := opts.Factory.NewKeyPacket(version, true, true, subAlgo)
	if err := subShell.Generate(opts.Rand, opts.NumBits, subCurve); err != nil {
		return nil, err
	}

	k := &Key{PrimaryKey: primaryShell}
	for i, id := range opts.UserIDs {
		user := NewUserIDUser(id)
		sig := opts.Factory.NewSignaturePacket(enums.SigGenericCert)
		sig.Configure(selfCertTemplate(i == 0, cfg, opts.KeyExpirationSeconds))
		if err := sig.Sign(opts.Rand, primaryShell, packet.BoundData{Key: primaryShell, UserID: id, HasUserID: true}, cfg); err != nil {
			return nil, err
		}
		user.SelfCertifications = append(user.SelfCertifications, sig)
		k.Users = append(k.Users, user)
	}

	binding := opts.Factory.NewSignaturePacket(enums.SigSubkeyBinding)
	binding.Configure(packet.SignatureTemplate{
		KeyFlags:        enums.FlagEncryptCommunications | enums.FlagEncryptStorage,
		KeyNeverExpires: true,
	})
	if err := binding.Sign(opts.Rand, primaryShell, packet.BoundData{Key: primaryShell, BindTarget: subShell, HasBindTarget: true}, cfg); err != nil {
		return nil, err
	}
	k.SubKeys = append(k.SubKeys, &SubKey{Packet: subShell, BindingSignatures: []packet.SignaturePacket{binding}})

	if len(opts.Passphrase) > 0 {
		if err := primaryShell.Encrypt(opts.Passphrase, cfg); err != nil {
			return nil, err
		}
		if err := subShell.Encrypt(opts.Passphrase, cfg); err != nil {
			return nil, err
		}
		if !opts.Unlocked {
			primaryShell.ClearPrivateParams()
			subShell.ClearPrivateParams()
		}
	}

	return Build(k.ToPacketList(), nil)
}

// ReformatOptions reuses an existing decrypted private Key's primary and
// subkey packets while re-running the certification and binding steps
// with a new user set (spec 4.9's reformat). Only RSA keys
// are supported here, matching the source this module was distilled
// from.
type ReformatOptions struct {
	Rand    io.Reader
	Factory packet.Factory

	Source *Key

	UserIDs    []string
	Passphrase []byte
	Unlocked   bool

	KeyExpirationSeconds uint32
}

// Reformat implements spec 4.9's reformat operation.
func Reformat(opts *ReformatOptions, cfg *config.Config) (*Key, error) {
	cfg = config.OrDefault(cfg)
	if len(opts.UserIDs) == 0 {
		return nil, keyerrors.InvalidKeyError("reformat requires at least one userId")
	}
	if opts.Source == nil || !opts.Source.IsPrivate() || !opts.Source.PrimaryKey.IsDecrypted() {
		return nil, keyerrors.NotDecryptedError("reformat requires a decrypted private key")
	}
	if opts.Source.PrimaryKey.Algorithm() != enums.RSAEncryptSign {
		return nil, keyerrors.UnsupportedKeyTypeError(opts.Source.PrimaryKey.Algorithm().Name())
	}

	primaryShell := opts.Source.PrimaryKey
	k := &Key{PrimaryKey: primaryShell}

	for i, id := range opts.UserIDs {
		user := NewUserIDUser(id)
		sig := opts.Factory.NewSignaturePacket(enums.SigGenericCert)
		sig.Configure(selfCertTemplate(i == 0, cfg, opts.KeyExpirationSeconds))
		if err := sig.Sign(opts.Rand, primaryShell, packet.BoundData{Key: primaryShell, UserID: id, HasUserID: true}, cfg); err != nil {
			return nil, err
		}
		user.SelfCertifications = append(user.SelfCertifications, sig)
		k.Users = append(k.Users, user)
	}

	for _, sk := range opts.Source.SubKeys {
		if !sk.Packet.Algorithm().CanEncrypt() && !sk.Packet.Algorithm().CanSign() {
			continue
		}
		binding := opts.Factory.NewSignaturePacket(enums.SigSubkeyBinding)
		binding.Configure(packet.SignatureTemplate{
			KeyFlags:        enums.FlagEncryptCommunications | enums.FlagEncryptStorage,
			KeyNeverExpires: true,
		})
		if err := binding.Sign(opts.Rand, primaryShell, packet.BoundData{Key: primaryShell, BindTarget: sk.Packet, HasBindTarget: true}, cfg); err != nil {
			return nil, err
		}
		k.SubKeys = append(k.SubKeys, &SubKey{Packet: sk.Packet, BindingSignatures: []packet.SignaturePacket{binding}})
	}

	if len(opts.Passphrase) > 0 {
		if err := primaryShell.Encrypt(opts.Passphrase, cfg); err != nil {
			return nil, err
		}
		if !opts.Unlocked {
			primaryShell.ClearPrivateParams()
		}
	}

	return Build(k.ToPacketList(), nil)
}

// Revoke appends a verifying key-revocation signature over k's primary
// key, signed by k's own private material (SPEC_FULL.md §12's supplemented
// revocation-generation feature — the distilled spec names revocation
// only as a validation input, not a generation operation).
func (k *Key) Revoke(rand io.Reader, factory packet.Factory, cfg *config.Config) error {
	cfg = config.OrDefault(cfg)
	sig := factory.NewSignaturePacket(enums.SigKeyRevocation)
	if err := sig.Sign(rand, k.PrimaryKey, packet.BoundData{Key: k.PrimaryKey}, cfg); err != nil {
		return err
	}
	k.RevocationSignatures = append(k.RevocationSignatures, sig)
	return nil
}

// Revoke appends a verifying subkey-revocation signature over sk, signed
// by primary's private material.
func (sk *SubKey) Revoke(rand io.Reader, factory packet.Factory, primary packet.KeyPacket, cfg *config.Config) error {
	cfg = config.OrDefault(cfg)
	sig := factory.NewSignaturePacket(enums.SigSubkeyRevocation)
	if err := sig.Sign(rand, primary, packet.BoundData{Key: primary, BindTarget: sk.Packet, HasBindTarget: true}, cfg); err != nil {
		return err
	}
	sk.RevocationSignatures = append(sk.RevocationSignatures, sig)
	return nil
}

// AddUserID appends a new self-certified UserID to k, signed by k's own
// primary key (a supplemented feature: the distilled spec's generator
// only certifies the userIds given at generation time).
func (k *Key) AddUserID(rand io.Reader, factory packet.Factory, id string, cfg *config.Config) error {
	cfg = config.OrDefault(cfg)
	sig := factory.NewSignaturePacket(enums.SigGenericCert)
	sig.Configure(selfCertTemplate(false, cfg, 0))
	if err := sig.Sign(rand, k.PrimaryKey, packet.BoundData{Key: k.PrimaryKey, UserID: id, HasUserID: true}, cfg); err != nil {
		return err
	}
	user := NewUserIDUser(id)
	user.SelfCertifications = append(user.SelfCertifications, sig)
	k.Users = append(k.Users, user)
	return nil
}

// AddEncryptionSubKey generates and binds a fresh encryption subkey to k
// (a supplemented feature, symmetric to the generator's own initial
// subkey but callable after the fact).
func (k *Key) AddEncryptionSubKey(rand io.Reader, factory packet.Factory, algo enums.PublicKeyAlgorithm, numBits int, curveName enums.CurveName, cfg *config.Config) error {
	cfg = config.OrDefault(cfg)
	if algo != enums.RSAEncryptSign && algo != enums.ECDH {
		return keyerrors.UnsupportedSubkeyTypeError(algo.Name())
	}
	version := k.PrimaryKey.Version()
	subShell := factory.NewKeyPacket(version, true, true, algo)
	if err := subShell.Generate(rand, numBits, curveName); err != nil {
		return err
	}
	binding := factory.NewSignaturePacket(enums.SigSubkeyBinding)
	binding.Configure(packet.SignatureTemplate{
		KeyFlags:        enums.FlagEncryptCommunications | enums.FlagEncryptStorage,
		KeyNeverExpires: true,
	})
	if err := binding.Sign(rand, k.PrimaryKey, packet.BoundData{Key: k.PrimaryKey, BindTarget: subShell, HasBindTarget: true}, cfg); err != nil {
		return err
	}
	k.SubKeys = append(k.SubKeys, &SubKey{Packet: subShell, BindingSignatures: []packet.SignaturePacket{binding}})
	return nil
}

// ReSign re-certifies every non-attribute User in k with a fresh
// self-certification at the current time, preserving whichever User is
// presently the winning primary user — used after mutating a user's
// preferences; a supplemented feature grounded on the generator's own
// self-certification construction.
func (k *Key) ReSign(rand io.Reader, factory packet.Factory, at time.Time, cfg *config.Config) error {
	cfg = config.OrDefault(cfg)
	primaryIdx, _, _, havePrimary := GetPrimaryUser(k, at, cfg)
	for idx, u := range k.Users {
		if u.IsAttribute {
			continue
		}
		isPrimary := havePrimary && idx == primaryIdx
		sig := factory.NewSignaturePacket(enums.SigGenericCert)
		sig.Configure(selfCertTemplate(isPrimary, cfg, 0))
		if err := sig.Sign(rand, k.PrimaryKey, packet.BoundData{Key: k.PrimaryKey, UserID: u.UserID, HasUserID: true}, cfg); err != nil {
			return err
		}
		u.SelfCertifications = append(u.SelfCertifications, sig)
	}
	return nil
}
