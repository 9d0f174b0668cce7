package gocrypto

import (
	"time"

	gcpacket "github.com/ProtonMail/go-crypto/openpgp/packet"

	"github.com/sanjanarajan/openpgpjs/openpgp/enums"
	"github.com/sanjanarajan/openpgpjs/openpgp/packet"
)

// Factory is the gocrypto package's packet.Factory implementation: the
// generator's sole entry point for minting fresh, empty key and
// signature packets.
type Factory struct{}

// NewFactory returns the gocrypto Factory. There is no state to
// construct; every instance behaves identically.
func NewFactory() packet.Factory { return Factory{} }

// NewKeyPacket builds an empty key-packet shell. The generator always
// requests private=true shells (it fills them via Generate and derives
// the public half with WritePublicKey); a private=false shell is
// returned as a placeholder public key carrying only the algorithm and
// version, since go-crypto has no public-only generation path to back
// it with.
func (Factory) NewKeyPacket(version int, isSubkey, private bool, algo enums.PublicKeyAlgorithm) packet.KeyPacket {
	if private {
		return NewPrivateKeyShell(version, isSubkey, algo)
	}
	return &PublicKeyPacket{
		pk: &gcpacket.PublicKey{
			Version:      version,
			CreationTime: time.Time{},
			PubKeyAlgo:   toGCAlgo(algo),
		},
		isSubkey: isSubkey,
	}
}

// NewSignaturePacket builds an empty signature-packet shell of the given
// type, ready for SignaturePacket.Sign to populate.
func (Factory) NewSignaturePacket(sigType enums.SignatureType) packet.SignaturePacket {
	return newSignatureAdapter(sigType)
}
