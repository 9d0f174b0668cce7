package packet

import "encoding/hex"

// OID is a DER-encoded ASN.1 object identifier, carried verbatim on the
// wire in ECDSA/ECDH/EdDSA public-key parameter vectors.
type OID []byte

// Bytes returns the raw DER bytes.
func (o OID) Bytes() []byte { return []byte(o) }

// Hex returns the lower-case hex encoding of the DER bytes.
func (o OID) Hex() string { return hex.EncodeToString(o) }
