package eckey

import (
	"encoding/asn1"
	"slices"
)

// Curve parameters for NIST P-256 elliptic curve
const (
	// CurvePointSize is the size in bytes of each coordinate (X or Y) on the P-256 curve
	CurvePointSize = 32

	// Point compression prefixes
	UncompressedPointTag = 0x04 // Uncompressed point format: 0x04 || X || Y
	CompressedEvenTag    = 0x02 // Compressed point with even Y coordinate
	CompressedOddTag     = 0x03 // Compressed point with odd Y coordinate
)

// Raw key sizes
const (
	// PrivateKeyBytes is the size of a raw private scalar
	PrivateKeyBytes = CurvePointSize

	// PublicKeyBytes is the size of an uncompressed public key in bytes
	// Format: [tag:1][X:32][Y:32]
	PublicKeyBytes = 1 + CurvePointSize + CurvePointSize // 65 bytes
)

// PEM labels
const (
	PrivateKeyLabel = "EC PRIVATE KEY"
	PublicKeyLabel  = "PUBLIC KEY"
)

// ecPrivKeyVersion is the only ECPrivateKey version defined by RFC 5915.
const ecPrivKeyVersion = 1

var (
	// id-ecPublicKey, RFC 5480 section 2.1.1
	oidPublicKeyECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	// secp256r1 / prime256v1, RFC 5480 section 2.1.1.1
	oidNamedCurveP256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
)

// OIDPublicKeyECDSA returns a copy of the unrestricted EC public key algorithm identifier.
func OIDPublicKeyECDSA() asn1.ObjectIdentifier {
	return slices.Clone(oidPublicKeyECDSA)
}

// OIDNamedCurveP256 returns a copy of the P-256 named curve identifier.
func OIDNamedCurveP256() asn1.ObjectIdentifier {
	return slices.Clone(oidNamedCurveP256)
}
