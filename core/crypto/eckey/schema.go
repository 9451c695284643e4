package eckey

import "encoding/asn1"

// ecPrivateKey is the RFC 5915 ECPrivateKey record without the optional
// [1] publicKey field:
//
//	ECPrivateKey ::= SEQUENCE {
//	    version        INTEGER { ecPrivkeyVer1(1) },
//	    privateKey     OCTET STRING,
//	    parameters [0] ECParameters {{ NamedCurve }} OPTIONAL }
type ecPrivateKey struct {
	Version       int
	PrivateKey    []byte
	NamedCurveOID asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
}

// algorithmIdentifier restricts the RFC 5280 AlgorithmIdentifier to the
// named-curve form used by RFC 5480.
type algorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	NamedCurve asn1.ObjectIdentifier
}

// subjectPublicKeyInfo is the RFC 5280 SubjectPublicKeyInfo record:
//
//	SubjectPublicKeyInfo ::= SEQUENCE {
//	    algorithm         AlgorithmIdentifier,
//	    subjectPublicKey  BIT STRING }
type subjectPublicKeyInfo struct {
	Algorithm algorithmIdentifier
	PublicKey asn1.BitString
}

func newECPrivateKey(scalar []byte) ecPrivateKey {
	return ecPrivateKey{
		Version:       ecPrivKeyVersion,
		PrivateKey:    scalar,
		NamedCurveOID: oidNamedCurveP256,
	}
}

func newSubjectPublicKeyInfo(point []byte) subjectPublicKeyInfo {
	return subjectPublicKeyInfo{
		Algorithm: algorithmIdentifier{
			Algorithm:  oidPublicKeyECDSA,
			NamedCurve: oidNamedCurveP256,
		},
		// BitLength is a whole number of bytes, so the unused-bits octet is 0.
		PublicKey: asn1.BitString{
			Bytes:     point,
			BitLength: len(point) * 8,
		},
	}
}
