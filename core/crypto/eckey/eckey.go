// Package eckey converts raw NIST P-256 key material into DER structures
// wrapped in PEM containers, and back.
//
// Two raw encodings are accepted:
//   - a 32-byte private scalar
//   - a 65-byte uncompressed public point (0x04 || X || Y)
//
// The private scalar is encoded as a minimal RFC 5915 ECPrivateKey record
// (version, scalar and named curve; the optional public key field is left
// out) under the "EC PRIVATE KEY" label. The public point is encoded as an
// RFC 5480 SubjectPublicKeyInfo under the "PUBLIC KEY" label. Both outputs
// are accepted by crypto/x509 and by OpenSSL.
//
// Example usage:
//
//	raw, err := eckey.DecodeBase64URL("BHGS2M5s_HkY_ByoEbvZabEozLOb6xrnaPLoxj5dib8uU3l9rsyG93y3P7hI_s2RglkAiIazQMOzu8_awyz61p8")
//	if err != nil {
//	    return err
//	}
//	container, err := eckey.EncodePublicKey(raw)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(container)
//
// All encoding functions are deterministic and safe for concurrent use.
package eckey
