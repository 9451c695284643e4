// Package vapid verifies ES256 compact tokens against raw P-256 public keys,
// the way Web Push (VAPID) application server keys are distributed: a
// base64url string holding the 65-byte uncompressed point.
//
// The raw key is turned into a "PUBLIC KEY" container by package eckey and
// handed to golang-jwt for signature and claim checks. A Verifier holds only
// immutable configuration, so a single instance can serve any number of
// concurrent calls.
//
// Example usage:
//
//	verifier, err := vapid.New(vapid.WithAudience("https://fcm.googleapis.com"))
//	if err != nil {
//	    return err
//	}
//	claims, err := verifier.Verify(ctx, token, publicKey)
//	switch {
//	case errors.Is(err, vapid.ErrMalformedKeyEncoding):
//	    // bad key string
//	case errors.Is(err, vapid.ErrVerificationFailed):
//	    log.Printf("rejected: %s", vapid.Reason(err))
//	}
package vapid
