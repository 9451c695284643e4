package vapid

import "github.com/golang-jwt/jwt/v5"

// Claims is the decoded payload of a verified token, exactly as produced by
// the token codec.
type Claims = jwt.MapClaims
