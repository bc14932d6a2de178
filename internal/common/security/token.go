package security

import (
	"crypto/rand"
	"encoding/hex"
)

// accessTokenBytes is the number of random bytes behind an access token.
// Hex encoding doubles it on the wire, so tokens are 256 characters long.
const accessTokenBytes = 128

// GenerateAccessToken returns the bearer credential issued to a user at
// registration. Tokens never expire and are compared by plain equality.
func GenerateAccessToken() (string, error) {
	buf := make([]byte, accessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
