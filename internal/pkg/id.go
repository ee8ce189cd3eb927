package pkg

import (
	"crypto/rand"
	"encoding/base64"
)

const sessionIDBytes = 16

// GenerateSessionID - generates a new unique session id.
func GenerateSessionID() string {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-session-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}
