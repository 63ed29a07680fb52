package client

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Claims is the decoded access token payload the client cares about.
// sub carries the username, uid the user id.
type Claims struct {
	Sub  string `json:"sub"`
	UID  string `json:"uid"`
	Role string `json:"role"`
}

// DecodeTokenPayload decodes the payload segment of a JWT without verifying
// the signature. The server is the only party that verifies tokens; the
// client only needs to read its own identity back out of them.
//
// Returns nil for anything that is not a three segment token with a
// base64url JSON payload. Never panics.
func DecodeTokenPayload(token string) *Claims {
	if token == "" {
		return nil
	}

	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(segments[1])
	if err != nil {
		return nil
	}

	claims := &Claims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil
	}

	return claims
}
