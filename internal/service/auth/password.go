package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const tempPasswordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateTempPassword builds a random one-time password mailed to new users.
// The alphabet skips easily confused characters.
func GenerateTempPassword(length int) (string, error) {
	if length <= 0 {
		length = 12
	}

	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tempPasswordAlphabet))))
		if err != nil {
			return "", fmt.Errorf("error while generating password. Err: %w", err)
		}
		b[i] = tempPasswordAlphabet[n.Int64()]
	}

	return string(b), nil
}
