package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const recoveryCodeCount = 8

// GenerateRecoveryCodes produces one-time codes shown to the user exactly once.
func GenerateRecoveryCodes() ([]string, error) {
	codes := make([]string, recoveryCodeCount)
	for i := range codes {
		buf := make([]byte, 5)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("failed to generate recovery code: %w", err)
		}
		code := strings.ToUpper(hex.EncodeToString(buf))
		codes[i] = code[:5] + "-" + code[5:]
	}
	return codes, nil
}

// HashRecoveryCodes hashes codes for storage; plaintext is never persisted.
func HashRecoveryCodes(codes []string) []string {
	hashed := make([]string, len(codes))
	for i, code := range codes {
		hashed[i] = hashRecoveryCode(code)
	}
	return hashed
}

// VerifyRecoveryCode checks a code against stored hashes and returns the
// remaining hashes with the used one removed.
func VerifyRecoveryCode(code string, hashedCodes []string) (bool, []string) {
	target := hashRecoveryCode(strings.ToUpper(strings.TrimSpace(code)))
	for i, h := range hashedCodes {
		if h == target {
			remaining := make([]string, 0, len(hashedCodes)-1)
			remaining = append(remaining, hashedCodes[:i]...)
			remaining = append(remaining, hashedCodes[i+1:]...)
			return true, remaining
		}
	}
	return false, hashedCodes
}

func hashRecoveryCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
