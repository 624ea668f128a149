package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	tempPasswordLen = 10
	pwSymbols       = "!@#$%&*"
	pwUpper         = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	pwLower         = "abcdefghijklmnopqrstuvwxyz"
	pwDigits        = "0123456789"
)

// GenerateTempPassword returns a random password with at least one
// uppercase, one lowercase, one digit and one symbol. Used when a manager
// resets another account's password. Do not log the returned string.
func GenerateTempPassword() (string, error) {
	pick := func(s string) (byte, error) {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s))))
		if err != nil {
			return 0, err
		}
		return s[n.Int64()], nil
	}

	result := make([]byte, 0, tempPasswordLen)
	for _, set := range []string{pwUpper, pwLower, pwDigits, pwSymbols} {
		c, err := pick(set)
		if err != nil {
			return "", err
		}
		result = append(result, c)
	}
	all := pwUpper + pwLower + pwDigits + pwSymbols
	for len(result) < tempPasswordLen {
		c, err := pick(all)
		if err != nil {
			return "", err
		}
		result = append(result, c)
	}

	// Fisher-Yates with crypto/rand so the mandatory classes are not
	// always in the first four positions.
	for i := len(result) - 1; i >= 1; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("shuffle: %w", err)
		}
		j := int(n.Int64())
		result[i], result[j] = result[j], result[i]
	}
	return string(result), nil
}
