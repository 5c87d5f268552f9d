// Package util holds small shared helpers with no domain dependencies.
package util

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

const pickupCodeDigits = 6

// GeneratePickupCode returns a random 6-digit numeric code, zero-padded.
// Uses crypto/rand so codes are not guessable from one another.
func GeneratePickupCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < pickupCodeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate pickup code")
	}

	return fmt.Sprintf("%0*d", pickupCodeDigits, n), nil
}
