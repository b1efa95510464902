package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"
)

const (
	// Min and Max bound the six-digit code space
	Min = 100000
	Max = 999999

	// MinLength and MaxLength bound a code a rider may submit
	MinLength = 4
	MaxLength = 6
)

var span = big.NewInt(Max - Min + 1)

// Generator produces verification codes from a random source
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// Generate returns a uniformly random code in [Min, Max]
func (g *Generator) Generate() (string, error) {
	n, err := rand.Int(g.rand, span)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+Min), nil
}

// Pair returns independent pickup and delivery codes
func (g *Generator) Pair() (pickup string, delivery string, err error) {
	if pickup, err = g.Generate(); err != nil {
		return "", "", err
	}
	if delivery, err = g.Generate(); err != nil {
		return "", "", err
	}
	return pickup, delivery, nil
}

// Match reports whether supplied satisfies stored. An empty stored code
// waives verification.
func Match(stored, supplied string) bool {
	if stored == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// IsNumeric reports whether s is a non-empty string of digits
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// WellFormed reports whether a submitted code is absent or 4 to 6 digits
func WellFormed(s string) bool {
	if s == "" {
		return true
	}
	return len(s) >= MinLength && len(s) <= MaxLength && IsNumeric(s)
}
