package service

import (
	"math/rand/v2"
	"strconv"
)

// IDGenerator produces candidate user IDs. Candidates may collide;
// UserService checks and retries.
type IDGenerator interface {
	NewID() string
}

// randomIDGenerator draws uniformly from [0, 10^digits - 1) and renders
// the number in decimal without zero padding.
type randomIDGenerator struct {
	max int64
}

// NewRandomIDGenerator returns a generator of decimal IDs with at most digits digits.
// digits is clamped to [1, 18].
func NewRandomIDGenerator(digits int) IDGenerator {
	digits = min(max(digits, 1), 18)
	n := int64(1)
	for i := 0; i < digits; i++ {
		n *= 10
	}
	return &randomIDGenerator{max: n - 1}
}

func (g *randomIDGenerator) NewID() string {
	return strconv.FormatInt(rand.Int64N(g.max), 10)
}
