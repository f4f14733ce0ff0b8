package internal

import (
	"math/rand/v2"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultCodeLength is the length of auto-generated codes.
const DefaultCodeLength = 6

// CodeGenerator draws random candidate codes from the 62-character
// alphanumeric alphabet. Collisions are handled by the allocator and
// the unique index, not by entropy strength, so math/rand is enough.
// The zero value uses the shared auto-seeded source; tests set Rand
// for reproducibility.
type CodeGenerator struct {
	Rand *rand.Rand
}

// Generate returns a random code of the given length, or of
// DefaultCodeLength when length is not positive.
func (g CodeGenerator) Generate(length int) string {
	if length <= 0 {
		length = DefaultCodeLength
	}
	intN := rand.IntN
	if g.Rand != nil {
		intN = g.Rand.IntN
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = codeAlphabet[intN(len(codeAlphabet))]
	}
	return string(b)
}
