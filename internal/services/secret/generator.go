package secret

import (
	"github.com/mcrae/bullscows/internal/dependencies/random"
	"github.com/mcrae/bullscows/internal/model"
)

// digitPool is the set of digits a secret is drawn from
const digitPool = "0123456789"

// Generator produces secret numbers for rounds
type Generator struct {
	random random.Random
}

// NewGenerator creates a new Generator
func NewGenerator(rnd random.Random) *Generator {
	return &Generator{random: rnd}
}

// Generate returns a secret of numDigits pairwise-distinct decimal
// digits whose first digit is non-zero. It samples digits uniformly
// without replacement and resamples whole candidates until the leading
// digit constraint holds, so the result is uniform over valid secrets.
func (g *Generator) Generate(numDigits int) (string, error) {
	if numDigits < 2 || numDigits > len(digitPool) {
		return "", model.ErrInvalidDigitCount
	}

	for {
		digits := []byte(digitPool)
		for i := 0; i < numDigits; i++ {
			j := i + g.random.Intn(len(digits)-i)
			digits[i], digits[j] = digits[j], digits[i]
		}
		if digits[0] == '0' {
			continue
		}
		return string(digits[:numDigits]), nil
	}
}
