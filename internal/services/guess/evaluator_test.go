package guess

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcrae/bullscows/internal/model"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		numDigits int
		want      bool
	}{
		{"distinct digits right length", "1234", 4, true},
		{"leading zero is allowed", "0123", 4, true},
		{"permutation of distinct digits", "9501", 4, true},
		{"too short", "123", 4, false},
		{"too long", "12345", 4, false},
		{"empty", "", 4, false},
		{"repeated digit", "1224", 4, false},
		{"non-digit character", "12a4", 4, false},
		{"whitespace", "12 4", 4, false},
		{"negative sign", "-123", 4, false},
		{"three digit case", "071", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.input, tt.numDigits))
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		guess  string
		want   model.Score
	}{
		{"exact match", "1234", "1234", model.Score{Bulls: 4, Cows: 0}},
		{"two bulls two cows", "1234", "1243", model.Score{Bulls: 2, Cows: 2}},
		{"all cows", "071", "710", model.Score{Bulls: 0, Cows: 3}},
		{"no overlap", "1234", "5678", model.Score{Bulls: 0, Cows: 0}},
		{"single bull", "1234", "1567", model.Score{Bulls: 1, Cows: 0}},
		{"single cow", "1234", "4567", model.Score{Bulls: 0, Cows: 1}},
		{"full reversal", "1234", "4321", model.Score{Bulls: 0, Cows: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.secret, tt.guess))
		})
	}
}

func TestEvaluateBullsPlusCowsNeverExceedsLength(t *testing.T) {
	// All distinct-digit guesses of length 3 against a fixed secret
	secret := "123"
	for a := 0; a <= 9; a++ {
		for b := 0; b <= 9; b++ {
			for c := 0; c <= 9; c++ {
				if a == b || a == c || b == c {
					continue
				}
				guess := string([]byte{byte('0' + a), byte('0' + b), byte('0' + c)})
				score := Evaluate(secret, guess)

				assert.LessOrEqual(t, score.Bulls+score.Cows, len(secret), "guess %q", guess)
				if guess == secret {
					assert.Equal(t, len(secret), score.Bulls, "guess %q", guess)
				} else {
					assert.Less(t, score.Bulls, len(secret), "guess %q", guess)
				}
			}
		}
	}
}
