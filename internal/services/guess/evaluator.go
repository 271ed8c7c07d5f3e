// Package guess validates and scores guesses against a secret number.
// Both functions are pure; callers must reject invalid guesses before
// scoring them.
package guess

import "github.com/mcrae/bullscows/internal/model"

// IsValid reports whether input is a well-formed guess for a secret of
// numDigits digits: decimal digits only, exact length, all pairwise
// distinct. Unlike secrets, a guess may start with zero.
func IsValid(input string, numDigits int) bool {
	if len(input) != numDigits {
		return false
	}
	var seen [10]bool
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c < '0' || c > '9' {
			return false
		}
		if seen[c-'0'] {
			return false
		}
		seen[c-'0'] = true
	}
	return true
}

// Evaluate scores a guess against a secret of the same length. Bulls
// count positions where the digits match; cows count guess digits that
// occur elsewhere in the secret.
func Evaluate(secret, guess string) model.Score {
	var inSecret [10]bool
	for i := 0; i < len(secret); i++ {
		inSecret[secret[i]-'0'] = true
	}

	var score model.Score
	for i := 0; i < len(guess); i++ {
		switch {
		case guess[i] == secret[i]:
			score.Bulls++
		case inSecret[guess[i]-'0']:
			score.Cows++
		}
	}
	return score
}
