// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package obfuscate

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// Affine transform applied to vote choices: f(x) = ChoiceScale*x + ChoiceOffset
const (
	ChoiceScale  = 7
	ChoiceOffset = 13
)

var ErrNotObfuscatedChoice = errors.New("value is not an obfuscated choice")

// ObfuscateText encodes plaintext as standard base64.
// NOT encryption: anyone can decode it.
func ObfuscateText(plaintext string) string {
	return base64.StdEncoding.EncodeToString([]byte(plaintext))
}

// DeobfuscateText reverses ObfuscateText
func DeobfuscateText(encoded string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode obfuscated text: %w", err)
	}
	return string(b), nil
}

// ObfuscateChoice maps a vote choice through 7x+13.
// NOT encryption: the mapping is public and trivially inverted.
func ObfuscateChoice(choice int) int {
	return choice*ChoiceScale + ChoiceOffset
}

// DeobfuscateChoice reverses ObfuscateChoice
func DeobfuscateChoice(value int) (int, error) {
	shifted := value - ChoiceOffset
	if shifted%ChoiceScale != 0 {
		return 0, fmt.Errorf("%w: %d", ErrNotObfuscatedChoice, value)
	}
	return shifted / ChoiceScale, nil
}
