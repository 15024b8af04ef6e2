package chore

import (
	"strings"
	"unicode"
)

// capitalizeFirst upper-cases the first letter of text.
func capitalizeFirst(text string) string {
	if text == "" {
		return text
	}
	runes := []rune(text)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// capitalizeSentences upper-cases the first letter of text and of each
// sentence following ". ".
func capitalizeSentences(text string) string {
	if text == "" {
		return text
	}

	parts := strings.Split(capitalizeFirst(text), ". ")
	for i := 1; i < len(parts); i++ {
		parts[i] = capitalizeFirst(parts[i])
	}

	return strings.Join(parts, ". ")
}
