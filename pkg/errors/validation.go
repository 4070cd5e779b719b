package errors

import (
	"unicode"
	"unicode/utf8"
)

// MaxPromptLength is the longest custom prompt accepted, in runes.
const MaxPromptLength = 500

// Surface size limits in pixels. Anything larger is refused before
// allocation instead of failing inside the image library.
const (
	MinSurfaceSize = 16
	MaxSurfaceSize = 4096
)

// ValidatePrompt checks a user supplied prompt.
//
// An empty prompt is valid (the factory substitutes a default). Otherwise the
// prompt must be valid UTF-8, at most MaxPromptLength runes, and free of
// control characters other than newline and tab.
func ValidatePrompt(prompt string) error {
	if prompt == "" {
		return nil
	}
	if !utf8.ValidString(prompt) {
		return New(ErrCodeInvalidInput, "prompt is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(prompt); n > MaxPromptLength {
		return New(ErrCodeInvalidInput, "prompt too long (%d runes, max %d)", n, MaxPromptLength)
	}
	for _, r := range prompt {
		if r == '\n' || r == '\t' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "prompt contains control characters")
		}
	}
	return nil
}

// ValidateSize checks a square surface edge length.
func ValidateSize(size int) error {
	if size < MinSurfaceSize || size > MaxSurfaceSize {
		return New(ErrCodeInvalidInput, "size %d out of range [%d, %d]", size, MinSurfaceSize, MaxSurfaceSize)
	}
	return nil
}
