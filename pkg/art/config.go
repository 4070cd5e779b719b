package art

import (
	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
)

// GenerationConfig is the transient input of one art generation request.
type GenerationConfig struct {
	Mood         Mood   `json:"mood"`
	Style        Style  `json:"style"`
	CustomPrompt string `json:"custom_prompt,omitempty"`
}

// Validate checks that mood and style are inside their enumerations and
// that the prompt, if any, is acceptable.
func (c GenerationConfig) Validate() error {
	if !c.Mood.Valid() {
		return moodarterrors.New(moodarterrors.ErrCodeUnknownMood, "unknown mood: %q", string(c.Mood))
	}
	if !c.Style.Valid() {
		return moodarterrors.New(moodarterrors.ErrCodeUnknownStyle, "unknown style: %q", string(c.Style))
	}
	return moodarterrors.ValidatePrompt(c.CustomPrompt)
}
