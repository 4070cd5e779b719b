package art

import (
	"strings"

	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
)

// Mood is the emotional category a piece or story expresses.
type Mood string

// The eight supported moods.
const (
	Happy       Mood = "happy"
	Calm        Mood = "calm"
	Energetic   Mood = "energetic"
	Mysterious  Mood = "mysterious"
	Melancholic Mood = "melancholic"
	Excited     Mood = "excited"
	Adventurous Mood = "adventurous"
	Dreamy      Mood = "dreamy"
)

var moods = []Mood{Happy, Calm, Energetic, Mysterious, Melancholic, Excited, Adventurous, Dreamy}

// MoodInfo holds display metadata for a mood.
type MoodInfo struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

var moodInfo = map[Mood]MoodInfo{
	Happy:       {Label: "Happy", Emoji: "😊"},
	Calm:        {Label: "Calm", Emoji: "🌊"},
	Energetic:   {Label: "Energetic", Emoji: "⚡"},
	Mysterious:  {Label: "Mysterious", Emoji: "🔮"},
	Melancholic: {Label: "Melancholic", Emoji: "🌧️"},
	Excited:     {Label: "Excited", Emoji: "🎉"},
	Adventurous: {Label: "Adventurous", Emoji: "🗻"},
	Dreamy:      {Label: "Dreamy", Emoji: "✨"},
}

// Moods returns all moods in display order. The slice is a fresh copy.
func Moods() []Mood {
	out := make([]Mood, len(moods))
	copy(out, moods)
	return out
}

// Valid reports whether m is one of the eight moods.
func (m Mood) Valid() bool {
	_, ok := moodInfo[m]
	return ok
}

// Info returns the display metadata for m. Invalid moods yield the zero value.
func (m Mood) Info() MoodInfo {
	return moodInfo[m]
}

func (m Mood) String() string { return string(m) }

// ParseMood converts user input to a Mood. Matching ignores case and
// surrounding whitespace. Anything outside the enumeration is UNKNOWN_MOOD.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", moodarterrors.New(moodarterrors.ErrCodeUnknownMood, "unknown mood: %q", s)
	}
	return m, nil
}
