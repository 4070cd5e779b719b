// Package art defines the closed vocabularies of the art engine: the eight
// moods a user can feel and the ten styles a piece can be painted in.
//
// Both are string enumerations so they serialize naturally in JSON, flags
// and config files. Values arriving from outside the program are checked
// with [ParseMood] and [ParseStyle]; every other package may assume a [Mood]
// or [Style] it receives is valid and treats anything else as a programming
// error.
//
//	m, err := art.ParseMood("calm")
//	s, err := art.ParseStyle("watercolor")
//	cfg := art.GenerationConfig{Mood: m, Style: s}
package art
