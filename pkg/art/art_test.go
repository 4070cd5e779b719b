package art

import (
	"testing"

	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
)

func TestMoodsComplete(t *testing.T) {
	ms := Moods()
	if len(ms) != 8 {
		t.Fatalf("Moods() returned %d moods, want 8", len(ms))
	}
	seen := make(map[Mood]bool)
	for _, m := range ms {
		if seen[m] {
			t.Errorf("duplicate mood %q", m)
		}
		seen[m] = true
		if !m.Valid() {
			t.Errorf("mood %q not valid", m)
		}
		if m.Info().Label == "" || m.Info().Emoji == "" {
			t.Errorf("mood %q missing display info", m)
		}
	}

	// Mutating the returned slice must not leak into the package.
	ms[0] = "bogus"
	if Moods()[0] != Happy {
		t.Error("Moods() should return a copy")
	}
}

func TestStylesComplete(t *testing.T) {
	ss := Styles()
	if len(ss) != 10 {
		t.Fatalf("Styles() returned %d styles, want 10", len(ss))
	}
	for _, s := range ss {
		if !s.Valid() {
			t.Errorf("style %q not valid", s)
		}
		info := s.Info()
		if info.Label == "" || info.Description == "" {
			t.Errorf("style %q missing display info", s)
		}
	}
}

func TestParseMood(t *testing.T) {
	tests := []struct {
		in      string
		want    Mood
		wantErr bool
	}{
		{"happy", Happy, false},
		{"  Calm ", Calm, false},
		{"MELANCHOLIC", Melancholic, false},
		{"", "", true},
		{"angry", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMood(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMood(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !moodarterrors.Is(err, moodarterrors.ErrCodeUnknownMood) {
				t.Errorf("ParseMood(%q) code = %v, want UNKNOWN_MOOD", tt.in, moodarterrors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseMood(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"pixel", Pixel, false},
		{"Neon", Neon, false},
		{" vintage", Vintage, false},
		{"cubist", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStyle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !moodarterrors.Is(err, moodarterrors.ErrCodeUnknownStyle) {
				t.Errorf("ParseStyle(%q) code = %v, want UNKNOWN_STYLE", tt.in, moodarterrors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerationConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  GenerationConfig
		code moodarterrors.Code
	}{
		{"valid", GenerationConfig{Mood: Dreamy, Style: Cosmic}, ""},
		{"valid with prompt", GenerationConfig{Mood: Calm, Style: Watercolor, CustomPrompt: "a lake"}, ""},
		{"bad mood", GenerationConfig{Mood: "angry", Style: Cosmic}, moodarterrors.ErrCodeUnknownMood},
		{"bad style", GenerationConfig{Mood: Calm, Style: "cubist"}, moodarterrors.ErrCodeUnknownStyle},
		{"bad prompt", GenerationConfig{Mood: Calm, Style: Pixel, CustomPrompt: "x\x00"}, moodarterrors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if got := moodarterrors.GetCode(err); got != tt.code {
				t.Errorf("Validate() code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestIdeas(t *testing.T) {
	list := Ideas()
	if len(list) == 0 {
		t.Fatal("Ideas() is empty")
	}
	for _, idea := range list {
		if !idea.Mood.Valid() || !idea.Style.Valid() {
			t.Errorf("idea %q pairs %q with %q", idea.Idea, idea.Mood, idea.Style)
		}
		if idea.Idea == "" {
			t.Errorf("idea for %s/%s has no text", idea.Mood, idea.Style)
		}
	}

	list[0].Idea = "changed"
	if Ideas()[0].Idea == "changed" {
		t.Error("Ideas() exposed internal storage")
	}
}
