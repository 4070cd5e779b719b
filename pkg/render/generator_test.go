package render

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/moodart/pkg/art"
	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
)

const testSize = 64

func TestGenerateAllCombinations(t *testing.T) {
	gen := New(WithSize(testSize))
	ctx := context.Background()
	for _, m := range art.Moods() {
		for _, st := range art.Styles() {
			t.Run(string(m)+"/"+string(st), func(t *testing.T) {
				img, err := gen.Generate(ctx, art.GenerationConfig{Mood: m, Style: st}, 0)
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				if !strings.HasPrefix(img.DataURI, DataURIPrefix) {
					t.Errorf("data URI prefix = %q", img.DataURI[:min(len(img.DataURI), 30)])
				}
				cfg, err := png.DecodeConfig(bytes.NewReader(img.PNG))
				if err != nil {
					t.Fatalf("decode png: %v", err)
				}
				if cfg.Width != testSize || cfg.Height != testSize {
					t.Errorf("dimensions = %dx%d, want %dx%d", cfg.Width, cfg.Height, testSize, testSize)
				}
				if img.Width != testSize || img.Height != testSize {
					t.Errorf("reported dimensions = %dx%d", img.Width, img.Height)
				}
				if img.Seed == 0 {
					t.Error("seed not reported")
				}
			})
		}
	}
}

func TestGenerateSeedReproducible(t *testing.T) {
	gen := New(WithSize(testSize))
	cfg := art.GenerationConfig{Mood: art.Mysterious, Style: art.Cosmic}
	a, err := gen.Generate(context.Background(), cfg, 99)
	if err != nil {
		t.Fatal(err)
	}
	b, err := gen.Generate(context.Background(), cfg, 99)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.PNG, b.PNG) {
		t.Error("same seed produced different PNGs")
	}
	c, err := gen.Generate(context.Background(), cfg, 100)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a.PNG, c.PNG) {
		t.Error("different seeds produced identical PNGs")
	}
}

func TestGenerateRepeatStructurallyEqual(t *testing.T) {
	gen := New(WithSize(testSize))
	cfg := art.GenerationConfig{Mood: art.Happy, Style: art.Abstract}
	var first Image
	for i := range 3 {
		img, err := gen.Generate(context.Background(), cfg, 0)
		if err != nil {
			t.Fatal(err)
		}
		if i == 0 {
			first = img
			continue
		}
		if img.Width != first.Width || img.Height != first.Height {
			t.Errorf("run %d: %dx%d, want %dx%d", i, img.Width, img.Height, first.Width, first.Height)
		}
	}
}

func TestGenerateZeroSeedUsesSource(t *testing.T) {
	gen := New(WithSize(testSize), WithSeedSource(func() uint64 { return 12345 }))
	img, err := gen.Generate(context.Background(), art.GenerationConfig{Mood: art.Calm, Style: art.Pixel}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if img.Seed != 12345 {
		t.Errorf("Seed = %d, want 12345", img.Seed)
	}
	again, _ := gen.Generate(context.Background(), art.GenerationConfig{Mood: art.Calm, Style: art.Pixel}, 12345)
	if !bytes.Equal(img.PNG, again.PNG) {
		t.Error("explicit seed did not reproduce the chosen seed's output")
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		gen  *Generator
		cfg  art.GenerationConfig
		code moodarterrors.Code
	}{
		{"unknown mood", New(WithSize(testSize)), art.GenerationConfig{Mood: "angry", Style: art.Neon}, moodarterrors.ErrCodeUnknownMood},
		{"unknown style", New(WithSize(testSize)), art.GenerationConfig{Mood: art.Happy, Style: "cubist"}, moodarterrors.ErrCodeUnknownStyle},
		{"bad prompt", New(WithSize(testSize)), art.GenerationConfig{Mood: art.Happy, Style: art.Neon, CustomPrompt: "a\x00b"}, moodarterrors.ErrCodeInvalidInput},
		{"too small", New(WithSize(4)), art.GenerationConfig{Mood: art.Happy, Style: art.Neon}, moodarterrors.ErrCodeInvalidInput},
		{"too large", New(WithSize(1 << 20)), art.GenerationConfig{Mood: art.Happy, Style: art.Neon}, moodarterrors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := tt.gen.Generate(context.Background(), tt.cfg, 1)
			if !moodarterrors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
			if img.PNG != nil || img.DataURI != "" {
				t.Error("failed generation returned image data")
			}
		})
	}
}

func TestGenerateCancelledDuringDelay(t *testing.T) {
	gen := New(WithSize(testSize), WithDelay(time.Hour, time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := gen.Generate(ctx, art.GenerationConfig{Mood: art.Happy, Style: art.Abstract}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestGenerateWaitsForDelay(t *testing.T) {
	gen := New(WithSize(testSize), WithDelay(20*time.Millisecond, 30*time.Millisecond))
	start := time.Now()
	if _, err := gen.Generate(context.Background(), art.GenerationConfig{Mood: art.Calm, Style: art.Minimalist}, 1); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("returned after %v, want at least 20ms", elapsed)
	}
}

func TestSized(t *testing.T) {
	gen := New()
	if gen.Size() != DefaultSize {
		t.Errorf("default size = %d, want %d", gen.Size(), DefaultSize)
	}
	small := gen.Sized(32)
	if small.Size() != 32 || gen.Size() != DefaultSize {
		t.Errorf("Sized changed the wrong generator: %d / %d", small.Size(), gen.Size())
	}
	if gen.Sized(0) != gen {
		t.Error("Sized(0) should return the receiver")
	}
}

func TestDataURIRoundTrip(t *testing.T) {
	gen := New(WithSize(testSize))
	img, err := gen.Generate(context.Background(), art.GenerationConfig{Mood: art.Excited, Style: art.Geometric}, 5)
	if err != nil {
		t.Fatal(err)
	}
	data, err := DecodeDataURI(img.DataURI)
	if err != nil {
		t.Fatalf("DecodeDataURI: %v", err)
	}
	if !bytes.Equal(data, img.PNG) {
		t.Error("decoded bytes differ from PNG")
	}

	for _, bad := range []string{"", "data:image/jpeg;base64,AAAA", DataURIPrefix + "!!!"} {
		if _, err := DecodeDataURI(bad); !moodarterrors.Is(err, moodarterrors.ErrCodeInvalidInput) {
			t.Errorf("DecodeDataURI(%q) error = %v, want INVALID_INPUT", bad, err)
		}
	}
}
