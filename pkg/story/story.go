// Package story writes short children's stories from per-mood templates.
//
// Each mood has a vocabulary [Bank] of four titles, themes, characters and
// settings, plus a fixed seven-paragraph template. [Engine.Generate] picks
// one entry from each list uniformly at random, fills the template and
// joins the paragraphs with blank lines.
package story

import (
	"context"
	"io"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/moodart/pkg/art"
	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
)

// ParagraphCount is the number of paragraphs in every story.
const ParagraphCount = 7

// ParagraphSeparator joins paragraphs in Story.Content.
const ParagraphSeparator = "\n\n"

// Story is one generated story. It is never modified after creation.
type Story struct {
	ID        string    `json:"id"`
	Mood      art.Mood  `json:"mood"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Paragraphs splits the content back into its paragraphs.
func (s Story) Paragraphs() []string {
	return strings.Split(s.Content, ParagraphSeparator)
}

// Engine generates stories. It is safe for concurrent use.
type Engine struct {
	mu       sync.Mutex
	rng      *rand.Rand
	delayMin time.Duration
	delayMax time.Duration
	logger   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes word choices reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef)) }
}

// WithDelay sets the simulated writing time range (default none).
func WithDelay(min, max time.Duration) Option {
	return func(e *Engine) {
		e.delayMin = min
		e.delayMax = max
	}
}

// WithLogger sets the engine's logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.delayMax < e.delayMin {
		e.delayMax = e.delayMin
	}
	return e
}

// Generate writes a story for m. Unknown moods fail with UNKNOWN_MOOD. If
// ctx ends during the simulated delay, ctx.Err() is returned.
func (e *Engine) Generate(ctx context.Context, m art.Mood) (Story, error) {
	bank, ok := banks[m]
	if !ok {
		return Story{}, moodarterrors.New(moodarterrors.ErrCodeUnknownMood, "unknown mood: %q", string(m))
	}
	if err := e.wait(ctx); err != nil {
		return Story{}, err
	}

	e.mu.Lock()
	title := pick(e.rng, bank.Titles)
	theme := pick(e.rng, bank.Themes)
	character := pick(e.rng, bank.Characters)
	setting := pick(e.rng, bank.Settings)
	e.mu.Unlock()

	s := Story{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Mood:      m,
		Title:     title,
		Content:   compose(m, theme, character, setting),
		CreatedAt: time.Now(),
	}
	e.logger.Debug("wrote story", "mood", m, "title", title, "character", character)
	return s, nil
}

func (e *Engine) wait(ctx context.Context) error {
	e.mu.Lock()
	d := e.delayMin
	if span := e.delayMax - e.delayMin; span > 0 {
		d += time.Duration(e.rng.Int64N(int64(span) + 1))
	}
	e.mu.Unlock()
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func pick(rng *rand.Rand, words []string) string {
	return words[rng.IntN(len(words))]
}

func compose(m art.Mood, theme, character, setting string) string {
	r := strings.NewReplacer("{theme}", theme, "{character}", character, "{setting}", setting)
	tmpl := templates[m]
	paragraphs := make([]string, len(tmpl))
	for i, line := range tmpl {
		paragraphs[i] = capitalize(r.Replace(line))
	}
	return strings.Join(paragraphs, ParagraphSeparator)
}

// capitalize upper-cases the first letter so paragraphs that open with a
// character name read as sentences.
func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
