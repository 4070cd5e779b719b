package server

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/buildinfo"
	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
	"github.com/matzehuels/moodart/pkg/gallery"
	"github.com/matzehuels/moodart/pkg/palette"
	"github.com/matzehuels/moodart/pkg/pipeline"
	"github.com/matzehuels/moodart/pkg/story"
)

// Thumbnail width limits in pixels.
const (
	defaultThumbWidth = 128
	minThumbWidth     = 16
	maxThumbWidth     = 1024
)

// =============================================================================
// Catalogues
// =============================================================================

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// moodEntry is one row of /api/moods.
type moodEntry struct {
	ID      art.Mood             `json:"id"`
	Label   string               `json:"label"`
	Emoji   string               `json:"emoji"`
	Palette palette.ColorPalette `json:"palette"`
}

func (s *Server) listMoods(w http.ResponseWriter, r *http.Request) {
	out := make([]moodEntry, 0, len(art.Moods()))
	for _, m := range art.Moods() {
		info := m.Info()
		out = append(out, moodEntry{ID: m, Label: info.Label, Emoji: info.Emoji, Palette: palette.For(m)})
	}
	writeJSON(w, http.StatusOK, out)
}

// styleEntry is one row of /api/styles.
type styleEntry struct {
	ID art.Style `json:"id"`
	art.StyleInfo
}

func (s *Server) listStyles(w http.ResponseWriter, r *http.Request) {
	out := make([]styleEntry, 0, len(art.Styles()))
	for _, st := range art.Styles() {
		out = append(out, styleEntry{ID: st, StyleInfo: st.Info()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listIdeas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, art.Ideas())
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.stats.Snapshot())
}

// =============================================================================
// Art
// =============================================================================

// artRequest is the body of POST /api/art. Empty mood or style fall back to
// the session's current selection.
type artRequest struct {
	Mood   art.Mood  `json:"mood"`
	Style  art.Style `json:"style"`
	Prompt string    `json:"prompt"`
	Seed   uint64    `json:"seed"`
	Size   int       `json:"size"`
}

func (s *Server) createArt(w http.ResponseWriter, r *http.Request) {
	var req artRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	store := sessionFromCtx(r.Context()).Gallery
	selection := store.Snapshot()
	opts := pipeline.Options{
		Mood:   req.Mood,
		Style:  req.Style,
		Prompt: req.Prompt,
		Seed:   req.Seed,
		Size:   req.Size,
	}
	if opts.Mood == "" {
		opts.Mood = selection.Mood
	}
	if opts.Style == "" {
		opts.Style = selection.Style
	}
	if opts.Size == 0 {
		opts.Size = s.runner.Generator.Size()
	}

	store.Dispatch(gallery.StartGeneration{})
	res, err := s.runner.Generate(r.Context(), opts)
	if err != nil {
		store.Dispatch(gallery.GenerationFailed{Err: moodarterrors.UserMessage(err)})
		s.logger.Warn("generation failed", "mood", opts.Mood, "style", opts.Style, "error", err)
		writeError(w, err)
		return
	}
	store.Append(res.Piece)

	if res.CacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	writeJSON(w, http.StatusCreated, res.Piece)
}

// selectionRequest is the body of POST /api/mood and POST /api/style.
type selectionRequest struct {
	Mood  string `json:"mood,omitempty"`
	Style string `json:"style,omitempty"`
}

func (s *Server) selectMood(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	m, err := art.ParseMood(req.Mood)
	if err != nil {
		writeError(w, err)
		return
	}
	state := sessionFromCtx(r.Context()).Gallery.Dispatch(gallery.SelectMood{Mood: m})
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) selectStyle(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	st, err := art.ParseStyle(req.Style)
	if err != nil {
		writeError(w, err)
		return
	}
	state := sessionFromCtx(r.Context()).Gallery.Dispatch(gallery.SelectStyle{Style: st})
	writeJSON(w, http.StatusOK, state)
}

// =============================================================================
// Gallery
// =============================================================================

func (s *Server) getGallery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFromCtx(r.Context()).Gallery.Snapshot())
}

// currentRequest is the body of PUT /api/gallery/current. A null id clears
// the selection.
type currentRequest struct {
	ID *string `json:"id"`
}

func (s *Server) setCurrent(w http.ResponseWriter, r *http.Request) {
	var req currentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	id := ""
	if req.ID != nil {
		id = *req.ID
	}
	store := sessionFromCtx(r.Context()).Gallery
	if err := store.SetCurrent(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, store.Snapshot())
}

func (s *Server) getPiece(w http.ResponseWriter, r *http.Request) {
	p, err := sessionFromCtx(r.Context()).Gallery.Piece(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) deletePiece(w http.ResponseWriter, r *http.Request) {
	if err := sessionFromCtx(r.Context()).Gallery.Remove(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) pieceImage(w http.ResponseWriter, r *http.Request) {
	p, err := sessionFromCtx(r.Context()).Gallery.Piece(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := p.PNG()
	if err != nil {
		writeError(w, err)
		return
	}
	attachment(w, "image/png", p.Filename())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) pieceThumbnail(w http.ResponseWriter, r *http.Request) {
	width := defaultThumbWidth
	if raw := r.URL.Query().Get("w"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < minThumbWidth || n > maxThumbWidth {
			writeError(w, moodarterrors.New(moodarterrors.ErrCodeInvalidInput,
				"w must be an integer in [%d, %d]", minThumbWidth, maxThumbWidth))
			return
		}
		width = n
	}

	p, err := sessionFromCtx(r.Context()).Gallery.Piece(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := p.PNG()
	if err != nil {
		writeError(w, err)
		return
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		writeError(w, moodarterrors.Wrap(moodarterrors.ErrCodeInternal, err, "decode piece"))
		return
	}

	var buf bytes.Buffer
	thumb := imaging.Thumbnail(img, width, width, imaging.Lanczos)
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		writeError(w, moodarterrors.Wrap(moodarterrors.ErrCodeRenderingUnavailable, err, "encode thumbnail"))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// =============================================================================
// Stories
// =============================================================================

// storyRequest is the body of POST /api/stories. An empty mood uses the
// session's current selection.
type storyRequest struct {
	Mood art.Mood `json:"mood"`
}

func (s *Server) createStory(w http.ResponseWriter, r *http.Request) {
	var req storyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	store := sessionFromCtx(r.Context()).Gallery
	mood := req.Mood
	if mood == "" {
		mood = store.Snapshot().Mood
	}
	m, err := art.ParseMood(string(mood))
	if err != nil {
		writeError(w, err)
		return
	}

	st, err := s.runner.Story(r.Context(), m)
	if err != nil {
		writeError(w, err)
		return
	}
	store.Dispatch(gallery.AddStory{Story: st})
	writeJSON(w, http.StatusCreated, st)
}

func (s *Server) listStories(w http.ResponseWriter, r *http.Request) {
	stories := sessionFromCtx(r.Context()).Gallery.Snapshot().Stories
	if stories == nil {
		stories = []story.Story{}
	}
	writeJSON(w, http.StatusOK, stories)
}

func (s *Server) deleteStory(w http.ResponseWriter, r *http.Request) {
	if err := sessionFromCtx(r.Context()).Gallery.RemoveStory(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) exportStory(w http.ResponseWriter, r *http.Request) {
	st, err := sessionFromCtx(r.Context()).Gallery.Story(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	attachment(w, "text/plain; charset=utf-8", story.Filename(st))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(story.Export(st)))
}
