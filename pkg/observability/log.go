package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level, failures at warn.
type LogHooks struct {
	Logger *log.Logger
}

func (h LogHooks) OnGenerateStart(_ context.Context, mood, style string) {
	h.Logger.Debug("generation started", "mood", mood, "style", style)
}

func (h LogHooks) OnGenerateComplete(_ context.Context, mood, style string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("generation failed", "mood", mood, "style", style, "duration", d, "error", err)
		return
	}
	h.Logger.Debug("generation finished", "mood", mood, "style", style, "duration", d)
}

func (h LogHooks) OnStoryComplete(_ context.Context, mood string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("story failed", "mood", mood, "error", err)
		return
	}
	h.Logger.Debug("story finished", "mood", mood, "duration", d)
}

func (h LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ GenerationHooks = LogHooks{}
	_ CacheHooks      = LogHooks{}
)
