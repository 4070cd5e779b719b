package observability

import (
	"context"
	"sync"
	"time"
)

// Stats counts events in memory. It implements every hook interface and is
// safe for concurrent use.
type Stats struct {
	mu       sync.Mutex
	snapshot StatsSnapshot
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	Generated       int64            `json:"generated"`
	Failed          int64            `json:"failed"`
	Stories         int64            `json:"stories"`
	CacheHits       int64            `json:"cache_hits"`
	CacheMisses     int64            `json:"cache_misses"`
	Requests        int64            `json:"requests"`
	ServerErrors    int64            `json:"server_errors"`
	ByMood          map[string]int64 `json:"by_mood"`
	ByStyle         map[string]int64 `json:"by_style"`
	TotalRenderTime time.Duration    `json:"total_render_time_ns"`
}

// NewStats creates zeroed counters.
func NewStats() *Stats {
	return &Stats{snapshot: StatsSnapshot{
		ByMood:  make(map[string]int64),
		ByStyle: make(map[string]int64),
	}}
}

// Snapshot copies the counters.
func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.snapshot
	out.ByMood = make(map[string]int64, len(s.snapshot.ByMood))
	for k, v := range s.snapshot.ByMood {
		out.ByMood[k] = v
	}
	out.ByStyle = make(map[string]int64, len(s.snapshot.ByStyle))
	for k, v := range s.snapshot.ByStyle {
		out.ByStyle[k] = v
	}
	return out
}

func (s *Stats) OnGenerateStart(context.Context, string, string) {}

func (s *Stats) OnGenerateComplete(_ context.Context, mood, style string, d time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.snapshot.Failed++
		return
	}
	s.snapshot.Generated++
	s.snapshot.ByMood[mood]++
	s.snapshot.ByStyle[style]++
	s.snapshot.TotalRenderTime += d
}

func (s *Stats) OnStoryComplete(_ context.Context, _ string, _ time.Duration, err error) {
	if err != nil {
		return
	}
	s.mu.Lock()
	s.snapshot.Stories++
	s.mu.Unlock()
}

func (s *Stats) OnCacheHit(context.Context, string) {
	s.mu.Lock()
	s.snapshot.CacheHits++
	s.mu.Unlock()
}

func (s *Stats) OnCacheMiss(context.Context, string) {
	s.mu.Lock()
	s.snapshot.CacheMisses++
	s.mu.Unlock()
}

func (s *Stats) OnCacheSet(context.Context, string, int) {}

func (s *Stats) OnRequest(_ context.Context, _, _ string, status int, _ time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Requests++
	if status >= 500 {
		s.snapshot.ServerErrors++
	}
}

var (
	_ GenerationHooks = (*Stats)(nil)
	_ CacheHooks      = (*Stats)(nil)
	_ HTTPHooks       = (*Stats)(nil)
)
