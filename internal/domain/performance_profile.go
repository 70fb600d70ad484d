package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const ContextProfileKey = "performanceProfile"

func NewPeformanceProfile() *PerformanceProfile {
	return &PerformanceProfile{
		StartTime: time.Now(),
	}
}

type PerformanceProfileEvent struct {
	Name      string    `json:"name"`
	ElapsedMs int64     `json:"elapsedMs"`
	Time      time.Time `json:"time"`
}

// PerformanceProfile records how long each stage of a run took
type PerformanceProfile struct {
	StartTime time.Time                 `json:"-"`
	Events    []PerformanceProfileEvent `json:"events"`
	TotalMs   int64                     `json:"totalMs"`
}

// GetPerformanceProfile returns the profile stored in ctx, or a fresh
// detached one so callers never need a nil check
func GetPerformanceProfile(ctx context.Context) *PerformanceProfile {
	if p, ok := ctx.Value(ContextProfileKey).(*PerformanceProfile); ok {
		return p
	}
	return NewPeformanceProfile()
}

func (p *PerformanceProfile) End() {
	p.TotalMs = time.Since(p.StartTime).Milliseconds()
}

func (p *PerformanceProfile) Add(name string) {
	last := p.StartTime
	if len(p.Events) > 0 {
		last = p.Events[len(p.Events)-1].Time
	}
	now := time.Now()
	p.Events = append(p.Events, PerformanceProfileEvent{
		Name:      name,
		ElapsedMs: now.Sub(last).Milliseconds(),
		Time:      now,
	})
}

func (p PerformanceProfile) EventNames() []string {
	out := []string{}
	for _, e := range p.Events {
		out = append(out, e.Name)
	}
	return out
}

func (p PerformanceProfile) ToJsonBytes() ([]byte, error) {
	// i dont think this should ever err
	bytes, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal performance profile: %w", err)
	}
	return bytes, nil
}
