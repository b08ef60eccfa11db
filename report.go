package genvec

import (
	"time"
)

// Report summarizes one generator invocation.
type Report struct {
	Pattern      Pattern `json:"pattern"`
	Layer        int     `json:"layer"`
	ElementCount int     `json:"elementCount"`
	// Metrics holds pattern-specific values such as recursion depth
	// reached, grid size or largest prime.
	Metrics map[string]any `json:"metrics,omitempty"`
}

// Metric returns the named metric, or nil.
func (r Report) Metric(name string) any {
	return r.Metrics[name]
}

// SceneReport aggregates the per-layer reports of one generation call.
type SceneReport struct {
	Pattern       Pattern       `json:"generator"`
	LayerCount    int           `json:"layers"`
	Viewport      Viewport      `json:"viewport"`
	TotalElements int           `json:"totalElements"`
	Layers        []Report      `json:"details"`
	Seeded        bool          `json:"seeded"`
	Seed          float64       `json:"seed,omitempty"`
	Duration      time.Duration `json:"duration"`
	// Error is the message of a recovered generation failure. The scene is
	// then partial and ends with an inline error marker.
	Error string `json:"error,omitempty"`
}

// OK reports whether generation completed without failure.
func (r *SceneReport) OK() bool {
	return r.Error == ""
}

func metrics(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return m
}
