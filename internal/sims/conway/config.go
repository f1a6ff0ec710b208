package conway

import "strconv"

// Config controls the automaton dimensions and seeding behavior.
type Config struct {
	Width  int
	Height int

	// Sparseness thins the random seed: each cell draws a uniform integer
	// in [0, Sparseness] and comes up alive only on a zero, so the live
	// probability is 1/(Sparseness+1). Zero is a valid degenerate value
	// that fills the whole grid.
	Sparseness int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 80, Height: 60, Sparseness: 2, Seed: 42}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["sparseness"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Sparseness = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
