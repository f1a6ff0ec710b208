package app

import (
	"flag"
	"fmt"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width      int
	Height     int
	Scale      int
	Sparseness int
	FPS        int
	Seed       int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 80, Height: 60, Scale: 10, Sparseness: 2, FPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Sparseness, "sparseness", c.Sparseness, "seeding sparseness; live probability is 1/(n+1)")
	fs.IntVar(&c.FPS, "fps", c.FPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}

// Validate reports the first parameter no engine or window can be built from.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Sparseness < 0 {
		return fmt.Errorf("sparseness must be non-negative, got %d", c.Sparseness)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}

// SimOptions converts the flag values into a registry configuration map.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":          strconv.Itoa(c.Width),
		"h":          strconv.Itoa(c.Height),
		"sparseness": strconv.Itoa(c.Sparseness),
		"seed":       strconv.FormatInt(c.Seed, 10),
	}
}
