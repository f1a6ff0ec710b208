package conway

import (
	"fmt"

	"conway/internal/core"
)

// mooreOffsets lists the 8 relative coordinates of the Moore neighborhood.
// Every offset has magnitude at most one, which is what normalize relies on.
var mooreOffsets = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
}

// Conway implements Conway's Game of Life on a toroidal grid. Two same-sized
// buffers exist at all times: cur holds the last completed generation and is
// the read source for neighbor lookups, nxt is the write target for the
// generation being computed. Step exchanges the two handles; cell data is
// never copied between buffers.
type Conway struct {
	cfg Config
	cur *core.ByteGrid
	nxt *core.ByteGrid
	rng *core.RNG
}

// New constructs an automaton from the provided configuration. Non-positive
// dimensions are rejected before any grid is allocated.
func New(cfg Config) (*Conway, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("conway: grid dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Sparseness < 0 {
		cfg.Sparseness = 0
	}
	return &Conway{
		cfg: cfg,
		cur: core.NewByteGrid(cfg.Width, cfg.Height),
		nxt: core.NewByteGrid(cfg.Width, cfg.Height),
		rng: core.NewRNG(cfg.Seed),
	}, nil
}

// Name returns the simulation identifier.
func (c *Conway) Name() string { return "conway" }

// Size returns the grid dimensions.
func (c *Conway) Size() core.Size { return core.Size{W: c.cfg.Width, H: c.cfg.Height} }

// Cells exposes the current generation as a row-major slice. The slice is
// valid until the next Step, Reset, or Randomize call; reading it has no
// side effects and never observes the in-progress buffer.
func (c *Conway) Cells() []uint8 { return c.cur.Cells() }

// Reset reseeds the random stream and reseeds the board with the configured
// sparseness. This also backs the externally triggered reset action.
func (c *Conway) Reset(seed int64) {
	c.rng = core.NewRNG(seed)
	c.Randomize(c.cfg.Sparseness)
}

// Randomize overwrites every cell with a fresh random value: each cell draws
// a uniform integer in [0, sparseness] and lives only on a zero. The result
// is written into both buffers so no stale generation survives; it may be
// called any number of times after construction.
func (c *Conway) Randomize(sparseness int) {
	if sparseness < 0 {
		sparseness = 0
	}
	cur, nxt := c.cur.Cells(), c.nxt.Cells()
	for i := range cur {
		var v uint8
		if c.rng.IntN(sparseness+1) == 0 {
			v = 1
		}
		cur[i] = v
		nxt[i] = v
	}
}

// normalize wraps a coordinate produced by a neighbor offset back into grid
// bounds. It is only correct for offsets of magnitude at most one: a
// negative value has the dimension added once and an overflowing value takes
// a single modulo. It must not be used for arbitrary out-of-range
// coordinates; ByteGrid.Wrap carries the general double-modulo form.
func (c *Conway) normalize(x, y int) (int, int) {
	w, h := c.cfg.Width, c.cfg.Height
	if x < 0 {
		x += w
	} else if x >= w {
		x %= w
	}
	if y < 0 {
		y += h
	} else if y >= h {
		y %= h
	}
	return x, y
}

// liveNeighbors counts the live cells in the Moore neighborhood of (x, y),
// reading only the current generation. On degenerate grids the wrapped
// offsets may revisit cells; a 1x1 grid resolves all 8 lookups to the cell
// itself.
func (c *Conway) liveNeighbors(x, y int) int {
	n := 0
	for _, off := range mooreOffsets {
		nx, ny := c.normalize(x+off[0], y+off[1])
		if c.cur.At(nx, ny) == 1 {
			n++
		}
	}
	return n
}

// Step advances the simulation by exactly one generation. Neighbor counts
// read only the current buffer, results are written only to the next buffer,
// so a cell never observes values produced earlier in the same step. The
// buffers swap roles once the pass completes.
func (c *Conway) Step() {
	w, h := c.cfg.Width, c.cfg.Height
	nxt := c.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := c.liveNeighbors(x, y)
			alive := c.cur.At(x, y) == 1
			idx := y*w + x
			// Survival on 2 or 3 neighbors, birth on exactly 3,
			// death otherwise.
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				nxt[idx] = 1
			} else {
				nxt[idx] = 0
			}
		}
	}
	c.cur, c.nxt = c.nxt, c.cur
}

func init() {
	core.Register("conway", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
