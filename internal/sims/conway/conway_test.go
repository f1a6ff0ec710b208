package conway

import (
	"slices"
	"testing"
)

func newTestSim(t *testing.T, w, h int) *Conway {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	sim, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%dx%d): %v", w, h, err)
	}
	return sim
}

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 10}, {10, -1}, {0, 0}} {
		cfg := DefaultConfig()
		cfg.Width = dims[0]
		cfg.Height = dims[1]
		if _, err := New(cfg); err == nil {
			t.Errorf("New(%dx%d) succeeded, want validation error", dims[0], dims[1])
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	sim := newTestSim(t, 5, 5)
	w := sim.Size().W
	set := func(x, y int) { sim.Cells()[y*w+x] = 1 }
	set(2, 1)
	set(2, 2)
	set(2, 3)

	assertAlive := func(expects map[[2]int]bool, label string) {
		t.Helper()
		cells := sim.Cells()
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				alive := cells[y*w+x] == 1
				_, shouldBeAlive := expects[[2]int{x, y}]
				if shouldBeAlive != alive {
					t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, x, y, alive, shouldBeAlive)
				}
			}
		}
	}

	sim.Step()
	assertAlive(map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}, "after first step")

	sim.Step()
	assertAlive(map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}, "after second step")
}

func TestBlockStillLife(t *testing.T) {
	sim := newTestSim(t, 6, 6)
	w := sim.Size().W
	for _, p := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		sim.Cells()[p[1]*w+p[0]] = 1
	}
	want := append([]uint8(nil), sim.Cells()...)

	for i := 0; i < 10; i++ {
		sim.Step()
		if !slices.Equal(want, sim.Cells()) {
			t.Fatalf("block changed after %d steps", i+1)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24

	a, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	a.Reset(99)
	b.Reset(99)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("equal seeds produced different boards after Reset")
	}

	for i := 0; i < 20; i++ {
		a.Step()
		b.Step()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("equal seeds diverged after %d steps", i+1)
		}
	}
}

func TestRandomizeOverwritesBothBuffers(t *testing.T) {
	sim := newTestSim(t, 16, 16)
	sim.Reset(7)

	// Reading the grid twice must yield identical content; reading never
	// advances state.
	first := append([]uint8(nil), sim.Cells()...)
	if !slices.Equal(first, sim.Cells()) {
		t.Fatal("repeated Cells reads disagree after Reset")
	}
	if !slices.Equal(sim.cur.Cells(), sim.nxt.Cells()) {
		t.Fatal("current and next buffers disagree immediately after Reset")
	}

	// A later Randomize must leave no residue of the previous generation.
	sim.Step()
	sim.Randomize(0)
	for i, v := range sim.Cells() {
		if v != 1 {
			t.Fatalf("cell %d dead after Randomize(0), want fully live grid", i)
		}
	}
	if !slices.Equal(sim.cur.Cells(), sim.nxt.Cells()) {
		t.Fatal("current and next buffers disagree after Randomize")
	}
}

func TestNormalizeWrapsNeighborOffsets(t *testing.T) {
	sim := newTestSim(t, 3, 3)

	if x, y := sim.normalize(-1, -1); x != 2 || y != 2 {
		t.Fatalf("normalize(-1,-1) = (%d,%d), want (2,2)", x, y)
	}
	if x, y := sim.normalize(3, 3); x != 0 || y != 0 {
		t.Fatalf("normalize(3,3) = (%d,%d), want (0,0)", x, y)
	}

	// A live cell at (0,0) is a wrapped neighbor of the far corner.
	sim.Cells()[0] = 1
	if n := sim.liveNeighbors(2, 2); n != 1 {
		t.Fatalf("liveNeighbors(2,2) = %d, want 1 via toroidal wrap", n)
	}
}

func TestSingleCellGrid(t *testing.T) {
	sim := newTestSim(t, 1, 1)

	sim.Cells()[0] = 1
	// All 8 offsets wrap back to the cell itself.
	if n := sim.liveNeighbors(0, 0); n != 8 {
		t.Fatalf("liveNeighbors on 1x1 grid = %d, want 8", n)
	}
	sim.Step()
	if sim.Cells()[0] != 0 {
		t.Fatal("live cell with 8 neighbors survived, want death by overcrowding")
	}

	if n := sim.liveNeighbors(0, 0); n != 0 {
		t.Fatalf("liveNeighbors on empty 1x1 grid = %d, want 0", n)
	}
	sim.Step()
	if sim.Cells()[0] != 0 {
		t.Fatal("dead cell with 0 neighbors came alive")
	}
}

func TestRandomizeSparsenessDensity(t *testing.T) {
	sim := newTestSim(t, 64, 64)
	sim.Reset(1)

	sim.Randomize(9)
	live := 0
	for _, v := range sim.Cells() {
		if v == 1 {
			live++
		}
	}
	// Live probability is 1/10 per cell; allow a wide band around the
	// expectation of ~410 cells.
	if live < 200 || live > 700 {
		t.Fatalf("Randomize(9) produced %d live cells out of %d, outside plausible range", live, 64*64)
	}
}
