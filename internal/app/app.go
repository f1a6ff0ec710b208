//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"conway/internal/core"
	"conway/internal/render"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// stepTimeWindow is the sample count of the rolling step-duration average
// shown in the window title.
const stepTimeWindow = 5

// Game adapts a core simulation to the ebiten.Game interface. It polls
// input, paces simulation steps at the configured rate, and renders the
// grid snapshot the engine exposes after each completed step.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	status  *ui.Status
	pacer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	generation uint64
	stepTimes  [stepTimeWindow]float64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:      sim,
		painter:  gp,
		status:   ui.NewStatus(),
		pacer:    core.NewFixedStep(cfg.FPS),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.generation = 0
	g.stepTimes = [stepTimeWindow]float64{}
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.status != nil {
		g.status.Update()
	}

	if g.tickOnce || (!g.paused && g.pacer.ShouldStep()) {
		start := time.Now()
		g.sim.Step()
		g.recordStepTime(time.Since(start))
		g.generation++
		g.tickOnce = false
	}

	title := fmt.Sprintf("Conway's Game of Life. Press R to reset. Average computation time: %.1f ms", g.avgStepMillis())
	ebiten.SetWindowTitle(title)
	if g.status != nil {
		g.status.SetLine(g.statusLine())
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	if g.status != nil {
		g.status.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

// recordStepTime pushes a sample into the rolling window, newest first.
func (g *Game) recordStepTime(d time.Duration) {
	copy(g.stepTimes[1:], g.stepTimes[:])
	g.stepTimes[0] = float64(d.Microseconds()) / 1000.0
}

func (g *Game) avgStepMillis() float64 {
	sum := 0.0
	for _, v := range g.stepTimes {
		sum += v
	}
	return sum / stepTimeWindow
}

func (g *Game) statusLine() string {
	line := fmt.Sprintf("gen %d  step %.2f ms", g.generation, g.avgStepMillis())
	if g.paused {
		line += "  [paused]"
	}
	return line
}
