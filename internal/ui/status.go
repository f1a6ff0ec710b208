//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status draws a single diagnostic line in the corner of the screen.
// H toggles visibility.
type Status struct {
	visible bool
	line    string
}

// NewStatus constructs a visible status overlay.
func NewStatus() *Status {
	return &Status{visible: true}
}

// Update processes the visibility toggle.
func (s *Status) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.visible = !s.visible
	}
}

// SetLine replaces the rendered text.
func (s *Status) SetLine(line string) {
	s.line = line
}

// Draw renders the status line. The text is offset-shadowed so it stays
// legible over live cells.
func (s *Status) Draw(dst *ebiten.Image) {
	if !s.visible || s.line == "" {
		return
	}
	face := basicfont.Face7x13
	text.Draw(dst, s.line, face, 7, 15, color.Black)
	text.Draw(dst, s.line, face, 6, 14, color.White)
}
