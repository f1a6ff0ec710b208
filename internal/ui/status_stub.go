//go:build !ebiten

package ui

// Status is a no-op placeholder for headless builds.
type Status struct{}

// NewStatus returns an inert overlay.
func NewStatus() *Status { return &Status{} }

// Update is a no-op placeholder.
func (s *Status) Update() {}

// SetLine is a no-op placeholder.
func (s *Status) SetLine(string) {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (s *Status) Draw(any) {}
