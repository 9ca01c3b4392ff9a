package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider edits a float value between Min and Max by dragging.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
}

// NewSlider creates a slider of the default height.
func NewSlider(x, y, width float64, label string, min, max, value float64) *Slider {
	return &Slider{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     width,
		H:     10,
	}
}

// Update moves the value to the pointer while the button is held over the track.
func (s *Slider) Update(in Input) {
	if in.Pressed && inside(in.X, in.Y, s.X, s.Y, s.W, s.H) {
		s.SetFromX(in.X)
	}
}

// SetFromX sets the value for a horizontal pointer position, clamped to the range.
func (s *Slider) SetFromX(x float64) {
	if s.W <= 0 {
		return
	}
	p := (x - s.X) / s.W
	s.Value = s.Min + p*(s.Max-s.Min)
	if s.Value < s.Min {
		s.Value = s.Min
	}
	if s.Value > s.Max {
		s.Value = s.Max
	}
}

// Ratio is the filled fraction of the track.
func (s *Slider) Ratio() float64 {
	if s.Max == s.Min {
		return 0
	}
	return min(max((s.Value-s.Min)/(s.Max-s.Min), 0), 1)
}

func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*s.Ratio()), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}
