package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	sliderTrack = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	sliderFill  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Slider edits a float in [Min, Max] by clicking or dragging along its track.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
	Format   string // value format, "%.2f" when empty
}

// NewSlider returns a slider with value clamped to [min, max].
// Position is assigned by the panel that owns it.
func NewSlider(label string, min, max, value float64) *Slider {
	s := &Slider{Label: label, Min: min, Max: max, H: 12}
	s.SetValue(value)
	return s
}

// SetValue clamps v into range.
func (s *Slider) SetValue(v float64) {
	s.Value = min(max(v, s.Min), s.Max)
}

// Ratio is the position of Value along the track, in [0, 1].
func (s *Slider) Ratio() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Update drags the value while the button is held over the track.
func (s *Slider) Update(p Pointer) {
	if !p.Pressed || !p.In(s.X, s.Y, s.W, s.H) || s.W <= 0 {
		return
	}
	s.SetValue(s.Min + (p.X-s.X)/s.W*(s.Max-s.Min))
}

func (s *Slider) Draw(screen *ebiten.Image) {
	format := s.Format
	if format == "" {
		format = "%.2f"
	}
	ebitenutil.DebugPrintAt(screen, s.Label+": "+fmt.Sprintf(format, s.Value), int(s.X), int(s.Y)-16)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), sliderTrack, true)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*s.Ratio()), float32(s.H), sliderFill, true)
}

// Height includes the label line above the track.
func (s *Slider) Height() float64 { return s.H + 24 }

func (s *Slider) place(x, y, w float64) {
	s.X, s.Y, s.W = x, y+16, w
}
