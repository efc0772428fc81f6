package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is anything a Panel can stack vertically.
type Widget interface {
	Update(p Pointer)
	Draw(screen *ebiten.Image)
	Height() float64
	place(x, y, w float64)
}

const (
	panelMargin   = 10
	panelTitleH   = 30
	sectionHeight = 25
	scrollStep    = 20
)

var sectionBG = color.RGBA{R: 60, G: 60, B: 70, A: 255}

// section is a header row between widgets.
type section struct {
	Title   string
	X, Y, W float64
}

func (s *section) Update(Pointer) {}

func (s *section) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X-5), float32(s.Y), float32(s.W+10), sectionHeight-5, sectionBG, true)
	ebitenutil.DebugPrintAt(screen, s.Title, int(s.X), int(s.Y+3))
}

func (s *section) Height() float64 { return sectionHeight }

func (s *section) place(x, y, w float64) { s.X, s.Y, s.W = x, y, w }

// Panel is a scrollable column of widgets grouped under section headers.
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Scroll        float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	widgets []Widget
	tops    []float64 // row top of each widget after the last layout
}

func NewPanel(x, y, width, height float64) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       "Configuration",
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection starts a new group; following widgets are listed under it.
func (p *Panel) AddSection(title string) {
	p.add(&section{Title: title})
}

func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(label, min, max, value)
	p.add(s)
	return s
}

func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(label, value)
	p.add(c)
	return c
}

func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(label, onClick)
	p.add(b)
	return b
}

func (p *Panel) add(w Widget) {
	p.widgets = append(p.widgets, w)
	p.layout()
}

// ContentHeight is the height of every row, title included.
func (p *Panel) ContentHeight() float64 {
	h := float64(panelTitleH)
	for _, w := range p.widgets {
		h += w.Height()
	}
	return h
}

// MaxScroll is how far the content can move up.
func (p *Panel) MaxScroll() float64 {
	return max(p.ContentHeight()-p.Height+panelMargin, 0)
}

// Contains reports whether the pointer is over the panel.
func (p *Panel) Contains(ptr Pointer) bool {
	return ptr.In(p.X, p.Y, p.Width, p.Height)
}

// Update scrolls on wheel over the panel, then feeds the pointer to visible widgets.
func (p *Panel) Update(ptr Pointer) {
	if ptr.WheelY != 0 && p.Contains(ptr) {
		p.Scroll = min(max(p.Scroll-ptr.WheelY*scrollStep, 0), p.MaxScroll())
	}
	p.layout()
	for i, w := range p.widgets {
		if p.visible(i) {
			w.Update(ptr)
		}
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+panelMargin), int(p.Y+5))

	for i, w := range p.widgets {
		if p.visible(i) {
			w.Draw(screen)
		}
	}
}

// layout assigns every widget its row for the current scroll offset.
func (p *Panel) layout() {
	p.tops = p.tops[:0]
	y := p.Y + panelTitleH - p.Scroll
	for _, w := range p.widgets {
		p.tops = append(p.tops, y)
		w.place(p.X+panelMargin, y, p.Width-2*panelMargin)
		y += w.Height()
	}
}

// visible is true when row i lies fully below the title and above the bottom edge.
func (p *Panel) visible(i int) bool {
	top := p.tops[i]
	return top >= p.Y+panelTitleH && top+p.widgets[i].Height() <= p.Y+p.Height
}
