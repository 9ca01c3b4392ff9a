// Package ui holds the small immediate-mode widgets of the control panel:
// sliders, checkboxes and buttons stacked in titled sections.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
	labelHeight   = 15.0
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update(in Input)
	Draw(screen *ebiten.Image)
	GetHeight() float64
	setY(y float64)
}

// SliderWrapper adapts Slider to UIWidget
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 {
	return s.H + 25 // track + label space
}

func (s *SliderWrapper) setY(y float64) { s.Y = y }

// CheckboxWrapper adapts Checkbox to UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 {
	return c.Size + 20
}

func (c *CheckboxWrapper) setY(y float64) { c.Y = y }

// ButtonWrapper adapts Button to UIWidget
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 {
	return b.Height + 10
}

func (b *ButtonWrapper) setY(y float64) { b.Y = y - labelHeight }

// UIPanel manages a collection of UI widgets in a scrollable panel
type UIPanel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	Widgets       []UIWidget
	Labels        []string // shown above each widget, empty for buttons
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

// PanelSection is a titled group of consecutive widgets.
type PanelSection struct {
	Title      string
	StartIndex int // first widget of the section
	EndIndex   int // exclusive
}

// NewUIPanel creates a new UI panel
func NewUIPanel(title string, x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection opens a section; widgets added next belong to it.
func (p *UIPanel) AddSection(title string) {
	p.EndSection()
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
		EndIndex:   len(p.Widgets),
	})
}

// EndSection closes the current section
func (p *UIPanel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

func (p *UIPanel) add(w UIWidget, label string) {
	if len(p.sections) == 0 {
		p.AddSection("")
	}
	p.Widgets = append(p.Widgets, w)
	p.Labels = append(p.Labels, label)
	p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	p.layout()
}

// AddSlider adds a slider widget to the panel
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.add(&SliderWrapper{s}, label)
	return s
}

// AddCheckbox adds a checkbox widget to the panel
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.add(&CheckboxWrapper{c}, label)
	return c
}

// AddButton adds a full width button to the panel
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 24, label, onClick)
	p.add(&ButtonWrapper{b}, "")
	return b
}

// layout places every widget below its label, honouring the scroll offset.
func (p *UIPanel) layout() {
	y := p.Y + titleHeight - p.ScrollOffset
	for _, s := range p.sections {
		y += sectionHeight
		for i := s.StartIndex; i < s.EndIndex; i++ {
			p.Widgets[i].setY(y + labelHeight)
			y += p.Widgets[i].GetHeight()
		}
	}
}

// ContentHeight is the height needed to show every widget without scrolling.
func (p *UIPanel) ContentHeight() float64 {
	height := titleHeight + float64(len(p.sections))*sectionHeight
	for _, w := range p.Widgets {
		height += w.GetHeight()
	}
	return height
}

// Contains reports whether the point lies over the panel.
func (p *UIPanel) Contains(x, y float64) bool {
	return inside(x, y, p.X, p.Y, p.Width, p.Height)
}

// Update scrolls on wheel events over the panel, then updates every widget.
func (p *UIPanel) Update(in Input) {
	if in.WheelY != 0 && p.Contains(in.X, in.Y) {
		p.ScrollOffset -= in.WheelY * 20
		maxScroll := max(p.ContentHeight()-p.Height+10, 0)
		p.ScrollOffset = min(max(p.ScrollOffset, 0), maxScroll)
	}
	p.layout()
	for _, w := range p.Widgets {
		w.Update(in)
	}
}

// Draw renders the panel and the widgets currently in view.
func (p *UIPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	p.layout()
	visible := func(y float64) bool { return y >= p.Y+titleHeight-5 && y <= p.Y+p.Height-10 }
	y := p.Y + titleHeight - p.ScrollOffset
	for _, s := range p.sections {
		if s.Title != "" && visible(y) {
			vector.FillRect(screen,
				float32(p.X+5), float32(y),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, s.Title, int(p.X+10), int(y+3))
		}
		y += sectionHeight
		for i := s.StartIndex; i < s.EndIndex; i++ {
			w := p.Widgets[i]
			if visible(y) {
				label := p.Labels[i]
				if sw, ok := w.(*SliderWrapper); ok {
					label = fmt.Sprintf("%s: %.2f", label, sw.Value)
				}
				if label != "" {
					ebitenutil.DebugPrintAt(screen, label, int(p.X+10), int(y-2))
				}
				w.Draw(screen)
			}
			y += w.GetHeight()
		}
	}
}
