package render

import (
	"fmt"
	"image/color"

	"github.com/lao-tseu-is-alive/go-spring-bezier/internal/scene"
	"github.com/lucasb-eyer/go-colorful"
)

// Fixed palette, non premultiplied.
var (
	gridColor    = color.NRGBA{R: 255, G: 255, B: 255, A: 10}  // rgba(255,255,255,0.04)
	tangentColor = color.NRGBA{R: 255, G: 80, B: 80, A: 153}   // rgba(255,80,80,0.6)
	guideColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 77}  // rgba(255,255,255,0.3)
	panelColor   = color.NRGBA{R: 0, G: 0, B: 0, A: 153}       // rgba(0,0,0,0.6)
	markerColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	subColor     = color.NRGBA{R: 170, G: 170, B: 170, A: 255} // #aaa
	fpsColor     = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	gaugeColor   = color.NRGBA{R: 120, G: 200, B: 255, A: 220}
	gaugeBGColor = color.NRGBA{R: 255, G: 255, B: 255, A: 30}
)

const (
	trailDotRadius  = 3
	markerRadius    = 6
	subLabelSpacing = 14

	minStrokeWidth   = 2
	maxStrokeWidth   = 6
	strokeSpeedScale = 0.1
	stressSpeedScale = 0.05

	dashLength = 4
	dashGap    = 4

	gaugeMaxSpeed = 50

	// curveAccuracy bounds the error of the arc length and pointer distance readouts, in pixels.
	curveAccuracy = 1e-3
	// maxMeasuredExtent is the largest control point coordinate, in pixels, of a curve still measured.
	maxMeasuredExtent = 1e6
)

// Style is the visual configuration of a frame, resolved from scene.Config.
type Style struct {
	Width, Height  float64
	Background     color.NRGBA
	Trail1, Trail2 color.NRGBA

	WaveAmplitude  float64
	WaveFrequency  float64
	CurveSegments  int
	TangentSamples int
	TangentLength  float64
	GridSpacing    float64
}

// NewStyle resolves the colours and drawing constants of cfg.
func NewStyle(cfg *scene.Config) (Style, error) {
	bg, err := parseColor(cfg.Background)
	if err != nil {
		return Style{}, fmt.Errorf("invalid background: %w", err)
	}
	t1, err := parseColor(cfg.TrailColor1)
	if err != nil {
		return Style{}, fmt.Errorf("invalid trailColor1: %w", err)
	}
	t2, err := parseColor(cfg.TrailColor2)
	if err != nil {
		return Style{}, fmt.Errorf("invalid trailColor2: %w", err)
	}
	return Style{
		Width:          cfg.ScreenWidth,
		Height:         cfg.ScreenHeight,
		Background:     bg,
		Trail1:         t1,
		Trail2:         t2,
		WaveAmplitude:  cfg.WaveAmplitude,
		WaveFrequency:  cfg.WaveFrequency,
		CurveSegments:  max(cfg.CurveSegments, 1),
		TangentSamples: max(cfg.TangentSamples, 1),
		TangentLength:  cfg.TangentLength,
		GridSpacing:    cfg.GridSpacing,
	}, nil
}

func parseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(255 * min(max(alpha, 0), 1))
	return c
}
