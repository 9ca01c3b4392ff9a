package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lao-tseu-is-alive/go-spring-bezier/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SliderRange describes a user adjustable parameter.
type SliderRange struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Value float64 `json:"value"`
}

type Config struct {
	// Surface
	ScreenWidth   float64           `json:"screenWidth"`
	ScreenHeight  float64           `json:"screenHeight"`
	SurfaceOrigin geometry.Vector2D `json:"surfaceOrigin"` // on-screen offset of the drawing surface

	// Layout: anchors sit AnchorMargin away from the left/right edges at mid height.
	// Control starts use an absolute X and a Y relative to mid height.
	AnchorMargin  float64           `json:"anchorMargin"`
	Control1Start geometry.Vector2D `json:"control1Start"`
	Control2Start geometry.Vector2D `json:"control2Start"`
	TargetOffset  float64           `json:"targetOffset"` // horizontal gap between the two spring targets

	// Physics sliders
	Stiffness SliderRange `json:"stiffness"`
	Damping   SliderRange `json:"damping"`

	// Trails
	TrailCapacity int    `json:"trailCapacity"`
	TrailColor1   string `json:"trailColor1"`
	TrailColor2   string `json:"trailColor2"`

	// Visual constants
	Background     string  `json:"background"`
	PhaseStep      float64 `json:"phaseStep"`
	WaveAmplitude  float64 `json:"waveAmplitude"`
	WaveFrequency  float64 `json:"waveFrequency"`
	CurveSegments  int     `json:"curveSegments"`
	TangentSamples int     `json:"tangentSamples"`
	TangentLength  float64 `json:"tangentLength"`
	GridSpacing    float64 `json:"gridSpacing"`

	// Visualization toggles
	ShowGrid     bool `json:"showGrid"`
	ShowTrails   bool `json:"showTrails"`
	ShowTangents bool `json:"showTangents"`
	ShowLabels   bool `json:"showLabels"`
}

func DefaultConfig() *Config {
	return &Config{
		ScreenWidth:    1024,
		ScreenHeight:   768,
		AnchorMargin:   200,
		Control1Start:  geometry.Vector2D{X: 400, Y: -120},
		Control2Start:  geometry.Vector2D{X: 600, Y: 120},
		TargetOffset:   80,
		Stiffness:      SliderRange{Min: 0.01, Max: 0.3, Value: 0.08},
		Damping:        SliderRange{Min: 0.5, Max: 0.99, Value: 0.85},
		TrailCapacity:  25,
		TrailColor1:    "#ffffff",
		TrailColor2:    "#ffb4b4",
		Background:     "#111318",
		PhaseStep:      0.05,
		WaveAmplitude:  4,
		WaveFrequency:  6,
		CurveSegments:  100,
		TangentSamples: 5,
		TangentLength:  30,
		GridSpacing:    50,
		ShowGrid:       true,
		ShowTrails:     true,
		ShowTangents:   true,
		ShowLabels:     true,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct, over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// AnchorStart is the fixed left endpoint of the curve.
func (c *Config) AnchorStart() geometry.Vector2D {
	return geometry.Vector2D{X: c.AnchorMargin, Y: c.ScreenHeight / 2}
}

// AnchorEnd is the fixed right endpoint of the curve.
func (c *Config) AnchorEnd() geometry.Vector2D {
	return geometry.Vector2D{X: c.ScreenWidth - c.AnchorMargin, Y: c.ScreenHeight / 2}
}

// Control1Home is where the first spring point starts and returns on reset.
func (c *Config) Control1Home() geometry.Vector2D {
	return geometry.Vector2D{X: c.Control1Start.X, Y: c.ScreenHeight/2 + c.Control1Start.Y}
}

// Control2Home is where the second spring point starts and returns on reset.
func (c *Config) Control2Home() geometry.Vector2D {
	return geometry.Vector2D{X: c.Control2Start.X, Y: c.ScreenHeight/2 + c.Control2Start.Y}
}
