package prefabs

import (
	"fmt"
	"image/color"
	"time"

	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/saccade/common"
)

// DefaultSequenceFile is the prefab loaded when no -spec flag is given.
const DefaultSequenceFile = "sequence.yaml"

// LoadSpec decodes a prefab over base, so keys missing from the file keep
// base's values.
func LoadSpec[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SequenceSpec struct {
	Cycles         int             `yaml:"cycles"`
	StallWarnAfter time.Duration   `yaml:"stall_warn_after"`
	Timing         TimingSpec      `yaml:"timing"`
	Colors         ColorsSpec      `yaml:"colors"`
	Eye            EyeSpec         `yaml:"eye"`
	Celebration    CelebrationSpec `yaml:"celebration"`
	Regions        []RegionSpec    `yaml:"regions"`
	Edges          []EdgeSpec      `yaml:"edges"`
}

// LoadSequenceSpec reads a sequence prefab from disk or the embedded set.
func LoadSequenceSpec(name string) (*SequenceSpec, error) {
	if name == "" {
		name = DefaultSequenceFile
	}
	spec, err := LoadSpec(name, DefaultSequenceSpec())
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TimingSpec struct {
	Step              time.Duration `yaml:"step"`
	InterStep         time.Duration `yaml:"inter_step"`
	PauseAfterCircuit time.Duration `yaml:"pause_after_circuit"`
	Celebration       time.Duration `yaml:"celebration"`
	EndDisplay        time.Duration `yaml:"end_display"`
}

type ColorsSpec struct {
	TargetA    *YAMLColor `yaml:"target_a"`
	TargetB    *YAMLColor `yaml:"target_b"`
	Background *YAMLColor `yaml:"background"`
	Panel      *YAMLColor `yaml:"panel"`
	RegionFill *YAMLColor `yaml:"region_fill"`
	RegionLine *YAMLColor `yaml:"region_stroke"`
	RegionText *YAMLColor `yaml:"region_text"`
	EdgeIdle   *YAMLColor `yaml:"edge_idle"`
	Label      *YAMLColor `yaml:"label"`
	Sclera     *YAMLColor `yaml:"sclera"`
	Iris       *YAMLColor `yaml:"iris"`
	IrisStroke *YAMLColor `yaml:"iris_stroke"`
	Smile      *YAMLColor `yaml:"smile"`
	Ring       *YAMLColor `yaml:"ring"`
}

type EyeSpec struct {
	Movement  time.Duration `yaml:"movement"`
	Pause     time.Duration `yaml:"pause"`
	LabelFade time.Duration `yaml:"label_fade"`
	SmileDraw time.Duration `yaml:"smile_draw"`
	RingCount int           `yaml:"ring_count"`
	RingDelay time.Duration `yaml:"ring_delay"`
	Ripple    time.Duration `yaml:"ripple"`
}

type CelebrationSpec struct {
	BaseCount     int           `yaml:"base_count"`
	Spread        float64       `yaml:"spread"`
	MinRadius     float64       `yaml:"min_radius"`
	RadiusRange   float64       `yaml:"radius_range"`
	MaxDelay      time.Duration `yaml:"max_delay"`
	MinDuration   time.Duration `yaml:"min_duration"`
	DurationRange time.Duration `yaml:"duration_range"`
	Fade          time.Duration `yaml:"fade"`
	FadeGrace     time.Duration `yaml:"fade_grace"`
	// SizeScript names a tengo script under prefabs/scripts computing the
	// size factor. Empty uses the linear curve.
	SizeScript string `yaml:"size_script"`
}

type RegionSpec struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Abbreviation string  `yaml:"abbr"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Radius       float64 `yaml:"radius"`
}

type EdgeSpec struct {
	ID   string `yaml:"id"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// YAMLColor accepts any CSS color string: hex, rgb(a), hsl(a) or a name.
type YAMLColor struct {
	color.Color
	hsl common.HSL
}

// MustColor parses a CSS color and panics on failure. It is meant for
// built-in defaults only.
func MustColor(s string) *YAMLColor {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor parses a CSS color string.
func ParseColor(s string) (*YAMLColor, error) {
	parsed, err := csscolorparser.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("prefabs: parse color %q: %w", s, err)
	}
	r, g, b, a := parsed.RGBA255()
	return &YAMLColor{
		Color: color.NRGBA{R: r, G: g, B: b, A: a},
		hsl:   common.HSLFromRGB(parsed.R, parsed.G, parsed.B),
	}, nil
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}

// NRGBA returns the color as non-premultiplied 8-bit channels. A nil color
// is transparent.
func (c *YAMLColor) NRGBA() color.NRGBA {
	if c == nil || c.Color == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

// HSL returns the color's hue, saturation and lightness.
func (c *YAMLColor) HSL() common.HSL {
	if c == nil {
		return common.HSL{}
	}
	return c.hsl
}
