package transition

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/anim"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
)

// Tuning holds the file-overridable transition and gesture constants.
// The built-in values are empirical, tuned for phone-sized screens;
// handhelds with unusual displays override them in a TOML file:
//
//	[gesture]
//	response_distance_horizontal = 40.0
//	velocity_impact = 0.25
//
//	[preset.slide-vertical.open]
//	animation = "timing"
//	duration_ms = 300
//	easing = "ease-out"
type Tuning struct {
	Gesture GestureTuning           `toml:"gesture"`
	Presets map[string]PresetTuning `toml:"preset"`
}

// GestureTuning overrides the gesture defaults for every screen that does
// not set its own values.
type GestureTuning struct {
	ResponseDistanceHorizontal float64 `toml:"response_distance_horizontal"`
	ResponseDistanceVertical   float64 `toml:"response_distance_vertical"`
	VelocityImpact             float64 `toml:"velocity_impact"`
	Overscroll                 float64 `toml:"overscroll"`
}

// PresetTuning overrides one named preset's animations. A nil side keeps
// the built-in animation for that side.
type PresetTuning struct {
	Open  *AnimationTuning `toml:"open"`
	Close *AnimationTuning `toml:"close"`
}

// AnimationTuning describes one animation in TOML-friendly terms.
// Animation selects the driver; the other fields apply to the matching
// driver and are ignored for the other one.
type AnimationTuning struct {
	Animation string `toml:"animation"`

	// Timing fields.
	DurationMS int       `toml:"duration_ms"`
	Easing     string    `toml:"easing"`
	Bezier     []float64 `toml:"bezier"`

	// Spring fields.
	Stiffness         float64 `toml:"stiffness"`
	Damping           float64 `toml:"damping"`
	Mass              float64 `toml:"mass"`
	RestDisplacement  float64 `toml:"rest_displacement"`
	RestVelocity      float64 `toml:"rest_velocity"`
	OvershootClamping bool    `toml:"overshoot_clamping"`
}

// DefaultTuning returns the built-in constants: stock gesture values and
// no preset overrides.
func DefaultTuning() Tuning {
	return Tuning{
		Gesture: GestureTuning{
			ResponseDistanceHorizontal: constants.DefaultGestureResponseDistanceHorizontal,
			ResponseDistanceVertical:   constants.DefaultGestureResponseDistanceVertical,
			VelocityImpact:             constants.DefaultGestureVelocityImpact,
			Overscroll:                 constants.DefaultGestureOverscroll,
		},
		Presets: map[string]PresetTuning{},
	}
}

// LoadTuning reads a tuning file over the defaults. A missing file is not
// an error; it just means the defaults stand.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultTuning(), nil
	}
	if err != nil {
		return DefaultTuning(), fmt.Errorf("reading tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes TOML tuning data over the defaults.
func ParseTuning(data []byte) (Tuning, error) {
	tuning := DefaultTuning()
	if err := toml.Unmarshal(data, &tuning); err != nil {
		return DefaultTuning(), fmt.Errorf("parsing tuning: %w", err)
	}
	return tuning, nil
}

// GestureConfig builds a gesture configuration from the tuned values,
// with the given direction.
func (t Tuning) GestureConfig(direction gesture.Direction) gesture.Config {
	return gesture.Config{
		Direction: direction,
		ResponseDistance: gesture.ResponseDistance{
			Horizontal: t.Gesture.ResponseDistanceHorizontal,
			Vertical:   t.Gesture.ResponseDistanceVertical,
		},
		VelocityImpact: t.Gesture.VelocityImpact,
		Overscroll:     t.Gesture.Overscroll,
	}
}

// ApplyPreset returns the preset with any tuned animation overrides for
// its name folded in. Unknown names pass through untouched.
func (t Tuning) ApplyPreset(p Preset) (Preset, error) {
	pt, ok := t.Presets[p.Name]
	if !ok {
		return p, nil
	}

	if pt.Open != nil {
		cfg, err := pt.Open.Config()
		if err != nil {
			return p, fmt.Errorf("preset %q open: %w", p.Name, err)
		}
		p.Spec.Open = cfg
	}
	if pt.Close != nil {
		cfg, err := pt.Close.Config()
		if err != nil {
			return p, fmt.Errorf("preset %q close: %w", p.Name, err)
		}
		p.Spec.Close = cfg
	}
	return p, nil
}

// Config converts the TOML description into an animation config.
func (at AnimationTuning) Config() (anim.Config, error) {
	switch at.Animation {
	case "spring":
		return anim.Spring(anim.SpringConfig{
			Stiffness:         at.Stiffness,
			Damping:           at.Damping,
			Mass:              at.Mass,
			RestDisplacement:  at.RestDisplacement,
			RestVelocity:      at.RestVelocity,
			OvershootClamping: at.OvershootClamping,
		}), nil
	case "", "timing":
		easing, err := at.easing()
		if err != nil {
			return anim.Config{}, err
		}
		return anim.Timing(time.Duration(at.DurationMS)*time.Millisecond, easing), nil
	default:
		return anim.Config{}, fmt.Errorf("unknown animation kind %q", at.Animation)
	}
}

func (at AnimationTuning) easing() (anim.Easing, error) {
	if len(at.Bezier) == 4 {
		return anim.CubicBezier(at.Bezier[0], at.Bezier[1], at.Bezier[2], at.Bezier[3]), nil
	}
	if len(at.Bezier) != 0 {
		return nil, fmt.Errorf("bezier needs 4 control values, got %d", len(at.Bezier))
	}

	switch at.Easing {
	case "", "linear":
		return anim.Linear, nil
	case "ease-in":
		return anim.EaseIn, nil
	case "ease-out":
		return anim.EaseOut, nil
	case "ease-in-out":
		return anim.EaseInOut, nil
	default:
		return nil, fmt.Errorf("unknown easing %q", at.Easing)
	}
}
