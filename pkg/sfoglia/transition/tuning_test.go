package transition

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/anim"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
)

const testTuningTOML = `
[gesture]
response_distance_horizontal = 40.0
velocity_impact = 0.25

[preset.slide-vertical.open]
animation = "timing"
duration_ms = 300
easing = "ease-out"

[preset.slide-horizontal.open]
animation = "spring"
stiffness = 800
damping = 400
mass = 2
rest_displacement = 0.01
rest_velocity = 0.01
overshoot_clamping = true
`

func TestParseTuning_OverlaysDefaults(t *testing.T) {
	tuning, err := ParseTuning([]byte(testTuningTOML))
	require.NoError(t, err)

	assert.InDelta(t, 40, tuning.Gesture.ResponseDistanceHorizontal, 1e-9)
	assert.InDelta(t, 0.25, tuning.Gesture.VelocityImpact, 1e-9)
	// Untouched fields keep their defaults.
	assert.InDelta(t, 135, tuning.Gesture.ResponseDistanceVertical, 1e-9)
	assert.InDelta(t, 0.05, tuning.Gesture.Overscroll, 1e-9)
}

func TestTuning_ApplyPresetOverridesOneSide(t *testing.T) {
	tuning, err := ParseTuning([]byte(testTuningTOML))
	require.NoError(t, err)

	modal, err := tuning.ApplyPreset(SlideVertical())
	require.NoError(t, err)

	require.Equal(t, anim.KindTiming, modal.Spec.Open.Kind)
	assert.Equal(t, 300*time.Millisecond, modal.Spec.Open.Timing.Duration)
	// Close was not tuned and keeps the built-in duration.
	assert.Equal(t, 250*time.Millisecond, modal.Spec.Close.Timing.Duration)
}

func TestTuning_ApplyPresetSpringOverride(t *testing.T) {
	tuning, err := ParseTuning([]byte(testTuningTOML))
	require.NoError(t, err)

	slide, err := tuning.ApplyPreset(SlideHorizontal())
	require.NoError(t, err)

	require.Equal(t, anim.KindSpring, slide.Spec.Open.Kind)
	assert.InDelta(t, 800, slide.Spec.Open.Spring.Stiffness, 1e-9)
	assert.InDelta(t, 2, slide.Spec.Open.Spring.Mass, 1e-9)
	assert.InDelta(t, 1000, slide.Spec.Close.Spring.Stiffness, 1e-9, "close side untouched")
}

func TestTuning_ApplyPresetUnknownNamePassesThrough(t *testing.T) {
	tuning := DefaultTuning()
	preset := Fade()

	got, err := tuning.ApplyPreset(preset)
	require.NoError(t, err)
	assert.Equal(t, preset.Spec, got.Spec)
}

func TestTuning_GestureConfig(t *testing.T) {
	tuning, err := ParseTuning([]byte(testTuningTOML))
	require.NoError(t, err)

	cfg := tuning.GestureConfig(gesture.Vertical)

	assert.Equal(t, gesture.Vertical, cfg.Direction)
	assert.InDelta(t, 40, cfg.ResponseDistance.Horizontal, 1e-9)
	assert.InDelta(t, 135, cfg.ResponseDistance.Vertical, 1e-9)
	assert.InDelta(t, 0.25, cfg.VelocityImpact, 1e-9)
}

func TestLoadTuning_MissingFileKeepsDefaults(t *testing.T) {
	tuning, err := LoadTuning(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tuning)
}

func TestLoadTuning_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	require.NoError(t, os.WriteFile(path, []byte(testTuningTOML), 0o644))

	tuning, err := LoadTuning(path)
	require.NoError(t, err)
	assert.InDelta(t, 40, tuning.Gesture.ResponseDistanceHorizontal, 1e-9)
}

func TestParseTuning_Invalid(t *testing.T) {
	_, err := ParseTuning([]byte("not [valid toml"))
	assert.Error(t, err)
}

func TestAnimationTuning_Errors(t *testing.T) {
	cases := []struct {
		name   string
		tuning AnimationTuning
	}{
		{"unknown animation kind", AnimationTuning{Animation: "teleport"}},
		{"unknown easing", AnimationTuning{Animation: "timing", Easing: "bouncy"}},
		{"short bezier", AnimationTuning{Animation: "timing", Bezier: []float64{0.1, 0.2}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.tuning.Config()
			assert.Error(t, err)
		})
	}
}

func TestAnimationTuning_BezierEasing(t *testing.T) {
	at := AnimationTuning{Animation: "timing", DurationMS: 200, Bezier: []float64{0.35, 0.45, 0, 1}}

	cfg, err := at.Config()
	require.NoError(t, err)
	require.Equal(t, anim.KindTiming, cfg.Kind)
	assert.Equal(t, 200*time.Millisecond, cfg.Timing.Duration)
	require.NotNil(t, cfg.Timing.Easing)
	assert.InDelta(t, 0, cfg.Timing.Easing(0), 1e-9)
	assert.InDelta(t, 1, cfg.Timing.Easing(1), 1e-9)
}
