package transition

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/anim"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
)

// fnPtr lets tests compare interpolator identity; reflect.DeepEqual
// always reports false for non-nil funcs.
func fnPtr(v any) uintptr { return reflect.ValueOf(v).Pointer() }

func TestResolve_FallbackWhenUnset(t *testing.T) {
	res := Resolve(Choice{}, SlideHorizontal())

	assert.Equal(t, anim.KindSpring, res.Spec.Open.Kind)
	assert.Equal(t, gesture.Horizontal, res.Direction)
	assert.Equal(t, fnPtr(CardSlideHorizontal), fnPtr(res.Card))
	assert.Equal(t, fnPtr(HeaderFloatUIKit), fnPtr(res.Header))
}

func TestResolve_PresetBeatsFallback(t *testing.T) {
	modal := SlideVertical()
	res := Resolve(Choice{Preset: &modal}, SlideHorizontal())

	assert.Equal(t, anim.KindTiming, res.Spec.Open.Kind)
	assert.Equal(t, 450*time.Millisecond, res.Spec.Open.Timing.Duration)
	assert.Equal(t, 250*time.Millisecond, res.Spec.Close.Timing.Duration)
	assert.Equal(t, gesture.Vertical, res.Direction)
	assert.Equal(t, fnPtr(CardSlideVertical), fnPtr(res.Card))
}

func TestResolve_ExplicitBeatsPreset(t *testing.T) {
	modal := SlideVertical()
	direction := gesture.HorizontalInverted
	spec := Spec{
		Open:  anim.Timing(100*time.Millisecond, anim.Linear),
		Close: anim.Timing(50*time.Millisecond, anim.Linear),
	}

	res := Resolve(Choice{
		Preset:    &modal,
		Spec:      &spec,
		Card:      CardFade,
		Direction: &direction,
	}, SlideHorizontal())

	assert.Equal(t, 100*time.Millisecond, res.Spec.Open.Timing.Duration)
	assert.Equal(t, gesture.HorizontalInverted, res.Direction)
	assert.Equal(t, fnPtr(CardFade), fnPtr(res.Card))
	// Header was not overridden, so it still comes from the preset.
	assert.Equal(t, fnPtr(HeaderFade), fnPtr(res.Header))
}

func TestResolve_FieldLevelPrecedence(t *testing.T) {
	// Only the card interpolator is overridden; every other field must
	// come from the fallback, not zero out.
	res := Resolve(Choice{Card: CardFade}, SlideHorizontal())

	assert.Equal(t, fnPtr(CardFade), fnPtr(res.Card))
	assert.Equal(t, fnPtr(HeaderFloatUIKit), fnPtr(res.Header))
	assert.Equal(t, anim.KindSpring, res.Spec.Close.Kind)
}

func TestBuiltinPresets_Complete(t *testing.T) {
	for _, preset := range []Preset{SlideHorizontal(), SlideVertical(), Fade()} {
		t.Run(preset.Name, func(t *testing.T) {
			require.NotEmpty(t, preset.Name)
			assert.NotNil(t, preset.Card)
			assert.NotNil(t, preset.Header)
		})
	}
}

func TestSlideHorizontal_SpringParameters(t *testing.T) {
	spec := SlideHorizontal().Spec

	for _, cfg := range []anim.Config{spec.Open, spec.Close} {
		require.Equal(t, anim.KindSpring, cfg.Kind)
		assert.InDelta(t, 1000, cfg.Spring.Stiffness, 1e-9)
		assert.InDelta(t, 500, cfg.Spring.Damping, 1e-9)
		assert.InDelta(t, 3, cfg.Spring.Mass, 1e-9)
		assert.True(t, cfg.Spring.OvershootClamping)
	}
}

func TestFade_Timings(t *testing.T) {
	spec := Fade().Spec

	require.Equal(t, anim.KindTiming, spec.Open.Kind)
	assert.Equal(t, 350*time.Millisecond, spec.Open.Timing.Duration)
	assert.Equal(t, 150*time.Millisecond, spec.Close.Timing.Duration)
}
