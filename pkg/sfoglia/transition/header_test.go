package transition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func measuredHeaderProps() HeaderProps {
	return HeaderProps{
		Current:   1,
		Layout:    testLayout,
		Title:     ElementLayout{Width: 120, Height: 20, Measured: true},
		BackLabel: ElementLayout{Width: 80, Height: 18, Measured: true},
	}
}

func TestHeaderFloatUIKit_AtRest(t *testing.T) {
	style := HeaderFloatUIKit(measuredHeaderProps())

	assert.Zero(t, style.Title.TranslateX)
	assert.Zero(t, style.BackLabel.TranslateX)
	assert.InDelta(t, 1, style.Title.Opacity, 1e-9)
	assert.InDelta(t, 1, style.BackButton.Opacity, 1e-9)
	assert.InDelta(t, 1, style.RightSlot.Opacity, 1e-9)
}

func TestHeaderFloatUIKit_SlideDistancesFromMeasurement(t *testing.T) {
	props := measuredHeaderProps()
	props.Current = 0.5

	style := HeaderFloatUIKit(props)

	// The title slides toward the next screen's back-label slot, so its
	// offset comes from the back label's width, and vice versa.
	titleOffset := (640-80.0)/2 - 27
	assert.InDelta(t, titleOffset, style.Title.TranslateX, 1e-9)

	labelOffset := (640-120.0)/2 - 27
	assert.InDelta(t, labelOffset/2, style.BackLabel.TranslateX, 1e-9)
}

func TestHeaderFloatUIKit_CoveredByNext(t *testing.T) {
	props := measuredHeaderProps()
	props.HasNext = true
	props.Next = 1

	style := HeaderFloatUIKit(props)

	// Combined timeline t=2: this screen's header has slid out leftward
	// and faded away under the screen above.
	assert.Zero(t, style.Title.Opacity)
	assert.Zero(t, style.BackButton.Opacity)
	assert.Negative(t, style.Title.TranslateX)
	assert.Negative(t, style.BackLabel.TranslateX)
}

func TestHeaderFloatUIKit_UnmeasuredUsesNeutralOffset(t *testing.T) {
	props := HeaderProps{Current: 0.5, Layout: testLayout}

	style := HeaderFloatUIKit(props)

	assert.InDelta(t, headerDefaultOffset, style.Title.TranslateX, 1e-9)
	assert.InDelta(t, headerDefaultOffset/2, style.BackLabel.TranslateX, 1e-9)
}

func TestHeaderFloatUIKit_NoJumpWhenMeasurementArrivesAtRest(t *testing.T) {
	// Measurement lands after the first layout pass, usually while the
	// screen is at rest. At rest every translation is zero either way, so
	// the style must be unchanged by the measurement.
	unmeasured := HeaderFloatUIKit(HeaderProps{Current: 1, Layout: testLayout})
	measured := HeaderFloatUIKit(measuredHeaderProps())
	assert.Equal(t, unmeasured, measured)
}

func TestHeaderFloatUIKit_MissingLayoutStaysFinite(t *testing.T) {
	style := HeaderFloatUIKit(HeaderProps{Current: 0.5})
	for field, v := range map[string]float64{
		"title.translateX": style.Title.TranslateX,
		"title.opacity":    style.Title.Opacity,
		"label.translateX": style.BackLabel.TranslateX,
		"button.opacity":   style.BackButton.Opacity,
	} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s must stay finite", field)
	}
}

func TestHeaderFade_Timeline(t *testing.T) {
	cases := []struct {
		name    string
		current float64
		next    float64
		hasNext bool
		want    float64
	}{
		{"closed", 0, 0, false, 0},
		{"half open", 0.5, 0, false, 0.5},
		{"at rest", 1, 0, false, 1},
		{"half covered", 1, 0.5, true, 0.5},
		{"fully covered", 1, 1, true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			style := HeaderFade(HeaderProps{
				Current: tc.current,
				Next:    tc.next,
				HasNext: tc.hasNext,
				Layout:  testLayout,
			})
			assert.InDelta(t, tc.want, style.Title.Opacity, 1e-9)
			assert.InDelta(t, tc.want, style.Background.Opacity, 1e-9)
			assert.Zero(t, style.Title.TranslateX)
		})
	}
}

func TestHeaderInterpolators_Pure(t *testing.T) {
	props := measuredHeaderProps()
	props.Current = 0.42
	props.HasNext = true
	props.Next = 0.17

	for name, interp := range map[string]HeaderInterpolator{
		"float-uikit": HeaderFloatUIKit,
		"fade":        HeaderFade,
	} {
		assert.Equal(t, interp(props), interp(props), "%s must be deterministic", name)
	}
}
