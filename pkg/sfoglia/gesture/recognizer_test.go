package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/anim"
)

var panEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time { return panEpoch.Add(time.Duration(ms) * time.Millisecond) }

func down(x, y float64, ms int) PointerEvent {
	return PointerEvent{Kind: PointerDown, X: x, Y: y, Time: at(ms)}
}

func move(x, y float64, ms int) PointerEvent {
	return PointerEvent{Kind: PointerMove, X: x, Y: y, Time: at(ms)}
}

func up(x, y float64, ms int) PointerEvent {
	return PointerEvent{Kind: PointerUp, X: x, Y: y, Time: at(ms)}
}

// hookLog records every hook invocation so tests can assert on ordering
// and token discipline.
type hookLog struct {
	denyClaim bool
	claims    int
	frees     int
	begans    int
	releases  []Release
}

func (h *hookLog) hooks() Hooks {
	return Hooks{
		Claim: func() bool {
			h.claims++
			return !h.denyClaim
		},
		Free:  func() { h.frees++ },
		Began: func() { h.begans++ },
		Ended: func(rel Release) { h.releases = append(h.releases, rel) },
	}
}

func newTestRecognizer(cfg Config) (*Recognizer, *anim.Value, *hookLog) {
	value := anim.NewValue(1)
	log := &hookLog{}
	rec := NewRecognizer(value, cfg, log.hooks())
	rec.SetLayout(640, 480)
	return rec, value, log
}

func TestRecognizer_EdgeGating(t *testing.T) {
	// Layout is 640x480 with default response distances 25/135.
	cases := []struct {
		name      string
		direction Direction
		x, y      float64
		want      bool
	}{
		{"horizontal inside left strip", Horizontal, 10, 200, true},
		{"horizontal outside strip", Horizontal, 40, 200, false},
		{"horizontal-inverted inside right strip", HorizontalInverted, 630, 200, true},
		{"horizontal-inverted outside strip", HorizontalInverted, 600, 200, false},
		{"vertical inside top strip", Vertical, 320, 100, true},
		{"vertical outside strip", Vertical, 320, 200, false},
		{"vertical-inverted inside bottom strip", VerticalInverted, 320, 400, true},
		{"vertical-inverted outside strip", VerticalInverted, 320, 300, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Direction = tc.direction
			rec, _, log := newTestRecognizer(cfg)

			got := rec.Handle(down(tc.x, tc.y, 0))

			assert.Equal(t, tc.want, got)
			if tc.want {
				assert.Equal(t, StateTracking, rec.State())
				assert.Equal(t, 1, log.claims)
			} else {
				assert.Equal(t, StateIdle, rec.State())
				assert.Zero(t, log.claims, "token should only be claimed for in-strip touches")
			}
		})
	}
}

func TestRecognizer_TrackingDrivesProgress(t *testing.T) {
	rec, value, log := newTestRecognizer(DefaultConfig())

	// A pan capture must steal the value from an in-flight animation.
	value.AnimateTo(0, anim.Timing(300*time.Millisecond, anim.Linear), nil)

	require.True(t, rec.Handle(down(10, 200, 0)))
	assert.False(t, rec.Swiping(), "armed but not yet committed")

	require.True(t, rec.Handle(move(30, 200, 16)))
	assert.True(t, rec.Swiping())
	assert.Equal(t, 1, log.begans)
	assert.True(t, value.Settled(), "capture should detach the animation driver")
	assert.InDelta(t, 1-20.0/640, value.Position(), 1e-9)

	require.True(t, rec.Handle(move(330, 200, 160)))
	assert.InDelta(t, 0.5, value.Position(), 1e-9)
	assert.Equal(t, 1, log.begans, "began fires once per pan")
}

func TestRecognizer_ReleaseShortOfThresholdCancels(t *testing.T) {
	rec, value, log := newTestRecognizer(DefaultConfig())

	require.True(t, rec.Handle(down(10, 200, 0)))
	for i := 1; i <= 5; i++ {
		require.True(t, rec.Handle(move(10+float64(20*i), 200, 100*i)))
	}
	// The pan stalled: no travel over the final stretch, so release
	// velocity is zero and 100px is well short of half of 640.
	require.True(t, rec.Handle(up(110, 200, 600)))

	assert.Equal(t, StateCanceling, rec.State())
	require.Len(t, log.releases, 1)
	rel := log.releases[0]
	assert.False(t, rel.Completing)
	assert.InDelta(t, 100, rel.Translation, 1e-9)
	assert.InDelta(t, 0, rel.Velocity, 1e-9)
	assert.InDelta(t, 1-100.0/640, value.Position(), 1e-9)

	rec.Finish()
	assert.Equal(t, StateIdle, rec.State())
	assert.Equal(t, 1, log.frees)
}

func TestRecognizer_ReleasePastHalfCompletes(t *testing.T) {
	rec, _, log := newTestRecognizer(DefaultConfig())

	require.True(t, rec.Handle(down(10, 200, 0)))
	for i := 1; i <= 5; i++ {
		require.True(t, rec.Handle(move(10+float64(80*i), 200, 100*i)))
	}
	require.True(t, rec.Handle(up(410, 200, 600)))

	assert.Equal(t, StateCompleting, rec.State())
	require.Len(t, log.releases, 1)
	assert.True(t, log.releases[0].Completing)
	assert.InDelta(t, 400, log.releases[0].Translation, 1e-9)
}

func TestRecognizer_FlickCompletesDespiteShortTravel(t *testing.T) {
	rec, _, log := newTestRecognizer(DefaultConfig())

	require.True(t, rec.Handle(down(10, 200, 0)))
	require.True(t, rec.Handle(move(60, 200, 16)))
	require.True(t, rec.Handle(move(110, 200, 32)))
	require.True(t, rec.Handle(move(160, 200, 48)))
	require.True(t, rec.Handle(up(180, 200, 56)))

	// 170px of travel is short of 320, but the release velocity times the
	// velocity impact pushes the decision over the threshold.
	assert.Equal(t, StateCompleting, rec.State())
	require.Len(t, log.releases, 1)
	rel := log.releases[0]
	assert.True(t, rel.Completing)
	assert.Greater(t, rel.Velocity, 2000.0)
	assert.InDelta(t, -rel.Velocity/640, rel.ProgressVelocity, 1e-9)
	assert.Less(t, rel.ProgressVelocity, 0.0)
}

func TestRecognizer_WrongAxisNeverCaptures(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Direction = Vertical
	rec, value, log := newTestRecognizer(cfg)

	require.True(t, rec.Handle(down(320, 50, 0)))
	// Mostly-horizontal motion on a vertical-direction screen: the pan
	// fails before it ever drives progress.
	assert.False(t, rec.Handle(move(340, 52, 16)))

	assert.Equal(t, StateIdle, rec.State())
	assert.Zero(t, log.begans)
	assert.Empty(t, log.releases)
	assert.Equal(t, 1, log.frees)
	assert.InDelta(t, 1, value.Position(), 1e-9, "progress untouched by a failed pan")
}

func TestRecognizer_OverscrollClampsPastRest(t *testing.T) {
	rec, value, log := newTestRecognizer(DefaultConfig())

	require.True(t, rec.Handle(down(10, 200, 0)))
	require.True(t, rec.Handle(move(30, 200, 16)))
	// Reverse past the start: progress would be 1 + 60/640, clamped to
	// the overscroll allowance.
	require.True(t, rec.Handle(move(-50, 200, 32)))
	assert.InDelta(t, 1.05, value.Position(), 1e-9)

	require.True(t, rec.Handle(up(-50, 200, 48)))
	assert.Equal(t, StateCanceling, rec.State())
	assert.False(t, log.releases[0].Completing)
}

func TestRecognizer_TapInStripPassesThrough(t *testing.T) {
	rec, value, log := newTestRecognizer(DefaultConfig())

	require.True(t, rec.Handle(down(10, 200, 0)))
	assert.False(t, rec.Handle(up(11, 200, 60)), "an uncommitted tap is not a gesture event")

	assert.Equal(t, StateIdle, rec.State())
	assert.Zero(t, log.begans)
	assert.Empty(t, log.releases)
	assert.Equal(t, 1, log.frees)
	assert.InDelta(t, 1, value.Position(), 1e-9)
}

func TestRecognizer_ClaimDeniedStaysIdle(t *testing.T) {
	rec, _, log := newTestRecognizer(DefaultConfig())
	log.denyClaim = true

	assert.False(t, rec.Handle(down(10, 200, 0)))
	assert.Equal(t, StateIdle, rec.State())
	assert.Equal(t, 1, log.claims)
	assert.Zero(t, log.frees, "a denied claim has no token to free")
}

func TestRecognizer_ForceCancelAbandonsPan(t *testing.T) {
	rec, value, log := newTestRecognizer(DefaultConfig())

	require.True(t, rec.Handle(down(10, 200, 0)))
	require.True(t, rec.Handle(move(90, 200, 16)))
	held := value.Position()

	rec.ForceCancel()

	assert.Equal(t, StateIdle, rec.State())
	assert.Equal(t, 1, log.frees)
	assert.Empty(t, log.releases, "force-cancel never reports a release")
	assert.False(t, rec.Handle(move(200, 200, 32)))
	assert.InDelta(t, held, value.Position(), 1e-9, "value stays where the pan left it")
}

func TestRecognizer_TokenHeldUntilFinish(t *testing.T) {
	rec, _, log := newTestRecognizer(DefaultConfig())

	require.True(t, rec.Handle(down(10, 200, 0)))
	require.True(t, rec.Handle(move(410, 200, 100)))
	require.True(t, rec.Handle(up(410, 200, 200)))
	require.Equal(t, StateCompleting, rec.State())

	// Until the settle animation finishes, no new pan may start.
	assert.Zero(t, log.frees)
	assert.False(t, rec.Handle(down(10, 200, 300)))
	assert.Equal(t, 1, log.claims)

	rec.Finish()
	assert.Equal(t, StateIdle, rec.State())
	assert.Equal(t, 1, log.frees)

	assert.True(t, rec.Handle(down(10, 200, 400)))
	assert.Equal(t, 2, log.claims)
}

func TestRecognizer_InvertedDirectionsTrackTheirSign(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Direction = HorizontalInverted
	rec, value, log := newTestRecognizer(cfg)

	require.True(t, rec.Handle(down(630, 200, 0)))
	// Dismissal travels leftward for the inverted direction.
	require.True(t, rec.Handle(move(310, 200, 100)))
	assert.True(t, rec.Swiping())
	assert.InDelta(t, 0.5, value.Position(), 1e-9)

	require.True(t, rec.Handle(up(230, 200, 200)))
	assert.Equal(t, StateCompleting, rec.State())
	rel := log.releases[0]
	assert.True(t, rel.Completing)
	assert.Less(t, rel.Velocity, 0.0)
	assert.Less(t, rel.ProgressVelocity, 0.0, "velocity still seeds toward closed")
}

func TestRecognizer_NoLayoutNoGesture(t *testing.T) {
	value := anim.NewValue(1)
	log := &hookLog{}
	rec := NewRecognizer(value, DefaultConfig(), log.hooks())

	assert.False(t, rec.Handle(down(10, 200, 0)))
	assert.Equal(t, StateIdle, rec.State())
	assert.Zero(t, log.claims)
}
