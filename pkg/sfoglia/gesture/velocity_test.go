package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVelocityTracker_ConstantVelocity(t *testing.T) {
	var vt VelocityTracker
	for i := 0; i <= 5; i++ {
		vt.Add(at(i*20), float64(i*10))
	}
	// 10px every 20ms is 500px/s.
	assert.InDelta(t, 500, vt.Estimate(), 1e-9)
}

func TestVelocityTracker_OldSamplesDoNotDampenFlicks(t *testing.T) {
	var vt VelocityTracker
	// A slow opening phase followed by a fast finish. Only the final
	// window should count, otherwise flicks after a hesitant start would
	// read as slow.
	for i := 0; i <= 3; i++ {
		vt.Add(at(i*100), float64(i))
	}
	for i := 1; i <= 5; i++ {
		vt.Add(at(300+i*20), 3+float64(i*20))
	}
	assert.InDelta(t, 1000, vt.Estimate(), 1e-9)
}

func TestVelocityTracker_TooFewSamples(t *testing.T) {
	var vt VelocityTracker
	assert.Zero(t, vt.Estimate())

	vt.Add(at(0), 40)
	assert.Zero(t, vt.Estimate())
}

func TestVelocityTracker_ZeroElapsedTime(t *testing.T) {
	var vt VelocityTracker
	vt.Add(at(10), 0)
	vt.Add(at(10), 50)
	assert.Zero(t, vt.Estimate())
}

func TestVelocityTracker_OutOfOrderSampleResets(t *testing.T) {
	var vt VelocityTracker
	vt.Add(at(100), 10)
	vt.Add(at(50), 20)
	assert.Zero(t, vt.Estimate(), "a rewound clock should not produce a velocity")

	vt.Add(at(70), 40)
	assert.InDelta(t, 1000, vt.Estimate(), 1e-9)
}

func TestVelocityTracker_ResetDropsHistory(t *testing.T) {
	var vt VelocityTracker
	vt.Add(at(0), 0)
	vt.Add(at(20), 100)
	vt.Reset()
	assert.Zero(t, vt.Estimate())
}

func TestVelocityTracker_SampleCapBounded(t *testing.T) {
	var vt VelocityTracker
	// Many samples inside one window must not grow without bound.
	for i := 0; i < 200; i++ {
		vt.Add(at(0).Add(time.Duration(i)*100*time.Microsecond), float64(i))
	}
	assert.LessOrEqual(t, len(vt.samples), maxVelocitySamples)
	assert.Greater(t, vt.Estimate(), 0.0)
}
