package internal

import (
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PowerButtonConfig wires the hardware power key on handheld devices.
// An empty DevicePath disables the handler entirely; dev mode never
// starts it.
type PowerButtonConfig struct {
	// DevicePath is the evdev input device carrying KEY_POWER, for
	// example /dev/input/event1.
	DevicePath string

	// LongPressDuration separates a short press (suspend) from a long
	// press (shutdown). Zero means one second.
	LongPressDuration time.Duration

	// OnShortPress and OnLongPress run on the handler goroutine. Nil
	// handlers just log the press.
	OnShortPress func()
	OnLongPress  func()
}

// powerCooldown suppresses bounce after an action fires. Atomic because
// the handler goroutine sets it while app code may inspect it.
var powerCooldown = atomic.NewBool(false)

// PowerButtonCoolingDown reports whether a power action fired within the
// last cooldown window.
func PowerButtonCoolingDown() bool {
	return powerCooldown.Load()
}

// PowerButtonHandler watches the configured evdev device for power key
// presses until the WaitGroup completes. The caller Add(1)s before
// starting the goroutine and Done()s at shutdown; the handler closes the
// device in response, which unblocks the read loop.
func PowerButtonHandler(wg *sync.WaitGroup, pbc PowerButtonConfig) {
	if pbc.DevicePath == "" {
		return
	}
	if pbc.LongPressDuration <= 0 {
		pbc.LongPressDuration = time.Second
	}

	device, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		GetInternalLogger().Error("Failed to open power button device", "path", pbc.DevicePath, "error", err)
		return
	}

	go func() {
		wg.Wait()
		device.Close()
	}()

	GetInternalLogger().Debug("Power button handler started", "path", pbc.DevicePath)

	var pressedAt time.Time
	for {
		ev, err := device.ReadOne()
		if err != nil {
			// Device closed on shutdown, or unplugged.
			return
		}
		if ev.Type != evdev.EV_KEY || ev.Code != evdev.KEY_POWER {
			continue
		}

		switch ev.Value {
		case 1:
			pressedAt = time.Now()
		case 0:
			if pressedAt.IsZero() || powerCooldown.Load() {
				continue
			}
			held := time.Since(pressedAt)
			pressedAt = time.Time{}

			powerCooldown.Store(true)
			time.AfterFunc(2*time.Second, func() { powerCooldown.Store(false) })

			if held >= pbc.LongPressDuration {
				GetInternalLogger().Info("Power button long press", "held", held)
				if pbc.OnLongPress != nil {
					pbc.OnLongPress()
				}
			} else {
				GetInternalLogger().Info("Power button short press", "held", held)
				if pbc.OnShortPress != nil {
					pbc.OnShortPress()
				}
			}
		}
	}
}
