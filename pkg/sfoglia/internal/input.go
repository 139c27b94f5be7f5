package internal

import (
	"sync"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
)

// Event is one processed button transition.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// triggerThreshold is how far an analog trigger must travel before it
// counts as a digital L2/R2 press.
const triggerThreshold = 16384

// InputProcessor folds SDL keyboard, game controller, and joystick
// events into VirtualButton transitions so components never deal with
// device specifics.
type InputProcessor struct {
	controllers map[int]*sdl.GameController
	triggerHeld [2]bool
}

var (
	processorOnce sync.Once
	processor     *InputProcessor
)

// InitInputProcessor opens all connected game controllers and prepares
// event translation. Safe to call once during Init.
func InitInputProcessor() {
	processorOnce.Do(func() {
		processor = &InputProcessor{controllers: make(map[int]*sdl.GameController)}

		for i := 0; i < sdl.NumJoysticks(); i++ {
			if !sdl.IsGameController(i) {
				continue
			}
			if controller := sdl.GameControllerOpen(i); controller != nil {
				id := int(controller.Joystick().InstanceID())
				processor.controllers[id] = controller
				GetInternalLogger().Debug("Opened game controller", "name", controller.Name(), "instance", id)
			}
		}
	})
}

// GetInputProcessor returns the shared processor. InitInputProcessor
// must have run first.
func GetInputProcessor() *InputProcessor {
	return processor
}

// CloseAllControllers releases every opened controller.
func CloseAllControllers() {
	if processor == nil {
		return
	}
	for _, controller := range processor.controllers {
		controller.Close()
	}
	processor.controllers = make(map[int]*sdl.GameController)
}

// ProcessSDLEvent translates one SDL event into a button transition, or
// nil when the event does not map to a virtual button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	if ev, ok := event.(*sdl.ControllerDeviceEvent); ok {
		p.handleDeviceEvent(ev)
		return nil
	}

	// Swallow the key noise around suspend and resume.
	if PowerButtonCoolingDown() {
		return nil
	}

	switch ev := event.(type) {
	case *sdl.ControllerButtonEvent:
		if button := controllerButton(ev.Button); button != constants.VirtualButtonUnassigned {
			return &Event{Button: button, Pressed: ev.State == sdl.PRESSED}
		}
	case *sdl.ControllerAxisEvent:
		return p.handleTriggerAxis(ev)
	case *sdl.KeyboardEvent:
		if ev.Repeat > 0 {
			return nil
		}
		if button := keyboardButton(ev.Keysym.Sym); button != constants.VirtualButtonUnassigned {
			return &Event{Button: button, Pressed: ev.Type == sdl.KEYDOWN}
		}
	case *sdl.JoyHatEvent:
		// Bare joysticks without a controller mapping still navigate.
		if button := hatButton(ev.Value); button != constants.VirtualButtonUnassigned {
			return &Event{Button: button, Pressed: true}
		}
	}
	return nil
}

func (p *InputProcessor) handleDeviceEvent(ev *sdl.ControllerDeviceEvent) {
	switch ev.Type {
	case sdl.CONTROLLERDEVICEADDED:
		if controller := sdl.GameControllerOpen(int(ev.Which)); controller != nil {
			id := int(controller.Joystick().InstanceID())
			p.controllers[id] = controller
		}
	case sdl.CONTROLLERDEVICEREMOVED:
		if controller, ok := p.controllers[int(ev.Which)]; ok {
			controller.Close()
			delete(p.controllers, int(ev.Which))
		}
	}
}

func (p *InputProcessor) handleTriggerAxis(ev *sdl.ControllerAxisEvent) *Event {
	var idx int
	var button constants.VirtualButton

	switch ev.Axis {
	case sdl.CONTROLLER_AXIS_TRIGGERLEFT:
		idx, button = 0, constants.VirtualButtonL2
	case sdl.CONTROLLER_AXIS_TRIGGERRIGHT:
		idx, button = 1, constants.VirtualButtonR2
	default:
		return nil
	}

	pressed := ev.Value > triggerThreshold
	if pressed == p.triggerHeld[idx] {
		return nil
	}
	p.triggerHeld[idx] = pressed
	return &Event{Button: button, Pressed: pressed}
}

func controllerButton(button uint8) constants.VirtualButton {
	switch sdl.GameControllerButton(button) {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_X:
		return constants.VirtualButtonX
	case sdl.CONTROLLER_BUTTON_Y:
		return constants.VirtualButtonY
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return constants.VirtualButtonL1
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return constants.VirtualButtonR1
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

// keyboardButton maps the dev-mode keyboard layout: arrows for the dpad,
// ZXAS for the face buttons, QW for shoulders.
func keyboardButton(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_z:
		return constants.VirtualButtonA
	case sdl.K_x:
		return constants.VirtualButtonB
	case sdl.K_a:
		return constants.VirtualButtonY
	case sdl.K_s:
		return constants.VirtualButtonX
	case sdl.K_q:
		return constants.VirtualButtonL1
	case sdl.K_w:
		return constants.VirtualButtonR1
	case sdl.K_RETURN:
		return constants.VirtualButtonStart
	case sdl.K_RSHIFT:
		return constants.VirtualButtonSelect
	case sdl.K_ESCAPE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

func hatButton(value uint8) constants.VirtualButton {
	switch value {
	case sdl.HAT_UP:
		return constants.VirtualButtonUp
	case sdl.HAT_DOWN:
		return constants.VirtualButtonDown
	case sdl.HAT_LEFT:
		return constants.VirtualButtonLeft
	case sdl.HAT_RIGHT:
		return constants.VirtualButtonRight
	default:
		return constants.VirtualButtonUnassigned
	}
}

// PointerFromSDL converts mouse and touch input into the gesture
// package's pointer samples. Touch coordinates arrive normalized and
// scale by the logical window size; emulated mouse events that SDL
// synthesizes from touches are dropped so a finger is never counted
// twice.
func PointerFromSDL(event sdl.Event, width, height int32) (gesture.PointerEvent, bool) {
	now := time.Now()

	switch ev := event.(type) {
	case *sdl.MouseButtonEvent:
		if ev.Which == sdl.TOUCH_MOUSEID || ev.Button != sdl.BUTTON_LEFT {
			return gesture.PointerEvent{}, false
		}
		kind := gesture.PointerDown
		if ev.Type == sdl.MOUSEBUTTONUP {
			kind = gesture.PointerUp
		}
		return gesture.PointerEvent{Kind: kind, X: float64(ev.X), Y: float64(ev.Y), Time: now}, true

	case *sdl.MouseMotionEvent:
		if ev.Which == sdl.TOUCH_MOUSEID || ev.State&sdl.ButtonLMask() == 0 {
			return gesture.PointerEvent{}, false
		}
		return gesture.PointerEvent{Kind: gesture.PointerMove, X: float64(ev.X), Y: float64(ev.Y), Time: now}, true

	case *sdl.TouchFingerEvent:
		var kind gesture.PointerKind
		switch ev.Type {
		case sdl.FINGERDOWN:
			kind = gesture.PointerDown
		case sdl.FINGERUP:
			kind = gesture.PointerUp
		case sdl.FINGERMOTION:
			kind = gesture.PointerMove
		default:
			return gesture.PointerEvent{}, false
		}
		return gesture.PointerEvent{
			Kind: kind,
			X:    float64(ev.X) * float64(width),
			Y:    float64(ev.Y) * float64(height),
			Time: now,
		}, true
	}

	return gesture.PointerEvent{}, false
}
