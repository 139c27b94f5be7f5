// Package sfoglia provides an animated navigation stack for SDL2
// applications on embedded Linux devices, particularly handheld gaming
// consoles running custom firmware like NextUI or Cannoli.
//
// Screens stack like cards: pushing slides a new screen in over the
// current one, popping slides it back out, and a pan from the screen
// edge drags the top screen away interactively. A router.Router owns the
// navigation state; a Navigator renders it and animates every change it
// sees. The package also handles SDL initialization, input processing,
// and CFW theming.
package sfoglia

import (
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/platform/cannoli"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/platform/nextui"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/transition"
)

// Options configures framework initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                 // Custom accent color (ignored on NextUI which uses system theme)
	IsCannoli            bool                   // Enable Cannoli CFW theming
	IsNextUI             bool                   // Enable NextUI CFW theming and power button handling
	LogPath              string                 // Full path for log file including filename (creates parent directories)
	Locale               string                 // Locale tag for framework strings, e.g. "it"; empty uses LANG
	TuningPath           string                 // Optional TOML file overriding transition and gesture constants
}

// activeTuning is the tuning loaded during Init, consumed by navigators
// created without an explicit Tuning.
var activeTuning *transition.Tuning

// Init initializes the SDL subsystems, theming, and input handling.
// Must be called before any other sfoglia functions.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.NitratesEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.Locale != "" {
		internal.SetLocale(options.Locale)
	}

	pbc := internal.PowerButtonConfig{}

	if options.IsNextUI {
		internal.SetTheme(nextui.InitNextUITheme())

		// TG5050 exposes the power key on /dev/input/event2, all other
		// supported devices on event1.
		powerDevicePath := "/dev/input/event1"
		if strings.Contains(strings.ToUpper(os.Getenv("PLATFORM")), "TG5050") {
			powerDevicePath = "/dev/input/event2"
		}

		pbc = internal.PowerButtonConfig{
			DevicePath:        powerDevicePath,
			LongPressDuration: 2 * time.Second,
			OnShortPress:      func() { runPowerCommand("/mnt/SDCARD/.system/tg5040/bin/suspend") },
			OnLongPress:       func() { runPowerCommand("/sbin/poweroff") },
		}
	} else if options.IsCannoli {
		internal.SetTheme(cannoli.InitCannoliTheme("/mnt/SDCARD/System/fonts/Cannoli.ttf"))
	} else {
		internal.SetTheme(internal.DefaultTheme())
	}

	if options.PrimaryThemeColorHex != 0 && !options.IsNextUI {
		theme := internal.GetTheme()
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
		internal.SetTheme(theme)
	}

	if options.TuningPath != "" {
		tuning, err := transition.LoadTuning(options.TuningPath)
		if err != nil {
			internal.GetInternalLogger().Warn("Transition tuning file rejected; using defaults",
				"path", options.TuningPath, "error", err)
		}
		activeTuning = &tuning
	}

	internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, pbc)
}

func runPowerCommand(path string) {
	if err := exec.Command(path).Run(); err != nil {
		internal.GetInternalLogger().Error("Power command failed", "command", path, "error", err)
	}
}

// Close releases all SDL resources and shuts down the framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLocale overrides the locale used for framework strings such as the
// header back label. Call before Init() to take effect.
func SetLocale(tag string) {
	internal.SetLocale(tag)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}
