// Package nextui provides theming support for the NextUI custom firmware.
// NextUI stores its appearance settings in a shared key=value file; colors
// and font choice are read from there so sfoglia apps match the system UI.
package nextui

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

const (
	settingsPath = "/mnt/SDCARD/.userdata/shared/minuisettings.txt"

	fontOnePath = "/mnt/SDCARD/.system/res/font1.ttf"
	fontTwoPath = "/mnt/SDCARD/.system/res/font2.ttf"

	backgroundPath = "/mnt/SDCARD/bg.png"
)

// InitNextUITheme builds a theme from the NextUI system settings file.
// Missing or unparseable settings fall back to NextUI's stock appearance.
func InitNextUITheme() internal.Theme {
	settings := loadSettings(settingsPath)

	theme := internal.Theme{
		HighlightColor:       internal.HexToColor(colorSetting(settings, "color2", 0x9B2257)),
		AccentColor:          internal.HexToColor(colorSetting(settings, "color2", 0x9B2257)),
		ButtonLabelColor:     internal.HexToColor(0x000000),
		TextColor:            internal.HexToColor(colorSetting(settings, "color1", 0xFFFFFF)),
		HighlightedTextColor: internal.HexToColor(0xFFFFFF),
		HintColor:            internal.HexToColor(colorSetting(settings, "color3", 0x9B9B9B)),
		BackgroundColor:      internal.HexToColor(0x000000),
		FontPath:             fontTwoPath,
	}

	if settings["font"] == "1" {
		theme.FontPath = fontOnePath
	}

	if path := os.Getenv("BACKGROUND_PATH"); path != "" {
		theme.BackgroundImagePath = path
	} else if _, err := os.Stat(backgroundPath); err == nil {
		theme.BackgroundImagePath = backgroundPath
	}

	return theme
}

func loadSettings(path string) map[string]string {
	settings := make(map[string]string)

	file, err := os.Open(path)
	if err != nil {
		internal.GetInternalLogger().Warn("NextUI settings not found; using stock theme", "path", path, "error", err)
		return settings
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		settings[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return settings
}

func colorSetting(settings map[string]string, key string, fallback uint32) uint32 {
	raw, ok := settings[key]
	if !ok {
		return fallback
	}

	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "#")
	value, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		internal.GetInternalLogger().Warn("Invalid color in NextUI settings", "key", key, "value", raw)
		return fallback
	}

	return uint32(value)
}
