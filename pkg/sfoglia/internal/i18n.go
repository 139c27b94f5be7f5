package internal

import (
	"embed"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed translations/*.toml
var translationsFS embed.FS

var (
	localizerOnce sync.Once
	localizer     *i18n.Localizer
	localeTag     string
)

// SetLocale overrides the locale used for framework strings such as the
// header back label. Must run before the first Localize call; otherwise
// the LANG environment variable decides.
func SetLocale(tag string) {
	localeTag = tag
}

func initLocalizer() {
	localizerOnce.Do(func() {
		bundle := i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := translationsFS.ReadDir("translations")
		if err != nil {
			GetInternalLogger().Error("Failed to read embedded translations", "error", err)
		}
		for _, entry := range entries {
			data, err := translationsFS.ReadFile("translations/" + entry.Name())
			if err != nil {
				continue
			}
			if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
				GetInternalLogger().Warn("Skipping translation file", "file", entry.Name(), "error", err)
			}
		}

		tags := []string{}
		if localeTag != "" {
			tags = append(tags, localeTag)
		}
		if env := envLocale(); env != "" {
			tags = append(tags, env)
		}
		tags = append(tags, "en")

		localizer = i18n.NewLocalizer(bundle, tags...)
	})
}

// envLocale extracts a language tag from LANG, e.g. "it" out of
// "it_IT.UTF-8".
func envLocale() string {
	env := os.Getenv("LANG")
	if env == "" {
		return ""
	}
	if i := strings.IndexAny(env, "_."); i > 0 {
		env = env[:i]
	}
	return env
}

// Localize resolves a framework message in the active locale, falling
// back to the message ID itself.
func Localize(messageID string) string {
	initLocalizer()

	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil || msg == "" {
		return messageID
	}
	return msg
}

// BackLabel is the localized default label next to the header's back
// chevron, used when the previous screen has no title.
func BackLabel() string {
	return Localize("Back")
}
