package tray

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	supported = []language.Tag{
		language.English,
		language.Russian,
	}
	matcher = language.NewMatcher(supported)

	// indexed like supported
	labelSets = []map[ItemID]string{
		{
			ItemShow:      "Show",
			ItemQuit:      "Exit",
			ItemPlayPause: "Play/Pause",
			ItemNext:      "Next track",
			ItemPrev:      "Previous track",
		},
		{
			ItemShow:      "Показать",
			ItemQuit:      "Выход",
			ItemPlayPause: "Пауза/Воспроизведение",
			ItemNext:      "Следующий трек",
			ItemPrev:      "Предыдущий трек",
		},
	}
)

// Labels returns the menu labels for the closest supported locale. Unknown
// or unparsable locales get English.
func Labels(locale string) map[ItemID]string {
	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return copyLabels(labelSets[0])
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return copyLabels(labelSets[idx])
}

// DetectLocale reads the POSIX locale variables in priority order.
func DetectLocale(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// normalizeLocale turns "ru_RU.UTF-8@euro" into "ru-RU".
func normalizeLocale(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

func copyLabels(m map[ItemID]string) map[ItemID]string {
	out := make(map[ItemID]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
