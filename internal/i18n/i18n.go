// Package i18n holds the interface strings in every supported language.
package i18n

import (
	"slices"
	"strings"
)

// Language codes.
const (
	Korean  = "ko"
	English = "en"

	Default = Korean
)

// Language describes a selectable language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

// Supported lists the selectable languages in menu order.
var Supported = []Language{
	{Code: Korean, Name: "Korean", NativeName: "한국어"},
	{Code: English, Name: "English", NativeName: "English"},
}

// IsSupported reports whether code names a supported language.
func IsSupported(code string) bool {
	return slices.ContainsFunc(Supported, func(l Language) bool { return l.Code == code })
}

// Match maps a language tag such as "en-US" onto a supported code and reports
// whether one matched.
func Match(tag string) (string, bool) {
	base := tag
	for i, r := range tag {
		if r == '-' || r == '_' {
			base = tag[:i]
			break
		}
	}
	base = strings.ToLower(base)
	return base, IsSupported(base)
}

// Normalize is Match falling back to Default.
func Normalize(tag string) string {
	if code, ok := Match(tag); ok {
		return code
	}
	return Default
}

// T translates key into lang. Missing keys fall back to Default and then to
// the key itself.
func T(lang, key string) string {
	if s, ok := catalog[lang][key]; ok {
		return s
	}
	if s, ok := catalog[Default][key]; ok {
		return s
	}
	return key
}

// Bundle returns a copy of every string for lang, with Default filling gaps.
func Bundle(lang string) map[string]string {
	out := make(map[string]string, len(catalog[Default]))
	for k, v := range catalog[Default] {
		out[k] = v
	}
	for k, v := range catalog[lang] {
		out[k] = v
	}
	return out
}

var catalog = map[string]map[string]string{
	Korean: {
		"nav.home":      "홈",
		"nav.journey":   "여정",
		"nav.countries": "국가",
		"nav.about":     "소개",

		"journey.title":           "세계일주 배낭여행",
		"journey.subtitle":        "345일간의 여정",
		"journey.scrollToExplore": "스크롤하여 탐험하기",
		"journey.flying":          "비행 중",
		"journey.walking":         "이동 중",
		"journey.destination":     "목적지",
		"journey.transport":       "이동수단",
		"journey.days":            "일",
		"journey.cities":          "도시",
		"journey.stop":            "번째 방문지",
		"journey.of":              "/",
		"journey.photoComingSoon": "사진 추가 예정",
		"journey.complete":        "여행 완료",

		"transport.bus":    "버스",
		"transport.train":  "기차",
		"transport.flight": "비행기",
		"transport.boat":   "보트",
		"transport.trek":   "트레킹",
		"transport.start":  "출발",

		"continent.asia":          "아시아",
		"continent.middle-east":   "중동",
		"continent.africa":        "아프리카",
		"continent.europe":        "유럽",
		"continent.south-america": "남미",

		"common.next":     "다음",
		"common.prev":     "이전",
		"common.close":    "닫기",
		"common.language": "언어",
	},
	English: {
		"nav.home":      "Home",
		"nav.journey":   "Journey",
		"nav.countries": "Countries",
		"nav.about":     "About",

		"journey.title":           "World Backpacking Trip",
		"journey.subtitle":        "345 Days Around the World",
		"journey.scrollToExplore": "Scroll to explore",
		"journey.flying":          "In Flight",
		"journey.walking":         "Traveling",
		"journey.destination":     "Destination",
		"journey.transport":       "Transport",
		"journey.days":            "days",
		"journey.cities":          "cities",
		"journey.stop":            "th stop",
		"journey.of":              "of",
		"journey.photoComingSoon": "Photos coming soon",
		"journey.complete":        "Journey Complete",

		"transport.bus":    "Bus",
		"transport.train":  "Train",
		"transport.flight": "Flight",
		"transport.boat":   "Boat",
		"transport.trek":   "Trek",
		"transport.start":  "Start",

		"continent.asia":          "Asia",
		"continent.middle-east":   "Middle East",
		"continent.africa":        "Africa",
		"continent.europe":        "Europe",
		"continent.south-america": "South America",

		"common.next":     "Next",
		"common.prev":     "Previous",
		"common.close":    "Close",
		"common.language": "Language",
	},
}
