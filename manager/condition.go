package manager

import "strings"

type Language string

const (
	English Language = "en"
	Thai    Language = "th"
)

// ParseLanguage falls back to English for anything it does not know.
func ParseLanguage(s string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case Thai:
		return Thai
	default:
		return English
	}
}

type conditionKind int

const (
	clearSky conditionKind = iota
	partlyCloudy
	fog
	lightRain
	heavyRain
	rain
)

var icons = map[conditionKind]string{
	clearSky:     "sunny",
	partlyCloudy: "cloudy",
	fog:          "fog",
	lightRain:    "rainy_light",
	heavyRain:    "thunderstorm",
	rain:         "rainy",
}

var labels = map[Language]map[conditionKind]string{
	English: {
		clearSky:     "clear sky",
		partlyCloudy: "partly cloudy",
		fog:          "fog",
		lightRain:    "light rain",
		heavyRain:    "heavy rain/flood warning",
		rain:         "rain",
	},
	Thai: {
		clearSky:     "ฟ้าโปร่ง แดดจัด",
		partlyCloudy: "มีเมฆบางส่วน",
		fog:          "มีหมอกลง",
		lightRain:    "ฝนตกปรอยๆ",
		heavyRain:    "ฝนตกหนัก ระวังน้ำท่วม",
		rain:         "ฝนตก",
	},
}

// kind checks the WMO ranges top to bottom; codes in the gaps
// (negative, 4-44, 49-50, 68-79, 100+) fall through to generic rain.
func kind(code int) conditionKind {
	if code == 0 {
		return clearSky
	}
	if code >= 1 && code <= 3 {
		return partlyCloudy
	}
	if code == 45 || code == 48 {
		return fog
	}
	if code >= 51 && code <= 67 {
		return lightRain
	}
	if code >= 80 && code <= 99 {
		return heavyRain
	}
	return rain
}

func Classify(code int) Condition {
	return ClassifyIn(English, code)
}

func ClassifyIn(lang Language, code int) Condition {
	texts, ok := labels[lang]
	if !ok {
		texts = labels[English]
	}

	k := kind(code)
	return Condition{Text: texts[k], Icon: icons[k]}
}
