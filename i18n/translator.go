package i18n

import "strings"

// Translator retrieves localized messages for error codes. data provides
// optional values to embed in the message (for example, "min" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var catalogs = map[string]map[string]string{
	"en": {
		"wrong_type":         "Wrong type",
		"wrong_value_type":   "Wrong value type",
		"invalid_value":      "Invalid value",
		"required_missing":   "Required key not provided",
		"value_rejected":     "Value rejected",
		"extra_forbidden":    "Extra keys not allowed",
		"value_not_allowed":  "Value not allowed",
		"empty_value":        "Empty value",
		"non_empty_value":    "Non-empty value",
		"too_few":            "Too few values ({min} is the least)",
		"too_many":           "Too many values ({max} is the most)",
		"out_of_range":       "Value out of range",
		"no_match":           "Wrong format",
		"exclusive_conflict": "Only one of the keys is allowed",
		"none":               "-none-",
	},
	"ru": {
		"wrong_type":         "Неверный тип",
		"wrong_value_type":   "Неверный тип значения",
		"invalid_value":      "Неверное значение",
		"required_missing":   "Обязательный ключ не указан",
		"value_rejected":     "Значение отклонено",
		"extra_forbidden":    "Лишние ключи запрещены",
		"value_not_allowed":  "Недопустимое значение",
		"empty_value":        "Пустое значение",
		"non_empty_value":    "Непустое значение",
		"too_few":            "Слишком мало значений (минимум {min})",
		"too_many":           "Слишком много значений (максимум {max})",
		"out_of_range":       "Значение вне диапазона",
		"no_match":           "Неверный формат",
		"exclusive_conflict": "Допустим только один из ключей",
		"none":               "-нет-",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	cat, ok := catalogs[t.lang]
	if !ok {
		cat = catalogs["en"]
	}
	msg, ok := cat[code]
	if !ok {
		if msg, ok = catalogs["en"][code]; !ok {
			return code
		}
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ru").
func SetLanguage(lang string) {
	if _, ok := catalogs[lang]; !ok {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
