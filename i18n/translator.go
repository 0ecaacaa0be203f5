package i18n

// Translator retrieves localized hint messages for failure codes. data
// provides optional metadata to embed in the message (for example, "min" or
// "other").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return "必須項目です"
		case "letters_only":
			return "英字のみ使用できます"
		case "digits_only":
			return "数字のみ使用できます"
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "mismatch":
			return "値が一致しません"
		case "invalid_format":
			return "形式が不正です"
		case "not_in_list":
			return "許可されていない値です"
		}
	default: // "en"
		switch code {
		case "required":
			return "this field is required"
		case "letters_only":
			return "letters only"
		case "digits_only":
			return "digits only"
		case "too_short":
			return "too short"
		case "too_long":
			return "too long"
		case "mismatch":
			return "values do not match"
		case "invalid_format":
			return "invalid format"
		case "not_in_list":
			return "value is not allowed"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
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
