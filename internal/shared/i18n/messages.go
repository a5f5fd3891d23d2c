package i18n

import "golang.org/x/text/language"

// Message keys used by the field validator and command handlers.
const (
	KeyFieldMinMax        = "field.minmax"
	KeyFieldDefaultRange  = "field.default_range"
	KeyFieldDefaultLength = "field.default_length"
	KeyFieldDefaultFormat = "field.default_format"
	KeyFieldPCREInvalid   = "field.pcre_invalid"
	KeyFieldValueRejected = "field.value_rejected"
	KeyStateNoTransition  = "state.no_transition"
	KeyStateBadCandidate  = "state.bad_candidate"
)

var catalog = map[language.Tag]map[string]string{
	language.English: {
		KeyFieldMinMax:        "Maximum value should not be less than minimum one.",
		KeyFieldDefaultRange:  "Default value should be in range from %minimum% to %maximum%.",
		KeyFieldDefaultLength: "Default value should not be longer than %maximum% characters.",
		KeyFieldDefaultFormat: "Default value does not match the required format.",
		KeyFieldPCREInvalid:   "Invalid PCRE pattern: %pattern%.",
		KeyFieldValueRejected: "Value of the %name% field is rejected.",
		KeyStateNoTransition:  "Transition to the %name% state is not allowed.",
		KeyStateBadCandidate:  "User %name% cannot be assigned as responsible.",
	},
	language.Russian: {
		KeyFieldMinMax:        "Максимальное значение не должно быть меньше минимального.",
		KeyFieldDefaultRange:  "Значение по умолчанию должно быть в пределах от %minimum% до %maximum%.",
		KeyFieldDefaultLength: "Значение по умолчанию не должно быть длиннее %maximum% символов.",
		KeyFieldDefaultFormat: "Значение по умолчанию не соответствует требуемому формату.",
		KeyFieldPCREInvalid:   "Некорректный PCRE-шаблон: %pattern%.",
		KeyFieldValueRejected: "Значение поля %name% отклонено.",
		KeyStateNoTransition:  "Переход в состояние %name% не разрешён.",
		KeyStateBadCandidate:  "Пользователь %name% не может быть назначен ответственным.",
	},
}
