// Package messages holds the user-facing strings of the collapse command.
package messages

// Key identifies a message.
type Key string

const (
	Result              Key = "result"
	Failed              Key = "failed"
	TransactionName     Key = "transaction_name"
	ErrorNoSchedule     Key = "error_no_schedule"
	ErrorNoEndColumn    Key = "error_no_end_column"
	ResultNoFields      Key = "result_no_fields"
	ResultMessage       Key = "result_message"
	ResultMessageHidden Key = "result_message_hidden"
	ResultMessageOpened Key = "result_message_opened"
)

// Language selects a message table.
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
)

var tables = map[Language]map[Key]string{
	English: {
		Result:              "Result",
		Failed:              "Failed",
		TransactionName:     "Collapse rebar schedule",
		ErrorNoSchedule:     "Open a schedule or select a rebar schedule placed on a sheet",
		ErrorNoEndColumn:    "No closing column found: add a field whose name starts with \"=\"",
		ResultNoFields:      "No applicable fields",
		ResultMessage:       "Schedule updated",
		ResultMessageHidden: "Columns hidden",
		ResultMessageOpened: "Columns opened",
	},
	Russian: {
		Result:              "Результат",
		Failed:              "Ошибка",
		TransactionName:     "Свернуть спецификацию",
		ErrorNoSchedule:     "Откройте спецификацию или выберите ведомость расхода стали на листе",
		ErrorNoEndColumn:    "Не найден завершающий столбец: добавьте поле, имя которого начинается с \"=\"",
		ResultNoFields:      "Нет подходящих столбцов",
		ResultMessage:       "Спецификация обновлена",
		ResultMessageHidden: "Скрыто столбцов",
		ResultMessageOpened: "Открыто столбцов",
	},
}

// Supported reports whether lang has a message table.
func Supported(lang Language) bool {
	_, ok := tables[lang]
	return ok
}

// Get returns the message for key in lang, falling back to English and
// then to the key itself.
func Get(lang Language, key Key) string {
	if s, ok := tables[lang][key]; ok {
		return s
	}
	if s, ok := tables[English][key]; ok {
		return s
	}
	return string(key)
}
