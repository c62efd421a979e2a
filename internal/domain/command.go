package domain

// Command is a user action decoded from message text at the transport
// boundary. Everything downstream dispatches on this enum, not on the
// raw button labels.
type Command int

const (
	// CommandNone means the text matched no button: it is either a quiz
	// answer or input for a pending add/delete flow.
	CommandNone Command = iota
	CommandQuiz
	CommandNext
	CommandBack
	CommandAddWord
	CommandDeleteWord
)

// Button labels shown on the reply keyboards.
const (
	ButtonQuiz       = "Квиз"
	ButtonNext       = "Дальше"
	ButtonBack       = "Назад"
	ButtonAddWord    = "Добавить слово"
	ButtonDeleteWord = "Удалить слово"
)

// ParseCommand maps message text to a Command.
func ParseCommand(text string) Command {
	switch text {
	case ButtonQuiz:
		return CommandQuiz
	case ButtonNext:
		return CommandNext
	case ButtonBack:
		return CommandBack
	case ButtonAddWord:
		return CommandAddWord
	case ButtonDeleteWord:
		return CommandDeleteWord
	default:
		return CommandNone
	}
}
