package handler

import (
	"strings"

	"engbot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// handleText routes every non-command message. Button presses arrive
// as plain text, so the raw text is decoded into a domain.Command once,
// here, and everything below dispatches on the enum.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	switch domain.ParseCommand(text) {
	case domain.CommandQuiz, domain.CommandNext:
		h.ResetState(userID)
		return h.sendNextQuestion(c)

	case domain.CommandBack:
		h.ResetState(userID)
		return h.sendPreviousQuestion(c)

	case domain.CommandAddWord:
		h.SetState(userID, domain.StateWaitingNewPair)
		return c.Send("📝 Введите слово на русском и перевод через дефис (пример: машина-car):")

	case domain.CommandDeleteWord:
		h.SetState(userID, domain.StateWaitingDeletion)
		return c.Send("🗑 Введите русское слово для удаления:")
	}

	// Free text: input for a pending admin flow, otherwise a quiz answer
	switch h.GetState(userID) {
	case domain.StateWaitingNewPair:
		return h.processAddWord(c, text)
	case domain.StateWaitingDeletion:
		return h.processDeleteWord(c, text)
	default:
		return h.processAnswer(c, text)
	}
}
