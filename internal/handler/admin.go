package handler

import (
	"errors"
	"fmt"

	"engbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// processAddWord finishes the two-step "add word" flow
func (h *Handler) processAddWord(c tele.Context, text string) error {
	userID := c.Sender().ID

	entry, err := h.vocabService.AddWordPair(text)
	switch {
	case errors.Is(err, domain.ErrBadPairFormat), errors.Is(err, domain.ErrEmptyPairField):
		// State is kept so the user can retry the input
		return c.Send("❌ Ошибка: проверьте формат ввода! Пример: машина-car")
	case err != nil:
		h.logger.Error("Failed to add word",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.ResetState(userID)
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	h.logger.Info("Word added",
		zap.Int64("user_id", userID),
		zap.String("word", entry.Word),
		zap.String("translation", entry.Translation),
	)

	h.ResetState(userID)
	return c.Send("✅ Слово успешно добавлено!", mainMenuMarkup())
}

// processDeleteWord finishes the two-step "delete word" flow
func (h *Handler) processDeleteWord(c tele.Context, text string) error {
	userID := c.Sender().ID

	err := h.vocabService.DeleteUserWord(userID, text)
	switch {
	case errors.Is(err, domain.ErrWordNotFound):
		h.ResetState(userID)
		return c.Send(fmt.Sprintf("⚠️ Слово '%s' не найдено", text))
	case err != nil:
		h.logger.Error("Failed to delete word",
			zap.Int64("user_id", userID),
			zap.String("word", text),
			zap.Error(err),
		)
		h.ResetState(userID)
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	h.logger.Info("Word removed from user's list",
		zap.Int64("user_id", userID),
		zap.String("word", text),
	)

	h.ResetState(userID)
	return c.Send(fmt.Sprintf("✅ Слово '%s' удалено из вашего списка!", text), mainMenuMarkup())
}
