package handler

import (
	"errors"
	"fmt"

	"engbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// sendNextQuestion asks the quiz engine for a fresh question and shows it
func (h *Handler) sendNextQuestion(c tele.Context) error {
	userID := c.Sender().ID

	q, err := h.quizService.NextQuestion(userID)
	if errors.Is(err, domain.ErrNoWordsLeft) {
		return c.Send("Вы изучили все слова! Добавьте новые слова с помощью кнопки «Добавить слово».", mainMenuMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to build question",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	return h.sendQuestion(c, q)
}

// sendPreviousQuestion rewinds the user's history by one question
func (h *Handler) sendPreviousQuestion(c tele.Context) error {
	userID := c.Sender().ID

	q, err := h.quizService.Previous(userID)
	switch {
	case errors.Is(err, domain.ErrHistoryEmpty):
		return c.Send("⏮ История слов пуста")
	case errors.Is(err, domain.ErrNoPreviousWord):
		return c.Send("⏮ Нет предыдущих слов")
	case err != nil:
		h.logger.Error("Failed to rewind history",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	return h.sendQuestion(c, q)
}

// processAnswer checks free text against the pending question
func (h *Handler) processAnswer(c tele.Context, text string) error {
	userID := c.Sender().ID

	correct, err := h.quizService.CheckAnswer(userID, text)
	if errors.Is(err, domain.ErrNoActiveQuestion) {
		// Nothing pending: nudge back to the menu
		return c.Send("Выберите действие:", mainMenuMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to check answer",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	if !correct {
		return c.Send("❌ Неправильно. Попробуйте ещё раз!")
	}

	h.logger.Info("Word learned",
		zap.Int64("user_id", userID),
		zap.String("answer", text),
	)

	return c.Send("✅ Правильно! Молодец!", mainMenuMarkup())
}

// sendQuestion renders a question with its option keyboard
func (h *Handler) sendQuestion(c tele.Context, q *domain.Question) error {
	return c.Send(
		fmt.Sprintf("Как переводится слово %s?", q.Word),
		questionMarkup(q),
	)
}
