package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.ResetState(userID)

	return c.Send(
		fmt.Sprintf("Привет, %s! Я учебный бот по изучению английских слов. Давай приступим!", c.Sender().Username),
		mainMenuMarkup(),
	)
}
