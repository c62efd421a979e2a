package middleware

import (
	"engbot/internal/domain"
	"engbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RegisterUser creates user-registration middleware: every inbound
// message ensures a users row exists before the handler runs, so the
// user_word foreign key always has a parent.
func RegisterUser(userService *service.UserService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			user := domain.User{
				UserID:   sender.ID,
				UserName: sender.Username,
				ChatID:   c.Chat().ID,
			}

			if err := userService.Register(user); err != nil {
				logger.Error("Failed to register user in middleware",
					zap.Int64("user_id", sender.ID),
					zap.Error(err),
				)
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			return next(c)
		}
	}
}
