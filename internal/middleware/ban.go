package middleware

import (
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// BanMiddleware cuts banned users off before any handler runs. The
// administrator identity is exempt so a misfired ban cannot lock the
// panel out.
func BanMiddleware(users *service.UserService, adminID int64, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil {
				return next(c)
			}

			userID := c.Sender().ID
			if userID == adminID {
				return next(c)
			}

			banned, err := users.IsBanned(userID)
			if err != nil {
				logger.Error("Failed to check ban in middleware", zap.Error(err))
				return c.Send("Something went wrong. Try again later.")
			}

			if banned {
				logger.Info("Rejected banned user", zap.Int64("user_id", userID))
				return c.Send("🚫 Your account is banned. Contact support if this is a mistake.")
			}

			return next(c)
		}
	}
}
