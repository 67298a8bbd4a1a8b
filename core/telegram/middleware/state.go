package middleware

import (
	"github.com/nlklfor/tgBot-metallurg/core/logger"
	tghelpers "github.com/nlklfor/tgBot-metallurg/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// StateGetter reports the current FSM state name for a user.
type StateGetter func(userID int64) string

// State returns a middleware that runs the handler only when the user is
// in the expected FSM state. Updates arriving in any other state are
// logged and dropped, mirroring state-filtered handlers.
func State(get StateGetter, expectedState string) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID
			currentState := get(userID)
			ctx := tghelpers.BuildContext(c)
			if currentState == expectedState {
				logger.TG.LogAttrs(ctx, slog.LevelDebug, "fsm.match",
					slog.Int64("user_id", userID),
					slog.String("state", currentState),
					slog.String("expected", expectedState),
					slog.String("rid", logger.RIDFrom(ctx)),
				)
				return next(c)
			}
			logger.TG.LogAttrs(ctx, slog.LevelDebug, "fsm.skip",
				slog.Int64("user_id", userID),
				slog.String("state", currentState),
				slog.String("expected", expectedState),
				slog.String("rid", logger.RIDFrom(ctx)),
			)
			// Ignore the update when the user is in a different state
			return nil
		}
	}
}
