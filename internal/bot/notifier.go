package bot

import (
	"fmt"

	tele "gopkg.in/telebot.v4"
	"log/slog"

	"github.com/nlklfor/tgBot-metallurg/core/logger"
	"github.com/nlklfor/tgBot-metallurg/core/telegram/netutil"
)

// Notifier pushes admin-authored messages directly to a buyer's chat.
// Delivery is synchronous on purpose: the admin must see the failure in
// the same flow instead of a silent drop in a queue.
type Notifier struct{}

// NewNotifier returns a ready Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Push sends an order update to the buyer identified by userID.
// A single retry is attempted for transient network failures.
func (n *Notifier) Push(c tele.Context, userID int64, trackingCode, message string) error {
	text := fmt.Sprintf(tmplNotifyBody, trackingCode, message)
	recipient := &tele.User{ID: userID}

	_, err := c.Bot().Send(recipient, text)
	if err != nil && netutil.ShouldRetry(err) {
		logger.SVCNotify.Warn("notify retry",
			slog.String("event", "notify.retry"),
			slog.String("tracking_code", trackingCode),
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		_, err = c.Bot().Send(recipient, text)
	}
	if err != nil {
		logger.SVCNotify.Error("notify failed",
			slog.String("event", "notify.send"),
			slog.String("tracking_code", trackingCode),
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return err
	}

	logger.SVCNotify.Info("notify sent",
		slog.String("event", "notify.send"),
		slog.String("tracking_code", trackingCode),
		slog.Int64("user_id", userID),
	)
	return nil
}
