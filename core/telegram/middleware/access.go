package middleware

import tele "gopkg.in/telebot.v4"

// AccessOptions defines how admin-only checks behave. The allow-list is
// loaded once from configuration and never mutated afterwards.
type AccessOptions struct {
	AdminIDs []int64
	OnReject tele.HandlerFunc
}

// Allowed reports membership in the allow-list.
func (o AccessOptions) Allowed(userID int64) bool {
	for _, id := range o.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// AdminOnlyMiddleware ensures that only allow-listed users reach downstream
// handlers. Rejected users get the OnReject reply and nothing else runs, so
// privileged handlers never see a non-admin update.
func AdminOnlyMiddleware(opts AccessOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil || !opts.Allowed(sender.ID) {
				if opts.OnReject != nil {
					return opts.OnReject(c)
				}
				return nil
			}
			return next(c)
		}
	}
}
