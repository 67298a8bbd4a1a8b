package bot

import "github.com/nlklfor/tgBot-metallurg/core/telegram/state"

// Conversation states. Each flow is linear and resets to idle on
// completion, cancellation, or any error.
const (
	stateConfirmOrder   state.State = "confirm_order"
	stateStatusCode     state.State = "status_code"
	stateOrderInfoCode  state.State = "order_info_code"
	stateSetStatusCode  state.State = "set_status_code"
	stateSetStatusValue state.State = "set_status_value"
	stateNotifyCode     state.State = "notify_code"
	stateNotifyMessage  state.State = "notify_message"
)

// Temp-data keys accumulated across FSM steps.
const (
	tempProductID    = "product_id"
	tempTrackingCode = "tracking_code"
	tempNotifyUserID = "notify_user_id"
)

// registerStates binds FSM states to their text handlers. The
// confirm_order state has no text handler: confirmation happens via
// callbacks only, stray text in that state is ignored.
func (a *App) registerStates() {
	state.RegisterHandler(stateStatusCode, a.onStatusCode)
	state.RegisterHandler(stateOrderInfoCode, a.onOrderInfoCode)
	state.RegisterHandler(stateSetStatusCode, a.onSetStatusCode)
	state.RegisterHandler(stateSetStatusValue, a.onSetStatusValue)
	state.RegisterHandler(stateNotifyCode, a.onNotifyCode)
	state.RegisterHandler(stateNotifyMessage, a.onNotifyMessage)
}
