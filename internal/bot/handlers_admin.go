package bot

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/nlklfor/tgBot-metallurg/core/telegram/helpers"
	"github.com/nlklfor/tgBot-metallurg/internal/models"
)

const recentOrdersLimit = 20

const orderInfoTimeLayout = "02.01.2006 15:04:05"

// ensureAdmin re-checks the allow-list inside FSM steps. Commands are
// already guarded by middleware, but state handlers are reachable by any
// text message, so a user whose access was revoked mid-flow is cut off here.
func (a *App) ensureAdmin(c tele.Context) bool {
	if a.cfg.Core.Telegram.IsAdmin(c.Sender().ID) {
		return true
	}
	a.states.Clear(c.Sender().ID)
	_ = helpers.SendText(c, textAccessDenied)
	return false
}

// handleAdminHelp lists the admin command reference.
func (a *App) handleAdminHelp(c tele.Context) error {
	helpers.WithHandler(c, "admin.help")
	return helpers.SendText(c, textAdminHelp)
}

// handleOrders shows the most recent orders.
func (a *App) handleOrders(c tele.Context) error {
	ctx := helpers.WithHandler(c, "admin.orders")

	orders, err := a.orders.ListRecent(ctx, recentOrdersLimit)
	if err != nil {
		return helpers.SendText(c, textCommandError)
	}
	if len(orders) == 0 {
		return helpers.SendText(c, textNoOrders)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📦 ПОСЛЕДНИЕ %d ЗАКАЗОВ\n%s\n\n", recentOrdersLimit, strings.Repeat("=", 40))
	for i, order := range orders {
		fmt.Fprintf(&b, tmplOrderListItem,
			i+1,
			order.TrackingCode,
			order.UserID,
			order.Status.Label(),
			helpers.FormatDateTime(order.CreatedAt),
		)
	}
	return helpers.SendText(c, b.String())
}

// handleOrderInfo shows details for one order, prompting for the code
// when it is not passed as an argument.
func (a *App) handleOrderInfo(c tele.Context) error {
	helpers.WithHandler(c, "admin.order_info")

	code := strings.TrimSpace(c.Message().Payload)
	if code != "" {
		return a.showOrderInfo(c, code)
	}
	a.states.SetState(c.Sender().ID, stateOrderInfoCode)
	return helpers.SendText(c, textEnterOrderCode)
}

func (a *App) onOrderInfoCode(c tele.Context) error {
	if !a.ensureAdmin(c) {
		return nil
	}
	helpers.WithHandler(c, "admin.order_info.code")
	return a.showOrderInfo(c, strings.TrimSpace(c.Text()))
}

func (a *App) showOrderInfo(c tele.Context, code string) error {
	ctx := helpers.BuildContext(c)
	userID := c.Sender().ID
	a.states.Clear(userID)

	order, found, err := a.orders.FindByTrackingCode(ctx, code)
	if err != nil {
		return helpers.SendText(c, textCommandError)
	}
	if !found {
		return helpers.SendText(c, fmt.Sprintf(tmplOrderNotFoundCode, code))
	}

	info := fmt.Sprintf("📦 ИНФОРМАЦИЯ О ЗАКАЗЕ\n%s\n\n", strings.Repeat("=", 40)) +
		fmt.Sprintf(tmplOrderInfo,
			order.TrackingCode,
			order.UserID,
			order.ProductID,
			order.Status.Label(),
			order.CreatedAt.Local().Format(orderInfoTimeLayout),
		)
	return helpers.SendText(c, info)
}

// handleSetStatus updates an order status, either from inline arguments
// "/set_status <code> <status>" or through a two-step prompt flow.
func (a *App) handleSetStatus(c tele.Context) error {
	helpers.WithHandler(c, "admin.set_status")

	args := strings.Fields(c.Message().Payload)
	if len(args) == 2 {
		return a.applyStatus(c, args[0], args[1])
	}
	a.states.SetState(c.Sender().ID, stateSetStatusCode)
	return helpers.SendText(c, textEnterOrderCode)
}

func (a *App) onSetStatusCode(c tele.Context) error {
	if !a.ensureAdmin(c) {
		return nil
	}
	ctx := helpers.WithHandler(c, "admin.set_status.code")
	userID := c.Sender().ID
	code := strings.TrimSpace(c.Text())

	_, found, err := a.orders.FindByTrackingCode(ctx, code)
	if err != nil {
		a.states.Clear(userID)
		return helpers.SendText(c, textCommandError)
	}
	if !found {
		a.states.Clear(userID)
		return helpers.SendText(c, fmt.Sprintf(tmplOrderNotFoundCode, code))
	}

	a.states.SetTemp(userID, tempTrackingCode, code)
	a.states.SetState(userID, stateSetStatusValue)
	return helpers.SendText(c, fmt.Sprintf(tmplChooseStatus, strings.Join(models.StatusNames(), ", ")))
}

func (a *App) onSetStatusValue(c tele.Context) error {
	if !a.ensureAdmin(c) {
		return nil
	}
	helpers.WithHandler(c, "admin.set_status.value")
	userID := c.Sender().ID

	codeVal, _ := a.states.GetTemp(userID, tempTrackingCode)
	code, _ := codeVal.(string)
	return a.applyStatus(c, code, strings.TrimSpace(c.Text()))
}

func (a *App) applyStatus(c tele.Context, code, rawStatus string) error {
	ctx := helpers.BuildContext(c)
	userID := c.Sender().ID
	a.states.Clear(userID)

	status, err := models.ParseStatus(rawStatus)
	if err != nil {
		return helpers.SendText(c, fmt.Sprintf(tmplInvalidStatus, strings.Join(models.StatusNames(), ", ")))
	}

	order, found, err := a.orders.UpdateStatus(ctx, code, status)
	if err != nil {
		return helpers.SendText(c, textCommandError)
	}
	if !found {
		return helpers.SendText(c, fmt.Sprintf(tmplOrderNotFoundCode, code))
	}
	return helpers.SendText(c, fmt.Sprintf(tmplStatusUpdated, order.TrackingCode, order.Status.Label()))
}

// handleNotifyUser pushes a free-text message to the buyer behind an
// order, prompting for the code and the message text step by step.
func (a *App) handleNotifyUser(c tele.Context) error {
	helpers.WithHandler(c, "admin.notify")

	code := strings.TrimSpace(c.Message().Payload)
	if code != "" {
		return a.prepareNotify(c, code)
	}
	a.states.SetState(c.Sender().ID, stateNotifyCode)
	return helpers.SendText(c, textEnterOrderCode)
}

func (a *App) onNotifyCode(c tele.Context) error {
	if !a.ensureAdmin(c) {
		return nil
	}
	helpers.WithHandler(c, "admin.notify.code")
	return a.prepareNotify(c, strings.TrimSpace(c.Text()))
}

func (a *App) prepareNotify(c tele.Context, code string) error {
	ctx := helpers.BuildContext(c)
	userID := c.Sender().ID

	order, found, err := a.orders.FindByTrackingCode(ctx, code)
	if err != nil {
		a.states.Clear(userID)
		return helpers.SendText(c, textCommandError)
	}
	if !found {
		a.states.Clear(userID)
		return helpers.SendText(c, fmt.Sprintf(tmplOrderNotFoundCode, code))
	}

	a.states.SetTemp(userID, tempNotifyUserID, order.UserID)
	a.states.SetTemp(userID, tempTrackingCode, order.TrackingCode)
	a.states.SetState(userID, stateNotifyMessage)
	return helpers.SendText(c, fmt.Sprintf(tmplNotifyPrompt, order.UserID))
}

func (a *App) onNotifyMessage(c tele.Context) error {
	if !a.ensureAdmin(c) {
		return nil
	}
	helpers.WithHandler(c, "admin.notify.message")
	userID := c.Sender().ID

	targetID, okTarget := a.states.GetTempInt64(userID, tempNotifyUserID)
	codeVal, okCode := a.states.GetTemp(userID, tempTrackingCode)
	code, isString := codeVal.(string)
	a.states.Clear(userID)

	if !okTarget || !okCode || !isString {
		return helpers.SendText(c, textCommandError)
	}

	if err := a.notifier.Push(c, targetID, code, c.Text()); err != nil {
		return helpers.SendText(c, fmt.Sprintf(tmplNotifyFailed, err.Error()))
	}
	return helpers.SendText(c, fmt.Sprintf(tmplNotifySent, targetID))
}
