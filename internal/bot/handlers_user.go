package bot

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"
	"log/slog"

	"github.com/nlklfor/tgBot-metallurg/core/logger"
	"github.com/nlklfor/tgBot-metallurg/core/telegram/callbacks"
	"github.com/nlklfor/tgBot-metallurg/core/telegram/helpers"
)

// handleStart shows the main menu, or a product card when a product id
// is passed as the deep-link payload.
func (a *App) handleStart(c tele.Context) error {
	ctx := helpers.WithHandler(c, "start")
	userID := c.Sender().ID
	a.states.Clear(userID)

	productID := strings.TrimSpace(c.Message().Payload)
	if productID == "" {
		return helpers.SendText(c, textWelcome, &tele.SendOptions{ReplyMarkup: startMenuKeyboard()})
	}

	product, found, err := a.products.FindByID(ctx, productID)
	if err != nil {
		logger.SVCProducts.Error("product lookup failed",
			slog.String("event", "product.find"),
			slog.String("product_id", productID),
			slog.String("err", err.Error()),
		)
		return helpers.SendText(c, textCommandError)
	}
	if !found || !product.IsActive {
		return helpers.SendText(c, textProductNotFound)
	}

	a.states.SetTemp(userID, tempProductID, product.ID)
	a.states.SetState(userID, stateConfirmOrder)

	description := ""
	if product.Description != nil {
		description = *product.Description
	}
	card := fmt.Sprintf(tmplProductCard, product.Title, description, product.Price)
	return helpers.SendMD(c, card, confirmOrderKeyboard())
}

// handleStatus starts the tracking-code prompt flow.
func (a *App) handleStatus(c tele.Context) error {
	helpers.WithHandler(c, "status")
	a.states.SetState(c.Sender().ID, stateStatusCode)
	return helpers.SendText(c, textEnterTrackingCode)
}

// onStatusCode resolves the tracking code typed by the user.
func (a *App) onStatusCode(c tele.Context) error {
	ctx := helpers.WithHandler(c, "status.code")
	userID := c.Sender().ID
	code := strings.TrimSpace(c.Text())

	order, found, err := a.orders.FindByTrackingCode(ctx, code)
	if err != nil {
		a.states.Clear(userID)
		return helpers.SendText(c, textStatusCheckError)
	}
	if !found {
		a.states.Clear(userID)
		return helpers.SendText(c, textOrderNotFoundRetry, &tele.SendOptions{ReplyMarkup: backToStartKeyboard()})
	}

	a.states.Clear(userID)
	reply := fmt.Sprintf(tmplOrderStatus, order.TrackingCode, order.Status.Label())
	return helpers.SendText(c, reply, &tele.SendOptions{ReplyMarkup: backToStartKeyboard()})
}

// onConfirmOrder creates the order for the product stored in the session.
func (a *App) onConfirmOrder(c tele.Context) error {
	ctx := helpers.WithHandler(c, "order.confirm")
	userID := c.Sender().ID

	productID, ok := a.states.GetTemp(userID, tempProductID)
	pid, isString := productID.(string)
	if !ok || !isString || pid == "" {
		a.states.Clear(userID)
		return helpers.SendText(c, textOrderNoProduct)
	}

	order, err := a.orders.Create(ctx, userID, pid, "")
	if err != nil {
		a.states.Clear(userID)
		return helpers.SendText(c, textOrderCreateError)
	}

	a.states.Clear(userID)
	reply := fmt.Sprintf(tmplOrderCreated, order.TrackingCode, order.Status.Label())
	return helpers.EditOrSendMD(c, reply, checkStatusKeyboard(order.TrackingCode))
}

// onCancelOrder aborts the pending purchase.
func (a *App) onCancelOrder(c tele.Context) error {
	helpers.WithHandler(c, "order.cancel")
	a.states.Clear(c.Sender().ID)
	return c.EditOrSend(textOrderCancelled)
}

// onGoStart returns the user to the main menu.
func (a *App) onGoStart(c tele.Context) error {
	helpers.WithHandler(c, "go_start")
	a.states.Clear(c.Sender().ID)
	return helpers.SendText(c, textMainMenu, &tele.SendOptions{ReplyMarkup: startMenuKeyboard()})
}

// onStartCheckStatus begins the status flow from the menu button.
func (a *App) onStartCheckStatus(c tele.Context) error {
	helpers.WithHandler(c, "status.start")
	a.states.SetState(c.Sender().ID, stateStatusCode)
	return helpers.SendText(c, textEnterTrackingCode)
}

// onCheckStatus resolves the tracking code carried in the callback payload.
func (a *App) onCheckStatus(c tele.Context) error {
	ctx := helpers.WithHandler(c, "status.inline")
	code := strings.TrimSpace(callbacks.CallbackPayload(c))

	order, found, err := a.orders.FindByTrackingCode(ctx, code)
	if err != nil {
		return helpers.SendText(c, textStatusCheckError)
	}
	if !found {
		return helpers.SendText(c, textOrderNotFoundShort, &tele.SendOptions{ReplyMarkup: backToStartKeyboard()})
	}

	reply := fmt.Sprintf(tmplOrderStatus, order.TrackingCode, order.Status.Label())
	return helpers.SendText(c, reply, &tele.SendOptions{ReplyMarkup: backToStartKeyboard()})
}
