package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/nlklfor/tgBot-metallurg/core/telegram/keyboard"
)

// Callback uniques shared between keyboards and registry wiring.
const (
	cbConfirmOrder     = "confirm_order"
	cbCancelOrder      = "cancel_order"
	cbGoStart          = "go_start"
	cbStartCheckStatus = "start_check_status"
	cbCheckStatus      = "check_status"
)

func startMenuKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "📦 Проверить статус заказа", Unique: cbStartCheckStatus},
	})
}

func confirmOrderKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "✅ Купить", Unique: cbConfirmOrder},
		{Text: "❌ Отменить", Unique: cbCancelOrder},
	})
}

func checkStatusKeyboard(trackingCode string) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "📦 Проверить статус заказа", Unique: cbCheckStatus, Data: trackingCode},
	})
}

func backToStartKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "🏠 В главное меню", Unique: cbGoStart},
	})
}
