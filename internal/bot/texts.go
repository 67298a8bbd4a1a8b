package bot

// User-facing texts. Wording is kept stable because buyers and admins
// already rely on it; change with care.
const (
	textWelcome = "Привет! 👋🏻\n\nЯ помогу оформить заказ и отследить его статус."

	textMainMenu = "🏠 Главное меню\n\nВыберите действие:"

	textProductNotFound = "❌ Товар не найден или недоступен. Пожалуйста, выберите другой товар."

	textCommandError = "❌ Ошибка при обработке команды. Пожалуйста, попробуйте позже."

	textOrderCancelled = "❌ Заказ отменен."

	textOrderNoProduct = "❌ Ошибка при оформлении заказа. Товар не найден."

	textOrderCreateError = "❌ Ошибка при оформлении заказа. Пожалуйста, попробуйте позже."

	textEnterTrackingCode = "📦 Введите tracking-код вашего заказа:"

	textOrderNotFoundRetry = "❌ Заказ с таким tracking-кодом не найден. Пожалуйста, проверьте и попробуйте снова.\n\nВы можете вернуться в главное меню."

	textStatusCheckError = "❌ Ошибка при проверке статуса заказа. Пожалуйста, попробуйте позже."

	textOrderNotFoundShort = "❌ Заказ не найден. Пожалуйста попробуйте снова."

	textAccessDenied = "⛔️ Доступ запрещён. Только администраторы могут использовать эту команду."

	textNoOrders = "📦 Нет заказов в системе."

	textEnterOrderCode = "🔍 Введите tracking-код заказа:"

	textAdminHelp = "🛠️ КОМАНДЫ АДМИНИСТРАТОРА\n\n" +
		"📋 Просмотр заказов:\n" +
		"/orders - показать последние 20 заказов\n" +
		"/order_info - получить информацию о заказе\n\n" +
		"✏️ Управление заказами:\n" +
		"/set_status - изменить статус заказа\n" +
		"/notify_user - отправить сообщение пользователю\n\n" +
		"📊 Статусы заказов:\n" +
		"• CREATED - создан\n" +
		"• PAID - оплачен\n" +
		"• IN_TRANSIT - в пути\n" +
		"• DELIVERED - доставлен\n" +
		"• CANCELLED - отменён"
)

// Format templates rendered via fmt.Sprintf.
const (
	tmplProductCard = "🛒 *%s*\n\n%s\n\n💰 Цена: %d UAH\n\nПодтвердите покупку."

	tmplOrderCreated = "✅ Заказ оформлен!\n\n📦 Номер заказа: `%s`\n📍 Статус: %s"

	tmplOrderStatus = "📦 Статус заказа:\n\n🔢 Код: %s\n📍 Статус: %s"

	tmplOrderNotFoundCode = "❌ Заказ с кодом %s не найден."

	tmplChooseStatus = "📋 Выберите новый статус:\n%s"

	tmplInvalidStatus = "❌ Неверный статус. Доступные: %s"

	tmplStatusUpdated = "✅ Статус заказа %s обновлен\nНовый статус: %s"

	tmplNotifyPrompt = "📝 Введите сообщение для пользователя (ID: %d):"

	tmplNotifySent = "✅ Сообщение успешно отправлено пользователю (ID: %d)"

	tmplNotifyFailed = "❌ Ошибка при отправке сообщения:\n%s"

	tmplNotifyBody = "📦 Обновление по вашему заказу\nТрек-код: %s\n\n%s"

	tmplOrderListItem = "%d. 🔑 Трек-код: %s\n   👤 ID пользователя: %d\n   📍 Статус: %s\n   ⏰ Дата: %s\n\n"

	tmplOrderInfo = "🔑 Трек-код: %s\n👤 ID пользователя: %d\n🏷️ ID товара: %s\n📍 Статус: %s\n⏰ Дата создания: %s\n"
)
