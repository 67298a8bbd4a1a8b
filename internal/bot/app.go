// Package bot wires the store bot: configuration, storage, conversation
// state, and all command/callback handlers.
package bot

import (
	"context"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	"github.com/nlklfor/tgBot-metallurg/core/bootstrap"
	coredatabase "github.com/nlklfor/tgBot-metallurg/core/database"
	tg "github.com/nlklfor/tgBot-metallurg/core/telegram"
	"github.com/nlklfor/tgBot-metallurg/core/telegram/commands"
	"github.com/nlklfor/tgBot-metallurg/core/telegram/helpers"
	"github.com/nlklfor/tgBot-metallurg/core/telegram/middleware"
	"github.com/nlklfor/tgBot-metallurg/core/telegram/router"
	"github.com/nlklfor/tgBot-metallurg/core/telegram/state"
	"github.com/nlklfor/tgBot-metallurg/internal/repository"
	"github.com/nlklfor/tgBot-metallurg/internal/seed"
	"github.com/nlklfor/tgBot-metallurg/migrations"
)

// App holds the assembled bot: configuration, repositories, conversation
// state, and the command/callback registry.
type App struct {
	cfg      *Config
	db       *sqlx.DB
	states   state.Manager
	registry *tg.Registry
	orders   *repository.OrderRepository
	products *repository.ProductRepository
	notifier *Notifier
}

// Bootstrap initializes infrastructure (logger, database, migrations,
// seed data) and assembles the application.
func Bootstrap(ctx context.Context, cfg *Config) (*App, error) {
	res, err := bootstrap.Run(ctx, bootstrap.Options{
		Config:   &cfg.Core,
		Database: cfg.Database,
		Migrate: func(db *sqlx.DB) error {
			return coredatabase.RunMigrations(db, migrations.FS)
		},
		Seeders: []bootstrap.Seeder{seed.Demo()},
	})
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:      cfg,
		db:       res.DB,
		states:   state.NewMemoryManager(),
		registry: tg.NewRegistry(),
		orders:   repository.NewOrderRepository(res.DB),
		products: repository.NewProductRepository(res.DB),
		notifier: NewNotifier(),
	}
	app.registerCommands()
	app.registerCallbacks()
	app.registerStates()
	return app, nil
}

// TelegramRunOptions builds the runtime options consumed by the core runner.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	core := &a.cfg.Core

	routes := router.CommandRoutes(a.registry, router.CommandRouteOptions{
		AdminIDs: core.Telegram.AdminIDs,
		OnAdminReject: func(c tele.Context) error {
			return helpers.SendText(c, textAccessDenied)
		},
	})
	routes = append(routes, router.TextRoutes(a.states, a.registry, router.TextOptions{})...)
	routes = append(routes, router.CallbackRoute(a.registry, router.CallbackOptions{}))

	mws := tg.DefaultMiddlewares(core, nil)
	mws = append(mws, tg.Middleware{Name: "session", Use: state.WithSession(a.states)})

	return tg.RunOptions{
		Config:      core,
		Registry:    a.registry,
		Middlewares: mws,
		Routes:      routes,
		OnStop: func(ctx context.Context, rt tg.Runtime) error {
			return a.db.Close()
		},
	}, nil
}

func (a *App) registerCommands() {
	a.registry.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Главное меню и просмотр товара",
	})
	a.registry.RegisterCommand("/status", commands.Command{
		Handler:     a.handleStatus,
		Description: "Проверить статус заказа",
	})
	a.registry.RegisterCommand("/admin_help", commands.Command{
		Handler:     a.handleAdminHelp,
		Description: "Команды администратора",
		AdminOnly:   true,
		Hidden:      true,
	})
	a.registry.RegisterCommand("/orders", commands.Command{
		Handler:     a.handleOrders,
		Description: "Последние 20 заказов",
		AdminOnly:   true,
		Hidden:      true,
	})
	a.registry.RegisterCommand("/order_info", commands.Command{
		Handler:     a.handleOrderInfo,
		Description: "Информация о заказе",
		AdminOnly:   true,
		Hidden:      true,
	})
	a.registry.RegisterCommand("/set_status", commands.Command{
		Handler:     a.handleSetStatus,
		Description: "Изменить статус заказа",
		AdminOnly:   true,
		Hidden:      true,
	})
	a.registry.RegisterCommand("/notify_user", commands.Command{
		Handler:     a.handleNotifyUser,
		Description: "Отправить сообщение покупателю",
		AdminOnly:   true,
		Hidden:      true,
	})
}

func (a *App) registerCallbacks() {
	// Confirmation is only meaningful while a product card is open; the
	// state guard drops stale confirm presses the same way the purchase
	// flow always has.
	confirmGuard := middleware.State(func(userID int64) string {
		return string(a.states.GetState(userID))
	}, string(stateConfirmOrder))

	_ = a.registry.RegisterCallback(cbConfirmOrder, confirmGuard(a.onConfirmOrder))
	_ = a.registry.RegisterCallback(cbCancelOrder, a.onCancelOrder)
	_ = a.registry.RegisterCallback(cbGoStart, a.onGoStart)
	_ = a.registry.RegisterCallback(cbStartCheckStatus, a.onStartCheckStatus)
	_ = a.registry.RegisterCallback(cbCheckStatus, a.onCheckStatus)
}
