package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/order-tracker/docs"
	"github.com/SergeyBogomolovv/order-tracker/internal/app"
	"github.com/SergeyBogomolovv/order-tracker/internal/config"
	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
	"github.com/SergeyBogomolovv/order-tracker/internal/handler"
	"github.com/SergeyBogomolovv/order-tracker/internal/postgres"
	"github.com/SergeyBogomolovv/order-tracker/internal/repo"
	"github.com/SergeyBogomolovv/order-tracker/internal/service"
	"github.com/SergeyBogomolovv/order-tracker/pkg/cache"
	"github.com/SergeyBogomolovv/order-tracker/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Order Tracker API
// @version         1.0
// @description     Учёт заказов: клиенты, товары, статусы доставки, оплаты и счёта
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Postgres.Migrate {
		version, err := postgres.Migrate(db)
		panicIfErr("failed to migrate db", err)
		logger.Info("migrations applied", slog.Uint64("version", uint64(version)))
	}

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache[int64, entities.Order](conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, txManager, pgRepo, pgRepo, pgRepo, orderCache)
	customerService := service.NewCustomerService(logger, pgRepo, orderCache)
	productService := service.NewProductService(pgRepo)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, orderService, customerService, productService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
