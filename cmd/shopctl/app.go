package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/service"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/metrics"
	"storefront/internal/infra/payment"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// app is the dependency set every subcommand draws from.
type app struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DB         *gorm.DB
	OrderUC    usecase.OrderUsecase
	ProductUC  usecase.ProductUsecase
	SettingsUC usecase.SettingsUsecase
	Gateway    service.PaymentGateway
}

func (a *app) commands() *commands {
	return &commands{
		cfg:        a.Config,
		orderUC:    a.OrderUC,
		productUC:  a.ProductUC,
		settingsUC: a.SettingsUC,
		gateway:    a.Gateway,
		out:        os.Stdout,
	}
}

// withApp starts the same providers the API uses, runs fn, then stops them.
func withApp(ctx context.Context, fn func(a *app) error) error {
	var deps app

	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			postgres.New,
			postgres.NewOrderRepository,
			postgres.NewProductRepository,
			postgres.NewProductImageRepository,
			postgres.NewSettingsRepository,
			postgres.NewTransactionManager,
			metrics.NewRecorder,
			func(r *metrics.Recorder) service.OperationMetrics { return r },
			payment.NewPaymentGateway,
			storage.NewImageStorage,
			impl.NewOrderService,
			impl.NewProductService,
			impl.NewSettingsService,
		),
		pubsub.Module,
		fx.Invoke(func(d app) { deps = d }),
	)

	if err := fxApp.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() { _ = fxApp.Stop(context.Background()) }()

	return fn(&deps)
}

func runMigrate(a *app, direction string, steps int) error {
	switch direction {
	case "up":
		return postgres.Migrate(a.DB, a.Logger)
	case "down":
		if steps <= 0 {
			return errors.New("--steps must be positive")
		}

		return postgres.MigrateDown(a.DB, steps)
	default:
		return errors.Errorf("unknown direction %q", direction)
	}
}
