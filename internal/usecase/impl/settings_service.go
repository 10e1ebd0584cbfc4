package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settingsService struct {
	txManager repository.TransactionManager
	shipping  *shippingPolicy
	logger    *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SettingsRepo repository.SettingsRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		txManager: params.TxManager,
		shipping:  newShippingPolicy(params.SettingsRepo, params.Config),
		logger:    params.Logger,
	}
}

// GetShippingSettings reads the stored policy.
func (srv *settingsService) GetShippingSettings(ctx context.Context) (*entity.ShippingSettings, error) {
	settings, err := srv.shipping.load(ctx)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// UpdateShippingSettings writes both keys in one transaction.
func (srv *settingsService) UpdateShippingSettings(ctx context.Context, settings *entity.ShippingSettings) (*entity.ShippingSettings, error) {
	if settings == nil || settings.ShippingCost.IsNegative() || settings.FreeShippingThreshold.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("shipping amounts must not be negative")
	}

	updated := entity.ShippingSettings{
		ShippingCost:          settings.ShippingCost.Round(0),
		FreeShippingThreshold: settings.FreeShippingThreshold.Round(0),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		settingsRepo := repoFactory.SettingsRepo()

		if err := settingsRepo.Set(ctx, &entity.Setting{
			Key:         constants.SettingShippingCost,
			Value:       updated.ShippingCost.String(),
			Description: "Flat shipping cost",
		}); err != nil {
			return errors.Wrap(err, "failed to store shipping cost")
		}

		if err := settingsRepo.Set(ctx, &entity.Setting{
			Key:         constants.SettingFreeShippingThreshold,
			Value:       updated.FreeShippingThreshold.String(),
			Description: "Subtotal at or above which shipping is free",
		}); err != nil {
			return errors.Wrap(err, "failed to store free shipping threshold")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Shipping settings updated",
		slog.String("shippingCost", updated.ShippingCost.String()),
		slog.String("freeShippingThreshold", updated.FreeShippingThreshold.String()),
	)

	return &updated, nil
}
