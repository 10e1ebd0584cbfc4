package impl

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// shippingPolicy reads the shipping settings on every call so admin changes apply immediately.
type shippingPolicy struct {
	settingsRepo repository.SettingsRepository
	defaults     entity.ShippingSettings
}

func newShippingPolicy(settingsRepo repository.SettingsRepository, cfg *config.Config) *shippingPolicy {
	policy := &shippingPolicy{settingsRepo: settingsRepo}
	if cfg != nil {
		policy.defaults = entity.ShippingSettings{
			ShippingCost:          decimal.NewFromInt(cfg.Checkout.DefaultShippingCost),
			FreeShippingThreshold: decimal.NewFromInt(cfg.Checkout.DefaultFreeShippingThreshold),
		}
	}

	return policy
}

func (p *shippingPolicy) load(ctx context.Context) (entity.ShippingSettings, error) {
	values, err := p.settingsRepo.GetMany(ctx, []string{
		constants.SettingShippingCost,
		constants.SettingFreeShippingThreshold,
	})
	if err != nil {
		return entity.ShippingSettings{}, errors.Wrap(err, "failed to load shipping settings")
	}

	settings := p.defaults
	if raw, ok := values[constants.SettingShippingCost]; ok {
		if settings.ShippingCost, err = parseAmount(constants.SettingShippingCost, raw); err != nil {
			return entity.ShippingSettings{}, err
		}
	}
	if raw, ok := values[constants.SettingFreeShippingThreshold]; ok {
		if settings.FreeShippingThreshold, err = parseAmount(constants.SettingFreeShippingThreshold, raw); err != nil {
			return entity.ShippingSettings{}, err
		}
	}

	return settings, nil
}

func parseAmount(key, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, domainerrors.ErrInternalError.WrapMessage("invalid setting value for " + key)
	}

	return amount, nil
}
