package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SettingsUsecase reads and writes the shipping policy.
type SettingsUsecase interface {
	// GetShippingSettings reads the current policy, falling back to configured defaults.
	GetShippingSettings(ctx context.Context) (*entity.ShippingSettings, error)

	// UpdateShippingSettings stores a new policy. It takes effect on the next checkout.
	UpdateShippingSettings(ctx context.Context, settings *entity.ShippingSettings) (*entity.ShippingSettings, error)
}
