package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settingsServiceFixtures struct {
	*txFixture
	service usecase.SettingsUsecase
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	tx := newTxFixture(t)

	return settingsServiceFixtures{
		txFixture: tx,
		service: NewSettingsService(SettingsServiceParams{
			TxManager:    tx.txManager,
			SettingsRepo: tx.settingsRepo,
			Config:       newTestConfig(),
			Logger:       newDiscardLogger(),
		}),
	}
}

func TestSettingsService_GetShippingSettings(t *testing.T) {
	tests := []struct {
		name          string
		stored        map[string]string
		wantCost      int64
		wantThreshold int64
	}{
		{name: "defaults when unset", stored: map[string]string{}, wantCost: 70000, wantThreshold: 500000},
		{
			name:          "stored values win",
			stored:        map[string]string{constants.SettingShippingCost: "45000", constants.SettingFreeShippingThreshold: "300000"},
			wantCost:      45000,
			wantThreshold: 300000,
		},
		{
			name:          "partial override",
			stored:        map[string]string{constants.SettingShippingCost: "0"},
			wantCost:      0,
			wantThreshold: 500000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSettingsService(t)
			ctx := context.Background()
			fx.settingsRepo.EXPECT().GetMany(ctx, shippingKeys).Return(tt.stored, nil)

			settings, err := fx.service.GetShippingSettings(ctx)
			require.NoError(t, err)
			assert.True(t, amount(tt.wantCost).Equal(settings.ShippingCost))
			assert.True(t, amount(tt.wantThreshold).Equal(settings.FreeShippingThreshold))
		})
	}
}

func TestSettingsService_GetShippingSettings_CorruptValue(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	fx.settingsRepo.EXPECT().GetMany(ctx, shippingKeys).Return(map[string]string{constants.SettingShippingCost: "abc"}, nil)

	_, err := fx.service.GetShippingSettings(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestSettingsService_UpdateShippingSettings(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()

	fx.expectTx(ctx)
	fx.settingsRepo.EXPECT().
		Set(ctx, mock.MatchedBy(func(s *entity.Setting) bool {
			return s.Key == constants.SettingShippingCost && s.Value == "80000"
		})).
		Return(nil)
	fx.settingsRepo.EXPECT().
		Set(ctx, mock.MatchedBy(func(s *entity.Setting) bool {
			return s.Key == constants.SettingFreeShippingThreshold && s.Value == "600000"
		})).
		Return(nil)

	updated, err := fx.service.UpdateShippingSettings(ctx, &entity.ShippingSettings{
		ShippingCost:          amount(80000),
		FreeShippingThreshold: amount(600000),
	})
	require.NoError(t, err)
	assert.True(t, amount(80000).Equal(updated.ShippingCost))
}

func TestSettingsService_UpdateShippingSettings_RejectsNegative(t *testing.T) {
	fx := createTestSettingsService(t)

	_, err := fx.service.UpdateShippingSettings(context.Background(), &entity.ShippingSettings{
		ShippingCost:          amount(-1),
		FreeShippingThreshold: amount(100),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
