package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrSettingNotFound is returned when a settings key has no value.
var ErrSettingNotFound = errors.New("setting not found")

// SettingsRepository is the key/value settings store.
type SettingsRepository interface {
	// Get returns a single setting.
	Get(ctx context.Context, key string) (*entity.Setting, error)

	// GetMany returns the values of the keys that exist.
	GetMany(ctx context.Context, keys []string) (map[string]string, error)

	// Set inserts or replaces a setting.
	Set(ctx context.Context, setting *entity.Setting) error
}
