package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// settingsRepository implements the domain.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns a single setting.
func (repo *settingsRepository) Get(ctx context.Context, key string) (*entity.Setting, error) {
	var settingM model.SettingModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("key = ?", key).
		First(&settingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrapf(err, "failed to get setting %q", key)
	}

	return &entity.Setting{
		Key:         settingM.Key,
		Value:       settingM.Value,
		Description: settingM.Description,
	}, nil
}

// GetMany reads the keys in one query. Absent keys are left out of the map.
func (repo *settingsRepository) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return values, nil
	}

	var settingModels []*model.SettingModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("key IN ?", keys).
		Find(&settingModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to get settings")
	}

	for _, settingM := range settingModels {
		values[settingM.Key] = settingM.Value
	}

	return values, nil
}

// Set upserts a setting by key.
func (repo *settingsRepository) Set(ctx context.Context, setting *entity.Setting) error {
	settingM := &model.SettingModel{
		Key:         setting.Key,
		Value:       setting.Value,
		Description: setting.Description,
		UpdatedAt:   time.Now(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
		}).
		Create(settingM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save setting")
	}

	return nil
}
