package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productImageRepository implements the domain.ProductImageRepository interface.
type productImageRepository struct {
	db *gorm.DB
}

// NewProductImageRepository is the constructor for productImageRepository.
func NewProductImageRepository(db *gorm.DB) repository.ProductImageRepository {
	return &productImageRepository{db: db}
}

// FindByID retrieves an image record by id.
func (repo *productImageRepository) FindByID(ctx context.Context, id int64) (*entity.ProductImage, error) {
	var imageM model.ProductImageModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find product image by ID")
	}

	return toProductImageDomain(&imageM), nil
}

// Update saves every field of the image record.
func (repo *productImageRepository) Update(ctx context.Context, image *entity.ProductImage) error {
	imageM := fromProductImageDomain(image)

	if err := repo.db.WithContext(ctx).Save(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product image")
	}

	return nil
}

// ClearPrimary unsets is_primary on the sibling images of a product.
func (repo *productImageRepository) ClearPrimary(ctx context.Context, productID, exceptID int64) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProductImageModel{}).
		Where("product_id = ? AND id <> ? AND is_primary", productID, exceptID).
		Update("is_primary", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear primary image")
	}

	return nil
}

// --- Mapper Functions ---

func toProductImageDomain(data *model.ProductImageModel) *entity.ProductImage {
	if data == nil {
		return nil
	}

	return &entity.ProductImage{
		ID:        data.ID,
		ProductID: data.ProductID,
		ImageKey:  data.ImageKey,
		AltText:   data.AltText,
		Caption:   data.Caption,
		IsPrimary: data.IsPrimary,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
	}
}

func fromProductImageDomain(data *entity.ProductImage) *model.ProductImageModel {
	if data == nil {
		return nil
	}

	return &model.ProductImageModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		ImageKey:  data.ImageKey,
		AltText:   data.AltText,
		Caption:   data.Caption,
		IsPrimary: data.IsPrimary,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
	}
}
