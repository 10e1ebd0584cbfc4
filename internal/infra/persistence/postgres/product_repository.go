package postgres

import (
	"context"
	"slices"
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

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a product by id.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDsForUpdate loads the products with SELECT ... FOR UPDATE ordered by id,
// so concurrent checkouts over overlapping carts always lock in the same order.
func (repo *productRepository) FindByIDsForUpdate(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var productModels []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id IN ?", sorted).
		Order("id ASC").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// DecrementStock runs a guarded UPDATE so stock can never go negative.
func (repo *productRepository) DecrementStock(ctx context.Context, id int64, quantity int) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock_quantity >= ?", id, quantity).
		Updates(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity - ?", quantity),
			"updated_at":     gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return false, nil
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}

	return result.RowsAffected == 1, nil
}

// IncrementStock returns units to stock.
func (repo *productRepository) IncrementStock(ctx context.Context, id int64, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity + ?", quantity),
			"updated_at":     gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SetStock overwrites the stock quantity.
func (repo *productRepository) SetStock(ctx context.Context, id int64, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("stock_quantity", quantity)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("stock quantity cannot be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// UpdatePricing persists the price fields of a product.
func (repo *productRepository) UpdatePricing(ctx context.Context, product *entity.Product) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"price":               product.Price,
			"original_price":      product.OriginalPrice,
			"discount_percentage": product.DiscountPercentage,
			"discount_amount":     product.DiscountAmount,
			"has_discount":        product.HasDiscount,
			"updated_at":          now,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidDiscount.WrapMessage("price fields violate a constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product pricing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:                 data.ID,
		Name:               data.Name,
		Slug:               data.Slug,
		Price:              data.Price,
		OriginalPrice:      data.OriginalPrice,
		DiscountPercentage: data.DiscountPercentage,
		DiscountAmount:     data.DiscountAmount,
		HasDiscount:        data.HasDiscount,
		StockQuantity:      data.StockQuantity,
		MinStockAlert:      data.MinStockAlert,
		Status:             entity.ProductStatus(data.Status),
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                 data.ID,
		Name:               data.Name,
		Slug:               data.Slug,
		Price:              data.Price,
		OriginalPrice:      data.OriginalPrice,
		DiscountPercentage: data.DiscountPercentage,
		DiscountAmount:     data.DiscountAmount,
		HasDiscount:        data.HasDiscount,
		StockQuantity:      data.StockQuantity,
		MinStockAlert:      data.MinStockAlert,
		Status:             string(data.Status),
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
