package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order together with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("order references an unknown product")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("order item quantity must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		if i < len(order.Items) {
			order.Items[i].ID = itemM.ID
			order.Items[i].OrderID = itemM.OrderID
		}
	}

	return nil
}

// FindByID retrieves an order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	return repo.first(ctx, "failed to find order by ID", "id = ?", id)
}

// FindByIDForUser retrieves an order only when it belongs to userID.
func (repo *orderRepository) FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Order, error) {
	return repo.first(ctx, "failed to find order for user", "id = ? AND user_id = ?", id, userID)
}

// FindByAuthority retrieves the order holding the payment authority.
func (repo *orderRepository) FindByAuthority(ctx context.Context, authority string) (*entity.Order, error) {
	return repo.first(ctx, "failed to find order by authority", "payment_authority = ?", authority)
}

func (repo *orderRepository) first(ctx context.Context, errMsg string, query string, args ...any) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where(query, args...).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, errMsg)
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns the user's orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// ListPendingBefore returns stale pending orders with their items.
func (repo *orderRepository) ListPendingBefore(ctx context.Context, before time.Time) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("status = ? AND created_at < ?", entity.OrderStatusPending.String(), before).
		Order("created_at ASC, id ASC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stale pending orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// SetPaymentAuthority stores the gateway authority while the order is pending.
func (repo *orderRepository) SetPaymentAuthority(ctx context.Context, id int64, authority string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, entity.OrderStatusPending.String()).
		Updates(map[string]any{
			"payment_authority": authority,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return false, domainerrors.ErrPaymentRequestRejected.WrapMessage("payment authority already in use")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to set payment authority")
	}

	return result.RowsAffected == 1, nil
}

// MarkPaid settles a pending order exactly once.
func (repo *orderRepository) MarkPaid(ctx context.Context, id int64, refID string, paidAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, entity.OrderStatusPending.String()).
		Updates(map[string]any{
			"status":         entity.OrderStatusPaid.String(),
			"payment_ref_id": refID,
			"paid_at":        paidAt,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark order paid")
	}

	return result.RowsAffected == 1, nil
}

// TransitionStatus performs a compare-and-set on the order status.
func (repo *orderRepository) TransitionStatus(ctx context.Context, id int64, from, to entity.OrderStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Updates(map[string]any{
			"status":     to.String(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to transition order status")
	}

	return result.RowsAffected == 1, nil
}

type pendingQuantityRow struct {
	ProductID int64
	Quantity  int
}

// PendingQuantities sums item quantities of pending orders per product.
func (repo *orderRepository) PendingQuantities(ctx context.Context) (map[int64]int, error) {
	var rows []pendingQuantityRow
	err := repo.db.WithContext(ctx).
		Table("order_items AS oi").
		Select("oi.product_id AS product_id, SUM(oi.quantity) AS quantity").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.status = ?", entity.OrderStatusPending.String()).
		Group("oi.product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum pending quantities")
	}

	quantities := make(map[int64]int, len(rows))
	for _, row := range rows {
		quantities[row.ProductID] = row.Quantity
	}

	return quantities, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:             data.ID,
		UserID:         data.UserID,
		ContactEmail:   data.ContactEmail,
		Status:         entity.OrderStatus(data.Status),
		SubtotalAmount: data.SubtotalAmount,
		ShippingAmount: data.ShippingAmount,
		TotalAmount:    data.TotalAmount,
		ShippingAddress: entity.ShippingAddress{
			ReceiverName:  data.ReceiverName,
			ReceiverPhone: data.ReceiverPhone,
			ProvinceName:  data.ProvinceName,
			CityName:      data.CityName,
			AddressDetail: data.AddressDetail,
			PostalCode:    data.PostalCode,
		},
		PaidAt:    data.PaidAt,
		Items:     make([]*entity.OrderItem, 0, len(data.Items)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.PaymentAuthority != nil {
		order.PaymentAuthority = *data.PaymentAuthority
	}
	if data.PaymentRefID != nil {
		order.PaymentRefID = *data.PaymentRefID
	}

	for i := range data.Items {
		itemM := &data.Items[i]
		order.Items = append(order.Items, &entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			Quantity:    itemM.Quantity,
			UnitPrice:   itemM.UnitPrice,
			TotalPrice:  itemM.TotalPrice,
		})
	}

	return order
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:               data.ID,
		UserID:           data.UserID,
		ContactEmail:     data.ContactEmail,
		Status:           data.Status.String(),
		SubtotalAmount:   data.SubtotalAmount,
		ShippingAmount:   data.ShippingAmount,
		TotalAmount:      data.TotalAmount,
		ReceiverName:     data.ShippingAddress.ReceiverName,
		ReceiverPhone:    data.ShippingAddress.ReceiverPhone,
		ProvinceName:     data.ShippingAddress.ProvinceName,
		CityName:         data.ShippingAddress.CityName,
		AddressDetail:    data.ShippingAddress.AddressDetail,
		PostalCode:       data.ShippingAddress.PostalCode,
		PaymentAuthority: nullableString(data.PaymentAuthority),
		PaymentRefID:     nullableString(data.PaymentRefID),
		PaidAt:           data.PaidAt,
		Items:            make([]model.OrderItemModel, 0, len(data.Items)),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return orderM
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
