package handler

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// orderView is the JSON form of an order. The payment authority stays internal.
type orderView struct {
	ID              int64                  `json:"id"`
	Status          entity.OrderStatus     `json:"status"`
	ContactEmail    string                 `json:"contact_email,omitempty"`
	SubtotalAmount  decimal.Decimal        `json:"subtotal_amount"`
	ShippingAmount  decimal.Decimal        `json:"shipping_amount"`
	TotalAmount     decimal.Decimal        `json:"total_amount"`
	ItemCount       int                    `json:"item_count"`
	ShippingAddress entity.ShippingAddress `json:"shipping_address"`
	PaymentRefID    string                 `json:"payment_ref_id,omitempty"`
	PaidAt          *time.Time             `json:"paid_at,omitempty"`
	Items           []orderItemView        `json:"items,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

type orderItemView struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

func newOrderView(o *entity.Order) orderView {
	items := make([]orderItemView, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemView{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return orderView{
		ID:              o.ID,
		Status:          o.Status,
		ContactEmail:    o.ContactEmail,
		SubtotalAmount:  o.SubtotalAmount,
		ShippingAmount:  o.ShippingAmount,
		TotalAmount:     o.TotalAmount,
		ItemCount:       o.ItemCount(),
		ShippingAddress: o.ShippingAddress,
		PaymentRefID:    o.PaymentRefID,
		PaidAt:          o.PaidAt,
		Items:           items,
		CreatedAt:       o.CreatedAt,
	}
}

func newOrderViews(orders []*entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}

	return views
}

// productView is the JSON form of a product.
type productView struct {
	ID                 int64                `json:"id"`
	Name               string               `json:"name"`
	Slug               string               `json:"slug"`
	Price              decimal.Decimal      `json:"price"`
	OriginalPrice      *decimal.Decimal     `json:"original_price,omitempty"`
	DiscountPercentage int                  `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal      `json:"discount_amount"`
	HasDiscount        bool                 `json:"has_discount"`
	StockQuantity      int                  `json:"stock_quantity"`
	StockStatus        entity.StockStatus   `json:"stock_status,omitempty"`
	Status             entity.ProductStatus `json:"status"`
}

func newProductView(p *entity.Product) productView {
	view := productView{
		ID:                 p.ID,
		Name:               p.Name,
		Slug:               p.Slug,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		DiscountAmount:     p.DiscountAmount,
		HasDiscount:        p.HasDiscount,
		StockQuantity:      p.StockQuantity,
		Status:             p.Status,
	}
	if p.OriginalPrice.Valid {
		original := p.OriginalPrice.Decimal
		view.OriginalPrice = &original
	}

	return view
}

// imageView is the JSON form of a product image.
type imageView struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	URL       string `json:"url"`
	AltText   string `json:"alt_text,omitempty"`
	Caption   string `json:"caption,omitempty"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}
