package impl

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	*txFixture
	service      usecase.ProductUsecase
	readProducts *mockRepo.MockProductRepository
	readImages   *mockRepo.MockProductImageRepository
	readOrders   *mockRepo.MockOrderRepository
	imageStorage *mockService.MockImageStorage
}

func createTestProductService(t *testing.T) productServiceFixtures {
	tx := newTxFixture(t)
	readProducts := mockRepo.NewMockProductRepository(t)
	readImages := mockRepo.NewMockProductImageRepository(t)
	readOrders := mockRepo.NewMockOrderRepository(t)
	imageStorage := mockService.NewMockImageStorage(t)

	return productServiceFixtures{
		txFixture: tx,
		service: NewProductService(ProductServiceParams{
			TxManager:    tx.txManager,
			ProductRepo:  readProducts,
			ImageRepo:    readImages,
			OrderRepo:    readOrders,
			ImageStorage: imageStorage,
			Logger:       newDiscardLogger(),
		}),
		readProducts: readProducts,
		readImages:   readImages,
		readOrders:   readOrders,
		imageStorage: imageStorage,
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))

	return buf.Bytes()
}

func TestProductService_GetProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := activeProduct(4, "Mug", 75000, 3)
	product.MinStockAlert = 5
	product.OriginalPrice = decimal.NewNullDecimal(amount(100000))
	fx.readProducts.EXPECT().FindByID(ctx, int64(4)).Return(product, nil)

	detail, err := fx.service.GetProduct(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusLowStock, detail.StockStatus)
	assert.Equal(t, 25, detail.DiscountPercentage)
}

func TestProductService_GetProduct_HidesInactive(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	inactive := activeProduct(4, "Mug", 75000, 3)
	inactive.IsActive = false
	fx.readProducts.EXPECT().FindByID(ctx, int64(4)).Return(inactive, nil)
	fx.readProducts.EXPECT().FindByID(ctx, int64(5)).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, 4)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	_, err = fx.service.GetProduct(ctx, 5)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_UpdateProductPricing(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.expectTx(ctx)
	fx.productRepo.EXPECT().FindByID(ctx, int64(4)).Return(activeProduct(4, "Mug", 100000, 3), nil)
	fx.productRepo.EXPECT().
		UpdatePricing(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Price.Equal(amount(80000)) && p.HasDiscount && p.DiscountPercentage == 20
		})).
		Return(nil)

	product, err := fx.service.UpdateProductPricing(ctx, 4, pricing.PriceInput{
		Price:              amount(100000),
		DiscountPercentage: 20,
	})
	require.NoError(t, err)
	assert.True(t, amount(100000).Equal(product.OriginalPrice.Decimal))
}

func TestProductService_UpdateProductPricing_InvalidDiscount(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.UpdateProductPricing(context.Background(), 4, pricing.PriceInput{
		Price:              amount(100000),
		DiscountPercentage: 120,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDiscount)
}

func TestProductService_SetProductStock(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.expectTx(ctx)
	fx.productRepo.EXPECT().SetStock(ctx, int64(4), 12).Return(nil)
	fx.productRepo.EXPECT().FindByID(ctx, int64(4)).Return(activeProduct(4, "Mug", 100000, 12), nil)

	product, err := fx.service.SetProductStock(ctx, 4, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, product.StockQuantity)

	_, err = fx.service.SetProductStock(ctx, 4, -1)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_SetProductStock_UnknownProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.expectTx(ctx)
	fx.productRepo.EXPECT().SetStock(ctx, int64(99), 1).Return(repository.ErrProductNotFound)

	_, err := fx.service.SetProductStock(ctx, 99, 1)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ReplaceProductImage(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	data := pngBytes(t)
	primary := true

	current := &entity.ProductImage{ID: 8, ProductID: 4, ImageKey: "products/4/old.jpg"}
	fx.readImages.EXPECT().FindByID(ctx, int64(8)).Return(current, nil)

	var newKey string
	fx.imageStorage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.Anything, "image/png").
		Run(func(_ context.Context, key string, r io.Reader, _ string) {
			newKey = key
			written, err := io.ReadAll(r)
			assert.NoError(t, err)
			assert.Equal(t, data, written)
		}).
		Return(nil)

	fx.expectTx(ctx)
	fx.imageRepo.EXPECT().FindByID(ctx, int64(8)).Return(&entity.ProductImage{ID: 8, ProductID: 4, ImageKey: "products/4/old.jpg"}, nil)
	fx.imageRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.ProductImage")).Return(nil)
	fx.imageRepo.EXPECT().ClearPrimary(ctx, int64(4), int64(8)).Return(nil)
	fx.imageStorage.EXPECT().Delete(ctx, "products/4/old.jpg").Return(nil)

	replaced, err := fx.service.ReplaceProductImage(ctx, &usecase.ReplaceImageInput{
		ImageID:   8,
		Filename:  "photo.png",
		Data:      data,
		IsPrimary: &primary,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(newKey, "products/4/"))
	assert.True(t, strings.HasSuffix(newKey, ".png"))
	assert.Len(t, strings.TrimSuffix(strings.TrimPrefix(newKey, "products/4/"), ".png"), 64)
	assert.Equal(t, newKey, replaced.ImageKey)
	assert.True(t, replaced.IsPrimary)
}

func TestProductService_ReplaceProductImage_FailedUpdateRemovesNewBlob(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.readImages.EXPECT().FindByID(ctx, int64(8)).Return(&entity.ProductImage{ID: 8, ProductID: 4, ImageKey: "products/4/old.jpg"}, nil)

	var newKey string
	fx.imageStorage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.Anything, "image/png").
		Run(func(_ context.Context, key string, _ io.Reader, _ string) { newKey = key }).
		Return(nil)

	fx.expectTx(ctx)
	fx.imageRepo.EXPECT().FindByID(ctx, int64(8)).Return(&entity.ProductImage{ID: 8, ProductID: 4, ImageKey: "products/4/old.jpg"}, nil)
	fx.imageRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.ProductImage")).Return(assert.AnError)
	fx.imageStorage.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		Run(func(_ context.Context, key string) {
			assert.Equal(t, newKey, key, "only the new blob is removed")
		}).
		Return(nil)

	_, err := fx.service.ReplaceProductImage(ctx, &usecase.ReplaceImageInput{ImageID: 8, Data: pngBytes(t)})
	require.Error(t, err)
}

func TestProductService_ReplaceProductImage_RejectsNonImage(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.ReplaceProductImage(context.Background(), &usecase.ReplaceImageInput{
		ImageID: 8,
		Data:    []byte("just some text"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.ReplaceProductImage(context.Background(), &usecase.ReplaceImageInput{ImageID: 8})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_ReservedStock(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.readOrders.EXPECT().PendingQuantities(ctx).Return(map[int64]int{9: 1, 4: 3}, nil)
	fx.readProducts.EXPECT().FindByID(ctx, int64(4)).Return(activeProduct(4, "Mug", 1000, 2), nil)
	fx.readProducts.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrProductNotFound)

	reservations, err := fx.service.ReservedStock(ctx)
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	assert.Equal(t, &usecase.StockReservation{ProductID: 4, Name: "Mug", Stock: 2, Reserved: 3}, reservations[0])
	assert.Equal(t, int64(9), reservations[1].ProductID)
	assert.Empty(t, reservations[1].Name)
}

func TestProductService_StockAlertsForOrder(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	order := &entity.Order{ID: 12, Items: []*entity.OrderItem{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 2},
		{ProductID: 3, Quantity: 1},
		{ProductID: 4, Quantity: 1},
	}}
	plenty := activeProduct(1, "Kettle", 1000, 40)
	plenty.MinStockAlert = 5
	low := activeProduct(2, "Mug", 1000, 3)
	low.MinStockAlert = 5
	empty := activeProduct(3, "Tea Pot", 1000, 0)

	fx.readOrders.EXPECT().FindByID(ctx, int64(12)).Return(order, nil)
	fx.readProducts.EXPECT().FindByID(ctx, int64(1)).Return(plenty, nil)
	fx.readProducts.EXPECT().FindByID(ctx, int64(2)).Return(low, nil)
	fx.readProducts.EXPECT().FindByID(ctx, int64(3)).Return(empty, nil)
	fx.readProducts.EXPECT().FindByID(ctx, int64(4)).Return(nil, repository.ErrProductNotFound)

	alerts, err := fx.service.StockAlertsForOrder(ctx, 12)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, int64(2), alerts[0].ProductID)
	assert.Equal(t, entity.StockStatusLowStock, alerts[0].Status)
	assert.Equal(t, int64(3), alerts[1].ProductID)
	assert.Equal(t, entity.StockStatusOutOfStock, alerts[1].Status)
}

func TestProductService_StockAlertsForOrder_UnknownOrder(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	fx.readOrders.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.StockAlertsForOrder(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
