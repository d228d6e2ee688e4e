package orderControllers_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	orderControllers "github.com/Big-pappi/sk-project/controllers/order"
	"github.com/Big-pappi/sk-project/httperr"
	"github.com/Big-pappi/sk-project/models"
)

func cartLine(shopID, productID string, price float64, qty int) models.CartItem {
	return models.CartItem{
		ProductID: productID,
		Quantity:  qty,
		Product: models.Product{
			ID:     productID,
			ShopID: shopID,
			Shop:   models.Shop{ID: shopID, Name: "Shop " + shopID},
			Name:   "Product " + productID,
			Price:  price,
		},
	}
}

func TestSplitCartByShop_TwoShops(t *testing.T) {
	items := []models.CartItem{
		cartLine("s1", "p1", 50, 2),
		cartLine("s2", "p3", 80, 3),
		cartLine("s1", "p2", 100, 1),
	}

	drafts := orderControllers.SplitCartByShop(items)
	assert.Len(t, drafts, 2)

	s1 := drafts[0]
	assert.Equal(t, "s1", s1.Shop.ID)
	assert.Len(t, s1.Lines, 2)
	assert.InDelta(t, 200.0, s1.Subtotal, 0.001)
	assert.InDelta(t, 500.0, s1.DeliveryFee, 0.001)
	assert.InDelta(t, 10.0, s1.PlatformFee, 0.001)
	assert.InDelta(t, 710.0, s1.Total, 0.001)

	s2 := drafts[1]
	assert.Equal(t, "s2", s2.Shop.ID)
	assert.Len(t, s2.Lines, 1)
	assert.InDelta(t, 240.0, s2.Subtotal, 0.001)
	assert.InDelta(t, 12.0, s2.PlatformFee, 0.001)
	assert.InDelta(t, 752.0, s2.Total, 0.001)
}

func TestSplitCartByShop_SingleShop(t *testing.T) {
	items := []models.CartItem{
		cartLine("s1", "p1", 10, 1),
		cartLine("s1", "p2", 20, 2),
	}

	drafts := orderControllers.SplitCartByShop(items)
	assert.Len(t, drafts, 1)
	assert.InDelta(t, 50.0, drafts[0].Subtotal, 0.001)
	assert.InDelta(t, 552.5, drafts[0].Total, 0.001)
}

func TestSplitCartByShop_KeepsFirstSeenShopOrder(t *testing.T) {
	items := []models.CartItem{
		cartLine("s3", "p1", 10, 1),
		cartLine("s1", "p2", 10, 1),
		cartLine("s2", "p3", 10, 1),
		cartLine("s1", "p4", 10, 1),
	}

	drafts := orderControllers.SplitCartByShop(items)
	assert.Len(t, drafts, 3)
	assert.Equal(t, "s3", drafts[0].Shop.ID)
	assert.Equal(t, "s1", drafts[1].Shop.ID)
	assert.Equal(t, "s2", drafts[2].Shop.ID)
}

func TestSplitCartByShop_UsesDiscountPrice(t *testing.T) {
	discounted := cartLine("s1", "p1", 100, 2)
	discount := 60.0
	discounted.Product.DiscountPrice = &discount

	drafts := orderControllers.SplitCartByShop([]models.CartItem{discounted})
	assert.Len(t, drafts, 1)
	assert.InDelta(t, 120.0, drafts[0].Subtotal, 0.001)
}

func TestSplitCartByShop_EmptyCart(t *testing.T) {
	assert.Empty(t, orderControllers.SplitCartByShop(nil))
}

func TestCheckStock_AllAvailable(t *testing.T) {
	items := []models.CartItem{
		cartLine("s1", "p1", 10, 2),
		cartLine("s1", "p2", 10, 5),
	}
	stock := map[string]int{"p1": 2, "p2": 10}

	assert.NoError(t, orderControllers.CheckStock(items, stock))
}

func TestCheckStock_RejectsWholeCheckoutOnOneShortfall(t *testing.T) {
	items := []models.CartItem{
		cartLine("s1", "p1", 10, 2),
		cartLine("s2", "p2", 10, 5),
	}
	stock := map[string]int{"p1": 100, "p2": 4}

	err := orderControllers.CheckStock(items, stock)
	assert.Error(t, err)

	var httpErr *httperr.Error
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 400, httpErr.Status)
	assert.Contains(t, httpErr.Message, "Not enough stock")
}

func TestCheckStock_MissingProduct(t *testing.T) {
	items := []models.CartItem{cartLine("s1", "p1", 10, 1)}

	err := orderControllers.CheckStock(items, map[string]int{})
	assert.Error(t, err)

	var httpErr *httperr.Error
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 400, httpErr.Status)
	assert.Contains(t, httpErr.Message, "no longer available")
}

func TestEffectivePrice(t *testing.T) {
	p := models.Product{Price: 100}
	assert.InDelta(t, 100.0, p.EffectivePrice(), 0.001)

	discount := 75.0
	p.DiscountPrice = &discount
	assert.InDelta(t, 75.0, p.EffectivePrice(), 0.001)

	zero := 0.0
	p.DiscountPrice = &zero
	assert.InDelta(t, 100.0, p.EffectivePrice(), 0.001)
}
