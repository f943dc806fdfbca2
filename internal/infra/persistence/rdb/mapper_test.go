package rdb

import (
	"testing"
	"time"

	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var mapperNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestMenuItemMapper_CoffeeRoundTrip(t *testing.T) {
	latte := entity.NewCoffee("Latte", "Espresso with steamed milk", 4.50, entity.CoffeeTypeLatte, entity.CoffeeSizeMedium, true)
	latte.ID = 3
	latte.AddCustomization("oat milk")

	itemM := fromMenuItemDomain(latte)
	require.NotNil(t, itemM.CoffeeType)
	assert.Equal(t, "LATTE", *itemM.CoffeeType)
	assert.Equal(t, "COFFEE", itemM.ItemType)

	back := toMenuItemDomain(itemM)
	require.True(t, back.IsCoffee())
	assert.Equal(t, entity.CoffeeSizeMedium, back.Coffee.Size)
	assert.Equal(t, []string{"oat milk"}, back.Customizations())
	assert.InDelta(t, latte.EffectivePrice(), back.EffectivePrice(), 1e-9)
}

func TestMenuItemMapper_PlainAndBadSize(t *testing.T) {
	muffin := entity.NewPlainItem("Muffin", "Blueberry", 2.75, "Bakery")
	itemM := fromMenuItemDomain(muffin)
	assert.Nil(t, itemM.CoffeeType)
	assert.False(t, toMenuItemDomain(itemM).IsCoffee())

	size := "HUGE"
	coffeeType := "MOCHA"
	broken := toMenuItemDomain(&model.MenuItemModel{ItemType: "COFFEE", CoffeeType: &coffeeType, Size: &size, BasePrice: 5})
	assert.Equal(t, entity.CoffeeSizeSmall, broken.Coffee.Size)

	assert.Nil(t, toMenuItemDomain(nil))
	assert.Nil(t, fromMenuItemDomain(nil))
}

func TestOrderMapper_LinesKeepConfiguredOptions(t *testing.T) {
	espresso := entity.NewCoffee("Espresso", "", 2.50, entity.CoffeeTypeEspresso, entity.CoffeeSizeSmall, true)
	espresso.ID = 1
	configured := espresso.Configure(entity.CoffeeSizeLarge, false, []string{"extra shot"})

	order := entity.NewOrder(7, entity.ServiceTypeDineIn, mapperNow)
	order.SetTableNumber(2)
	order.AddLine(configured, 2, "no sugar")

	header := fromOrderDomain(order)
	require.NotNil(t, header.TableNumber)
	assert.Equal(t, 2, *header.TableNumber)

	lines := fromOrderItemsDomain(42, order.Items)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(42), lines[0].OrderID)
	assert.Equal(t, "LARGE", *lines[0].Size)
	assert.InDelta(t, 2.50*1.6+0.50, lines[0].UnitPrice, 1e-9)

	lines[0].MenuItem = *fromMenuItemDomain(espresso)
	header.Items = lines
	back := toOrderDomain(header)

	require.Len(t, back.Items, 1)
	line := back.Items[0]
	assert.Equal(t, entity.CoffeeSizeLarge, line.MenuItem.Coffee.Size)
	assert.False(t, line.MenuItem.Coffee.Hot)
	assert.Equal(t, []string{"extra shot"}, line.MenuItem.Customizations())
	assert.Equal(t, "no sugar", line.Notes)
	assert.InDelta(t, order.Total, back.Total, 1e-9)
	assert.Equal(t, 2, back.TableNumber)
}

func TestOrderMapper_TakeawayHasNoTable(t *testing.T) {
	order := entity.NewOrder(7, entity.ServiceTypeTakeaway, mapperNow)

	header := fromOrderDomain(order)

	assert.Nil(t, header.TableNumber)
	assert.Equal(t, entity.NoTable, toOrderDomain(header).TableNumber)
}

func TestTableMapper_NullableColumns(t *testing.T) {
	table, _ := entity.NewTable(4, 6)
	tableM := fromTableDomain(table)
	assert.Nil(t, tableM.CurrentCustomerID)

	table.Occupy(9, mapperNow)
	tableM = fromTableDomain(table)
	require.NotNil(t, tableM.CurrentCustomerID)
	assert.Equal(t, int64(9), *tableM.CurrentCustomerID)

	back := toTableDomain(tableM)
	assert.Equal(t, entity.TableStatusOccupied, back.Status)
	assert.Equal(t, int64(9), back.CustomerID)
}

func TestIngredientMapper_ExpirationDate(t *testing.T) {
	ingredient := entity.NewIngredient("Milk", entity.UnitLiters, 5, 2, 20, 1.2)
	assert.Nil(t, fromIngredientDomain(ingredient).ExpirationDate)

	expires := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	ingredient.ExpirationDate = &expires
	ingredientM := fromIngredientDomain(ingredient)
	require.NotNil(t, ingredientM.ExpirationDate)
	assert.Equal(t, datatypes.Date(expires), *ingredientM.ExpirationDate)

	back := toIngredientDomain(ingredientM)
	require.NotNil(t, back.ExpirationDate)
	assert.True(t, expires.Equal(*back.ExpirationDate))
	assert.Equal(t, entity.UnitLiters, back.Unit)
	assert.True(t, back.Active)
}

func TestCustomerAndPaymentMappers(t *testing.T) {
	customer, ok := entity.NewCustomer("Jane Smith", "jane.smith@email.com", "555-0102", mapperNow)
	require.True(t, ok)
	customer.LoyaltyPoints = 15.75

	customerM := fromCustomerDomain(customer)
	assert.Equal(t, "555-0102", customerM.PhoneNumber)
	assert.Equal(t, mapperNow, customerM.RegistrationDate)
	assert.Equal(t, customer.Email, toCustomerDomain(customerM).Email)

	payment := entity.NewPayment(3, 10.80, entity.PaymentMethodCash, mapperNow)
	require.True(t, payment.AcceptCash(20))
	payment.Settle(entity.ProcessorOutcome{Approved: true, Reference: "TXN-1"}, mapperNow)

	back := toPaymentDomain(fromPaymentDomain(payment))
	assert.Equal(t, entity.PaymentStatusCompleted, back.Status)
	assert.InDelta(t, 9.20, back.ChangeGiven, 1e-9)
	assert.Equal(t, "TXN-1", back.TransactionReference)
}

func TestQueryHelpers(t *testing.T) {
	assert.Equal(t, "%latte%", likePattern("  LaTTe "))

	assert.Nil(t, ptrIfNotZero(0))
	assert.Equal(t, 3, *ptrIfNotZero(3))

	assert.Zero(t, valueOrZero[string](nil))
	v := "x"
	assert.Equal(t, "x", valueOrZero(&v))
}
