package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func plainItem(id int64, price float64) *MenuItem {
	item := NewPlainItem("item", "", price, "Test")
	item.ID = id

	return item
}

func TestOrder_TotalsFollowLines(t *testing.T) {
	order := NewOrder(1, ServiceTypeTakeaway, testNow)

	require.True(t, order.AddItem(plainItem(1, 2.50), 2))
	require.True(t, order.AddItem(plainItem(2, 3.00), 1))

	assert.InDelta(t, 8.00, order.Subtotal, 1e-9)
	assert.InDelta(t, 8.00*TaxRate, order.Tax, 1e-9)
	assert.InDelta(t, 8.64, order.Total, 1e-9)
	assert.Equal(t, 3, order.TotalItems())
}

func TestOrder_AddSameItemIncrementsQuantity(t *testing.T) {
	order := NewOrder(1, ServiceTypeTakeaway, testNow)
	item := plainItem(5, 1.00)

	order.AddItem(item, 1)
	order.AddItem(item, 2)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.InDelta(t, 3.00, order.Subtotal, 1e-9)
}

func TestOrder_AddItemIgnoresInvalidInput(t *testing.T) {
	order := NewOrder(1, ServiceTypeTakeaway, testNow)

	assert.False(t, order.AddItem(plainItem(1, 2.00), 0))
	assert.False(t, order.AddItem(plainItem(1, 2.00), -4))
	assert.False(t, order.AddItem(nil, 1))
	assert.True(t, order.IsEmpty())
	assert.Zero(t, order.Total)
}

func TestOrder_CoffeeLineScenario(t *testing.T) {
	coffee := NewCoffee("Latte", "", 4.00, CoffeeTypeLatte, CoffeeSizeSmall, true)
	coffee.ID = 3
	line := coffee.Configure(CoffeeSizeLarge, true, []string{"oat milk", "extra shot"})

	order := NewOrder(1, ServiceTypeTakeaway, testNow)
	require.True(t, order.AddItem(line, 3))

	assert.InDelta(t, 7.40, order.Items[0].UnitPrice(), 1e-9)
	assert.InDelta(t, 22.20, order.Items[0].LineTotal(), 1e-9)
	assert.InDelta(t, 22.20, order.Subtotal, 1e-9)
}

func TestOrder_DiscountScenario(t *testing.T) {
	order := NewOrder(1, ServiceTypeTakeaway, testNow)
	order.AddItem(plainItem(1, 10.00), 1)

	require.True(t, order.SetDiscount(3.00))

	assert.InDelta(t, 10.00, order.Subtotal, 1e-9)
	assert.InDelta(t, 0.80, order.Tax, 1e-9)
	assert.InDelta(t, 7.80, order.Total, 1e-9)
}

func TestOrder_TotalClampsAtZero(t *testing.T) {
	order := NewOrder(1, ServiceTypeTakeaway, testNow)
	order.AddItem(plainItem(1, 5.00), 1)

	require.True(t, order.SetDiscount(6.00))
	assert.Zero(t, order.Total)
}

func TestOrder_NegativeDiscountRejected(t *testing.T) {
	order := NewOrder(1, ServiceTypeTakeaway, testNow)
	order.AddItem(plainItem(1, 5.00), 1)
	order.SetDiscount(1.00)

	assert.False(t, order.SetDiscount(-2))
	assert.InDelta(t, 1.00, order.Discount, 1e-9)
}

func TestOrder_UpdateAndRemove(t *testing.T) {
	order := NewOrder(1, ServiceTypeTakeaway, testNow)
	order.AddItem(plainItem(1, 2.00), 1)
	order.AddItem(plainItem(2, 4.00), 1)

	assert.True(t, order.UpdateItemQuantity(1, 5))
	assert.InDelta(t, 14.00, order.Subtotal, 1e-9)

	assert.True(t, order.UpdateItemQuantity(1, 0))
	assert.Nil(t, order.FindItem(1))
	assert.InDelta(t, 4.00, order.Subtotal, 1e-9)

	assert.False(t, order.UpdateItemQuantity(99, 2))
	assert.False(t, order.RemoveItem(99))

	assert.True(t, order.RemoveItem(2))
	assert.True(t, order.IsEmpty())
	assert.Zero(t, order.Total)
}

func TestOrder_Clear(t *testing.T) {
	order := NewOrder(1, ServiceTypeTakeaway, testNow)
	order.AddItem(plainItem(1, 2.00), 3)
	order.SetDiscount(1)

	order.Clear()

	assert.True(t, order.IsEmpty())
	assert.Zero(t, order.Subtotal)
	assert.Zero(t, order.Discount)
	assert.Zero(t, order.Total)
}

func TestOrder_SetTableNumber(t *testing.T) {
	dineIn := NewOrder(1, ServiceTypeDineIn, testNow)
	assert.False(t, dineIn.SetTableNumber(0))
	assert.True(t, dineIn.SetTableNumber(4))
	assert.Equal(t, 4, dineIn.TableNumber)
	assert.True(t, dineIn.HasTable())

	takeaway := NewOrder(1, ServiceTypeTakeaway, testNow)
	assert.False(t, takeaway.SetTableNumber(4))
	assert.Equal(t, NoTable, takeaway.TableNumber)
	assert.False(t, takeaway.HasTable())
}

func TestOrder_StatusMachine(t *testing.T) {
	order := NewOrder(1, ServiceTypeTakeaway, testNow)
	later := testNow.Add(20 * time.Minute)

	assert.False(t, order.SetStatus(OrderStatusReady, later), "cannot skip states")
	assert.True(t, order.SetStatus(OrderStatusConfirmed, later))
	assert.True(t, order.SetStatus(OrderStatusPreparing, later))
	assert.True(t, order.SetStatus(OrderStatusReady, later))
	assert.Nil(t, order.CompletedAt)
	assert.True(t, order.SetStatus(OrderStatusCompleted, later))

	require.NotNil(t, order.CompletedAt)
	assert.Equal(t, later, *order.CompletedAt)

	assert.False(t, order.SetStatus(OrderStatusPending, later), "completed is terminal")
	assert.False(t, order.SetStatus(OrderStatusCancelled, later), "completed is terminal")
}

func TestOrder_CancelFromAnyNonTerminalState(t *testing.T) {
	for _, path := range [][]OrderStatus{
		{},
		{OrderStatusConfirmed},
		{OrderStatusConfirmed, OrderStatusPreparing},
		{OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady},
	} {
		order := NewOrder(1, ServiceTypeTakeaway, testNow)
		for _, s := range path {
			require.True(t, order.SetStatus(s, testNow))
		}

		assert.True(t, order.SetStatus(OrderStatusCancelled, testNow), "from %s", order.Status)
		assert.Nil(t, order.CompletedAt)
		assert.False(t, order.SetStatus(OrderStatusConfirmed, testNow))
	}
}

func TestOrder_ReleasesTable(t *testing.T) {
	order := NewOrder(1, ServiceTypeDineIn, testNow)
	order.SetTableNumber(2)
	assert.False(t, order.ReleasesTable(OrderStatusPending))

	order.SetStatus(OrderStatusConfirmed, testNow)
	order.SetStatus(OrderStatusCancelled, testNow)
	assert.True(t, order.ReleasesTable(OrderStatusConfirmed))
	assert.False(t, order.ReleasesTable(OrderStatusPending), "an unpaid order never seated anyone")

	takeaway := NewOrder(1, ServiceTypeTakeaway, testNow)
	takeaway.SetStatus(OrderStatusCancelled, testNow)
	assert.False(t, takeaway.ReleasesTable(OrderStatusConfirmed))
}

func TestOrder_AddLineKeepsNotes(t *testing.T) {
	order := NewOrder(1, ServiceTypeTakeaway, testNow)
	item := plainItem(1, 1.00)

	order.AddLine(item, 1, "no sugar")
	order.AddLine(item, 1, "")

	require.Len(t, order.Items, 1)
	assert.Equal(t, "no sugar", order.Items[0].Notes)
}

func TestOrder_AddLineRefusesConflictingConfiguration(t *testing.T) {
	order := NewOrder(1, ServiceTypeTakeaway, testNow)
	latte := NewCoffee("Latte", "", 4.50, CoffeeTypeLatte, CoffeeSizeSmall, true)
	latte.ID = 3

	require.True(t, order.AddLine(latte.Configure(CoffeeSizeLarge, true, nil), 1, ""))
	assert.False(t, order.AddLine(latte.Configure(CoffeeSizeSmall, true, nil), 1, ""))
	assert.False(t, order.AddLine(latte.Configure(CoffeeSizeLarge, true, []string{"Oat milk"}), 1, ""))
	assert.True(t, order.AddLine(latte.Configure(CoffeeSizeLarge, true, nil), 2, ""))

	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.InDelta(t, 3*4.50*1.6, order.Subtotal, 1e-9)
}
