package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPolicy = LoyaltyPolicy{PointsPerDollar: 10, PointValue: 0.01}

func TestNewCustomer_Validation(t *testing.T) {
	c, ok := NewCustomer(" John Doe ", "john@example.com", "555-0101", testNow)
	require.True(t, ok)
	assert.Equal(t, "John Doe", c.Name)
	assert.Zero(t, c.LoyaltyPoints)

	_, ok = NewCustomer("Jane", "jane.example.com", "555-0102", testNow)
	assert.False(t, ok, "email without @")

	_, ok = NewCustomer("", "a@b.c", "555", testNow)
	assert.False(t, ok)

	_, ok = NewCustomer("Bob", "bob@example.com", "  ", testNow)
	assert.False(t, ok)
}

func TestCustomer_SetEmailKeepsPrevious(t *testing.T) {
	c, _ := NewCustomer("John", "john@example.com", "555", testNow)

	assert.False(t, c.SetEmail("nope"))
	assert.Equal(t, "john@example.com", c.Email)
}

func TestCustomer_AddOrderCreditsPoints(t *testing.T) {
	c, _ := NewCustomer("John", "john@example.com", "555", testNow)
	order := NewOrder(1, ServiceTypeTakeaway, testNow)
	order.AddItem(plainItem(1, 10.00), 1)
	require.True(t, order.SetStatus(OrderStatusConfirmed, testNow))

	earned := c.AddOrder(order, testPolicy)

	assert.InDelta(t, 108, earned, 1e-9)
	assert.InDelta(t, 108, c.LoyaltyPoints, 1e-9)
	assert.Equal(t, 1, c.TotalOrders())
	assert.InDelta(t, 10.80, c.TotalSpent(), 1e-9)
	assert.Same(t, order, c.LastOrder())
}

func TestCustomer_TotalSpentCountsPaidOrdersOnly(t *testing.T) {
	c, _ := NewCustomer("John", "john@example.com", "555", testNow)

	statuses := []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusCancelled, OrderStatusCompleted}
	for _, status := range statuses {
		order := NewOrder(1, ServiceTypeTakeaway, testNow)
		order.AddItem(plainItem(1, 10.00), 1)
		order.Status = status
		c.Orders = append(c.Orders, order)
	}

	assert.Equal(t, 4, c.TotalOrders())
	assert.InDelta(t, 2*10.80, c.TotalSpent(), 1e-9)
}

func TestCustomer_RedeemRejectsOverdraw(t *testing.T) {
	c, _ := NewCustomer("John", "john@example.com", "555", testNow)
	c.LoyaltyPoints = 30

	assert.False(t, c.RedeemLoyaltyPoints(50))
	assert.InDelta(t, 30, c.LoyaltyPoints, 1e-9)

	assert.False(t, c.RedeemLoyaltyPoints(0))
	assert.True(t, c.RedeemLoyaltyPoints(30))
	assert.Zero(t, c.LoyaltyPoints)
}

func TestCustomer_AddLoyaltyPoints(t *testing.T) {
	c, _ := NewCustomer("John", "john@example.com", "555", testNow)

	assert.False(t, c.AddLoyaltyPoints(-5))
	assert.True(t, c.AddLoyaltyPoints(25))
	assert.InDelta(t, 25, c.LoyaltyPoints, 1e-9)
	assert.Nil(t, c.LastOrder())
}

func TestLoyaltyPolicy(t *testing.T) {
	assert.InDelta(t, 50, testPolicy.Earned(5), 1e-9)
	assert.Zero(t, testPolicy.Earned(-1))
	assert.InDelta(t, 1.00, testPolicy.Value(100), 1e-9)
}

func TestStats_Rates(t *testing.T) {
	assert.InDelta(t, 50, OrderStats{TotalOrders: 4, Completed: 2}.CompletionRate(), 1e-9)
	assert.Zero(t, PaymentStats{}.SuccessRate())
	assert.InDelta(t, 40, TableStats{TotalTables: 5, Occupied: 2}.UtilizationRate(), 1e-9)
	assert.InDelta(t, 25, IngredientStats{TotalIngredients: 4, LowStock: 1}.LowStockRate(), 1e-9)
}
