package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewIngredient_DefaultMaximum(t *testing.T) {
	ing := NewIngredient("Milk", UnitLiters, 5, 2, 0, 1.20)

	assert.InDelta(t, 20, ing.MaximumStock, 1e-9)
	assert.True(t, ing.Active)
}

func TestIngredient_AddStock(t *testing.T) {
	ing := NewIngredient("Beans", UnitKilograms, 8, 2, 10, 12)

	assert.False(t, ing.AddStock(3), "would exceed maximum")
	assert.InDelta(t, 8, ing.CurrentStock, 1e-9)

	assert.False(t, ing.AddStock(0))
	assert.False(t, ing.AddStock(-1))

	assert.True(t, ing.AddStock(2))
	assert.InDelta(t, 10, ing.CurrentStock, 1e-9)
}

func TestIngredient_RemoveStock(t *testing.T) {
	ing := NewIngredient("Sugar", UnitGrams, 100, 20, 1000, 0.01)

	assert.False(t, ing.RemoveStock(150))
	assert.InDelta(t, 100, ing.CurrentStock, 1e-9)

	assert.True(t, ing.RemoveStock(100))
	assert.True(t, ing.IsOutOfStock())
}

func TestIngredient_StockStatus(t *testing.T) {
	tests := []struct {
		current  float64
		expected StockStatus
	}{
		{0, StockStatusOutOfStock},
		{20, StockStatusLowStock},
		{80, StockStatusWellStocked},
		{50, StockStatusNormal},
	}

	for _, tt := range tests {
		ing := NewIngredient("Cups", UnitPieces, tt.current, 20, 100, 0.05)
		assert.Equal(t, tt.expected, ing.StockStatus(), "current=%v", tt.current)
	}

	assert.Equal(t, "WELL STOCKED", StockStatusWellStocked.Label())
}

func TestIngredient_Expiry(t *testing.T) {
	ing := NewIngredient("Cream", UnitMilliliters, 500, 100, 2000, 0.004)
	assert.False(t, ing.IsExpired(testNow))
	assert.False(t, ing.IsExpiringSoon(testNow, 7))

	sameDay := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	ing.ExpirationDate = &sameDay
	assert.False(t, ing.IsExpired(testNow), "expires at end of the day")
	assert.True(t, ing.IsExpiringSoon(testNow, 0))

	yesterday := sameDay.AddDate(0, 0, -1)
	ing.ExpirationDate = &yesterday
	assert.True(t, ing.IsExpired(testNow))
	assert.False(t, ing.IsExpiringSoon(testNow, 7))

	nextWeek := sameDay.AddDate(0, 0, 7)
	ing.ExpirationDate = &nextWeek
	assert.True(t, ing.IsExpiringSoon(testNow, 7))
	assert.False(t, ing.IsExpiringSoon(testNow, 6))
}

func TestIngredient_ValueAndPercentage(t *testing.T) {
	ing := NewIngredient("Syrup", UnitLiters, 3, 1, 12, 4.5)

	assert.InDelta(t, 13.5, ing.StockValue(), 1e-9)
	assert.InDelta(t, 25, ing.StockPercentage(), 1e-9)
}
