package entity

import "time"

// Unit is the measure an ingredient is stocked in.
type Unit string

const (
	UnitGrams       Unit = "GRAMS"
	UnitKilograms   Unit = "KILOGRAMS"
	UnitMilliliters Unit = "MILLILITERS"
	UnitLiters      Unit = "LITERS"
	UnitPieces      Unit = "PIECES"
	UnitCups        Unit = "CUPS"
	UnitTablespoons Unit = "TABLESPOONS"
	UnitTeaspoons   Unit = "TEASPOONS"
)

// IsValid reports whether u is a known unit.
func (u Unit) IsValid() bool {
	switch u {
	case UnitGrams, UnitKilograms, UnitMilliliters, UnitLiters,
		UnitPieces, UnitCups, UnitTablespoons, UnitTeaspoons:
		return true
	}

	return false
}

// StockStatus is a derived classification of the stock level.
type StockStatus string

const (
	StockStatusOutOfStock  StockStatus = "OUT_OF_STOCK"
	StockStatusLowStock    StockStatus = "LOW_STOCK"
	StockStatusWellStocked StockStatus = "WELL_STOCKED"
	StockStatusNormal      StockStatus = "NORMAL"
)

// Label is the human readable form of the status.
func (s StockStatus) Label() string {
	switch s {
	case StockStatusOutOfStock:
		return "OUT OF STOCK"
	case StockStatusLowStock:
		return "LOW STOCK"
	case StockStatusWellStocked:
		return "WELL STOCKED"
	default:
		return "NORMAL"
	}
}

const (
	defaultMaxStockFactor = 10
	wellStockedRatio      = 0.8
)

// Ingredient is a stocked raw material with thresholds and an optional expiry date.
type Ingredient struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Unit           Unit       `json:"unit"`
	CurrentStock   float64    `json:"current_stock"`
	MinimumStock   float64    `json:"minimum_stock"`
	MaximumStock   float64    `json:"maximum_stock"`
	CostPerUnit    float64    `json:"cost_per_unit"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Supplier       string     `json:"supplier,omitempty"`
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewIngredient creates an active ingredient. A non-positive maximum defaults to ten times the minimum.
func NewIngredient(name string, unit Unit, current, minimum, maximum, costPerUnit float64) *Ingredient {
	if maximum <= 0 {
		maximum = minimum * defaultMaxStockFactor
	}
	if current < 0 {
		current = 0
	}

	return &Ingredient{
		Name:         name,
		Unit:         unit,
		CurrentStock: current,
		MinimumStock: minimum,
		MaximumStock: maximum,
		CostPerUnit:  costPerUnit,
		Active:       true,
	}
}

// AddStock adds qty if it is positive and the result stays within the maximum.
func (i *Ingredient) AddStock(qty float64) bool {
	if qty <= 0 || i.CurrentStock+qty > i.MaximumStock {
		return false
	}
	i.CurrentStock += qty

	return true
}

// RemoveStock draws qty if it is positive and no more than what is on hand.
func (i *Ingredient) RemoveStock(qty float64) bool {
	if qty <= 0 || qty > i.CurrentStock {
		return false
	}
	i.CurrentStock -= qty

	return true
}

// IsLowStock reports current ≤ minimum.
func (i *Ingredient) IsLowStock() bool {
	return i.CurrentStock <= i.MinimumStock
}

// IsOutOfStock reports current ≤ 0.
func (i *Ingredient) IsOutOfStock() bool {
	return i.CurrentStock <= 0
}

// IsExpired reports whether today is after the expiration date.
func (i *Ingredient) IsExpired(now time.Time) bool {
	if i.ExpirationDate == nil {
		return false
	}

	return dateOf(now).After(dateOf(i.ExpirationDate.In(now.Location())))
}

// IsExpiringSoon reports whether the ingredient expires within days from today, inclusive.
func (i *Ingredient) IsExpiringSoon(now time.Time, days int) bool {
	if i.ExpirationDate == nil || i.IsExpired(now) {
		return false
	}

	limit := dateOf(now).AddDate(0, 0, days)

	return !dateOf(i.ExpirationDate.In(now.Location())).After(limit)
}

// StockValue is the cost of the stock on hand.
func (i *Ingredient) StockValue() float64 {
	return i.CurrentStock * i.CostPerUnit
}

// StockPercentage is current stock relative to the maximum, in percent.
func (i *Ingredient) StockPercentage() float64 {
	if i.MaximumStock <= 0 {
		return 0
	}

	return i.CurrentStock / i.MaximumStock * 100
}

// StockStatus classifies the stock level, checking out of stock first, then low, then well stocked.
func (i *Ingredient) StockStatus() StockStatus {
	switch {
	case i.IsOutOfStock():
		return StockStatusOutOfStock
	case i.IsLowStock():
		return StockStatusLowStock
	case i.CurrentStock >= wellStockedRatio*i.MaximumStock:
		return StockStatusWellStocked
	default:
		return StockStatusNormal
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
