package entity

func percent(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}

	return float64(part) / float64(whole) * 100
}

// OrderStats summarizes orders in a period.
type OrderStats struct {
	TotalOrders       int64   `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	Pending           int64   `json:"pending"`
	Confirmed         int64   `json:"confirmed"`
	Preparing         int64   `json:"preparing"`
	Ready             int64   `json:"ready"`
	Completed         int64   `json:"completed"`
	Cancelled         int64   `json:"cancelled"`
}

// CompletionRate is the share of completed orders, in percent.
func (s OrderStats) CompletionRate() float64 {
	return percent(s.Completed, s.TotalOrders)
}

// PaymentStats summarizes payment attempts.
type PaymentStats struct {
	TotalPayments int64                   `json:"total_payments"`
	TotalAmount   float64                 `json:"total_amount"`
	Completed     int64                   `json:"completed"`
	Failed        int64                   `json:"failed"`
	Pending       int64                   `json:"pending"`
	Refunded      int64                   `json:"refunded"`
	ByMethod      map[PaymentMethod]int64 `json:"by_method"`
}

// SuccessRate is the share of completed payments, in percent.
func (s PaymentStats) SuccessRate() float64 {
	return percent(s.Completed, s.TotalPayments)
}

// TableStats summarizes seating.
type TableStats struct {
	TotalTables   int64 `json:"total_tables"`
	Available     int64 `json:"available"`
	Occupied      int64 `json:"occupied"`
	Reserved      int64 `json:"reserved"`
	OutOfService  int64 `json:"out_of_service"`
	TotalCapacity int64 `json:"total_capacity"`
}

// UtilizationRate is the share of occupied tables, in percent.
func (s TableStats) UtilizationRate() float64 {
	return percent(s.Occupied, s.TotalTables)
}

// AvailabilityRate is the share of available tables, in percent.
func (s TableStats) AvailabilityRate() float64 {
	return percent(s.Available, s.TotalTables)
}

// IngredientStats summarizes the inventory.
type IngredientStats struct {
	TotalIngredients int64   `json:"total_ingredients"`
	LowStock         int64   `json:"low_stock"`
	OutOfStock       int64   `json:"out_of_stock"`
	Expired          int64   `json:"expired"`
	TotalValue       float64 `json:"total_value"`
}

// LowStockRate is the share of low-stock ingredients, in percent.
func (s IngredientStats) LowStockRate() float64 {
	return percent(s.LowStock, s.TotalIngredients)
}

// OutOfStockRate is the share of out-of-stock ingredients, in percent.
func (s IngredientStats) OutOfStockRate() float64 {
	return percent(s.OutOfStock, s.TotalIngredients)
}

// CustomerStats summarizes loyalty balances.
type CustomerStats struct {
	TotalCustomers       int64   `json:"total_customers"`
	TotalLoyaltyPoints   float64 `json:"total_loyalty_points"`
	AverageLoyaltyPoints float64 `json:"average_loyalty_points"`
	MaxLoyaltyPoints     float64 `json:"max_loyalty_points"`
}
