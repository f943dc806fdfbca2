package entity

import (
	"strings"
	"time"
)

// LoyaltyPolicy holds the accrual and redemption rates for loyalty points.
type LoyaltyPolicy struct {
	PointsPerDollar float64
	PointValue      float64
}

// Earned is the number of points credited for spending amount.
func (p LoyaltyPolicy) Earned(amount float64) float64 {
	if amount <= 0 || p.PointsPerDollar <= 0 {
		return 0
	}

	return amount * p.PointsPerDollar
}

// Value is the money value of points.
func (p LoyaltyPolicy) Value(points float64) float64 {
	return points * p.PointValue
}

// Customer is a registered patron with a loyalty balance.
type Customer struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	LoyaltyPoints float64   `json:"loyalty_points"`
	RegisteredAt  time.Time `json:"registration_date"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Orders is a back-reference to the customer's orders, filled on demand.
	Orders []*Order `json:"orders,omitempty"`
}

// NewCustomer validates and builds a customer with no points.
func NewCustomer(name, email, phone string, now time.Time) (*Customer, bool) {
	c := &Customer{RegisteredAt: now, UpdatedAt: now}
	if !c.SetName(name) || !c.SetEmail(email) || !c.SetPhone(phone) {
		return nil, false
	}

	return c, true
}

// SetName sets a trimmed, non-empty name.
func (c *Customer) SetName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	c.Name = name

	return true
}

// SetEmail sets a trimmed email that must contain "@".
func (c *Customer) SetEmail(email string) bool {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return false
	}
	c.Email = email

	return true
}

// SetPhone sets a trimmed, non-empty phone number.
func (c *Customer) SetPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}
	c.Phone = phone

	return true
}

// AddOrder appends order to the history and credits points for its total. It returns the points credited.
func (c *Customer) AddOrder(order *Order, policy LoyaltyPolicy) float64 {
	if order == nil {
		return 0
	}
	c.Orders = append(c.Orders, order)
	earned := policy.Earned(order.Total)
	c.LoyaltyPoints += earned

	return earned
}

// AddLoyaltyPoints credits a positive number of points.
func (c *Customer) AddLoyaltyPoints(points float64) bool {
	if points <= 0 {
		return false
	}
	c.LoyaltyPoints += points

	return true
}

// RedeemLoyaltyPoints deducts points when positive and covered by the balance.
func (c *Customer) RedeemLoyaltyPoints(points float64) bool {
	if points <= 0 || c.LoyaltyPoints < points {
		return false
	}
	c.LoyaltyPoints -= points

	return true
}

// TotalSpent sums the totals of the paid orders in the history. Pending and cancelled orders are skipped.
func (c *Customer) TotalSpent() float64 {
	total := 0.0
	for _, o := range c.Orders {
		if o.Status.IsPaid() {
			total += o.Total
		}
	}

	return total
}

// TotalOrders is the length of the history.
func (c *Customer) TotalOrders() int {
	return len(c.Orders)
}

// LastOrder is the most recently appended order, or nil.
func (c *Customer) LastOrder() *Order {
	if len(c.Orders) == 0 {
		return nil
	}

	return c.Orders[len(c.Orders)-1]
}
