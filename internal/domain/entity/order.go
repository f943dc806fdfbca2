package entity

import (
	"math"
	"slices"
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// IsTerminal reports whether no further transition is possible from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// IsPaid reports whether an order in s has been paid for and still stands.
func (s OrderStatus) IsPaid() bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// orderTransitions lists the forward moves allowed from each status.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: nil,
	OrderStatusCancelled: nil,
}

// ServiceType says whether the order is eaten in or taken away.
type ServiceType string

const (
	ServiceTypeDineIn   ServiceType = "DINE_IN"
	ServiceTypeTakeaway ServiceType = "TAKEAWAY"
)

// IsValid reports whether t is a known service type.
func (t ServiceType) IsValid() bool {
	return t == ServiceTypeDineIn || t == ServiceTypeTakeaway
}

const (
	// TaxRate is applied to the subtotal of every order.
	TaxRate = 0.08

	// NoTable marks an order without a table assignment.
	NoTable = 0
)

// OrderItem is one line of an order. MenuItem is shared with the catalog and treated as read-only.
type OrderItem struct {
	ID       int64     `json:"id"`
	MenuItem *MenuItem `json:"menu_item"`
	Quantity int       `json:"quantity"`
	Notes    string    `json:"notes,omitempty"`
}

// UnitPrice is the effective price of one unit.
func (i *OrderItem) UnitPrice() float64 {
	return i.MenuItem.EffectivePrice()
}

// LineTotal is the unit price times the quantity.
func (i *OrderItem) LineTotal() float64 {
	return i.UnitPrice() * float64(i.Quantity)
}

// Order aggregates line items and derives its monetary totals on every mutation.
type Order struct {
	ID                  int64        `json:"id"`
	CustomerID          int64        `json:"customer_id"`
	Items               []*OrderItem `json:"items"`
	Status              OrderStatus  `json:"status"`
	ServiceType         ServiceType  `json:"service_type"`
	TableNumber         int          `json:"table_number,omitempty"`
	Subtotal            float64      `json:"subtotal"`
	Tax                 float64      `json:"tax"`
	Discount            float64      `json:"discount"`
	Total               float64      `json:"total"`
	SpecialInstructions string       `json:"special_instructions,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
	CompletedAt         *time.Time   `json:"completed_at,omitempty"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// NewOrder starts an empty PENDING order.
func NewOrder(customerID int64, serviceType ServiceType, now time.Time) *Order {
	return &Order{
		CustomerID:  customerID,
		Status:      OrderStatusPending,
		ServiceType: serviceType,
		TableNumber: NoTable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AddItem adds qty units of item. A line for the same menu item has its quantity increased.
// Non-positive quantities and nil items are ignored.
func (o *Order) AddItem(item *MenuItem, qty int) bool {
	return o.AddLine(item, qty, "")
}

// AddLine is AddItem with free-text notes for the line. Notes on an existing line are replaced when non-empty.
// A line for an item already on the order merges only when it is configured the same way.
func (o *Order) AddLine(item *MenuItem, qty int, notes string) bool {
	if item == nil || qty <= 0 {
		return false
	}

	if line := o.FindItem(item.ID); line != nil {
		if !line.MenuItem.SameConfiguration(item) {
			return false
		}
		line.Quantity += qty
		if notes != "" {
			line.Notes = notes
		}
	} else {
		o.Items = append(o.Items, &OrderItem{MenuItem: item, Quantity: qty, Notes: notes})
	}
	o.Recalculate()

	return true
}

// FindItem returns the line for menuItemID, or nil.
func (o *Order) FindItem(menuItemID int64) *OrderItem {
	for _, line := range o.Items {
		if line.MenuItem.ID == menuItemID {
			return line
		}
	}

	return nil
}

// RemoveItem drops the line for menuItemID.
func (o *Order) RemoveItem(menuItemID int64) bool {
	before := len(o.Items)
	o.Items = slices.DeleteFunc(o.Items, func(line *OrderItem) bool {
		return line.MenuItem.ID == menuItemID
	})
	if len(o.Items) == before {
		return false
	}
	o.Recalculate()

	return true
}

// UpdateItemQuantity sets the quantity of a line. A quantity of zero or less removes it.
func (o *Order) UpdateItemQuantity(menuItemID int64, qty int) bool {
	if qty <= 0 {
		return o.RemoveItem(menuItemID)
	}

	line := o.FindItem(menuItemID)
	if line == nil {
		return false
	}
	line.Quantity = qty
	o.Recalculate()

	return true
}

// Clear removes every line and the discount.
func (o *Order) Clear() {
	o.Items = nil
	o.Discount = 0
	o.Recalculate()
}

// SetDiscount sets the absolute discount. Negative values are rejected.
func (o *Order) SetDiscount(amount float64) bool {
	if amount < 0 {
		return false
	}
	o.Discount = amount
	o.Recalculate()

	return true
}

// SetTableNumber assigns a table. Only dine-in orders take a table and the number must be positive.
func (o *Order) SetTableNumber(number int) bool {
	if o.ServiceType != ServiceTypeDineIn || number <= 0 {
		return false
	}
	o.TableNumber = number

	return true
}

// HasTable reports whether a table is assigned.
func (o *Order) HasTable() bool {
	return o.ServiceType == ServiceTypeDineIn && o.TableNumber != NoTable
}

// CanTransitionTo reports whether the status machine allows moving to next.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[o.Status], next)
}

// SetStatus moves the order to next if the transition is allowed. Entering COMPLETED stamps CompletedAt.
func (o *Order) SetStatus(next OrderStatus, now time.Time) bool {
	if !o.CanTransitionTo(next) {
		return false
	}
	o.Status = next
	o.UpdatedAt = now
	if next == OrderStatusCompleted {
		completedAt := now
		o.CompletedAt = &completedAt
	}

	return true
}

// ReleasesTable reports whether reaching the current status from previous frees the order's table.
// Only a paid order has seated its customer, so a pending order never releases anything.
func (o *Order) ReleasesTable(previous OrderStatus) bool {
	return o.HasTable() && o.Status.IsTerminal() && previous != OrderStatusPending
}

// TotalItems is the number of units across all lines.
func (o *Order) TotalItems() int {
	total := 0
	for _, line := range o.Items {
		total += line.Quantity
	}

	return total
}

// IsEmpty reports whether the order has no lines.
func (o *Order) IsEmpty() bool {
	return len(o.Items) == 0
}

// Recalculate derives subtotal, tax and total from the lines and the discount.
func (o *Order) Recalculate() {
	subtotal := 0.0
	for _, line := range o.Items {
		subtotal += line.LineTotal()
	}
	o.Subtotal = subtotal
	o.Tax = subtotal * TaxRate
	o.Total = math.Max(0, o.Subtotal+o.Tax-o.Discount)
}
