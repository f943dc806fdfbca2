package entity

import (
	"slices"
	"strings"
	"time"
)

// MenuItemKind tags the variant of a MenuItem.
type MenuItemKind string

const (
	MenuItemKindPlain  MenuItemKind = "PLAIN"
	MenuItemKindCoffee MenuItemKind = "COFFEE"
)

// CoffeeType enumerates the drinks the coffee bar can prepare.
type CoffeeType string

const (
	CoffeeTypeEspresso    CoffeeType = "ESPRESSO"
	CoffeeTypeAmericano   CoffeeType = "AMERICANO"
	CoffeeTypeLatte       CoffeeType = "LATTE"
	CoffeeTypeCappuccino  CoffeeType = "CAPPUCCINO"
	CoffeeTypeMacchiato   CoffeeType = "MACCHIATO"
	CoffeeTypeMocha       CoffeeType = "MOCHA"
	CoffeeTypeFrappuccino CoffeeType = "FRAPPUCCINO"
)

// IsValid reports whether t is a known coffee type.
func (t CoffeeType) IsValid() bool {
	switch t {
	case CoffeeTypeEspresso, CoffeeTypeAmericano, CoffeeTypeLatte, CoffeeTypeCappuccino,
		CoffeeTypeMacchiato, CoffeeTypeMocha, CoffeeTypeFrappuccino:
		return true
	}

	return false
}

// CoffeeSize is the cup size; each size scales the base price.
type CoffeeSize string

const (
	CoffeeSizeSmall  CoffeeSize = "SMALL"
	CoffeeSizeMedium CoffeeSize = "MEDIUM"
	CoffeeSizeLarge  CoffeeSize = "LARGE"
)

// Multiplier returns the price multiplier for the size. Unknown sizes price as SMALL.
func (s CoffeeSize) Multiplier() float64 {
	switch s {
	case CoffeeSizeMedium:
		return 1.3
	case CoffeeSizeLarge:
		return 1.6
	default:
		return 1.0
	}
}

// IsValid reports whether s is a known size.
func (s CoffeeSize) IsValid() bool {
	return s == CoffeeSizeSmall || s == CoffeeSizeMedium || s == CoffeeSizeLarge
}

// CustomizationSurcharge is added to a coffee's price once per customization.
const CustomizationSurcharge = 0.50

// CoffeeCategory is the category assigned to coffee items.
const CoffeeCategory = "Coffee"

// CoffeeOptions carries the coffee-only attributes of a MenuItem.
type CoffeeOptions struct {
	Type           CoffeeType `json:"type"`
	Size           CoffeeSize `json:"size"`
	Hot            bool       `json:"hot"`
	Customizations []string   `json:"customizations"`
}

// MenuItem is a purchasable catalog entry. Kind selects the pricing rule:
// plain items cost their base price, coffee items apply size and customization surcharges.
type MenuItem struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Category    string         `json:"category"`
	Available   bool           `json:"available"`
	Kind        MenuItemKind   `json:"kind"`
	Coffee      *CoffeeOptions `json:"coffee,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NewPlainItem builds an available non-coffee item. A negative price is stored as zero.
func NewPlainItem(name, description string, price float64, category string) *MenuItem {
	item := &MenuItem{
		Name:        strings.TrimSpace(name),
		Description: description,
		Category:    category,
		Available:   true,
		Kind:        MenuItemKindPlain,
	}
	item.SetPrice(price)

	return item
}

// NewCoffee builds an available coffee item in the Coffee category.
func NewCoffee(name, description string, price float64, coffeeType CoffeeType, size CoffeeSize, hot bool) *MenuItem {
	item := &MenuItem{
		Name:        strings.TrimSpace(name),
		Description: description,
		Category:    CoffeeCategory,
		Available:   true,
		Kind:        MenuItemKindCoffee,
		Coffee: &CoffeeOptions{
			Type: coffeeType,
			Size: size,
			Hot:  hot,
		},
	}
	item.SetPrice(price)

	return item
}

// IsCoffee reports whether the item is the coffee variant.
func (m *MenuItem) IsCoffee() bool {
	return m.Kind == MenuItemKindCoffee && m.Coffee != nil
}

// EffectivePrice is the per-unit price after size and customization surcharges.
func (m *MenuItem) EffectivePrice() float64 {
	if !m.IsCoffee() {
		return m.Price
	}

	return m.Price*m.Coffee.Size.Multiplier() + CustomizationSurcharge*float64(len(m.Coffee.Customizations))
}

// SetPrice updates the base price. Negative prices are rejected.
func (m *MenuItem) SetPrice(price float64) bool {
	if price < 0 {
		return false
	}
	m.Price = price

	return true
}

// Customizations returns a copy of the coffee customizations, nil for plain items.
func (m *MenuItem) Customizations() []string {
	if !m.IsCoffee() {
		return nil
	}

	return slices.Clone(m.Coffee.Customizations)
}

// AddCustomization appends a trimmed, non-empty customization to a coffee item.
func (m *MenuItem) AddCustomization(customization string) bool {
	customization = strings.TrimSpace(customization)
	if !m.IsCoffee() || customization == "" {
		return false
	}
	m.Coffee.Customizations = append(m.Coffee.Customizations, customization)

	return true
}

// RemoveCustomization removes the first matching customization.
func (m *MenuItem) RemoveCustomization(customization string) bool {
	if !m.IsCoffee() {
		return false
	}

	idx := slices.Index(m.Coffee.Customizations, strings.TrimSpace(customization))
	if idx < 0 {
		return false
	}
	m.Coffee.Customizations = slices.Delete(m.Coffee.Customizations, idx, idx+1)

	return true
}

// ClearCustomizations drops every customization.
func (m *MenuItem) ClearCustomizations() {
	if m.IsCoffee() {
		m.Coffee.Customizations = nil
	}
}

// SameConfiguration reports whether other is the same catalog entry prepared the same way,
// so that both can share one order line.
func (m *MenuItem) SameConfiguration(other *MenuItem) bool {
	if other == nil || m.ID != other.ID || m.Kind != other.Kind {
		return false
	}
	if !m.IsCoffee() {
		return true
	}

	return m.Coffee.Size == other.Coffee.Size &&
		m.Coffee.Hot == other.Coffee.Hot &&
		slices.Equal(m.Coffee.Customizations, other.Coffee.Customizations)
}

// Configure returns a copy of the item prepared for an order line. The catalog entry is left untouched.
// Plain items ignore every argument. An invalid size keeps the catalog size.
func (m *MenuItem) Configure(size CoffeeSize, hot bool, customizations []string) *MenuItem {
	clone := *m
	if !m.IsCoffee() {
		return &clone
	}

	opts := *m.Coffee
	opts.Customizations = nil
	if size.IsValid() {
		opts.Size = size
	}
	opts.Hot = hot
	clone.Coffee = &opts

	for _, c := range customizations {
		clone.AddCustomization(c)
	}

	return &clone
}
