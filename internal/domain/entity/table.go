package entity

import (
	"strings"
	"time"
)

// TableStatus is the seating state of a table.
type TableStatus string

const (
	TableStatusAvailable    TableStatus = "AVAILABLE"
	TableStatusOccupied     TableStatus = "OCCUPIED"
	TableStatusReserved     TableStatus = "RESERVED"
	TableStatusOutOfService TableStatus = "OUT_OF_SERVICE"
)

// IsValid reports whether s is a known table status.
func (s TableStatus) IsValid() bool {
	switch s {
	case TableStatusAvailable, TableStatusOccupied, TableStatusReserved, TableStatusOutOfService:
		return true
	}

	return false
}

// DefaultOutOfServiceReason is recorded when no reason is given.
const DefaultOutOfServiceReason = "Out of service"

// Table is a seating resource. Times are passed in so reservation expiry is deterministic.
type Table struct {
	Number        int         `json:"table_number"`
	Capacity      int         `json:"capacity"`
	Status        TableStatus `json:"status"`
	CustomerID    int64       `json:"customer_id,omitempty"`
	OccupiedSince *time.Time  `json:"occupied_since,omitempty"`
	ReservedUntil *time.Time  `json:"reserved_until,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// NewTable creates an AVAILABLE table. Number and capacity must be positive.
func NewTable(number, capacity int) (*Table, bool) {
	if number <= 0 || capacity <= 0 {
		return nil, false
	}

	return &Table{
		Number:   number,
		Capacity: capacity,
		Status:   TableStatusAvailable,
	}, true
}

// IsReservationExpired reports whether a RESERVED table is past its reservation.
func (t *Table) IsReservationExpired(now time.Time) bool {
	return t.Status == TableStatusReserved && t.ReservedUntil != nil && now.After(*t.ReservedUntil)
}

// ExpireReservation moves an expired reservation back to AVAILABLE. It reports whether anything changed.
func (t *Table) ExpireReservation(now time.Time) bool {
	if !t.IsReservationExpired(now) {
		return false
	}
	t.MakeAvailable()

	return true
}

// CurrentStatus expires a stale reservation before returning the status.
func (t *Table) CurrentStatus(now time.Time) TableStatus {
	t.ExpireReservation(now)

	return t.Status
}

// IsAvailable reports whether the table can be seated now.
func (t *Table) IsAvailable(now time.Time) bool {
	return t.CurrentStatus(now) == TableStatusAvailable
}

// Occupy seats customerID at an available table.
func (t *Table) Occupy(customerID int64, now time.Time) bool {
	if !t.IsAvailable(now) {
		return false
	}

	since := now
	t.Status = TableStatusOccupied
	t.CustomerID = customerID
	t.OccupiedSince = &since
	t.ReservedUntil = nil

	return true
}

// Reserve holds an available table until a strictly future time.
func (t *Table) Reserve(until, now time.Time) bool {
	if !t.IsAvailable(now) || !until.After(now) {
		return false
	}

	reservedUntil := until
	t.Status = TableStatusReserved
	t.ReservedUntil = &reservedUntil

	return true
}

// IsOccupiedBy reports whether customerID is the one seated at the table.
func (t *Table) IsOccupiedBy(customerID int64) bool {
	return t.Status == TableStatusOccupied && t.CustomerID == customerID
}

// MakeAvailable resets the table from any state.
func (t *Table) MakeAvailable() {
	t.Status = TableStatusAvailable
	t.CustomerID = 0
	t.OccupiedSince = nil
	t.ReservedUntil = nil
}

// SetOutOfService takes the table out of rotation from any state.
func (t *Table) SetOutOfService(reason string) {
	t.MakeAvailable()
	t.Status = TableStatusOutOfService
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultOutOfServiceReason
	}
	t.Notes = reason
}

// PutBackInService returns an OUT_OF_SERVICE table to AVAILABLE and clears its notes.
func (t *Table) PutBackInService() bool {
	if t.Status != TableStatusOutOfService {
		return false
	}
	t.MakeAvailable()
	t.Notes = ""

	return true
}

// OccupiedDuration is how long the current party has been seated, zero when not occupied.
func (t *Table) OccupiedDuration(now time.Time) time.Duration {
	if t.Status != TableStatusOccupied || t.OccupiedSince == nil {
		return 0
	}

	return now.Sub(*t.OccupiedSince)
}

// SetCapacity changes the seat count. Non-positive values are rejected.
func (t *Table) SetCapacity(capacity int) bool {
	if capacity <= 0 {
		return false
	}
	t.Capacity = capacity

	return true
}

// CanSeat reports whether the table is large enough for partySize.
func (t *Table) CanSeat(partySize int) bool {
	return partySize > 0 && t.Capacity >= partySize
}
