package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	table, ok := NewTable(3, 4)
	require.True(t, ok)

	return table
}

func TestNewTable_RejectsNonPositive(t *testing.T) {
	_, ok := NewTable(0, 4)
	assert.False(t, ok)

	_, ok = NewTable(1, 0)
	assert.False(t, ok)
}

func TestTable_Occupy(t *testing.T) {
	table := newTestTable(t)

	require.True(t, table.Occupy(42, testNow))
	assert.Equal(t, TableStatusOccupied, table.Status)
	assert.Equal(t, int64(42), table.CustomerID)
	require.NotNil(t, table.OccupiedSince)
	assert.Equal(t, testNow, *table.OccupiedSince)

	assert.False(t, table.Occupy(7, testNow), "occupied table cannot be occupied again")
}

func TestTable_OccupyOutOfServiceFails(t *testing.T) {
	table := newTestTable(t)
	table.SetOutOfService("")

	assert.False(t, table.Occupy(1, testNow))
	assert.Equal(t, DefaultOutOfServiceReason, table.Notes)
}

func TestTable_ReservationExpiresLazily(t *testing.T) {
	table := newTestTable(t)
	until := testNow.Add(30 * time.Minute)

	require.True(t, table.Reserve(until, testNow))
	assert.False(t, table.IsAvailable(testNow.Add(10*time.Minute)))
	assert.Equal(t, TableStatusReserved, table.Status)

	assert.True(t, table.IsAvailable(until.Add(time.Second)))
	assert.Equal(t, TableStatusAvailable, table.Status)
	assert.Nil(t, table.ReservedUntil)
}

func TestTable_ReserveRequiresFutureAndAvailable(t *testing.T) {
	table := newTestTable(t)

	assert.False(t, table.Reserve(testNow, testNow))
	assert.False(t, table.Reserve(testNow.Add(-time.Minute), testNow))

	table.Occupy(1, testNow)
	assert.False(t, table.Reserve(testNow.Add(time.Hour), testNow))
}

func TestTable_OccupyAfterExpiredReservation(t *testing.T) {
	table := newTestTable(t)
	table.Reserve(testNow.Add(time.Minute), testNow)

	assert.True(t, table.Occupy(9, testNow.Add(2*time.Minute)))
}

func TestTable_PutBackInService(t *testing.T) {
	table := newTestTable(t)
	assert.False(t, table.PutBackInService())

	table.Occupy(1, testNow)
	table.SetOutOfService("broken leg")
	assert.Equal(t, TableStatusOutOfService, table.Status)
	assert.Zero(t, table.CustomerID)
	assert.Equal(t, "broken leg", table.Notes)

	assert.True(t, table.PutBackInService())
	assert.Equal(t, TableStatusAvailable, table.Status)
	assert.Empty(t, table.Notes)
}

func TestTable_MakeAvailableFromAnyState(t *testing.T) {
	table := newTestTable(t)
	table.Occupy(1, testNow)

	table.MakeAvailable()
	assert.Equal(t, TableStatusAvailable, table.Status)
	assert.Nil(t, table.OccupiedSince)
}

func TestTable_OccupiedDuration(t *testing.T) {
	table := newTestTable(t)
	assert.Zero(t, table.OccupiedDuration(testNow))

	table.Occupy(1, testNow)
	assert.Equal(t, 45*time.Minute, table.OccupiedDuration(testNow.Add(45*time.Minute)))
}

func TestTable_CapacityRules(t *testing.T) {
	table := newTestTable(t)

	assert.False(t, table.SetCapacity(0))
	assert.True(t, table.CanSeat(4))
	assert.False(t, table.CanSeat(5))
	assert.False(t, table.CanSeat(0))
}

func TestTable_IsOccupiedBy(t *testing.T) {
	table := newTestTable(t)
	assert.False(t, table.IsOccupiedBy(0), "a free table seats nobody, not even a guest")

	require.True(t, table.Occupy(7, testNow))
	assert.True(t, table.IsOccupiedBy(7))
	assert.False(t, table.IsOccupiedBy(8))

	table.SetOutOfService("")
	assert.False(t, table.IsOccupiedBy(7))
}
