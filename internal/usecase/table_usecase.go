package usecase

import (
	"context"
	"time"

	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/repository"
)

// UpdateTableInput carries the fields to change. Nil fields are left untouched.
type UpdateTableInput struct {
	Capacity *int
	Notes    *string
}

// TableUsecase defines seating management. Stale reservations are expired whenever a table is read.
type TableUsecase interface {
	CreateTable(ctx context.Context, number, capacity int) (*entity.Table, error)
	GetTable(ctx context.Context, number int) (*entity.Table, error)
	ListTables(ctx context.Context, filter repository.TableFilter) ([]*entity.Table, error)
	OccupyTable(ctx context.Context, number int, customerID int64) (*entity.Table, error)
	ReserveTable(ctx context.Context, number int, until time.Time) (*entity.Table, error)
	ReleaseTable(ctx context.Context, number int) (*entity.Table, error)
	SetOutOfService(ctx context.Context, number int, reason string) (*entity.Table, error)
	PutBackInService(ctx context.Context, number int) (*entity.Table, error)
	UpdateTable(ctx context.Context, number int, input UpdateTableInput) (*entity.Table, error)

	// FindBestTable returns the smallest available table that seats partySize.
	FindBestTable(ctx context.Context, partySize int) (*entity.Table, error)

	DeleteTable(ctx context.Context, number int) error
	Stats(ctx context.Context) (*entity.TableStats, error)

	// TableQRCode renders the PNG printed on the table.
	TableQRCode(ctx context.Context, number int) ([]byte, error)

	// ResolveTableQR returns the table encoded in scanned QR data.
	ResolveTableQR(ctx context.Context, data string) (*entity.Table, error)
}
