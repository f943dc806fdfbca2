package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tableService implements the TableUsecase interface.
type tableService struct {
	txManager repository.TransactionManager
	tableRepo repository.TableRepository
	qrService service.QRCodeService
	logger    *slog.Logger
	now       func() time.Time
}

// TableServiceParams holds dependencies for TableService, injected by Fx.
type TableServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TableRepo repository.TableRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewTableService is the constructor for tableService.
func NewTableService(params TableServiceParams) usecase.TableUsecase {
	return &tableService{
		txManager: params.TxManager,
		tableRepo: params.TableRepo,
		qrService: params.QRService,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *tableService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTable adds an AVAILABLE table.
func (srv *tableService) CreateTable(ctx context.Context, number, capacity int) (*entity.Table, error) {
	table, ok := entity.NewTable(number, capacity)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidTable)
	}
	table.UpdatedAt = srv.now()

	if err := srv.tableRepo.Create(ctx, table); err != nil {
		return nil, mapTableError(err)
	}

	srv.log(ctx).Info("Table created", slog.Int("tableNumber", number), slog.Int("capacity", capacity))

	return table, nil
}

// GetTable returns a table, expiring a stale reservation first.
func (srv *tableService) GetTable(ctx context.Context, number int) (*entity.Table, error) {
	table, err := srv.tableRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, mapTableError(err)
	}

	if err := srv.expireReservation(ctx, table, srv.now()); err != nil {
		return nil, err
	}

	return table, nil
}

// expireReservation persists the lazy RESERVED -> AVAILABLE transition.
func (srv *tableService) expireReservation(ctx context.Context, table *entity.Table, now time.Time) error {
	if !table.ExpireReservation(now) {
		return nil
	}
	table.UpdatedAt = now

	if err := srv.tableRepo.Update(ctx, table); err != nil {
		return mapTableError(err)
	}
	srv.log(ctx).Debug("Reservation expired", slog.Int("tableNumber", table.Number))

	return nil
}

// ListTables lists tables ordered by capacity. Stale reservations are expired before the status filter applies.
func (srv *tableService) ListTables(ctx context.Context, filter repository.TableFilter) ([]*entity.Table, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown table status %q", *filter.Status)
	}

	query := filter
	if filter.Status != nil && *filter.Status == entity.TableStatusAvailable {
		// expired reservations are stored as RESERVED until read
		query.Status = nil
	}

	tables, err := srv.tableRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}

	now := srv.now()
	result := make([]*entity.Table, 0, len(tables))
	for _, table := range tables {
		if err := srv.expireReservation(ctx, table, now); err != nil {
			return nil, err
		}
		if filter.Status != nil && table.Status != *filter.Status {
			continue
		}
		result = append(result, table)
	}

	return result, nil
}

// OccupyTable seats customerID at an available table.
func (srv *tableService) OccupyTable(ctx context.Context, number int, customerID int64) (*entity.Table, error) {
	return srv.changeTable(ctx, number, func(table *entity.Table, now time.Time) error {
		if !table.Occupy(customerID, now) {
			return errors.Wrapf(domainerrors.ErrTableUnavailable, "table %d is %s", number, table.Status)
		}

		return nil
	})
}

// ReserveTable holds an available table until the given time.
func (srv *tableService) ReserveTable(ctx context.Context, number int, until time.Time) (*entity.Table, error) {
	return srv.changeTable(ctx, number, func(table *entity.Table, now time.Time) error {
		if !table.Reserve(until, now) {
			return errors.Wrapf(domainerrors.ErrInvalidReservation, "table %d is %s", number, table.CurrentStatus(now))
		}

		return nil
	})
}

// ReleaseTable makes a table AVAILABLE whatever its state.
func (srv *tableService) ReleaseTable(ctx context.Context, number int) (*entity.Table, error) {
	return srv.changeTable(ctx, number, func(table *entity.Table, _ time.Time) error {
		table.MakeAvailable()

		return nil
	})
}

// SetOutOfService takes a table out of rotation.
func (srv *tableService) SetOutOfService(ctx context.Context, number int, reason string) (*entity.Table, error) {
	return srv.changeTable(ctx, number, func(table *entity.Table, _ time.Time) error {
		table.SetOutOfService(strings.TrimSpace(reason))

		return nil
	})
}

// PutBackInService returns an out-of-service table to rotation.
func (srv *tableService) PutBackInService(ctx context.Context, number int) (*entity.Table, error) {
	return srv.changeTable(ctx, number, func(table *entity.Table, _ time.Time) error {
		if !table.PutBackInService() {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "table %d is not out of service", number)
		}

		return nil
	})
}

// UpdateTable changes capacity and notes.
func (srv *tableService) UpdateTable(ctx context.Context, number int, input usecase.UpdateTableInput) (*entity.Table, error) {
	return srv.changeTable(ctx, number, func(table *entity.Table, _ time.Time) error {
		if input.Capacity != nil && !table.SetCapacity(*input.Capacity) {
			return errors.WithStack(domainerrors.ErrInvalidTable)
		}
		if input.Notes != nil {
			table.Notes = strings.TrimSpace(*input.Notes)
		}

		return nil
	})
}

// changeTable locks the table row, applies change and saves the result.
func (srv *tableService) changeTable(ctx context.Context, number int, change func(table *entity.Table, now time.Time) error) (*entity.Table, error) {
	now := srv.now()

	var changed *entity.Table
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tableRepo := repoFactory.NewTableRepository()

		table, err := tableRepo.FindByNumberForUpdate(ctx, number)
		if err != nil {
			return mapTableError(err)
		}

		if err := change(table, now); err != nil {
			return err
		}
		table.UpdatedAt = now

		if err := tableRepo.Update(ctx, table); err != nil {
			return mapTableError(err)
		}
		changed = table

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to change table", slog.Int("tableNumber", number), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to change table")
	}

	srv.log(ctx).Info("Table changed", slog.Int("tableNumber", number), slog.String("status", string(changed.Status)))

	return changed, nil
}

// FindBestTable returns the smallest available table that seats partySize.
func (srv *tableService) FindBestTable(ctx context.Context, partySize int) (*entity.Table, error) {
	if partySize <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "party size must be positive")
	}

	available := entity.TableStatusAvailable
	tables, err := srv.ListTables(ctx, repository.TableFilter{Status: &available, MinCapacity: partySize})
	if err != nil {
		return nil, err
	}

	for _, table := range tables {
		if table.CanSeat(partySize) {
			return table, nil
		}
	}

	return nil, errors.Wrapf(domainerrors.ErrNoTableForParty, "party of %d", partySize)
}

// DeleteTable removes a table.
func (srv *tableService) DeleteTable(ctx context.Context, number int) error {
	if err := srv.tableRepo.Delete(ctx, number); err != nil {
		return mapTableError(err)
	}

	return nil
}

// Stats counts tables per status and the total seating capacity.
func (srv *tableService) Stats(ctx context.Context) (*entity.TableStats, error) {
	tables, err := srv.ListTables(ctx, repository.TableFilter{})
	if err != nil {
		return nil, err
	}

	stats := &entity.TableStats{TotalTables: int64(len(tables))}
	for _, table := range tables {
		stats.TotalCapacity += int64(table.Capacity)
		switch table.Status {
		case entity.TableStatusAvailable:
			stats.Available++
		case entity.TableStatusOccupied:
			stats.Occupied++
		case entity.TableStatusReserved:
			stats.Reserved++
		case entity.TableStatusOutOfService:
			stats.OutOfService++
		}
	}

	return stats, nil
}

// TableQRCode renders the QR code for an existing table.
func (srv *tableService) TableQRCode(ctx context.Context, number int) ([]byte, error) {
	if _, err := srv.tableRepo.FindByNumber(ctx, number); err != nil {
		return nil, mapTableError(err)
	}

	png, err := srv.qrService.GenerateTableQR(number)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate table QR code")
	}

	return png, nil
}

// ResolveTableQR returns the table a scanned QR code points at.
func (srv *tableService) ResolveTableQR(ctx context.Context, data string) (*entity.Table, error) {
	number, err := srv.qrService.ParseTableQR(data)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return srv.GetTable(ctx, number)
}

func mapTableError(err error) error {
	switch {
	case errors.Is(err, repository.ErrTableNotFound):
		return errors.WithStack(domainerrors.ErrTableNotFound)
	case errors.Is(err, repository.ErrTableAlreadyExists):
		return errors.WithStack(domainerrors.ErrTableAlreadyExists)
	}

	return errors.Wrap(err, "table repository")
}
