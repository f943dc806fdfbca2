package impl

import (
	"context"
	"testing"
	"time"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	mockRepo "coffeeshop/internal/mocks/repository"
	mockSvc "coffeeshop/internal/mocks/service"
	"coffeeshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tableServiceFixtures holds all test dependencies for table service tests.
type tableServiceFixtures struct {
	service   usecase.TableUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	tableRepo *mockRepo.MockTableRepository
	qrService *mockSvc.MockQRCodeService
}

func createTestTableService(t *testing.T) tableServiceFixtures {
	fx := tableServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		tableRepo: mockRepo.NewMockTableRepository(t),
		qrService: mockSvc.NewMockQRCodeService(t),
	}

	srv := NewTableService(TableServiceParams{
		TxManager: fx.txManager,
		TableRepo: fx.tableRepo,
		QRService: fx.qrService,
		Logger:    newDiscardLogger(),
	})
	srv.(*tableService).now = fixedNow
	fx.service = srv

	return fx
}

// expectLockedTable wires changeTable to operate on table.
func (fx tableServiceFixtures) expectLockedTable(ctx context.Context, table *entity.Table) {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewTableRepository().Return(fx.tableRepo)
	fx.tableRepo.EXPECT().FindByNumberForUpdate(ctx, table.Number).Return(table, nil)
}

func newTestTable(number, capacity int) *entity.Table {
	table, _ := entity.NewTable(number, capacity)

	return table
}

func reservedTable(number, capacity int, until time.Time) *entity.Table {
	table := newTestTable(number, capacity)
	table.Reserve(until, until.Add(-2*time.Hour))

	return table
}

func TestTableService_CreateTable(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.tableRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Table")).Return(nil).Once()
	fx.tableRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Table")).Return(repository.ErrTableAlreadyExists).Once()

	table, err := fx.service.CreateTable(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusAvailable, table.Status)
	assert.Equal(t, testNow, table.UpdatedAt)

	_, err = fx.service.CreateTable(ctx, 1, 4)
	assert.True(t, errors.Is(err, domainerrors.ErrTableAlreadyExists))

	_, err = fx.service.CreateTable(ctx, 2, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTable))
}

func TestTableService_GetTable_ExpiresStaleReservation(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()
	table := reservedTable(3, 2, testNow.Add(-time.Minute))

	fx.tableRepo.EXPECT().FindByNumber(ctx, 3).Return(table, nil)
	fx.tableRepo.EXPECT().Update(ctx, table).Return(nil)

	got, err := fx.service.GetTable(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusAvailable, got.Status)
	assert.Nil(t, got.ReservedUntil)
}

func TestTableService_GetTable_NotFound(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.tableRepo.EXPECT().FindByNumber(ctx, 9).Return(nil, repository.ErrTableNotFound)

	_, err := fx.service.GetTable(ctx, 9)
	assert.True(t, errors.Is(err, domainerrors.ErrTableNotFound))
}

func TestTableService_ListTables_AvailableIncludesExpiredReservations(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()
	free := newTestTable(1, 2)
	stale := reservedTable(2, 4, testNow.Add(-time.Minute))
	held := reservedTable(3, 4, testNow.Add(time.Hour))
	busy := newTestTable(4, 6)
	busy.Occupy(7, testNow)

	fx.tableRepo.EXPECT().
		List(ctx, repository.TableFilter{MinCapacity: 2}).
		Return([]*entity.Table{free, stale, held, busy}, nil)
	fx.tableRepo.EXPECT().Update(ctx, stale).Return(nil)

	available := entity.TableStatusAvailable
	tables, err := fx.service.ListTables(ctx, repository.TableFilter{Status: &available, MinCapacity: 2})
	require.NoError(t, err)
	assert.Equal(t, []*entity.Table{free, stale}, tables)
}

func TestTableService_ListTables_UnknownStatus(t *testing.T) {
	fx := createTestTableService(t)
	status := entity.TableStatus("BROKEN")

	_, err := fx.service.ListTables(context.Background(), repository.TableFilter{Status: &status})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTableService_OccupyTable(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()
	table := newTestTable(2, 4)

	fx.expectLockedTable(ctx, table)
	fx.tableRepo.EXPECT().Update(ctx, table).Return(nil)

	got, err := fx.service.OccupyTable(ctx, 2, 12)
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusOccupied, got.Status)
	assert.Equal(t, int64(12), got.CustomerID)
	require.NotNil(t, got.OccupiedSince)
	assert.Equal(t, testNow, *got.OccupiedSince)
}

func TestTableService_OccupyTable_AlreadyOccupied(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()
	table := newTestTable(2, 4)
	table.Occupy(3, testNow.Add(-time.Hour))

	fx.expectLockedTable(ctx, table)

	_, err := fx.service.OccupyTable(ctx, 2, 12)
	assert.True(t, errors.Is(err, domainerrors.ErrTableUnavailable))
	assert.Equal(t, int64(3), table.CustomerID)
}

func TestTableService_ReserveTable_RejectsPastTime(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()
	table := newTestTable(2, 4)

	fx.expectLockedTable(ctx, table)

	_, err := fx.service.ReserveTable(ctx, 2, testNow.Add(-time.Minute))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReservation))
	assert.Equal(t, entity.TableStatusAvailable, table.Status)
}

func TestTableService_OutOfServiceRoundTrip(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()
	table := newTestTable(2, 4)
	table.Occupy(3, testNow)

	fx.expectLockedTable(ctx, table)
	fx.tableRepo.EXPECT().Update(ctx, table).Return(nil)

	got, err := fx.service.SetOutOfService(ctx, 2, " ")
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusOutOfService, got.Status)
	assert.Equal(t, entity.DefaultOutOfServiceReason, got.Notes)
	assert.Zero(t, got.CustomerID)

	got, err = fx.service.PutBackInService(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.TableStatusAvailable, got.Status)
	assert.Empty(t, got.Notes)

	_, err = fx.service.PutBackInService(ctx, 2)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTableService_UpdateTable_InvalidCapacity(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()
	table := newTestTable(2, 4)
	capacity := 0

	fx.expectLockedTable(ctx, table)

	_, err := fx.service.UpdateTable(ctx, 2, usecase.UpdateTableInput{Capacity: &capacity})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTable))
	assert.Equal(t, 4, table.Capacity)
}

func TestTableService_FindBestTable(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()
	small := newTestTable(1, 4)
	large := newTestTable(2, 6)

	fx.tableRepo.EXPECT().
		List(ctx, repository.TableFilter{MinCapacity: 3}).
		Return([]*entity.Table{small, large}, nil).Once()
	fx.tableRepo.EXPECT().
		List(ctx, repository.TableFilter{MinCapacity: 10}).
		Return([]*entity.Table{}, nil).Once()

	best, err := fx.service.FindBestTable(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, best.Number)

	_, err = fx.service.FindBestTable(ctx, 10)
	assert.True(t, errors.Is(err, domainerrors.ErrNoTableForParty))

	_, err = fx.service.FindBestTable(ctx, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTableService_Stats(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()
	busy := newTestTable(2, 4)
	busy.Occupy(1, testNow)
	broken := newTestTable(3, 2)
	broken.SetOutOfService("leg")

	fx.tableRepo.EXPECT().
		List(ctx, repository.TableFilter{}).
		Return([]*entity.Table{newTestTable(1, 2), busy, broken}, nil)

	stats, err := fx.service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.TableStats{
		TotalTables:   3,
		Available:     1,
		Occupied:      1,
		OutOfService:  1,
		TotalCapacity: 8,
	}, *stats)
}

func TestTableService_TableQRCode(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()

	fx.tableRepo.EXPECT().FindByNumber(ctx, 5).Return(newTestTable(5, 2), nil)
	fx.qrService.EXPECT().GenerateTableQR(5).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.TableQRCode(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestTableService_ResolveTableQR(t *testing.T) {
	fx := createTestTableService(t)
	ctx := context.Background()
	table := newTestTable(5, 2)

	fx.qrService.EXPECT().ParseTableQR("coffeeshop://table/5").Return(5, nil)
	fx.qrService.EXPECT().ParseTableQR("garbage").Return(0, errors.New("not a table code"))
	fx.tableRepo.EXPECT().FindByNumber(ctx, 5).Return(table, nil)

	got, err := fx.service.ResolveTableQR(ctx, "coffeeshop://table/5")
	require.NoError(t, err)
	assert.Same(t, table, got)

	_, err = fx.service.ResolveTableQR(ctx, "garbage")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
