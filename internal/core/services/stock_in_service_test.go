// internal/core/services/stock_in_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/ports"
	"github.com/renewcart/buyback-be/internal/core/services"
	"github.com/renewcart/buyback-be/internal/pkg/apperror"
	"github.com/renewcart/buyback-be/test/helpers"
	"github.com/renewcart/buyback-be/test/mocks"
)

type stockInFixture struct {
	devices    *mocks.MockDeviceRepository
	grades     *mocks.MockGradeRepository
	gradeLog   *mocks.MockDeviceGradeRepository
	mappings   *mocks.MockSkuMappingService
	stock      *mocks.MockStockRepository
	events     *mocks.MockDeviceEventRepository
	warehouses *mocks.MockWarehouseRepository
	actors     *mocks.MockActorRepository
	tests      *mocks.MockTestResultRepository
	tx         *mocks.MockTransactor
	service    *services.StockInService
}

func newStockInFixture(t *testing.T) *stockInFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &stockInFixture{
		devices:    mocks.NewMockDeviceRepository(ctrl),
		grades:     mocks.NewMockGradeRepository(ctrl),
		gradeLog:   mocks.NewMockDeviceGradeRepository(ctrl),
		mappings:   mocks.NewMockSkuMappingService(ctrl),
		stock:      mocks.NewMockStockRepository(ctrl),
		events:     mocks.NewMockDeviceEventRepository(ctrl),
		warehouses: mocks.NewMockWarehouseRepository(ctrl),
		actors:     mocks.NewMockActorRepository(ctrl),
		tests:      mocks.NewMockTestResultRepository(ctrl),
		tx:         mocks.NewMockTransactor(ctrl),
	}
	f.service = services.NewStockInService(
		f.devices, f.grades, f.gradeLog, f.mappings, f.stock, f.events,
		f.warehouses, f.actors, f.tests, f.tx, helpers.TestLogger(),
	)
	return f
}

// passTransaction makes the mock transactor execute the closure with a nil
// Querier; the repositories inside are mocks and never touch it.
func (f *stockInFixture) passTransaction() {
	f.tx.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, ports.Querier) error) error {
			return fn(ctx, nil)
		})
}

func TestStockInService_ProcessStockIn_Success(t *testing.T) {
	f := newStockInFixture(t)

	tenantID := uuid.New()
	actorID := uuid.New()
	device := helpers.CreateTestDevice(tenantID)
	grade := helpers.CreateTestGrade(tenantID)
	warehouse := &domain.Warehouse{ID: uuid.New(), Name: "Main"}
	actor := &domain.Actor{ID: actorID, Name: "Operator One"}
	test := helpers.CreateTestResultFor(device)

	req := ports.StockInRequest{
		IMEI:        device.IMEI,
		GradeID:     grade.ID,
		WarehouseID: warehouse.ID,
		UnitValue:   decimal.NewFromFloat(120.50),
		Remarks:     "first intake",
	}

	f.devices.EXPECT().FindByIMEI(gomock.Any(), device.IMEI, tenantID).Return(device, nil)
	f.grades.EXPECT().FindByID(gomock.Any(), grade.ID, tenantID).Return(grade, nil)
	f.warehouses.EXPECT().FindByID(gomock.Any(), warehouse.ID).Return(warehouse, nil)
	f.actors.EXPECT().FindByID(gomock.Any(), actorID).Return(actor, nil)
	f.gradeLog.EXPECT().CurrentActive(gomock.Any(), device.ID, tenantID).Return(nil, nil)
	f.tests.EXPECT().LatestByDevice(gomock.Any(), device.ID, tenantID).Return(test, nil)
	f.mappings.EXPECT().
		ResolveSKU(gomock.Any(), gomock.Any(), tenantID).
		DoAndReturn(func(ctx context.Context, conditions map[string]string, _ uuid.UUID) (string, error) {
			assert.Equal(t, grade.Name, conditions[domain.ConditionKeyGrade])
			assert.Equal(t, device.Make, conditions[domain.ConditionKeyMake])
			assert.Equal(t, device.ModelName, conditions[domain.ConditionKeyModel])
			return "IP13-128-MID-A", nil
		})

	f.passTransaction()
	gomock.InOrder(
		f.gradeLog.EXPECT().
			Insert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, record *domain.DeviceGradeRecord) error {
				assert.Equal(t, device.ID, record.DeviceID)
				assert.Equal(t, grade.ID, record.GradeID)
				assert.True(t, record.IsActive())
				return nil
			}),
		f.stock.EXPECT().EnsureLevel(gomock.Any(), gomock.Any(), "IP13-128-MID-A", warehouse.ID, tenantID).Return(nil),
		f.stock.EXPECT().
			AppendMovement(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, movement *domain.StockMovement) error {
				assert.Equal(t, 1, movement.Delta)
				assert.Equal(t, domain.ReasonPurchase, movement.Reason)
				assert.Equal(t, domain.RefTypeStockIn, movement.RefType)
				assert.Equal(t, device.ID, movement.RefID)
				assert.True(t, movement.UnitValue.Equal(decimal.NewFromFloat(120.50)))
				return nil
			}),
		f.stock.EXPECT().LinkUnit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		f.events.EXPECT().
			Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, event *domain.DeviceEvent) error {
				assert.Equal(t, domain.EventTestCompleted, event.EventType)
				assert.Equal(t, "stock_in", event.Details.Action)
				assert.Equal(t, grade.Name, event.Details.GradeName)
				assert.Equal(t, "first intake", event.Details.Remarks)
				return nil
			}),
	)

	result, err := f.service.ProcessStockIn(context.Background(), req, actorID, tenantID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, device.ID, result.DeviceID)
	assert.Equal(t, "IP13-128-MID-A", result.SKU)
	assert.Equal(t, grade.Name, result.GradeName)
	assert.Equal(t, warehouse.Name, result.WarehouseName)
	assert.Equal(t, "device stocked in", result.Message)
}

func TestStockInService_ProcessStockIn_RegradeDeactivatesPrevious(t *testing.T) {
	f := newStockInFixture(t)

	tenantID := uuid.New()
	actorID := uuid.New()
	device := helpers.CreateTestDevice(tenantID)
	grade := helpers.CreateTestGrade(tenantID, func(g *domain.Grade) { g.Name = "B" })
	warehouse := &domain.Warehouse{ID: uuid.New(), Name: "Main"}
	actor := &domain.Actor{ID: actorID, Name: "Operator One"}
	previous := domain.NewDeviceGradeRecord(device.ID, uuid.New(), actorID, tenantID)

	req := ports.StockInRequest{
		IMEI:        device.IMEI,
		GradeID:     grade.ID,
		WarehouseID: warehouse.ID,
		SKU:         "MANUAL-SKU-01",
	}

	f.devices.EXPECT().FindByIMEI(gomock.Any(), device.IMEI, tenantID).Return(device, nil)
	f.grades.EXPECT().FindByID(gomock.Any(), grade.ID, tenantID).Return(grade, nil)
	f.warehouses.EXPECT().FindByID(gomock.Any(), warehouse.ID).Return(warehouse, nil)
	f.actors.EXPECT().FindByID(gomock.Any(), actorID).Return(actor, nil)
	f.tests.EXPECT().LatestByDevice(gomock.Any(), device.ID, tenantID).Return(helpers.CreateTestResultFor(device), nil)
	f.gradeLog.EXPECT().CurrentActive(gomock.Any(), device.ID, tenantID).Return(previous, nil)

	f.passTransaction()
	gomock.InOrder(
		f.gradeLog.EXPECT().Deactivate(gomock.Any(), gomock.Any(), previous.ID).Return(nil),
		f.gradeLog.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		f.stock.EXPECT().EnsureLevel(gomock.Any(), gomock.Any(), "MANUAL-SKU-01", warehouse.ID, tenantID).Return(nil),
		f.stock.EXPECT().AppendMovement(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		f.stock.EXPECT().LinkUnit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		f.events.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)

	result, err := f.service.ProcessStockIn(context.Background(), req, actorID, tenantID)
	require.NoError(t, err)
	assert.Equal(t, "MANUAL-SKU-01", result.SKU)
}

func TestStockInService_ProcessStockIn_Failures(t *testing.T) {
	tenantID := uuid.New()
	actorID := uuid.New()
	gradeID := uuid.New()
	warehouseID := uuid.New()

	baseReq := func() ports.StockInRequest {
		return ports.StockInRequest{
			IMEI:        "356938035643809",
			GradeID:     gradeID,
			WarehouseID: warehouseID,
		}
	}

	tests := []struct {
		name         string
		req          func() ports.StockInRequest
		setupMocks   func(f *stockInFixture, device *domain.Device, grade *domain.Grade)
		expectedKind apperror.Kind
		errContains  string
	}{
		{
			name: "missing_imei",
			req: func() ports.StockInRequest {
				r := baseReq()
				r.IMEI = "  "
				return r
			},
			setupMocks:   func(f *stockInFixture, device *domain.Device, grade *domain.Grade) {},
			expectedKind: apperror.KindBadRequest,
			errContains:  "imei is required",
		},
		{
			name: "missing_grade_id",
			req: func() ports.StockInRequest {
				r := baseReq()
				r.GradeID = uuid.Nil
				return r
			},
			setupMocks:   func(f *stockInFixture, device *domain.Device, grade *domain.Grade) {},
			expectedKind: apperror.KindBadRequest,
			errContains:  "grade_id is required",
		},
		{
			name: "negative_unit_value",
			req: func() ports.StockInRequest {
				r := baseReq()
				r.UnitValue = decimal.NewFromFloat(-1)
				return r
			},
			setupMocks:   func(f *stockInFixture, device *domain.Device, grade *domain.Grade) {},
			expectedKind: apperror.KindBadRequest,
			errContains:  "unit_value cannot be negative",
		},
		{
			name: "unknown_device",
			req:  baseReq,
			setupMocks: func(f *stockInFixture, device *domain.Device, grade *domain.Grade) {
				f.devices.EXPECT().FindByIMEI(gomock.Any(), gomock.Any(), tenantID).Return(nil, nil)
			},
			expectedKind: apperror.KindNotFound,
			errContains:  "device not found",
		},
		{
			name: "unknown_grade",
			req:  baseReq,
			setupMocks: func(f *stockInFixture, device *domain.Device, grade *domain.Grade) {
				f.devices.EXPECT().FindByIMEI(gomock.Any(), gomock.Any(), tenantID).Return(device, nil)
				f.grades.EXPECT().FindByID(gomock.Any(), gradeID, tenantID).Return(nil, nil)
			},
			expectedKind: apperror.KindNotFound,
			errContains:  "grade not found",
		},
		{
			name: "unknown_warehouse",
			req:  baseReq,
			setupMocks: func(f *stockInFixture, device *domain.Device, grade *domain.Grade) {
				f.devices.EXPECT().FindByIMEI(gomock.Any(), gomock.Any(), tenantID).Return(device, nil)
				f.grades.EXPECT().FindByID(gomock.Any(), gradeID, tenantID).Return(grade, nil)
				f.warehouses.EXPECT().FindByID(gomock.Any(), warehouseID).Return(nil, nil)
			},
			expectedKind: apperror.KindNotFound,
			errContains:  "warehouse not found",
		},
		{
			name: "same_grade_conflict",
			req:  baseReq,
			setupMocks: func(f *stockInFixture, device *domain.Device, grade *domain.Grade) {
				f.devices.EXPECT().FindByIMEI(gomock.Any(), gomock.Any(), tenantID).Return(device, nil)
				f.grades.EXPECT().FindByID(gomock.Any(), gradeID, tenantID).Return(grade, nil)
				f.warehouses.EXPECT().FindByID(gomock.Any(), warehouseID).Return(&domain.Warehouse{ID: warehouseID, Name: "Main"}, nil)
				f.actors.EXPECT().FindByID(gomock.Any(), actorID).Return(&domain.Actor{ID: actorID, Name: "Op"}, nil)
				f.tests.EXPECT().LatestByDevice(gomock.Any(), device.ID, tenantID).Return(helpers.CreateTestResultFor(device), nil)
				current := domain.NewDeviceGradeRecord(device.ID, grade.ID, actorID, tenantID)
				f.gradeLog.EXPECT().CurrentActive(gomock.Any(), device.ID, tenantID).Return(current, nil)
			},
			expectedKind: apperror.KindConflict,
			errContains:  "device already has this grade",
		},
		{
			name: "no_test_result",
			req:  baseReq,
			setupMocks: func(f *stockInFixture, device *domain.Device, grade *domain.Grade) {
				f.devices.EXPECT().FindByIMEI(gomock.Any(), gomock.Any(), tenantID).Return(device, nil)
				f.grades.EXPECT().FindByID(gomock.Any(), gradeID, tenantID).Return(grade, nil)
				f.warehouses.EXPECT().FindByID(gomock.Any(), warehouseID).Return(&domain.Warehouse{ID: warehouseID, Name: "Main"}, nil)
				f.actors.EXPECT().FindByID(gomock.Any(), actorID).Return(&domain.Actor{ID: actorID, Name: "Op"}, nil)
				f.tests.EXPECT().LatestByDevice(gomock.Any(), device.ID, tenantID).Return(nil, nil)
			},
			expectedKind: apperror.KindNotFound,
			errContains:  "no test result",
		},
		{
			name: "no_test_result_even_with_override",
			req: func() ports.StockInRequest {
				r := baseReq()
				r.SKU = "MANUAL-SKU-01"
				return r
			},
			setupMocks: func(f *stockInFixture, device *domain.Device, grade *domain.Grade) {
				f.devices.EXPECT().FindByIMEI(gomock.Any(), gomock.Any(), tenantID).Return(device, nil)
				f.grades.EXPECT().FindByID(gomock.Any(), gradeID, tenantID).Return(grade, nil)
				f.warehouses.EXPECT().FindByID(gomock.Any(), warehouseID).Return(&domain.Warehouse{ID: warehouseID, Name: "Main"}, nil)
				f.actors.EXPECT().FindByID(gomock.Any(), actorID).Return(&domain.Actor{ID: actorID, Name: "Op"}, nil)
				f.tests.EXPECT().LatestByDevice(gomock.Any(), device.ID, tenantID).Return(nil, nil)
			},
			expectedKind: apperror.KindNotFound,
			errContains:  "no test result",
		},
		{
			name: "unmapped_conditions",
			req:  baseReq,
			setupMocks: func(f *stockInFixture, device *domain.Device, grade *domain.Grade) {
				f.devices.EXPECT().FindByIMEI(gomock.Any(), gomock.Any(), tenantID).Return(device, nil)
				f.grades.EXPECT().FindByID(gomock.Any(), gradeID, tenantID).Return(grade, nil)
				f.warehouses.EXPECT().FindByID(gomock.Any(), warehouseID).Return(&domain.Warehouse{ID: warehouseID, Name: "Main"}, nil)
				f.actors.EXPECT().FindByID(gomock.Any(), actorID).Return(&domain.Actor{ID: actorID, Name: "Op"}, nil)
				f.gradeLog.EXPECT().CurrentActive(gomock.Any(), device.ID, tenantID).Return(nil, nil)
				f.tests.EXPECT().LatestByDevice(gomock.Any(), device.ID, tenantID).Return(helpers.CreateTestResultFor(device), nil)
				f.mappings.EXPECT().ResolveSKU(gomock.Any(), gomock.Any(), tenantID).Return("", nil)
			},
			expectedKind: apperror.KindBadRequest,
			errContains:  "SKU not found, supply manually",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStockInFixture(t)
			device := helpers.CreateTestDevice(tenantID)
			grade := helpers.CreateTestGrade(tenantID, func(g *domain.Grade) { g.ID = gradeID })
			tt.setupMocks(f, device, grade)

			result, err := f.service.ProcessStockIn(context.Background(), tt.req(), actorID, tenantID)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperror.IsKind(err, tt.expectedKind),
				"expected kind %v, got %v", tt.expectedKind, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestStockInService_ProcessStockIn_TransactionErrorPassesThrough(t *testing.T) {
	f := newStockInFixture(t)

	tenantID := uuid.New()
	actorID := uuid.New()
	device := helpers.CreateTestDevice(tenantID)
	grade := helpers.CreateTestGrade(tenantID)
	warehouse := &domain.Warehouse{ID: uuid.New(), Name: "Main"}

	req := ports.StockInRequest{
		IMEI:        device.IMEI,
		GradeID:     grade.ID,
		WarehouseID: warehouse.ID,
		SKU:         "MANUAL-SKU-01",
	}

	f.devices.EXPECT().FindByIMEI(gomock.Any(), device.IMEI, tenantID).Return(device, nil)
	f.grades.EXPECT().FindByID(gomock.Any(), grade.ID, tenantID).Return(grade, nil)
	f.warehouses.EXPECT().FindByID(gomock.Any(), warehouse.ID).Return(warehouse, nil)
	f.actors.EXPECT().FindByID(gomock.Any(), actorID).Return(&domain.Actor{ID: actorID, Name: "Op"}, nil)
	f.tests.EXPECT().LatestByDevice(gomock.Any(), device.ID, tenantID).Return(helpers.CreateTestResultFor(device), nil)
	f.gradeLog.EXPECT().CurrentActive(gomock.Any(), device.ID, tenantID).Return(nil, nil)
	f.tx.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		Return(errors.New("deadlock detected"))

	result, err := f.service.ProcessStockIn(context.Background(), req, actorID, tenantID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperror.IsKind(err, apperror.KindInternal))
}

// A concurrent stock-in can slip past the read-only guard; the partial
// unique index then rejects the insert inside the transaction and the
// loser still gets a Conflict, not a 500.
func TestStockInService_ProcessStockIn_ConcurrentGradeInsertConflict(t *testing.T) {
	f := newStockInFixture(t)

	tenantID := uuid.New()
	actorID := uuid.New()
	device := helpers.CreateTestDevice(tenantID)
	grade := helpers.CreateTestGrade(tenantID)
	warehouse := &domain.Warehouse{ID: uuid.New(), Name: "Main"}

	req := ports.StockInRequest{
		IMEI:        device.IMEI,
		GradeID:     grade.ID,
		WarehouseID: warehouse.ID,
		SKU:         "MANUAL-SKU-01",
	}

	f.devices.EXPECT().FindByIMEI(gomock.Any(), device.IMEI, tenantID).Return(device, nil)
	f.grades.EXPECT().FindByID(gomock.Any(), grade.ID, tenantID).Return(grade, nil)
	f.warehouses.EXPECT().FindByID(gomock.Any(), warehouse.ID).Return(warehouse, nil)
	f.actors.EXPECT().FindByID(gomock.Any(), actorID).Return(&domain.Actor{ID: actorID, Name: "Op"}, nil)
	f.tests.EXPECT().LatestByDevice(gomock.Any(), device.ID, tenantID).Return(helpers.CreateTestResultFor(device), nil)
	f.gradeLog.EXPECT().CurrentActive(gomock.Any(), device.ID, tenantID).Return(nil, nil)

	f.passTransaction()
	f.gradeLog.EXPECT().
		Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperror.Conflict("device already has this grade"))

	result, err := f.service.ProcessStockIn(context.Background(), req, actorID, tenantID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	assert.Contains(t, err.Error(), "device already has this grade")
}

func TestStockInService_GradeHistory(t *testing.T) {
	f := newStockInFixture(t)

	tenantID := uuid.New()
	device := helpers.CreateTestDevice(tenantID)
	records := []*domain.DeviceGradeRecord{
		domain.NewDeviceGradeRecord(device.ID, uuid.New(), uuid.New(), tenantID),
	}

	f.devices.EXPECT().FindByIMEI(gomock.Any(), device.IMEI, tenantID).Return(device, nil)
	f.gradeLog.EXPECT().History(gomock.Any(), device.ID, tenantID).Return(records, nil)

	got, err := f.service.GradeHistory(context.Background(), device.IMEI, tenantID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStockInService_Events_UnknownDevice(t *testing.T) {
	f := newStockInFixture(t)

	tenantID := uuid.New()
	f.devices.EXPECT().FindByIMEI(gomock.Any(), "000000000000000", tenantID).Return(nil, nil)

	got, err := f.service.Events(context.Background(), "000000000000000", tenantID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
