// internal/workers/reconcile_processor_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/renewcart/buyback-be/internal/adapters/storage"
	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/workers"
	"github.com/renewcart/buyback-be/test/helpers"
	"github.com/renewcart/buyback-be/test/mocks"
)

func TestNewReconcileTask(t *testing.T) {
	tenantID := uuid.New()

	task, err := workers.NewReconcileTask(tenantID)
	require.NoError(t, err)
	assert.Equal(t, workers.TypeStockReconcile, task.Type())

	var payload workers.ReconcilePayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, tenantID, payload.TenantID)
}

func TestReconcileProcessor_ProcessReconcile(t *testing.T) {
	tenantID := uuid.New()
	warehouseID := uuid.New()

	newTask := func(t *testing.T) *asynq.Task {
		t.Helper()
		task, err := workers.NewReconcileTask(tenantID)
		require.NoError(t, err)
		return task
	}

	t.Run("writes_report_to_storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReconcileService(ctrl)

		dir := t.TempDir()
		local := storage.NewLocalStorage(dir, helpers.TestLogger())
		processor := workers.NewReconcileProcessor(service, local, "reports/reconcile", helpers.TestLogger())

		entries := []*domain.ReconciliationEntry{
			{SKU: "SKU-OK", WarehouseID: warehouseID, TenantID: tenantID, Quantity: 5, LedgerSum: 5},
			{SKU: "SKU-DRIFT", WarehouseID: warehouseID, TenantID: tenantID, Quantity: 7, LedgerSum: 5, Drift: 2},
		}
		service.EXPECT().Run(gomock.Any(), tenantID).Return(entries, nil)

		require.NoError(t, processor.ProcessReconcile(context.Background(), newTask(t)))

		keys, err := local.List(context.Background(), "reports/reconcile/"+tenantID.String())
		require.NoError(t, err)
		require.Len(t, keys, 1)
		assert.Contains(t, keys[0], ".xlsx")

		data, err := local.Download(context.Background(), keys[0])
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})

	t.Run("service_error_fails_task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReconcileService(ctrl)

		local := storage.NewLocalStorage(t.TempDir(), helpers.TestLogger())
		processor := workers.NewReconcileProcessor(service, local, "reports/reconcile", helpers.TestLogger())

		service.EXPECT().Run(gomock.Any(), tenantID).Return(nil, errors.New("connection refused"))

		err := processor.ProcessReconcile(context.Background(), newTask(t))
		require.Error(t, err)
	})

	t.Run("malformed_payload_fails_task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReconcileService(ctrl)

		local := storage.NewLocalStorage(t.TempDir(), helpers.TestLogger())
		processor := workers.NewReconcileProcessor(service, local, "reports/reconcile", helpers.TestLogger())

		task := asynq.NewTask(workers.TypeStockReconcile, []byte("{not json"))
		err := processor.ProcessReconcile(context.Background(), task)
		require.Error(t, err)
	})
}

func TestReconcileScanner_ProcessScan(t *testing.T) {
	t.Run("tenant_listing_error_fails_task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tenants := mocks.NewMockTenantRepository(ctrl)
		scanner := workers.NewReconcileScanner(tenants, nil, helpers.TestLogger())

		tenants.EXPECT().ListIDs(gomock.Any()).Return(nil, errors.New("connection refused"))

		err := scanner.ProcessScan(context.Background(), asynq.NewTask(workers.TypeStockReconcileScan, nil))
		require.Error(t, err)
	})

	t.Run("no_tenants_is_a_noop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tenants := mocks.NewMockTenantRepository(ctrl)
		scanner := workers.NewReconcileScanner(tenants, nil, helpers.TestLogger())

		tenants.EXPECT().ListIDs(gomock.Any()).Return(nil, nil)

		require.NoError(t, scanner.ProcessScan(context.Background(), asynq.NewTask(workers.TypeStockReconcileScan, nil)))
	})
}
