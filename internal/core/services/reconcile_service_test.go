// internal/core/services/reconcile_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/services"
	"github.com/renewcart/buyback-be/test/helpers"
	"github.com/renewcart/buyback-be/test/mocks"
)

func TestReconcileService_Run(t *testing.T) {
	tenantID := uuid.New()
	warehouseID := uuid.New()

	t.Run("reports_drift_without_correcting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stock := mocks.NewMockStockRepository(ctrl)
		svc := services.NewReconcileService(stock, helpers.TestLogger())

		entries := []*domain.ReconciliationEntry{
			{SKU: "SKU-OK", WarehouseID: warehouseID, TenantID: tenantID, Quantity: 5, LedgerSum: 5, Drift: 0},
			{SKU: "SKU-DRIFT", WarehouseID: warehouseID, TenantID: tenantID, Quantity: 7, LedgerSum: 5, Drift: 2},
		}
		// Only a read; no write expectations on the repository.
		stock.EXPECT().Reconcile(gomock.Any(), tenantID).Return(entries, nil)

		got, err := svc.Run(context.Background(), tenantID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.True(t, got[0].InSync())
		assert.False(t, got[1].InSync())
	})

	t.Run("repository_error_surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stock := mocks.NewMockStockRepository(ctrl)
		svc := services.NewReconcileService(stock, helpers.TestLogger())

		stock.EXPECT().Reconcile(gomock.Any(), tenantID).Return(nil, errors.New("connection refused"))

		got, err := svc.Run(context.Background(), tenantID)
		require.Error(t, err)
		assert.Nil(t, got)
	})
}
