// internal/adapters/db/stock_repository_test.go
package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renewcart/buyback-be/internal/adapters/db"
	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/ports"
	"github.com/renewcart/buyback-be/internal/pkg/apperror"
	"github.com/renewcart/buyback-be/test/helpers"
)

func TestStockRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := helpers.SetupTestDB(t)
	repo := db.NewStockRepository(testDB.Database)
	ctx := context.Background()

	tenantID := helpers.SeedTenant(t, testDB.PgxPool, "Acme Resale")
	warehouseID := helpers.SeedWarehouse(t, testDB.PgxPool, "Main Warehouse")
	actorID := helpers.SeedActor(t, testDB.PgxPool, "Tester")

	newMovement := func(sku string, delta int) *domain.StockMovement {
		return &domain.StockMovement{
			SKU:         sku,
			WarehouseID: warehouseID,
			TenantID:    tenantID,
			Delta:       delta,
			Reason:      domain.ReasonPurchase,
			RefType:     domain.RefTypeStockIn,
			RefID:       uuid.New(),
			ActorID:     actorID,
			UnitValue:   decimal.NewFromFloat(120.50),
		}
	}

	t.Run("EnsureLevel_is_idempotent", func(t *testing.T) {
		require.NoError(t, repo.EnsureLevel(ctx, testDB.Database, "SKU-IDEM", warehouseID, tenantID))
		require.NoError(t, repo.EnsureLevel(ctx, testDB.Database, "SKU-IDEM", warehouseID, tenantID))

		var count int
		err := testDB.PgxPool.QueryRow(ctx,
			`SELECT COUNT(*) FROM stock_levels WHERE sku = $1 AND warehouse_id = $2 AND tenant_id = $3`,
			"SKU-IDEM", warehouseID, tenantID).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("AppendMovement_increments_level", func(t *testing.T) {
		require.NoError(t, repo.EnsureLevel(ctx, testDB.Database, "SKU-INC", warehouseID, tenantID))
		require.NoError(t, repo.AppendMovement(ctx, testDB.Database, newMovement("SKU-INC", 1)))
		require.NoError(t, repo.AppendMovement(ctx, testDB.Database, newMovement("SKU-INC", 2)))

		var quantity int
		err := testDB.PgxPool.QueryRow(ctx,
			`SELECT quantity FROM stock_levels WHERE sku = $1 AND warehouse_id = $2 AND tenant_id = $3`,
			"SKU-INC", warehouseID, tenantID).Scan(&quantity)
		require.NoError(t, err)
		assert.Equal(t, 3, quantity)
	})

	t.Run("AppendMovement_requires_level_row", func(t *testing.T) {
		err := repo.AppendMovement(ctx, testDB.Database, newMovement("SKU-NO-LEVEL", 1))
		require.Error(t, err)
	})

	t.Run("AppendMovement_rolls_back_with_transaction", func(t *testing.T) {
		require.NoError(t, repo.EnsureLevel(ctx, testDB.Database, "SKU-TX", warehouseID, tenantID))

		err := testDB.Database.Transaction(ctx, func(ctx context.Context, q ports.Querier) error {
			if err := repo.AppendMovement(ctx, q, newMovement("SKU-TX", 5)); err != nil {
				return err
			}
			return errors.New("forced rollback")
		})
		require.Error(t, err)

		var quantity, movements int
		require.NoError(t, testDB.PgxPool.QueryRow(ctx,
			`SELECT quantity FROM stock_levels WHERE sku = $1 AND warehouse_id = $2 AND tenant_id = $3`,
			"SKU-TX", warehouseID, tenantID).Scan(&quantity))
		require.NoError(t, testDB.PgxPool.QueryRow(ctx,
			`SELECT COUNT(*) FROM stock_movements WHERE sku = $1 AND tenant_id = $2`,
			"SKU-TX", tenantID).Scan(&movements))

		assert.Equal(t, 0, quantity)
		assert.Equal(t, 0, movements)
	})

	t.Run("Movements_filters_and_paginates", func(t *testing.T) {
		require.NoError(t, repo.EnsureLevel(ctx, testDB.Database, "SKU-PAGE", warehouseID, tenantID))
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.AppendMovement(ctx, testDB.Database, newMovement("SKU-PAGE", 1)))
		}

		movements, total, err := repo.Movements(ctx, tenantID, ports.MovementListParams{
			SKU:      "SKU-PAGE",
			Page:     1,
			PageSize: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, movements, 2)
		for _, m := range movements {
			assert.Equal(t, "SKU-PAGE", m.SKU)
			assert.Equal(t, domain.ReasonPurchase, m.Reason)
		}
	})

	t.Run("Reconcile_reports_drift", func(t *testing.T) {
		require.NoError(t, repo.EnsureLevel(ctx, testDB.Database, "SKU-DRIFT", warehouseID, tenantID))
		require.NoError(t, repo.AppendMovement(ctx, testDB.Database, newMovement("SKU-DRIFT", 2)))

		// Corrupt the level row behind the ledger's back
		_, err := testDB.PgxPool.Exec(ctx,
			`UPDATE stock_levels SET quantity = quantity + 1 WHERE sku = $1 AND tenant_id = $2`,
			"SKU-DRIFT", tenantID)
		require.NoError(t, err)

		entries, err := repo.Reconcile(ctx, tenantID)
		require.NoError(t, err)

		var drifted *domain.ReconciliationEntry
		for _, e := range entries {
			if e.SKU == "SKU-DRIFT" {
				drifted = e
			}
		}
		require.NotNil(t, drifted)
		assert.Equal(t, 3, drifted.Quantity)
		assert.Equal(t, 2, drifted.LedgerSum)
		assert.Equal(t, 1, drifted.Drift)
		assert.False(t, drifted.InSync())
	})
}

func TestDeviceGradeRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := helpers.SetupTestDB(t)
	deviceRepo := db.NewDeviceRepository(testDB.Database)
	gradeRepo := db.NewGradeRepository(testDB.Database)
	repo := db.NewDeviceGradeRepository(testDB.Database)
	ctx := context.Background()

	tenantID := helpers.SeedTenant(t, testDB.PgxPool, "Acme Resale")
	actorID := helpers.SeedActor(t, testDB.PgxPool, "Tester")

	device := helpers.CreateTestDevice(tenantID)
	require.NoError(t, deviceRepo.Save(ctx, device))

	gradeA := helpers.CreateTestGrade(tenantID)
	gradeB := helpers.CreateTestGrade(tenantID, func(g *domain.Grade) { g.Name = "B" })
	require.NoError(t, gradeRepo.Save(ctx, gradeA))
	require.NoError(t, gradeRepo.Save(ctx, gradeB))

	t.Run("one_active_grade_per_device", func(t *testing.T) {
		first := domain.NewDeviceGradeRecord(device.ID, gradeA.ID, actorID, tenantID)
		require.NoError(t, repo.Insert(ctx, testDB.Database, first))

		// A second active row for the same device trips the partial unique
		// index, surfaced as a Conflict
		second := domain.NewDeviceGradeRecord(device.ID, gradeB.ID, actorID, tenantID)
		err := repo.Insert(ctx, testDB.Database, second)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))

		// Deactivating the current grade clears the way
		require.NoError(t, repo.Deactivate(ctx, testDB.Database, first.ID))
		require.NoError(t, repo.Insert(ctx, testDB.Database, second))

		active, err := repo.CurrentActive(ctx, device.ID, tenantID)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, gradeB.ID, active.GradeID)

		history, err := repo.History(ctx, device.ID, tenantID)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})
}
