// internal/workers/reconcile_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/tealeg/xlsx/v3"

	"github.com/renewcart/buyback-be/internal/adapters/storage"
	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/ports"
)

// Task types for the reconciliation pipeline. The scan task fans out one
// reconcile task per tenant.
const (
	TypeStockReconcile     = "stock:reconcile"
	TypeStockReconcileScan = "stock:reconcile:scan"
)

// ReconcilePayload is the task payload for a reconciliation run
type ReconcilePayload struct {
	TenantID uuid.UUID `json:"tenant_id"`
}

// NewReconcileTask builds an asynq task for the given tenant
func NewReconcileTask(tenantID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(ReconcilePayload{TenantID: tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reconcile payload: %w", err)
	}
	return asynq.NewTask(TypeStockReconcile, payload), nil
}

// ReconcileProcessor runs the ledger-vs-aggregate check as a background
// task, writes the result to an xlsx workbook and archives it. Drift is
// reported, never corrected.
type ReconcileProcessor struct {
	service      ports.ReconcileService
	storage      storage.StorageClient
	reportPrefix string
	logger       *slog.Logger
}

// NewReconcileProcessor creates a new reconcile processor
func NewReconcileProcessor(service ports.ReconcileService, storageClient storage.StorageClient, reportPrefix string, logger *slog.Logger) *ReconcileProcessor {
	return &ReconcileProcessor{
		service:      service,
		storage:      storageClient,
		reportPrefix: reportPrefix,
		logger:       logger.With(slog.String("processor", "reconcile")),
	}
}

// ProcessReconcile handles a stock:reconcile task
func (p *ReconcileProcessor) ProcessReconcile(ctx context.Context, t *asynq.Task) error {
	var payload ReconcilePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "running scheduled reconciliation",
		slog.String("tenant_id", payload.TenantID.String()))

	entries, err := p.service.Run(ctx, payload.TenantID)
	if err != nil {
		return fmt.Errorf("reconciliation run failed: %w", err)
	}

	report, err := buildReconcileWorkbook(entries)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	key := fmt.Sprintf("%s/%s/%s.xlsx",
		p.reportPrefix,
		payload.TenantID,
		time.Now().UTC().Format("2006-01-02T15-04-05"),
	)

	location, err := p.storage.Upload(ctx, key, bytes.NewReader(report),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err != nil {
		return fmt.Errorf("failed to archive report: %w", err)
	}

	p.logger.InfoContext(ctx, "reconciliation report archived",
		slog.String("tenant_id", payload.TenantID.String()),
		slog.Int("entries", len(entries)),
		slog.String("location", location))

	return nil
}

// ReconcileScanner expands a scheduled scan task into one reconcile task
// per tenant.
type ReconcileScanner struct {
	tenants ports.TenantRepository
	client  *asynq.Client
	logger  *slog.Logger
}

// NewReconcileScanner creates a new reconcile scanner
func NewReconcileScanner(tenants ports.TenantRepository, client *asynq.Client, logger *slog.Logger) *ReconcileScanner {
	return &ReconcileScanner{
		tenants: tenants,
		client:  client,
		logger:  logger.With(slog.String("processor", "reconcile_scan")),
	}
}

// ProcessScan handles a stock:reconcile:scan task
func (s *ReconcileScanner) ProcessScan(ctx context.Context, t *asynq.Task) error {
	ids, err := s.tenants.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tenants: %w", err)
	}

	for _, id := range ids {
		task, err := NewReconcileTask(id)
		if err != nil {
			return err
		}
		if _, err := s.client.EnqueueContext(ctx, task); err != nil {
			return fmt.Errorf("failed to enqueue reconcile task for tenant %s: %w", id, err)
		}
	}

	s.logger.InfoContext(ctx, "reconciliation fan-out complete", slog.Int("tenants", len(ids)))
	return nil
}

func buildReconcileWorkbook(entries []*domain.ReconciliationEntry) ([]byte, error) {
	wb := xlsx.NewFile()
	sheet, err := wb.AddSheet("Reconciliation")
	if err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, col := range []string{"SKU", "Warehouse ID", "Quantity", "Ledger Sum", "Drift", "In Sync"} {
		header.AddCell().SetString(col)
	}

	for _, e := range entries {
		row := sheet.AddRow()
		row.AddCell().SetString(e.SKU)
		row.AddCell().SetString(e.WarehouseID.String())
		row.AddCell().SetInt(e.Quantity)
		row.AddCell().SetInt(e.LedgerSum)
		row.AddCell().SetInt(e.Drift)
		row.AddCell().SetBool(e.InSync())
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
