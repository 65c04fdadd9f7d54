// internal/core/services/stock_in.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/renewcart/buyback-be/internal/core/domain"
	"github.com/renewcart/buyback-be/internal/core/ports"
	"github.com/renewcart/buyback-be/internal/pkg/apperror"
)

// StockInService coordinates the stock-in workflow: validation and SKU
// resolution run read-only and fail fast; the grade swap, ledger append,
// level increment, unit link and audit event then commit in one
// transaction or not at all.
type StockInService struct {
	devices    ports.DeviceRepository
	grades     ports.GradeRepository
	gradeLog   ports.DeviceGradeRepository
	mappings   ports.SkuMappingService
	stock      ports.StockRepository
	events     ports.DeviceEventRepository
	warehouses ports.WarehouseRepository
	actors     ports.ActorRepository
	tests      ports.TestResultRepository
	tx         ports.Transactor
	logger     *slog.Logger
}

// Statically assert that StockInService implements the service interface.
var _ ports.StockInService = (*StockInService)(nil)

// NewStockInService creates a new stock-in service
func NewStockInService(
	devices ports.DeviceRepository,
	grades ports.GradeRepository,
	gradeLog ports.DeviceGradeRepository,
	mappings ports.SkuMappingService,
	stock ports.StockRepository,
	events ports.DeviceEventRepository,
	warehouses ports.WarehouseRepository,
	actors ports.ActorRepository,
	tests ports.TestResultRepository,
	tx ports.Transactor,
	logger *slog.Logger,
) *StockInService {
	return &StockInService{
		devices:    devices,
		grades:     grades,
		gradeLog:   gradeLog,
		mappings:   mappings,
		stock:      stock,
		events:     events,
		warehouses: warehouses,
		actors:     actors,
		tests:      tests,
		tx:         tx,
		logger:     logger.With(slog.String("service", "stock_in")),
	}
}

// ProcessStockIn books a tested device into stock. The validation sequence
// is ordered and fail-fast: the first failing check determines the error
// and nothing is written. All writes happen inside a single transaction.
func (s *StockInService) ProcessStockIn(ctx context.Context, req ports.StockInRequest, actorID, tenantID uuid.UUID) (*ports.StockInResult, error) {
	if strings.TrimSpace(req.IMEI) == "" {
		return nil, apperror.BadRequest("imei is required")
	}
	if req.GradeID == uuid.Nil {
		return nil, apperror.BadRequest("grade_id is required")
	}
	if req.WarehouseID == uuid.Nil {
		return nil, apperror.BadRequest("warehouse_id is required")
	}
	if req.UnitValue.IsNegative() {
		return nil, apperror.BadRequest("unit_value cannot be negative")
	}

	device, err := s.devices.FindByIMEI(ctx, strings.TrimSpace(req.IMEI), tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to look up device", err)
	}
	if device == nil {
		return nil, apperror.NotFound("device not found for imei %s", req.IMEI)
	}

	grade, err := s.grades.FindByID(ctx, req.GradeID, tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to look up grade", err)
	}
	if grade == nil {
		return nil, apperror.NotFound("grade not found")
	}

	warehouse, err := s.warehouses.FindByID(ctx, req.WarehouseID)
	if err != nil {
		return nil, apperror.Internal("failed to look up warehouse", err)
	}
	if warehouse == nil {
		return nil, apperror.NotFound("warehouse not found")
	}

	actor, err := s.actors.FindByID(ctx, actorID)
	if err != nil {
		return nil, apperror.Internal("failed to look up actor", err)
	}
	if actor == nil {
		return nil, apperror.NotFound("actor not found")
	}

	// A device must have been tested before it can be stocked in, even when
	// the caller supplies the SKU.
	test, err := s.tests.LatestByDevice(ctx, device.ID, tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to look up test result", err)
	}
	if test == nil {
		return nil, apperror.NotFound("no test result found for device %s", req.IMEI)
	}

	current, err := s.gradeLog.CurrentActive(ctx, device.ID, tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to look up current grade", err)
	}
	if current != nil && current.GradeID == grade.ID {
		return nil, apperror.Conflict("device already has this grade")
	}

	sku, err := s.resolveSKU(ctx, req, test, grade, tenantID)
	if err != nil {
		return nil, err
	}

	record := domain.NewDeviceGradeRecord(device.ID, grade.ID, actor.ID, tenantID)
	movement := &domain.StockMovement{
		SKU:         sku,
		WarehouseID: warehouse.ID,
		TenantID:    tenantID,
		Delta:       1,
		Reason:      domain.ReasonPurchase,
		RefType:     domain.RefTypeStockIn,
		RefID:       device.ID,
		ActorID:     actor.ID,
		UnitValue:   req.UnitValue,
	}
	event := &domain.DeviceEvent{
		DeviceID:  device.ID,
		ActorID:   actor.ID,
		TenantID:  tenantID,
		EventType: domain.EventTestCompleted,
		Details: domain.EventDetails{
			Action:        "stock_in",
			GradeName:     grade.Name,
			GradeColor:    grade.Color,
			WarehouseName: warehouse.Name,
			ActorName:     actor.Name,
			SKU:           sku,
			Remarks:       req.Remarks,
		},
	}
	unit := &domain.StockUnit{
		DeviceID:    device.ID,
		SKU:         sku,
		WarehouseID: warehouse.ID,
		TenantID:    tenantID,
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context, q ports.Querier) error {
		if current != nil {
			if err := s.gradeLog.Deactivate(ctx, q, current.ID); err != nil {
				return fmt.Errorf("failed to deactivate previous grade: %w", err)
			}
		}
		if err := s.gradeLog.Insert(ctx, q, record); err != nil {
			return fmt.Errorf("failed to insert grade record: %w", err)
		}
		if err := s.stock.EnsureLevel(ctx, q, sku, warehouse.ID, tenantID); err != nil {
			return err
		}
		if err := s.stock.AppendMovement(ctx, q, movement); err != nil {
			return err
		}
		if err := s.stock.LinkUnit(ctx, q, unit); err != nil {
			return err
		}
		if err := s.events.Append(ctx, q, event); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, apperror.FromError(err)
	}

	s.logger.InfoContext(ctx, "stock-in completed",
		slog.String("device_id", device.ID.String()),
		slog.String("imei", device.IMEI),
		slog.String("grade", grade.Name),
		slog.String("sku", sku),
		slog.String("warehouse", warehouse.Name),
	)

	return &ports.StockInResult{
		DeviceID:      device.ID,
		IMEI:          device.IMEI,
		GradeID:       grade.ID,
		GradeName:     grade.Name,
		GradeColor:    grade.Color,
		SKU:           sku,
		DeviceGradeID: record.ID,
		EventID:       event.ID,
		WarehouseID:   warehouse.ID,
		WarehouseName: warehouse.Name,
		ActorID:       actor.ID,
		ActorName:     actor.Name,
		Message:       "device stocked in",
	}, nil
}

// resolveSKU picks the SKU for the movement. An explicit override wins and
// is accepted as-is; otherwise the device's latest test result plus the
// grade name form the condition set for mapping lookup.
func (s *StockInService) resolveSKU(ctx context.Context, req ports.StockInRequest, test *domain.TestResult, grade *domain.Grade, tenantID uuid.UUID) (string, error) {
	if override := strings.TrimSpace(req.SKU); override != "" {
		return override, nil
	}

	conditions := test.Conditions()
	conditions[domain.ConditionKeyGrade] = grade.Name

	sku, err := s.mappings.ResolveSKU(ctx, conditions, tenantID)
	if err != nil {
		return "", apperror.FromError(err)
	}
	if sku == "" {
		return "", apperror.BadRequest("SKU not found, supply manually")
	}

	return sku, nil
}

// GradeHistory lists a device's grade records, newest first
func (s *StockInService) GradeHistory(ctx context.Context, imei string, tenantID uuid.UUID) ([]*domain.DeviceGradeRecord, error) {
	device, err := s.findDevice(ctx, imei, tenantID)
	if err != nil {
		return nil, err
	}

	records, err := s.gradeLog.History(ctx, device.ID, tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to list grade history", err)
	}

	return records, nil
}

// Events lists a device's audit trail, newest first
func (s *StockInService) Events(ctx context.Context, imei string, tenantID uuid.UUID) ([]*domain.DeviceEvent, error) {
	device, err := s.findDevice(ctx, imei, tenantID)
	if err != nil {
		return nil, err
	}

	events, err := s.events.ListByDevice(ctx, device.ID, tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to list device events", err)
	}

	return events, nil
}

func (s *StockInService) findDevice(ctx context.Context, imei string, tenantID uuid.UUID) (*domain.Device, error) {
	if strings.TrimSpace(imei) == "" {
		return nil, apperror.BadRequest("imei is required")
	}

	device, err := s.devices.FindByIMEI(ctx, strings.TrimSpace(imei), tenantID)
	if err != nil {
		return nil, apperror.Internal("failed to look up device", err)
	}
	if device == nil {
		return nil, apperror.NotFound("device not found for imei %s", imei)
	}

	return device, nil
}
