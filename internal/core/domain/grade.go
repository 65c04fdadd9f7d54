// internal/core/domain/grade.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Grade is a quality classification assignable to a device, scoped to a
// tenant. Deletion is blocked while any grade assignment references it.
type Grade struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs domain validation on the grade
func (g *Grade) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if g.TenantID == uuid.Nil {
		return fmt.Errorf("tenant_id is required")
	}
	return nil
}

// PrepareForStorage prepares the grade for database storage
func (g *Grade) PrepareForStorage() {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	g.Name = strings.TrimSpace(g.Name)

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now
}

// GradeStatus is the lifecycle state of a grade assignment
type GradeStatus string

const (
	GradeStatusActive   GradeStatus = "active"
	GradeStatusInactive GradeStatus = "inactive"
)

// DeviceGradeRecord is one entry in a device's grade history. Records are
// appended and deactivated, never deleted or overwritten: at most one record
// per device is active at any time, and the full history is retained.
type DeviceGradeRecord struct {
	ID        uuid.UUID   `json:"id"`
	DeviceID  uuid.UUID   `json:"device_id"`
	GradeID   uuid.UUID   `json:"grade_id"`
	ActorID   uuid.UUID   `json:"actor_id"`
	TenantID  uuid.UUID   `json:"tenant_id"`
	Status    GradeStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// IsActive reports whether this record is the device's current grade.
func (r *DeviceGradeRecord) IsActive() bool {
	return r.Status == GradeStatusActive
}

// NewDeviceGradeRecord builds an active grade assignment ready for insert.
func NewDeviceGradeRecord(deviceID, gradeID, actorID, tenantID uuid.UUID) *DeviceGradeRecord {
	now := time.Now()
	return &DeviceGradeRecord{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		GradeID:   gradeID,
		ActorID:   actorID,
		TenantID:  tenantID,
		Status:    GradeStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
