// internal/core/domain/event.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of action recorded against a device
type EventType string

// Event type constants
const (
	EventTestCompleted EventType = "TEST_COMPLETED"
	EventDeviceCreated EventType = "DEVICE_CREATED"
	EventGradeChanged  EventType = "GRADE_CHANGED"
)

// EventDetails is the denormalized snapshot stored with a device event.
// Names and colors are captured at event time so the audit trail stays
// meaningful if the referenced grade, warehouse or actor is later renamed
// or deleted.
type EventDetails struct {
	Action        string `json:"action"`
	GradeName     string `json:"grade_name,omitempty"`
	GradeColor    string `json:"grade_color,omitempty"`
	WarehouseName string `json:"warehouse_name,omitempty"`
	ActorName     string `json:"actor_name,omitempty"`
	SKU           string `json:"sku,omitempty"`
	Remarks       string `json:"remarks,omitempty"`
}

// DeviceEvent is one immutable audit-log entry for a device, ordered by
// creation time and never mutated after insert.
type DeviceEvent struct {
	ID        uuid.UUID    `json:"id"`
	DeviceID  uuid.UUID    `json:"device_id"`
	ActorID   uuid.UUID    `json:"actor_id"`
	TenantID  uuid.UUID    `json:"tenant_id"`
	EventType EventType    `json:"event_type"`
	Details   EventDetails `json:"details"`
	CreatedAt time.Time    `json:"created_at"`
}

// Validate performs domain validation on the event
func (e *DeviceEvent) Validate() error {
	if e.DeviceID == uuid.Nil {
		return fmt.Errorf("device_id is required")
	}
	if e.TenantID == uuid.Nil {
		return fmt.Errorf("tenant_id is required")
	}
	if e.EventType == "" {
		return fmt.Errorf("event_type is required")
	}
	return nil
}

// PrepareForStorage prepares the event for database storage
func (e *DeviceEvent) PrepareForStorage() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
}
