// internal/core/domain/device.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Device represents a physical handset tracked by the buyback platform.
// Identity fields (IMEI, serial, GUID) are stable once set; descriptive
// attributes may be refreshed from later test uploads.
type Device struct {
	ID        uuid.UUID  `json:"id"`
	TenantID  uuid.UUID  `json:"tenant_id"`
	IMEI      string     `json:"imei"`
	Serial    string     `json:"serial,omitempty"`
	GUID      string     `json:"guid,omitempty"`
	Make      string     `json:"make,omitempty"`
	ModelName string     `json:"model_name,omitempty"`
	Storage   string     `json:"storage,omitempty"`
	Color     string     `json:"color,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Validate performs domain validation on the device
func (d *Device) Validate() error {
	if strings.TrimSpace(d.IMEI) == "" {
		return fmt.Errorf("imei is required")
	}
	if d.TenantID == uuid.Nil {
		return fmt.Errorf("tenant_id is required")
	}
	return nil
}

// PrepareForStorage prepares the device for database storage
func (d *Device) PrepareForStorage() {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.IMEI = strings.TrimSpace(d.IMEI)

	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
}

// TestResult is the outcome of a diagnostic run against a device. The
// physical attributes recorded here feed SKU resolution at stock-in time.
type TestResult struct {
	ID            uuid.UUID `json:"id"`
	DeviceID      uuid.UUID `json:"device_id"`
	TenantID      uuid.UUID `json:"tenant_id"`
	Make          string    `json:"make"`
	ModelName     string    `json:"model_name"`
	Storage       string    `json:"storage"`
	Color         string    `json:"color"`
	BatteryHealth int       `json:"battery_health,omitempty"`
	Passed        bool      `json:"passed"`
	CreatedAt     time.Time `json:"created_at"`
}

// Conditions returns the test result's physical attributes as a condition
// set suitable for canonical key building.
func (t *TestResult) Conditions() map[string]string {
	return map[string]string{
		ConditionKeyMake:    t.Make,
		ConditionKeyModel:   t.ModelName,
		ConditionKeyStorage: t.Storage,
		ConditionKeyColor:   t.Color,
	}
}

// Warehouse is a physical stocking location. Looked up by id only; lifecycle
// management lives outside this service.
type Warehouse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Actor is the operator performing an action, referenced by id on every
// ledger row. Lifecycle management lives outside this service.
type Actor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
