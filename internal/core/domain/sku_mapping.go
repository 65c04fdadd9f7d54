// internal/core/domain/sku_mapping.go
package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Well-known condition keys. Free-form keys are allowed; these are the ones
// the stock-in flow produces from a test result plus the assigned grade.
const (
	ConditionKeyMake    = "make"
	ConditionKeyModel   = "model_name"
	ConditionKeyStorage = "storage"
	ConditionKeyColor   = "color"
	ConditionKeyGrade   = "grade"
)

// canonicalDelimiter joins key=value pairs in a canonical key.
const canonicalDelimiter = "|"

// canonicalEscaper escapes characters that would otherwise be ambiguous
// inside a canonical key. Escaping keeps keys readable, unlike hashing.
var canonicalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`|`, `\|`,
	`=`, `\=`,
)

// SkuMapping maps a set of device conditions to a warehouse SKU. The
// canonical key is derived from the conditions and is unique per tenant.
type SkuMapping struct {
	ID           uuid.UUID         `json:"id"`
	TenantID     uuid.UUID         `json:"tenant_id"`
	SKU          string            `json:"sku"`
	Conditions   map[string]string `json:"conditions"`
	CanonicalKey string            `json:"canonical_key"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NormalizeConditionKey trims and lower-cases a condition key.
func NormalizeConditionKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// NormalizeConditionValue trims a condition value. Case is preserved for
// storage; comparison happens on the lower-cased form inside the key.
func NormalizeConditionValue(value string) string {
	return strings.TrimSpace(value)
}

// BuildCanonicalKey produces the deterministic lookup key for a condition
// set. The result is independent of map ordering and of key/value casing:
// entries are normalized, sorted by key, and joined as escaped key=value
// pairs.
func BuildCanonicalKey(conditions map[string]string) string {
	if len(conditions) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(conditions))
	for k, v := range conditions {
		key := canonicalEscaper.Replace(NormalizeConditionKey(k))
		val := canonicalEscaper.Replace(strings.ToLower(NormalizeConditionValue(v)))
		pairs = append(pairs, key+"="+val)
	}
	sort.Strings(pairs)

	return strings.Join(pairs, canonicalDelimiter)
}

// NormalizeConditions returns a copy of the condition set with normalized
// keys and trimmed values, suitable for storage alongside the canonical key.
func NormalizeConditions(conditions map[string]string) map[string]string {
	out := make(map[string]string, len(conditions))
	for k, v := range conditions {
		out[NormalizeConditionKey(k)] = NormalizeConditionValue(v)
	}
	return out
}

// Validate performs domain validation on the mapping
func (m *SkuMapping) Validate() error {
	if strings.TrimSpace(m.SKU) == "" {
		return fmt.Errorf("sku is required")
	}
	if len(m.Conditions) == 0 {
		return fmt.Errorf("conditions are required")
	}
	if m.TenantID == uuid.Nil {
		return fmt.Errorf("tenant_id is required")
	}
	for k := range m.Conditions {
		if NormalizeConditionKey(k) == "" {
			return fmt.Errorf("condition keys must be non-empty")
		}
	}
	return nil
}

// PrepareForStorage normalizes the condition set, derives the canonical key
// and stamps identity and timestamps.
func (m *SkuMapping) PrepareForStorage() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.SKU = strings.TrimSpace(m.SKU)
	m.Conditions = NormalizeConditions(m.Conditions)
	m.CanonicalKey = BuildCanonicalKey(m.Conditions)

	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}
