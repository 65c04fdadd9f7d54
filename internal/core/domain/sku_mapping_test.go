// internal/core/domain/sku_mapping_test.go
package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renewcart/buyback-be/internal/core/domain"
)

func TestBuildCanonicalKey_OrderInvariant(t *testing.T) {
	a := domain.BuildCanonicalKey(map[string]string{
		"make":       "Apple",
		"model_name": "iPhone 12",
		"storage":    "128GB",
	})
	b := domain.BuildCanonicalKey(map[string]string{
		"storage":    "128GB",
		"make":       "Apple",
		"model_name": "iPhone 12",
	})

	assert.Equal(t, a, b)
}

func TestBuildCanonicalKey_CaseInvariant(t *testing.T) {
	a := domain.BuildCanonicalKey(map[string]string{"a": "X", "b": "Y"})
	b := domain.BuildCanonicalKey(map[string]string{"B": "y", "A": "x"})

	assert.Equal(t, a, b)
}

func TestBuildCanonicalKey_TrimsWhitespace(t *testing.T) {
	a := domain.BuildCanonicalKey(map[string]string{" Make ": " Apple "})
	b := domain.BuildCanonicalKey(map[string]string{"make": "Apple"})

	assert.Equal(t, a, b)
	assert.Equal(t, "make=apple", a)
}

func TestBuildCanonicalKey_Deterministic(t *testing.T) {
	conditions := map[string]string{
		"make":       "Apple",
		"model_name": "iPhone 12",
		"storage":    "128GB",
		"color":      "Black",
		"grade":      "BGRA",
	}

	expected := "color=black|grade=bgra|make=apple|model_name=iphone 12|storage=128gb"
	for i := 0; i < 10; i++ {
		assert.Equal(t, expected, domain.BuildCanonicalKey(conditions))
	}
}

func TestBuildCanonicalKey_EscapesDelimiters(t *testing.T) {
	// Values containing the delimiter characters must not collide with a
	// different condition set that produces the same raw concatenation.
	a := domain.BuildCanonicalKey(map[string]string{"a": "x|b=y"})
	b := domain.BuildCanonicalKey(map[string]string{"a": "x", "b": "y"})

	assert.NotEqual(t, a, b)
	assert.Equal(t, `a=x\|b\=y`, a)
}

func TestBuildCanonicalKey_EmptyConditions(t *testing.T) {
	assert.Equal(t, "", domain.BuildCanonicalKey(nil))
	assert.Equal(t, "", domain.BuildCanonicalKey(map[string]string{}))
}

func TestBuildCanonicalKey_DistinctSetsDistinctKeys(t *testing.T) {
	a := domain.BuildCanonicalKey(map[string]string{"make": "Apple", "grade": "A"})
	b := domain.BuildCanonicalKey(map[string]string{"make": "Apple", "grade": "B"})
	c := domain.BuildCanonicalKey(map[string]string{"make": "Apple"})

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}

func TestSkuMapping_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mapping       domain.SkuMapping
		expectedError string
	}{
		{
			name: "valid_mapping",
			mapping: domain.SkuMapping{
				TenantID:   uuid.New(),
				SKU:        "SKU-APL-IP12-128-BLK-B",
				Conditions: map[string]string{"make": "Apple"},
			},
		},
		{
			name: "missing_sku",
			mapping: domain.SkuMapping{
				TenantID:   uuid.New(),
				Conditions: map[string]string{"make": "Apple"},
			},
			expectedError: "sku is required",
		},
		{
			name: "missing_conditions",
			mapping: domain.SkuMapping{
				TenantID: uuid.New(),
				SKU:      "SKU-1",
			},
			expectedError: "conditions are required",
		},
		{
			name: "missing_tenant",
			mapping: domain.SkuMapping{
				SKU:        "SKU-1",
				Conditions: map[string]string{"make": "Apple"},
			},
			expectedError: "tenant_id is required",
		},
		{
			name: "blank_condition_key",
			mapping: domain.SkuMapping{
				TenantID:   uuid.New(),
				SKU:        "SKU-1",
				Conditions: map[string]string{"  ": "Apple"},
			},
			expectedError: "condition keys must be non-empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mapping.Validate()
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSkuMapping_PrepareForStorage(t *testing.T) {
	m := &domain.SkuMapping{
		TenantID:   uuid.New(),
		SKU:        "  SKU-1  ",
		Conditions: map[string]string{" Make ": " Apple "},
	}

	m.PrepareForStorage()

	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.Equal(t, "SKU-1", m.SKU)
	assert.Equal(t, map[string]string{"make": "Apple"}, m.Conditions)
	assert.Equal(t, "make=apple", m.CanonicalKey)
	assert.False(t, m.CreatedAt.IsZero())
	assert.False(t, m.UpdatedAt.IsZero())
}
