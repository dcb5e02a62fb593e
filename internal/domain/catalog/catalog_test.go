package catalog

import (
	"strings"
	"testing"

	"insureflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPackageByID_ReturnsCatalogEntry(t *testing.T) {
	for _, p := range All() {
		got, ok := GetPackageByID(p.ID)
		require.True(t, ok, p.ID)
		assert.Same(t, p, got)
	}
}

func TestGetPackageByID_Unknown(t *testing.T) {
	got, ok := GetPackageByID("does-not-exist")

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestGetFeaturedPackages_SubsetInCatalogOrder(t *testing.T) {
	var want []string
	for _, p := range All() {
		if p.Featured {
			want = append(want, p.ID)
		}
	}

	var got []string
	for _, p := range GetFeaturedPackages() {
		got = append(got, p.ID)
	}

	assert.Equal(t, want, got)
	assert.NotEmpty(t, got)
}

func TestGetPackagesByType(t *testing.T) {
	disaster := GetPackagesByType(entity.InsuranceTypeNaturalDisaster)
	require.NotEmpty(t, disaster)
	for _, p := range disaster {
		assert.Equal(t, entity.InsuranceTypeNaturalDisaster, p.Type)
	}

	assert.Empty(t, GetPackagesByType(entity.InsuranceType("pet")))
}

func TestCatalog_IDsUniqueAndTypesValid(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range All() {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.True(t, p.Type.IsValid(), p.ID)
		assert.Positive(t, p.Price, p.ID)
	}
}

func TestFloodBasic_IsNaturalDisaster(t *testing.T) {
	p, ok := GetPackageByID("flood-basic")

	require.True(t, ok)
	assert.Equal(t, entity.InsuranceTypeNaturalDisaster, p.Type)
	assert.True(t, strings.Contains(p.Name, "Ngập lụt"))
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{price: 500_000, want: "500.000 ₫"},
		{price: 66_000, want: "66.000 ₫"},
		{price: 1_263_600, want: "1.263.600 ₫"},
		{price: 0, want: "0 ₫"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.price))
		})
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	list := All()
	list[0] = nil

	assert.NotNil(t, All()[0])
}
