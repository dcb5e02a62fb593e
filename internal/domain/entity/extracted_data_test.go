package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestExtractedData_Merge_FirstValueWins(t *testing.T) {
	tests := []struct {
		name  string
		first *string
		later *string
		want  *string
	}{
		{name: "first non-null kept", first: strPtr("X"), later: strPtr("Y"), want: strPtr("X")},
		{name: "null filled by later", first: nil, later: strPtr("Y"), want: strPtr("Y")},
		{name: "blank treated as null", first: strPtr("  "), later: strPtr("Y"), want: strPtr("Y")},
		{name: "both null", first: nil, later: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeExtracted(
				&ExtractedData{FullName: tt.first},
				&ExtractedData{FullName: tt.later},
			)

			assert.Equal(t, tt.want, merged.FullName)
		})
	}
}

func TestExtractedData_Merge_CombinesPersonAndVehicle(t *testing.T) {
	identity := &ExtractedData{FullName: strPtr("Nguyễn Văn A"), IDNumber: strPtr("001203004567")}
	vehicle := &ExtractedData{LicensePlate: strPtr("30A-12345"), Brand: strPtr("Toyota"), FullName: strPtr("Trần Thị B")}

	merged := MergeExtracted(identity, vehicle)

	assert.Equal(t, "Nguyễn Văn A", Value(merged.FullName))
	assert.Equal(t, "001203004567", Value(merged.IDNumber))
	assert.Equal(t, "30A-12345", Value(merged.LicensePlate))
	assert.Equal(t, "Toyota", Value(merged.Brand))
	assert.True(t, merged.HasPersonFields())
	assert.True(t, merged.HasVehicleFields())
}

func TestExtractedData_Merge_CopiesValues(t *testing.T) {
	src := &ExtractedData{Color: strPtr("Đỏ")}
	dst := &ExtractedData{}

	dst.Merge(src)
	*src.Color = "Xanh"

	assert.Equal(t, "Đỏ", Value(dst.Color))
}

func TestExtractedData_HasVehicleFields_Empty(t *testing.T) {
	data := &ExtractedData{FullName: strPtr("A")}

	assert.False(t, data.HasVehicleFields())
	assert.True(t, data.HasPersonFields())
	assert.False(t, (&ExtractedData{}).HasPersonFields())
}
