package impl

import (
	"testing"

	"insureflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestKeywordClassifier_Classify(t *testing.T) {
	classifier := NewKeywordClassifier()

	tests := []struct {
		name     string
		filename string
		index    int
		want     entity.DocumentKind
	}{
		{name: "cavet first file", filename: "cavet_xe.jpg", index: 0, want: entity.DocumentKindVehicle},
		{name: "upper case keyword", filename: "GIAY_DANG_KY.PDF", index: 0, want: entity.DocumentKindVehicle},
		{name: "english keyword", filename: "vehicle-registration.png", index: 0, want: entity.DocumentKindVehicle},
		{name: "identity first file", filename: "cccd_mat_truoc.jpg", index: 0, want: entity.DocumentKindIdentity},
		{name: "any later file", filename: "cccd_mat_sau.jpg", index: 1, want: entity.DocumentKindVehicle},
		{name: "keyword only in directory", filename: "xe/cccd.jpg", index: 0, want: entity.DocumentKindIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.filename, tt.index))
		})
	}
}
