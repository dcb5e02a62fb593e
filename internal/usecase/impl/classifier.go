package impl

import (
	"path/filepath"
	"strings"

	"insureflow/internal/domain/entity"
	"insureflow/internal/domain/service"
)

// vehicleKeywords mark a vehicle registration paper (cà vẹt) in a file name.
var vehicleKeywords = []string{
	"cavet",
	"ca_vet",
	"cavet_xe",
	"xe",
	"dang_ky_xe",
	"dangkyxe",
	"giay_dang_ky",
	"vehicle",
	"registration",
}

type keywordClassifier struct{}

// NewKeywordClassifier returns a classifier that matches file names against vehicle keywords.
// Every file after the first of a batch is tried as a vehicle document too; extraction
// falls back to identity when that guess is wrong.
func NewKeywordClassifier() service.DocumentClassifier {
	return keywordClassifier{}
}

func (keywordClassifier) Classify(filename string, index int) entity.DocumentKind {
	if index >= 1 || hasVehicleKeyword(filename) {
		return entity.DocumentKindVehicle
	}

	return entity.DocumentKindIdentity
}

func hasVehicleKeyword(filename string) bool {
	name := strings.ToLower(filepath.Base(filename))
	for _, kw := range vehicleKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}

	return false
}
