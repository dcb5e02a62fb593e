// Package entity contains the core business objects of the project.
package entity

// InsuranceType identifies a product line and the shape of its application form.
type InsuranceType string

const (
	// InsuranceTypeLife covers life insurance products.
	InsuranceTypeLife InsuranceType = "life"
	// InsuranceTypeHealth covers voluntary health insurance products.
	InsuranceTypeHealth InsuranceType = "health"
	// InsuranceTypeVehicle covers motor vehicle insurance products.
	InsuranceTypeVehicle InsuranceType = "vehicle"
	// InsuranceTypeMandatoryHealth covers the state mandatory health scheme.
	InsuranceTypeMandatoryHealth InsuranceType = "mandatory_health"
	// InsuranceTypeNaturalDisaster covers property against flood, storm and landslide.
	InsuranceTypeNaturalDisaster InsuranceType = "natural_disaster"
)

// String returns the string representation of the InsuranceType.
func (t InsuranceType) String() string {
	return string(t)
}

// IsValid checks if the InsuranceType is a valid value.
func (t InsuranceType) IsValid() bool {
	switch t {
	case InsuranceTypeLife, InsuranceTypeHealth, InsuranceTypeVehicle,
		InsuranceTypeMandatoryHealth, InsuranceTypeNaturalDisaster:
		return true
	default:
		return false
	}
}

// BenefitCategory groups detailed benefits under a heading.
type BenefitCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// InsurancePackage is a static, purchasable insurance product definition.
type InsurancePackage struct {
	ID                string            `json:"id"`
	Type              InsuranceType     `json:"type"`
	Name              string            `json:"name"`
	Price             int64             `json:"price"` // Whole VND, no minor units.
	Period            string            `json:"period"`
	Benefits          []string          `json:"benefits"`
	Coverage          string            `json:"coverage"`
	RequiredDocuments []string          `json:"required_documents"`
	DetailedBenefits  []BenefitCategory `json:"detailed_benefits,omitempty"`
	Exclusions        []string          `json:"exclusions,omitempty"`
	Featured          bool              `json:"featured"`
}
