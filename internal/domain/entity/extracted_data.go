package entity

import "strings"

// ExtractedData is the flat record merged from one or more document extraction responses.
// A nil field means the documents did not contain that value.
type ExtractedData struct {
	// Person fields
	FullName    *string `json:"full_name"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	IDNumber    *string `json:"id_number"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Nationality *string `json:"nationality"`
	IssueDate   *string `json:"issue_date"`
	ExpiryDate  *string `json:"expiry_date"`

	// Vehicle fields
	LicensePlate  *string `json:"license_plate"`
	ChassisNumber *string `json:"chassis_number"`
	EngineNumber  *string `json:"engine_number"`
	Brand         *string `json:"brand"`
	Model         *string `json:"model"`
	Year          *string `json:"year"`
	Color         *string `json:"color"`
}

func (d *ExtractedData) personFields() []**string {
	return []**string{
		&d.FullName, &d.DateOfBirth, &d.Gender, &d.IDNumber, &d.Address,
		&d.Phone, &d.Email, &d.Nationality, &d.IssueDate, &d.ExpiryDate,
	}
}

func (d *ExtractedData) vehicleFields() []**string {
	return []**string{
		&d.LicensePlate, &d.ChassisNumber, &d.EngineNumber, &d.Brand,
		&d.Model, &d.Year, &d.Color,
	}
}

func (d *ExtractedData) allFields() []**string {
	return append(d.personFields(), d.vehicleFields()...)
}

// Merge copies every field of src into d that d does not have yet.
// Values already present in d always win, so merging in arrival order keeps the first value seen.
func (d *ExtractedData) Merge(src *ExtractedData) {
	if src == nil {
		return
	}

	dst := d.allFields()
	from := src.allFields()
	for i := range dst {
		if isBlank(*dst[i]) && !isBlank(*from[i]) {
			v := strings.TrimSpace(**from[i])
			*dst[i] = &v
		}
	}
}

// HasPersonFields reports whether any identity field is present.
func (d *ExtractedData) HasPersonFields() bool {
	return anyPresent(d.personFields())
}

// HasVehicleFields reports whether any vehicle field is present.
func (d *ExtractedData) HasVehicleFields() bool {
	return anyPresent(d.vehicleFields())
}

// MergeExtracted folds records in order into a new ExtractedData.
func MergeExtracted(records ...*ExtractedData) *ExtractedData {
	merged := &ExtractedData{}
	for _, r := range records {
		merged.Merge(r)
	}

	return merged
}

// Value dereferences an optional field, returning "" for nil.
func Value(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func anyPresent(fields []**string) bool {
	for _, f := range fields {
		if !isBlank(*f) {
			return true
		}
	}

	return false
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
