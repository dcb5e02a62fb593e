package entity

import "strconv"

// MaxFamilyMembers caps the members insured under one health application.
const MaxFamilyMembers = 5

// PersonalInfo holds the applicant's identity fields shared by most insurance types.
type PersonalInfo struct {
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	Gender      string `json:"gender"`
	IDNumber    string `json:"id_number"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Nationality string `json:"nationality"`
}

// Beneficiary receives the payout of a life policy.
type Beneficiary struct {
	FullName     string `json:"full_name"`
	Relationship string `json:"relationship"`
	IDNumber     string `json:"id_number"`
	Phone        string `json:"phone"`
}

// LifeDetails carries the life-specific sections.
type LifeDetails struct {
	HeightCm              int         `json:"height_cm"`
	WeightKg              int         `json:"weight_kg"`
	Smoker                bool        `json:"smoker"`
	HasChronicIllness     bool        `json:"has_chronic_illness"`
	ChronicIllnessDetails string      `json:"chronic_illness_details"`
	Beneficiary           Beneficiary `json:"beneficiary"`
}

// FamilyMember is one insured person on a health application.
type FamilyMember struct {
	FullName     string `json:"full_name"`
	DateOfBirth  string `json:"date_of_birth"`
	Gender       string `json:"gender"`
	Relationship string `json:"relationship"`
}

// HealthDetails carries the health-specific sections.
type HealthDetails struct {
	FamilyMembers            []FamilyMember `json:"family_members"`
	HasPreExistingConditions bool           `json:"has_pre_existing_conditions"`
	PreExistingConditions    string         `json:"pre_existing_conditions"`
	CurrentMedications       string         `json:"current_medications"`
	PreferredHospital        string         `json:"preferred_hospital"`
}

// VehicleDetails carries the vehicle, license and accident history sections.
type VehicleDetails struct {
	LicensePlate  string `json:"license_plate"`
	ChassisNumber string `json:"chassis_number"`
	EngineNumber  string `json:"engine_number"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Year          int    `json:"year"`
	Color         string `json:"color"`
	VehicleType   string `json:"vehicle_type"` // car or motorbike
	Usage         string `json:"usage"`        // personal or commercial

	DriverLicenseNumber string `json:"driver_license_number"`
	DriverLicenseClass  string `json:"driver_license_class"`
	DriverLicenseExpiry string `json:"driver_license_expiry"`

	HasAccidentHistory  bool   `json:"has_accident_history"`
	AccidentCount       int    `json:"accident_count"`
	AccidentDescription string `json:"accident_description"`
}

// MandatoryHealthDetails carries the social insurance section.
type MandatoryHealthDetails struct {
	SocialInsuranceNumber string `json:"social_insurance_number"`
	Occupation            string `json:"occupation"`
	Employer              string `json:"employer"`
	RegisteredHospital    string `json:"registered_hospital"`
}

// PropertyOwner is the insured property owner (chu_tai_san) on a natural disaster application.
type PropertyOwner struct {
	FullName string `json:"full_name"`
	IDNumber string `json:"id_number"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

// NaturalDisasterDetails carries the owner and property sections.
type NaturalDisasterDetails struct {
	Owner            PropertyOwner `json:"chu_tai_san"`
	PropertyAddress  string        `json:"property_address"`
	PropertyType     string        `json:"property_type"`
	PropertyValue    int64         `json:"property_value"`
	ConstructionYear int           `json:"construction_year"`
	Floors           int           `json:"floors"`
	Region           string        `json:"region"`
}

// Confirmation holds the two acknowledgements required before submission.
type Confirmation struct {
	AgreeTerms      bool `json:"agree_terms"`
	ConfirmAccuracy bool `json:"confirm_accuracy"`
}

// Acknowledged reports whether both boxes are ticked.
func (c Confirmation) Acknowledged() bool {
	return c.AgreeTerms && c.ConfirmAccuracy
}

// SupportingFile references a file attached to the application in blob storage.
type SupportingFile struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Application is the form data of one purchase, a tagged union keyed by Type.
// Only the variant matching Type is non-nil; Personal is nil for natural disaster
// applications, whose applicant is the property owner.
type Application struct {
	Type            InsuranceType           `json:"type"`
	Personal        *PersonalInfo           `json:"personal_info,omitempty"`
	Life            *LifeDetails            `json:"life,omitempty"`
	Health          *HealthDetails          `json:"health,omitempty"`
	Vehicle         *VehicleDetails         `json:"vehicle,omitempty"`
	MandatoryHealth *MandatoryHealthDetails `json:"mandatory_health,omitempty"`
	NaturalDisaster *NaturalDisasterDetails `json:"natural_disaster,omitempty"`
	Confirmation    Confirmation            `json:"confirmation"`
	SupportingFiles []SupportingFile        `json:"supporting_files,omitempty"`
}

// NewApplication creates an empty application of the given type, seeded from extracted data.
func NewApplication(t InsuranceType, seed *ExtractedData) *Application {
	app := &Application{Type: t}
	app.Normalize()

	if seed == nil {
		return app
	}

	if app.Personal != nil {
		app.Personal.FullName = Value(seed.FullName)
		app.Personal.DateOfBirth = Value(seed.DateOfBirth)
		app.Personal.Gender = Value(seed.Gender)
		app.Personal.IDNumber = Value(seed.IDNumber)
		app.Personal.Phone = Value(seed.Phone)
		app.Personal.Email = Value(seed.Email)
		app.Personal.Address = Value(seed.Address)
		app.Personal.Nationality = Value(seed.Nationality)
	}

	switch t {
	case InsuranceTypeHealth:
		app.Health.FamilyMembers[0].FullName = Value(seed.FullName)
		app.Health.FamilyMembers[0].DateOfBirth = Value(seed.DateOfBirth)
		app.Health.FamilyMembers[0].Gender = Value(seed.Gender)
	case InsuranceTypeVehicle:
		app.Vehicle.LicensePlate = Value(seed.LicensePlate)
		app.Vehicle.ChassisNumber = Value(seed.ChassisNumber)
		app.Vehicle.EngineNumber = Value(seed.EngineNumber)
		app.Vehicle.Brand = Value(seed.Brand)
		app.Vehicle.Model = Value(seed.Model)
		app.Vehicle.Color = Value(seed.Color)
		if year, err := strconv.Atoi(Value(seed.Year)); err == nil {
			app.Vehicle.Year = year
		}
	case InsuranceTypeNaturalDisaster:
		owner := &app.NaturalDisaster.Owner
		owner.FullName = Value(seed.FullName)
		owner.IDNumber = Value(seed.IDNumber)
		owner.Phone = Value(seed.Phone)
		owner.Email = Value(seed.Email)
		owner.Address = Value(seed.Address)
	}

	return app
}

// Normalize enforces the union: it allocates the variant for Type and clears the others.
func (a *Application) Normalize() {
	if a.Type == InsuranceTypeNaturalDisaster {
		a.Personal = nil
	} else if a.Personal == nil {
		a.Personal = &PersonalInfo{Nationality: "Việt Nam"}
	}

	life, health, vehicle, mandatory, disaster := a.Life, a.Health, a.Vehicle, a.MandatoryHealth, a.NaturalDisaster
	a.Life, a.Health, a.Vehicle, a.MandatoryHealth, a.NaturalDisaster = nil, nil, nil, nil, nil

	switch a.Type {
	case InsuranceTypeLife:
		a.Life = life
		if a.Life == nil {
			a.Life = &LifeDetails{}
		}
	case InsuranceTypeHealth:
		a.Health = health
		if a.Health == nil {
			a.Health = &HealthDetails{}
		}
		if len(a.Health.FamilyMembers) == 0 {
			a.Health.FamilyMembers = []FamilyMember{{Relationship: "self"}}
		}
	case InsuranceTypeVehicle:
		a.Vehicle = vehicle
		if a.Vehicle == nil {
			a.Vehicle = &VehicleDetails{}
		}
	case InsuranceTypeMandatoryHealth:
		a.MandatoryHealth = mandatory
		if a.MandatoryHealth == nil {
			a.MandatoryHealth = &MandatoryHealthDetails{}
		}
	case InsuranceTypeNaturalDisaster:
		a.NaturalDisaster = disaster
		if a.NaturalDisaster == nil {
			a.NaturalDisaster = &NaturalDisasterDetails{}
		}
	}
}

// HolderName returns the name printed on the contract.
func (a *Application) HolderName() string {
	if a.NaturalDisaster != nil {
		return a.NaturalDisaster.Owner.FullName
	}
	if a.Personal != nil {
		return a.Personal.FullName
	}

	return ""
}

// FieldError is one failed validation rule of a wizard section.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormSection describes one screen of the application wizard.
type FormSection struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// FormWizard is the wizard cursor of a session. It is not persisted.
type FormWizard struct {
	CurrentSection int           `json:"current_section"`
	Sections       []FormSection `json:"sections"`
	Errors         []FieldError  `json:"errors,omitempty"`
}

// IsLastSection reports whether the cursor is on the confirmation screen.
func (w *FormWizard) IsLastSection() bool {
	return w.CurrentSection == len(w.Sections)-1
}
