package impl

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"insureflow/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// Section keys shared by several insurance types.
const (
	sectionPersonal     = "personal"
	sectionConfirmation = "confirmation"
)

var wizardSections = map[entity.InsuranceType][]entity.FormSection{
	entity.InsuranceTypeLife: {
		{Key: sectionPersonal, Title: "Thông tin cá nhân"},
		{Key: "health_declaration", Title: "Khai báo sức khỏe"},
		{Key: "beneficiary", Title: "Người thụ hưởng"},
		{Key: sectionConfirmation, Title: "Xác nhận"},
	},
	entity.InsuranceTypeHealth: {
		{Key: sectionPersonal, Title: "Thông tin cá nhân"},
		{Key: "family_members", Title: "Thành viên được bảo hiểm"},
		{Key: "medical_history", Title: "Tiền sử bệnh"},
		{Key: sectionConfirmation, Title: "Xác nhận"},
	},
	entity.InsuranceTypeVehicle: {
		{Key: sectionPersonal, Title: "Thông tin chủ xe"},
		{Key: "vehicle_info", Title: "Thông tin xe"},
		{Key: "driver_license", Title: "Giấy phép lái xe"},
		{Key: "accident_history", Title: "Lịch sử tai nạn"},
		{Key: sectionConfirmation, Title: "Xác nhận"},
	},
	entity.InsuranceTypeMandatoryHealth: {
		{Key: sectionPersonal, Title: "Thông tin cá nhân"},
		{Key: "social_insurance", Title: "Thông tin BHXH"},
		{Key: sectionConfirmation, Title: "Xác nhận"},
	},
	entity.InsuranceTypeNaturalDisaster: {
		{Key: "chu_tai_san", Title: "Thông tin chủ tài sản"},
		{Key: "property", Title: "Thông tin tài sản"},
		{Key: sectionConfirmation, Title: "Xác nhận"},
	},
}

// newWizard returns a wizard at the first section of the type's form.
func newWizard(t entity.InsuranceType) *entity.FormWizard {
	return &entity.FormWizard{
		CurrentSection: 0,
		Sections:       wizardSections[t],
	}
}

// sectionKey addresses one validator in the table.
type sectionKey struct {
	Type  entity.InsuranceType
	Index int
}

// sectionValidator returns the failed rules of one section. Nil means the section is valid.
type sectionValidator func(app *entity.Application) []entity.FieldError

// Sections without an entry, such as every confirmation screen, have no rules.
var sectionValidators = map[sectionKey]sectionValidator{
	{entity.InsuranceTypeLife, 0}: validatePersonal,
	{entity.InsuranceTypeLife, 1}: validateHealthDeclaration,
	{entity.InsuranceTypeLife, 2}: validateBeneficiary,

	{entity.InsuranceTypeHealth, 0}: validatePersonal,
	{entity.InsuranceTypeHealth, 1}: validateFamilyMembers,
	{entity.InsuranceTypeHealth, 2}: validateMedicalHistory,

	{entity.InsuranceTypeVehicle, 0}: validatePersonal,
	{entity.InsuranceTypeVehicle, 1}: validateVehicleInfo,
	{entity.InsuranceTypeVehicle, 2}: validateDriverLicense,
	{entity.InsuranceTypeVehicle, 3}: validateAccidentHistory,

	{entity.InsuranceTypeMandatoryHealth, 0}: validatePersonal,
	{entity.InsuranceTypeMandatoryHealth, 1}: validateSocialInsurance,

	{entity.InsuranceTypeNaturalDisaster, 0}: validatePropertyOwner,
	{entity.InsuranceTypeNaturalDisaster, 1}: validateProperty,
}

// validateSection runs the rules of one section of the application's form.
func validateSection(app *entity.Application, index int) []entity.FieldError {
	fn, ok := sectionValidators[sectionKey{Type: app.Type, Index: index}]
	if !ok {
		return nil
	}

	return fn(app)
}

// validateAll returns the index of the first invalid section and its errors, or -1.
func validateAll(app *entity.Application) (int, []entity.FieldError) {
	for i := range wizardSections[app.Type] {
		if errs := validateSection(app, i); len(errs) > 0 {
			return i, errs
		}
	}

	return -1, nil
}

var (
	plateRegex           = regexp.MustCompile(`^\d{2}[A-Z]-\d{4,5}$`)
	idNumberRegex        = regexp.MustCompile(`^(\d{9}|\d{12})$`)
	phoneRegex           = regexp.MustCompile(`^(0|\+84)\d{9}$`)
	socialInsuranceRegex = regexp.MustCompile(`^\d{10}$`)

	fieldValidate = validator.New()
)

const dateLayout = "2006-01-02"

// fieldErrors collects failed rules in declaration order.
type fieldErrors []entity.FieldError

func (e *fieldErrors) add(field, message string) {
	*e = append(*e, entity.FieldError{Field: field, Message: message})
}

func (e *fieldErrors) required(field, value, message string) bool {
	if strings.TrimSpace(value) == "" {
		e.add(field, message)

		return false
	}

	return true
}

func (e *fieldErrors) date(field, value, missing string) {
	if !e.required(field, value, missing) {
		return
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		e.add(field, "Ngày không hợp lệ (định dạng YYYY-MM-DD)")
	}
}

func (e *fieldErrors) idNumber(field, value string) {
	if !e.required(field, value, "Vui lòng nhập số CMND/CCCD") {
		return
	}
	if !idNumberRegex.MatchString(value) {
		e.add(field, "Số CMND/CCCD phải gồm 9 hoặc 12 chữ số")
	}
}

func (e *fieldErrors) phone(field, value string) {
	if !e.required(field, value, "Vui lòng nhập số điện thoại") {
		return
	}
	if !phoneRegex.MatchString(value) {
		e.add(field, "Số điện thoại không hợp lệ")
	}
}

func (e *fieldErrors) optionalEmail(field, value string) {
	if value == "" {
		return
	}
	if err := fieldValidate.Var(value, "email"); err != nil {
		e.add(field, "Email không hợp lệ")
	}
}

func validatePersonal(app *entity.Application) []entity.FieldError {
	var errs fieldErrors
	p := app.Personal
	if p == nil {
		p = &entity.PersonalInfo{}
	}

	errs.required("personal_info.full_name", p.FullName, "Vui lòng nhập họ và tên")
	errs.date("personal_info.date_of_birth", p.DateOfBirth, "Vui lòng nhập ngày sinh")
	errs.required("personal_info.gender", p.Gender, "Vui lòng chọn giới tính")
	errs.idNumber("personal_info.id_number", p.IDNumber)
	errs.phone("personal_info.phone", p.Phone)
	errs.optionalEmail("personal_info.email", p.Email)
	errs.required("personal_info.address", p.Address, "Vui lòng nhập địa chỉ")

	return errs
}

func validateHealthDeclaration(app *entity.Application) []entity.FieldError {
	var errs fieldErrors
	life := app.Life

	if life.HeightCm < 50 || life.HeightCm > 250 {
		errs.add("life.height_cm", "Chiều cao phải từ 50 đến 250 cm")
	}
	if life.WeightKg < 10 || life.WeightKg > 300 {
		errs.add("life.weight_kg", "Cân nặng phải từ 10 đến 300 kg")
	}
	if life.HasChronicIllness {
		errs.required("life.chronic_illness_details", life.ChronicIllnessDetails, "Vui lòng mô tả bệnh mãn tính")
	}

	return errs
}

func validateBeneficiary(app *entity.Application) []entity.FieldError {
	var errs fieldErrors
	b := app.Life.Beneficiary

	errs.required("life.beneficiary.full_name", b.FullName, "Vui lòng nhập họ tên người thụ hưởng")
	errs.required("life.beneficiary.relationship", b.Relationship, "Vui lòng chọn mối quan hệ")
	if b.IDNumber != "" && !idNumberRegex.MatchString(b.IDNumber) {
		errs.add("life.beneficiary.id_number", "Số CMND/CCCD phải gồm 9 hoặc 12 chữ số")
	}
	if b.Phone != "" && !phoneRegex.MatchString(b.Phone) {
		errs.add("life.beneficiary.phone", "Số điện thoại không hợp lệ")
	}

	return errs
}

func validateFamilyMembers(app *entity.Application) []entity.FieldError {
	var errs fieldErrors
	members := app.Health.FamilyMembers

	if len(members) == 0 {
		errs.add("health.family_members", "Hồ sơ phải có ít nhất một thành viên")
	}
	if len(members) > entity.MaxFamilyMembers {
		errs.add("health.family_members", "Chỉ được thêm tối đa 5 thành viên")
	}

	for i, m := range members {
		prefix := "health.family_members[" + strconv.Itoa(i) + "]."
		errs.required(prefix+"full_name", m.FullName, "Vui lòng nhập họ tên thành viên")
		errs.date(prefix+"date_of_birth", m.DateOfBirth, "Vui lòng nhập ngày sinh thành viên")
		errs.required(prefix+"relationship", m.Relationship, "Vui lòng chọn mối quan hệ")
	}

	return errs
}

func validateMedicalHistory(app *entity.Application) []entity.FieldError {
	var errs fieldErrors
	h := app.Health

	if h.HasPreExistingConditions {
		errs.required("health.pre_existing_conditions", h.PreExistingConditions, "Vui lòng mô tả bệnh có sẵn")
	}

	return errs
}

func validateVehicleInfo(app *entity.Application) []entity.FieldError {
	var errs fieldErrors
	v := app.Vehicle

	if errs.required("vehicle.license_plate", v.LicensePlate, "Vui lòng nhập biển số xe") &&
		!plateRegex.MatchString(v.LicensePlate) {
		errs.add("vehicle.license_plate", "Biển số xe không hợp lệ (ví dụ: 30A-12345)")
	}
	errs.required("vehicle.brand", v.Brand, "Vui lòng nhập hãng xe")
	errs.required("vehicle.model", v.Model, "Vui lòng nhập dòng xe")
	if maxYear := time.Now().Year() + 1; v.Year < 1950 || v.Year > maxYear {
		errs.add("vehicle.year", "Năm sản xuất không hợp lệ")
	}
	if v.VehicleType != "car" && v.VehicleType != "motorbike" {
		errs.add("vehicle.vehicle_type", "Vui lòng chọn loại xe")
	}

	return errs
}

func validateDriverLicense(app *entity.Application) []entity.FieldError {
	var errs fieldErrors
	v := app.Vehicle

	errs.required("vehicle.driver_license_number", v.DriverLicenseNumber, "Vui lòng nhập số giấy phép lái xe")
	errs.required("vehicle.driver_license_class", v.DriverLicenseClass, "Vui lòng chọn hạng giấy phép lái xe")
	errs.date("vehicle.driver_license_expiry", v.DriverLicenseExpiry, "Vui lòng nhập ngày hết hạn")

	return errs
}

func validateAccidentHistory(app *entity.Application) []entity.FieldError {
	var errs fieldErrors
	v := app.Vehicle

	if v.HasAccidentHistory {
		if v.AccidentCount < 1 {
			errs.add("vehicle.accident_count", "Số vụ tai nạn phải lớn hơn 0")
		}
		errs.required("vehicle.accident_description", v.AccidentDescription, "Vui lòng mô tả tai nạn")
	}

	return errs
}

func validateSocialInsurance(app *entity.Application) []entity.FieldError {
	var errs fieldErrors
	m := app.MandatoryHealth

	if errs.required("mandatory_health.social_insurance_number", m.SocialInsuranceNumber, "Vui lòng nhập mã số BHXH") &&
		!socialInsuranceRegex.MatchString(m.SocialInsuranceNumber) {
		errs.add("mandatory_health.social_insurance_number", "Mã số BHXH phải gồm 10 chữ số")
	}
	errs.required("mandatory_health.registered_hospital", m.RegisteredHospital, "Vui lòng chọn nơi đăng ký khám chữa bệnh")

	return errs
}

func validatePropertyOwner(app *entity.Application) []entity.FieldError {
	var errs fieldErrors
	o := app.NaturalDisaster.Owner

	errs.required("natural_disaster.chu_tai_san.full_name", o.FullName, "Vui lòng nhập họ tên chủ tài sản")
	errs.idNumber("natural_disaster.chu_tai_san.id_number", o.IDNumber)
	errs.phone("natural_disaster.chu_tai_san.phone", o.Phone)
	errs.optionalEmail("natural_disaster.chu_tai_san.email", o.Email)
	errs.required("natural_disaster.chu_tai_san.address", o.Address, "Vui lòng nhập địa chỉ")

	return errs
}

func validateProperty(app *entity.Application) []entity.FieldError {
	var errs fieldErrors
	d := app.NaturalDisaster

	errs.required("natural_disaster.property_address", d.PropertyAddress, "Vui lòng nhập địa chỉ tài sản")
	errs.required("natural_disaster.property_type", d.PropertyType, "Vui lòng chọn loại tài sản")
	if d.PropertyValue <= 0 {
		errs.add("natural_disaster.property_value", "Giá trị tài sản phải lớn hơn 0")
	}

	return errs
}
