package errors

import (
	"net/http"

	"insureflow/internal/domain/entity"
	"insureflow/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// DataError is implemented by errors that carry structured details for the client
type DataError interface {
	Data() any
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	data      any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches copies of the same predefined error made by WithDetails or WithData
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Data returns the structured details attached with WithData
func (e *BaseError) Data() any {
	return e.data
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithData attaches structured details, e.g. a field error list or a redirect target
func (e *BaseError) WithData(data any) *BaseError {
	clone := *e
	clone.data = data

	return &clone
}

// Predefined error types
var (
	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Phiên mua bảo hiểm không tồn tại hoặc đã hết hạn",
		"",
	)

	ErrSessionTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_TOKEN_INVALID",
		"Mã phiên không hợp lệ hoặc đã hết hạn",
		"",
	)

	// Catalog-related errors
	ErrPackageNotFound = NewBaseError(
		http.StatusNotFound,
		"PACKAGE_NOT_FOUND",
		"Không tìm thấy gói bảo hiểm",
		"",
	)

	ErrInvalidInsuranceType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INSURANCE_TYPE",
		"Loại bảo hiểm không hợp lệ",
		"",
	)

	// Flow-related errors
	ErrInvalidFlowStep = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FLOW_STEP",
		"Bước không hợp lệ",
		"",
	)

	ErrNoPackageSelected = NewBaseError(
		http.StatusConflict,
		"NO_PACKAGE_SELECTED",
		"Vui lòng chọn gói bảo hiểm trước",
		"",
	).WithData(map[string]string{"redirect": "/"})

	ErrApplicationMissing = NewBaseError(
		http.StatusConflict,
		"APPLICATION_MISSING",
		"Vui lòng hoàn tất hồ sơ đăng ký trước khi thanh toán",
		"",
	).WithData(map[string]string{"redirect": "/form"})

	ErrFormNotStarted = NewBaseError(
		http.StatusConflict,
		"FORM_NOT_STARTED",
		"Hồ sơ đăng ký chưa được khởi tạo",
		"",
	)

	ErrNotOnConfirmation = NewBaseError(
		http.StatusConflict,
		"NOT_ON_CONFIRMATION",
		"Chỉ có thể gửi hồ sơ ở bước xác nhận",
		"",
	)

	ErrContractNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTRACT_NOT_FOUND",
		"Chưa có hợp đồng cho phiên này",
		"",
	)

	// Form-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Thông tin chưa hợp lệ, vui lòng kiểm tra lại",
		"",
	)

	ErrAcknowledgementRequired = NewBaseError(
		http.StatusUnprocessableEntity,
		"ACKNOWLEDGEMENT_REQUIRED",
		"Vui lòng đồng ý với điều khoản và xác nhận thông tin chính xác",
		"",
	)

	ErrFamilyMemberLimit = NewBaseError(
		http.StatusUnprocessableEntity,
		"FAMILY_MEMBER_LIMIT",
		"Chỉ được thêm tối đa 5 thành viên",
		"",
	)

	ErrFamilyMemberNotFound = NewBaseError(
		http.StatusNotFound,
		"FAMILY_MEMBER_NOT_FOUND",
		"Không tìm thấy thành viên",
		"",
	)

	ErrFamilyMemberMinimum = NewBaseError(
		http.StatusUnprocessableEntity,
		"FAMILY_MEMBER_MINIMUM",
		"Hồ sơ phải có ít nhất một thành viên",
		"",
	)

	ErrFamilyMembersUnsupported = NewBaseError(
		http.StatusBadRequest,
		"FAMILY_MEMBERS_UNSUPPORTED",
		"Gói bảo hiểm này không hỗ trợ thêm thành viên",
		"",
	)

	ErrInvalidFormPatch = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FORM_PATCH",
		"Dữ liệu cập nhật không hợp lệ",
		"",
	)

	// Upload-related errors
	ErrNoFiles = NewBaseError(
		http.StatusBadRequest,
		"NO_FILES",
		"Vui lòng chọn ít nhất một tệp",
		"",
	)

	ErrTooManyFiles = NewBaseError(
		http.StatusBadRequest,
		"TOO_MANY_FILES",
		"Số lượng tệp vượt quá giới hạn",
		"",
	)

	ErrUnsupportedFileType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_FILE_TYPE",
		"Chỉ hỗ trợ ảnh hoặc tệp PDF",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FILE_TOO_LARGE",
		"Tệp vượt quá dung lượng cho phép",
		"",
	)

	ErrNotNaturalDisasterPackage = NewBaseError(
		http.StatusBadRequest,
		"NOT_NATURAL_DISASTER_PACKAGE",
		"Gói được chọn không phải bảo hiểm thiên tai",
		"",
	)

	// Payment-related errors
	ErrInvalidPaymentMethod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYMENT_METHOD",
		"Phương thức thanh toán không hợp lệ",
		"",
	)

	ErrPurchaseNotFound = NewBaseError(
		http.StatusNotFound,
		"PURCHASE_NOT_FOUND",
		"Không tìm thấy giao dịch mua bảo hiểm",
		"",
	)

	ErrPurchaseHistoryForbidden = NewBaseError(
		http.StatusForbidden,
		"PURCHASE_HISTORY_FORBIDDEN",
		"Không thể xem lịch sử mua của người dùng khác",
		"",
	)

	// Authentication-related errors
	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGGED_IN",
		"Vui lòng đăng nhập",
		"",
	)

	// Remote backend errors
	ErrRemoteUnavailable = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_API_ERROR",
		"Máy chủ xử lý tài liệu không phản hồi",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Lỗi hệ thống",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Không tìm thấy tài nguyên",
		"",
	)
)

// NewValidationError returns ErrValidationFailed carrying the failed field list
func NewValidationError(fields []entity.FieldError) *BaseError {
	return ErrValidationFailed.WithData(fields)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Lỗi truy cập cơ sở dữ liệu"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
