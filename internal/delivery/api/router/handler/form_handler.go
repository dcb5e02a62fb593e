package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"insureflow/internal/delivery/api/response"
	deliverycontext "insureflow/internal/delivery/context"
	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type FormHandler struct {
	uc     usecase.FormUsecase
	logger *slog.Logger
}

func NewFormHandler(uc usecase.FormUsecase, logger *slog.Logger) *FormHandler {
	return &FormHandler{uc: uc, logger: logger}
}

type familyMemberRequest struct {
	FullName     string `json:"full_name"     validate:"required"`
	DateOfBirth  string `json:"date_of_birth" validate:"required"`
	Gender       string `json:"gender"`
	Relationship string `json:"relationship"  validate:"required"`
}

// Enter handles POST /flow/form/enter
func (h *FormHandler) Enter(c echo.Context) error {
	view, err := h.uc.Enter(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Get handles GET /flow/form
func (h *FormHandler) Get(c echo.Context) error {
	view, err := h.uc.Get(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateFields handles PATCH /flow/form with a partial application document
func (h *FormHandler) UpdateFields(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil || !json.Valid(body) {
		return response.BindingError(c, "INVALID_INPUT", "Body must be a JSON object")
	}

	view, err := h.uc.UpdateFields(c.Request().Context(), deliverycontext.GetSessionID(c), body)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Next handles POST /flow/form/next
func (h *FormHandler) Next(c echo.Context) error {
	view, err := h.uc.Next(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Back handles POST /flow/form/back
func (h *FormHandler) Back(c echo.Context) error {
	view, err := h.uc.Back(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AddFamilyMember handles POST /flow/form/family-members
func (h *FormHandler) AddFamilyMember(c echo.Context) error {
	var input familyMemberRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid family member")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	member := entity.FamilyMember{
		FullName:     input.FullName,
		DateOfBirth:  input.DateOfBirth,
		Gender:       input.Gender,
		Relationship: input.Relationship,
	}
	view, err := h.uc.AddFamilyMember(c.Request().Context(), deliverycontext.GetSessionID(c), member)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// RemoveFamilyMember handles DELETE /flow/form/family-members/:index
func (h *FormHandler) RemoveFamilyMember(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return domainerrors.ErrFamilyMemberNotFound.WithDetails(c.Param("index"))
	}

	view, err := h.uc.RemoveFamilyMember(c.Request().Context(), deliverycontext.GetSessionID(c), index)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AttachFile handles POST /flow/form/files with a multipart "file" field
func (h *FormHandler) AttachFile(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrNoFiles
	}

	data, err := readFileHeader(header)
	if err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.AttachSupportingFile(c.Request().Context(), deliverycontext.GetSessionID(c), &usecase.SupportingFileInput{
		Name:        header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Submit handles POST /flow/form/submit
func (h *FormHandler) Submit(c echo.Context) error {
	var input entity.Confirmation
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation")
	}

	state, err := h.uc.Submit(c.Request().Context(), deliverycontext.GetSessionID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state)
}
