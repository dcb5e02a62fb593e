package usecase

import (
	"context"
	"encoding/json"

	"insureflow/internal/domain/entity"
)

// FormView is the wizard cursor together with the application being edited.
type FormView struct {
	Wizard      *entity.FormWizard  `json:"wizard"`
	Application *entity.Application `json:"application"`
}

// SupportingFileInput is a file attached on the application form.
type SupportingFileInput struct {
	Name        string
	ContentType string
	Data        []byte
}

// FormUsecase defines the application form wizard operations
type FormUsecase interface {
	// Enter starts or resumes the wizard, seeding the application from extracted data
	Enter(ctx context.Context, sessionID string) (*FormView, error)

	// Get returns the current wizard state
	Get(ctx context.Context, sessionID string) (*FormView, error)

	// UpdateFields merges a JSON patch into the application
	UpdateFields(ctx context.Context, sessionID string, patch json.RawMessage) (*FormView, error)

	// Next validates the current section and advances when it has no errors
	Next(ctx context.Context, sessionID string) (*FormView, error)

	// Back moves to the previous section without validating
	Back(ctx context.Context, sessionID string) (*FormView, error)

	// AddFamilyMember appends a member to a health application
	AddFamilyMember(ctx context.Context, sessionID string, member entity.FamilyMember) (*FormView, error)

	// RemoveFamilyMember removes the member at index
	RemoveFamilyMember(ctx context.Context, sessionID string, index int) (*FormView, error)

	// AttachSupportingFile stores a file and references it from the application
	AttachSupportingFile(ctx context.Context, sessionID string, file *SupportingFileInput) (*FormView, error)

	// Submit finalizes the application and moves the flow to payment
	Submit(ctx context.Context, sessionID string, confirmation entity.Confirmation) (*entity.FlowState, error)
}
