package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"strings"

	"insureflow/config"
	deliverycontext "insureflow/internal/delivery/context"
	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/service"
	"insureflow/internal/usecase"
	"insureflow/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type formService struct {
	sessions    *FlowSessions
	storage     service.FileStorage
	maxFileSize int64
	logger      *slog.Logger
}

// FormServiceParams holds dependencies for FormService, injected by Fx.
type FormServiceParams struct {
	fx.In

	Sessions *FlowSessions
	Storage  service.FileStorage
	Config   *config.Config
	Logger   *slog.Logger
}

// NewFormService is the constructor for formService.
func NewFormService(params FormServiceParams) usecase.FormUsecase {
	srv := &formService{
		sessions: params.Sessions,
		storage:  params.Storage,
		logger:   params.Logger,
	}
	if params.Config != nil && params.Config.Upload != nil {
		srv.maxFileSize = params.Config.Upload.MaxFileSize
	}

	return srv
}

func (srv *formService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Enter seeds the application when it is missing or belongs to another insurance type,
// then puts the wizard on its first section.
func (srv *formService) Enter(ctx context.Context, sessionID string) (*usecase.FormView, error) {
	var view *usecase.FormView

	_, err := srv.sessions.Update(ctx, sessionID, func(state *entity.FlowState, _ *entity.FormWizard) (*entity.FormWizard, error) {
		pkg := state.SelectedPackage
		if pkg == nil {
			return nil, domainerrors.ErrNoPackageSelected
		}

		app := state.ApplicationData
		if app == nil || app.Type != pkg.Type {
			app = entity.NewApplication(pkg.Type, state.ExtractedData)
			state.SetApplicationData(app)
			srv.log(ctx).Debug("Application seeded",
				slog.String("session_id", sessionID),
				slog.String("type", pkg.Type.String()),
				slog.Bool("from_extracted_data", state.ExtractedData != nil),
			)
		}
		state.SetCurrentStep(entity.FlowStepForm)

		wizard := newWizard(app.Type)
		view = newFormView(wizard, app)

		return wizard, nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// Get returns the wizard cursor and application.
func (srv *formService) Get(ctx context.Context, sessionID string) (*usecase.FormView, error) {
	var view *usecase.FormView

	err := srv.sessions.View(ctx, sessionID, func(state *entity.FlowState, wizard *entity.FormWizard) error {
		if wizard == nil || state.ApplicationData == nil {
			return domainerrors.ErrFormNotStarted
		}
		view = newFormView(wizard, state.ApplicationData)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// UpdateFields merges a JSON object onto a copy of the application.
// The insurance type cannot be changed through a patch.
func (srv *formService) UpdateFields(ctx context.Context, sessionID string, patch json.RawMessage) (*usecase.FormView, error) {
	return srv.mutate(ctx, sessionID, func(app *entity.Application, _ *entity.FormWizard) error {
		if err := json.Unmarshal(patch, app); err != nil {
			return domainerrors.ErrInvalidFormPatch.WithDetails(err.Error())
		}
		if app.Health != nil && len(app.Health.FamilyMembers) > entity.MaxFamilyMembers {
			return domainerrors.ErrFamilyMemberLimit
		}

		return nil
	})
}

// Next validates the current section and advances only when it has no errors.
func (srv *formService) Next(ctx context.Context, sessionID string) (*usecase.FormView, error) {
	var view *usecase.FormView

	_, err := srv.sessions.Update(ctx, sessionID, func(state *entity.FlowState, wizard *entity.FormWizard) (*entity.FormWizard, error) {
		app := state.ApplicationData
		if wizard == nil || app == nil {
			return nil, domainerrors.ErrFormNotStarted
		}

		if errs := validateSection(app, wizard.CurrentSection); len(errs) > 0 {
			wizard.Errors = errs

			return nil, domainerrors.NewValidationError(errs)
		}

		wizard.Errors = nil
		if !wizard.IsLastSection() {
			wizard.CurrentSection++
		}
		view = newFormView(wizard, app)

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// Back moves to the previous section without validating.
func (srv *formService) Back(ctx context.Context, sessionID string) (*usecase.FormView, error) {
	var view *usecase.FormView

	_, err := srv.sessions.Update(ctx, sessionID, func(state *entity.FlowState, wizard *entity.FormWizard) (*entity.FormWizard, error) {
		if wizard == nil || state.ApplicationData == nil {
			return nil, domainerrors.ErrFormNotStarted
		}

		wizard.Errors = nil
		if wizard.CurrentSection > 0 {
			wizard.CurrentSection--
		}
		view = newFormView(wizard, state.ApplicationData)

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// AddFamilyMember appends a member to a health application. At the cap the list is left unchanged.
func (srv *formService) AddFamilyMember(ctx context.Context, sessionID string, member entity.FamilyMember) (*usecase.FormView, error) {
	return srv.mutate(ctx, sessionID, func(app *entity.Application, _ *entity.FormWizard) error {
		if app.Health == nil {
			return domainerrors.ErrFamilyMembersUnsupported
		}
		if len(app.Health.FamilyMembers) >= entity.MaxFamilyMembers {
			return domainerrors.ErrFamilyMemberLimit
		}
		app.Health.FamilyMembers = append(app.Health.FamilyMembers, member)

		return nil
	})
}

// RemoveFamilyMember removes the member at index. The last remaining member cannot be removed.
func (srv *formService) RemoveFamilyMember(ctx context.Context, sessionID string, index int) (*usecase.FormView, error) {
	return srv.mutate(ctx, sessionID, func(app *entity.Application, _ *entity.FormWizard) error {
		if app.Health == nil {
			return domainerrors.ErrFamilyMembersUnsupported
		}
		members := app.Health.FamilyMembers
		if index < 0 || index >= len(members) {
			return domainerrors.ErrFamilyMemberNotFound
		}
		if len(members) <= 1 {
			return domainerrors.ErrFamilyMemberMinimum
		}
		app.Health.FamilyMembers = append(members[:index:index], members[index+1:]...)

		return nil
	})
}

// AttachSupportingFile stores a file in blob storage and references it from the application.
func (srv *formService) AttachSupportingFile(ctx context.Context, sessionID string, file *usecase.SupportingFileInput) (*usecase.FormView, error) {
	size := int64(len(file.Data))
	if size == 0 {
		return nil, domainerrors.ErrNoFiles
	}
	if srv.maxFileSize > 0 && size > srv.maxFileSize {
		return nil, domainerrors.ErrFileTooLarge.WithDetails(util.FormatBytes(size))
	}
	detected := mimetype.Detect(file.Data)
	if !detected.Is("application/pdf") && !strings.HasPrefix(detected.String(), "image/") {
		return nil, domainerrors.ErrUnsupportedFileType.WithDetails(detected.String())
	}

	name := path.Base(strings.ReplaceAll(file.Name, "\\", "/"))
	key := path.Join("applications", sessionID, util.ChecksumBytes(file.Data)[:16]+"-"+name)

	return srv.mutate(ctx, sessionID, func(app *entity.Application, _ *entity.FormWizard) error {
		if err := srv.storage.Put(ctx, key, file.Data, detected.String()); err != nil {
			return errors.Wrap(err, "failed to store supporting file")
		}

		srv.log(ctx).Info("Supporting file stored",
			slog.String("session_id", sessionID),
			slog.String("key", key),
			slog.String("size", util.FormatBytes(size)),
		)

		app.SupportingFiles = append(app.SupportingFiles, entity.SupportingFile{
			Key:         key,
			Name:        name,
			ContentType: detected.String(),
			Size:        size,
		})

		return nil
	})
}

// Submit re-validates every section and hands the application to the payment step.
func (srv *formService) Submit(ctx context.Context, sessionID string, confirmation entity.Confirmation) (*entity.FlowState, error) {
	state, err := srv.sessions.Update(ctx, sessionID, func(state *entity.FlowState, wizard *entity.FormWizard) (*entity.FormWizard, error) {
		if wizard == nil || state.ApplicationData == nil {
			return nil, domainerrors.ErrFormNotStarted
		}
		if !wizard.IsLastSection() {
			return nil, domainerrors.ErrNotOnConfirmation
		}
		if !confirmation.Acknowledged() {
			return nil, domainerrors.ErrAcknowledgementRequired
		}

		app, err := cloneApplication(state.ApplicationData)
		if err != nil {
			return nil, err
		}
		app.Confirmation = confirmation

		if index, errs := validateAll(app); index >= 0 {
			wizard.CurrentSection = index
			wizard.Errors = errs

			return nil, domainerrors.NewValidationError(errs)
		}

		wizard.Errors = nil
		state.SetApplicationData(app)
		state.SetCurrentStep(entity.FlowStepPayment)

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Application submitted",
		slog.String("session_id", sessionID),
		slog.String("type", state.ApplicationData.Type.String()),
	)

	return state, nil
}

// mutate applies fn to a copy of the application and stores the copy when fn succeeds.
// Applications are never modified in place, so views handed out earlier stay consistent.
func (srv *formService) mutate(
	ctx context.Context,
	sessionID string,
	fn func(app *entity.Application, wizard *entity.FormWizard) error,
) (*usecase.FormView, error) {
	var view *usecase.FormView

	_, err := srv.sessions.Update(ctx, sessionID, func(state *entity.FlowState, wizard *entity.FormWizard) (*entity.FormWizard, error) {
		if wizard == nil || state.ApplicationData == nil {
			return nil, domainerrors.ErrFormNotStarted
		}

		app, err := cloneApplication(state.ApplicationData)
		if err != nil {
			return nil, err
		}
		if err := fn(app, wizard); err != nil {
			return nil, err
		}

		app.Type = state.ApplicationData.Type
		app.Normalize()
		state.SetApplicationData(app)
		view = newFormView(wizard, app)

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func cloneApplication(app *entity.Application) (*entity.Application, error) {
	raw, err := json.Marshal(app)
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy application")
	}

	clone := &entity.Application{}
	if err := json.Unmarshal(raw, clone); err != nil {
		return nil, errors.Wrap(err, "failed to copy application")
	}

	return clone, nil
}

func newFormView(wizard *entity.FormWizard, app *entity.Application) *usecase.FormView {
	w := *wizard

	return &usecase.FormView{Wizard: &w, Application: app}
}
