// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "insureflow/internal/delivery/context"
	"insureflow/internal/domain/catalog"
	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/service"
	"insureflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// flowService implements the FlowUsecase interface.
type flowService struct {
	sessions     *FlowSessions
	tokenService service.TokenService
	logger       *slog.Logger
}

// FlowServiceParams holds dependencies for FlowService, injected by Fx.
type FlowServiceParams struct {
	fx.In

	Sessions     *FlowSessions
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewFlowService is the constructor for flowService.
func NewFlowService(params FlowServiceParams) usecase.FlowUsecase {
	return &flowService{
		sessions:     params.Sessions,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *flowService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession opens a new flow session and signs its token.
func (srv *flowService) CreateSession(ctx context.Context) (*usecase.SessionInfo, error) {
	sessionID := uuid.New().String()

	if _, err := srv.sessions.Create(ctx, sessionID); err != nil {
		return nil, errors.Wrap(err, "failed to create flow session")
	}

	token, expiresAt, err := srv.tokenService.GenerateSessionToken(sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("Flow session created", slog.String("session_id", sessionID))

	return &usecase.SessionInfo{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// GetState returns a copy of the session's flow state.
func (srv *flowService) GetState(ctx context.Context, sessionID string) (*entity.FlowState, error) {
	var out *entity.FlowState
	err := srv.sessions.View(ctx, sessionID, func(state *entity.FlowState, _ *entity.FormWizard) error {
		out = copyState(state)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SelectPackage stores the chosen package and moves the flow to upload.
func (srv *flowService) SelectPackage(ctx context.Context, sessionID, packageID string) (*entity.FlowState, error) {
	pkg, ok := catalog.GetPackageByID(packageID)
	if !ok {
		return nil, domainerrors.ErrPackageNotFound.WithDetails(packageID)
	}

	state, err := srv.sessions.Update(ctx, sessionID, func(state *entity.FlowState, _ *entity.FormWizard) (*entity.FormWizard, error) {
		state.SetSelectedPackage(pkg)
		state.SetCurrentStep(entity.FlowStepUpload)

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Package selected",
		slog.String("session_id", sessionID),
		slog.String("package_id", pkg.ID),
	)

	return state, nil
}

// SetStep moves the cursor. Transitions are not guarded.
func (srv *flowService) SetStep(ctx context.Context, sessionID string, step entity.FlowStep) (*entity.FlowState, error) {
	if !step.IsValid() {
		return nil, domainerrors.ErrInvalidFlowStep.WithDetails(step.String())
	}

	return srv.sessions.Update(ctx, sessionID, func(state *entity.FlowState, _ *entity.FormWizard) (*entity.FormWizard, error) {
		state.SetCurrentStep(step)

		return nil, nil
	})
}

// Reset returns the flow to its initial values and drops the wizard.
func (srv *flowService) Reset(ctx context.Context, sessionID string) (*entity.FlowState, error) {
	state, err := srv.sessions.Reset(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Flow reset", slog.String("session_id", sessionID))

	return state, nil
}
