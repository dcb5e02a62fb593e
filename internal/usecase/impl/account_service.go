package impl

import (
	"context"
	"log/slog"

	deliverycontext "insureflow/internal/delivery/context"
	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/repository"
	"insureflow/internal/domain/service"
	"insureflow/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accountService struct {
	authAPI      service.AuthAPI
	authUserRepo repository.AuthUserRepository
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AuthAPI      service.AuthAPI
	AuthUserRepo repository.AuthUserRepository
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		authAPI:      params.AuthAPI,
		authUserRepo: params.AuthUserRepo,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account on the auth backend.
func (srv *accountService) Register(ctx context.Context, registration *entity.Registration) (*entity.AuthUser, error) {
	user, err := srv.authAPI.Register(ctx, registration)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register")
	}

	srv.log(ctx).Info("Account registered", slog.String("user_id", user.ID))

	return user, nil
}

// Login authenticates against the backend and remembers the user on the session, if any.
func (srv *accountService) Login(ctx context.Context, sessionID, email, password string) (*entity.AuthUser, error) {
	user, err := srv.authAPI.Login(ctx, email, password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to login")
	}

	if sessionID != "" {
		if err := srv.authUserRepo.Save(ctx, sessionID, user); err != nil {
			return nil, errors.Wrap(err, "failed to save logged-in user")
		}
	}

	srv.log(ctx).Info("User logged in",
		slog.String("user_id", user.ID),
		slog.Bool("session_bound", sessionID != ""),
	)

	return user, nil
}

// Me resolves a backend token to its user.
func (srv *accountService) Me(ctx context.Context, token string) (*entity.AuthUser, error) {
	if token == "" {
		return nil, domainerrors.ErrNotLoggedIn
	}

	user, err := srv.authAPI.Me(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch current user")
	}

	return user, nil
}

// CurrentUser returns the user logged in on a session.
func (srv *accountService) CurrentUser(ctx context.Context, sessionID string) (*entity.AuthUser, error) {
	user, err := srv.authUserRepo.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrAuthUserNotFound) {
			return nil, domainerrors.ErrNotLoggedIn
		}

		return nil, errors.Wrap(err, "failed to load logged-in user")
	}

	return user, nil
}

// Logout forgets the user of a session.
func (srv *accountService) Logout(ctx context.Context, sessionID string) error {
	if err := srv.authUserRepo.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to logout")
	}

	srv.log(ctx).Info("User logged out", slog.String("session_id", sessionID))

	return nil
}
