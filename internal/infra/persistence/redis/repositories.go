package redis

import (
	"context"

	"insureflow/config"
	"insureflow/internal/domain/entity"
	"insureflow/internal/domain/repository"

	goredis "github.com/redis/go-redis/v9"
)

const (
	flowStateKeyPrefix    = "insurance-flow:"
	documentFlowKeyPrefix = "document-flow:"
	authUserKeyPrefix     = "auth-user:"
)

type flowStateRepository struct {
	store *jsonStore[entity.PersistedFlow]
}

// NewFlowStateRepository stores the persisted flow subset under insurance-flow:<session>.
func NewFlowStateRepository(client goredis.Cmdable, cfg *config.Config) repository.FlowStateRepository {
	return &flowStateRepository{
		store: &jsonStore[entity.PersistedFlow]{
			client:   client,
			prefix:   flowStateKeyPrefix,
			ttl:      sessionTTL(cfg),
			notFound: repository.ErrFlowStateNotFound,
		},
	}
}

func (r *flowStateRepository) Load(ctx context.Context, sessionID string) (*entity.PersistedFlow, error) {
	return r.store.load(ctx, sessionID)
}

func (r *flowStateRepository) Save(ctx context.Context, sessionID string, flow *entity.PersistedFlow) error {
	return r.store.save(ctx, sessionID, flow)
}

func (r *flowStateRepository) Delete(ctx context.Context, sessionID string) error {
	return r.store.delete(ctx, sessionID)
}

type documentFlowRepository struct {
	store *jsonStore[entity.DocumentFlowState]
}

// NewDocumentFlowRepository stores uploaded document ids and viewer state under document-flow:<session>.
func NewDocumentFlowRepository(client goredis.Cmdable, cfg *config.Config) repository.DocumentFlowRepository {
	return &documentFlowRepository{
		store: &jsonStore[entity.DocumentFlowState]{
			client:   client,
			prefix:   documentFlowKeyPrefix,
			ttl:      sessionTTL(cfg),
			notFound: repository.ErrDocumentFlowNotFound,
		},
	}
}

func (r *documentFlowRepository) Load(ctx context.Context, sessionID string) (*entity.DocumentFlowState, error) {
	return r.store.load(ctx, sessionID)
}

func (r *documentFlowRepository) Save(ctx context.Context, sessionID string, state *entity.DocumentFlowState) error {
	return r.store.save(ctx, sessionID, state)
}

func (r *documentFlowRepository) Delete(ctx context.Context, sessionID string) error {
	return r.store.delete(ctx, sessionID)
}

type authUserRepository struct {
	store *jsonStore[entity.AuthUser]
}

// NewAuthUserRepository keeps the logged-in user of a session under auth-user:<session>.
func NewAuthUserRepository(client goredis.Cmdable, cfg *config.Config) repository.AuthUserRepository {
	return &authUserRepository{
		store: &jsonStore[entity.AuthUser]{
			client:   client,
			prefix:   authUserKeyPrefix,
			ttl:      sessionTTL(cfg),
			notFound: repository.ErrAuthUserNotFound,
		},
	}
}

func (r *authUserRepository) Load(ctx context.Context, sessionID string) (*entity.AuthUser, error) {
	return r.store.load(ctx, sessionID)
}

func (r *authUserRepository) Save(ctx context.Context, sessionID string, user *entity.AuthUser) error {
	return r.store.save(ctx, sessionID, user)
}

func (r *authUserRepository) Delete(ctx context.Context, sessionID string) error {
	return r.store.delete(ctx, sessionID)
}
