package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"insureflow/config"
	deliverycontext "insureflow/internal/delivery/context"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/entity"
	"insureflow/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// flowSession is the live state of one purchase flow session.
// Extracted data, the current contract and the wizard cursor exist only here.
type flowSession struct {
	mu       sync.Mutex
	state    *entity.FlowState
	wizard   *entity.FormWizard
	lastSeen time.Time
}

// FlowSessions owns the flow state of every session and persists its durable subset.
type FlowSessions struct {
	mu       sync.Mutex
	sessions map[string]*flowSession
	repo     repository.FlowStateRepository
	idleTTL  time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// FlowSessionsParams holds dependencies for FlowSessions, injected by Fx.
type FlowSessionsParams struct {
	fx.In

	Repo   repository.FlowStateRepository
	Config *config.Config
	Logger *slog.Logger
}

// NewFlowSessions creates the session-scoped flow store
func NewFlowSessions(params FlowSessionsParams) *FlowSessions {
	idleTTL := time.Hour
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.TTL > 0 {
		idleTTL = params.Config.Session.TTL
	}

	return &FlowSessions{
		sessions: make(map[string]*flowSession),
		repo:     params.Repo,
		idleTTL:  idleTTL,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// Create registers a new session at its initial state and persists it.
func (f *FlowSessions) Create(ctx context.Context, sessionID string) (*entity.FlowState, error) {
	sess := &flowSession{state: entity.NewFlowState(), lastSeen: f.now()}

	if err := f.repo.Save(ctx, sessionID, sess.state.Snapshot()); err != nil {
		return nil, errors.Wrap(err, "failed to save new flow state")
	}

	f.mu.Lock()
	f.evictIdleLocked()
	f.sessions[sessionID] = sess
	f.mu.Unlock()

	return copyState(sess.state), nil
}

// View runs fn with the session locked. fn must not mutate the state.
func (f *FlowSessions) View(ctx context.Context, sessionID string, fn func(state *entity.FlowState, wizard *entity.FormWizard) error) error {
	sess, err := f.acquire(ctx, sessionID)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()

	return fn(sess.state, sess.wizard)
}

// Update runs fn with the session locked and persists the result when fn succeeds.
// fn may replace the wizard by returning a non-nil one; returning nil keeps the current wizard.
func (f *FlowSessions) Update(ctx context.Context, sessionID string, fn func(state *entity.FlowState, wizard *entity.FormWizard) (*entity.FormWizard, error)) (*entity.FlowState, error) {
	sess, err := f.acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	wizard, err := fn(sess.state, sess.wizard)
	if err != nil {
		return nil, err
	}
	if wizard != nil {
		sess.wizard = wizard
	}

	if err := f.repo.Save(ctx, sessionID, sess.state.Snapshot()); err != nil {
		return nil, errors.Wrap(err, "failed to save flow state")
	}

	return copyState(sess.state), nil
}

// Reset returns a session to its initial state and drops the wizard cursor under one lock.
func (f *FlowSessions) Reset(ctx context.Context, sessionID string) (*entity.FlowState, error) {
	sess, err := f.acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	sess.state.Reset()
	sess.wizard = nil

	if err := f.repo.Save(ctx, sessionID, sess.state.Snapshot()); err != nil {
		return nil, errors.Wrap(err, "failed to save flow state")
	}

	return copyState(sess.state), nil
}

// acquire returns the session locked, restoring it from the repository on a cache miss.
func (f *FlowSessions) acquire(ctx context.Context, sessionID string) (*flowSession, error) {
	f.mu.Lock()
	sess, ok := f.sessions[sessionID]
	if !ok {
		sess = &flowSession{}
		f.sessions[sessionID] = sess
	}
	sess.lastSeen = f.now()
	f.mu.Unlock()

	sess.mu.Lock()
	if sess.state != nil {
		return sess, nil
	}

	persisted, err := f.repo.Load(ctx, sessionID)
	if err != nil {
		sess.mu.Unlock()
		f.forget(sessionID, sess)
		if errors.Is(err, repository.ErrFlowStateNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load flow state")
	}

	deliverycontext.GetLoggerOrDefault(ctx, f.logger).Debug("Restored flow state from repository",
		slog.String("session_id", sessionID),
		slog.String("step", persisted.CurrentStep.String()),
	)
	sess.state = persisted.Restore()

	return sess, nil
}

// Delete removes a session from the cache and the repository.
func (f *FlowSessions) Delete(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	delete(f.sessions, sessionID)
	f.mu.Unlock()

	return errors.Wrap(f.repo.Delete(ctx, sessionID), "failed to delete flow state")
}

func (f *FlowSessions) forget(sessionID string, sess *flowSession) {
	f.mu.Lock()
	if f.sessions[sessionID] == sess {
		delete(f.sessions, sessionID)
	}
	f.mu.Unlock()
}

// evictIdleLocked drops sessions not touched within idleTTL. Caller holds f.mu.
func (f *FlowSessions) evictIdleLocked() {
	cutoff := f.now().Add(-f.idleTTL)
	for id, sess := range f.sessions {
		if sess.lastSeen.Before(cutoff) && sess.mu.TryLock() {
			delete(f.sessions, id)
			sess.mu.Unlock()
		}
	}
}

func copyState(state *entity.FlowState) *entity.FlowState {
	clone := *state

	return &clone
}
