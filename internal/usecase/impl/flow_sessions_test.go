package impl

import (
	"context"
	"testing"

	"insureflow/internal/domain/catalog"
	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/repository"
	mockRepo "insureflow/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFlowSessions_Create_PersistsInitialState(t *testing.T) {
	repo := mockRepo.NewMockFlowStateRepository(t)
	sessions := NewFlowSessions(FlowSessionsParams{Repo: repo, Config: newTestConfig(), Logger: newDiscardLogger()})
	ctx := context.Background()

	repo.EXPECT().
		Save(ctx, "s1", &entity.PersistedFlow{CurrentStep: entity.FlowStepSelect}).
		Return(nil)

	state, err := sessions.Create(ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, entity.FlowStepSelect, state.CurrentStep)
}

func TestFlowSessions_Update_PersistsOnlyDurableSubset(t *testing.T) {
	repo := mockRepo.NewMockFlowStateRepository(t)
	sessions := NewFlowSessions(FlowSessionsParams{Repo: repo, Config: newTestConfig(), Logger: newDiscardLogger()})
	ctx := context.Background()
	pkg, _ := catalog.GetPackageByID("life-basic")

	repo.EXPECT().Save(ctx, "s1", mock.Anything).Return(nil).Once()
	_, err := sessions.Create(ctx, "s1")
	require.NoError(t, err)

	var saved *entity.PersistedFlow
	repo.EXPECT().Save(ctx, "s1", mock.Anything).
		Run(func(_ context.Context, _ string, flow *entity.PersistedFlow) { saved = flow }).
		Return(nil).Once()

	_, err = sessions.Update(ctx, "s1", func(state *entity.FlowState, _ *entity.FormWizard) (*entity.FormWizard, error) {
		state.SetSelectedPackage(pkg)
		state.SetExtractedData(&entity.ExtractedData{FullName: strPtr("Nguyễn Văn A")})
		state.SetCurrentStep(entity.FlowStepUpload)

		return nil, nil
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Same(t, pkg, saved.SelectedPackage)
	assert.Equal(t, entity.FlowStepUpload, saved.CurrentStep)
}

func TestFlowSessions_Update_ErrorSkipsSave(t *testing.T) {
	repo := mockRepo.NewMockFlowStateRepository(t)
	sessions := NewFlowSessions(FlowSessionsParams{Repo: repo, Config: newTestConfig(), Logger: newDiscardLogger()})
	ctx := context.Background()

	repo.EXPECT().Save(ctx, "s1", mock.Anything).Return(nil).Once()
	_, err := sessions.Create(ctx, "s1")
	require.NoError(t, err)

	_, err = sessions.Update(ctx, "s1", func(*entity.FlowState, *entity.FormWizard) (*entity.FormWizard, error) {
		return nil, domainerrors.ErrFormNotStarted
	})

	assert.ErrorIs(t, err, domainerrors.ErrFormNotStarted)
}

func TestFlowSessions_Reset_DropsWizardWithState(t *testing.T) {
	repo := mockRepo.NewMockFlowStateRepository(t)
	sessions := NewFlowSessions(FlowSessionsParams{Repo: repo, Config: newTestConfig(), Logger: newDiscardLogger()})
	ctx := context.Background()
	pkg, _ := catalog.GetPackageByID("life-basic")

	repo.EXPECT().Save(ctx, "s1", mock.Anything).Return(nil).Times(2)
	_, err := sessions.Create(ctx, "s1")
	require.NoError(t, err)
	_, err = sessions.Update(ctx, "s1", func(state *entity.FlowState, _ *entity.FormWizard) (*entity.FormWizard, error) {
		state.SetSelectedPackage(pkg)
		state.SetApplicationData(entity.NewApplication(entity.InsuranceTypeLife, nil))

		return &entity.FormWizard{CurrentSection: 2}, nil
	})
	require.NoError(t, err)

	repo.EXPECT().
		Save(ctx, "s1", &entity.PersistedFlow{CurrentStep: entity.FlowStepSelect}).
		Return(nil).Once()

	state, err := sessions.Reset(ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, entity.NewFlowState(), state)

	err = sessions.View(ctx, "s1", func(state *entity.FlowState, wizard *entity.FormWizard) error {
		assert.Nil(t, wizard)
		assert.Nil(t, state.ApplicationData)

		return nil
	})
	require.NoError(t, err)
}

func TestFlowSessions_View_RestoresFromRepositoryWithoutTransientFields(t *testing.T) {
	repo := mockRepo.NewMockFlowStateRepository(t)
	sessions := NewFlowSessions(FlowSessionsParams{Repo: repo, Config: newTestConfig(), Logger: newDiscardLogger()})
	ctx := context.Background()
	pkg, _ := catalog.GetPackageByID("vehicle-basic")

	repo.EXPECT().Load(ctx, "restored").Return(&entity.PersistedFlow{
		SelectedPackage: pkg,
		CurrentStep:     entity.FlowStepForm,
	}, nil).Once()

	var got entity.FlowState
	err := sessions.View(ctx, "restored", func(state *entity.FlowState, wizard *entity.FormWizard) error {
		got = *state
		assert.Nil(t, wizard)

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, pkg, got.SelectedPackage)
	assert.Equal(t, entity.FlowStepForm, got.CurrentStep)
	assert.Nil(t, got.ExtractedData)
	assert.Nil(t, got.CurrentContract)

	// Second access is served from the cache.
	err = sessions.View(ctx, "restored", func(*entity.FlowState, *entity.FormWizard) error { return nil })
	require.NoError(t, err)
}

func TestFlowSessions_View_UnknownSession(t *testing.T) {
	repo := mockRepo.NewMockFlowStateRepository(t)
	sessions := NewFlowSessions(FlowSessionsParams{Repo: repo, Config: newTestConfig(), Logger: newDiscardLogger()})
	ctx := context.Background()

	repo.EXPECT().Load(ctx, "missing").Return(nil, repository.ErrFlowStateNotFound)

	err := sessions.View(ctx, "missing", func(*entity.FlowState, *entity.FormWizard) error { return nil })

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestFlowSessions_View_RepositoryFailure(t *testing.T) {
	repo := mockRepo.NewMockFlowStateRepository(t)
	sessions := NewFlowSessions(FlowSessionsParams{Repo: repo, Config: newTestConfig(), Logger: newDiscardLogger()})
	ctx := context.Background()
	redisDown := errors.New("connection refused")

	repo.EXPECT().Load(ctx, "s1").Return(nil, redisDown)

	err := sessions.View(ctx, "s1", func(*entity.FlowState, *entity.FormWizard) error { return nil })

	assert.ErrorIs(t, err, redisDown)
	assert.NotErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestFlowSessions_Delete(t *testing.T) {
	sessions, repo := newTestSessions(t)
	ctx := context.Background()

	seedSession(t, sessions, "s1", func(*entity.FlowState) {})

	repo.EXPECT().Delete(ctx, "s1").Return(nil)
	require.NoError(t, sessions.Delete(ctx, "s1"))

	repo.EXPECT().Load(ctx, "s1").Return(nil, repository.ErrFlowStateNotFound)
	err := sessions.View(ctx, "s1", func(*entity.FlowState, *entity.FormWizard) error { return nil })
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}
