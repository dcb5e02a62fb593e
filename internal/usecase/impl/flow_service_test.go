package impl

import (
	"context"
	"testing"
	"time"

	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	mockSvc "insureflow/internal/mocks/service"
	"insureflow/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFlowService(t *testing.T) (usecase.FlowUsecase, *FlowSessions, *mockSvc.MockTokenService) {
	sessions, _ := newTestSessions(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewFlowService(FlowServiceParams{
		Sessions:     sessions,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return srv, sessions, tokenService
}

func TestFlowService_CreateSession_Success(t *testing.T) {
	srv, _, tokenService := createTestFlowService(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	tokenService.EXPECT().GenerateSessionToken(mock.AnythingOfType("string")).Return("signed-token", expiresAt, nil)

	info, err := srv.CreateSession(ctx)

	require.NoError(t, err)
	assert.NotEmpty(t, info.SessionID)
	assert.Equal(t, "signed-token", info.Token)
	assert.Equal(t, expiresAt, info.ExpiresAt)

	state, err := srv.GetState(ctx, info.SessionID)
	require.NoError(t, err)
	assert.Equal(t, entity.FlowStepSelect, state.CurrentStep)
}

func TestFlowService_SelectPackage_MovesToUpload(t *testing.T) {
	srv, sessions, _ := createTestFlowService(t)
	ctx := context.Background()
	seedSession(t, sessions, "s1", func(*entity.FlowState) {})

	state, err := srv.SelectPackage(ctx, "s1", "health-basic")

	require.NoError(t, err)
	assert.Equal(t, "health-basic", state.SelectedPackage.ID)
	assert.Equal(t, entity.FlowStepUpload, state.CurrentStep)
}

func TestFlowService_SelectPackage_UnknownPackage(t *testing.T) {
	srv, sessions, _ := createTestFlowService(t)
	seedSession(t, sessions, "s1", func(*entity.FlowState) {})

	_, err := srv.SelectPackage(context.Background(), "s1", "does-not-exist")

	assert.ErrorIs(t, err, domainerrors.ErrPackageNotFound)
}

func TestFlowService_SetStep_IsNotGuarded(t *testing.T) {
	srv, sessions, _ := createTestFlowService(t)
	seedSession(t, sessions, "s1", func(*entity.FlowState) {})

	state, err := srv.SetStep(context.Background(), "s1", entity.FlowStepSuccess)

	require.NoError(t, err)
	assert.Equal(t, entity.FlowStepSuccess, state.CurrentStep)
}

func TestFlowService_SetStep_InvalidStep(t *testing.T) {
	srv, sessions, _ := createTestFlowService(t)
	seedSession(t, sessions, "s1", func(*entity.FlowState) {})

	_, err := srv.SetStep(context.Background(), "s1", entity.FlowStep("checkout"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidFlowStep)
}

func TestFlowService_Reset_ReturnsInitialValues(t *testing.T) {
	srv, sessions, _ := createTestFlowService(t)
	ctx := context.Background()
	seedSession(t, sessions, "s1", func(state *entity.FlowState) {
		state.SetExtractedData(&entity.ExtractedData{FullName: strPtr("Trần Thị B")})
		state.SetApplicationData(entity.NewApplication(entity.InsuranceTypeLife, nil))
		state.SetCurrentContract(&entity.Contract{ID: "BH12345678"})
		state.SetCurrentStep(entity.FlowStepSuccess)
	})

	state, err := srv.Reset(ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, entity.NewFlowState(), state)
}
