package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"insureflow/config"
	"insureflow/internal/domain/entity"
	mockRepo "insureflow/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{TTL: time.Hour},
		Upload:  &config.UploadConfig{MaxFileSize: 1 << 20, MaxFiles: 5},
		QRCode:  &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M", BankCode: "VCB"},
		Worker:  &config.WorkerConfig{MaxAttempts: 3},
	}
}

// newTestSessions returns a session store whose repository accepts every save.
func newTestSessions(t *testing.T) (*FlowSessions, *mockRepo.MockFlowStateRepository) {
	t.Helper()

	repo := mockRepo.NewMockFlowStateRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	sessions := NewFlowSessions(FlowSessionsParams{
		Repo:   repo,
		Config: newTestConfig(),
		Logger: newDiscardLogger(),
	})

	return sessions, repo
}

// seedSession creates a session and applies fn to its state.
func seedSession(t *testing.T, sessions *FlowSessions, sessionID string, fn func(state *entity.FlowState)) {
	t.Helper()

	ctx := context.Background()
	_, err := sessions.Create(ctx, sessionID)
	require.NoError(t, err)

	_, err = sessions.Update(ctx, sessionID, func(state *entity.FlowState, _ *entity.FormWizard) (*entity.FormWizard, error) {
		fn(state)

		return nil, nil
	})
	require.NoError(t, err)
}

func strPtr(s string) *string {
	return &s
}

var (
	jpegBytes = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
	pdfBytes  = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")
)
