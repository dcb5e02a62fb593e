package impl

import (
	"context"
	"testing"

	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/repository"
	"insureflow/internal/domain/service"
	mockRepo "insureflow/internal/mocks/repository"
	mockSvc "insureflow/internal/mocks/service"
	"insureflow/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type extractionFixture struct {
	srv          usecase.ExtractionUsecase
	sessions     *FlowSessions
	documentAPI  *mockSvc.MockDocumentAPI
	documentRepo *mockRepo.MockDocumentFlowRepository
}

func createTestExtractionService(t *testing.T) *extractionFixture {
	sessions, _ := newTestSessions(t)
	documentAPI := mockSvc.NewMockDocumentAPI(t)
	documentRepo := mockRepo.NewMockDocumentFlowRepository(t)

	srv := NewExtractionService(ExtractionServiceParams{
		Sessions:     sessions,
		DocumentAPI:  documentAPI,
		Classifier:   NewKeywordClassifier(),
		DocumentRepo: documentRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	seedSession(t, sessions, "s1", func(state *entity.FlowState) {
		state.SetCurrentStep(entity.FlowStepUpload)
	})

	return &extractionFixture{srv: srv, sessions: sessions, documentAPI: documentAPI, documentRepo: documentRepo}
}

func (f *extractionFixture) expectDocumentFlowSaved(t *testing.T, ids ...string) {
	t.Helper()

	f.documentRepo.EXPECT().Load(mock.Anything, "s1").Return(nil, repository.ErrDocumentFlowNotFound)
	f.documentRepo.EXPECT().
		Save(mock.Anything, "s1", mock.AnythingOfType("*entity.DocumentFlowState")).
		Run(func(_ context.Context, _ string, state *entity.DocumentFlowState) {
			assert.Equal(t, ids, state.UploadedDocumentIDs)
		}).
		Return(nil)
}

func TestExtractionService_ProcessUploads_VehicleDocumentGetsFloodOffer(t *testing.T) {
	f := createTestExtractionService(t)
	ctx := context.Background()

	f.documentAPI.EXPECT().Upload(ctx, mock.AnythingOfType("*service.UploadFile")).
		Return(&entity.UploadedDocument{ID: "doc-1", Filename: "cavet_xe.jpg"}, nil)
	f.documentAPI.EXPECT().ExtractVehicleInfo(ctx, "doc-1").Return(&entity.ExtractedData{
		LicensePlate: strPtr("30A-12345"),
		Brand:        strPtr("Toyota"),
		FullName:     strPtr("Lê Văn C"),
	}, nil)
	f.documentAPI.EXPECT().RecommendInsurance(ctx, "doc-1").Return(&service.RecommendationResult{
		Region:   "Miền Trung",
		Reason:   "Khu vực thường xuyên ngập lụt",
		Packages: []service.RecommendedPackage{{ID: "flood-basic"}},
	}, nil)
	f.expectDocumentFlowSaved(t, "doc-1")

	result, err := f.srv.ProcessUploads(ctx, "s1", []*service.UploadFile{{Name: "cavet_xe.jpg", Data: jpegBytes}}, nil)

	require.NoError(t, err)
	require.Len(t, result.Documents, 1)
	assert.Equal(t, entity.DocumentKindVehicle, result.Documents[0].Kind)
	assert.Equal(t, "30A-12345", entity.Value(result.ExtractedData.LicensePlate))

	require.True(t, result.Recommendation.Show)
	require.NotEmpty(t, result.Recommendation.Packages)
	assert.Contains(t, result.Recommendation.Packages[0].Name, "Ngập lụt")
	assert.Equal(t, entity.FlowStepUpload, result.CurrentStep)
}

func TestExtractionService_ProcessUploads_MergesFirstValueAndAdvancesToForm(t *testing.T) {
	f := createTestExtractionService(t)
	ctx := context.Background()

	f.documentAPI.EXPECT().Upload(ctx, mock.MatchedBy(func(file *service.UploadFile) bool { return file.Name == "cccd.jpg" })).
		Return(&entity.UploadedDocument{ID: "doc-1"}, nil)
	f.documentAPI.EXPECT().Upload(ctx, mock.MatchedBy(func(file *service.UploadFile) bool { return file.Name == "scan.pdf" })).
		Return(&entity.UploadedDocument{ID: "doc-2"}, nil)

	f.documentAPI.EXPECT().ExtractPersonInfo(ctx, "doc-1").Return(&entity.ExtractedData{
		FullName: strPtr("Nguyễn Văn A"),
		Phone:    strPtr(""),
	}, nil)
	// The second file is tried as a vehicle paper first and falls back to identity.
	f.documentAPI.EXPECT().ExtractVehicleInfo(ctx, "doc-2").Return(&entity.ExtractedData{}, nil)
	f.documentAPI.EXPECT().ExtractPersonInfo(ctx, "doc-2").Return(&entity.ExtractedData{
		FullName: strPtr("Nguyen Van A"),
		Phone:    strPtr("0912345678"),
	}, nil)

	f.documentAPI.EXPECT().RecommendInsurance(ctx, "doc-1").Return(&service.RecommendationResult{}, nil)
	f.expectDocumentFlowSaved(t, "doc-1", "doc-2")

	var percents []int
	progress := func(done, total, percent int) {
		assert.Equal(t, 2, total)
		percents = append(percents, percent)
	}

	result, err := f.srv.ProcessUploads(ctx, "s1", []*service.UploadFile{
		{Name: "cccd.jpg", Data: jpegBytes},
		{Name: "scan.pdf", Data: pdfBytes},
	}, progress)

	require.NoError(t, err)
	assert.Equal(t, []int{50, 100}, percents)
	assert.Equal(t, "Nguyễn Văn A", entity.Value(result.ExtractedData.FullName))
	assert.Equal(t, "0912345678", entity.Value(result.ExtractedData.Phone))
	assert.False(t, result.Recommendation.Show)
	assert.Equal(t, entity.FlowStepForm, result.CurrentStep)

	state, err := NewFlowService(FlowServiceParams{Sessions: f.sessions, Logger: newDiscardLogger()}).GetState(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, result.ExtractedData, state.ExtractedData)
}

func TestExtractionService_ProcessUploads_FailureDoesNotAbortBatch(t *testing.T) {
	f := createTestExtractionService(t)
	ctx := context.Background()

	f.documentAPI.EXPECT().Upload(ctx, mock.MatchedBy(func(file *service.UploadFile) bool { return file.Name == "cccd.jpg" })).
		Return(nil, errors.New("backend returned 500"))
	f.documentAPI.EXPECT().Upload(ctx, mock.MatchedBy(func(file *service.UploadFile) bool { return file.Name == "cavet.jpg" })).
		Return(&entity.UploadedDocument{ID: "doc-2"}, nil)
	f.documentAPI.EXPECT().ExtractVehicleInfo(ctx, "doc-2").Return(nil, errors.New("not a vehicle paper"))
	f.documentAPI.EXPECT().ExtractPersonInfo(ctx, "doc-2").Return(&entity.ExtractedData{FullName: strPtr("Phạm D")}, nil)
	f.documentAPI.EXPECT().RecommendInsurance(ctx, "doc-2").Return(nil, errors.New("timeout"))
	f.expectDocumentFlowSaved(t, "doc-2")

	result, err := f.srv.ProcessUploads(ctx, "s1", []*service.UploadFile{
		{Name: "notes.txt", Data: []byte("plain text is not a document")},
		{Name: "cccd.jpg", Data: jpegBytes},
		{Name: "cavet.jpg", Data: jpegBytes},
	}, nil)

	require.NoError(t, err)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, StageValidate, result.Failures[0].Stage)
	assert.Equal(t, StageUpload, result.Failures[1].Stage)
	require.Len(t, result.Documents, 1)
	assert.Equal(t, "Phạm D", entity.Value(result.ExtractedData.FullName))
	assert.False(t, result.Recommendation.Show)
	assert.Equal(t, entity.FlowStepForm, result.CurrentStep)
}

func TestExtractionService_ProcessUploads_AllFilesFailedStaysOnUpload(t *testing.T) {
	f := createTestExtractionService(t)
	ctx := context.Background()

	f.documentAPI.EXPECT().Upload(ctx, mock.Anything).Return(nil, errors.New("backend unavailable"))

	result, err := f.srv.ProcessUploads(ctx, "s1", []*service.UploadFile{{Name: "cccd.jpg", Data: jpegBytes}}, nil)

	require.NoError(t, err)
	assert.Empty(t, result.Documents)
	assert.Len(t, result.Failures, 1)
	assert.Nil(t, result.ExtractedData)
	assert.Equal(t, entity.FlowStepUpload, result.CurrentStep)
}

func TestExtractionService_ProcessUploads_RejectsBatchLimits(t *testing.T) {
	f := createTestExtractionService(t)
	ctx := context.Background()

	_, err := f.srv.ProcessUploads(ctx, "s1", nil, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNoFiles)

	files := make([]*service.UploadFile, 6)
	for i := range files {
		files[i] = &service.UploadFile{Name: "cccd.jpg", Data: jpegBytes}
	}
	_, err = f.srv.ProcessUploads(ctx, "s1", files, nil)
	assert.ErrorIs(t, err, domainerrors.ErrTooManyFiles)
}

func TestExtractionService_ProcessUploads_FileTooLarge(t *testing.T) {
	f := createTestExtractionService(t)
	ctx := context.Background()
	large := append(append([]byte{}, jpegBytes...), make([]byte, 2<<20)...)

	result, err := f.srv.ProcessUploads(ctx, "s1", []*service.UploadFile{{Name: "cccd.jpg", Data: large}}, nil)

	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, StageValidate, result.Failures[0].Stage)
	assert.Contains(t, result.Failures[0].Error, "2.0 MB")
}

func TestExtractionService_AcceptRecommendation(t *testing.T) {
	f := createTestExtractionService(t)
	ctx := context.Background()

	state, err := f.srv.AcceptRecommendation(ctx, "s1", "flood-basic")
	require.NoError(t, err)
	assert.Equal(t, "flood-basic", state.SelectedPackage.ID)
	assert.Equal(t, entity.FlowStepForm, state.CurrentStep)

	_, err = f.srv.AcceptRecommendation(ctx, "s1", "life-basic")
	assert.ErrorIs(t, err, domainerrors.ErrNotNaturalDisasterPackage)
}

func TestExtractionService_DeclineRecommendation(t *testing.T) {
	f := createTestExtractionService(t)

	state, err := f.srv.DeclineRecommendation(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, entity.FlowStepForm, state.CurrentStep)
}
