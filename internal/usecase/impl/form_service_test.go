package impl

import (
	"context"
	"encoding/json"
	"testing"

	"insureflow/internal/domain/catalog"
	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	mockSvc "insureflow/internal/mocks/service"
	"insureflow/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validPersonalPatch = `{"personal_info": {
	"full_name": "Nguyễn Văn A",
	"date_of_birth": "1990-05-12",
	"gender": "male",
	"id_number": "012345678901",
	"phone": "0912345678",
	"address": "12 Lê Lợi, Quận 1, TP.HCM"
}}`

func createTestFormService(t *testing.T) (usecase.FormUsecase, *FlowSessions, *mockSvc.MockFileStorage) {
	t.Helper()

	sessions, _ := newTestSessions(t)
	storage := mockSvc.NewMockFileStorage(t)

	srv := NewFormService(FormServiceParams{
		Sessions: sessions,
		Storage:  storage,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return srv, sessions, storage
}

// enterForm seeds a session with the package selected and starts the wizard.
func enterForm(t *testing.T, srv usecase.FormUsecase, sessions *FlowSessions, packageID string, extracted *entity.ExtractedData) *usecase.FormView {
	t.Helper()

	pkg, ok := catalog.GetPackageByID(packageID)
	require.True(t, ok)

	seedSession(t, sessions, "s1", func(state *entity.FlowState) {
		state.SetSelectedPackage(pkg)
		state.SetExtractedData(extracted)
	})

	view, err := srv.Enter(context.Background(), "s1")
	require.NoError(t, err)

	return view
}

func fieldErrorsOf(t *testing.T, err error) []entity.FieldError {
	t.Helper()

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))

	fields, ok := appErr.Data().([]entity.FieldError)
	require.True(t, ok)

	return fields
}

func fieldNames(errs []entity.FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}

	return names
}

func TestFormService_Enter(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)

	view := enterForm(t, srv, sessions, "health-basic", &entity.ExtractedData{
		FullName:    strPtr("Trần Thị B"),
		DateOfBirth: strPtr("1985-01-20"),
		Gender:      strPtr("female"),
	})

	assert.Equal(t, 0, view.Wizard.CurrentSection)
	assert.Len(t, view.Wizard.Sections, 4)
	require.NotNil(t, view.Application.Personal)
	assert.Equal(t, "Trần Thị B", view.Application.Personal.FullName)
	require.Len(t, view.Application.Health.FamilyMembers, 1)
	assert.Equal(t, "Trần Thị B", view.Application.Health.FamilyMembers[0].FullName)
	assert.Equal(t, "self", view.Application.Health.FamilyMembers[0].Relationship)

	state, err := NewFlowService(FlowServiceParams{Sessions: sessions, Logger: newDiscardLogger()}).GetState(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.FlowStepForm, state.CurrentStep)
}

func TestFormService_Enter_NaturalDisasterSeedsOwner(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)

	view := enterForm(t, srv, sessions, "flood-basic", &entity.ExtractedData{
		FullName: strPtr("Lê Văn C"),
		IDNumber: strPtr("123456789"),
	})

	assert.Nil(t, view.Application.Personal)
	assert.Equal(t, "Lê Văn C", view.Application.NaturalDisaster.Owner.FullName)
	assert.Equal(t, "chu_tai_san", view.Wizard.Sections[0].Key)
}

func TestFormService_Enter_NoPackageSelected(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)
	seedSession(t, sessions, "s1", func(*entity.FlowState) {})

	_, err := srv.Enter(context.Background(), "s1")

	assert.ErrorIs(t, err, domainerrors.ErrNoPackageSelected)
}

func TestFormService_Get_NotStarted(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)
	seedSession(t, sessions, "s1", func(*entity.FlowState) {})

	_, err := srv.Get(context.Background(), "s1")

	assert.ErrorIs(t, err, domainerrors.ErrFormNotStarted)
}

func TestFormService_UpdateFields(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)
	ctx := context.Background()
	before := enterForm(t, srv, sessions, "life-basic", nil)

	view, err := srv.UpdateFields(ctx, "s1", json.RawMessage(`{"type": "vehicle", "personal_info": {"full_name": "Phạm D"}, "life": {"height_cm": 170}}`))

	require.NoError(t, err)
	assert.Equal(t, entity.InsuranceTypeLife, view.Application.Type)
	assert.Nil(t, view.Application.Vehicle)
	assert.Equal(t, "Phạm D", view.Application.Personal.FullName)
	assert.Equal(t, "Việt Nam", view.Application.Personal.Nationality)
	assert.Equal(t, 170, view.Application.Life.HeightCm)

	// Views handed out earlier are not modified.
	assert.Empty(t, before.Application.Personal.FullName)

	_, err = srv.UpdateFields(ctx, "s1", json.RawMessage(`{"personal_info": `))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFormPatch)
}

func TestFormService_Next_BlockedByErrors(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)
	ctx := context.Background()
	enterForm(t, srv, sessions, "life-basic", nil)

	_, err := srv.Next(ctx, "s1")
	fields := fieldErrorsOf(t, err)
	assert.Contains(t, fieldNames(fields), "personal_info.full_name")
	assert.NotContains(t, fieldNames(fields), "personal_info.email")

	view, err := srv.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Wizard.CurrentSection)
	assert.NotEmpty(t, view.Wizard.Errors)

	_, err = srv.UpdateFields(ctx, "s1", json.RawMessage(validPersonalPatch))
	require.NoError(t, err)

	view, err = srv.Next(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Wizard.CurrentSection)
	assert.Empty(t, view.Wizard.Errors)
}

func TestFormService_Next_InvalidEmail(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)
	ctx := context.Background()
	enterForm(t, srv, sessions, "life-basic", nil)

	_, err := srv.UpdateFields(ctx, "s1", json.RawMessage(validPersonalPatch))
	require.NoError(t, err)
	_, err = srv.UpdateFields(ctx, "s1", json.RawMessage(`{"personal_info": {"email": "not-an-email"}}`))
	require.NoError(t, err)

	_, err = srv.Next(ctx, "s1")

	assert.Equal(t, []string{"personal_info.email"}, fieldNames(fieldErrorsOf(t, err)))
}

func TestFormService_Next_LicensePlate(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)
	ctx := context.Background()
	enterForm(t, srv, sessions, "vehicle-basic", nil)

	_, err := srv.UpdateFields(ctx, "s1", json.RawMessage(validPersonalPatch))
	require.NoError(t, err)
	_, err = srv.Next(ctx, "s1")
	require.NoError(t, err)

	_, err = srv.UpdateFields(ctx, "s1", json.RawMessage(`{"vehicle": {
		"license_plate": "30A-1", "brand": "Honda", "model": "Wave", "year": 2020, "vehicle_type": "motorbike"
	}}`))
	require.NoError(t, err)

	_, err = srv.Next(ctx, "s1")
	assert.Equal(t, []string{"vehicle.license_plate"}, fieldNames(fieldErrorsOf(t, err)))

	_, err = srv.UpdateFields(ctx, "s1", json.RawMessage(`{"vehicle": {"license_plate": "30A-12345"}}`))
	require.NoError(t, err)

	view, err := srv.Next(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, view.Wizard.CurrentSection)
	assert.Equal(t, "Honda", view.Application.Vehicle.Brand)
}

func TestFormService_Back(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)
	ctx := context.Background()
	enterForm(t, srv, sessions, "mandatory-health", nil)

	view, err := srv.Back(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Wizard.CurrentSection)

	_, err = srv.UpdateFields(ctx, "s1", json.RawMessage(validPersonalPatch))
	require.NoError(t, err)
	_, err = srv.Next(ctx, "s1")
	require.NoError(t, err)

	// Back does not validate the section being left.
	view, err = srv.Back(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Wizard.CurrentSection)
}

func TestFormService_FamilyMembers(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)
	ctx := context.Background()
	enterForm(t, srv, sessions, "health-basic", nil)

	_, err := srv.RemoveFamilyMember(ctx, "s1", 0)
	assert.ErrorIs(t, err, domainerrors.ErrFamilyMemberMinimum)

	for i := 0; i < entity.MaxFamilyMembers-1; i++ {
		_, err = srv.AddFamilyMember(ctx, "s1", entity.FamilyMember{FullName: "Thành viên", Relationship: "child"})
		require.NoError(t, err)
	}

	_, err = srv.AddFamilyMember(ctx, "s1", entity.FamilyMember{FullName: "Thành viên 6"})
	assert.ErrorIs(t, err, domainerrors.ErrFamilyMemberLimit)

	view, err := srv.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, view.Application.Health.FamilyMembers, entity.MaxFamilyMembers)

	_, err = srv.RemoveFamilyMember(ctx, "s1", entity.MaxFamilyMembers)
	assert.ErrorIs(t, err, domainerrors.ErrFamilyMemberNotFound)

	view, err = srv.RemoveFamilyMember(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Len(t, view.Application.Health.FamilyMembers, entity.MaxFamilyMembers-1)
	assert.Equal(t, "child", view.Application.Health.FamilyMembers[0].Relationship)
}

func TestFormService_FamilyMembers_UnsupportedType(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)
	enterForm(t, srv, sessions, "life-basic", nil)

	_, err := srv.AddFamilyMember(context.Background(), "s1", entity.FamilyMember{FullName: "X"})

	assert.ErrorIs(t, err, domainerrors.ErrFamilyMembersUnsupported)
}

func TestFormService_UpdateFields_FamilyMemberLimit(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)
	enterForm(t, srv, sessions, "health-basic", nil)

	members := make([]entity.FamilyMember, entity.MaxFamilyMembers+1)
	patch, err := json.Marshal(map[string]any{"health": map[string]any{"family_members": members}})
	require.NoError(t, err)

	_, err = srv.UpdateFields(context.Background(), "s1", patch)

	assert.ErrorIs(t, err, domainerrors.ErrFamilyMemberLimit)
}

func TestFormService_Submit(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)
	ctx := context.Background()
	enterForm(t, srv, sessions, "health-basic", nil)

	_, err := srv.UpdateFields(ctx, "s1", json.RawMessage(validPersonalPatch))
	require.NoError(t, err)
	_, err = srv.UpdateFields(ctx, "s1", json.RawMessage(`{"health": {"family_members": [
		{"full_name": "Nguyễn Văn A", "date_of_birth": "1990-05-12", "relationship": "self"}
	]}}`))
	require.NoError(t, err)

	ack := entity.Confirmation{AgreeTerms: true, ConfirmAccuracy: true}

	_, err = srv.Submit(ctx, "s1", ack)
	assert.ErrorIs(t, err, domainerrors.ErrNotOnConfirmation)

	for i := 0; i < 3; i++ {
		_, err = srv.Next(ctx, "s1")
		require.NoError(t, err)
	}

	_, err = srv.Submit(ctx, "s1", entity.Confirmation{AgreeTerms: true})
	assert.ErrorIs(t, err, domainerrors.ErrAcknowledgementRequired)

	state, err := srv.Submit(ctx, "s1", ack)
	require.NoError(t, err)
	assert.Equal(t, entity.FlowStepPayment, state.CurrentStep)
	assert.True(t, state.ApplicationData.Confirmation.Acknowledged())
}

func TestFormService_Submit_RevalidatesEverySection(t *testing.T) {
	srv, sessions, _ := createTestFormService(t)
	ctx := context.Background()
	enterForm(t, srv, sessions, "mandatory-health", nil)

	_, err := srv.UpdateFields(ctx, "s1", json.RawMessage(validPersonalPatch))
	require.NoError(t, err)
	_, err = srv.Next(ctx, "s1")
	require.NoError(t, err)
	_, err = srv.UpdateFields(ctx, "s1", json.RawMessage(`{"mandatory_health": {
		"social_insurance_number": "0123456789", "registered_hospital": "Bệnh viện Chợ Rẫy"
	}}`))
	require.NoError(t, err)
	_, err = srv.Next(ctx, "s1")
	require.NoError(t, err)

	// Invalidate an earlier section while on the confirmation screen.
	_, err = srv.UpdateFields(ctx, "s1", json.RawMessage(`{"personal_info": {"phone": "123"}}`))
	require.NoError(t, err)

	_, err = srv.Submit(ctx, "s1", entity.Confirmation{AgreeTerms: true, ConfirmAccuracy: true})
	assert.Equal(t, []string{"personal_info.phone"}, fieldNames(fieldErrorsOf(t, err)))

	view, err := srv.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Wizard.CurrentSection)
	assert.False(t, view.Application.Confirmation.Acknowledged())
}

func TestFormService_AttachSupportingFile(t *testing.T) {
	srv, sessions, storage := createTestFormService(t)
	ctx := context.Background()
	enterForm(t, srv, sessions, "flood-basic", nil)

	var storedKey string
	storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), jpegBytes, "image/jpeg").
		Run(func(_ context.Context, key string, _ []byte, _ string) { storedKey = key }).
		Return(nil)

	view, err := srv.AttachSupportingFile(ctx, "s1", &usecase.SupportingFileInput{
		Name: `C:\photos\so_do.jpg`,
		Data: jpegBytes,
	})

	require.NoError(t, err)
	require.Len(t, view.Application.SupportingFiles, 1)
	file := view.Application.SupportingFiles[0]
	assert.Equal(t, storedKey, file.Key)
	assert.Equal(t, "so_do.jpg", file.Name)
	assert.Regexp(t, `^applications/s1/[0-9a-f]{16}-so_do\.jpg$`, file.Key)
	assert.Equal(t, int64(len(jpegBytes)), file.Size)
}

func TestFormService_AttachSupportingFile_Rejected(t *testing.T) {
	srv, sessions, storage := createTestFormService(t)
	ctx := context.Background()
	enterForm(t, srv, sessions, "flood-basic", nil)

	_, err := srv.AttachSupportingFile(ctx, "s1", &usecase.SupportingFileInput{Name: "a.txt", Data: []byte("hello")})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)

	storage.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket unavailable"))

	_, err = srv.AttachSupportingFile(ctx, "s1", &usecase.SupportingFileInput{Name: "a.pdf", Data: pdfBytes})
	require.Error(t, err)

	view, err := srv.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, view.Application.SupportingFiles)
}
