package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"insureflow/config"
	deliverycontext "insureflow/internal/delivery/context"
	"insureflow/internal/domain/catalog"
	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/repository"
	"insureflow/internal/domain/service"
	"insureflow/internal/usecase"
	"insureflow/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Pipeline stage names reported in FileFailure.Stage.
const (
	StageValidate = "validate"
	StageUpload   = "upload"
	StageExtract  = "extract"
)

type extractionService struct {
	sessions     *FlowSessions
	documentAPI  service.DocumentAPI
	classifier   service.DocumentClassifier
	documentRepo repository.DocumentFlowRepository
	maxFileSize  int64
	maxFiles     int
	logger       *slog.Logger
}

// ExtractionServiceParams holds dependencies for ExtractionService, injected by Fx.
type ExtractionServiceParams struct {
	fx.In

	Sessions     *FlowSessions
	DocumentAPI  service.DocumentAPI
	Classifier   service.DocumentClassifier
	DocumentRepo repository.DocumentFlowRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewExtractionService is the constructor for extractionService.
func NewExtractionService(params ExtractionServiceParams) usecase.ExtractionUsecase {
	srv := &extractionService{
		sessions:     params.Sessions,
		documentAPI:  params.DocumentAPI,
		classifier:   params.Classifier,
		documentRepo: params.DocumentRepo,
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.Upload != nil {
		srv.maxFileSize = params.Config.Upload.MaxFileSize
		srv.maxFiles = params.Config.Upload.MaxFiles
	}

	return srv
}

func (srv *extractionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessUploads runs validate, classify, upload, extract and merge over files one at a time.
// A failing file is reported in the result and never stops the batch.
func (srv *extractionService) ProcessUploads(
	ctx context.Context,
	sessionID string,
	files []*service.UploadFile,
	progress usecase.ProgressFunc,
) (*usecase.UploadResult, error) {
	if len(files) == 0 {
		return nil, domainerrors.ErrNoFiles
	}
	if srv.maxFiles > 0 && len(files) > srv.maxFiles {
		return nil, domainerrors.ErrTooManyFiles.WithDetails(
			"tối đa " + strconv.Itoa(srv.maxFiles) + " tệp mỗi lần tải lên")
	}

	// Fail fast on an unknown session before calling the backend.
	if err := srv.sessions.View(ctx, sessionID, func(*entity.FlowState, *entity.FormWizard) error { return nil }); err != nil {
		return nil, err
	}

	result := &usecase.UploadResult{
		Documents: []*entity.UploadedDocument{},
	}
	merged := &entity.ExtractedData{}
	total := len(files)

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "upload batch cancelled")
		}

		doc, data, failure := srv.processFile(ctx, file, i)
		if doc != nil {
			result.Documents = append(result.Documents, doc)
		}
		if failure != nil {
			result.Failures = append(result.Failures, *failure)
			srv.log(ctx).Warn("Document processing failed",
				slog.String("filename", failure.Filename),
				slog.String("stage", failure.Stage),
				slog.String("error", failure.Error),
			)
		}
		merged.Merge(data)

		if progress != nil {
			done := i + 1
			progress(done, total, done*100/total)
		}
	}

	if len(result.Documents) == 0 {
		state, err := srv.sessions.Update(ctx, sessionID, func(state *entity.FlowState, _ *entity.FormWizard) (*entity.FormWizard, error) {
			state.SetCurrentStep(entity.FlowStepUpload)

			return nil, nil
		})
		if err != nil {
			return nil, err
		}
		result.CurrentStep = state.CurrentStep

		return result, nil
	}

	srv.appendDocumentIDs(ctx, sessionID, result.Documents)

	result.ExtractedData = merged
	result.Recommendation = srv.recommend(ctx, result.Documents[0].ID)

	state, err := srv.sessions.Update(ctx, sessionID, func(state *entity.FlowState, _ *entity.FormWizard) (*entity.FormWizard, error) {
		state.SetExtractedData(merged)
		if result.Recommendation.Show {
			state.SetCurrentStep(entity.FlowStepUpload)
		} else {
			state.SetCurrentStep(entity.FlowStepForm)
		}

		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	result.CurrentStep = state.CurrentStep

	srv.log(ctx).Info("Upload batch processed",
		slog.String("session_id", sessionID),
		slog.Int("files", total),
		slog.Int("documents", len(result.Documents)),
		slog.Int("failures", len(result.Failures)),
		slog.Bool("recommendation", result.Recommendation.Show),
	)

	return result, nil
}

// processFile runs one file through the pipeline. The document is returned whenever the
// upload succeeded, even if extraction failed afterwards.
func (srv *extractionService) processFile(
	ctx context.Context,
	file *service.UploadFile,
	index int,
) (*entity.UploadedDocument, *entity.ExtractedData, *usecase.FileFailure) {
	contentType, err := srv.validate(file)
	if err != nil {
		return nil, nil, newFailure(file.Name, StageValidate, err)
	}
	file.ContentType = contentType

	kind := srv.classifier.Classify(file.Name, index)

	doc, err := srv.documentAPI.Upload(ctx, file)
	if err != nil {
		return nil, nil, newFailure(file.Name, StageUpload, err)
	}
	doc.Kind = kind

	data, err := srv.extract(ctx, doc.ID, kind)
	if err != nil {
		return doc, nil, newFailure(file.Name, StageExtract, err)
	}

	return doc, data, nil
}

func (srv *extractionService) validate(file *service.UploadFile) (string, error) {
	size := int64(len(file.Data))
	if size == 0 {
		return "", domainerrors.ErrUnsupportedFileType.WithDetails("tệp rỗng")
	}
	if srv.maxFileSize > 0 && size > srv.maxFileSize {
		return "", domainerrors.ErrFileTooLarge.WithDetails(
			util.FormatBytes(size) + " > " + util.FormatBytes(srv.maxFileSize))
	}

	detected := mimetype.Detect(file.Data)
	if !detected.Is("application/pdf") && !strings.HasPrefix(detected.String(), "image/") {
		return "", domainerrors.ErrUnsupportedFileType.WithDetails(detected.String())
	}

	return detected.String(), nil
}

// extract tries vehicle extraction for vehicle documents and falls back to identity
// extraction when it fails or finds no vehicle fields.
func (srv *extractionService) extract(ctx context.Context, documentID string, kind entity.DocumentKind) (*entity.ExtractedData, error) {
	if kind == entity.DocumentKindVehicle {
		data, err := srv.documentAPI.ExtractVehicleInfo(ctx, documentID)
		if err == nil && data != nil && data.HasVehicleFields() {
			return data, nil
		}
		if err != nil {
			srv.log(ctx).Debug("Vehicle extraction failed, falling back to identity",
				slog.String("document_id", documentID),
				slog.Any("error", err),
			)
		}
	}

	data, err := srv.documentAPI.ExtractPersonInfo(ctx, documentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract person info")
	}

	return data, nil
}

// recommend asks for a natural disaster offer. Failures only hide the offer.
func (srv *extractionService) recommend(ctx context.Context, documentID string) *entity.Recommendation {
	none := &entity.Recommendation{Show: false, Packages: []*entity.InsurancePackage{}}

	rec, err := srv.documentAPI.RecommendInsurance(ctx, documentID)
	if err != nil {
		srv.log(ctx).Warn("Insurance recommendation failed",
			slog.String("document_id", documentID),
			slog.Any("error", err),
		)

		return none
	}
	if rec == nil || len(rec.Packages) == 0 {
		return none
	}

	return &entity.Recommendation{
		Show:     true,
		Region:   rec.Region,
		Reason:   rec.Reason,
		Packages: resolveRecommendedPackages(rec.Packages),
	}
}

// resolveRecommendedPackages maps recommended ids onto catalog packages so they can be accepted.
// When none is known locally the whole natural disaster line is offered.
func resolveRecommendedPackages(recommended []service.RecommendedPackage) []*entity.InsurancePackage {
	out := make([]*entity.InsurancePackage, 0, len(recommended))
	for _, r := range recommended {
		p, ok := catalog.GetPackageByID(r.ID)
		if ok && p.Type == entity.InsuranceTypeNaturalDisaster {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = catalog.GetPackagesByType(entity.InsuranceTypeNaturalDisaster)
	}

	return out
}

func (srv *extractionService) appendDocumentIDs(ctx context.Context, sessionID string, docs []*entity.UploadedDocument) {
	state, err := srv.documentRepo.Load(ctx, sessionID)
	if errors.Is(err, repository.ErrDocumentFlowNotFound) {
		state, err = entity.NewDocumentFlowState(), nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load document flow", slog.Any("error", err))

		return
	}

	for _, d := range docs {
		state.AddDocument(d.ID)
	}

	if err := srv.documentRepo.Save(ctx, sessionID, state); err != nil {
		srv.log(ctx).Error("Failed to save document flow", slog.Any("error", err))
	}
}

// AcceptRecommendation switches the flow to a natural disaster package.
func (srv *extractionService) AcceptRecommendation(ctx context.Context, sessionID, packageID string) (*entity.FlowState, error) {
	pkg, ok := catalog.GetPackageByID(packageID)
	if !ok {
		return nil, domainerrors.ErrPackageNotFound.WithDetails(packageID)
	}
	if pkg.Type != entity.InsuranceTypeNaturalDisaster {
		return nil, domainerrors.ErrNotNaturalDisasterPackage.WithDetails(packageID)
	}

	state, err := srv.sessions.Update(ctx, sessionID, func(state *entity.FlowState, _ *entity.FormWizard) (*entity.FormWizard, error) {
		state.SetSelectedPackage(pkg)
		state.SetCurrentStep(entity.FlowStepForm)

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Recommendation accepted",
		slog.String("session_id", sessionID),
		slog.String("package_id", pkg.ID),
	)

	return state, nil
}

// DeclineRecommendation keeps the selected package and continues to the form.
func (srv *extractionService) DeclineRecommendation(ctx context.Context, sessionID string) (*entity.FlowState, error) {
	return srv.sessions.Update(ctx, sessionID, func(state *entity.FlowState, _ *entity.FormWizard) (*entity.FormWizard, error) {
		state.SetCurrentStep(entity.FlowStepForm)

		return nil, nil
	})
}

func newFailure(filename, stage string, err error) *usecase.FileFailure {
	return &usecase.FileFailure{Filename: filename, Stage: stage, Error: err.Error()}
}
