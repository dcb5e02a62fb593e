package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"insureflow/config"
	deliverycontext "insureflow/internal/delivery/context"
	"insureflow/internal/domain/catalog"
	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/repository"
	"insureflow/internal/domain/service"
	"insureflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var paymentMethods = []entity.PaymentMethod{entity.PaymentMethodQR, entity.PaymentMethodCard}

type paymentService struct {
	sessions     *FlowSessions
	qrService    service.QRCodeService
	ledgerRepo   repository.PurchaseLedgerRepository
	authUserRepo repository.AuthUserRepository
	purchaseAPI  service.PurchaseAPI
	publisher    service.EventPublisher
	bankCode     string
	logger       *slog.Logger
	now          func() time.Time
	newLedgerID  func() uuid.UUID
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Sessions     *FlowSessions
	QRService    service.QRCodeService
	LedgerRepo   repository.PurchaseLedgerRepository
	AuthUserRepo repository.AuthUserRepository
	PurchaseAPI  service.PurchaseAPI
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	bankCode := ""
	if params.Config != nil && params.Config.QRCode != nil {
		bankCode = params.Config.QRCode.BankCode
	}

	return &paymentService{
		sessions:     params.Sessions,
		qrService:    params.QRService,
		ledgerRepo:   params.LedgerRepo,
		authUserRepo: params.AuthUserRepo,
		purchaseAPI:  params.PurchaseAPI,
		publisher:    params.Publisher,
		bankCode:     bankCode,
		logger:       params.Logger,
		now:          time.Now,
		newLedgerID:  newLedgerID,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// checkPayable enforces the payment step guards.
func checkPayable(state *entity.FlowState) error {
	if state.SelectedPackage == nil {
		return domainerrors.ErrNoPackageSelected
	}
	if state.ApplicationData == nil {
		return domainerrors.ErrApplicationMissing
	}

	return nil
}

// GetSummary returns the package, price and applicant shown on the payment step.
func (srv *paymentService) GetSummary(ctx context.Context, sessionID string) (*usecase.PaymentSummary, error) {
	var summary *usecase.PaymentSummary

	err := srv.sessions.View(ctx, sessionID, func(state *entity.FlowState, _ *entity.FormWizard) error {
		if err := checkPayable(state); err != nil {
			return err
		}

		summary = &usecase.PaymentSummary{
			Package:        state.SelectedPackage,
			FormattedPrice: catalog.FormatPrice(state.SelectedPackage.Price),
			HolderName:     state.ApplicationData.HolderName(),
			Methods:        paymentMethods,
			Reference:      paymentReference(sessionID),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// GeneratePaymentQR renders the transfer details as a PNG QR code. No payment is collected.
func (srv *paymentService) GeneratePaymentQR(ctx context.Context, sessionID string) ([]byte, error) {
	summary, err := srv.GetSummary(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GeneratePaymentQR(&service.PaymentQRData{
		Reference:   summary.Reference,
		BankCode:    srv.bankCode,
		Amount:      summary.Package.Price,
		Currency:    "VND",
		PackageID:   summary.Package.ID,
		Description: "Thanh toan " + summary.Reference,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR code")
	}

	return png, nil
}

// ConfirmPayment creates the contract and moves the flow to success, then records the purchase.
// Recording is best effort: a backend failure queues a retry and never fails the payment.
func (srv *paymentService) ConfirmPayment(ctx context.Context, sessionID string, method entity.PaymentMethod) (*usecase.PaymentResult, error) {
	if !method.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod.WithDetails(string(method))
	}

	var (
		contract *entity.Contract
		app      *entity.Application
	)
	state, err := srv.sessions.Update(ctx, sessionID, func(state *entity.FlowState, _ *entity.FormWizard) (*entity.FormWizard, error) {
		if err := checkPayable(state); err != nil {
			return nil, err
		}

		app = state.ApplicationData
		contract = newContract(state.SelectedPackage, app, method, srv.now())
		state.SetCurrentContract(contract)
		state.SetCurrentStep(entity.FlowStepSuccess)

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Payment confirmed",
		slog.String("session_id", sessionID),
		slog.String("contract_id", contract.ID),
		slog.String("transaction_id", contract.TransactionID),
		slog.String("method", string(method)),
	)

	record := buildPurchaseRecord(contract, app, srv.currentUserID(ctx, sessionID))
	syncStatus := srv.recordPurchase(ctx, sessionID, record)

	return &usecase.PaymentResult{
		Contract:    contract,
		SyncStatus:  syncStatus,
		CurrentStep: state.CurrentStep,
	}, nil
}

// GetContract returns the contract created for the session.
func (srv *paymentService) GetContract(ctx context.Context, sessionID string) (*entity.Contract, error) {
	var contract *entity.Contract

	err := srv.sessions.View(ctx, sessionID, func(state *entity.FlowState, _ *entity.FormWizard) error {
		if state.CurrentContract == nil {
			return domainerrors.ErrContractNotFound
		}
		contract = state.CurrentContract

		return nil
	})
	if err != nil {
		return nil, err
	}

	return contract, nil
}

// recordPurchase writes the ledger row and delivers the record to the backend. The returned
// status is pending only when a retry is actually queued.
func (srv *paymentService) recordPurchase(ctx context.Context, sessionID string, record *entity.PurchaseRecord) entity.SyncStatus {
	now := srv.now()
	entry := &entity.PurchaseLedgerEntry{
		ID:         srv.newLedgerID(),
		ContractID: record.ContractID,
		SessionID:  sessionID,
		Record:     record,
		SyncStatus: entity.SyncStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	logger := srv.log(ctx).With(
		slog.String("contract_id", record.ContractID),
		slog.String("ledger_id", entry.ID.String()),
	)

	ledgerOK := true
	if err := srv.ledgerRepo.Create(ctx, entry); err != nil {
		ledgerOK = false
		logger.Error("Failed to write purchase ledger", slog.Any("error", err))
	}

	remoteErr := srv.purchaseAPI.CreatePurchase(ctx, record)
	if remoteErr == nil {
		if ledgerOK {
			if err := srv.ledgerRepo.UpdateSyncStatus(ctx, entry.ID, entity.SyncStatusSynced, 1, ""); err != nil {
				logger.Error("Failed to mark purchase synced", slog.Any("error", err))
			}
		}

		return entity.SyncStatusSynced
	}

	logger.Warn("Backend rejected purchase record, queueing retry", slog.Any("error", remoteErr))

	if ledgerOK {
		if err := srv.ledgerRepo.UpdateSyncStatus(ctx, entry.ID, entity.SyncStatusPending, 1, remoteErr.Error()); err != nil {
			logger.Error("Failed to record purchase delivery attempt", slog.Any("error", err))
		}
	}

	event := &service.PurchaseRetryEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		LedgerID:   entry.ID.String(),
		ContractID: record.ContractID,
		SessionID:  sessionID,
		Reason:     remoteErr.Error(),
		Record:     record,
	}
	if err := srv.publisher.PublishPurchaseRetryEvent(ctx, event); err != nil {
		logger.Error("Failed to publish purchase retry event", slog.Any("error", err))

		if ledgerOK {
			lastError := "retry not queued: " + err.Error()
			if err := srv.ledgerRepo.UpdateSyncStatus(ctx, entry.ID, entity.SyncStatusFailed, 1, lastError); err != nil {
				logger.Error("Failed to mark purchase failed", slog.Any("error", err))
			}
		}

		return entity.SyncStatusFailed
	}

	return entity.SyncStatusPending
}

func (srv *paymentService) currentUserID(ctx context.Context, sessionID string) string {
	user, err := srv.authUserRepo.Load(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, repository.ErrAuthUserNotFound) {
			srv.log(ctx).Warn("Failed to load logged-in user", slog.Any("error", err))
		}

		return ""
	}

	return user.ID
}

func newLedgerID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// newContract builds a contract from the timestamp: BH plus 8 digits, TX plus 10 digits.
func newContract(pkg *entity.InsurancePackage, app *entity.Application, method entity.PaymentMethod, now time.Time) *entity.Contract {
	ms := now.UnixMilli()

	return &entity.Contract{
		ID:             fmt.Sprintf("BH%08d", ms%100_000_000),
		TransactionID:  fmt.Sprintf("TX%010d", ms%10_000_000_000),
		PackageID:      pkg.ID,
		PackageName:    pkg.Name,
		InsuranceType:  pkg.Type,
		Price:          pkg.Price,
		FormattedPrice: catalog.FormatPrice(pkg.Price),
		Coverage:       pkg.Coverage,
		Period:         pkg.Period,
		PaymentMethod:  method,
		HolderName:     app.HolderName(),
		CreatedAt:      now,
	}
}

// buildPurchaseRecord flattens a contract and its application into the backend row.
// Applications with a property owner use the natural disaster shape.
func buildPurchaseRecord(contract *entity.Contract, app *entity.Application, userID string) *entity.PurchaseRecord {
	record := &entity.PurchaseRecord{
		UserID:          userID,
		ContractID:      contract.ID,
		TransactionID:   contract.TransactionID,
		PackageID:       contract.PackageID,
		PackageName:     contract.PackageName,
		InsuranceType:   contract.InsuranceType,
		Price:           contract.Price,
		FormattedPrice:  contract.FormattedPrice,
		Coverage:        contract.Coverage,
		Period:          contract.Period,
		PaymentMethod:   contract.PaymentMethod,
		ApplicantKind:   entity.ApplicantKindStandard,
		Status:          entity.PurchaseStatusActive,
		PaymentStatus:   entity.PaymentStatusPaid,
		ApplicationData: app,
		PurchasedAt:     contract.CreatedAt,
	}

	if nd := app.NaturalDisaster; nd != nil && strings.TrimSpace(nd.Owner.FullName) != "" {
		record.ApplicantKind = entity.ApplicantKindNaturalDisaster
		record.CustomerName = nd.Owner.FullName
		record.CustomerIDNumber = nd.Owner.IDNumber
		record.CustomerPhone = nd.Owner.Phone
		record.CustomerEmail = nd.Owner.Email
		record.CustomerAddress = nd.Owner.Address
		record.PropertyAddress = nd.PropertyAddress
		record.PropertyType = nd.PropertyType
		record.PropertyValue = nd.PropertyValue

		return record
	}

	if p := app.Personal; p != nil {
		record.CustomerName = p.FullName
		record.CustomerIDNumber = p.IDNumber
		record.CustomerPhone = p.Phone
		record.CustomerEmail = p.Email
		record.CustomerAddress = p.Address
	}
	if v := app.Vehicle; v != nil {
		record.VehiclePlate = v.LicensePlate
		record.VehicleBrand = v.Brand
		record.VehicleModel = v.Model
		record.VehicleYear = v.Year
		record.VehicleChassis = v.ChassisNumber
		record.VehicleEngine = v.EngineNumber
	}

	return record
}

// paymentReference derives a stable transfer reference from the session id.
func paymentReference(sessionID string) string {
	ref := strings.ToUpper(strings.ReplaceAll(sessionID, "-", ""))
	if len(ref) > 10 {
		ref = ref[:10]
	}

	return "IF" + ref
}
