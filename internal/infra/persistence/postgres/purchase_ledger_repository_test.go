package postgres

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"insureflow/internal/domain/entity"
	"insureflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLedgerMapping_RoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entry := &entity.PurchaseLedgerEntry{
		ID:         uuid.MustParse("0199a0b2-7c3e-7d41-9a55-3f1e2d4c5b6a"),
		ContractID: "BH00000123",
		SessionID:  "s1",
		Record: &entity.PurchaseRecord{
			UserID:        "user-1",
			ContractID:    "BH00000123",
			TransactionID: "TX0000000123",
			PackageID:     "vehicle-basic",
			Price:         480_000,
			ApplicantKind: entity.ApplicantKindStandard,
			VehiclePlate:  "30A-12345",
		},
		SyncStatus: entity.SyncStatusPending,
		Attempts:   1,
		LastError:  "backend down",
		CreatedAt:  createdAt,
	}

	ledgerM, err := fromLedgerDomain(entry)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, ledgerM.ID)
	assert.Equal(t, "TX0000000123", ledgerM.TransactionID)
	assert.Equal(t, "user-1", ledgerM.UserID)
	assert.Equal(t, int64(480_000), ledgerM.Price)
	assert.Equal(t, "pending", ledgerM.SyncStatus)

	back, err := toLedgerDomain(ledgerM)
	require.NoError(t, err)
	assert.Equal(t, entry, back)
}

func TestFromLedgerDomain_RequiresRecord(t *testing.T) {
	_, err := fromLedgerDomain(&entity.PurchaseLedgerEntry{ContractID: "BH1"})

	require.Error(t, err)
}

func TestFromLedgerDomain_RequiresID(t *testing.T) {
	_, err := fromLedgerDomain(&entity.PurchaseLedgerEntry{
		ContractID: "BH1",
		Record:     &entity.PurchaseRecord{ContractID: "BH1"},
	})

	require.Error(t, err)
}

func TestToLedgerDomain_CorruptRecord(t *testing.T) {
	_, err := toLedgerDomain(&model.PurchaseLedgerModel{ContractID: "BH1", Record: []byte("{")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BH1")
}

func TestGormSlogLogger_TruncatesLongSQL(t *testing.T) {
	var buf bytes.Buffer
	l := &gormSlogLogger{
		logger: slog.New(slog.NewTextHandler(&buf, nil)),
		level:  logger.Info,
	}

	longSQL := "INSERT INTO purchase_ledger VALUES ('" + strings.Repeat("x", 2*maxLoggedSQLLength) + "')"
	l.Trace(t.Context(), time.Now(), func() (string, int64) { return longSQL, 1 }, nil)

	out := buf.String()
	assert.Contains(t, out, "GORM query")
	assert.Contains(t, out, "(truncated)")
	assert.NotContains(t, out, longSQL)
}

func TestGormSlogLogger_SilentLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), nil).LogMode(logger.Silent)

	l.Error(t.Context(), "boom %d", 1)
	l.Trace(t.Context(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)

	assert.Empty(t, buf.String())
}
