package handler

import (
	"net/http"
	"testing"
	"time"

	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	mockUsecase "fishers/internal/mocks/usecase"
	"fishers/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLedgerHandler_ListEntries_ParsesPeriod(t *testing.T) {
	ledgerUC := mockUsecase.NewMockLedgerUsecase(t)
	h := NewLedgerHandler(LedgerHandlerParams{LedgerUC: ledgerUC, Logger: newTestLogger()})

	ledgerUC.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f entity.PeriodFilter) bool {
			return f.Year != nil && *f.Year == 2024 && f.Month == nil
		})).
		Return(&usecase.LedgerListResult{Entries: []*entity.LedgerEntry{}}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/ledger?year=2024&month=march", "")

	require.NoError(t, h.ListEntries(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLedgerHandler_CreateEntry(t *testing.T) {
	ledgerUC := mockUsecase.NewMockLedgerUsecase(t)
	h := NewLedgerHandler(LedgerHandlerParams{LedgerUC: ledgerUC, Logger: newTestLogger()})

	ledgerUC.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(in *usecase.LedgerEntryInput) bool {
			return in.Type == entity.LedgerEntryExpense && in.Category == "Fuel" &&
				in.Amount.String() == "120.4" && in.Date.Equal(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC))
		})).
		Return(&entity.LedgerEntry{ID: uuid.New()}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/ledger",
		`{"type":"expense","category":"Fuel","amount":120.40,"date":"2024-05-02"}`)

	require.NoError(t, h.CreateEntry(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLedgerHandler_CreateEntry_InvalidType(t *testing.T) {
	h := NewLedgerHandler(LedgerHandlerParams{LedgerUC: mockUsecase.NewMockLedgerUsecase(t), Logger: newTestLogger()})

	c, rec := newJSONContext(http.MethodPost, "/api/v1/ledger",
		`{"type":"transfer","category":"Fuel","amount":1,"date":"2024-05-02"}`)

	require.NoError(t, h.CreateEntry(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"type":"oneof"}`, string(decodeEnvelope(t, rec).Error.Details))
}

func TestLedgerHandler_DeleteEntry_Locked(t *testing.T) {
	ledgerUC := mockUsecase.NewMockLedgerUsecase(t)
	h := NewLedgerHandler(LedgerHandlerParams{LedgerUC: ledgerUC, Logger: newTestLogger()})
	entryID := uuid.New()

	ledgerUC.EXPECT().Delete(mock.Anything, entryID).Return(domainerrors.ErrLedgerEntryLocked)

	c, rec := newJSONContext(http.MethodDelete, "/", "", "id", entryID.String())

	require.NoError(t, h.DeleteEntry(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "LEDGER_ENTRY_LOCKED", decodeEnvelope(t, rec).Error.Code)
}
