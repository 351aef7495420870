package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	mockUsecase "fishers/internal/mocks/usecase"
	"fishers/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDuesHandler(t *testing.T) (*DuesHandler, *mockUsecase.MockDuesUsecase, *mockUsecase.MockReceiptUsecase) {
	duesUC := mockUsecase.NewMockDuesUsecase(t)
	receiptUC := mockUsecase.NewMockReceiptUsecase(t)

	return NewDuesHandler(DuesHandlerParams{DuesUC: duesUC, ReceiptUC: receiptUC, Logger: newTestLogger()}), duesUC, receiptUC
}

func TestDuesHandler_PayDues(t *testing.T) {
	h, duesUC, _ := createTestDuesHandler(t)
	duesID := uuid.New()

	duesUC.EXPECT().
		Pay(mock.Anything, duesID, mock.MatchedBy(func(in *usecase.PayDuesInput) bool {
			return in.Amount != nil && in.Amount.Equal(decimal.RequireFromString("30.5")) &&
				in.PaymentDate != nil && in.PaymentDate.Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)) &&
				in.PaymentMethod == "PIX"
		})).
		Return(&entity.DuesRecord{ID: duesID, Status: entity.DuesStatusPaid}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/v1/dues/"+duesID.String()+"/pay",
		`{"amount":"30.50","payment_date":"2024-03-10","payment_method":"PIX"}`, "id", duesID.String())

	require.NoError(t, h.PayDues(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var record entity.DuesRecord
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &record))
	assert.Equal(t, entity.DuesStatusPaid, record.Status)
}

func TestDuesHandler_PayDues_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "invalid id", id: "nope", body: `{}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_ID"},
		{name: "bad date", id: uuid.NewString(), body: `{"payment_date":"10/03/2024"}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_DATE"},
		{name: "exempt record", id: uuid.NewString(), body: `{}`, ucErr: domainerrors.ErrDuesNotPayable, wantStatus: http.StatusConflict, wantCode: "DUES_NOT_PAYABLE"},
		{name: "unknown record", id: uuid.NewString(), body: `{}`, ucErr: domainerrors.ErrDuesNotFound, wantStatus: http.StatusNotFound, wantCode: "DUES_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, duesUC, _ := createTestDuesHandler(t)
			if tt.ucErr != nil {
				duesUC.EXPECT().Pay(mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			c, rec := newJSONContext(http.MethodPost, "/api/v1/dues/x/pay", tt.body, "id", tt.id)

			require.NoError(t, h.PayDues(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestDuesHandler_AddDues(t *testing.T) {
	memberID := uuid.New()
	competency := entity.NewCompetency(2024, time.March)

	t.Run("created", func(t *testing.T) {
		h, duesUC, _ := createTestDuesHandler(t)
		duesUC.EXPECT().AddSingle(mock.Anything, memberID, "03/2024").
			Return(&usecase.AddSingleResult{Competency: competency, Created: true}, nil)

		c, rec := newJSONContext(http.MethodPost, "/", `{"competency":"03/2024"}`, "id", memberID.String())

		require.NoError(t, h.AddDues(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("already exists", func(t *testing.T) {
		h, duesUC, _ := createTestDuesHandler(t)
		duesUC.EXPECT().AddSingle(mock.Anything, memberID, "2024-03").
			Return(&usecase.AddSingleResult{Competency: competency, Created: false}, nil)

		c, rec := newJSONContext(http.MethodPost, "/", `{"competency":"2024-03"}`, "id", memberID.String())

		require.NoError(t, h.AddDues(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DUES_ALREADY_EXISTS", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("missing competency", func(t *testing.T) {
		h, _, _ := createTestDuesHandler(t)

		c, rec := newJSONContext(http.MethodPost, "/", `{}`, "id", memberID.String())

		require.NoError(t, h.AddDues(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.JSONEq(t, `{"competency":"required"}`, string(env.Error.Details))
	})
}

func TestDuesHandler_GenerateDues(t *testing.T) {
	memberID := uuid.New()

	t.Run("success", func(t *testing.T) {
		h, duesUC, _ := createTestDuesHandler(t)
		duesUC.EXPECT().GenerateYear(mock.Anything, memberID, 2025).
			Return(&usecase.GenerateYearResult{Year: 2025, Created: 12}, nil)

		c, rec := newJSONContext(http.MethodPost, "/", `{"year":2025}`, "id", memberID.String())

		require.NoError(t, h.GenerateDues(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"year":2025,"created":12,"all_existed":false}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("year out of range", func(t *testing.T) {
		h, _, _ := createTestDuesHandler(t)

		c, rec := newJSONContext(http.MethodPost, "/", `{"year":1800}`, "id", memberID.String())

		require.NoError(t, h.GenerateDues(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"year":"min"}`, string(decodeEnvelope(t, rec).Error.Details))
	})
}

func TestDuesHandler_GetReceipt(t *testing.T) {
	h, _, receiptUC := createTestDuesHandler(t)
	duesID := uuid.New()
	pdf := []byte("%PDF-1.3 receipt")

	receiptUC.EXPECT().RenderReceipt(mock.Anything, duesID).Return(&usecase.RenderedReceipt{Number: 42, PDF: pdf}, nil)

	c, rec := newJSONContext(http.MethodGet, "/", "", "id", duesID.String())

	require.NoError(t, h.GetReceipt(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="receipt-42.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, pdf, rec.Body.Bytes())
}

func TestDuesHandler_DeleteDues_Paid(t *testing.T) {
	h, duesUC, _ := createTestDuesHandler(t)
	duesID := uuid.New()

	duesUC.EXPECT().Delete(mock.Anything, duesID).
		RunAndReturn(func(context.Context, uuid.UUID) error {
			return domainerrors.ErrDuesAlreadyPaid.WrapMessage("failed to delete dues")
		})

	c, rec := newJSONContext(http.MethodDelete, "/", "", "id", duesID.String())

	require.NoError(t, h.DeleteDues(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUES_ALREADY_PAID", decodeEnvelope(t, rec).Error.Code)
}
