package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptUsecase defines the receipt printing and public verification operations.
type ReceiptUsecase interface {
	// RenderReceipt prints the receipt of a paid dues record.
	RenderReceipt(ctx context.Context, duesID uuid.UUID) (*RenderedReceipt, error)
	// VerifyReceipt confirms a receipt when number and token match.
	VerifyReceipt(ctx context.Context, number int64, token string) (*ReceiptVerification, error)
}

// RenderedReceipt is a printable receipt.
type RenderedReceipt struct {
	Number int64
	PDF    []byte
}

// ReceiptVerification is the public summary of an authentic receipt.
type ReceiptVerification struct {
	Number      int64           `json:"number"`
	Association string          `json:"association"`
	MemberName  string          `json:"member_name"`
	Competency  string          `json:"competency"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	DuesID      uuid.UUID       `json:"dues_id"`
}
