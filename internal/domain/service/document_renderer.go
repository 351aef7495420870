package service

import (
	"time"

	"fishers/internal/domain/entity"
)

// ReceiptData is everything printed on a dues payment receipt.
type ReceiptData struct {
	Association *entity.AssociationProfile
	Logo        []byte // PNG or JPEG, optional
	Signature   []byte // PNG or JPEG, optional
	Member      *entity.Member
	Dues        *entity.DuesRecord
	VerifyURL   string
	QRCode      []byte // PNG
	IssuedAt    time.Time
}

// DossierData is everything printed on a seasonal benefit dossier.
type DossierData struct {
	Association *entity.AssociationProfile
	Logo        []byte
	Member      *entity.Member
	Evaluation  *entity.BenefitEvaluation
	Documents   []*entity.Document
	Dues        []*entity.DuesRecord
	IssuedAt    time.Time
}

// DocumentRenderer turns receipts and dossiers into printable PDF bytes.
type DocumentRenderer interface {
	RenderReceipt(data *ReceiptData) ([]byte, error)
	RenderDossier(data *DossierData) ([]byte, error)
}
