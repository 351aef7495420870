package usecase

import (
	"context"
	"time"

	"fishers/internal/domain/entity"

	"github.com/google/uuid"
)

// MemberUsecase defines the member registry operations.
type MemberUsecase interface {
	Register(ctx context.Context, input *MemberInput) (*entity.Member, error)
	Update(ctx context.Context, id uuid.UUID, input *MemberInput) (*entity.Member, error)
	// Get returns the member with documents, dues and the current year benefit progress.
	Get(ctx context.Context, id uuid.UUID) (*MemberDetail, error)
	List(ctx context.Context, query string) ([]*entity.Member, error)
	UploadDocument(ctx context.Context, memberID uuid.UUID, input *UploadDocumentInput) (*entity.Document, error)
	ListDocuments(ctx context.Context, memberID uuid.UUID) ([]*entity.Document, error)
	DownloadDocument(ctx context.Context, memberID, documentID uuid.UUID) (*DocumentFile, error)
}

// --- Input DTOs ---

// MemberInput defines the data required to register or update a member.
type MemberInput struct {
	Name               string        `json:"name" validate:"required,max=200"`
	NationalID         string        `json:"national_id" validate:"required"`
	RegistrationNumber string        `json:"registration_number" validate:"required,max=40"`
	BirthDate          time.Time     `json:"birth_date" validate:"required"`
	IdentityNumber     string        `json:"identity_number" validate:"max=30"`
	IdentityIssuer     string        `json:"identity_issuer" validate:"max=30"`
	Phone              string        `json:"phone" validate:"max=30"`
	BenefitRequested   bool          `json:"benefit_requested"`
	AssociatedAt       *time.Time    `json:"associated_at,omitempty"`
	Address            *AddressInput `json:"address,omitempty"`
}

// AddressInput defines a member postal address.
type AddressInput struct {
	Street     string `json:"street" validate:"required,max=200"`
	Number     string `json:"number" validate:"max=20"`
	Complement string `json:"complement" validate:"max=100"`
	District   string `json:"district" validate:"max=100"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,len=2"`
	PostalCode string `json:"postal_code" validate:"max=9"`
}

// UploadDocumentInput carries an uploaded file.
type UploadDocumentInput struct {
	Type        entity.DocumentType
	FileName    string
	ContentType string
	Data        []byte
	Note        string
}

// --- Output DTOs ---

// MemberDetail is the full view of a member.
type MemberDetail struct {
	Member    *entity.Member            `json:"member"`
	Documents []*entity.Document        `json:"documents"`
	Dues      []*entity.DuesRecord      `json:"dues"`
	Benefit   *entity.BenefitEvaluation `json:"benefit"`
}

// DocumentFile is a stored document with its content.
type DocumentFile struct {
	Document *entity.Document
	Data     []byte
}
