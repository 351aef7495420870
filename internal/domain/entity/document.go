package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType classifies an uploaded member document.
type DocumentType string

const (
	DocumentTypeIdentityCard DocumentType = "RG"
	DocumentTypeNationalID   DocumentType = "CPF"
	DocumentTypeRegistration DocumentType = "RGP"
	DocumentTypeAddressProof DocumentType = "COMPROVANTE_ENDERECO"
	DocumentTypePhoto        DocumentType = "FOTO"
	DocumentTypeOther        DocumentType = "OUTRO"
)

// String returns the string representation of the DocumentType.
func (t DocumentType) String() string {
	return string(t)
}

// IsValid checks if the DocumentType is a valid value.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeIdentityCard, DocumentTypeNationalID, DocumentTypeRegistration,
		DocumentTypeAddressProof, DocumentTypePhoto, DocumentTypeOther:
		return true
	default:
		return false
	}
}

// Label returns the human readable name printed on dossiers.
func (t DocumentType) Label() string {
	switch t {
	case DocumentTypeAddressProof:
		return "Comprovante de Endereço"
	case DocumentTypePhoto:
		return "Foto 3x4"
	case DocumentTypeOther:
		return "Outro"
	default:
		return string(t)
	}
}

// BenefitRequiredDocuments lists, in display order, the document types a member
// must have on file to apply for the seasonal-closure benefit.
var BenefitRequiredDocuments = []DocumentType{
	DocumentTypeIdentityCard,
	DocumentTypeNationalID,
	DocumentTypeRegistration,
	DocumentTypeAddressProof,
}

// Document is a file uploaded for a member.
type Document struct {
	ID          uuid.UUID    `json:"id"`
	MemberID    uuid.UUID    `json:"member_id"`
	Type        DocumentType `json:"type"`
	FileKey     string       `json:"-"` // Key of the stored object in the file bucket
	FileName    string       `json:"file_name"`
	ContentType string       `json:"content_type"`
	Size        int64        `json:"size"`
	Note        string       `json:"note,omitempty"`
	UploadedAt  time.Time    `json:"uploaded_at"`
}
