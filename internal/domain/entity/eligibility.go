package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequiredPaidMonths is how many paid competencies a year needs for the benefit.
const RequiredPaidMonths = 12

// BenefitChecklistItem reports one required document type.
type BenefitChecklistItem struct {
	Type       DocumentType `json:"type"`
	Label      string       `json:"label"`
	Satisfied  bool         `json:"satisfied"`
	UploadedAt *time.Time   `json:"uploaded_at,omitempty"` // Most recent matching upload
}

// BenefitEvaluation is the seasonal-closure benefit eligibility of a member for a year.
type BenefitEvaluation struct {
	MemberID    uuid.UUID               `json:"member_id"`
	Year        int                     `json:"year"`
	PaidCount   int64                   `json:"paid_count"`
	DuesOK      bool                    `json:"dues_ok"`
	DocumentsOK bool                    `json:"documents_ok"`
	Eligible    bool                    `json:"eligible"`
	Checklist   []*BenefitChecklistItem `json:"checklist"`
}
