package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReceiptSequenceName is the counter row that numbers dues receipts.
const ReceiptSequenceName = "dues_receipt"

// DuesRecordModel is the GORM-specific struct for the 'dues_records' table.
type DuesRecordModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MemberID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_dues_member_competency,priority:1"`
	Competency    time.Time       `gorm:"type:date;not null;uniqueIndex:idx_dues_member_competency,priority:2;index"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status        string          `gorm:"type:varchar(10);not null;default:pending;index"`
	PaymentDate   *time.Time      `gorm:"type:date"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	Note          string          `gorm:"type:varchar(255)"`
	ReceiptNumber *int64          `gorm:"uniqueIndex:idx_dues_receipt_number"`
	ReceiptToken  string          `gorm:"type:varchar(32)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Member *MemberModel `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DuesRecordModel) TableName() string {
	return "dues_records"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *DuesRecordModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// ReceiptSequenceModel is a named counter advanced inside the payment transaction.
type ReceiptSequenceModel struct {
	Name  string `gorm:"type:varchar(50);primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ReceiptSequenceModel) TableName() string {
	return "receipt_sequences"
}
