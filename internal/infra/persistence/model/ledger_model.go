package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerEntryModel is the GORM-specific struct for the 'ledger_entries' table.
type LedgerEntryModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type         string          `gorm:"type:varchar(10);not null;index"`
	Category     string          `gorm:"type:varchar(100);not null"`
	Description  string          `gorm:"type:varchar(255)"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	DuesRecordID *uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_ledger_dues_record"`
	CreatedAt    time.Time

	DuesRecord *DuesRecordModel `gorm:"foreignKey:DuesRecordID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *LedgerEntryModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
