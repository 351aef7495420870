package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OperatorModel is the GORM-specific struct for the 'operators' table.
type OperatorModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Username     string                      `gorm:"type:varchar(100);not null;uniqueIndex:idx_operators_username"`
	Name         string                      `gorm:"type:varchar(200)"`
	PasswordHash string                      `gorm:"type:varchar(255);not null"`
	Roles        datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OperatorModel) TableName() string {
	return "operators"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *OperatorModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// AllModels lists every table managed by auto-migration, in dependency order.
func AllModels() []any {
	return []any{
		&MemberModel{},
		&AddressModel{},
		&DocumentModel{},
		&DuesRecordModel{},
		&ReceiptSequenceModel{},
		&LedgerEntryModel{},
		&AssociationProfileModel{},
		&OperatorModel{},
	}
}
