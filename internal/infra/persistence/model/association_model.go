package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssociationProfileModel is the GORM-specific struct for the 'association_profiles' table.
// The unique Singleton column keeps the table at one row.
type AssociationProfileModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Singleton         bool            `gorm:"not null;default:true;uniqueIndex:idx_association_singleton"`
	Name              string          `gorm:"type:varchar(200);not null"`
	President         string          `gorm:"type:varchar(200)"`
	LogoKey           string          `gorm:"type:varchar(255)"`
	SignatureKey      string          `gorm:"type:varchar(255)"`
	TaxID             string          `gorm:"type:varchar(18)"`
	Phone             string          `gorm:"type:varchar(30)"`
	Email             string          `gorm:"type:varchar(255)"`
	Street            string          `gorm:"type:varchar(255)"`
	City              string          `gorm:"type:varchar(100)"`
	State             string          `gorm:"type:char(2)"`
	PostalCode        string          `gorm:"type:varchar(9)"`
	DefaultDuesAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (AssociationProfileModel) TableName() string {
	return "association_profiles"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *AssociationProfileModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Singleton = true

	return nil
}
