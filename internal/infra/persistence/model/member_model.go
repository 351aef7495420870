package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberModel is the GORM-specific struct for the 'members' table.
type MemberModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"type:varchar(200);not null;index"`
	NationalID         string    `gorm:"type:varchar(14);not null;uniqueIndex:idx_members_national_id"`
	RegistrationNumber string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_members_registration_number"`
	BirthDate          time.Time `gorm:"type:date;not null"`
	IdentityNumber     string    `gorm:"type:varchar(30)"`
	IdentityIssuer     string    `gorm:"type:varchar(30)"`
	Phone              string    `gorm:"type:varchar(30)"`
	BenefitRequested   bool      `gorm:"not null;default:false"`
	AssociatedAt       time.Time `gorm:"type:date;not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Address *AddressModel `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *MemberModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_addresses_member"`
	Street     string    `gorm:"type:varchar(200);not null"`
	Number     string    `gorm:"type:varchar(20)"`
	Complement string    `gorm:"type:varchar(100)"`
	District   string    `gorm:"type:varchar(100)"`
	City       string    `gorm:"type:varchar(100);not null"`
	State      string    `gorm:"type:char(2);not null"`
	PostalCode string    `gorm:"type:varchar(9)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *AddressModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
