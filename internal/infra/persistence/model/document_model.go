package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentModel is the GORM-specific struct for the 'documents' table.
type DocumentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID    uuid.UUID `gorm:"type:uuid;not null;index:idx_documents_member_type"`
	Type        string    `gorm:"type:varchar(30);not null;index:idx_documents_member_type"`
	FileKey     string    `gorm:"type:varchar(255);not null"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100)"`
	Size        int64     `gorm:"not null;default:0"`
	Note        string    `gorm:"type:varchar(255)"`
	UploadedAt  time.Time `gorm:"not null"`

	Member *MemberModel `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *DocumentModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
