package postgres

import (
	"fishers/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or alters every table and seeds the receipt counter.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	return seedReceiptSequence(db)
}
