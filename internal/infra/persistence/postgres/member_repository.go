// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/repository"
	"fishers/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var memberUpdatableColumns = []string{
	"name", "national_id", "registration_number", "birth_date", "identity_number",
	"identity_issuer", "phone", "benefit_requested", "associated_at",
}

var addressUpdatableColumns = []string{
	"street", "number", "complement", "district", "city", "state", "postal_code", "updated_at",
}

// memberRepository implements the domain.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

// Create persists a new member together with its address.
func (repo *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		return translateMemberError(err, "failed to create member")
	}

	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt
	if member.Address != nil && memberM.Address != nil {
		member.Address.ID = memberM.Address.ID
		member.Address.MemberID = memberM.ID
		member.Address.CreatedAt = memberM.Address.CreatedAt
		member.Address.UpdatedAt = memberM.Address.UpdatedAt
	}

	return nil
}

// Update modifies the member and upserts its address.
func (repo *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)
	db := repo.db.WithContext(ctx)

	result := db.Model(&model.MemberModel{ID: member.ID}).
		Select(memberUpdatableColumns).
		Omit(clause.Associations).
		Updates(memberM)
	if result.Error != nil {
		return translateMemberError(result.Error, "failed to update member")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrMemberNotFound.WrapMessage("update member")
	}

	if member.Address == nil {
		return nil
	}

	addressM := fromAddressDomain(member.Address)
	addressM.ID = uuid.Nil
	addressM.MemberID = member.ID
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}},
		DoUpdates: clause.AssignmentColumns(addressUpdatableColumns),
	}).Create(addressM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert member address")
	}
	member.Address.MemberID = member.ID

	return nil
}

// FindByID retrieves a member with its address.
func (repo *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberM model.MemberModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Where("id = ?", id).
		First(&memberM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by ID")
	}

	return toMemberDomain(&memberM), nil
}

// List returns members ordered by name, optionally filtered by query.
func (repo *memberRepository) List(ctx context.Context, query string) ([]*entity.Member, error) {
	db := repo.db.WithContext(ctx).Preload("Address")

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		pattern := "%" + q + "%"
		db = db.Where(
			"LOWER(name) LIKE ? OR LOWER(national_id) LIKE ? OR LOWER(registration_number) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var memberModels []*model.MemberModel
	if err := db.Order("name ASC").Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	members := make([]*entity.Member, 0, len(memberModels))
	for _, memberM := range memberModels {
		members = append(members, toMemberDomain(memberM))
	}

	return members, nil
}

// Count returns the total number of members.
func (repo *memberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.MemberModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count members")
	}

	return count, nil
}

func translateMemberError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrMemberAlreadyExists.WrapMessage(details)
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("missing required member information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
