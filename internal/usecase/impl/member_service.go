package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	deliverycontext "fishers/internal/delivery/context"
	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/repository"
	"fishers/internal/domain/service"
	"fishers/internal/usecase"
	"fishers/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memberService implements the MemberUsecase interface.
type memberService struct {
	txManager   repository.TransactionManager
	storage     service.FileStorage
	eligibility usecase.EligibilityUsecase
	logger      *slog.Logger
	now         func() time.Time
}

// NewMemberService is the constructor for memberService.
func NewMemberService(
	txManager repository.TransactionManager,
	storage service.FileStorage,
	eligibility usecase.EligibilityUsecase,
	logger *slog.Logger,
) usecase.MemberUsecase {
	return &memberService{
		txManager:   txManager,
		storage:     storage,
		eligibility: eligibility,
		logger:      logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a member. National id and registration number must be unused.
func (srv *memberService) Register(ctx context.Context, input *usecase.MemberInput) (*entity.Member, error) {
	if err := srv.validateMemberInput(input); err != nil {
		return nil, err
	}

	member := &entity.Member{AssociatedAt: dateOnly(srv.now())}
	applyMemberInput(member, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.NewMemberRepository().Create(ctx, member), "failed to create member")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to register member", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register member")
	}
	srv.log(ctx).Info("Member registered", slog.Any("member_id", member.ID))

	return member, nil
}

// Update replaces the member data and upserts its address.
func (srv *memberService) Update(ctx context.Context, id uuid.UUID, input *usecase.MemberInput) (*entity.Member, error) {
	if err := srv.validateMemberInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Member
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.NewMemberRepository()

		member, err := memberRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find member")
		}

		applyMemberInput(member, input)
		if err := memberRepo.Update(ctx, member); err != nil {
			return errors.Wrap(err, "failed to update member")
		}
		updated = member

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update member", slog.Any("error", err), slog.Any("member_id", id))

		return nil, errors.Wrap(err, "failed to update member")
	}
	srv.log(ctx).Info("Member updated", slog.Any("member_id", id))

	return updated, nil
}

// Get returns the member with documents, dues and the current year benefit progress.
func (srv *memberService) Get(ctx context.Context, id uuid.UUID) (*usecase.MemberDetail, error) {
	detail := &usecase.MemberDetail{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if detail.Member, err = repoFactory.NewMemberRepository().FindByID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to find member")
		}
		if detail.Documents, err = repoFactory.NewDocumentRepository().ListByMember(ctx, id); err != nil {
			return errors.Wrap(err, "failed to list documents")
		}
		if detail.Dues, err = repoFactory.NewDuesRepository().ListByMember(ctx, id, nil); err != nil {
			return errors.Wrap(err, "failed to list dues")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get member")
	}

	if detail.Benefit, err = srv.eligibility.EvaluateSeasonalBenefit(ctx, id, 0); err != nil {
		return nil, errors.Wrap(err, "failed to get member")
	}

	return detail, nil
}

// List returns members ordered by name, filtered by query when given.
func (srv *memberService) List(ctx context.Context, query string) ([]*entity.Member, error) {
	var members []*entity.Member

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		members, err = repoFactory.NewMemberRepository().List(ctx, strings.TrimSpace(query))

		return errors.Wrap(err, "failed to list members")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list members", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list members")
	}
	if members == nil {
		members = []*entity.Member{}
	}

	return members, nil
}

// UploadDocument stores the file and then records it. The stored object is
// removed again when the record cannot be written.
func (srv *memberService) UploadDocument(ctx context.Context, memberID uuid.UUID, input *usecase.UploadDocumentInput) (*entity.Document, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is required")
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown document type " + input.Type.String())
	}

	detected := mimetype.Detect(input.Data)
	contentType := strings.TrimSpace(input.ContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = detected.String()
	}

	fileName := filepath.Base(strings.TrimSpace(input.FileName))
	if fileName == "." || fileName == string(filepath.Separator) {
		fileName = ""
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = detected.Extension()
	}
	if fileName == "" {
		fileName = strings.ToLower(input.Type.String()) + ext
	}

	document := &entity.Document{
		ID:          uuid.New(),
		MemberID:    memberID,
		Type:        input.Type,
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(input.Data)),
		Note:        strings.TrimSpace(input.Note),
		UploadedAt:  srv.now().UTC(),
	}
	document.FileKey = fmt.Sprintf("members/%s/documents/%s%s", memberID, document.ID, ext)

	if err := srv.storage.Put(ctx, document.FileKey, input.Data, contentType); err != nil {
		srv.log(ctx).Error("Failed to store document", slog.Any("error", err), slog.Any("member_id", memberID))

		return nil, errors.Wrap(err, "failed to upload document")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewMemberRepository().FindByID(ctx, memberID); err != nil {
			return errors.Wrap(err, "failed to find member")
		}

		return errors.Wrap(repoFactory.NewDocumentRepository().Create(ctx, document), "failed to create document")
	})
	if err != nil {
		if delErr := srv.storage.Delete(ctx, document.FileKey); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned document file", slog.Any("error", delErr), slog.String("key", document.FileKey))
		}
		srv.log(ctx).Error("Failed to record document", slog.Any("error", err), slog.Any("member_id", memberID))

		return nil, errors.Wrap(err, "failed to upload document")
	}
	srv.log(ctx).Info("Document uploaded",
		slog.Any("member_id", memberID),
		slog.Any("document_id", document.ID),
		slog.String("type", document.Type.String()),
		slog.String("size", util.FormatBytes(document.Size)),
	)

	return document, nil
}

// ListDocuments returns the member documents, newest first.
func (srv *memberService) ListDocuments(ctx context.Context, memberID uuid.UUID) ([]*entity.Document, error) {
	var documents []*entity.Document

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewMemberRepository().FindByID(ctx, memberID); err != nil {
			return errors.Wrap(err, "failed to find member")
		}

		var err error
		documents, err = repoFactory.NewDocumentRepository().ListByMember(ctx, memberID)

		return errors.Wrap(err, "failed to list documents")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}
	if documents == nil {
		documents = []*entity.Document{}
	}

	return documents, nil
}

// DownloadDocument returns a member document with its stored content.
func (srv *memberService) DownloadDocument(ctx context.Context, memberID, documentID uuid.UUID) (*usecase.DocumentFile, error) {
	var document *entity.Document

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		document, err = repoFactory.NewDocumentRepository().FindByID(ctx, memberID, documentID)

		return errors.Wrap(err, "failed to find document")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to download document")
	}

	data, err := srv.storage.Get(ctx, document.FileKey)
	if err != nil {
		srv.log(ctx).Error("Failed to read document file", slog.Any("error", err), slog.Any("document_id", documentID))

		return nil, errors.Wrap(err, "failed to download document")
	}

	return &usecase.DocumentFile{Document: document, Data: data}, nil
}

func (srv *memberService) validateMemberInput(input *usecase.MemberInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("member data is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if !util.IsValidCPF(input.NationalID) {
		return domainerrors.ErrValidationFailed.WithDetails("invalid CPF")
	}
	if strings.TrimSpace(input.RegistrationNumber) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("registration number is required")
	}
	if input.BirthDate.IsZero() || input.BirthDate.After(srv.now()) {
		return domainerrors.ErrValidationFailed.WithDetails("invalid birth date")
	}
	if addr := input.Address; addr != nil {
		if strings.TrimSpace(addr.Street) == "" || strings.TrimSpace(addr.City) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("address street and city are required")
		}
		if !entity.IsValidState(addr.State) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid state")
		}
	}

	return nil
}

func applyMemberInput(member *entity.Member, input *usecase.MemberInput) {
	member.Name = strings.TrimSpace(input.Name)
	member.NationalID = util.FormatCPF(input.NationalID)
	member.RegistrationNumber = strings.TrimSpace(input.RegistrationNumber)
	member.BirthDate = dateOnly(input.BirthDate)
	member.IdentityNumber = strings.TrimSpace(input.IdentityNumber)
	member.IdentityIssuer = strings.TrimSpace(input.IdentityIssuer)
	member.Phone = strings.TrimSpace(input.Phone)
	member.BenefitRequested = input.BenefitRequested
	if input.AssociatedAt != nil {
		member.AssociatedAt = dateOnly(*input.AssociatedAt)
	}

	if input.Address == nil {
		return
	}
	if member.Address == nil {
		member.Address = &entity.Address{MemberID: member.ID}
	}
	addr := member.Address
	addr.Street = strings.TrimSpace(input.Address.Street)
	addr.Number = strings.TrimSpace(input.Address.Number)
	addr.Complement = strings.TrimSpace(input.Address.Complement)
	addr.District = strings.TrimSpace(input.Address.District)
	addr.City = strings.TrimSpace(input.Address.City)
	addr.State = strings.ToUpper(strings.TrimSpace(input.Address.State))
	addr.PostalCode = strings.TrimSpace(input.Address.PostalCode)
}
