package postgres

import (
	"fishers/internal/domain/entity"
	"fishers/internal/infra/persistence/model"
)

func fromMemberDomain(m *entity.Member) *model.MemberModel {
	memberM := &model.MemberModel{
		ID:                 m.ID,
		Name:               m.Name,
		NationalID:         m.NationalID,
		RegistrationNumber: m.RegistrationNumber,
		BirthDate:          m.BirthDate,
		IdentityNumber:     m.IdentityNumber,
		IdentityIssuer:     m.IdentityIssuer,
		Phone:              m.Phone,
		BenefitRequested:   m.BenefitRequested,
		AssociatedAt:       m.AssociatedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.Address != nil {
		memberM.Address = fromAddressDomain(m.Address)
	}

	return memberM
}

func toMemberDomain(memberM *model.MemberModel) *entity.Member {
	m := &entity.Member{
		ID:                 memberM.ID,
		Name:               memberM.Name,
		NationalID:         memberM.NationalID,
		RegistrationNumber: memberM.RegistrationNumber,
		BirthDate:          memberM.BirthDate.UTC(),
		IdentityNumber:     memberM.IdentityNumber,
		IdentityIssuer:     memberM.IdentityIssuer,
		Phone:              memberM.Phone,
		BenefitRequested:   memberM.BenefitRequested,
		AssociatedAt:       memberM.AssociatedAt.UTC(),
		CreatedAt:          memberM.CreatedAt,
		UpdatedAt:          memberM.UpdatedAt,
	}
	if memberM.Address != nil {
		m.Address = toAddressDomain(memberM.Address)
	}

	return m
}

func fromAddressDomain(a *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:         a.ID,
		MemberID:   a.MemberID,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func toAddressDomain(addressM *model.AddressModel) *entity.Address {
	return &entity.Address{
		ID:         addressM.ID,
		MemberID:   addressM.MemberID,
		Street:     addressM.Street,
		Number:     addressM.Number,
		Complement: addressM.Complement,
		District:   addressM.District,
		City:       addressM.City,
		State:      addressM.State,
		PostalCode: addressM.PostalCode,
		CreatedAt:  addressM.CreatedAt,
		UpdatedAt:  addressM.UpdatedAt,
	}
}

func fromDocumentDomain(d *entity.Document) *model.DocumentModel {
	return &model.DocumentModel{
		ID:          d.ID,
		MemberID:    d.MemberID,
		Type:        d.Type.String(),
		FileKey:     d.FileKey,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		Size:        d.Size,
		Note:        d.Note,
		UploadedAt:  d.UploadedAt,
	}
}

func toDocumentDomain(documentM *model.DocumentModel) *entity.Document {
	return &entity.Document{
		ID:          documentM.ID,
		MemberID:    documentM.MemberID,
		Type:        entity.DocumentType(documentM.Type),
		FileKey:     documentM.FileKey,
		FileName:    documentM.FileName,
		ContentType: documentM.ContentType,
		Size:        documentM.Size,
		Note:        documentM.Note,
		UploadedAt:  documentM.UploadedAt,
	}
}

func fromDuesDomain(d *entity.DuesRecord) *model.DuesRecordModel {
	return &model.DuesRecordModel{
		ID:            d.ID,
		MemberID:      d.MemberID,
		Competency:    d.Competency,
		Amount:        d.Amount,
		Status:        d.Status.String(),
		PaymentDate:   d.PaymentDate,
		PaymentMethod: d.PaymentMethod,
		Note:          d.Note,
		ReceiptNumber: d.ReceiptNumber,
		ReceiptToken:  d.ReceiptToken,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toDuesDomain(duesM *model.DuesRecordModel) *entity.DuesRecord {
	d := &entity.DuesRecord{
		ID:            duesM.ID,
		MemberID:      duesM.MemberID,
		Competency:    duesM.Competency.UTC(),
		Amount:        duesM.Amount,
		Status:        entity.DuesStatus(duesM.Status),
		PaymentMethod: duesM.PaymentMethod,
		Note:          duesM.Note,
		ReceiptNumber: duesM.ReceiptNumber,
		ReceiptToken:  duesM.ReceiptToken,
		CreatedAt:     duesM.CreatedAt,
		UpdatedAt:     duesM.UpdatedAt,
	}
	if duesM.PaymentDate != nil {
		paid := duesM.PaymentDate.UTC()
		d.PaymentDate = &paid
	}
	if duesM.Member != nil {
		d.MemberName = duesM.Member.Name
	}

	return d
}

func fromLedgerDomain(e *entity.LedgerEntry) *model.LedgerEntryModel {
	return &model.LedgerEntryModel{
		ID:           e.ID,
		Type:         string(e.Type),
		Category:     e.Category,
		Description:  e.Description,
		Amount:       e.Amount,
		Date:         e.Date,
		DuesRecordID: e.DuesRecordID,
		CreatedAt:    e.CreatedAt,
	}
}

func toLedgerDomain(entryM *model.LedgerEntryModel) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:           entryM.ID,
		Type:         entity.LedgerEntryType(entryM.Type),
		Category:     entryM.Category,
		Description:  entryM.Description,
		Amount:       entryM.Amount,
		Date:         entryM.Date.UTC(),
		DuesRecordID: entryM.DuesRecordID,
		CreatedAt:    entryM.CreatedAt,
	}
}

func fromAssociationDomain(p *entity.AssociationProfile) *model.AssociationProfileModel {
	return &model.AssociationProfileModel{
		ID:                p.ID,
		Singleton:         true,
		Name:              p.Name,
		President:         p.President,
		LogoKey:           p.LogoKey,
		SignatureKey:      p.SignatureKey,
		TaxID:             p.TaxID,
		Phone:             p.Phone,
		Email:             p.Email,
		Street:            p.Street,
		City:              p.City,
		State:             p.State,
		PostalCode:        p.PostalCode,
		DefaultDuesAmount: p.DefaultDuesAmount,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toAssociationDomain(profileM *model.AssociationProfileModel) *entity.AssociationProfile {
	return &entity.AssociationProfile{
		ID:                profileM.ID,
		Name:              profileM.Name,
		President:         profileM.President,
		LogoKey:           profileM.LogoKey,
		SignatureKey:      profileM.SignatureKey,
		TaxID:             profileM.TaxID,
		Phone:             profileM.Phone,
		Email:             profileM.Email,
		Street:            profileM.Street,
		City:              profileM.City,
		State:             profileM.State,
		PostalCode:        profileM.PostalCode,
		DefaultDuesAmount: profileM.DefaultDuesAmount,
		CreatedAt:         profileM.CreatedAt,
		UpdatedAt:         profileM.UpdatedAt,
	}
}

func fromOperatorDomain(o *entity.Operator) *model.OperatorModel {
	return &model.OperatorModel{
		ID:           o.ID,
		Username:     o.Username,
		Name:         o.Name,
		PasswordHash: o.PasswordHash,
		Roles:        o.Roles.ToStrings(),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func toOperatorDomain(operatorM *model.OperatorModel) *entity.Operator {
	return &entity.Operator{
		ID:           operatorM.ID,
		Username:     operatorM.Username,
		Name:         operatorM.Name,
		PasswordHash: operatorM.PasswordHash,
		Roles:        entity.RolesFromStrings(operatorM.Roles),
		CreatedAt:    operatorM.CreatedAt,
		UpdatedAt:    operatorM.UpdatedAt,
	}
}
