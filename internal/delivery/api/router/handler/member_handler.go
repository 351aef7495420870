package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"fishers/internal/delivery/api/response"
	"fishers/internal/domain/entity"
	"fishers/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MemberHandlerParams holds dependencies for MemberHandler, injected by Fx.
type MemberHandlerParams struct {
	fx.In

	MemberUC      usecase.MemberUsecase
	EligibilityUC usecase.EligibilityUsecase
	Logger        *slog.Logger
}

// MemberHandler serves the member registry, documents and benefit endpoints
type MemberHandler struct {
	memberUC      usecase.MemberUsecase
	eligibilityUC usecase.EligibilityUsecase
	logger        *slog.Logger
}

// NewMemberHandler is the constructor for MemberHandler
func NewMemberHandler(params MemberHandlerParams) *MemberHandler {
	return &MemberHandler{
		memberUC:      params.MemberUC,
		eligibilityUC: params.EligibilityUC,
		logger:        params.Logger,
	}
}

// MemberRequest represents the request body for registering or updating a member
type MemberRequest struct {
	Name               string          `json:"name" validate:"required,max=200"`
	NationalID         string          `json:"national_id" validate:"required,cpf"`
	RegistrationNumber string          `json:"registration_number" validate:"required,max=40"`
	BirthDate          string          `json:"birth_date" validate:"required"`
	IdentityNumber     string          `json:"identity_number" validate:"max=30"`
	IdentityIssuer     string          `json:"identity_issuer" validate:"max=30"`
	Phone              string          `json:"phone" validate:"max=30"`
	BenefitRequested   bool            `json:"benefit_requested"`
	AssociatedAt       string          `json:"associated_at"`
	Address            *AddressRequest `json:"address" validate:"omitempty"`
}

// AddressRequest represents a member address
type AddressRequest struct {
	Street     string `json:"street" validate:"required,max=200"`
	Number     string `json:"number" validate:"max=20"`
	Complement string `json:"complement" validate:"max=100"`
	District   string `json:"district" validate:"max=100"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,uf"`
	PostalCode string `json:"postal_code" validate:"max=9"`
}

func (req *MemberRequest) toInput() (*usecase.MemberInput, error) {
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, err
	}
	associatedAt, err := parseOptionalDate(req.AssociatedAt)
	if err != nil {
		return nil, err
	}

	input := &usecase.MemberInput{
		Name:               req.Name,
		NationalID:         req.NationalID,
		RegistrationNumber: req.RegistrationNumber,
		BirthDate:          birthDate,
		IdentityNumber:     req.IdentityNumber,
		IdentityIssuer:     req.IdentityIssuer,
		Phone:              req.Phone,
		BenefitRequested:   req.BenefitRequested,
		AssociatedAt:       associatedAt,
	}
	if addr := req.Address; addr != nil {
		input.Address = &usecase.AddressInput{
			Street:     addr.Street,
			Number:     addr.Number,
			Complement: addr.Complement,
			District:   addr.District,
			City:       addr.City,
			State:      addr.State,
			PostalCode: addr.PostalCode,
		}
	}

	return input, nil
}

// ListMembers lists members, optionally filtered by the q query parameter
func (h *MemberHandler) ListMembers(c echo.Context) error {
	members, err := h.memberUC.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, members)
}

// RegisterMember handles member registration
func (h *MemberHandler) RegisterMember(c echo.Context) error {
	var req MemberRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Dates must use the YYYY-MM-DD format")
	}

	member, err := h.memberUC.Register(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, member)
}

// GetMember returns a member with documents, dues and benefit progress
func (h *MemberHandler) GetMember(c echo.Context) error {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid member ID")
	}

	detail, err := h.memberUC.Get(c.Request().Context(), memberID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// UpdateMember handles member updates
func (h *MemberHandler) UpdateMember(c echo.Context) error {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid member ID")
	}

	var req MemberRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Dates must use the YYYY-MM-DD format")
	}

	member, err := h.memberUC.Update(c.Request().Context(), memberID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member)
}

// UploadDocument stores a multipart "file" field as a member document
func (h *MemberHandler) UploadDocument(c echo.Context) error {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid member ID")
	}

	docType := entity.DocumentType(c.FormValue("type"))
	if !docType.IsValid() {
		return response.BadRequest(c, "INVALID_DOCUMENT_TYPE", "Unknown document type")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "Multipart field 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "Uploaded file cannot be read")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "Uploaded file cannot be read")
	}

	document, err := h.memberUC.UploadDocument(c.Request().Context(), memberID, &usecase.UploadDocumentInput{
		Type:        docType,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
		Note:        c.FormValue("note"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, document)
}

// ListDocuments lists the documents of a member
func (h *MemberHandler) ListDocuments(c echo.Context) error {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid member ID")
	}

	documents, err := h.memberUC.ListDocuments(c.Request().Context(), memberID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, documents)
}

// DownloadDocument streams a stored member document
func (h *MemberHandler) DownloadDocument(c echo.Context) error {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid member ID")
	}
	documentID, ok := parseIDParam(c, "docId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid document ID")
	}

	file, err := h.memberUC.DownloadDocument(c.Request().Context(), memberID, documentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.File(c, file.Document.ContentType, file.Document.FileName, file.Data, true)
}

// GetBenefit evaluates the seasonal benefit for the year query parameter, the current year by default
func (h *MemberHandler) GetBenefit(c echo.Context) error {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid member ID")
	}
	year, ok := queryYear(c)
	if !ok {
		return response.BadRequest(c, "INVALID_YEAR", "Invalid year")
	}

	evaluation, err := h.eligibilityUC.EvaluateSeasonalBenefit(c.Request().Context(), memberID, year)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, evaluation)
}

// GetBenefitDossier renders the benefit dossier PDF
func (h *MemberHandler) GetBenefitDossier(c echo.Context) error {
	memberID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid member ID")
	}
	year, ok := queryYear(c)
	if !ok {
		return response.BadRequest(c, "INVALID_YEAR", "Invalid year")
	}

	pdf, err := h.eligibilityUC.RenderDossier(c.Request().Context(), memberID, year)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	fileName := "benefit-dossier.pdf"
	if year != 0 {
		fileName = fmt.Sprintf("benefit-dossier-%d.pdf", year)
	}

	return response.File(c, "application/pdf", fileName, pdf, false)
}
