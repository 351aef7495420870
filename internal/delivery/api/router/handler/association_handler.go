package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"fishers/internal/delivery/api/response"
	"fishers/internal/domain/entity"
	"fishers/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssociationHandlerParams holds dependencies for AssociationHandler, injected by Fx.
type AssociationHandlerParams struct {
	fx.In

	AssociationUC usecase.AssociationUsecase
	Logger        *slog.Logger
}

// AssociationHandler serves the association profile endpoints
type AssociationHandler struct {
	associationUC usecase.AssociationUsecase
	logger        *slog.Logger
}

// NewAssociationHandler is the constructor for AssociationHandler
func NewAssociationHandler(params AssociationHandlerParams) *AssociationHandler {
	return &AssociationHandler{
		associationUC: params.AssociationUC,
		logger:        params.Logger,
	}
}

// GetAssociation returns the association profile
func (h *AssociationHandler) GetAssociation(c echo.Context) error {
	profile, err := h.associationUC.Current(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateAssociation applies the given profile fields
func (h *AssociationHandler) UpdateAssociation(c echo.Context) error {
	var req usecase.UpdateAssociationInput
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	profile, err := h.associationUC.Update(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// SetLogo replaces the logo with the multipart "file" field
func (h *AssociationHandler) SetLogo(c echo.Context) error {
	return h.setImage(c, h.associationUC.SetLogo)
}

// SetSignature replaces the president signature with the multipart "file" field
func (h *AssociationHandler) SetSignature(c echo.Context) error {
	return h.setImage(c, h.associationUC.SetSignature)
}

func (h *AssociationHandler) setImage(c echo.Context, set func(ctx context.Context, image []byte) (*entity.AssociationProfile, error)) error {
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

	profile, err := set(c.Request().Context(), data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetLogo serves the stored logo as PNG
func (h *AssociationHandler) GetLogo(c echo.Context) error {
	data, err := h.associationUC.Logo(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.File(c, "image/png", "", data, false)
}

// GetSignature serves the stored signature as PNG
func (h *AssociationHandler) GetSignature(c echo.Context) error {
	data, err := h.associationUC.Signature(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.File(c, "image/png", "", data, false)
}
