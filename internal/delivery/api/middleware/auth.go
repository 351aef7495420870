package middleware

import (
	"strings"

	"fishers/internal/delivery/api/response"
	deliverycontext "fishers/internal/delivery/context"
	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyOperatorID = "operatorID"
	contextKeyRoles      = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the operator on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized.WithDetails("authorization header is missing"))
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized.WithDetails("authorization must be a bearer token"))
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil || claims.OperatorID == uuid.Nil {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized.WithDetails("invalid or expired token"))
		}

		c.Set(contextKeyOperatorID, claims.OperatorID)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithOperator(c.Request().Context(), claims.OperatorID)))

		return next(c)
	}
}

// RequireRole checks that the authenticated operator holds the role.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.HandleAppError(c, domainerrors.ErrForbidden.WithDetails("role information missing"))
			}

			if !roles.Contains(requiredRole) {
				return response.HandleAppError(c, domainerrors.ErrForbidden.WithDetails("requires role "+requiredRole.String()))
			}

			return next(c)
		}
	}
}

// GetOperatorID returns the operator set by Authenticate.
func GetOperatorID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(contextKeyOperatorID).(uuid.UUID)

	return id, ok
}

// GetRoles returns the roles set by Authenticate.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}
