package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "fishers/internal/delivery/context"
	"fishers/internal/domain/entity"
	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/service"
	mockSvc "fishers/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) (code, message, details string) {
	t.Helper()

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
			Details string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code, body.Error.Message, body.Error.Details
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	operatorID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(tokenSvc *mockSvc.MockTokenService)
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized, setup: func(*mockSvc.MockTokenService) {}},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized, setup: func(*mockSvc.MockTokenService) {}},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("bad").Return(nil, domainerrors.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{OperatorID: operatorID, Roles: []string{"operator", "ghost"}}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tt.setup(tokenSvc)
			m := NewAuthMiddleware(tokenSvc)

			c, rec := newAuthContext(tt.header)

			require.NoError(t, m.Authenticate(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusUnauthorized {
				code, message, _ := errorOf(t, rec)
				assert.Equal(t, "UNAUTHORIZED", code)
				assert.Equal(t, "Autenticação necessária", message)
			}

			if tt.wantStatus == http.StatusNoContent {
				id, ok := GetOperatorID(c)
				assert.True(t, ok)
				assert.Equal(t, operatorID, id)
				roles, ok := GetRoles(c)
				assert.True(t, ok)
				assert.Equal(t, entity.Roles{entity.RoleOperator}, roles)
				ctxID, ok := deliverycontext.GetOperatorID(c.Request().Context())
				assert.True(t, ok)
				assert.Equal(t, operatorID, ctxID)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	requireAdmin := m.RequireRole(entity.RoleAdmin)

	c, rec := newAuthContext("")
	c.Set(contextKeyRoles, entity.Roles{entity.RoleOperator})
	require.NoError(t, requireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	code, message, details := errorOf(t, rec)
	assert.Equal(t, "FORBIDDEN", code)
	assert.Equal(t, "Acesso negado", message)
	assert.Equal(t, "requires role admin", details)

	c, rec = newAuthContext("")
	c.Set(contextKeyRoles, entity.Roles{entity.RoleOperator, entity.RoleAdmin})
	require.NoError(t, requireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newAuthContext("")
	require.NoError(t, requireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	code, _, details = errorOf(t, rec)
	assert.Equal(t, "FORBIDDEN", code)
	assert.Equal(t, "role information missing", details)
}
