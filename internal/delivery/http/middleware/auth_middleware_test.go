package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	mockService "accounts/internal/mocks/service"
	mockUsecase "accounts/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockService.MockTokenService, *mockUsecase.MockAccountUsecase) {
	tokenService := mockService.NewMockTokenService(t)
	accountUC := mockUsecase.NewMockAccountUsecase(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokenService,
		AccountUC:    accountUC,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), tokenService, accountUC
}

func newTestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"Bearer  abc ", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		c, _ := newTestContext(tt.header)
		token, ok := BearerToken(c)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, token, tt.header)
	}
}

func TestAuthMiddleware_Authenticate_SetsPrincipal(t *testing.T) {
	m, tokenService, accountUC := newTestAuthMiddleware(t)
	c, _ := newTestContext("Bearer tok")

	tokenService.EXPECT().ValidateAccessToken("tok").Return(&service.AccessClaims{DeviceID: "d1"}, nil)
	account := entity.NewAccountForDevice("d1")
	account.Role = entity.RoleAdmin
	accountUC.EXPECT().GetAccount(mock.Anything, "d1").Return(account, nil)

	var got entity.Principal
	err := m.Authenticate(func(c echo.Context) error {
		got, _ = deliverycontext.GetPrincipal(c)

		return nil
	})(c)
	require.NoError(t, err)
	assert.Equal(t, entity.Principal{DeviceID: "d1", Role: entity.RoleAdmin}, got)
}

func TestAuthMiddleware_Authenticate_UnknownDeviceDefaultsToUser(t *testing.T) {
	m, tokenService, accountUC := newTestAuthMiddleware(t)
	c, _ := newTestContext("Bearer tok")

	tokenService.EXPECT().ValidateAccessToken("tok").Return(&service.AccessClaims{DeviceID: "d1", Role: "superuser"}, nil)
	accountUC.EXPECT().GetAccount(mock.Anything, "d1").Return(nil, errors.Wrap(domainerrors.ErrAccountNotFound, "failed to get account"))

	var got entity.Principal
	err := m.Authenticate(func(c echo.Context) error {
		got, _ = deliverycontext.GetPrincipal(c)

		return nil
	})(c)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, got.Role)
}

func TestAuthMiddleware_Authenticate_StorageFailure(t *testing.T) {
	m, tokenService, accountUC := newTestAuthMiddleware(t)
	c, rec := newTestContext("Bearer tok")

	tokenService.EXPECT().ValidateAccessToken("tok").Return(&service.AccessClaims{DeviceID: "d1"}, nil)
	accountUC.EXPECT().GetAccount(mock.Anything, "d1").
		Return(nil, domainerrors.NewStorageError(errors.New("connection refused"), "mongo find failed"))

	err := m.Authenticate(func(echo.Context) error {
		t.Fatal("next must not run")

		return nil
	})(c)
	var storageErr *domainerrors.StorageError
	require.ErrorAs(t, err, &storageErr)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, _, _ := newTestAuthMiddleware(t)
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	tests := []struct {
		name     string
		role     entity.Role
		set      bool
		wantCode int
	}{
		{"no principal", "", false, http.StatusUnauthorized},
		{"user", entity.RoleUser, true, http.StatusForbidden},
		{"admin", entity.RoleAdmin, true, http.StatusNoContent},
		{"owner", entity.RoleOwner, true, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext("")
			if tt.set {
				deliverycontext.SetPrincipal(c, entity.Principal{DeviceID: "d1", Role: tt.role})
			}

			require.NoError(t, m.RequireRole(entity.RoleAdmin, entity.RoleOwner)(next)(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireSelf(t *testing.T) {
	m, _, _ := newTestAuthMiddleware(t)
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	c, rec := newTestContext("")
	c.SetParamNames("id")
	c.SetParamValues("d2")
	deliverycontext.SetPrincipal(c, entity.Principal{DeviceID: "d1", Role: entity.RoleOwner})

	require.NoError(t, m.RequireSelf(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newTestContext("")
	c.SetParamNames("id")
	c.SetParamValues("d2")
	deliverycontext.SetPrincipal(c, entity.Principal{DeviceID: "d1", Role: entity.RoleOwner})

	require.NoError(t, m.RequireSelfOrPrivileged(next)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
