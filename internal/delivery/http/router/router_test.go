package router_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"accounts/config"
	httpdelivery "accounts/internal/delivery/http"
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/response"
	"accounts/internal/delivery/http/router"
	"accounts/internal/delivery/http/router/handler"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	mockService "accounts/internal/mocks/service"
	mockUsecase "accounts/internal/mocks/usecase"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// routerFixtures holds an echo instance with every route registered over mocked usecases.
type routerFixtures struct {
	echo           *echo.Echo
	tokenService   *mockService.MockTokenService
	accountUC      *mockUsecase.MockAccountUsecase
	notificationUC *mockUsecase.MockNotificationUsecase
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	fx := routerFixtures{
		echo:           httpdelivery.NewEcho(cfg, logger),
		tokenService:   mockService.NewMockTokenService(t),
		accountUC:      mockUsecase.NewMockAccountUsecase(t),
		notificationUC: mockUsecase.NewMockNotificationUsecase(t),
	}

	router.NewRouter(router.RouterParams{
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: fx.accountUC, Logger: logger}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{
			NotificationUC: fx.notificationUC,
			Logger:         logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenService: fx.tokenService,
			AccountUC:    fx.accountUC,
			Logger:       logger,
		}),
	}).RegisterRoutes(fx.echo)

	return fx
}

// loginAs makes "tok-<deviceID>" a valid access token whose account has the given stored role.
func (fx routerFixtures) loginAs(deviceID string, role entity.Role) {
	fx.tokenService.EXPECT().
		ValidateAccessToken("tok-"+deviceID).
		Return(&service.AccessClaims{DeviceID: deviceID, Type: service.TokenTypeAccess}, nil).
		Once()

	account := entity.NewAccountForDevice(deviceID)
	account.ID = "acc-" + deviceID
	account.Role = role
	fx.accountUC.EXPECT().GetAccount(mock.Anything, deviceID).Return(account, nil).Once()
}

func (fx routerFixtures) do(method, path, token, body string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var resp response.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

func TestRouter_Health(t *testing.T) {
	fx := createTestRouter(t)

	rec, resp := fx.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_CreateAccount_Public(t *testing.T) {
	fx := createTestRouter(t)

	fx.accountUC.EXPECT().
		CreateAccount(mock.Anything, mock.MatchedBy(func(in *usecase.CreateAccountInput) bool {
			return len(in.Devices) == 1 && in.Devices[0].DeviceID == "d1" && in.FirstName == "Ada"
		})).
		Return(&entity.Account{ID: "acc1", Role: entity.RoleUser}, nil)

	rec, resp := fx.do(http.MethodPost, "/v1/accounts", "", `{"devices":[{"device_id":"d1"}],"first_name":"Ada","role":"owner"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
}

func TestRouter_CreateAccount_Invalid(t *testing.T) {
	fx := createTestRouter(t)

	rec, resp := fx.do(http.MethodPost, "/v1/accounts", "", `{"devices":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)

	rec, resp = fx.do(http.MethodPost, "/v1/accounts", "", `{"devices":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestRouter_CreateAccount_Conflict(t *testing.T) {
	fx := createTestRouter(t)

	fx.accountUC.EXPECT().CreateAccount(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrAccountConflict, "failed to create account"))

	rec, resp := fx.do(http.MethodPost, "/v1/accounts", "", `{"devices":[{"device_id":"d1"}]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ACCOUNT_CONFLICT", resp.Error.Code)
	assert.Equal(t, "failed to create account", resp.Error.Details)
}

func TestRouter_GetAccount_Authorization(t *testing.T) {
	tests := []struct {
		name     string
		caller   string
		role     entity.Role
		target   string
		wantCode int
	}{
		{"self", "d1", entity.RoleUser, "d1", http.StatusOK},
		{"user on other", "d1", entity.RoleUser, "d2", http.StatusForbidden},
		{"admin on other", "d1", entity.RoleAdmin, "d2", http.StatusOK},
		{"owner on other", "d1", entity.RoleOwner, "d2", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRouter(t)
			fx.loginAs(tt.caller, tt.role)
			if tt.wantCode == http.StatusOK {
				fx.accountUC.EXPECT().GetAccount(mock.Anything, tt.target).Return(&entity.Account{ID: "target"}, nil).Once()
			}

			rec, _ := fx.do(http.MethodGet, "/v1/accounts/"+tt.target, "tok-"+tt.caller, "")
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRouter_MissingOrInvalidToken(t *testing.T) {
	fx := createTestRouter(t)

	rec, resp := fx.do(http.MethodGet, "/v1/accounts/d1", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)

	fx.tokenService.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))

	rec, resp = fx.do(http.MethodGet, "/v1/accounts/d1", "expired", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_TOKEN", resp.Error.Code)
}

func TestRouter_StoredRoleIsAuthoritative(t *testing.T) {
	fx := createTestRouter(t)

	// The claim says owner but the stored account says user.
	fx.tokenService.EXPECT().ValidateAccessToken("tok").
		Return(&service.AccessClaims{DeviceID: "d1", Role: "owner"}, nil)
	fx.accountUC.EXPECT().GetAccount(mock.Anything, "d1").Return(entity.NewAccountForDevice("d1"), nil)

	rec, _ := fx.do(http.MethodGet, "/v1/accounts", "tok", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ClaimRoleWithoutAccount(t *testing.T) {
	fx := createTestRouter(t)

	fx.tokenService.EXPECT().ValidateAccessToken("tok").
		Return(&service.AccessClaims{DeviceID: "d9", Role: "admin"}, nil)
	fx.accountUC.EXPECT().GetAccount(mock.Anything, "d9").
		Return(nil, errors.Wrap(domainerrors.ErrAccountNotFound, "failed to get account"))
	fx.accountUC.EXPECT().ListAccounts(mock.Anything, "admin").Return([]*entity.Account{}, nil)

	rec, _ := fx.do(http.MethodGet, "/v1/accounts?role=admin", "tok", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UpdateAccount_PassesPrincipal(t *testing.T) {
	fx := createTestRouter(t)
	fx.loginAs("d1", entity.RoleOwner)

	fx.accountUC.EXPECT().
		UpdateAccount(mock.Anything, entity.Principal{DeviceID: "d1", Role: entity.RoleOwner}, "d2",
			mock.MatchedBy(func(p *entity.AccountPatch) bool {
				return p.Role != nil && *p.Role == entity.RoleAdmin && p.FirstName == nil
			})).
		Return(&entity.Account{ID: "acc2", Role: entity.RoleAdmin}, nil)

	rec, resp := fx.do(http.MethodPut, "/v1/accounts/d2", "tok-d1", `{"role":"admin"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestRouter_UpdateAccount_InvalidEmail(t *testing.T) {
	fx := createTestRouter(t)
	fx.loginAs("d1", entity.RoleUser)

	rec, resp := fx.do(http.MethodPut, "/v1/accounts/d1", "tok-d1", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Details, "email")
}

func TestRouter_AddDeviceWithToken(t *testing.T) {
	fx := createTestRouter(t)

	fx.accountUC.EXPECT().AddDeviceWithToken(mock.Anything, "sync-token").
		Return(&entity.Account{ID: "merged"}, nil).Once()

	rec, _ := fx.do(http.MethodPost, "/v1/accounts/add-device", "sync-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	fx.accountUC.EXPECT().AddDeviceWithToken(mock.Anything, "sync-token").
		Return(nil, errors.Wrap(domainerrors.ErrSyncTokenUsed, "sync token replayed")).Once()

	rec, resp := fx.do(http.MethodPost, "/v1/accounts/add-device", "sync-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "SYNC_TOKEN_USED", resp.Error.Code)

	rec, _ = fx.do(http.MethodPost, "/v1/accounts/add-device", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_MergeAndRemoveDevice(t *testing.T) {
	fx := createTestRouter(t)

	fx.loginAs("d1", entity.RoleUser)
	fx.accountUC.EXPECT().MergeDevices(mock.Anything, "d1", "d2").Return(&entity.Account{ID: "merged"}, nil)

	rec, _ := fx.do(http.MethodPost, "/v1/accounts/d1/add-device/d2", "tok-d1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	fx.loginAs("d1", entity.RoleUser)
	fx.accountUC.EXPECT().RemoveDevice(mock.Anything, "d1", "d3").
		Return(nil, errors.Wrap(domainerrors.ErrDevicePairNotFound, "device is not bound to this account"))

	rec, resp := fx.do(http.MethodDelete, "/v1/accounts/d1/remove-device/d3", "tok-d1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DEVICE_NOT_FOUND", resp.Error.Code)
}

func TestRouter_MergeAndRemoveDevice_Authorization(t *testing.T) {
	tests := []struct {
		name     string
		role     entity.Role
		method   string
		path     string
		wantCode int
	}{
		{"user merges into other", entity.RoleUser, http.MethodPost, "/v1/accounts/owner-device/add-device/d1", http.StatusForbidden},
		{"user removes from other", entity.RoleUser, http.MethodDelete, "/v1/accounts/owner-device/remove-device/d2", http.StatusForbidden},
		{"admin merges into other", entity.RoleAdmin, http.MethodPost, "/v1/accounts/owner-device/add-device/d1", http.StatusOK},
		{"owner removes from other", entity.RoleOwner, http.MethodDelete, "/v1/accounts/owner-device/remove-device/d2", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRouter(t)
			fx.loginAs("d1", tt.role)
			if tt.wantCode == http.StatusOK {
				if tt.method == http.MethodPost {
					fx.accountUC.EXPECT().MergeDevices(mock.Anything, "owner-device", "d1").
						Return(&entity.Account{ID: "merged"}, nil).Once()
				} else {
					fx.accountUC.EXPECT().RemoveDevice(mock.Anything, "owner-device", "d2").
						Return(&entity.Account{ID: "owner"}, nil).Once()
				}
			}

			rec, resp := fx.do(tt.method, tt.path, "tok-d1", "")
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusForbidden {
				require.NotNil(t, resp.Error)
				assert.Equal(t, "FORBIDDEN", resp.Error.Code)
			}
		})
	}
}

func TestRouter_Favorites_SelfOnly(t *testing.T) {
	fx := createTestRouter(t)

	fx.loginAs("d1", entity.RoleAdmin)
	rec, _ := fx.do(http.MethodPost, "/v1/accounts/d2/favorite-lines/L1", "tok-d1", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	fx.loginAs("d1", entity.RoleUser)
	fx.accountUC.EXPECT().ToggleFavorite(mock.Anything, "d1", entity.FavoriteStops, "S1").
		Return(&entity.Account{FavoriteStops: []string{"S1"}}, nil)

	rec, _ = fx.do(http.MethodPost, "/v1/accounts/d1/favorite-stops/S1", "tok-d1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_IssueSyncToken(t *testing.T) {
	fx := createTestRouter(t)
	fx.loginAs("d1", entity.RoleUser)

	fx.accountUC.EXPECT().IssueSyncToken(mock.Anything, "d1", "d2").
		Return(&usecase.SyncToken{Token: "sync", QRCode: "iVBOR"}, nil)

	rec, _ := fx.do(http.MethodPost, "/v1/accounts/d1/sync-token", "tok-d1", `{"device_id":"d2"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"qr_code":"iVBOR"`)
}

func TestRouter_Notifications(t *testing.T) {
	fx := createTestRouter(t)

	fx.loginAs("d1", entity.RoleUser)
	fx.notificationUC.EXPECT().CreateNotification(mock.Anything, "d1", mock.AnythingOfType("*usecase.NotificationInput")).
		Return(nil, errors.WithStack(domainerrors.ErrNotificationSyncDisabled))

	rec, resp := fx.do(http.MethodPost, "/v1/accounts/d1/notifications", "tok-d1", `{"line_id":"L1"}`)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOTIFICATION_SYNC_DISABLED", resp.Error.Code)

	fx.loginAs("d1", entity.RoleUser)
	fx.notificationUC.EXPECT().UpdateNotification(mock.Anything, "d1", "n1", mock.Anything).
		Return(nil, domainerrors.NewUpstreamError(http.StatusUnprocessableEntity, "stop unknown", nil))

	rec, resp = fx.do(http.MethodPut, "/v1/accounts/d1/notifications/n1", "tok-d1", `{"line_id":"L1"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "stop unknown", resp.Message)

	fx.loginAs("d2", entity.RoleUser)

	rec, _ = fx.do(http.MethodGet, "/v1/accounts/d1/notifications", "tok-d2", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	fx := createTestRouter(t)

	rec, resp := fx.do(http.MethodGet, "/v2/nothing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
}
