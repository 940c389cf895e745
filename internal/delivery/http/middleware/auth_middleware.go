package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/delivery/http/response"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	AccountUC    usecase.AccountUsecase
	Logger       *slog.Logger
}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:  params.TokenService,
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

// Authenticate validates the bearer access token and stores the caller's principal.
// The stored role of the caller's account takes precedence over the role claim.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := BearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing or malformed")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Access token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		principal := entity.Principal{
			DeviceID: claims.DeviceID,
			Role:     entity.RoleFromString(claims.Role),
		}

		account, err := m.accountUC.GetAccount(c.Request().Context(), claims.DeviceID)
		switch {
		case err == nil:
			principal.Role = account.Role
		case errors.Is(err, domainerrors.ErrAccountNotFound):
		default:
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireRole allows callers holding one of the roles. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.Unauthorized(c, "MISSING_PRINCIPAL", "Authentication required")
			}

			if !allowed.Contains(principal.Role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied")
			}

			return next(c)
		}
	}
}

// RequireSelf allows callers addressing their own device through the :id path parameter.
func (m *AuthMiddleware) RequireSelf(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := deliverycontext.GetPrincipal(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_PRINCIPAL", "Authentication required")
		}

		if !principal.IsSelf(c.Param("id")) {
			return response.Forbidden(c, "FORBIDDEN", "Only the account's own devices may do this")
		}

		return next(c)
	}
}

// RequireSelfOrPrivileged allows callers addressing their own device, and admins and owners.
func (m *AuthMiddleware) RequireSelfOrPrivileged(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := deliverycontext.GetPrincipal(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_PRINCIPAL", "Authentication required")
		}

		if !principal.CanManage(c.Param("id")) {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied")
		}

		return next(c)
	}
}
