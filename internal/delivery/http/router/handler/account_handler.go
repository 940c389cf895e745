package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/response"
	"accounts/internal/domain/entity"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for account-related handlers
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// DeviceRequest is a device in an account creation request
type DeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
	Name     string `json:"name"`
	Type     string `json:"type"`
}

// CreateAccountRequest represents the request body for creating an account
type CreateAccountRequest struct {
	Devices       []DeviceRequest `json:"devices" validate:"required,min=1,dive"`
	FavoriteLines []string        `json:"favorite_lines"`
	FavoriteStops []string        `json:"favorite_stops"`
	Email         string          `json:"email"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Avatar        string          `json:"avatar"`
	Gender        string          `json:"gender"`
	BirthDate     string          `json:"birth_date"`
}

func (r *CreateAccountRequest) toInput() *usecase.CreateAccountInput {
	devices := make([]entity.Device, 0, len(r.Devices))
	for _, d := range r.Devices {
		devices = append(devices, entity.Device{DeviceID: d.DeviceID, Name: d.Name, Type: d.Type})
	}

	return &usecase.CreateAccountInput{
		Devices:       devices,
		FavoriteLines: r.FavoriteLines,
		FavoriteStops: r.FavoriteStops,
		Email:         r.Email,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Avatar:        r.Avatar,
		Gender:        r.Gender,
		BirthDate:     r.BirthDate,
	}
}

// CreateAccount handles public account creation. The role is always user.
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err.Error())
	}

	account, err := h.accountUC.CreateAccount(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, account, "Account created")
}

// GetAccount handles retrieving the account of a device
func (h *AccountHandler) GetAccount(c echo.Context) error {
	account, err := h.accountUC.GetAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "")
}

// ListAccounts handles listing accounts, optionally filtered by ?role=
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountUC.ListAccounts(c.Request().Context(), c.QueryParam("role"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, accounts, "")
}

// UpdateAccount handles profile updates
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_PRINCIPAL", "Authentication required")
	}

	var patch entity.AccountPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	if err := c.Validate(&patch); err != nil {
		return response.ValidationError(c, err.Error())
	}

	account, err := h.accountUC.UpdateAccount(c.Request().Context(), principal, c.Param("id"), &patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "Account updated")
}

// DeleteAccount handles account deletion
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	account, err := h.accountUC.DeleteAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "Account deleted")
}

// AddDeviceWithToken handles pairing through a scanned sync token sent as the bearer token
func (h *AccountHandler) AddDeviceWithToken(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Sync token is missing")
	}

	account, err := h.accountUC.AddDeviceWithToken(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "Devices merged")
}

// IssueSyncTokenRequest represents the request body for issuing a sync token
type IssueSyncTokenRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
}

// IssueSyncToken handles issuing a sync token pairing the caller with another device
func (h *AccountHandler) IssueSyncToken(c echo.Context) error {
	var req IssueSyncTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sync token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err.Error())
	}

	token, err := h.accountUC.IssueSyncToken(c.Request().Context(), c.Param("id"), req.DeviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token, "Sync token issued")
}

// MergeDevice handles merging the account of :deviceId into the account of :id
func (h *AccountHandler) MergeDevice(c echo.Context) error {
	account, err := h.accountUC.MergeDevices(c.Request().Context(), c.Param("id"), c.Param("deviceId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "Devices merged")
}

// RemoveDevice handles unbinding :deviceId from the account of :id
func (h *AccountHandler) RemoveDevice(c echo.Context) error {
	account, err := h.accountUC.RemoveDevice(c.Request().Context(), c.Param("id"), c.Param("deviceId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "Device removed")
}

// ToggleFavoriteLine handles toggling a favorite line
func (h *AccountHandler) ToggleFavoriteLine(c echo.Context) error {
	return h.toggleFavorite(c, entity.FavoriteLines, c.Param("lineId"))
}

// ToggleFavoriteStop handles toggling a favorite stop
func (h *AccountHandler) ToggleFavoriteStop(c echo.Context) error {
	return h.toggleFavorite(c, entity.FavoriteStops, c.Param("stopId"))
}

func (h *AccountHandler) toggleFavorite(c echo.Context, kind entity.FavoriteKind, itemID string) error {
	account, err := h.accountUC.ToggleFavorite(c.Request().Context(), c.Param("id"), kind, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "")
}
