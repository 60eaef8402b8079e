package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/souqin/souqin/internal/pkg/logger"
	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/souqin/souqin/internal/utils"
	"github.com/souqin/souqin/services/auth"
)

// AuthHandler handles HTTP requests for the phone verification flow
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// SubmitPhone starts a verification session for the submitted phone
func (h *AuthHandler) SubmitPhone(c echo.Context) error {
	var req models.SubmitPhoneRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for phone submission",
			logger.ErrorField(err),
			logger.String("endpoint", "SubmitPhone"),
		)
		return utils.BadRequestResponse(c, msgInvalidPhone)
	}

	state, err := h.authUC.SubmitPhone(c.Request().Context(), req.Phone)
	if err != nil {
		return verificationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification started", state)
}

// ConfirmRole records the chosen role and sends the verification code
func (h *AuthHandler) ConfirmRole(c echo.Context) error {
	var req models.ConfirmRoleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, msgInvalidRole)
	}

	state, err := h.authUC.ConfirmRole(c.Request().Context(), req.Phone, req.Role)
	if err != nil {
		return verificationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", state)
}

// VerifyCode checks the submitted code and signs the caller in
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var req models.VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, msgInvalidCode)
	}

	resp, err := h.authUC.VerifyCode(c.Request().Context(), req.Phone, req.Code)
	if err != nil {
		return verificationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Phone verified", resp)
}

// Resend sends a fresh verification code for a pending session
func (h *AuthHandler) Resend(c echo.Context) error {
	var req models.ResendRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, msgInvalidPhone)
	}

	state, err := h.authUC.Resend(c.Request().Context(), req.Phone)
	if err != nil {
		return verificationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code resent", state)
}

// Back steps a pending session one phase toward phone entry
func (h *AuthHandler) Back(c echo.Context) error {
	var req models.BackRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, msgInvalidPhone)
	}

	state, err := h.authUC.Back(c.Request().Context(), req.Phone)
	if err != nil {
		return verificationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session stepped back", state)
}

// SessionState returns the verification snapshot for a phone so the app can
// resume an interrupted flow
func (h *AuthHandler) SessionState(c echo.Context) error {
	phone := c.Param("phone")
	if phone == "" {
		return utils.BadRequestResponse(c, msgInvalidPhone)
	}

	state, err := h.authUC.SessionState(c.Request().Context(), phone)
	if err != nil {
		return verificationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session state retrieved", state)
}
