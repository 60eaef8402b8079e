package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/souqin/souqin/internal/utils"
	"github.com/souqin/souqin/services/auth"
)

// ProfileHandler handles HTTP requests for authenticated profile access
type ProfileHandler struct {
	authUC auth.AuthUC
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(authUC auth.AuthUC) *ProfileHandler {
	return &ProfileHandler{
		authUC: authUC,
	}
}

// GetMe returns the profile of the authenticated caller
func (h *ProfileHandler) GetMe(c echo.Context) error {
	userID := c.Get("user_id")
	if userID == nil {
		return utils.UnauthorizedResponse(c, "Missing user ID in token")
	}

	profile, err := h.authUC.GetProfile(c.Request().Context(), fmt.Sprintf("%v", userID))
	if err != nil {
		return verificationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", profile)
}

// GetByID returns a profile by ID for internal service callers
func (h *ProfileHandler) GetByID(c echo.Context) error {
	profileID := c.Param("id")
	if profileID == "" {
		return utils.BadRequestResponse(c, "Invalid profile ID")
	}

	profile, err := h.authUC.GetProfile(c.Request().Context(), profileID)
	if err != nil {
		return verificationErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", profile)
}
