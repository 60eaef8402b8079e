package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/souqin/souqin/services/auth"
	"github.com/souqin/souqin/services/auth/mocks"
	"github.com/stretchr/testify/assert"
)

func setupAuthHandlerTest(t *testing.T) (*AuthHandler, *mocks.MockAuthUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(mockAuthUC), mockAuthUC
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSubmitPhone_Success(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/phone", `{"phone": "0501234567"}`)

	mockAuthUC.EXPECT().
		SubmitPhone(gomock.Any(), "0501234567").
		Return(&models.SessionState{
			Phone: "+966501234567",
			Phase: models.PhaseRoleSelection,
		}, nil)

	err := handler.SubmitPhone(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "role_selection", data["phase"])
}

func TestSubmitPhone_InvalidPhone(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/phone", `{"phone": "05012"}`)

	mockAuthUC.EXPECT().
		SubmitPhone(gomock.Any(), "05012").
		Return(nil, auth.ErrInvalidPhone)

	err := handler.SubmitPhone(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, msgInvalidPhone, response["error"])
}

func TestSubmitPhone_CooldownReturns429WithWait(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/phone", `{"phone": "0501234567"}`)

	mockAuthUC.EXPECT().
		SubmitPhone(gomock.Any(), "0501234567").
		Return(nil, &auth.CooldownError{Seconds: 17})

	err := handler.SubmitPhone(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "17")
}

func TestConfirmRole_Success(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/role", `{"phone": "0501234567", "role": "merchant"}`)

	mockAuthUC.EXPECT().
		ConfirmRole(gomock.Any(), "0501234567", models.RoleMerchant).
		Return(&models.SessionState{
			Phone:        "+966501234567",
			Phase:        models.PhaseCodeEntry,
			SelectedRole: models.RoleMerchant,
		}, nil)

	err := handler.ConfirmRole(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConfirmRole_InvalidRole(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/role", `{"phone": "0501234567", "role": "admin"}`)

	mockAuthUC.EXPECT().
		ConfirmRole(gomock.Any(), "0501234567", models.Role("admin")).
		Return(nil, auth.ErrInvalidRole)

	err := handler.ConfirmRole(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidRole)
}

func TestVerifyCode_Success(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/verify", `{"phone": "0501234567", "code": "123456"}`)

	mockAuthUC.EXPECT().
		VerifyCode(gomock.Any(), "0501234567", "123456").
		Return(&models.AuthResponse{
			Token:   "jwt-token",
			UserID:  "550e8400-e29b-41d4-a716-446655440000",
			Role:    models.RoleAffiliate,
			NewUser: true,
		}, nil)

	err := handler.VerifyCode(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token", data["token"])
	assert.Equal(t, true, data["new_user"])
}

func TestVerifyCode_WrongCode(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/verify", `{"phone": "0501234567", "code": "111111"}`)

	mockAuthUC.EXPECT().
		VerifyCode(gomock.Any(), "0501234567", "111111").
		Return(nil, auth.ErrCodeMismatch)

	err := handler.VerifyCode(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgCodeMismatch)
}

func TestVerifyCode_ExpiredCode(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/verify", `{"phone": "0501234567", "code": "123456"}`)

	mockAuthUC.EXPECT().
		VerifyCode(gomock.Any(), "0501234567", "123456").
		Return(nil, auth.ErrCodeExpired)

	err := handler.VerifyCode(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusGone, rec.Code)
}

func TestVerifyCode_TooManyAttempts(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/verify", `{"phone": "0501234567", "code": "111111"}`)

	mockAuthUC.EXPECT().
		VerifyCode(gomock.Any(), "0501234567", "111111").
		Return(nil, auth.ErrTooManyAttempts)

	err := handler.VerifyCode(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestResend_ChallengeUnavailable(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/resend", `{"phone": "0501234567"}`)

	mockAuthUC.EXPECT().
		Resend(gomock.Any(), "0501234567").
		Return(nil, auth.ErrChallengeUnavailable)

	err := handler.Resend(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestResend_InsufficientBalancePointsToEmail(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/resend", `{"phone": "0501234567"}`)

	mockAuthUC.EXPECT().
		Resend(gomock.Any(), "0501234567").
		Return(nil, auth.ErrInsufficientBalance)

	err := handler.Resend(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "البريد الإلكتروني")
}

func TestBack_NoSession(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/back", `{"phone": "0501234567"}`)

	mockAuthUC.EXPECT().
		Back(gomock.Any(), "0501234567").
		Return(nil, auth.ErrNoPendingVerification)

	err := handler.Back(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionState_Success(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/session/0501234567", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("phone")
	c.SetParamValues("0501234567")

	mockAuthUC.EXPECT().
		SessionState(gomock.Any(), "0501234567").
		Return(&models.SessionState{
			Phone:           "+966501234567",
			Phase:           models.PhaseCodeEntry,
			CooldownSeconds: 12,
		}, nil)

	err := handler.SessionState(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(12), data["cooldown_seconds"])
}

func TestSubmitPhone_InternalError(t *testing.T) {
	handler, mockAuthUC := setupAuthHandlerTest(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/phone", `{"phone": "0501234567"}`)

	mockAuthUC.EXPECT().
		SubmitPhone(gomock.Any(), "0501234567").
		Return(nil, errors.New("redis connection lost"))

	err := handler.SubmitPhone(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal details are never leaked to the client
	assert.NotContains(t, rec.Body.String(), "redis")
}
