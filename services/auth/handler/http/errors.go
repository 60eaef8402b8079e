package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/souqin/souqin/internal/utils"
	"github.com/souqin/souqin/services/auth"
)

// Verification errors carry Arabic user-facing messages; the app renders
// them directly.
const (
	msgInvalidPhone      = "يرجى إدخال رقم جوال صحيح"
	msgInvalidCode       = "يرجى إدخال رمز التحقق المكون من 6 أرقام"
	msgInvalidRole       = "يرجى اختيار نوع الحساب"
	msgNoPending         = "لا يوجد طلب تحقق لهذا الرقم"
	msgWrongPhase        = "هذه الخطوة غير متاحة حالياً"
	msgTooManyAttempts   = "عدد محاولات كثيرة. اطلب رمزاً جديداً"
	msgCodeMismatch      = "رمز التحقق غير صحيح"
	msgCodeExpired       = "انتهت صلاحية الرمز. اطلب رمزاً جديداً"
	msgSendUnavailable   = "خدمة الرسائل غير متاحة مؤقتاً. يرجى استخدام البريد الإلكتروني"
	msgChallengeFailed   = "تعذر التحقق الأمني. حاول مرة أخرى"
	msgProfileNotFound   = "الحساب غير موجود"
	msgUnexpectedFailure = "حدث خطأ غير متوقع. حاول مرة أخرى"
)

// verificationErrorResponse maps usecase errors to HTTP statuses and
// localized messages.
func verificationErrorResponse(c echo.Context, err error) error {
	var cooldown *auth.CooldownError
	if errors.As(err, &cooldown) {
		return utils.TooManyRequestsResponse(c,
			fmt.Sprintf("يرجى الانتظار %d ثانية قبل إعادة الإرسال", cooldown.Seconds))
	}

	switch {
	case errors.Is(err, auth.ErrInvalidPhone), errors.Is(err, auth.ErrProviderInvalidPhone):
		return utils.BadRequestResponse(c, msgInvalidPhone)
	case errors.Is(err, auth.ErrInvalidCodeFormat):
		return utils.BadRequestResponse(c, msgInvalidCode)
	case errors.Is(err, auth.ErrInvalidRole):
		return utils.BadRequestResponse(c, msgInvalidRole)
	case errors.Is(err, auth.ErrNoPendingVerification):
		return utils.NotFoundResponse(c, msgNoPending)
	case errors.Is(err, auth.ErrWrongPhase):
		return utils.ErrorResponseHandler(c, http.StatusConflict, msgWrongPhase)
	case errors.Is(err, auth.ErrTooManyAttempts):
		return utils.TooManyRequestsResponse(c, msgTooManyAttempts)
	case errors.Is(err, auth.ErrCodeMismatch):
		return utils.BadRequestResponse(c, msgCodeMismatch)
	case errors.Is(err, auth.ErrCodeExpired):
		return utils.ErrorResponseHandler(c, http.StatusGone, msgCodeExpired)
	case errors.Is(err, auth.ErrInsufficientBalance):
		return utils.ServiceUnavailableResponse(c, msgSendUnavailable)
	case errors.Is(err, auth.ErrChallengeUnavailable), errors.Is(err, auth.ErrChallengeRejected):
		return utils.ServiceUnavailableResponse(c, msgChallengeFailed)
	case errors.Is(err, auth.ErrProfileNotFound):
		return utils.NotFoundResponse(c, msgProfileNotFound)
	default:
		return utils.InternalServerErrorResponse(c, msgUnexpectedFailure)
	}
}
