package constants

import "net/http"

// Viper keys.
const (
	ViperListenAddr        = "listen_addr"
	ViperDebug             = "debug"
	ViperSecretKey         = "admin_secret"
	ViperSigningKey        = "jwt_signing_key"
	ViperInitiativesPath   = "initiatives_path"
	ViperSensorsPath       = "sensors_path"
	ViperConabCoveragePath = "conab_coverage_path"
	ViperCropCalendarPath  = "crop_calendar_path"
)

// Cookie keys.
const (
	CookieKeySecretToken = "secret_token"
)

// CodedError carries the HTTP status the API error handler should answer with.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string { return e.msg }
func (e *CodedError) Code() int     { return e.code }

var (
	ErrUnauthorized      = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrMissingAuthCookie = NewCodedError("missing auth cookie", http.StatusUnauthorized)
	ErrNotFound          = NewCodedError("not found", http.StatusNotFound)
	ErrInvalidPayload    = NewCodedError("invalid payload", http.StatusBadRequest)
)
