package clienterr

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"tareas/pkg/translator"
)

// ValidationError blocks an action client-side, before any network call.
// The message is already localized and shown inline on the form.
type ValidationError struct {
	MsgKey  string
	Message string
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return e.Message
}

// NewValidation builds a ValidationError with a translated message.
func NewValidation(msgKey string, lang string) ValidationError {
	return ValidationError{MsgKey: msgKey, Message: Translate(msgKey, lang)}
}

// FetchError is a failed HTTP round trip: a non-2xx status or a transport
// failure (StatusCode 0). Message carries the backend's best-effort
// parsed message field, if any.
type FetchError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface for FetchError.
func (e FetchError) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.StatusCode, e.Message)
}

// DecodeError wraps a malformed session token. It is logged and treated
// as "no session", never shown to the user.
type DecodeError struct {
	Err error
}

func (e DecodeError) Error() string {
	return "invalid session token: " + e.Err.Error()
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

// Translate retrieves the localized message for a key.
func Translate(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
