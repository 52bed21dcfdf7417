package httperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
)

// BusinessError is an expected failure that is safe to show to the client.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func Validation(code, format string, args ...any) error {
	return ErrBusiness(KindValidation, code, fmt.Sprintf(format, args...))
}

func Unauthenticated(code, message string) error {
	return ErrBusiness(KindAuthentication, code, message)
}

func Forbidden(code, message string) error {
	return ErrBusiness(KindAuthorization, code, message)
}

func NotFoundf(code, format string, args ...any) error {
	return ErrBusiness(KindNotFound, code, fmt.Sprintf(format, args...))
}

func Conflict(code, message string) error {
	return ErrBusiness(KindConflict, code, message)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return 0, false
}
