package httperr

import "errors"

// BusinessError carries a stable machine-readable code through the
// usecase layer up to the HTTP handlers.
//
// Codes used by the workflow core:
//
//	validation_error     malformed input (empty required field, bad status)
//	client_not_found     reference to a nonexistent client
//	project_not_found    reference to a nonexistent project
//	template_not_found   unknown catalog template
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from any wrapped BusinessError.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
