package errors

import "github.com/muhammadheryan/lead-crm/constant"

type CustomError struct {
	errType constant.ErrorType
	fields  map[string]string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

// Fields returns the per-field messages of a validation failure, if any.
func (c CustomError) Fields() map[string]string {
	return c.fields
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetValidationError builds an ErrInvalidRequest carrying field messages.
func SetValidationError(fields map[string]string) CustomError {
	return CustomError{
		errType: constant.ErrInvalidRequest,
		fields:  fields,
	}
}

// SetFieldError builds errorType with a single field message attached, used
// for conflicts that surface as validation failures.
func SetFieldError(errorType constant.ErrorType, field, message string) CustomError {
	return CustomError{
		errType: errorType,
		fields:  map[string]string{field: message},
	}
}
