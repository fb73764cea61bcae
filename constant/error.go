package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrForbidden
	ErrNotApproved
	ErrInvalidOTP
	ErrLeadEmailExists
	ErrInvalidFile
	ErrCurrentPasswordMismatch
	ErrFreelancerNotFound
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                 "success",
	ErrInternal:                "error internal",
	ErrNotFound:                "data not found",
	ErrInvalidRequest:          "validation failed",
	ErrUnauthorize:             "unauthorize request",
	ErrCredentialExists:        "email or mobile number already exists",
	ErrInvalidPassword:         "password is incorrect",
	ErrForbidden:               "you do not have sufficient permissions to access this resource",
	ErrNotApproved:             "your account is waiting for admin approval",
	ErrInvalidOTP:              "invalid or expired otp",
	ErrLeadEmailExists:         "lead email already exists",
	ErrInvalidFile:             "invalid file",
	ErrCurrentPasswordMismatch: "current password is incorrect",
	ErrFreelancerNotFound:      "freelancer not found or not a valid freelancer",
}

// Business failures travel in the body with 200. Only the auth middleware
// (401) and unexpected failures (500) use a non-200 status.
var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                 http.StatusOK,
	ErrInternal:                http.StatusInternalServerError,
	ErrNotFound:                http.StatusOK,
	ErrInvalidRequest:          http.StatusOK,
	ErrUnauthorize:             http.StatusUnauthorized,
	ErrCredentialExists:        http.StatusOK,
	ErrInvalidPassword:         http.StatusOK,
	ErrForbidden:               http.StatusOK,
	ErrNotApproved:             http.StatusOK,
	ErrInvalidOTP:              http.StatusOK,
	ErrLeadEmailExists:         http.StatusOK,
	ErrInvalidFile:             http.StatusOK,
	ErrCurrentPasswordMismatch: http.StatusOK,
	ErrFreelancerNotFound:      http.StatusOK,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                 "0000",
	ErrInternal:                "0001",
	ErrNotFound:                "0002",
	ErrInvalidRequest:          "0003",
	ErrUnauthorize:             "0004",
	ErrCredentialExists:        "0005",
	ErrInvalidPassword:         "0006",
	ErrForbidden:               "0007",
	ErrNotApproved:             "0008",
	ErrInvalidOTP:              "0009",
	ErrLeadEmailExists:         "0010",
	ErrInvalidFile:             "0011",
	ErrCurrentPasswordMismatch: "0012",
	ErrFreelancerNotFound:      "0013",
}
