package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAccountCodeNotUnique      = errors.New("the account code must be unique for the organization")
	ErrAccountTypeInvalid        = errors.New("the account type is invalid")
	ErrOrganizationNameNotUnique = errors.New("the organization name must be unique")
	ErrPatternConfidenceInvalid  = errors.New("the pattern confidence must be between 0 and 1")
)
