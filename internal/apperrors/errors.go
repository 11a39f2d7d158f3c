package apperrors

import (
	"errors"
	"fmt"
)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAccountType is returned when an account type is outside the known set.
var ErrInvalidAccountType = fmt.Errorf("%w: Invalid account type", ErrValidation)

// ErrInvalidAccountSubtype is returned when an account subtype is outside the known set.
var ErrInvalidAccountSubtype = fmt.Errorf("%w: Invalid account subtype", ErrValidation)

// ErrInvalidMapping indicates an import column mapping that cannot produce a transaction.
var ErrInvalidMapping = fmt.Errorf("%w: invalid import mapping", ErrValidation)

// ErrInvalidPageToken indicates a page token that does not belong to the requested batch.
var ErrInvalidPageToken = fmt.Errorf("%w: invalid page token", ErrValidation)
