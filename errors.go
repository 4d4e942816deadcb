package webshop

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrShopNotFound       = errors.New("shop not found")
	ErrClientDataNotFound = errors.New("client data not found")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrProvider           = errors.New("payment provider failed")
)

// ValidationError annotates ErrValidation with the failed check,
// keeping errors.Is(err, ErrValidation) true.
func ValidationError(msg string) error {
	return pkgerrors.Wrap(ErrValidation, msg)
}
