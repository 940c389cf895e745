package impl

import (
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"

	"github.com/pkg/errors"
)

// mapRepoError translates repository sentinels into application errors. Other
// errors, storage failures included, are wrapped unchanged.
func mapRepoError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return errors.Wrap(domainerrors.ErrAccountNotFound, message)
	case errors.Is(err, repository.ErrDuplicateAccount):
		return errors.Wrap(domainerrors.ErrAccountConflict, message)
	case errors.Is(err, repository.ErrNotificationNotFound):
		return errors.Wrap(domainerrors.ErrNotificationNotFound, message)
	default:
		return errors.Wrap(err, message)
	}
}

// validationError wraps entity validation failures as ErrValidationFailed.
func validationError(err error) error {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		return errors.Wrap(domainerrors.ErrValidationFailed, verr.Error())
	}

	return errors.Wrap(err, "validation failed")
}
