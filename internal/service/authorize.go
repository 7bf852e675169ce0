package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "devconnect/internal/errors"
)

// requireOwner is the single ownership-authorization primitive: load the
// target resource, then compare its recorded owner to the authenticated user.
// A missing resource maps to notFound, a mismatched owner to ErrNotOwner, and
// only on a match does the caller proceed to mutate.
func requireOwner[T any](load func() (T, error), ownerOf func(T) uuid.UUID, notFound error, actor uuid.UUID) (T, error) {
	var zero T
	res, err := load()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, notFound
		}
		return zero, err
	}
	if ownerOf(res) != actor {
		return zero, apperrors.ErrNotOwner
	}
	return res, nil
}
