package services

import (
	"errors"

	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/store"
)

// storeError maps a collection error onto the entity's user-facing error
func storeError(entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrDuplicateKey):
		return models.NewError(models.CodeDuplicateKey, entity+" ID already exists. Returning to main menu.")
	case errors.Is(err, store.ErrNotFound):
		return models.NewError(models.CodeNotFound, entity+" ID not found. Returning to main menu.")
	default:
		return err
	}
}
