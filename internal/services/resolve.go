package services

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
)

// SlotSource supplies the identifiers of a reference list one slot at a time
type SlotSource interface {
	// NextID returns the identifier for slot. An error aborts the resolution.
	NextID(slot int) (int, error)
	// Unresolved reports that the identifier given for slot did not resolve
	Unresolved(slot int, err error)
}

// ResolveSlots fills count slots by asking src for identifiers and looking
// them up with resolve. An unresolved slot is reported and asked for again;
// after maxAttempts failures it is skipped and contributes nothing. A
// maxAttempts of zero or less retries without limit.
//
// Any error other than an unresolved reference aborts and returns no items.
func ResolveSlots[T any](count int, src SlotSource, resolve func(id int) (T, error), maxAttempts int) ([]T, error) {
	items := make([]T, 0, max(count, 0))
	for slot := 0; slot < count; slot++ {
		for attempt := 1; ; attempt++ {
			id, err := src.NextID(slot)
			if err != nil {
				return nil, err
			}
			item, err := resolve(id)
			if err == nil {
				items = append(items, item)
				break
			}
			if !errors.Is(err, models.ErrUnresolvedReference) {
				return nil, err
			}
			src.Unresolved(slot, err)
			if maxAttempts > 0 && attempt >= maxAttempts {
				log.WithFields(log.Fields{
					"slot":     slot,
					"id":       id,
					"attempts": attempt,
				}).Warn("Skipping unresolved slot")
				break
			}
		}
	}
	return items, nil
}
