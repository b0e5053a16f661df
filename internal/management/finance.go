package management

import (
	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/restaurant-backoffice/internal/auth"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
)

// CalculateFinance recomputes income, cost and profit. It refuses to run
// until there is at least one order and one material.
func (f *Facade) CalculateFinance(s auth.Session) (string, error) {
	snapshot, err := f.Finance(s)
	if err != nil {
		return "", err
	}
	return snapshot.String(), nil
}

// Finance is CalculateFinance returning the snapshot itself
func (f *Facade) Finance(s auth.Session) (models.Finance, error) {
	if err := f.gate.Authorize(s, auth.OpCalculateFinance); err != nil {
		return models.Finance{}, err
	}
	orders := f.orders.GetAllOrders()
	materials := f.materials.GetAllMaterials()
	if len(orders) == 0 || len(materials) == 0 {
		return models.Finance{}, models.ErrInsufficientData
	}

	snapshot := f.finance.Recompute(orders, materials)
	log.WithFields(log.Fields{
		"orders":       len(orders),
		"materials":    len(materials),
		"gross_profit": snapshot.GrossProfit.String(),
		"user_id":      s.UserID,
	}).Info("Finance recomputed")
	return snapshot, nil
}
