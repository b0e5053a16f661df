package services

import (
	"github.com/shopspring/decimal"

	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
)

// CalculateFinance derives income, cost and profit. Empty inputs yield zero.
func CalculateFinance(orders []models.Order, materials []models.Material) models.Finance {
	income := decimal.Zero
	for _, o := range orders {
		income = income.Add(o.TotalFee)
	}
	cost := decimal.Zero
	for _, m := range materials {
		cost = cost.Add(m.Cost())
	}
	return models.Finance{
		TotalIncome: income,
		TotalCost:   cost,
		GrossProfit: income.Sub(cost),
	}
}

// FinanceService recomputes the finance snapshot on demand
type FinanceService interface {
	// Recompute calculates a fresh snapshot and remembers it
	Recompute(orders []models.Order, materials []models.Material) models.Finance
	// Last returns the most recent snapshot, if any was computed
	Last() (models.Finance, bool)
}

type financeService struct {
	last     models.Finance
	computed bool
}

func NewFinanceService() FinanceService {
	return &financeService{}
}

func (s *financeService) Recompute(orders []models.Order, materials []models.Material) models.Finance {
	s.last = CalculateFinance(orders, materials)
	s.computed = true
	return s.last
}

func (s *financeService) Last() (models.Finance, bool) {
	return s.last, s.computed
}
