package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Finance is a snapshot of the restaurant's aggregate figures
type Finance struct {
	TotalIncome decimal.Decimal
	TotalCost   decimal.Decimal
	GrossProfit decimal.Decimal
}

func (f Finance) String() string {
	return fmt.Sprintf("Total Income: %s, Total Cost: %s, Gross Profit: %s",
		f.TotalIncome.String(), f.TotalCost.String(), f.GrossProfit.String())
}
