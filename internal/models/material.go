package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Material is a raw ingredient held in stock
type Material struct {
	ID               int
	Name             string
	Price            decimal.Decimal
	Quantity         int
	WarningThreshold int
}

// Cost is the stock value of the material: price times quantity on hand
func (m Material) Cost() decimal.Decimal {
	return m.Price.Mul(decimal.NewFromInt(int64(m.Quantity)))
}

// LowStock reports whether the quantity on hand is at or below the warning threshold
func (m Material) LowStock() bool {
	return m.Quantity <= m.WarningThreshold
}

func (m Material) String() string {
	return fmt.Sprintf("Material ID: %d, Name: %s, Price: %s, Quantity: %d, Warning Threshold: %d",
		m.ID, m.Name, m.Price.String(), m.Quantity, m.WarningThreshold)
}
