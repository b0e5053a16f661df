package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Dish is a menu item. Ingredients are snapshot copies of the materials taken
// when the dish was composed, not live links to the material collection.
type Dish struct {
	ID          int
	Name        string
	Price       decimal.Decimal
	Category    string
	Ingredients []Material
}

// Clone returns a copy of the dish that shares no memory with d
func (d Dish) Clone() Dish {
	c := d
	if d.Ingredients != nil {
		c.Ingredients = make([]Material, len(d.Ingredients))
		copy(c.Ingredients, d.Ingredients)
	}
	return c
}

func (d Dish) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dish ID: %d, Name: %s, Price: %s, Category: %s\nIngredients: ",
		d.ID, d.Name, d.Price.String(), d.Category)
	for _, m := range d.Ingredients {
		b.WriteString("\n")
		b.WriteString(m.String())
	}
	return b.String()
}
