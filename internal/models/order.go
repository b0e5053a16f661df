package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order through the kitchen
type OrderStatus string

const (
	StatusNew           OrderStatus = "New"
	StatusInPreparation OrderStatus = "In Preparation"
	StatusCompleted     OrderStatus = "Completed"
)

// ParseOrderStatus converts console input into an OrderStatus
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case StatusNew, StatusInPreparation, StatusCompleted:
		return st, nil
	default:
		return "", NewError(CodeInvalidInput, "Invalid Status.")
	}
}

// Order is a customer's order. Dishes are copies taken when the order was
// composed; TotalFee is cached and goes stale if a source dish is repriced.
type Order struct {
	ID            int
	CustomerID    int
	Dishes        []Dish
	TotalFee      decimal.Decimal
	Status        OrderStatus
	PaymentMethod string
}

// NewOrder composes a new order in the New status from copies of dishes
func NewOrder(id, customerID int, dishes []Dish, paymentMethod string) Order {
	o := Order{
		ID:            id,
		CustomerID:    customerID,
		Status:        StatusNew,
		PaymentMethod: paymentMethod,
	}
	o.SetDishes(dishes)
	return o
}

// SetDishes replaces the dishes with copies and recomputes the total fee
func (o *Order) SetDishes(dishes []Dish) {
	o.Dishes = make([]Dish, 0, len(dishes))
	for _, d := range dishes {
		o.Dishes = append(o.Dishes, d.Clone())
	}
	o.TotalFee = o.CalculateTotalFee()
}

// CalculateTotalFee sums the prices of the dishes held by the order
func (o Order) CalculateTotalFee() decimal.Decimal {
	total := decimal.Zero
	for _, d := range o.Dishes {
		total = total.Add(d.Price)
	}
	return total
}

// UpdateStatus sets the status. Any status may follow any other.
func (o *Order) UpdateStatus(status OrderStatus) {
	o.Status = status
}

// Clone returns a copy of the order that shares no memory with o
func (o Order) Clone() Order {
	c := o
	c.Dishes = make([]Dish, len(o.Dishes))
	for i, d := range o.Dishes {
		c.Dishes[i] = d.Clone()
	}
	return c
}

// FeeLine is the checkout view of the order
func (o Order) FeeLine() string {
	return fmt.Sprintf("Total Fee: %s", o.TotalFee.String())
}

func (o Order) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order ID: %d, Customer ID: %d, Total Fee: %s, Status: %s, Payment Method: %s\nDishes: ",
		o.ID, o.CustomerID, o.TotalFee.String(), o.Status, o.PaymentMethod)
	for _, d := range o.Dishes {
		b.WriteString("\n")
		b.WriteString(d.String())
	}
	return b.String()
}
