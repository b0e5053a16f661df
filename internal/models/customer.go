package models

import "fmt"

// Customer is a guest of the restaurant with loyalty points
type Customer struct {
	ID           int
	Name         string
	Contact      string
	Points       int
	DiscountInfo string
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer ID: %d, Name: %s, Contact: %s, Points: %d, Discount Info: %s",
		c.ID, c.Name, c.Contact, c.Points, c.DiscountInfo)
}
