package models

import "fmt"

// Suggested notification types. Type is free text and is not validated.
const (
	NotificationStockWarning = "Stock Warning"
	NotificationOrder        = "Order Notification"
)

// Notification is a manually entered message. Time is free text.
type Notification struct {
	ID      int
	Type    string
	Content string
	Time    string
}

func (n Notification) String() string {
	return fmt.Sprintf("Notification ID: %d, Type: %s, Content: %s, Time: %s",
		n.ID, n.Type, n.Content, n.Time)
}
