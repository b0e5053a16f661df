package management

import (
	"github.com/franciscosanchezn/restaurant-backoffice/internal/auth"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
)

func (f *Facade) AddNotification(s auth.Session, n models.Notification) (string, error) {
	if err := f.gate.Authorize(s, auth.OpAddNotification); err != nil {
		return "", err
	}
	if err := f.notifications.CreateNotification(n); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpAddNotification, n.ID)
	return "Notification added successfully.", nil
}

func (f *Facade) ModifyNotification(s auth.Session, n models.Notification) (string, error) {
	if err := f.gate.Authorize(s, auth.OpModifyNotification); err != nil {
		return "", err
	}
	if err := f.notifications.UpdateNotification(n); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpModifyNotification, n.ID)
	return "Notification modified successfully.", nil
}

func (f *Facade) DeleteNotification(s auth.Session, id int) (string, error) {
	if err := f.gate.Authorize(s, auth.OpDeleteNotification); err != nil {
		return "", err
	}
	if err := f.notifications.DeleteNotification(id); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpDeleteNotification, id)
	return "Notification deleted successfully.", nil
}

func (f *Facade) DisplayNotifications(s auth.Session) (string, error) {
	if err := f.gate.Authorize(s, auth.OpDisplayNotification); err != nil {
		return "", err
	}
	return display(f.notifications.GetAllNotifications(), "No notifications available."), nil
}
