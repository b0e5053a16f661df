package services

import (
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/store"
)

// NotificationService manages manually entered notifications.
// Nothing in the system generates notifications on its own.
type NotificationService interface {
	CreateNotification(notification models.Notification) error
	GetNotificationByID(id int) (models.Notification, error)
	UpdateNotification(notification models.Notification) error
	DeleteNotification(id int) error
	GetAllNotifications() []models.Notification
}

type notificationService struct {
	notifications *store.Collection[models.Notification]
}

func NewNotificationService(notifications *store.Collection[models.Notification]) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) CreateNotification(notification models.Notification) error {
	return storeError("Notification", s.notifications.Add(notification.ID, notification))
}

func (s *notificationService) GetNotificationByID(id int) (models.Notification, error) {
	notification, err := s.notifications.Find(id)
	if err != nil {
		return models.Notification{}, storeError("Notification", err)
	}
	return notification, nil
}

func (s *notificationService) UpdateNotification(notification models.Notification) error {
	return storeError("Notification", s.notifications.Replace(notification.ID, notification))
}

func (s *notificationService) DeleteNotification(id int) error {
	return storeError("Notification", s.notifications.Delete(id))
}

func (s *notificationService) GetAllNotifications() []models.Notification {
	return s.notifications.List()
}
