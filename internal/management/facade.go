// Package management is the single entry point the console talks to. Every
// call checks the session against the permission table, applies the business
// rule for the entity and hands back a human-readable outcome.
//
// A Facade is not safe for concurrent use.
package management

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/restaurant-backoffice/internal/auth"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/services"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/store"
)

// Services groups the record services the facade delegates to
type Services struct {
	Users         services.UserService
	Materials     services.MaterialService
	Dishes        services.DishService
	Customers     services.CustomerService
	Orders        services.OrderService
	Notifications services.NotificationService
	Finance       services.FinanceService
}

// Options configures an in-memory facade
type Options struct {
	SessionSecret string
	SessionTTL    time.Duration
	PasswordCost  int
}

type Facade struct {
	gate          *auth.Gate
	users         services.UserService
	materials     services.MaterialService
	dishes        services.DishService
	customers     services.CustomerService
	orders        services.OrderService
	notifications services.NotificationService
	finance       services.FinanceService
}

// NewFacade creates a facade over the given gate and services
func NewFacade(gate *auth.Gate, svc Services) *Facade {
	return &Facade{
		gate:          gate,
		users:         svc.Users,
		materials:     svc.Materials,
		dishes:        svc.Dishes,
		customers:     svc.Customers,
		orders:        svc.Orders,
		notifications: svc.Notifications,
		finance:       svc.Finance,
	}
}

// NewInMemory wires empty collections, services and a gate into a facade
func NewInMemory(opts Options) *Facade {
	materials := services.NewMaterialService(store.NewCollection[models.Material](16))
	dishes := services.NewDishService(store.NewCollection[models.Dish](16), materials)
	users := services.NewUserService(store.NewCollection[models.User](16), opts.PasswordCost)

	svc := Services{
		Users:         users,
		Materials:     materials,
		Dishes:        dishes,
		Customers:     services.NewCustomerService(store.NewCollection[models.Customer](16)),
		Orders:        services.NewOrderService(store.NewCollection[models.Order](16), dishes),
		Notifications: services.NewNotificationService(store.NewCollection[models.Notification](16)),
		Finance:       services.NewFinanceService(),
	}
	return NewFacade(auth.NewGate(users, opts.SessionSecret, opts.SessionTTL), svc)
}

// Login authenticates a user and returns the session to pass to later calls
func (f *Facade) Login(username, password string) (auth.Session, error) {
	return f.gate.Login(username, password)
}

// Logout ends the session
func (f *Facade) Logout(s auth.Session) string {
	f.gate.Logout(s)
	return "Logging out."
}

// CurrentRole returns the role of the actor bound to s
func (f *Facade) CurrentRole(s auth.Session) (models.Role, bool) {
	return f.gate.Role(s)
}

// Authorize lets the console check a permission before it prompts for input
func (f *Facade) Authorize(s auth.Session, op auth.Operation) error {
	return f.gate.Authorize(s, op)
}

// Ensure checks that s may run op and that the record op targets exists.
// The console calls it before prompting for replacement fields.
func (f *Facade) Ensure(s auth.Session, op auth.Operation, id int) error {
	if err := f.gate.Authorize(s, op); err != nil {
		return err
	}
	var err error
	switch op {
	case auth.OpModifyUser, auth.OpDeleteUser:
		_, err = f.users.GetUserByID(id)
	case auth.OpModifyMaterial, auth.OpDeleteMaterial:
		_, err = f.materials.GetMaterialByID(id)
	case auth.OpModifyDish, auth.OpDeleteDish:
		_, err = f.dishes.GetDishByID(id)
	case auth.OpModifyCustomer, auth.OpDeleteCustomer:
		_, err = f.customers.GetCustomerByID(id)
	case auth.OpModifyOrder, auth.OpDeleteOrder, auth.OpUpdateOrderStatus:
		_, err = f.orders.GetOrderByID(id)
	case auth.OpModifyNotification, auth.OpDeleteNotification:
		_, err = f.notifications.GetNotificationByID(id)
	default:
		err = fmt.Errorf("operation %s does not target an existing record", op)
	}
	return err
}

func (f *Facade) logSuccess(s auth.Session, op auth.Operation, id int) {
	log.WithFields(log.Fields{
		"operation":  op,
		"record_id":  id,
		"user_id":    s.UserID,
		"session_id": s.ID,
	}).Debug("Operation completed")
}

// display renders records one per line, or empty when there are none
func display[T fmt.Stringer](records []T, empty string) string {
	if len(records) == 0 {
		return empty
	}
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
