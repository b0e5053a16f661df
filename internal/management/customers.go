package management

import (
	"github.com/franciscosanchezn/restaurant-backoffice/internal/auth"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
)

func (f *Facade) AddCustomer(s auth.Session, c models.Customer) (string, error) {
	if err := f.gate.Authorize(s, auth.OpAddCustomer); err != nil {
		return "", err
	}
	if err := f.customers.CreateCustomer(c); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpAddCustomer, c.ID)
	return "Customer added successfully.", nil
}

func (f *Facade) ModifyCustomer(s auth.Session, c models.Customer) (string, error) {
	if err := f.gate.Authorize(s, auth.OpModifyCustomer); err != nil {
		return "", err
	}
	if err := f.customers.UpdateCustomer(c); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpModifyCustomer, c.ID)
	return "Customer modified successfully.", nil
}

func (f *Facade) DeleteCustomer(s auth.Session, id int) (string, error) {
	if err := f.gate.Authorize(s, auth.OpDeleteCustomer); err != nil {
		return "", err
	}
	if err := f.customers.DeleteCustomer(id); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpDeleteCustomer, id)
	return "Customer deleted successfully.", nil
}

func (f *Facade) DisplayCustomers(s auth.Session) (string, error) {
	if err := f.gate.Authorize(s, auth.OpDisplayCustomer); err != nil {
		return "", err
	}
	return display(f.customers.GetAllCustomers(), "No customers available."), nil
}
