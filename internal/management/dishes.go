package management

import (
	"github.com/franciscosanchezn/restaurant-backoffice/internal/auth"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
)

// ResolveMaterial returns a copy of a material to use as a dish ingredient.
// An unknown ID yields an unresolved reference that the caller may retry.
func (f *Facade) ResolveMaterial(s auth.Session, materialID int) (models.Material, error) {
	if err := f.gate.Authorize(s, auth.OpResolveMaterial); err != nil {
		return models.Material{}, err
	}
	return f.dishes.ResolveMaterial(materialID)
}

func (f *Facade) AddDish(s auth.Session, d models.Dish) (string, error) {
	if err := f.gate.Authorize(s, auth.OpAddDish); err != nil {
		return "", err
	}
	if err := f.dishes.CreateDish(d); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpAddDish, d.ID)
	return "Dish added successfully.", nil
}

// ModifyDish replaces every field of the dish with d.ID. Orders already
// holding a copy of the dish keep their old copy and total fee.
func (f *Facade) ModifyDish(s auth.Session, d models.Dish) (string, error) {
	if err := f.gate.Authorize(s, auth.OpModifyDish); err != nil {
		return "", err
	}
	if err := f.dishes.UpdateDish(d); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpModifyDish, d.ID)
	return "Dish modified successfully.", nil
}

func (f *Facade) DeleteDish(s auth.Session, id int) (string, error) {
	if err := f.gate.Authorize(s, auth.OpDeleteDish); err != nil {
		return "", err
	}
	if err := f.dishes.DeleteDish(id); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpDeleteDish, id)
	return "Dish deleted successfully.", nil
}

// DisplayDishes is open to everyone
func (f *Facade) DisplayDishes(s auth.Session) (string, error) {
	if err := f.gate.Authorize(s, auth.OpDisplayDish); err != nil {
		return "", err
	}
	return display(f.dishes.GetAllDishes(), "No dishes available."), nil
}
