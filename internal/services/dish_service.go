package services

import (
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/store"
)

// DishService manages menu dishes. Dishes are unique by ID and by name.
type DishService interface {
	// CreateDish adds a dish, rejecting a duplicate ID or a duplicate name
	CreateDish(dish models.Dish) error
	GetDishByID(id int) (models.Dish, error)
	// UpdateDish replaces every field of an existing dish
	UpdateDish(dish models.Dish) error
	DeleteDish(id int) error
	GetAllDishes() []models.Dish
	// ResolveMaterial returns a snapshot copy of a material for use as an ingredient
	ResolveMaterial(materialID int) (models.Material, error)
}

type dishService struct {
	dishes    *store.Collection[models.Dish]
	materials MaterialService
}

func NewDishService(dishes *store.Collection[models.Dish], materials MaterialService) DishService {
	return &dishService{dishes: dishes, materials: materials}
}

func (s *dishService) CreateDish(dish models.Dish) error {
	taken := s.dishes.Contains(dish.ID) || s.dishes.Any(func(d models.Dish) bool {
		return d.Name == dish.Name
	})
	if taken {
		return models.NewError(models.CodeDuplicateKey, "Dish ID or Name already exists. Returning to main menu.")
	}
	return storeError("Dish", s.dishes.Add(dish.ID, dish.Clone()))
}

func (s *dishService) GetDishByID(id int) (models.Dish, error) {
	dish, err := s.dishes.Find(id)
	if err != nil {
		return models.Dish{}, storeError("Dish", err)
	}
	return dish.Clone(), nil
}

func (s *dishService) UpdateDish(dish models.Dish) error {
	return storeError("Dish", s.dishes.Replace(dish.ID, dish.Clone()))
}

func (s *dishService) DeleteDish(id int) error {
	return storeError("Dish", s.dishes.Delete(id))
}

// GetAllDishes returns copies of the stored dishes in insertion order
func (s *dishService) GetAllDishes() []models.Dish {
	dishes := s.dishes.List()
	for i, d := range dishes {
		dishes[i] = d.Clone()
	}
	return dishes
}

func (s *dishService) ResolveMaterial(materialID int) (models.Material, error) {
	material, err := s.materials.GetMaterialByID(materialID)
	if err != nil {
		return models.Material{}, models.NewError(models.CodeUnresolvedReference, "Material not found")
	}
	return material, nil
}
