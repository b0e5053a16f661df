package services

import (
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/store"
)

// MaterialService manages the raw material records
type MaterialService interface {
	// CreateMaterial adds a material, rejecting a duplicate ID
	CreateMaterial(material models.Material) error
	// GetMaterialByID retrieves a material by its ID
	GetMaterialByID(id int) (models.Material, error)
	// UpdateMaterial replaces every field of an existing material
	UpdateMaterial(material models.Material) error
	// DeleteMaterial removes a material by its ID
	DeleteMaterial(id int) error
	// GetAllMaterials lists materials in insertion order
	GetAllMaterials() []models.Material
	// GetLowStockMaterials lists materials at or below their warning threshold
	GetLowStockMaterials() []models.Material
}

type materialService struct {
	materials *store.Collection[models.Material]
}

// NewMaterialService creates a new instance of MaterialService
func NewMaterialService(materials *store.Collection[models.Material]) MaterialService {
	return &materialService{materials: materials}
}

func (s *materialService) CreateMaterial(material models.Material) error {
	return storeError("Material", s.materials.Add(material.ID, material))
}

func (s *materialService) GetMaterialByID(id int) (models.Material, error) {
	material, err := s.materials.Find(id)
	if err != nil {
		return models.Material{}, storeError("Material", err)
	}
	return material, nil
}

func (s *materialService) UpdateMaterial(material models.Material) error {
	return storeError("Material", s.materials.Replace(material.ID, material))
}

func (s *materialService) DeleteMaterial(id int) error {
	return storeError("Material", s.materials.Delete(id))
}

func (s *materialService) GetAllMaterials() []models.Material {
	return s.materials.List()
}

func (s *materialService) GetLowStockMaterials() []models.Material {
	var low []models.Material
	for _, m := range s.materials.List() {
		if m.LowStock() {
			low = append(low, m)
		}
	}
	return low
}
