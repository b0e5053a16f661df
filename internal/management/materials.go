package management

import (
	"github.com/franciscosanchezn/restaurant-backoffice/internal/auth"
	"github.com/franciscosanchezn/restaurant-backoffice/internal/models"
)

func (f *Facade) AddMaterial(s auth.Session, m models.Material) (string, error) {
	if err := f.gate.Authorize(s, auth.OpAddMaterial); err != nil {
		return "", err
	}
	if err := f.materials.CreateMaterial(m); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpAddMaterial, m.ID)
	return "Material added successfully.", nil
}

// ModifyMaterial replaces every field of the material with m.ID.
// Dishes already holding a copy of the material are not touched.
func (f *Facade) ModifyMaterial(s auth.Session, m models.Material) (string, error) {
	if err := f.gate.Authorize(s, auth.OpModifyMaterial); err != nil {
		return "", err
	}
	if err := f.materials.UpdateMaterial(m); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpModifyMaterial, m.ID)
	return "Material modified successfully.", nil
}

func (f *Facade) DeleteMaterial(s auth.Session, id int) (string, error) {
	if err := f.gate.Authorize(s, auth.OpDeleteMaterial); err != nil {
		return "", err
	}
	if err := f.materials.DeleteMaterial(id); err != nil {
		return "", err
	}
	f.logSuccess(s, auth.OpDeleteMaterial, id)
	return "Material deleted successfully.", nil
}

func (f *Facade) DisplayMaterials(s auth.Session) (string, error) {
	if err := f.gate.Authorize(s, auth.OpDisplayMaterial); err != nil {
		return "", err
	}
	return display(f.materials.GetAllMaterials(), "No materials available."), nil
}

// LowStockReport lists materials whose quantity is at or below their warning threshold
func (f *Facade) LowStockReport(s auth.Session) (string, error) {
	if err := f.gate.Authorize(s, auth.OpLowStockMaterial); err != nil {
		return "", err
	}
	return display(f.materials.GetLowStockMaterials(), "No materials below warning threshold."), nil
}
