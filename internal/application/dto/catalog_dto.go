package dto

// CreateMedicineRequest entrada para agregar un medicamento al catálogo.
type CreateMedicineRequest struct {
	Name                 string `json:"name" validate:"required"`
	GenericName          string `json:"generic_name"`
	Dosage               string `json:"dosage"`
	Form                 string `json:"form"`
	BrandID              string `json:"brand_id" validate:"required,uuid"`
	CategoryID           string `json:"category_id" validate:"required,uuid"`
	RequiresPrescription bool   `json:"requires_prescription"`
}

// MedicineResponse medicamento del catálogo.
type MedicineResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	GenericName          string `json:"generic_name"`
	Dosage               string `json:"dosage"`
	Form                 string `json:"form"`
	BrandID              string `json:"brand_id"`
	BrandName            string `json:"brand_name"`
	CategoryID           string `json:"category_id"`
	CategoryName         string `json:"category_name"`
	RequiresPrescription bool   `json:"requires_prescription"`
}

// NamedResponse marca o categoría.
type NamedResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CatalogListsResponse las tres listas de catálogo; una lista vacía puede indicar fallo parcial.
type CatalogListsResponse struct {
	Medicines  []MedicineResponse `json:"medicines"`
	Brands     []NamedResponse    `json:"brands"`
	Categories []NamedResponse    `json:"categories"`
}
