package entity

import "time"

// Medicine definición de catálogo. BrandID y CategoryID pueden faltar en filas antiguas.
type Medicine struct {
	ID                   string
	Name                 string
	GenericName          string
	Dosage               string
	Form                 string
	BrandID              string
	BrandName            string
	CategoryID           string
	CategoryName         string
	RequiresPrescription bool
	CreatedAt            time.Time
}

// Brand marca de medicamento.
type Brand struct {
	ID   string
	Name string
}

// Category categoría terapéutica.
type Category struct {
	ID   string
	Name string
}
