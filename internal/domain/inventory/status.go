package inventory

import (
	"strings"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// ExpiringSoonDays ventana (en días de calendario) en la que un lote se considera por vencer.
const ExpiringSoonDays = 30

// Status conjunto de banderas derivadas de un lote para una fecha de referencia.
// El conjunto vacío es "good". Expired y ExpiringSoon son mutuamente excluyentes;
// LowStock es independiente del vencimiento.
type Status uint8

const (
	Expired Status = 1 << iota
	ExpiringSoon
	LowStock
)

// Etiquetas en el orden en que se muestran como badges.
const (
	LabelExpired      = "expired"
	LabelExpiringSoon = "expiring_soon"
	LabelLowStock     = "low_stock"
	LabelGood         = "good"
)

// Has indica si el estado contiene todas las banderas de f.
func (s Status) Has(f Status) bool { return s&f == f }

// Good es verdadero cuando no aplica ninguna otra bandera.
func (s Status) Good() bool { return s == 0 }

// Labels devuelve las etiquetas activas; "good" sólo aparece sola.
func (s Status) Labels() []string {
	if s.Good() {
		return []string{LabelGood}
	}
	labels := make([]string, 0, 2)
	if s.Has(Expired) {
		labels = append(labels, LabelExpired)
	}
	if s.Has(ExpiringSoon) {
		labels = append(labels, LabelExpiringSoon)
	}
	if s.Has(LowStock) {
		labels = append(labels, LabelLowStock)
	}
	return labels
}

func (s Status) String() string { return strings.Join(s.Labels(), "+") }

// DaysToExpiry días de calendario entre ref y expiry (negativo si ya venció).
// La hora del día no cuenta: cada valor se trunca a su fecha en su propia zona.
func DaysToExpiry(expiry, ref time.Time) int {
	return int(civilDay(expiry).Sub(civilDay(ref)) / (24 * time.Hour))
}

// Evaluate deriva el estado de un lote para la fecha de referencia.
func Evaluate(item entity.InventoryItem, ref time.Time) Status {
	var s Status
	days := DaysToExpiry(item.ExpiryDate, ref)
	switch {
	case days < 0:
		s |= Expired
	case days > 0 && days <= ExpiringSoonDays:
		s |= ExpiringSoon
	}
	if IsLowStock(item) {
		s |= LowStock
	}
	return s
}

// IsLowStock cantidad en o por debajo del mínimo configurado.
func IsLowStock(item entity.InventoryItem) bool {
	return item.QuantityInStock <= item.MinimumStockLevel
}

// civilDay lleva t a la medianoche UTC de su fecha local, para restar días exactos.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
