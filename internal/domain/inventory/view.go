package inventory

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// AllFilter valor centinela de categoría y marca: sin filtro.
const AllFilter = "all"

// FilterCriteria estado inmutable de la búsqueda. Category y Brand vacíos equivalen a AllFilter.
type FilterCriteria struct {
	SearchTerm string
	Category   string
	Brand      string
}

// ItemView lote visible con su estado derivado.
type ItemView struct {
	Item         entity.InventoryItem
	Status       Status
	DaysToExpiry int
}

// Summary conteos sobre el subconjunto visible; un lote puede sumar en varios.
// Unfiltered es el tamaño de la colección antes de filtrar.
type Summary struct {
	Total        int
	LowStock     int
	ExpiringSoon int
	Expired      int
	Unfiltered   int
}

// View resultado de ComputeView.
type View struct {
	Visible []ItemView
	Summary Summary
}

// Items devuelve sólo los lotes visibles, en el orden de entrada.
func (v View) Items() []entity.InventoryItem {
	out := make([]entity.InventoryItem, len(v.Visible))
	for i, iv := range v.Visible {
		out[i] = iv.Item
	}
	return out
}

// ComputeView filtra la colección (ya acotada a una farmacia) y deriva estados y conteos.
// Función pura: no modifica items ni retiene estado.
func ComputeView(items []entity.InventoryItem, criteria FilterCriteria, ref time.Time) View {
	visible := Filter(items, criteria)
	view := View{
		Visible: make([]ItemView, 0, len(visible)),
		Summary: Summary{Total: len(visible), Unfiltered: len(items)},
	}
	for _, item := range visible {
		st := Evaluate(item, ref)
		if st.Has(LowStock) {
			view.Summary.LowStock++
		}
		if st.Has(ExpiringSoon) {
			view.Summary.ExpiringSoon++
		}
		if st.Has(Expired) {
			view.Summary.Expired++
		}
		view.Visible = append(view.Visible, ItemView{
			Item:         item,
			Status:       st,
			DaysToExpiry: DaysToExpiry(item.ExpiryDate, ref),
		})
	}
	return view
}

// Filter aplica búsqueda libre, categoría y marca como conjunción. Preserva el orden.
func Filter(items []entity.InventoryItem, criteria FilterCriteria) []entity.InventoryItem {
	m := newMatcher(criteria)
	out := make([]entity.InventoryItem, 0, len(items))
	for _, item := range items {
		if m.match(item) {
			out = append(out, item)
		}
	}
	return out
}

type matcher struct {
	fold     cases.Caser
	term     string
	category string
	brand    string
}

func newMatcher(c FilterCriteria) *matcher {
	m := &matcher{fold: cases.Fold()}
	if t := strings.TrimSpace(c.SearchTerm); t != "" {
		m.term = m.fold.String(t)
	}
	if isActive(c.Category) {
		m.category = m.fold.String(c.Category)
	}
	if isActive(c.Brand) {
		m.brand = m.fold.String(c.Brand)
	}
	return m
}

func (m *matcher) match(item entity.InventoryItem) bool {
	if m.term != "" && !m.matchesTerm(item) {
		return false
	}
	if m.category != "" && m.fold.String(item.CategoryName) != m.category {
		return false
	}
	if m.brand != "" && m.fold.String(item.BrandName) != m.brand {
		return false
	}
	return true
}

func (m *matcher) matchesTerm(item entity.InventoryItem) bool {
	for _, field := range [...]string{item.MedicineName, item.BrandName, item.CategoryName, item.BatchNumber} {
		if strings.Contains(m.fold.String(field), m.term) {
			return true
		}
	}
	return false
}

func isActive(filter string) bool {
	return filter != "" && filter != AllFilter
}
