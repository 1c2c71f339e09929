// seed_catalog genera el script SQL que puebla marcas, categorías y medicamentos
// a partir de un CSV de catálogo.
//
// Uso: go run ./cmd/seed_catalog [-latin1] [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Columnas: name, generic_name, dosage, form, brand, category, requires_prescription
// Escribe: internal/infrastructure/postgres/migrations/900_seed_catalog.sql
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

type catalogRow struct {
	Name                 string
	GenericName          string
	Dosage               string
	Form                 string
	Brand                string
	Category             string
	RequiresPrescription bool
}

func main() {
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1")
	flag.Parse()

	csvPath := "catalogo.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := readCatalog(f, *latin1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "900_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSeed(out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d medicamentos\n", outPath, len(rows))
}

// readCatalog lee el CSV con cabecera. Marca y categoría vacías toman los nombres por defecto.
func readCatalog(r io.Reader, latin1 bool) ([]catalogRow, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	if _, ok := idx["name"]; !ok {
		return nil, errors.New("falta la columna name")
	}
	get := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []catalogRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		row := catalogRow{
			Name:        get(rec, "name"),
			GenericName: get(rec, "generic_name"),
			Dosage:      get(rec, "dosage"),
			Form:        get(rec, "form"),
			Brand:       get(rec, "brand"),
			Category:    get(rec, "category"),
		}
		if row.Name == "" {
			continue
		}
		if row.Brand == "" {
			row.Brand = entity.DefaultBrandName
		}
		if row.Category == "" {
			row.Category = entity.DefaultCategoryName
		}
		if v := get(rec, "requires_prescription"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("línea %d: requires_prescription %q: %w", line, v, err)
			}
			row.RequiresPrescription = b
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// writeSeed escribe SQL idempotente: marcas y categorías con ON CONFLICT,
// medicamentos sólo si no existe uno con el mismo nombre, dosis y forma.
func writeSeed(w io.Writer, rows []catalogRow) error {
	brands := uniqueSorted(rows, func(r catalogRow) string { return r.Brand })
	categories := uniqueSorted(rows, func(r catalogRow) string { return r.Category })

	var b strings.Builder
	b.WriteString("-- Catálogo de medicamentos\n")
	b.WriteString("-- Generado por cmd/seed_catalog\n\n")

	writeNames(&b, "1. Marcas", "medicine_brands", brands)
	writeNames(&b, "2. Categorías", "medicine_categories", categories)

	b.WriteString("-- 3. Medicamentos\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "INSERT INTO medicines (name, generic_name, dosage, form, brand_id, category_id, requires_prescription)\n")
		fmt.Fprintf(&b, "SELECT '%s', %s, %s, %s, b.id, c.id, %t\n",
			escapeSQL(r.Name), nullable(r.GenericName), nullable(r.Dosage), nullable(r.Form), r.RequiresPrescription)
		fmt.Fprintf(&b, "FROM medicine_brands b, medicine_categories c\n")
		fmt.Fprintf(&b, "WHERE b.name = '%s' AND c.name = '%s'\n", escapeSQL(r.Brand), escapeSQL(r.Category))
		fmt.Fprintf(&b, "  AND NOT EXISTS (SELECT 1 FROM medicines m WHERE m.name = '%s' AND m.dosage IS NOT DISTINCT FROM %s AND m.form IS NOT DISTINCT FROM %s);\n",
			escapeSQL(r.Name), nullable(r.Dosage), nullable(r.Form))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeNames(b *strings.Builder, title, table string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(b, "-- %s\n", title)
	fmt.Fprintf(b, "INSERT INTO %s (name) VALUES\n", table)
	for i, n := range names {
		sep := ","
		if i == len(names)-1 {
			sep = ""
		}
		fmt.Fprintf(b, "  ('%s')%s\n", escapeSQL(n), sep)
	}
	b.WriteString("ON CONFLICT (name) DO NOTHING;\n\n")
}

func uniqueSorted(rows []catalogRow, key func(catalogRow) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func nullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
