package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const sampleCSV = `name,generic_name,dosage,form,brand,category,requires_prescription
Dolex,Acetaminofén,500mg,tablet,GSK,Analgésicos,false
Amoxil,Amoxicilina,500mg,capsule,GSK,Antibióticos,true
Sal de Frutas,,,,,,
,sin nombre,,,,,
`

func TestReadCatalog_DefaultsYFilasVacias(t *testing.T) {
	rows, err := readCatalog(strings.NewReader(sampleCSV), false)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Acetaminofén", rows[0].GenericName)
	assert.True(t, rows[1].RequiresPrescription)
	assert.Equal(t, "Generic", rows[2].Brand)
	assert.Equal(t, "Uncategorized", rows[2].Category)
}

func TestReadCatalog_Latin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String(sampleCSV)
	require.NoError(t, err)

	rows, err := readCatalog(strings.NewReader(encoded), true)
	require.NoError(t, err)
	assert.Equal(t, "Analgésicos", rows[0].Category)
}

func TestReadCatalog_BooleanoInvalido(t *testing.T) {
	_, err := readCatalog(strings.NewReader("name,requires_prescription\nDolex,quizás\n"), false)
	assert.Error(t, err)
}

func TestWriteSeed_Idempotente(t *testing.T) {
	rows := []catalogRow{
		{Name: "D'Artagnan", Brand: "GSK", Category: "Otros", Dosage: "10mg"},
		{Name: "Dolex", Brand: "GSK", Category: "Analgésicos"},
	}
	var buf bytes.Buffer
	require.NoError(t, writeSeed(&buf, rows))
	sql := buf.String()

	assert.Equal(t, 1, strings.Count(sql, "('GSK')"), "marcas sin duplicados")
	assert.Contains(t, sql, "ON CONFLICT (name) DO NOTHING;")
	assert.Contains(t, sql, "'D''Artagnan'")
	assert.Contains(t, sql, "AND NOT EXISTS")
	assert.Contains(t, sql, "m.dosage IS NOT DISTINCT FROM '10mg'")
	assert.Contains(t, sql, "m.form IS NOT DISTINCT FROM NULL")
}
