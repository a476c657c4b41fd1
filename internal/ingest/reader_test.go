package ingest

import (
	"strings"
	"testing"

	"refresh-tracker/internal/normalize"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_MapsSynonymsAndDropsUnknown(t *testing.T) {
	csv := "\xEF\xBB\xBFSerial, Brand ,GB,Color,Status\n" +
		" R1 ,Kingston,16,blue,instalado\n" +
		"R2,,8,,\n"

	records, err := Read("lote.CSV", strings.NewReader(csv), RAMSchema)
	require.NoError(t, err)

	want := []Record{
		{Row: 2, Values: map[Field]string{FieldSerial: "R1", FieldBrand: "Kingston", FieldCapacityGB: "16", FieldStatus: "instalado"}},
		{Row: 3, Values: map[Field]string{FieldSerial: "R2", FieldCapacityGB: "8"}},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_HeaderSynonymsAreEquivalent(t *testing.T) {
	a, err := Read("a.csv", strings.NewReader("serial_num,capacidad_gb\nX,4\n"), SSDSchema)
	require.NoError(t, err)
	b, err := Read("b.csv", strings.NewReader("Serial,Capacidad\nX,4\n"), SSDSchema)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(a, b))
}

func TestSchemas_SynonymsStayInsideFieldSet(t *testing.T) {
	for _, entity := range []Entity{EntityEquipment, EntityRAM, EntitySSD, EntityRepotentiation, EntityDestruction} {
		schema, ok := SchemaFor(entity)
		require.True(t, ok, entity)

		fields := make(map[Field]bool)
		for _, f := range schema.Fields() {
			fields[f] = true
		}
		assert.Len(t, fields, len(schema.Template[0]), "template header must map one column per field: %s", entity)
		for key, f := range schema.Synonyms {
			assert.Equal(t, key, normalize.HeaderKey(key), "synonym key not normalized: %s", entity)
			assert.True(t, fields[f], "synonym %q -> %q outside template for %s", key, f, entity)
		}
		for _, row := range schema.Template[1:] {
			assert.Len(t, row, len(schema.Template[0]), entity)
		}
	}
}

func TestRead_Rejections(t *testing.T) {
	_, err := Read("data.xlsx", strings.NewReader("serial\nA\n"), RAMSchema)
	assert.True(t, errors.Is(err, ErrFormat))

	_, err = Read("data.csv", strings.NewReader("serial\n\xff\xfe\n"), RAMSchema)
	assert.True(t, errors.Is(err, ErrEncoding))

	_, err = Read("data.csv", strings.NewReader(""), RAMSchema)
	assert.True(t, errors.Is(err, ErrNoRecords))

	_, err = Read("data.csv", strings.NewReader("serial,marca\n"), RAMSchema)
	assert.True(t, errors.Is(err, ErrNoRecords))
}

func TestCoerce(t *testing.T) {
	assert.Equal(t, "POR_ENTREGAR", string(componentStatus("")))
	assert.Equal(t, "POR_ENTREGAR", string(componentStatus("roto")))
	assert.Equal(t, "POR_ASIGNAR", string(componentStatus("por asignar")))
	assert.Equal(t, "EN_PROCESO", string(destructionStatus("en proceso")))
	assert.Equal(t, "PENDIENTE", string(destructionStatus("quemado")))

	for _, v := range []string{"", "0", "-5"} {
		_, msg := capacity(v)
		assert.Equal(t, msgCapacityInvalid, msg, v)
	}
	_, msg := capacity("abc")
	assert.Equal(t, msgCapacityNumeric, msg)
	gb, msg := capacity("16")
	assert.Equal(t, 16, gb)
	assert.Empty(t, msg)

	assert.Nil(t, optionalInt("fast"))
	assert.Equal(t, 3200, *optionalInt("3200"))

	for _, v := range []string{"1", "si", "Yes", "TRUE"} {
		assert.True(t, truthy(v), v)
	}
	for _, v := range []string{"", "0", "no", "false"} {
		assert.False(t, truthy(v), v)
	}
}
