package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderKey(t *testing.T) {
	cases := map[string]string{
		"Categoría Trab":       "categoria_trab",
		"  SERIAL_NUM ":        "serial_num",
		"Estado Coordinación":  "estado_coordinacion",
		"Fecha Repotenciación": "fecha_repotenciacion",
		"email_trabajo":        "email_trabajo",
		"Ubicación":            "ubicacion",
		"":                     "",
	}
	for raw, want := range cases {
		assert.Equal(t, want, HeaderKey(raw), raw)
	}
}

func TestDateNormalizer_Normalize(t *testing.T) {
	d := NewDateNormalizer(false)

	cases := []struct {
		in, want string
	}{
		{"2025-09-29", "2025-09-29"},
		{" 2025-09-29 ", "2025-09-29"},
		{"2025-09-29 14:30:00", "2025-09-29"},
		{"2025-09-29T14:30:00Z", "2025-09-29"},
		{"2025-09-29T14:30:00.123", "2025-09-29"},
		{"2025/9/3", "2025-09-03"},
		{"2025.09.03", "2025-09-03"},
		{"29/09/2025", "2025-09-29"},
		{"3/4/2025", "2025-04-03"},
		{"29-09-2025", "2025-09-29"},
		{"09/29/2025", "2025-09-29"},
		{"2025-09", "2025-09"},
		{"mañana", "mañana"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, d.Normalize(tc.in), tc.in)
	}
}

func TestDateNormalizer_MonthFirst(t *testing.T) {
	d := NewDateNormalizer(true)
	assert.Equal(t, "2025-03-04", d.Normalize("3/4/2025"))
	assert.Equal(t, "2025-09-29", d.Normalize("29/09/2025"))
}

func TestDateNormalizer_Idempotent(t *testing.T) {
	d := DateNormalizer{}
	for _, in := range []string{"2025-09-29", "29/09/2025", "2025-09-29 10:00", "2025-09", "abc", ""} {
		once := d.Normalize(in)
		assert.Equal(t, once, d.Normalize(once), in)
	}
}

func TestCoerceISODate(t *testing.T) {
	d := NewDateNormalizer(false)
	assert.Equal(t, "", d.CoerceISODate("2025-09"))
	assert.Equal(t, "", d.CoerceISODate("garbage"))
	assert.Equal(t, "", d.CoerceISODate(""))
	assert.Equal(t, "2025-09-29", d.CoerceISODate("29/09/2025"))
	assert.Equal(t, "2025-09-29", d.CoerceISODate("2025-09-29"))
}
