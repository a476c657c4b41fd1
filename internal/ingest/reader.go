package ingest

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"refresh-tracker/internal/normalize"

	"github.com/pkg/errors"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Record — строка данных с колонками, переведёнными в канонические имена.
// Хранятся только непустые значения, уже без пробелов по краям.
type Record struct {
	Row    int
	Values map[Field]string
}

func (r Record) Get(f Field) string {
	return r.Values[f]
}

// Read разбирает CSV целиком: заголовок, затем строки данных.
// Неизвестные заголовки отбрасываются.
func Read(filename string, r io.Reader, schema Schema) ([]Record, error) {
	if !strings.HasSuffix(strings.ToLower(strings.TrimSpace(filename)), ".csv") {
		return nil, ErrFormat
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read upload")
	}
	data = bytes.TrimPrefix(data, bom)
	if !utf8.Valid(data) {
		return nil, ErrEncoding
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, errors.Wrap(ErrFormat, err.Error())
	}

	columns := make([]Field, len(header))
	for i, h := range header {
		if col, ok := schema.Column(normalize.HeaderKey(h)); ok {
			columns[i] = col
		}
	}

	var records []Record
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(ErrFormat, err.Error())
		}

		rec := Record{Row: row, Values: make(map[Field]string, len(fields))}
		for i, v := range fields {
			if i >= len(columns) || columns[i] == "" {
				continue
			}
			if v = strings.TrimSpace(v); v != "" {
				rec.Values[columns[i]] = v
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}
