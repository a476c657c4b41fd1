package ingest

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrFormat    = errors.New("file is not a valid csv")
	ErrEncoding  = errors.New("file is not valid utf-8")
	ErrNoRecords = errors.New("file has no data rows")

	ErrUnknownEntity = errors.New("unknown upload entity")
)

// RowError — отклонённая строка файла. Row считается с 1 по заголовку,
// первая строка данных: 2.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) String() string {
	return fmt.Sprintf("Fila %d: %s", e.Row, e.Message)
}

type Result struct {
	Entity   Entity     `json:"entity"`
	Inserted int        `json:"inserted"`
	Updated  int        `json:"updated"`
	Total    int        `json:"total"`
	Errors   []RowError `json:"errors"`
}

// Messages возвращает ошибки строк в виде "Fila n: ...".
func (r *Result) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.String())
	}
	return out
}

func (r *Result) reject(row int, msg string) {
	r.Errors = append(r.Errors, RowError{Row: row, Message: msg})
}
