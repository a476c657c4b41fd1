package ingest

import (
	"strconv"
	"strings"

	"refresh-tracker/internal/models"
)

const (
	msgCapacityInvalid = "Capacidad invalida"
	msgCapacityNumeric = "Capacidad debe ser numero"
)

func enumKey(v string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(v)), " ", "_")
}

// componentStatus: неизвестное или пустое значение → POR_ENTREGAR.
func componentStatus(v string) models.ComponentStatus {
	s := models.ComponentStatus(enumKey(v))
	if !s.Valid() {
		return models.ComponentToDeliver
	}
	return s
}

func destructionStatus(v string) models.DestructionStatus {
	s := models.DestructionStatus(enumKey(v))
	if !s.Valid() {
		return models.DestructionPending
	}
	return s
}

// capacity — обязательная ёмкость компонента в ГБ; msg != "" означает отказ.
func capacity(v string) (gb int, msg string) {
	if v == "" {
		return 0, msgCapacityInvalid
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, msgCapacityNumeric
	}
	if n <= 0 {
		return 0, msgCapacityInvalid
	}
	return n, ""
}

// optionalInt: пусто или не число → nil.
func optionalInt(v string) *int {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func truthy(v string) bool {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "1", "SI", "SÍ", "YES", "TRUE":
		return true
	}
	return false
}
