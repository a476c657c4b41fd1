package dashboard

import "strings"

const (
	BucketDone       = "Completado"
	BucketInProgress = "En progreso"
	BucketPending    = "Pendiente"
	BucketOther      = "Otro"
)

var (
	doneStatuses = map[string]struct{}{
		"REALIZADO": {},
	}
	inProgressStatuses = map[string]struct{}{
		"EN PROCESO":         {},
		"PROGRAMADO":         {},
		"REPROGRAMADO":       {},
		"INCIDENCIA UPGRADE": {},
	}
	pendingStatuses = map[string]struct{}{
		"PENDIENTE":          {},
		"USER SIN RESPUESTA": {},
		"USER NO ASISTIO":    {},
		"NO APLICA UPGRADE":  {},
	}
)

// StatusBucket сводит свободный статус оборудования к одной из четырёх групп.
// Пустой и неизвестный статус: Otro.
func StatusBucket(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if _, ok := doneStatuses[s]; ok {
		return BucketDone
	}
	if _, ok := inProgressStatuses[s]; ok {
		return BucketInProgress
	}
	if _, ok := pendingStatuses[s]; ok {
		return BucketPending
	}
	return BucketOther
}
