package dashboard

import (
	"strings"

	"refresh-tracker/internal/models"
)

type Phase struct {
	Key         string   `json:"key"`
	Name        string   `json:"nombre"`
	Description string   `json:"descripcion"`
	Categories  []string `json:"categorias"`
	Color       string   `json:"color"`
}

// Phases — порядок важен: категория относится к первой совпавшей фазе.
var Phases = []Phase{
	{
		Key:         "FASE_1",
		Name:        "Fase 1 - Upgrade SO",
		Description: "Solo Upgrade de Sistema Operativo (Windows 10 a Windows 11)",
		Categories:  []string{"UPGRADE + WIN11", "UPGRADE"},
		Color:       "#0d6efd",
	},
	{
		Key:         "FASE_2",
		Name:        "Fase 2 - Repotenciación",
		Description: "Cambio de Disco Mecánico a Sólido, y cambio/aumento de RAM",
		Categories:  []string{"REPOTENCIACIÓN + WIN11", "REPOTENCIACION + WIN11", "REPOTENCIACION"},
		Color:       "#198754",
	},
	{
		Key:         "FASE_3",
		Name:        "Fase 3 - Equipo nuevo",
		Description: "Reemplazo de equipo antiguo a equipo nuevo",
		Categories:  []string{"EQUIPO NUEVO", "REEMPLAZO"},
		Color:       "#6f42c1",
	},
}

func PhaseByKey(key string) (Phase, bool) {
	for _, p := range Phases {
		if p.Key == key {
			return p, true
		}
	}
	return Phase{}, false
}

// PhaseFor находит фазу по категории работ: совпадение подстрокой в любую
// сторону без учёта регистра. Пустая категория фазы не имеет.
func PhaseFor(category string) (Phase, bool) {
	c := strings.ToUpper(strings.TrimSpace(category))
	if c == "" {
		return Phase{}, false
	}
	for _, p := range Phases {
		for _, cat := range p.Categories {
			cat = strings.ToUpper(cat)
			if strings.Contains(c, cat) || strings.Contains(cat, c) {
				return p, true
			}
		}
	}
	return Phase{}, false
}

// PhaseCounts считает записи по ключу фазы, пропуская записи без фазы.
func PhaseCounts(records []models.Equipment) map[string]int {
	out := make(map[string]int)
	for _, r := range records {
		if p, ok := PhaseFor(r.WorkCategory); ok {
			out[p.Key]++
		}
	}
	return out
}
