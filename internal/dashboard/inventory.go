package dashboard

import (
	"sort"
	"strings"

	"refresh-tracker/internal/models"
)

// ComponentStock — минимум полей RAM/SSD для сводки.
type ComponentStock struct {
	Status     models.ComponentStatus `gorm:"column:estado"`
	CapacityGB int                    `gorm:"column:capacidad_gb"`
}

type StatusTotals struct {
	Count   int `json:"count"`
	TotalGB int `json:"total_gb"`
}

type ComponentSummary struct {
	ByStatus map[models.ComponentStatus]StatusTotals `json:"por_estado"`
	Total    int                                     `json:"total"`
	TotalGB  int                                     `json:"total_gb"`
}

func SummarizeComponents(stock []ComponentStock) ComponentSummary {
	sum := ComponentSummary{ByStatus: make(map[models.ComponentStatus]StatusTotals)}
	for _, s := range stock {
		t := sum.ByStatus[s.Status]
		t.Count++
		t.TotalGB += s.CapacityGB
		sum.ByStatus[s.Status] = t
		sum.Total++
		sum.TotalGB += s.CapacityGB
	}
	return sum
}

type DestructionSummary struct {
	Total     int                              `json:"total"`
	ByStatus  map[models.DestructionStatus]int `json:"por_estado"`
	Destroyed int                              `json:"destruidos"`
	WithVideo int                              `json:"con_video"`
	Certified int                              `json:"certificados"`
}

func SummarizeDestructions(items []models.DiskDestruction) DestructionSummary {
	sum := DestructionSummary{Total: len(items), ByStatus: make(map[models.DestructionStatus]int)}
	for _, d := range items {
		sum.ByStatus[d.Status]++
		switch d.Status {
		case models.DestructionDestroyed:
			sum.Destroyed++
		case models.DestructionCertified:
			sum.Destroyed++
			sum.Certified++
		}
		if d.VideoPath != "" {
			sum.WithVideo++
		}
	}
	return sum
}

const monthsShown = 12

type MonthCount struct {
	Month string `json:"mes"`
	Count int    `json:"count"`
}

type RepotentiationSummary struct {
	Total          int          `json:"total"`
	RAMAddedGB     int          `json:"ram_agregada_gb"`
	SSDInstalled   int          `json:"ssd_instalados"`
	DisksDestroyed int          `json:"discos_destruidos"`
	ByMonth        []MonthCount `json:"por_mes"`
}

// SummarizeRepotentiations: прирост RAM = после − до (до пустое = 0);
// по месяцам: последние 12 месяцев с событиями, новые первыми.
func SummarizeRepotentiations(items []models.Repotentiation) RepotentiationSummary {
	sum := RepotentiationSummary{Total: len(items), ByMonth: []MonthCount{}}
	months := make(map[string]int)
	for _, r := range items {
		if r.RAMAfterGB != nil {
			before := 0
			if r.RAMBeforeGB != nil {
				before = *r.RAMBeforeGB
			}
			sum.RAMAddedGB += *r.RAMAfterGB - before
		}
		if strings.TrimSpace(r.DiskAfterSerial) != "" {
			sum.SSDInstalled++
		}
		if r.ExtractedDiskDestroyed {
			sum.DisksDestroyed++
		}
		if month := monthOf(r.Date); month != "" {
			months[month]++
		}
	}

	for m, c := range months {
		sum.ByMonth = append(sum.ByMonth, MonthCount{Month: m, Count: c})
	}
	sort.Slice(sum.ByMonth, func(i, j int) bool { return sum.ByMonth[i].Month > sum.ByMonth[j].Month })
	if len(sum.ByMonth) > monthsShown {
		sum.ByMonth = sum.ByMonth[:monthsShown]
	}
	return sum
}

// monthOf: "2025-01-15" → "2025-01"; не-ISO даты не группируются.
func monthOf(date string) string {
	if len(date) < 7 || date[4] != '-' {
		return ""
	}
	return date[:7]
}

type ConformitySummary struct {
	Total          int            `json:"total"`
	ByType         map[string]int `json:"por_tipo"`
	EquipmentCount int            `json:"equipos_con_acta"`
}

func SummarizeConformity(items []models.ConformityRecord) ConformitySummary {
	sum := ConformitySummary{Total: len(items), ByType: make(map[string]int)}
	seen := make(map[string]struct{})
	for _, c := range items {
		sum.ByType[c.FileType]++
		seen[c.EquipmentSerial] = struct{}{}
	}
	sum.EquipmentCount = len(seen)
	return sum
}
