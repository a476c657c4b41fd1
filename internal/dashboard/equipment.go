package dashboard

import (
	"sort"
	"strings"

	"refresh-tracker/internal/models"
)

const (
	NoStatus          = "SIN ESTADO"
	RecentUpdateLimit = 10
)

type ScheduleDay struct {
	Date   string         `json:"fecha"`
	Total  int            `json:"total"`
	Brands map[string]int `json:"marcas"`
}

type EquipmentSummary struct {
	Total         int                `json:"total"`
	StatusCounts  map[string]int     `json:"status_counts"`
	BucketCounts  map[string]int     `json:"status_buckets"`
	Schedule      []ScheduleDay      `json:"schedule"`
	RecentUpdates []models.Equipment `json:"recent_updates"`
}

// SummarizeEquipment считает сводку по уже отобранным записям. records
// ожидаются в порядке last_updated desc; без fullRecent в RecentUpdates
// попадают только первые RecentUpdateLimit.
func SummarizeEquipment(records []models.Equipment, fullRecent bool) EquipmentSummary {
	sum := EquipmentSummary{
		Total:        len(records),
		StatusCounts: make(map[string]int),
		BucketCounts: make(map[string]int),
		Schedule:     []ScheduleDay{},
	}

	days := make(map[string]*ScheduleDay)
	for _, r := range records {
		status := strings.ToUpper(strings.TrimSpace(r.Status))
		if status == "" {
			status = NoStatus
		}
		sum.StatusCounts[status]++
		sum.BucketCounts[StatusBucket(r.Status)]++

		if r.StatusDate == "" {
			continue
		}
		day, ok := days[r.StatusDate]
		if !ok {
			day = &ScheduleDay{Date: r.StatusDate, Brands: make(map[string]int)}
			days[r.StatusDate] = day
		}
		day.Total++
		if brand := strings.TrimSpace(r.Brand); brand != "" {
			day.Brands[brand]++
		}
	}

	for _, d := range days {
		sum.Schedule = append(sum.Schedule, *d)
	}
	sort.Slice(sum.Schedule, func(i, j int) bool { return sum.Schedule[i].Date < sum.Schedule[j].Date })

	recent := records
	if !fullRecent && len(recent) > RecentUpdateLimit {
		recent = recent[:RecentUpdateLimit]
	}
	sum.RecentUpdates = append([]models.Equipment{}, recent...)
	return sum
}
