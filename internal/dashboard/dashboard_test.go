package dashboard

import (
	"fmt"
	"testing"

	"refresh-tracker/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusBucket(t *testing.T) {
	cases := map[string]string{
		"REALIZADO":          BucketDone,
		" realizado ":        BucketDone,
		"En Proceso":         BucketInProgress,
		"REPROGRAMADO":       BucketInProgress,
		"INCIDENCIA UPGRADE": BucketInProgress,
		"user sin respuesta": BucketPending,
		"NO APLICA UPGRADE":  BucketPending,
		"":                   BucketOther,
		"CANCELADO":          BucketOther,
		"SIN ESTADO":         BucketOther,
	}
	for in, want := range cases {
		assert.Equal(t, want, StatusBucket(in), in)
	}
}

func TestPhaseFor(t *testing.T) {
	cases := map[string]string{
		"UPGRADE + WIN11":        "FASE_1",
		"upgrade":                "FASE_1",
		"REPOTENCIACIÓN + WIN11": "FASE_2",
		"Repotenciacion":         "FASE_2",
		"EQUIPO NUEVO":           "FASE_3",
		"reemplazo de laptop":    "FASE_3",
		"WIN11":                  "FASE_1",
	}
	for in, want := range cases {
		p, ok := PhaseFor(in)
		require.True(t, ok, in)
		assert.Equal(t, want, p.Key, in)
	}

	for _, in := range []string{"", "   ", "MANTENIMIENTO"} {
		_, ok := PhaseFor(in)
		assert.False(t, ok, in)
	}

	// порядок фаз детерминирован
	for i := 0; i < 20; i++ {
		p, _ := PhaseFor("UPGRADE + WIN11")
		assert.Equal(t, "FASE_1", p.Key)
	}
}

func TestPhaseCounts(t *testing.T) {
	records := []models.Equipment{
		{WorkCategory: "UPGRADE + WIN11"},
		{WorkCategory: "UPGRADE"},
		{WorkCategory: "REPOTENCIACION"},
		{WorkCategory: ""},
	}
	want := map[string]int{"FASE_1": 2, "FASE_2": 1}
	if diff := cmp.Diff(want, PhaseCounts(records)); diff != "" {
		t.Errorf("phase counts (-want +got):\n%s", diff)
	}
}

func TestSummarizeEquipment(t *testing.T) {
	records := []models.Equipment{
		{RecordID: "1", Status: "realizado", StatusDate: "2025-09-29", Brand: "HP"},
		{RecordID: "2", Status: "REALIZADO", StatusDate: "2025-09-29", Brand: "HP"},
		{RecordID: "3", Status: "PROGRAMADO", StatusDate: "2025-09-29", Brand: ""},
		{RecordID: "4", Status: "", StatusDate: "2025-09-30", Brand: "Dell"},
		{RecordID: "5", Status: "RARO"},
	}

	sum := SummarizeEquipment(records, false)
	assert.Equal(t, 5, sum.Total)

	wantStatus := map[string]int{"REALIZADO": 2, "PROGRAMADO": 1, NoStatus: 1, "RARO": 1}
	assert.Empty(t, cmp.Diff(wantStatus, sum.StatusCounts))

	wantBuckets := map[string]int{BucketDone: 2, BucketInProgress: 1, BucketOther: 2}
	assert.Empty(t, cmp.Diff(wantBuckets, sum.BucketCounts))

	wantSchedule := []ScheduleDay{
		{Date: "2025-09-29", Total: 3, Brands: map[string]int{"HP": 2}},
		{Date: "2025-09-30", Total: 1, Brands: map[string]int{"Dell": 1}},
	}
	if diff := cmp.Diff(wantSchedule, sum.Schedule); diff != "" {
		t.Errorf("schedule (-want +got):\n%s", diff)
	}
	assert.Len(t, sum.RecentUpdates, 5)
}

func TestSummarizeEquipment_RecentLimit(t *testing.T) {
	var records []models.Equipment
	for i := 0; i < 15; i++ {
		records = append(records, models.Equipment{RecordID: fmt.Sprint(i)})
	}
	assert.Len(t, SummarizeEquipment(records, false).RecentUpdates, RecentUpdateLimit)
	assert.Len(t, SummarizeEquipment(records, true).RecentUpdates, 15)
}

func intp(v int) *int { return &v }

func TestSummarizeComponents(t *testing.T) {
	sum := SummarizeComponents([]ComponentStock{
		{Status: models.ComponentInstalled, CapacityGB: 16},
		{Status: models.ComponentInstalled, CapacityGB: 8},
		{Status: models.ComponentToDeliver, CapacityGB: 32},
	})
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 56, sum.TotalGB)
	assert.Equal(t, StatusTotals{Count: 2, TotalGB: 24}, sum.ByStatus[models.ComponentInstalled])
	assert.Equal(t, StatusTotals{Count: 1, TotalGB: 32}, sum.ByStatus[models.ComponentToDeliver])
}

func TestSummarizeDestructions(t *testing.T) {
	sum := SummarizeDestructions([]models.DiskDestruction{
		{Status: models.DestructionPending},
		{Status: models.DestructionDestroyed, VideoPath: "/v/1.mp4"},
		{Status: models.DestructionCertified, VideoPath: "/v/2.mp4", CertificateNumber: "CERT-00002"},
	})
	assert.Equal(t, DestructionSummary{
		Total: 3,
		ByStatus: map[models.DestructionStatus]int{
			models.DestructionPending:   1,
			models.DestructionDestroyed: 1,
			models.DestructionCertified: 1,
		},
		Destroyed: 2,
		WithVideo: 2,
		Certified: 1,
	}, sum)
}

func TestSummarizeRepotentiations(t *testing.T) {
	items := []models.Repotentiation{
		{Date: "2025-01-15", RAMBeforeGB: intp(8), RAMAfterGB: intp(16), DiskAfterSerial: "SSD-1", ExtractedDiskDestroyed: true},
		{Date: "2025-01-20", RAMAfterGB: intp(8)},
		{Date: "2025-02-01", RAMBeforeGB: intp(8)},
	}
	for m := 1; m <= 12; m++ {
		items = append(items, models.Repotentiation{Date: fmt.Sprintf("2024-%02d-01", m)})
	}

	sum := SummarizeRepotentiations(items)
	assert.Equal(t, 15, sum.Total)
	assert.Equal(t, 16, sum.RAMAddedGB)
	assert.Equal(t, 1, sum.SSDInstalled)
	assert.Equal(t, 1, sum.DisksDestroyed)
	require.Len(t, sum.ByMonth, 12)
	assert.Equal(t, MonthCount{Month: "2025-02", Count: 1}, sum.ByMonth[0])
	assert.Equal(t, MonthCount{Month: "2025-01", Count: 2}, sum.ByMonth[1])
	assert.Equal(t, "2024-03", sum.ByMonth[11].Month)
}

func TestSummarizeConformity(t *testing.T) {
	sum := SummarizeConformity([]models.ConformityRecord{
		{EquipmentSerial: "PC-1", FileType: "PDF"},
		{EquipmentSerial: "PC-1", FileType: "MSG"},
		{EquipmentSerial: "PC-2", FileType: "PDF"},
	})
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 2, sum.EquipmentCount)
	assert.Equal(t, map[string]int{"PDF": 2, "MSG": 1}, sum.ByType)
}
