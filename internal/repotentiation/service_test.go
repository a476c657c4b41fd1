package repotentiation

import (
	"context"
	"testing"

	"refresh-tracker/internal/normalize"
	"refresh-tracker/internal/testutil"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(testutil.NewDB(t), normalize.NewDateNormalizer(false), testutil.Logger())
}

func TestCreateUpdateDelete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{Date: "2025-01-15"}, "admin")
	assert.True(t, errors.Is(err, ErrEquipmentRequired))
	_, err = svc.Create(ctx, Input{EquipmentSerial: "PC-1"}, "admin")
	assert.True(t, errors.Is(err, ErrDateRequired))

	rec, err := svc.Create(ctx, Input{
		EquipmentSerial: " PC-1 ",
		Date:            "15/01/2025",
		RAMBeforeGB:     8,
		RAMAfterGB:      16,
		DiskAfterSerial: "SSD-NEW",
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "PC-1", rec.EquipmentSerial)
	assert.Equal(t, "2025-01-15", rec.Date)
	assert.Equal(t, "admin", rec.Technician)
	assert.Nil(t, rec.DiskBeforeGB)

	updated, err := svc.Update(ctx, rec.ID, Input{EquipmentSerial: "OTHER", Date: "2025-01-16", Technician: "Juan"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "PC-1", updated.EquipmentSerial)
	assert.Equal(t, "2025-01-16", updated.Date)
	assert.Equal(t, "Juan", updated.Technician)
	assert.Nil(t, updated.RAMAfterGB)

	require.NoError(t, svc.Delete(ctx, rec.ID, "admin"))
	assert.True(t, errors.Is(svc.Delete(ctx, rec.ID, "admin"), ErrNotFound))
	_, err = svc.Get(ctx, rec.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListSearchSummary(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	inputs := []Input{
		{EquipmentSerial: "PC-1", Date: "2025-01-15", RAMBeforeGB: 8, RAMAfterGB: 16, RAMAfterSerial: "RAM-NEW-1", ExtractedDiskDestroyed: true},
		{EquipmentSerial: "PC-2", Date: "2025-02-01", RAMAfterGB: 8, DiskAfterSerial: "SSD-9"},
		{EquipmentSerial: "PC-1", Date: "2025-03-01"},
	}
	for _, in := range inputs {
		_, err := svc.Create(ctx, in, "admin")
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, "PC-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2025-03-01", list[0].Date)

	found, err := svc.Search(ctx, "ram-new")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "PC-1", found[0].EquipmentSerial)

	found, err = svc.Search(ctx, "SSD-9")
	require.NoError(t, err)
	require.Len(t, found, 1)

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 16, sum.RAMAddedGB)
	assert.Equal(t, 1, sum.SSDInstalled)
	assert.Equal(t, 1, sum.DisksDestroyed)
	assert.Len(t, sum.ByMonth, 3)
}
