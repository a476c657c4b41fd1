package ingest_test

import (
	"context"
	"strings"
	"testing"

	"refresh-tracker/internal/ingest"
	"refresh-tracker/internal/models"
	"refresh-tracker/internal/normalize"
	"refresh-tracker/internal/testutil"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newImporter(t *testing.T) (*ingest.Importer, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return ingest.NewImporter(db, normalize.NewDateNormalizer(false), testutil.Logger()), db
}

func importCSV(t *testing.T, im *ingest.Importer, entity ingest.Entity, body string) *ingest.Result {
	t.Helper()
	res, err := im.Import(context.Background(), entity, "upload.csv", strings.NewReader(body), "admin")
	require.NoError(t, err)
	return res
}

const equipmentCSV = "ID,Ubicación,Categoría,Nombre,Marca,Serial,Fecha Estado,Estado,Estado Coordinación\n" +
	"001,LIMA,UPGRADE + WIN11,Ana,HP,5CD1,29/09/2025,realizado,programado\n" +
	"002,LIMA,REPOTENCIACION,Luis,Dell,5CD2,2025-09-30 10:00,en proceso,\n"

func TestImportEquipment_Idempotent(t *testing.T) {
	im, db := newImporter(t)

	first := importCSV(t, im, ingest.EntityEquipment, equipmentCSV)
	assert.Equal(t, 2, first.Inserted)
	assert.Equal(t, 0, first.Updated)
	assert.Equal(t, 2, first.Total)
	assert.Empty(t, first.Errors)

	second := importCSV(t, im, ingest.EntityEquipment, equipmentCSV)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 2, second.Updated)

	var records []models.Equipment
	require.NoError(t, db.Order("record_id").Find(&records).Error)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-09-29", records[0].StatusDate)
	assert.Equal(t, "REALIZADO", records[0].Status)
	assert.Equal(t, "PROGRAMADO", records[0].CoordinationStatus)
	assert.Equal(t, "UPGRADE + WIN11", records[0].WorkCategory)
	assert.Equal(t, "2025-09-30", records[1].StatusDate)
	assert.Equal(t, "EN PROCESO", records[1].Status)
	assert.False(t, records[1].LastUpdated.IsZero())
}

func TestImportEquipment_MissingRecordID(t *testing.T) {
	im, _ := newImporter(t)
	res := importCSV(t, im, ingest.EntityEquipment, "id,estado\n,REALIZADO\n003,PENDIENTE\n")
	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, []string{"Fila 2: ID de registro requerido"}, res.Messages())
}

func TestImportRAM_ValidationAndPartialSuccess(t *testing.T) {
	im, db := newImporter(t)

	body := "serial,marca,capacidad,velocidad,estado\n" +
		"R1,Kingston,16,3200,por asignar\n" +
		",Crucial,8,,\n" +
		"R3,Crucial,-5,,\n" +
		"R4,Crucial,abc,,\n" +
		"R5,Samsung,8,fast,desconocido\n"
	res := importCSV(t, im, ingest.EntityRAM, body)

	assert.Equal(t, 2, res.Inserted)
	assert.Equal(t, []string{
		"Fila 3: Serial requerido",
		"Fila 4: Capacidad invalida",
		"Fila 5: Capacidad debe ser numero",
	}, res.Messages())

	var r1, r5 models.RAMUnit
	require.NoError(t, db.Where("serial_num = ?", "R1").First(&r1).Error)
	require.NoError(t, db.Where("serial_num = ?", "R5").First(&r5).Error)
	assert.Equal(t, models.ComponentToAssign, r1.Status)
	require.NotNil(t, r1.SpeedMHz)
	assert.Equal(t, 3200, *r1.SpeedMHz)
	assert.Equal(t, models.ComponentToDeliver, r5.Status)
	assert.Nil(t, r5.SpeedMHz)
}

func TestImportSSD_UpdateKeepsInstallationLink(t *testing.T) {
	im, db := newImporter(t)
	importCSV(t, im, ingest.EntitySSD, "serial,modelo,gb\nS1,870 EVO,500\n")

	serial := "PC-1"
	require.NoError(t, db.Model(&models.SSDUnit{}).Where("serial_num = ?", "S1").
		Update("equipo_serial", serial).Error)

	res := importCSV(t, im, ingest.EntitySSD, "serial,modelo,gb,estado\nS1,980 PRO,1000,instalado\n")
	assert.Equal(t, 1, res.Updated)

	var unit models.SSDUnit
	require.NoError(t, db.Where("serial_num = ?", "S1").First(&unit).Error)
	assert.Equal(t, "980 PRO", unit.Model)
	assert.Equal(t, 1000, unit.CapacityGB)
	assert.Equal(t, models.ComponentInstalled, unit.Status)
	require.NotNil(t, unit.EquipmentSerial)
	assert.Equal(t, serial, *unit.EquipmentSerial)
}

func TestImportRepotentiation_AlwaysInserts(t *testing.T) {
	im, db := newImporter(t)
	body := "serial_equipo,fecha,ram_antes_gb,ram_despues_gb,disco_extraido_destruido\n" +
		"PC-1,15/01/2025,8,16,SI\n" +
		"PC-1,,8,16,\n" +
		",2025-01-15,,,\n" +
		"PC-2,2025-02-01,x,16,no\n"

	res := importCSV(t, im, ingest.EntityRepotentiation, body)
	assert.Equal(t, 2, res.Inserted)
	assert.Equal(t, []string{
		"Fila 3: Fecha de repotenciacion requerida",
		"Fila 4: Serial de equipo requerido",
	}, res.Messages())

	again := importCSV(t, im, ingest.EntityRepotentiation, body)
	assert.Equal(t, 2, again.Inserted)
	assert.Equal(t, 0, again.Updated)

	var rows []models.Repotentiation
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 4)
	assert.Equal(t, "2025-01-15", rows[0].Date)
	assert.True(t, rows[0].ExtractedDiskDestroyed)
	assert.Nil(t, rows[1].RAMBeforeGB)
	assert.False(t, rows[1].ExtractedDiskDestroyed)
}

func TestImportDestruction_KeepsVideo(t *testing.T) {
	im, db := newImporter(t)
	importCSV(t, im, ingest.EntityDestruction, "serial,marca,estado\nD1,Seagate,pendiente\n")

	require.NoError(t, db.Model(&models.DiskDestruction{}).Where("disco_serial = ?", "D1").
		Updates(map[string]interface{}{"video_nombre": "d1.mp4", "video_ruta": "/tmp/d1.mp4"}).Error)

	res := importCSV(t, im, ingest.EntityDestruction,
		"serial,estado,fecha_destruccion,capacidad\nD1,destruido,2025-03-01,abc\n")
	assert.Equal(t, 1, res.Updated)
	assert.Empty(t, res.Errors)

	var d models.DiskDestruction
	require.NoError(t, db.Where("disco_serial = ?", "D1").First(&d).Error)
	assert.Equal(t, models.DestructionDestroyed, d.Status)
	assert.Equal(t, "2025-03-01", d.DestructionDate)
	assert.Equal(t, "d1.mp4", d.VideoName)
	assert.Nil(t, d.DiskGB)
}

func TestImportDestruction_CertifiedRowGetsDefaultCertificate(t *testing.T) {
	im, db := newImporter(t)
	body := "serial,estado,certificado,certificado_fecha\n" +
		"D1,pendiente,,\n" +
		"D2,certificado,,\n" +
		"D3,certificado,C-77,2025-01-02\n"

	res := importCSV(t, im, ingest.EntityDestruction, body)
	assert.Equal(t, 3, res.Inserted)
	assert.Empty(t, res.Errors)

	var rows []models.DiskDestruction
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 3)
	assert.Empty(t, rows[0].CertificateNumber)
	assert.Empty(t, rows[0].CertificateDate)
	assert.Equal(t, models.CertificateNumberFor(rows[1].ID), rows[1].CertificateNumber)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, rows[1].CertificateDate)
	assert.Equal(t, "C-77", rows[2].CertificateNumber)
	assert.Equal(t, "2025-01-02", rows[2].CertificateDate)

	again := importCSV(t, im, ingest.EntityDestruction, body)
	assert.Equal(t, 3, again.Updated)
	var d2 models.DiskDestruction
	require.NoError(t, db.Where("disco_serial = ?", "D2").First(&d2).Error)
	assert.Equal(t, rows[1].CertificateNumber, d2.CertificateNumber)
}

func TestImport_SecondPassOnlyUpdates(t *testing.T) {
	cases := []struct {
		entity ingest.Entity
		body   string
		rows   int
	}{
		{
			entity: ingest.EntityRAM,
			body:   "serial,marca,capacidad,velocidad\nR1,Kingston,16,3200\nR2,Crucial,8,\nR3,Samsung,32,2666\n",
			rows:   3,
		},
		{
			entity: ingest.EntitySSD,
			body:   "serial,modelo,gb,estado\nS1,870 EVO,500,por asignar\nS2,A400,480,\n",
			rows:   2,
		},
		{
			entity: ingest.EntityDestruction,
			body:   "serial,marca,estado\nD1,Seagate,pendiente\nD2,WD,destruido\nD3,Toshiba,certificado\n",
			rows:   3,
		},
	}
	for _, tc := range cases {
		t.Run(string(tc.entity), func(t *testing.T) {
			im, _ := newImporter(t)

			first := importCSV(t, im, tc.entity, tc.body)
			assert.Equal(t, tc.rows, first.Inserted)
			assert.Equal(t, 0, first.Updated)
			assert.Empty(t, first.Errors)

			second := importCSV(t, im, tc.entity, tc.body)
			assert.Equal(t, 0, second.Inserted)
			assert.Equal(t, tc.rows, second.Updated)
			assert.Equal(t, tc.rows, second.Total)
		})
	}
}

func TestImport_FormatErrorsWriteNothing(t *testing.T) {
	im, db := newImporter(t)

	_, err := im.Import(context.Background(), ingest.EntityRAM, "ram.txt", strings.NewReader("serial,gb\nR1,8\n"), "admin")
	assert.True(t, errors.Is(err, ingest.ErrFormat))

	_, err = im.Import(context.Background(), ingest.EntityRAM, "ram.csv", strings.NewReader("serial,gb\nR\xff,8\n"), "admin")
	assert.True(t, errors.Is(err, ingest.ErrEncoding))

	var count int64
	require.NoError(t, db.Model(&models.RAMUnit{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestImport_CancelledContextRollsBack(t *testing.T) {
	im, db := newImporter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := im.Import(ctx, ingest.EntityRAM, "ram.csv", strings.NewReader("serial,gb\nR1,8\nR2,8\n"), "admin")
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.RAMUnit{}).Count(&count).Error)
	assert.Zero(t, count)
}
