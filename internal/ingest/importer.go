package ingest

import (
	"context"
	"io"
	"time"

	"refresh-tracker/internal/database"
	"refresh-tracker/internal/metrics"
	"refresh-tracker/internal/models"
	"refresh-tracker/internal/normalize"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	equipmentUpsert = database.UpsertSpec[models.Equipment]{
		KeyColumn: "record_id",
		Key:       func(e *models.Equipment) string { return e.RecordID },
		UpdateColumns: []string{
			"ubicacion", "nom_sede", "categoria_trab", "nombre_completo",
			"perfil_imagen", "marca", "modelo", "serial_num", "hostname",
			"ip_equipo", "email_trabajo", "fecha_estado", "estado",
			"estado_coordinacion", "estado_upgrade", "fecha_programada",
			"fecha_ejecucion", "notas", "last_updated",
		},
	}

	// связь с оборудованием и дата установки меняются только через lifecycle
	ramUpsert = database.UpsertSpec[models.RAMUnit]{
		KeyColumn:     "serial_num",
		Key:           func(u *models.RAMUnit) string { return u.Serial },
		UpdateColumns: []string{"marca", "capacidad_gb", "tipo", "velocidad_mhz", "estado", "notas"},
	}

	ssdUpsert = database.UpsertSpec[models.SSDUnit]{
		KeyColumn:     "serial_num",
		Key:           func(u *models.SSDUnit) string { return u.Serial },
		UpdateColumns: []string{"marca", "modelo", "capacidad_gb", "tipo", "estado", "notas"},
	}

	// видео-доказательство через CSV не приходит и не затирается
	destructionUpsert = database.UpsertSpec[models.DiskDestruction]{
		KeyColumn: "disco_serial",
		Key:       func(d *models.DiskDestruction) string { return d.DiskSerial },
		UpdateColumns: []string{
			"disco_marca", "disco_modelo", "disco_capacidad_gb", "disco_tipo",
			"equipo_origen_serial", "equipo_origen_hostname", "estado",
			"fecha_extraccion", "fecha_destruccion", "metodo_destruccion",
			"certificado_numero", "certificado_fecha", "responsable", "notas",
		},
	}
)

type Importer struct {
	db     *gorm.DB
	log    *logrus.Logger
	parser rowParser
}

func NewImporter(db *gorm.DB, dates normalize.DateNormalizer, log *logrus.Logger) *Importer {
	return &Importer{
		db:     db,
		log:    log,
		parser: rowParser{dates: dates, now: time.Now},
	}
}

// Import читает CSV сущности и записывает валидные строки одной транзакцией.
// Ошибки формата возвращаются как error до обработки строк; ошибки строк
// попадают в Result.Errors.
func (im *Importer) Import(ctx context.Context, entity Entity, filename string, r io.Reader, actor string) (*Result, error) {
	res, err := im.importFile(ctx, entity, filename, r)
	metrics.IngestFile(string(entity), err)
	if err != nil {
		im.log.WithError(err).WithFields(logrus.Fields{
			"entity": entity,
			"file":   filename,
			"actor":  actor,
		}).Warn("bulk upload rejected")
		return nil, err
	}

	metrics.IngestRows(string(entity), res.Inserted, res.Updated, len(res.Errors))
	im.log.WithFields(logrus.Fields{
		"entity":   entity,
		"file":     filename,
		"actor":    actor,
		"inserted": res.Inserted,
		"updated":  res.Updated,
		"errors":   len(res.Errors),
	}).Info("bulk upload processed")
	return res, nil
}

func (im *Importer) importFile(ctx context.Context, entity Entity, filename string, r io.Reader) (*Result, error) {
	schema, ok := SchemaFor(entity)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEntity, "%q", entity)
	}
	records, err := Read(filename, r, schema)
	if err != nil {
		return nil, err
	}

	res := &Result{Entity: entity, Errors: []RowError{}}
	var write func(tx *gorm.DB) (database.UpsertCounts, error)

	switch entity {
	case EntityEquipment:
		rows := collect(records, res, im.parser.equipment, func(r *EquipmentRow) *models.Equipment { return &r.Equipment })
		write = func(tx *gorm.DB) (database.UpsertCounts, error) { return database.Upsert(tx, equipmentUpsert, rows) }
	case EntityRAM:
		rows := collect(records, res, im.parser.ram, func(r *RAMRow) *models.RAMUnit { return &r.RAMUnit })
		write = func(tx *gorm.DB) (database.UpsertCounts, error) { return database.Upsert(tx, ramUpsert, rows) }
	case EntitySSD:
		rows := collect(records, res, im.parser.ssd, func(r *SSDRow) *models.SSDUnit { return &r.SSDUnit })
		write = func(tx *gorm.DB) (database.UpsertCounts, error) { return database.Upsert(tx, ssdUpsert, rows) }
	case EntityDestruction:
		rows := collect(records, res, im.parser.destruction, func(r *DestructionRow) *models.DiskDestruction { return &r.DiskDestruction })
		write = func(tx *gorm.DB) (database.UpsertCounts, error) {
			counts, err := database.Upsert(tx, destructionUpsert, rows)
			if err != nil {
				return counts, err
			}
			return counts, completeCertificates(tx, im.parser.now().Format("2006-01-02"))
		}
	case EntityRepotentiation:
		rows := collect(records, res, im.parser.repotentiation, func(r *RepotentiationRow) *models.Repotentiation { return &r.Repotentiation })
		write = func(tx *gorm.DB) (database.UpsertCounts, error) {
			// натурального ключа нет: каждая строка: новое событие
			if len(rows) == 0 {
				return database.UpsertCounts{}, nil
			}
			if err := tx.Create(rows).Error; err != nil {
				return database.UpsertCounts{}, errors.Wrap(err, "insert repotentiation rows")
			}
			return database.UpsertCounts{Inserted: len(rows)}, nil
		}
	}

	var counts database.UpsertCounts
	err = im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		counts, err = write(tx)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "import %s", entity)
	}

	res.Inserted = counts.Inserted
	res.Updated = counts.Updated
	res.Total = counts.Inserted + counts.Updated
	return res, nil
}

// collect разбирает все записи; отклонённые уходят в res.Errors.
func collect[R any, M any](records []Record, res *Result, parse func(Record) (R, string), model func(*R) *M) []*M {
	out := make([]*M, 0, len(records))
	for _, rec := range records {
		row, msg := parse(rec)
		if msg != "" {
			res.reject(rec.Row, msg)
			continue
		}
		out = append(out, model(&row))
	}
	return out
}

// completeCertificates дописывает номер и дату сертификата записям
// CERTIFICADO, пришедшим без них; номер зависит от id, известного только
// после записи.
func completeCertificates(tx *gorm.DB, today string) error {
	var pending []models.DiskDestruction
	err := tx.Where("estado = ? AND (certificado_numero IS NULL OR certificado_numero = '' OR certificado_fecha IS NULL OR certificado_fecha = '')",
		models.DestructionCertified).Find(&pending).Error
	if err != nil {
		return errors.Wrap(err, "load uncertified destructions")
	}
	for i := range pending {
		d := &pending[i]
		if !d.CompleteCertificate(today) {
			continue
		}
		err := tx.Model(d).Updates(map[string]any{
			"certificado_numero": d.CertificateNumber,
			"certificado_fecha":  d.CertificateDate,
		}).Error
		if err != nil {
			return errors.Wrapf(err, "complete certificate for %s", d.DiskSerial)
		}
	}
	return nil
}
