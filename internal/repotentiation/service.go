// Package repotentiation — журнал замен RAM/дисков на оборудовании.
package repotentiation

import (
	"context"
	"strings"

	"refresh-tracker/internal/dashboard"
	"refresh-tracker/internal/models"
	"refresh-tracker/internal/normalize"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("repotentiation record not found")
	ErrEquipmentRequired = errors.New("equipment serial is required")
	ErrDateRequired      = errors.New("repotentiation date is required")
)

type Input struct {
	EquipmentSerial string `form:"equipo_serial" json:"equipo_serial"`
	EquipmentHost   string `form:"equipo_hostname" json:"equipo_hostname"`
	Date            string `form:"fecha_repotenciacion" json:"fecha_repotenciacion"`

	RAMBeforeGB     int    `form:"ram_antes_gb" json:"ram_antes_gb"`
	RAMBeforeType   string `form:"ram_antes_tipo" json:"ram_antes_tipo"`
	RAMBeforeSerial string `form:"ram_antes_serial" json:"ram_antes_serial"`
	RAMAfterGB      int    `form:"ram_despues_gb" json:"ram_despues_gb"`
	RAMAfterType    string `form:"ram_despues_tipo" json:"ram_despues_tipo"`
	RAMAfterSerial  string `form:"ram_despues_serial" json:"ram_despues_serial"`

	DiskBeforeType   string `form:"disco_antes_tipo" json:"disco_antes_tipo"`
	DiskBeforeGB     int    `form:"disco_antes_capacidad_gb" json:"disco_antes_capacidad_gb"`
	DiskBeforeSerial string `form:"disco_antes_serial" json:"disco_antes_serial"`
	DiskAfterType    string `form:"disco_despues_tipo" json:"disco_despues_tipo"`
	DiskAfterGB      int    `form:"disco_despues_capacidad_gb" json:"disco_despues_capacidad_gb"`
	DiskAfterSerial  string `form:"disco_despues_serial" json:"disco_despues_serial"`

	ExtractedRAMSerial     string `form:"ram_extraida_serial" json:"ram_extraida_serial"`
	ExtractedRAMState      string `form:"ram_extraida_estado" json:"ram_extraida_estado"`
	ExtractedDiskSerial    string `form:"disco_extraido_serial" json:"disco_extraido_serial"`
	ExtractedDiskState     string `form:"disco_extraido_estado" json:"disco_extraido_estado"`
	ExtractedDiskDestroyed bool   `form:"disco_extraido_destruido" json:"disco_extraido_destruido"`

	Technician string `form:"tecnico" json:"tecnico"`
	Notes      string `form:"notas" json:"notas"`
}

func gb(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

func (in Input) apply(r *models.Repotentiation, dates normalize.DateNormalizer) {
	t := strings.TrimSpace
	r.EquipmentHost = t(in.EquipmentHost)
	r.Date = dates.Normalize(in.Date)
	r.RAMBeforeGB = gb(in.RAMBeforeGB)
	r.RAMBeforeType = t(in.RAMBeforeType)
	r.RAMBeforeSerial = t(in.RAMBeforeSerial)
	r.RAMAfterGB = gb(in.RAMAfterGB)
	r.RAMAfterType = t(in.RAMAfterType)
	r.RAMAfterSerial = t(in.RAMAfterSerial)
	r.DiskBeforeType = t(in.DiskBeforeType)
	r.DiskBeforeGB = gb(in.DiskBeforeGB)
	r.DiskBeforeSerial = t(in.DiskBeforeSerial)
	r.DiskAfterType = t(in.DiskAfterType)
	r.DiskAfterGB = gb(in.DiskAfterGB)
	r.DiskAfterSerial = t(in.DiskAfterSerial)
	r.ExtractedRAMSerial = t(in.ExtractedRAMSerial)
	r.ExtractedRAMState = t(in.ExtractedRAMState)
	r.ExtractedDiskSerial = t(in.ExtractedDiskSerial)
	r.ExtractedDiskState = t(in.ExtractedDiskState)
	r.ExtractedDiskDestroyed = in.ExtractedDiskDestroyed
	r.Technician = t(in.Technician)
	r.Notes = t(in.Notes)
}

type Service struct {
	db    *gorm.DB
	dates normalize.DateNormalizer
	log   *logrus.Logger
}

func NewService(db *gorm.DB, dates normalize.DateNormalizer, log *logrus.Logger) *Service {
	return &Service{db: db, dates: dates, log: log}
}

// Create регистрирует событие; без техника записывается actor.
func (s *Service) Create(ctx context.Context, in Input, actor string) (*models.Repotentiation, error) {
	serial := strings.TrimSpace(in.EquipmentSerial)
	if serial == "" {
		return nil, ErrEquipmentRequired
	}
	if strings.TrimSpace(in.Date) == "" {
		return nil, ErrDateRequired
	}

	rec := &models.Repotentiation{EquipmentSerial: serial}
	in.apply(rec, s.dates)
	if rec.Technician == "" {
		rec.Technician = actor
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, errors.Wrap(err, "create repotentiation")
	}

	s.log.WithFields(logrus.Fields{"equipment": serial, "id": rec.ID, "actor": actor}).Info("repotentiation registered")
	return rec, nil
}

// Update правит событие; серийный номер оборудования не меняется.
func (s *Service) Update(ctx context.Context, id uint, in Input, actor string) (*models.Repotentiation, error) {
	if strings.TrimSpace(in.Date) == "" {
		return nil, ErrDateRequired
	}
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(rec, s.dates)
	if err := s.db.WithContext(ctx).Save(rec).Error; err != nil {
		return nil, errors.Wrapf(err, "update repotentiation %d", id)
	}
	s.log.WithFields(logrus.Fields{"id": id, "actor": actor}).Info("repotentiation updated")
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id uint, actor string) error {
	res := s.db.WithContext(ctx).Delete(&models.Repotentiation{}, id)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete repotentiation %d", id)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.log.WithFields(logrus.Fields{"id": id, "actor": actor}).Info("repotentiation deleted")
	return nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Repotentiation, error) {
	var rec models.Repotentiation
	err := s.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load repotentiation")
	}
	return &rec, nil
}

// List возвращает события по дате, новые первыми; equipmentSerial фильтрует по оборудованию.
func (s *Service) List(ctx context.Context, equipmentSerial string) ([]models.Repotentiation, error) {
	q := s.db.WithContext(ctx)
	if serial := strings.TrimSpace(equipmentSerial); serial != "" {
		q = q.Where("equipo_serial = ?", serial)
	}
	var out []models.Repotentiation
	err := q.Order("fecha_repotenciacion DESC").Order("id DESC").Find(&out).Error
	return out, errors.Wrap(err, "list repotentiations")
}

// Search ищет подстроку в серийных номерах оборудования, RAM и дисков.
func (s *Service) Search(ctx context.Context, serial string) ([]models.Repotentiation, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return []models.Repotentiation{}, nil
	}
	like := "%" + serial + "%"
	var out []models.Repotentiation
	err := s.db.WithContext(ctx).
		Where("equipo_serial LIKE ?", like).
		Or("ram_antes_serial LIKE ?", like).
		Or("ram_despues_serial LIKE ?", like).
		Or("disco_antes_serial LIKE ?", like).
		Or("disco_despues_serial LIKE ?", like).
		Order("fecha_repotenciacion DESC").Order("id DESC").
		Find(&out).Error
	return out, errors.Wrap(err, "search repotentiations")
}

func (s *Service) Summary(ctx context.Context) (dashboard.RepotentiationSummary, error) {
	var all []models.Repotentiation
	if err := s.db.WithContext(ctx).Find(&all).Error; err != nil {
		return dashboard.RepotentiationSummary{}, errors.Wrap(err, "summarize repotentiations")
	}
	return dashboard.SummarizeRepotentiations(all), nil
}
