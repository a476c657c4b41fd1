// Package inventory — учёт RAM и SSD: список, создание, правка, удаление, сводка.
// Установка и снятие с оборудования: в пакете lifecycle.
package inventory

import (
	"context"
	"strings"
	"time"

	"refresh-tracker/internal/dashboard"
	"refresh-tracker/internal/database"
	"refresh-tracker/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("component not found")
	ErrDuplicateSerial = errors.New("component serial already exists")
	ErrSerialRequired  = errors.New("serial is required")
	ErrInvalidCapacity = errors.New("capacity must be a positive number")
	ErrInvalidStatus   = errors.New("unknown component status")
	ErrUnknownKind     = errors.New("unknown component kind")
)

// Unit — общее представление RAM и SSD. Modelo есть только у SSD,
// velocidad_mhz — только у RAM.
type Unit struct {
	ID              uint                   `gorm:"column:id" json:"id"`
	Kind            models.ComponentKind   `gorm:"-" json:"tipo_componente"`
	Serial          string                 `gorm:"column:serial_num" json:"serial_num"`
	Brand           string                 `gorm:"column:marca" json:"marca"`
	Model           string                 `gorm:"column:modelo" json:"modelo,omitempty"`
	CapacityGB      int                    `gorm:"column:capacidad_gb" json:"capacidad_gb"`
	Type            string                 `gorm:"column:tipo" json:"tipo"`
	SpeedMHz        *int                   `gorm:"column:velocidad_mhz" json:"velocidad_mhz,omitempty"`
	Status          models.ComponentStatus `gorm:"column:estado" json:"estado"`
	EquipmentSerial *string                `gorm:"column:equipo_serial" json:"equipo_serial"`
	InstalledAt     *time.Time             `gorm:"column:fecha_instalacion" json:"fecha_instalacion"`
	RegisteredAt    time.Time              `gorm:"column:fecha_registro" json:"fecha_registro"`
	Notes           string                 `gorm:"column:notas" json:"notas"`
}

// Input — данные формы создания/правки.
type Input struct {
	Serial     string `form:"serial_num" json:"serial_num"`
	Brand      string `form:"marca" json:"marca"`
	Model      string `form:"modelo" json:"modelo"`
	CapacityGB int    `form:"capacidad_gb" json:"capacidad_gb"`
	Type       string `form:"tipo" json:"tipo"`
	SpeedMHz   int    `form:"velocidad_mhz" json:"velocidad_mhz"`
	Status     string `form:"estado" json:"estado"`
	Notes      string `form:"notas" json:"notas"`
}

func (in *Input) normalize() error {
	in.Serial = strings.TrimSpace(in.Serial)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	in.Type = strings.TrimSpace(in.Type)
	in.Notes = strings.TrimSpace(in.Notes)
	in.Status = strings.ToUpper(strings.TrimSpace(in.Status))
	if in.Status == "" {
		in.Status = string(models.ComponentToDeliver)
	}
	if !models.ComponentStatus(in.Status).Valid() {
		return ErrInvalidStatus
	}
	if in.CapacityGB <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}

func (in *Input) speed() *int {
	if in.SpeedMHz <= 0 {
		return nil
	}
	v := in.SpeedMHz
	return &v
}

type Service struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewService(db *gorm.DB, log *logrus.Logger) *Service {
	return &Service{db: db, log: log}
}

// List возвращает компоненты вида kind, новые первыми; status фильтрует по статусу.
func (s *Service) List(ctx context.Context, kind models.ComponentKind, status string) ([]Unit, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	q := s.db.WithContext(ctx).Table(kind.Table())
	if status = strings.TrimSpace(status); status != "" {
		q = q.Where("estado = ?", status)
	}
	var out []Unit
	if err := q.Order("fecha_registro DESC").Order("id DESC").Find(&out).Error; err != nil {
		return nil, errors.Wrapf(err, "list %s", kind)
	}
	for i := range out {
		out[i].Kind = kind
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, kind models.ComponentKind, id uint) (*Unit, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	return getUnit(s.db.WithContext(ctx), kind, id)
}

func getUnit(tx *gorm.DB, kind models.ComponentKind, id uint) (*Unit, error) {
	var u Unit
	err := tx.Table(kind.Table()).Where("id = ?", id).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s %d", kind, id)
	}
	u.Kind = kind
	return &u, nil
}

// Create регистрирует компонент; повтор серийного номера: ErrDuplicateSerial.
func (s *Service) Create(ctx context.Context, kind models.ComponentKind, in Input, actor string) (*Unit, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	if strings.TrimSpace(in.Serial) == "" {
		return nil, ErrSerialRequired
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var id uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table(kind.Table()).Where("serial_num = ?", in.Serial).Count(&count).Error; err != nil {
			return errors.Wrap(err, "check serial")
		}
		if count > 0 {
			return ErrDuplicateSerial
		}

		switch kind {
		case models.KindRAM:
			unit := models.RAMUnit{
				Serial: in.Serial, Brand: in.Brand, CapacityGB: in.CapacityGB, Type: in.Type,
				SpeedMHz: in.speed(), Status: models.ComponentStatus(in.Status), Notes: in.Notes,
			}
			if err := tx.Create(&unit).Error; err != nil {
				return errors.Wrap(err, "create ram")
			}
			id = unit.ID
		case models.KindSSD:
			unit := models.SSDUnit{
				Serial: in.Serial, Brand: in.Brand, Model: in.Model, CapacityGB: in.CapacityGB, Type: in.Type,
				Status: models.ComponentStatus(in.Status), Notes: in.Notes,
			}
			if err := tx.Create(&unit).Error; err != nil {
				return errors.Wrap(err, "create ssd")
			}
			id = unit.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"component": kind, "serial": in.Serial, "actor": actor}).Info("component registered")
	return s.Get(ctx, kind, id)
}

// Update правит атрибуты компонента. Серийный номер и связь с оборудованием
// не меняются; смена ёмкости пишется в журнал как CAMBIO_CAPACIDAD.
func (s *Service) Update(ctx context.Context, kind models.ComponentKind, id uint, in Input, actor string) (*Unit, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := getUnit(tx, kind, id)
		if err != nil {
			return err
		}

		changes := map[string]interface{}{
			"marca":        in.Brand,
			"capacidad_gb": in.CapacityGB,
			"tipo":         in.Type,
			"estado":       in.Status,
			"notas":        in.Notes,
		}
		switch kind {
		case models.KindRAM:
			changes["velocidad_mhz"] = in.speed()
		case models.KindSSD:
			changes["modelo"] = in.Model
		}
		if err := tx.Table(kind.Table()).Where("id = ?", id).Updates(changes).Error; err != nil {
			return errors.Wrapf(err, "update %s %d", kind, id)
		}

		if current.CapacityGB == in.CapacityGB {
			return nil
		}
		prev, next := current.CapacityGB, in.CapacityGB
		return database.AppendHistory(tx, &models.ComponentHistory{
			Kind:          kind,
			UnitID:        id,
			Serial:        current.Serial,
			Action:        models.ActionCapacityChange,
			PrevEquipment: current.EquipmentSerial,
			NewEquipment:  current.EquipmentSerial,
			PrevCapacity:  &prev,
			NewCapacity:   &next,
			Actor:         actor,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, kind, id)
}

// Delete удаляет компонент без записи в журнал.
func (s *Service) Delete(ctx context.Context, kind models.ComponentKind, id uint, actor string) error {
	if !kind.Valid() {
		return ErrUnknownKind
	}
	var model interface{} = &models.RAMUnit{}
	if kind == models.KindSSD {
		model = &models.SSDUnit{}
	}
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete %s %d", kind, id)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.log.WithFields(logrus.Fields{"component": kind, "id": id, "actor": actor}).Info("component deleted")
	return nil
}

func (s *Service) Summary(ctx context.Context, kind models.ComponentKind) (dashboard.ComponentSummary, error) {
	if !kind.Valid() {
		return dashboard.ComponentSummary{}, ErrUnknownKind
	}
	var stock []dashboard.ComponentStock
	err := s.db.WithContext(ctx).Table(kind.Table()).Select("estado", "capacidad_gb").Find(&stock).Error
	if err != nil {
		return dashboard.ComponentSummary{}, errors.Wrapf(err, "summarize %s", kind)
	}
	return dashboard.SummarizeComponents(stock), nil
}
