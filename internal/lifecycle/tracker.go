// Package lifecycle ведёт установку и снятие RAM/SSD с оборудования.
// Каждый переход: одна транзакция: изменение компонента плюс запись журнала.
package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"refresh-tracker/internal/database"
	"refresh-tracker/internal/metrics"
	"refresh-tracker/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrComponentNotFound     = errors.New("component not found")
	ErrUnknownKind           = errors.New("unknown component kind")
	ErrEquipmentSerialNeeded = errors.New("equipment serial is required")
)

type Tracker struct {
	db  *gorm.DB
	log *logrus.Logger
	now func() time.Time
}

func NewTracker(db *gorm.DB, log *logrus.Logger) *Tracker {
	return &Tracker{db: db, log: log, now: time.Now}
}

// общая часть ram_units/ssd_units, нужная для перехода
type unitState struct {
	ID              uint
	Serial          string                 `gorm:"column:serial_num"`
	Status          models.ComponentStatus `gorm:"column:estado"`
	EquipmentSerial *string                `gorm:"column:equipo_serial"`
}

func loadUnit(tx *gorm.DB, kind models.ComponentKind, id uint) (*unitState, error) {
	var unit unitState
	err := tx.Table(kind.Table()).
		Select("id", "serial_num", "estado", "equipo_serial").
		Where("id = ?", id).
		Take(&unit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrComponentNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s %d", kind, id)
	}
	return &unit, nil
}

// Assign ставит компонент в оборудование: INSTALADO, ссылка на серийный
// номер оборудования и дата установки.
func (t *Tracker) Assign(ctx context.Context, kind models.ComponentKind, id uint, equipmentSerial, actor string) error {
	if !kind.Valid() {
		return ErrUnknownKind
	}
	equipmentSerial = strings.TrimSpace(equipmentSerial)
	if equipmentSerial == "" {
		return ErrEquipmentSerialNeeded
	}

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		unit, err := loadUnit(tx, kind, id)
		if err != nil {
			return err
		}

		newStatus := models.ComponentInstalled
		err = tx.Table(kind.Table()).Where("id = ?", id).Updates(map[string]interface{}{
			"estado":            newStatus,
			"equipo_serial":     equipmentSerial,
			"fecha_instalacion": t.now(),
		}).Error
		if err != nil {
			return errors.Wrapf(err, "assign %s %d", kind, id)
		}

		prevStatus := unit.Status
		return database.AppendHistory(tx, &models.ComponentHistory{
			Kind:          kind,
			UnitID:        id,
			Serial:        unit.Serial,
			Action:        models.ActionInstall,
			PrevEquipment: unit.EquipmentSerial,
			NewEquipment:  &equipmentSerial,
			PrevStatus:    &prevStatus,
			NewStatus:     &newStatus,
			Actor:         actor,
			Notes:         fmt.Sprintf("Instalación en equipo %s", equipmentSerial),
		})
	})
	if err != nil {
		return err
	}

	metrics.Transition(string(kind), string(models.ActionInstall))
	t.log.WithFields(logrus.Fields{
		"component": kind,
		"id":        id,
		"equipment": equipmentSerial,
		"actor":     actor,
	}).Info("component assigned")
	return nil
}

// Unassign снимает компонент: ссылка и дата установки очищаются, статус POR_ASIGNAR.
func (t *Tracker) Unassign(ctx context.Context, kind models.ComponentKind, id uint, actor, note string) error {
	if !kind.Valid() {
		return ErrUnknownKind
	}

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		unit, err := loadUnit(tx, kind, id)
		if err != nil {
			return err
		}

		newStatus := models.ComponentToAssign
		err = tx.Table(kind.Table()).Where("id = ?", id).Updates(map[string]interface{}{
			"estado":            newStatus,
			"equipo_serial":     nil,
			"fecha_instalacion": nil,
		}).Error
		if err != nil {
			return errors.Wrapf(err, "unassign %s %d", kind, id)
		}

		prevStatus := unit.Status
		return database.AppendHistory(tx, &models.ComponentHistory{
			Kind:          kind,
			UnitID:        id,
			Serial:        unit.Serial,
			Action:        models.ActionUninstall,
			PrevEquipment: unit.EquipmentSerial,
			PrevStatus:    &prevStatus,
			NewStatus:     &newStatus,
			Actor:         actor,
			Notes:         strings.TrimSpace(note),
		})
	})
	if err != nil {
		return err
	}

	metrics.Transition(string(kind), string(models.ActionUninstall))
	t.log.WithFields(logrus.Fields{
		"component": kind,
		"id":        id,
		"actor":     actor,
	}).Info("component unassigned")
	return nil
}
