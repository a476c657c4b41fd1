package lifecycle

import (
	"context"

	"refresh-tracker/internal/models"

	"github.com/pkg/errors"
)

const RecentHistoryLimit = 50

// History возвращает журнал одного компонента, новые записи первыми.
func (t *Tracker) History(ctx context.Context, kind models.ComponentKind, id uint) ([]models.ComponentHistory, error) {
	var out []models.ComponentHistory
	err := t.db.WithContext(ctx).
		Where("tipo_componente = ? AND componente_id = ?", kind, id).
		Order("fecha DESC, id DESC").
		Find(&out).Error
	return out, errors.Wrap(err, "load component history")
}

// HistoryByEquipment возвращает все движения, где оборудование было источником или целью.
func (t *Tracker) HistoryByEquipment(ctx context.Context, serial string) ([]models.ComponentHistory, error) {
	var out []models.ComponentHistory
	err := t.db.WithContext(ctx).
		Where("equipo_serial_anterior = ? OR equipo_serial_nuevo = ?", serial, serial).
		Order("fecha DESC, id DESC").
		Find(&out).Error
	return out, errors.Wrap(err, "load equipment history")
}

func (t *Tracker) RecentHistory(ctx context.Context, limit int) ([]models.ComponentHistory, error) {
	if limit <= 0 {
		limit = RecentHistoryLimit
	}
	var out []models.ComponentHistory
	err := t.db.WithContext(ctx).
		Order("fecha DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, errors.Wrap(err, "load recent history")
}
