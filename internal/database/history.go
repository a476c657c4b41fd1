package database

import (
	"refresh-tracker/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AppendHistory пишет запись журнала компонентов. tx должен быть той же
// транзакцией, в которой меняется сам компонент.
func AppendHistory(tx *gorm.DB, entry *models.ComponentHistory) error {
	if entry.Kind == "" || entry.UnitID == 0 || entry.Action == "" {
		return errors.New("history entry requires kind, unit and action")
	}
	return errors.Wrap(tx.Create(entry).Error, "append component history")
}
