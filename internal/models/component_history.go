package models

import "time"

type HistoryAction string

const (
	ActionInstall        HistoryAction = "INSTALACION"
	ActionUninstall      HistoryAction = "DESINSTALACION"
	ActionCapacityChange HistoryAction = "CAMBIO_CAPACIDAD"
)

// ComponentHistory — неизменяемая запись журнала движений RAM/SSD.
// Пишется в той же транзакции, что и изменение, которое она описывает.
type ComponentHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Kind   ComponentKind `gorm:"column:tipo_componente;type:varchar(10);not null;index:idx_history_component" json:"tipo_componente"`
	UnitID uint          `gorm:"column:componente_id;not null;index:idx_history_component" json:"componente_id"`
	Serial string        `gorm:"column:componente_serial;size:100;not null" json:"componente_serial"`
	Action HistoryAction `gorm:"column:accion;type:varchar(30);not null" json:"accion"`

	PrevEquipment *string          `gorm:"column:equipo_serial_anterior;size:100;index" json:"equipo_serial_anterior"`
	NewEquipment  *string          `gorm:"column:equipo_serial_nuevo;size:100;index" json:"equipo_serial_nuevo"`
	PrevStatus    *ComponentStatus `gorm:"column:estado_anterior;type:varchar(20)" json:"estado_anterior"`
	NewStatus     *ComponentStatus `gorm:"column:estado_nuevo;type:varchar(20)" json:"estado_nuevo"`
	PrevCapacity  *int             `gorm:"column:capacidad_anterior_gb" json:"capacidad_anterior_gb"`
	NewCapacity   *int             `gorm:"column:capacidad_nueva_gb" json:"capacidad_nueva_gb"`

	Actor     string    `gorm:"column:usuario;size:50" json:"usuario"`
	CreatedAt time.Time `gorm:"column:fecha;autoCreateTime" json:"fecha"`
	Notes     string    `gorm:"column:notas;type:text" json:"notas"`
}

func (ComponentHistory) TableName() string {
	return "component_history"
}
