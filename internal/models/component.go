package models

import "time"

type ComponentStatus string

const (
	ComponentToDeliver ComponentStatus = "POR_ENTREGAR"
	ComponentInstalled ComponentStatus = "INSTALADO"
	ComponentToAssign  ComponentStatus = "POR_ASIGNAR"
	ComponentDefective ComponentStatus = "DEFECTUOSO"
)

// ComponentStatusLabels — подписи для интерфейса.
var ComponentStatusLabels = map[ComponentStatus]string{
	ComponentToDeliver: "Por entregar",
	ComponentInstalled: "Instalado",
	ComponentToAssign:  "Por asignar",
	ComponentDefective: "Defectuoso",
}

func (s ComponentStatus) Valid() bool {
	_, ok := ComponentStatusLabels[s]
	return ok
}

type ComponentKind string

const (
	KindRAM ComponentKind = "RAM"
	KindSSD ComponentKind = "SSD"
)

func (k ComponentKind) Valid() bool {
	return k == KindRAM || k == KindSSD
}

// Table возвращает таблицу, в которой хранятся компоненты данного типа.
func (k ComponentKind) Table() string {
	if k == KindSSD {
		return "ssd_units"
	}
	return "ram_units"
}

type RAMUnit struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Serial     string          `gorm:"column:serial_num;size:100;uniqueIndex;not null" json:"serial_num"`
	Brand      string          `gorm:"column:marca;size:100" json:"marca"`
	CapacityGB int             `gorm:"column:capacidad_gb;not null" json:"capacidad_gb"`
	Type       string          `gorm:"column:tipo;size:50" json:"tipo"`
	SpeedMHz   *int            `gorm:"column:velocidad_mhz" json:"velocidad_mhz"`
	Status     ComponentStatus `gorm:"column:estado;type:varchar(20);not null;default:POR_ENTREGAR" json:"estado"`

	// связь с project_records.serial_num: только по соглашению, без FK
	EquipmentSerial *string    `gorm:"column:equipo_serial;size:100;index" json:"equipo_serial"`
	InstalledAt     *time.Time `gorm:"column:fecha_instalacion" json:"fecha_instalacion"`
	RegisteredAt    time.Time  `gorm:"column:fecha_registro;autoCreateTime" json:"fecha_registro"`
	Notes           string     `gorm:"column:notas;type:text" json:"notas"`
}

func (RAMUnit) TableName() string {
	return KindRAM.Table()
}

type SSDUnit struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Serial     string          `gorm:"column:serial_num;size:100;uniqueIndex;not null" json:"serial_num"`
	Brand      string          `gorm:"column:marca;size:100" json:"marca"`
	Model      string          `gorm:"column:modelo;size:100" json:"modelo"`
	CapacityGB int             `gorm:"column:capacidad_gb;not null" json:"capacidad_gb"`
	Type       string          `gorm:"column:tipo;size:50" json:"tipo"`
	Status     ComponentStatus `gorm:"column:estado;type:varchar(20);not null;default:POR_ENTREGAR" json:"estado"`

	EquipmentSerial *string    `gorm:"column:equipo_serial;size:100;index" json:"equipo_serial"`
	InstalledAt     *time.Time `gorm:"column:fecha_instalacion" json:"fecha_instalacion"`
	RegisteredAt    time.Time  `gorm:"column:fecha_registro;autoCreateTime" json:"fecha_registro"`
	Notes           string     `gorm:"column:notas;type:text" json:"notas"`
}

func (SSDUnit) TableName() string {
	return KindSSD.Table()
}
