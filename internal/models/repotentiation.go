package models

import "time"

// Repotentiation — одна замена RAM/диска "до и после" на конкретном оборудовании.
type Repotentiation struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	EquipmentSerial string `gorm:"column:equipo_serial;size:100;not null;index" json:"equipo_serial"`
	EquipmentHost   string `gorm:"column:equipo_hostname;size:100" json:"equipo_hostname"`
	Date            string `gorm:"column:fecha_repotenciacion;size:32;not null" json:"fecha_repotenciacion"`

	RAMBeforeGB     *int   `gorm:"column:ram_antes_gb" json:"ram_antes_gb"`
	RAMBeforeType   string `gorm:"column:ram_antes_tipo;size:50" json:"ram_antes_tipo"`
	RAMBeforeSerial string `gorm:"column:ram_antes_serial;size:100" json:"ram_antes_serial"`
	RAMAfterGB      *int   `gorm:"column:ram_despues_gb" json:"ram_despues_gb"`
	RAMAfterType    string `gorm:"column:ram_despues_tipo;size:50" json:"ram_despues_tipo"`
	RAMAfterSerial  string `gorm:"column:ram_despues_serial;size:100" json:"ram_despues_serial"`

	DiskBeforeType   string `gorm:"column:disco_antes_tipo;size:50" json:"disco_antes_tipo"`
	DiskBeforeGB     *int   `gorm:"column:disco_antes_capacidad_gb" json:"disco_antes_capacidad_gb"`
	DiskBeforeSerial string `gorm:"column:disco_antes_serial;size:100" json:"disco_antes_serial"`
	DiskAfterType    string `gorm:"column:disco_despues_tipo;size:50" json:"disco_despues_tipo"`
	DiskAfterGB      *int   `gorm:"column:disco_despues_capacidad_gb" json:"disco_despues_capacidad_gb"`
	DiskAfterSerial  string `gorm:"column:disco_despues_serial;size:100" json:"disco_despues_serial"`

	ExtractedRAMSerial     string `gorm:"column:ram_extraida_serial;size:100" json:"ram_extraida_serial"`
	ExtractedRAMState      string `gorm:"column:ram_extraida_estado;size:50" json:"ram_extraida_estado"`
	ExtractedDiskSerial    string `gorm:"column:disco_extraido_serial;size:100" json:"disco_extraido_serial"`
	ExtractedDiskState     string `gorm:"column:disco_extraido_estado;size:50" json:"disco_extraido_estado"`
	ExtractedDiskDestroyed bool   `gorm:"column:disco_extraido_destruido;not null;default:false" json:"disco_extraido_destruido"`

	Technician   string    `gorm:"column:tecnico;size:100" json:"tecnico"`
	Notes        string    `gorm:"column:notas;type:text" json:"notas"`
	RegisteredAt time.Time `gorm:"column:fecha_registro;autoCreateTime" json:"fecha_registro"`
}

func (Repotentiation) TableName() string {
	return "repotentiation_history"
}
