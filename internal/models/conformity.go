package models

import "time"

// ConformityRecord — загруженный акт о выполнении работ (PDF или MSG).
type ConformityRecord struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	EquipmentSerial string    `gorm:"column:equipo_serial;size:100;not null;index" json:"equipo_serial"`
	EquipmentHost   string    `gorm:"column:equipo_hostname;size:100" json:"equipo_hostname"`
	OwnerName       string    `gorm:"column:usuario_nombre;size:255" json:"usuario_nombre"`
	FileType        string    `gorm:"column:tipo_archivo;size:10;not null" json:"tipo_archivo"`
	FileName        string    `gorm:"column:nombre_archivo;size:255;not null" json:"nombre_archivo"`
	FilePath        string    `gorm:"column:ruta_archivo;size:500;not null" json:"-"`
	UploadedAt      time.Time `gorm:"column:fecha_subida;autoCreateTime" json:"fecha_subida"`
	UploadedBy      string    `gorm:"column:subido_por;size:50" json:"subido_por"`
	Notes           string    `gorm:"column:notas;type:text" json:"notas"`
}

func (ConformityRecord) TableName() string {
	return "conformity_records"
}
