package models

import "time"

// Equipment — рабочая станция в одной из фаз проекта (таблица project_records).
// record_id стабилен между загрузками: повторная загрузка обновляет строку.
type Equipment struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	RecordID string `gorm:"column:record_id;size:100;uniqueIndex;not null" json:"record_id"`

	Location     string `gorm:"column:ubicacion;size:255" json:"ubicacion"`
	SiteName     string `gorm:"column:nom_sede;size:255" json:"nom_sede"`
	WorkCategory string `gorm:"column:categoria_trab;size:255" json:"categoria_trab"`
	FullName     string `gorm:"column:nombre_completo;size:255" json:"nombre_completo"`
	Profile      string `gorm:"column:perfil_imagen;size:255" json:"perfil_imagen"`

	Brand    string `gorm:"column:marca;size:100" json:"marca"`
	Model    string `gorm:"column:modelo;size:100" json:"modelo"`
	Serial   string `gorm:"column:serial_num;size:100;index" json:"serial_num"`
	Hostname string `gorm:"column:hostname;size:100" json:"hostname"`
	IP       string `gorm:"column:ip_equipo;size:64" json:"ip_equipo"`
	Email    string `gorm:"column:email_trabajo;size:255" json:"email_trabajo"`

	// три независимых трека статуса: общий, координация, апгрейд
	StatusDate         string `gorm:"column:fecha_estado;size:32" json:"fecha_estado"`
	Status             string `gorm:"column:estado;size:64" json:"estado"`
	CoordinationStatus string `gorm:"column:estado_coordinacion;size:64" json:"estado_coordinacion"`
	UpgradeStatus      string `gorm:"column:estado_upgrade;size:64" json:"estado_upgrade"`
	ScheduledDate      string `gorm:"column:fecha_programada;size:32" json:"fecha_programada"`
	ExecutionDate      string `gorm:"column:fecha_ejecucion;size:32" json:"fecha_ejecucion"`
	Notes              string `gorm:"column:notas;type:text" json:"notas"`

	LastUpdated time.Time `gorm:"column:last_updated" json:"last_updated"`
}

func (Equipment) TableName() string {
	return "project_records"
}

// EquipmentStatuses — каталог статусов для фильтров дашборда.
var EquipmentStatuses = []string{
	"PROGRAMADO",
	"REPROGRAMADO",
	"EN PROCESO",
	"REALIZADO",
	"USER NO ASISTIO",
	"USER SIN RESPUESTA",
	"NO APLICA UPGRADE",
	"INCIDENCIA UPGRADE",
	"PENDIENTE",
}
