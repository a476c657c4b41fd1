package models

import (
	"fmt"
	"strings"
	"time"
)

type DestructionStatus string

const (
	DestructionPending    DestructionStatus = "PENDIENTE"
	DestructionScheduled  DestructionStatus = "PROGRAMADO"
	DestructionInProgress DestructionStatus = "EN_PROCESO"
	DestructionDestroyed  DestructionStatus = "DESTRUIDO"
	DestructionCertified  DestructionStatus = "CERTIFICADO"
)

var DestructionStatusLabels = map[DestructionStatus]string{
	DestructionPending:    "Pendiente de destrucción",
	DestructionScheduled:  "Programado para destrucción",
	DestructionInProgress: "En proceso de destrucción",
	DestructionDestroyed:  "Destruido",
	DestructionCertified:  "Destruido y certificado",
}

func (s DestructionStatus) Valid() bool {
	_, ok := DestructionStatusLabels[s]
	return ok
}

// DiskDestruction — цепочка хранения одного диска от извлечения до сертификата.
type DiskDestruction struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	DiskSerial string `gorm:"column:disco_serial;size:100;uniqueIndex;not null" json:"disco_serial"`
	DiskBrand  string `gorm:"column:disco_marca;size:100" json:"disco_marca"`
	DiskModel  string `gorm:"column:disco_modelo;size:100" json:"disco_modelo"`
	DiskGB     *int   `gorm:"column:disco_capacidad_gb" json:"disco_capacidad_gb"`
	DiskType   string `gorm:"column:disco_tipo;size:50" json:"disco_tipo"`

	OriginSerial string `gorm:"column:equipo_origen_serial;size:100;index" json:"equipo_origen_serial"`
	OriginHost   string `gorm:"column:equipo_origen_hostname;size:100" json:"equipo_origen_hostname"`

	Status          DestructionStatus `gorm:"column:estado;type:varchar(20);not null;default:PENDIENTE" json:"estado"`
	ExtractionDate  string            `gorm:"column:fecha_extraccion;size:32" json:"fecha_extraccion"`
	DestructionDate string            `gorm:"column:fecha_destruccion;size:32" json:"fecha_destruccion"`
	Method          string            `gorm:"column:metodo_destruccion;size:100" json:"metodo_destruccion"`

	VideoName string `gorm:"column:video_nombre;size:255" json:"video_nombre"`
	VideoPath string `gorm:"column:video_ruta;size:500" json:"-"`

	CertificateNumber string `gorm:"column:certificado_numero;size:50" json:"certificado_numero"`
	CertificateDate   string `gorm:"column:certificado_fecha;size:32" json:"certificado_fecha"`

	Responsible  string    `gorm:"column:responsable;size:100" json:"responsable"`
	Notes        string    `gorm:"column:notas;type:text" json:"notas"`
	RegisteredAt time.Time `gorm:"column:fecha_registro;autoCreateTime" json:"fecha_registro"`
}

func (DiskDestruction) TableName() string {
	return "disk_destructions"
}

// CertificateNumberFor — номер сертификата по умолчанию.
func CertificateNumberFor(id uint) string {
	return fmt.Sprintf("CERT-%05d", id)
}

// CompleteCertificate дозаполняет номер (CERT-<id>) и дату сертификата у
// записи в статусе CERTIFICADO. ID уже должен быть присвоен. Возвращает
// true, если запись изменилась.
func (d *DiskDestruction) CompleteCertificate(today string) bool {
	if d.Status != DestructionCertified {
		return false
	}
	changed := false
	if strings.TrimSpace(d.CertificateNumber) == "" {
		d.CertificateNumber = CertificateNumberFor(d.ID)
		changed = true
	}
	if d.CertificateDate == "" {
		d.CertificateDate = today
		changed = true
	}
	return changed
}
