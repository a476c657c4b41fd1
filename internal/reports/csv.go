// Package reports выгружает данные трекера в CSV для Excel.
package reports

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"refresh-tracker/internal/dashboard"
	"refresh-tracker/internal/inventory"
	"refresh-tracker/internal/models"

	"github.com/pkg/errors"
)

const timestampLayout = "2006-01-02 15:04:05"

// FileName строит "<base>_<YYYYmmdd_HHMMSS>.csv".
func FileName(base string, now time.Time) string {
	return base + "_" + now.Format("20060102_150405") + ".csv"
}

var (
	EquipmentHeader = []string{
		"ID", "Ubicacion", "Sede", "Categoria", "Fase", "Nombre Completo",
		"Perfil", "Marca", "Modelo", "Serial", "Hostname", "IP",
		"Email", "Fecha Estado", "Estado", "Estado Coordinacion",
		"Estado Upgrade", "Fecha Programada", "Fecha Ejecucion", "Notas",
	}
	RAMHeader = []string{
		"ID", "Serial", "Marca", "Capacidad (GB)", "Tipo", "Velocidad (MHz)",
		"Estado", "Equipo Serial", "Fecha Instalacion", "Fecha Registro", "Notas",
	}
	SSDHeader = []string{
		"ID", "Serial", "Marca", "Modelo", "Capacidad (GB)", "Tipo",
		"Estado", "Equipo Serial", "Fecha Instalacion", "Fecha Registro", "Notas",
	}
	RepotentiationHeader = []string{
		"ID", "Equipo Serial", "Equipo Hostname", "Usuario", "Fecha Repotenciacion",
		"RAM Antes (GB)", "RAM Antes Tipo", "RAM Antes Serial",
		"RAM Despues (GB)", "RAM Despues Tipo", "RAM Despues Serial",
		"Disco Antes Tipo", "Disco Antes (GB)", "Disco Antes Serial",
		"Disco Despues Tipo", "Disco Despues (GB)", "Disco Despues Serial",
		"RAM Extraida Serial", "RAM Extraida Estado",
		"Disco Extraido Serial", "Disco Extraido Estado", "Disco Destruido",
		"Tecnico", "Notas",
	}
	DestructionHeader = []string{
		"ID", "Disco Serial", "Disco Marca", "Disco Modelo", "Capacidad (GB)",
		"Tipo Disco", "Equipo Origen Serial", "Equipo Origen Hostname", "Usuario",
		"Estado", "Fecha Extraccion", "Fecha Destruccion", "Metodo Destruccion",
		"Tiene Video", "Certificado Numero", "Certificado Fecha",
		"Responsable", "Notas",
	}
	HistoryHeader = []string{
		"ID", "Tipo Componente", "Componente ID", "Componente Serial",
		"Accion", "Equipo Serial Anterior", "Equipo Serial Nuevo",
		"Estado Anterior", "Estado Nuevo", "Capacidad Anterior (GB)",
		"Capacidad Nueva (GB)", "Usuario", "Fecha", "Notas",
	}
)

func write(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	if err := cw.WriteAll(rows); err != nil {
		return errors.Wrap(err, "write csv rows")
	}
	return nil
}

func id(v uint) string { return strconv.FormatUint(uint64(v), 10) }

func intPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func strPtr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func timePtr(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format(timestampLayout)
}

func yesNo(v bool) string {
	if v {
		return "Si"
	}
	return "No"
}

func componentLabel(s models.ComponentStatus) string {
	if label, ok := models.ComponentStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func WriteEquipment(w io.Writer, records []models.Equipment) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		phase := ""
		if p, ok := dashboard.PhaseFor(r.WorkCategory); ok {
			phase = p.Name
		}
		rows = append(rows, []string{
			r.RecordID, r.Location, r.SiteName, r.WorkCategory, phase, r.FullName,
			r.Profile, r.Brand, r.Model, r.Serial, r.Hostname, r.IP,
			r.Email, r.StatusDate, r.Status, r.CoordinationStatus,
			r.UpgradeStatus, r.ScheduledDate, r.ExecutionDate, r.Notes,
		})
	}
	return write(w, EquipmentHeader, rows)
}

// WriteComponents пишет RAM или SSD; набор колонок зависит от kind.
func WriteComponents(w io.Writer, kind models.ComponentKind, units []inventory.Unit) error {
	rows := make([][]string, 0, len(units))
	for _, u := range units {
		capacity := strconv.Itoa(u.CapacityGB)
		common := []string{componentLabel(u.Status), strPtr(u.EquipmentSerial), timePtr(u.InstalledAt), u.RegisteredAt.Format(timestampLayout), u.Notes}
		var row []string
		if kind == models.KindSSD {
			row = append([]string{id(u.ID), u.Serial, u.Brand, u.Model, capacity, u.Type}, common...)
		} else {
			row = append([]string{id(u.ID), u.Serial, u.Brand, capacity, u.Type, intPtr(u.SpeedMHz)}, common...)
		}
		rows = append(rows, row)
	}
	if kind == models.KindSSD {
		return write(w, SSDHeader, rows)
	}
	return write(w, RAMHeader, rows)
}

// WriteRepotentiations: owners: имя пользователя по серийному номеру оборудования.
func WriteRepotentiations(w io.Writer, items []models.Repotentiation, owners map[string]string) error {
	rows := make([][]string, 0, len(items))
	for _, r := range items {
		rows = append(rows, []string{
			id(r.ID), r.EquipmentSerial, r.EquipmentHost, owners[r.EquipmentSerial], r.Date,
			intPtr(r.RAMBeforeGB), r.RAMBeforeType, r.RAMBeforeSerial,
			intPtr(r.RAMAfterGB), r.RAMAfterType, r.RAMAfterSerial,
			r.DiskBeforeType, intPtr(r.DiskBeforeGB), r.DiskBeforeSerial,
			r.DiskAfterType, intPtr(r.DiskAfterGB), r.DiskAfterSerial,
			r.ExtractedRAMSerial, r.ExtractedRAMState,
			r.ExtractedDiskSerial, r.ExtractedDiskState, yesNo(r.ExtractedDiskDestroyed),
			r.Technician, r.Notes,
		})
	}
	return write(w, RepotentiationHeader, rows)
}

func WriteDestructions(w io.Writer, items []models.DiskDestruction, owners map[string]string) error {
	rows := make([][]string, 0, len(items))
	for _, d := range items {
		status := string(d.Status)
		if label, ok := models.DestructionStatusLabels[d.Status]; ok {
			status = label
		}
		rows = append(rows, []string{
			id(d.ID), d.DiskSerial, d.DiskBrand, d.DiskModel, intPtr(d.DiskGB),
			d.DiskType, d.OriginSerial, d.OriginHost, owners[d.OriginSerial],
			status, d.ExtractionDate, d.DestructionDate, d.Method,
			yesNo(d.VideoPath != ""), d.CertificateNumber, d.CertificateDate,
			d.Responsible, d.Notes,
		})
	}
	return write(w, DestructionHeader, rows)
}

func WriteHistory(w io.Writer, items []models.ComponentHistory) error {
	rows := make([][]string, 0, len(items))
	for _, h := range items {
		var prevStatus, newStatus string
		if h.PrevStatus != nil {
			prevStatus = string(*h.PrevStatus)
		}
		if h.NewStatus != nil {
			newStatus = string(*h.NewStatus)
		}
		rows = append(rows, []string{
			id(h.ID), string(h.Kind), id(h.UnitID), h.Serial,
			string(h.Action), strPtr(h.PrevEquipment), strPtr(h.NewEquipment),
			prevStatus, newStatus, intPtr(h.PrevCapacity),
			intPtr(h.NewCapacity), h.Actor, h.CreatedAt.Format(timestampLayout), h.Notes,
		})
	}
	return write(w, HistoryHeader, rows)
}
