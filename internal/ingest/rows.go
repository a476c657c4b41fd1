package ingest

import (
	"strings"
	"time"

	"refresh-tracker/internal/models"
	"refresh-tracker/internal/normalize"
)

type EquipmentRow struct {
	Row int
	models.Equipment
}

type RAMRow struct {
	Row int
	models.RAMUnit
}

type SSDRow struct {
	Row int
	models.SSDUnit
}

type RepotentiationRow struct {
	Row int
	models.Repotentiation
}

type DestructionRow struct {
	Row int
	models.DiskDestruction
}

// rowParser переводит Record в типизированную строку; msg != "": отказ.
type rowParser struct {
	dates normalize.DateNormalizer
	now   func() time.Time
}

func (p rowParser) equipment(rec Record) (EquipmentRow, string) {
	if rec.Get(FieldRecordID) == "" {
		return EquipmentRow{}, "ID de registro requerido"
	}
	return EquipmentRow{
		Row: rec.Row,
		Equipment: models.Equipment{
			RecordID:           rec.Get(FieldRecordID),
			Location:           rec.Get(FieldLocation),
			SiteName:           rec.Get(FieldSiteName),
			WorkCategory:       rec.Get(FieldWorkCategory),
			FullName:           rec.Get(FieldFullName),
			Profile:            rec.Get(FieldProfile),
			Brand:              rec.Get(FieldBrand),
			Model:              rec.Get(FieldModel),
			Serial:             rec.Get(FieldSerial),
			Hostname:           rec.Get(FieldHostname),
			IP:                 rec.Get(FieldIP),
			Email:              rec.Get(FieldEmail),
			StatusDate:         p.dates.Normalize(rec.Get(FieldStatusDate)),
			Status:             strings.ToUpper(rec.Get(FieldStatus)),
			CoordinationStatus: strings.ToUpper(rec.Get(FieldCoordinationStatus)),
			UpgradeStatus:      strings.ToUpper(rec.Get(FieldUpgradeStatus)),
			ScheduledDate:      p.dates.Normalize(rec.Get(FieldScheduledDate)),
			ExecutionDate:      p.dates.Normalize(rec.Get(FieldExecutionDate)),
			Notes:              rec.Get(FieldNotes),
			LastUpdated:        p.now(),
		},
	}, ""
}

func (p rowParser) ram(rec Record) (RAMRow, string) {
	if rec.Get(FieldSerial) == "" {
		return RAMRow{}, "Serial requerido"
	}
	gb, msg := capacity(rec.Get(FieldCapacityGB))
	if msg != "" {
		return RAMRow{}, msg
	}
	return RAMRow{
		Row: rec.Row,
		RAMUnit: models.RAMUnit{
			Serial:     rec.Get(FieldSerial),
			Brand:      rec.Get(FieldBrand),
			CapacityGB: gb,
			Type:       rec.Get(FieldType),
			SpeedMHz:   optionalInt(rec.Get(FieldSpeedMHz)),
			Status:     componentStatus(rec.Get(FieldStatus)),
			Notes:      rec.Get(FieldNotes),
		},
	}, ""
}

func (p rowParser) ssd(rec Record) (SSDRow, string) {
	if rec.Get(FieldSerial) == "" {
		return SSDRow{}, "Serial requerido"
	}
	gb, msg := capacity(rec.Get(FieldCapacityGB))
	if msg != "" {
		return SSDRow{}, msg
	}
	return SSDRow{
		Row: rec.Row,
		SSDUnit: models.SSDUnit{
			Serial:     rec.Get(FieldSerial),
			Brand:      rec.Get(FieldBrand),
			Model:      rec.Get(FieldModel),
			CapacityGB: gb,
			Type:       rec.Get(FieldType),
			Status:     componentStatus(rec.Get(FieldStatus)),
			Notes:      rec.Get(FieldNotes),
		},
	}, ""
}

func (p rowParser) repotentiation(rec Record) (RepotentiationRow, string) {
	if rec.Get(FieldEquipmentSerial) == "" {
		return RepotentiationRow{}, "Serial de equipo requerido"
	}
	if rec.Get(FieldRepotentiationDate) == "" {
		return RepotentiationRow{}, "Fecha de repotenciacion requerida"
	}
	return RepotentiationRow{
		Row: rec.Row,
		Repotentiation: models.Repotentiation{
			EquipmentSerial:        rec.Get(FieldEquipmentSerial),
			EquipmentHost:          rec.Get(FieldEquipmentHost),
			Date:                   p.dates.Normalize(rec.Get(FieldRepotentiationDate)),
			RAMBeforeGB:            optionalInt(rec.Get(FieldRAMBeforeGB)),
			RAMBeforeType:          rec.Get(FieldRAMBeforeType),
			RAMBeforeSerial:        rec.Get(FieldRAMBeforeSerial),
			RAMAfterGB:             optionalInt(rec.Get(FieldRAMAfterGB)),
			RAMAfterType:           rec.Get(FieldRAMAfterType),
			RAMAfterSerial:         rec.Get(FieldRAMAfterSerial),
			DiskBeforeType:         rec.Get(FieldDiskBeforeType),
			DiskBeforeGB:           optionalInt(rec.Get(FieldDiskBeforeGB)),
			DiskBeforeSerial:       rec.Get(FieldDiskBeforeSerial),
			DiskAfterType:          rec.Get(FieldDiskAfterType),
			DiskAfterGB:            optionalInt(rec.Get(FieldDiskAfterGB)),
			DiskAfterSerial:        rec.Get(FieldDiskAfterSerial),
			ExtractedRAMSerial:     rec.Get(FieldExtractedRAMSerial),
			ExtractedRAMState:      rec.Get(FieldExtractedRAMState),
			ExtractedDiskSerial:    rec.Get(FieldExtractedDiskSerial),
			ExtractedDiskState:     rec.Get(FieldExtractedDiskState),
			ExtractedDiskDestroyed: truthy(rec.Get(FieldExtractedDiskDestroyed)),
			Technician:             rec.Get(FieldTechnician),
			Notes:                  rec.Get(FieldNotes),
		},
	}, ""
}

func (p rowParser) destruction(rec Record) (DestructionRow, string) {
	if rec.Get(FieldDiskSerial) == "" {
		return DestructionRow{}, "Serial de disco requerido"
	}
	status := destructionStatus(rec.Get(FieldStatus))
	return DestructionRow{
		Row: rec.Row,
		DiskDestruction: models.DiskDestruction{
			DiskSerial:        rec.Get(FieldDiskSerial),
			DiskBrand:         rec.Get(FieldDiskBrand),
			DiskModel:         rec.Get(FieldDiskModel),
			DiskGB:            optionalInt(rec.Get(FieldDiskGB)),
			DiskType:          rec.Get(FieldDiskType),
			OriginSerial:      rec.Get(FieldOriginSerial),
			OriginHost:        rec.Get(FieldOriginHost),
			Status:            status,
			ExtractionDate:    p.dates.Normalize(rec.Get(FieldExtractionDate)),
			DestructionDate:   p.dates.Normalize(rec.Get(FieldDestructionDate)),
			Method:            rec.Get(FieldMethod),
			CertificateNumber: rec.Get(FieldCertificateNumber),
			CertificateDate:   p.dates.Normalize(rec.Get(FieldCertificateDate)),
			Responsible:       rec.Get(FieldResponsible),
			Notes:             rec.Get(FieldNotes),
		},
	}, ""
}
