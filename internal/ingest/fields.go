package ingest

// Field — каноническое имя колонки после сопоставления синонимов.
// Совпадает с именем колонки в базе.
type Field string

// общие для нескольких сущностей
const (
	FieldSerial     Field = "serial_num"
	FieldBrand      Field = "marca"
	FieldModel      Field = "modelo"
	FieldHostname   Field = "hostname"
	FieldCapacityGB Field = "capacidad_gb"
	FieldType       Field = "tipo"
	FieldStatus     Field = "estado"
	FieldNotes      Field = "notas"
)

// avances
const (
	FieldRecordID           Field = "record_id"
	FieldLocation           Field = "ubicacion"
	FieldSiteName           Field = "nom_sede"
	FieldWorkCategory       Field = "categoria_trab"
	FieldFullName           Field = "nombre_completo"
	FieldProfile            Field = "perfil_imagen"
	FieldIP                 Field = "ip_equipo"
	FieldEmail              Field = "email_trabajo"
	FieldStatusDate         Field = "fecha_estado"
	FieldCoordinationStatus Field = "estado_coordinacion"
	FieldUpgradeStatus      Field = "estado_upgrade"
	FieldScheduledDate      Field = "fecha_programada"
	FieldExecutionDate      Field = "fecha_ejecucion"
)

// ram
const FieldSpeedMHz Field = "velocidad_mhz"

// repotenciacion
const (
	FieldEquipmentSerial        Field = "equipo_serial"
	FieldEquipmentHost          Field = "equipo_hostname"
	FieldRepotentiationDate     Field = "fecha_repotenciacion"
	FieldRAMBeforeGB            Field = "ram_antes_gb"
	FieldRAMBeforeType          Field = "ram_antes_tipo"
	FieldRAMBeforeSerial        Field = "ram_antes_serial"
	FieldRAMAfterGB             Field = "ram_despues_gb"
	FieldRAMAfterType           Field = "ram_despues_tipo"
	FieldRAMAfterSerial         Field = "ram_despues_serial"
	FieldDiskBeforeType         Field = "disco_antes_tipo"
	FieldDiskBeforeGB           Field = "disco_antes_capacidad_gb"
	FieldDiskBeforeSerial       Field = "disco_antes_serial"
	FieldDiskAfterType          Field = "disco_despues_tipo"
	FieldDiskAfterGB            Field = "disco_despues_capacidad_gb"
	FieldDiskAfterSerial        Field = "disco_despues_serial"
	FieldExtractedRAMSerial     Field = "ram_extraida_serial"
	FieldExtractedRAMState      Field = "ram_extraida_estado"
	FieldExtractedDiskSerial    Field = "disco_extraido_serial"
	FieldExtractedDiskState     Field = "disco_extraido_estado"
	FieldExtractedDiskDestroyed Field = "disco_extraido_destruido"
	FieldTechnician             Field = "tecnico"
)

// destruccion
const (
	FieldDiskSerial        Field = "disco_serial"
	FieldDiskBrand         Field = "disco_marca"
	FieldDiskModel         Field = "disco_modelo"
	FieldDiskGB            Field = "disco_capacidad_gb"
	FieldDiskType          Field = "disco_tipo"
	FieldOriginSerial      Field = "equipo_origen_serial"
	FieldOriginHost        Field = "equipo_origen_hostname"
	FieldExtractionDate    Field = "fecha_extraccion"
	FieldDestructionDate   Field = "fecha_destruccion"
	FieldMethod            Field = "metodo_destruccion"
	FieldCertificateNumber Field = "certificado_numero"
	FieldCertificateDate   Field = "certificado_fecha"
	FieldResponsible       Field = "responsable"
)
