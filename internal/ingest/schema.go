package ingest

// Entity — вид загружаемого CSV, совпадает с сегментом URL /carga-masiva/<entity>.
type Entity string

const (
	EntityEquipment      Entity = "avances"
	EntityRAM            Entity = "ram"
	EntitySSD            Entity = "ssd"
	EntityRepotentiation Entity = "repotenciacion"
	EntityDestruction    Entity = "destruccion"
)

// Schema — замкнутый набор колонок сущности и словарь синонимов заголовков.
// Ключи словаря уже прошли normalize.HeaderKey.
type Schema struct {
	Entity   Entity
	Synonyms map[string]Field
	// шаблон для скачивания: заголовок + примеры
	Template [][]string
}

func (s Schema) Column(headerKey string) (Field, bool) {
	f, ok := s.Synonyms[headerKey]
	return f, ok
}

// Fields — канонические колонки сущности в порядке шаблона.
func (s Schema) Fields() []Field {
	seen := make(map[Field]bool, len(s.Synonyms))
	var out []Field
	for _, h := range s.Template[0] {
		if f, ok := s.Synonyms[h]; ok && !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

var EquipmentSchema = Schema{
	Entity: EntityEquipment,
	Synonyms: map[string]Field{
		"id":                  FieldRecordID,
		"record_id":           FieldRecordID,
		"ubicacion":           FieldLocation,
		"nom_sede":            FieldSiteName,
		"categoria_trab":      FieldWorkCategory,
		"categoria":           FieldWorkCategory,
		"nombre_completo":     FieldFullName,
		"nombre":              FieldFullName,
		"perfil_imagen":       FieldProfile,
		"perfil":              FieldProfile,
		"marca":               FieldBrand,
		"modelo":              FieldModel,
		"serial_num":          FieldSerial,
		"serialnumber":        FieldSerial,
		"serial":              FieldSerial,
		"hostname":            FieldHostname,
		"ip_equipo":           FieldIP,
		"email_trabajo":       FieldEmail,
		"correo":              FieldEmail,
		"fecha_estado":        FieldStatusDate,
		"estado":              FieldStatus,
		"estado_coordinacion": FieldCoordinationStatus,
		"estado_coordinacin":  FieldCoordinationStatus,
		"estado_upgrade":      FieldUpgradeStatus,
		"fecha_programada":    FieldScheduledDate,
		"fecha_programacion":  FieldScheduledDate,
		"fecha_ejecucion":     FieldExecutionDate,
		"fecha_upgrade":       FieldExecutionDate,
		"notas":               FieldNotes,
	},
	Template: [][]string{
		{
			"id", "ubicacion", "nom_sede", "categoria_trab", "nombre_completo",
			"perfil_imagen", "marca", "modelo", "serial_num", "hostname",
			"ip_equipo", "email_trabajo", "fecha_estado", "estado",
			"estado_coordinacion", "estado_upgrade", "fecha_programada",
			"fecha_ejecucion", "notas",
		},
		{
			"001", "SEDE PRINCIPAL", "Centro Corporativo", "UPGRADE + WIN11",
			"Nombre Ejemplo", "OFICINA PRINCIPAL ADMINISTRATIVO", "HP",
			"EliteBook 840", "5CD3051HBZ", "BANCAINMOBIOP01", "10.10.2.15",
			"usuario@empresa.com", "2025-09-29", "REALIZADO", "REALIZADO",
			"PROGRAMADO", "2025-09-27", "2025-09-29", "Observaciones",
		},
	},
}

var RAMSchema = Schema{
	Entity: EntityRAM,
	Synonyms: map[string]Field{
		"serial_num":    FieldSerial,
		"serial":        FieldSerial,
		"marca":         FieldBrand,
		"brand":         FieldBrand,
		"capacidad_gb":  FieldCapacityGB,
		"capacidad":     FieldCapacityGB,
		"gb":            FieldCapacityGB,
		"tipo":          FieldType,
		"type":          FieldType,
		"velocidad_mhz": FieldSpeedMHz,
		"velocidad":     FieldSpeedMHz,
		"mhz":           FieldSpeedMHz,
		"estado":        FieldStatus,
		"status":        FieldStatus,
		"notas":         FieldNotes,
		"notes":         FieldNotes,
	},
	Template: [][]string{
		{"serial_num", "marca", "capacidad_gb", "tipo", "velocidad_mhz", "estado", "notas"},
		{"RAM001ABC", "Kingston", "16", "DDR4", "3200", "POR_ENTREGAR", "Lote Enero 2025"},
		{"RAM002DEF", "Crucial", "8", "DDR4", "2666", "POR_ASIGNAR", ""},
	},
}

var SSDSchema = Schema{
	Entity: EntitySSD,
	Synonyms: map[string]Field{
		"serial_num":   FieldSerial,
		"serial":       FieldSerial,
		"marca":        FieldBrand,
		"brand":        FieldBrand,
		"modelo":       FieldModel,
		"model":        FieldModel,
		"capacidad_gb": FieldCapacityGB,
		"capacidad":    FieldCapacityGB,
		"gb":           FieldCapacityGB,
		"tipo":         FieldType,
		"type":         FieldType,
		"estado":       FieldStatus,
		"status":       FieldStatus,
		"notas":        FieldNotes,
		"notes":        FieldNotes,
	},
	Template: [][]string{
		{"serial_num", "marca", "modelo", "capacidad_gb", "tipo", "estado", "notas"},
		{"SSD001ABC", "Samsung", "870 EVO", "500", "SATA", "POR_ENTREGAR", "Lote Enero 2025"},
		{"SSD002DEF", "Kingston", "A400", "480", "SATA", "POR_ASIGNAR", ""},
	},
}

var RepotentiationSchema = Schema{
	Entity: EntityRepotentiation,
	Synonyms: map[string]Field{
		"equipo_serial":              FieldEquipmentSerial,
		"serial_equipo":              FieldEquipmentSerial,
		"equipo_hostname":            FieldEquipmentHost,
		"hostname":                   FieldEquipmentHost,
		"fecha_repotenciacion":       FieldRepotentiationDate,
		"fecha":                      FieldRepotentiationDate,
		"ram_antes_gb":               FieldRAMBeforeGB,
		"ram_antes_tipo":             FieldRAMBeforeType,
		"ram_antes_serial":           FieldRAMBeforeSerial,
		"ram_despues_gb":             FieldRAMAfterGB,
		"ram_despues_tipo":           FieldRAMAfterType,
		"ram_despues_serial":         FieldRAMAfterSerial,
		"disco_antes_tipo":           FieldDiskBeforeType,
		"disco_antes_capacidad_gb":   FieldDiskBeforeGB,
		"disco_antes_serial":         FieldDiskBeforeSerial,
		"disco_despues_tipo":         FieldDiskAfterType,
		"disco_despues_capacidad_gb": FieldDiskAfterGB,
		"disco_despues_serial":       FieldDiskAfterSerial,
		"ram_extraida_serial":        FieldExtractedRAMSerial,
		"ram_extraida_estado":        FieldExtractedRAMState,
		"disco_extraido_serial":      FieldExtractedDiskSerial,
		"disco_extraido_estado":      FieldExtractedDiskState,
		"disco_extraido_destruido":   FieldExtractedDiskDestroyed,
		"tecnico":                    FieldTechnician,
		"notas":                      FieldNotes,
	},
	Template: [][]string{
		{
			"equipo_serial", "equipo_hostname", "fecha_repotenciacion",
			"ram_antes_gb", "ram_antes_tipo", "ram_antes_serial",
			"ram_despues_gb", "ram_despues_tipo", "ram_despues_serial",
			"disco_antes_tipo", "disco_antes_capacidad_gb", "disco_antes_serial",
			"disco_despues_tipo", "disco_despues_capacidad_gb", "disco_despues_serial",
			"ram_extraida_serial", "ram_extraida_estado",
			"disco_extraido_serial", "disco_extraido_estado", "disco_extraido_destruido",
			"tecnico", "notas",
		},
		{
			"5CD3051HBZ", "BANCAINMOBIOP01", "2025-01-15",
			"8", "DDR4", "RAM-OLD-001",
			"16", "DDR4", "RAM-NEW-001",
			"HDD", "500", "HDD-OLD-001",
			"SSD", "500", "SSD-NEW-001",
			"RAM-OLD-001", "FUNCIONAL",
			"HDD-OLD-001", "PARA_DESTRUIR", "NO",
			"Juan Perez", "Repotenciacion completada",
		},
	},
}

var DestructionSchema = Schema{
	Entity: EntityDestruction,
	Synonyms: map[string]Field{
		"disco_serial":           FieldDiskSerial,
		"serial_disco":           FieldDiskSerial,
		"serial":                 FieldDiskSerial,
		"disco_marca":            FieldDiskBrand,
		"marca":                  FieldDiskBrand,
		"disco_modelo":           FieldDiskModel,
		"modelo":                 FieldDiskModel,
		"disco_capacidad_gb":     FieldDiskGB,
		"capacidad_gb":           FieldDiskGB,
		"capacidad":              FieldDiskGB,
		"disco_tipo":             FieldDiskType,
		"tipo":                   FieldDiskType,
		"equipo_origen_serial":   FieldOriginSerial,
		"serial_equipo":          FieldOriginSerial,
		"equipo_origen_hostname": FieldOriginHost,
		"hostname":               FieldOriginHost,
		"estado":                 FieldStatus,
		"fecha_extraccion":       FieldExtractionDate,
		"fecha_destruccion":      FieldDestructionDate,
		"metodo_destruccion":     FieldMethod,
		"metodo":                 FieldMethod,
		"certificado_numero":     FieldCertificateNumber,
		"certificado":            FieldCertificateNumber,
		"certificado_fecha":      FieldCertificateDate,
		"responsable":            FieldResponsible,
		"notas":                  FieldNotes,
	},
	Template: [][]string{
		{
			"disco_serial", "disco_marca", "disco_modelo", "disco_capacidad_gb", "disco_tipo",
			"equipo_origen_serial", "equipo_origen_hostname", "estado",
			"fecha_extraccion", "fecha_destruccion", "metodo_destruccion",
			"certificado_numero", "certificado_fecha", "responsable", "notas",
		},
		{
			"HDD-OLD-001", "Seagate", "Barracuda", "500", "HDD",
			"5CD3051HBZ", "BANCAINMOBIOP01", "PENDIENTE",
			"2025-01-15", "", "",
			"", "", "Juan Perez", "Extraido en repotenciacion",
		},
	},
}

// SchemaFor возвращает схему по сущности.
func SchemaFor(entity Entity) (Schema, bool) {
	switch entity {
	case EntityEquipment:
		return EquipmentSchema, true
	case EntityRAM:
		return RAMSchema, true
	case EntitySSD:
		return SSDSchema, true
	case EntityRepotentiation:
		return RepotentiationSchema, true
	case EntityDestruction:
		return DestructionSchema, true
	}
	return Schema{}, false
}
