// Package equipment — чтение записей проекта (project_records) для дашборда.
// Записи создаются и обновляются только загрузкой CSV.
package equipment

import (
	"context"
	"strings"

	"refresh-tracker/internal/dashboard"
	"refresh-tracker/internal/models"
	"refresh-tracker/internal/normalize"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("equipment not found")

// Filters — фильтры дашборда; пустое поле не фильтрует.
type Filters struct {
	Location string `form:"ubicacion" json:"ubicacion"`
	Site     string `form:"nom_sede" json:"nom_sede"`
	Category string `form:"categoria_trab" json:"categoria_trab"`
	Status   string `form:"estado" json:"estado"`
	From     string `form:"fecha_inicio" json:"fecha_inicio"`
	To       string `form:"fecha_fin" json:"fecha_fin"`
	Name     string `form:"nombre" json:"nombre"`
	Hostname string `form:"hostname" json:"hostname"`
	Phase    string `form:"fase" json:"fase"`
}

func (f *Filters) trim() {
	for _, p := range []*string{&f.Location, &f.Site, &f.Category, &f.Status, &f.From, &f.To, &f.Name, &f.Hostname, &f.Phase} {
		*p = strings.TrimSpace(*p)
	}
}

type Service struct {
	db    *gorm.DB
	dates normalize.DateNormalizer
}

func NewService(db *gorm.DB, dates normalize.DateNormalizer) *Service {
	return &Service{db: db, dates: dates}
}

// Normalize чистит фильтры: даты только строгим ISO, иначе фильтр снимается.
func (s *Service) Normalize(f Filters) Filters {
	f.trim()
	f.From = s.dates.CoerceISODate(f.From)
	f.To = s.dates.CoerceISODate(f.To)
	return f
}

func (s *Service) Query(ctx context.Context, f Filters) ([]models.Equipment, error) {
	f = s.Normalize(f)
	q := s.db.WithContext(ctx).Model(&models.Equipment{})

	if f.Location != "" {
		q = q.Where("ubicacion = ?", f.Location)
	}
	if f.Site != "" {
		q = q.Where("nom_sede = ?", f.Site)
	}
	if f.Category != "" {
		q = q.Where("categoria_trab = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("UPPER(estado) = UPPER(?)", f.Status)
	}
	if f.From != "" {
		q = q.Where("fecha_estado >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("fecha_estado <= ?", f.To)
	}
	if f.Name != "" {
		q = q.Where("UPPER(nombre_completo) LIKE UPPER(?)", "%"+f.Name+"%")
	}
	if f.Hostname != "" {
		q = q.Where("hostname LIKE ?", "%"+f.Hostname+"%")
	}
	// неизвестная фаза фильтр не применяет
	if phase, ok := dashboard.PhaseByKey(f.Phase); ok {
		or := s.db.Where("UPPER(categoria_trab) LIKE UPPER(?)", "%"+phase.Categories[0]+"%")
		for _, cat := range phase.Categories[1:] {
			or = or.Or("UPPER(categoria_trab) LIKE UPPER(?)", "%"+cat+"%")
		}
		q = q.Where(or)
	}

	var out []models.Equipment
	err := q.Order("last_updated DESC").Order("id DESC").Find(&out).Error
	return out, errors.Wrap(err, "query equipment")
}

var filterColumns = map[string]struct{}{
	"ubicacion":      {},
	"nom_sede":       {},
	"categoria_trab": {},
}

// FilterOptions возвращает отсортированные непустые значения колонки для выпадающих списков.
func (s *Service) FilterOptions(ctx context.Context, column string) ([]string, error) {
	if _, ok := filterColumns[column]; !ok {
		return nil, errors.Errorf("column %q is not filterable", column)
	}
	var out []string
	err := s.db.WithContext(ctx).Model(&models.Equipment{}).
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Distinct(column).
		Order(column).
		Pluck(column, &out).Error
	return out, errors.Wrapf(err, "load %s options", column)
}

func (s *Service) BySerial(ctx context.Context, serial string) (*models.Equipment, error) {
	var e models.Equipment
	err := s.db.WithContext(ctx).Where("serial_num = ?", strings.TrimSpace(serial)).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load equipment")
	}
	return &e, nil
}

// WithSerial возвращает оборудование с заполненным серийным номером, для выбора в формах.
func (s *Service) WithSerial(ctx context.Context) ([]models.Equipment, error) {
	var out []models.Equipment
	err := s.db.WithContext(ctx).
		Where("serial_num IS NOT NULL AND serial_num <> ''").
		Order("hostname").
		Find(&out).Error
	return out, errors.Wrap(err, "list equipment with serial")
}

// OwnerNames возвращает имя пользователя по серийному номеру, для отчётов.
func (s *Service) OwnerNames(ctx context.Context) (map[string]string, error) {
	records, err := s.WithSerial(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(records))
	for _, r := range records {
		out[r.Serial] = r.FullName
	}
	return out, nil
}

type FilterOption struct {
	Options  []string `json:"options"`
	Selected string   `json:"selected"`
}

type Summary struct {
	dashboard.EquipmentSummary
	PhaseCounts   map[string]int          `json:"fase_counts"`
	Phases        []dashboard.Phase       `json:"fase_options"`
	StatusCatalog []string                `json:"status_catalog"`
	Filters       map[string]FilterOption `json:"filters"`
	Applied       Filters                 `json:"applied_filters"`
}

// Summary собирает данные главного дашборда для набора фильтров.
func (s *Service) Summary(ctx context.Context, f Filters) (*Summary, error) {
	f = s.Normalize(f)
	records, err := s.Query(ctx, f)
	if err != nil {
		return nil, err
	}

	out := &Summary{
		EquipmentSummary: dashboard.SummarizeEquipment(records, f.Name != ""),
		PhaseCounts:      dashboard.PhaseCounts(records),
		Phases:           dashboard.Phases,
		StatusCatalog:    models.EquipmentStatuses,
		Filters:          make(map[string]FilterOption),
		Applied:          f,
	}

	selected := map[string]string{
		"ubicacion":      f.Location,
		"nom_sede":       f.Site,
		"categoria_trab": f.Category,
	}
	for column, sel := range selected {
		opts, err := s.FilterOptions(ctx, column)
		if err != nil {
			return nil, err
		}
		out.Filters[column] = FilterOption{Options: opts, Selected: sel}
	}
	out.Filters["estado"] = FilterOption{Options: models.EquipmentStatuses, Selected: f.Status}
	return out, nil
}
