package normalize

import (
	"regexp"
	"strings"
	"time"
)

const isoLayout = "2006-01-02"

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// строгие ISO-формы, пробуются до явных шаблонов
var isoLayouts = []string{
	isoLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var (
	yearFirstLayouts  = []string{"2006-1-2", "2006/1/2", "2006.1.2"}
	dayFirstLayouts   = []string{"2/1/2006", "2-1-2006"}
	monthFirstLayouts = []string{"1/2/2006", "1-2-2006"}
)

// DayFirstLayouts — порядок по умолчанию: 03/04/2025 = 3 апреля.
func DayFirstLayouts() []string {
	out := append([]string{}, yearFirstLayouts...)
	out = append(out, dayFirstLayouts...)
	return append(out, monthFirstLayouts...)
}

// MonthFirstLayouts — 03/04/2025 = 4 марта.
func MonthFirstLayouts() []string {
	out := append([]string{}, yearFirstLayouts...)
	out = append(out, monthFirstLayouts...)
	return append(out, dayFirstLayouts...)
}

type DateNormalizer struct {
	Layouts []string
}

func NewDateNormalizer(monthFirst bool) DateNormalizer {
	if monthFirst {
		return DateNormalizer{Layouts: MonthFirstLayouts()}
	}
	return DateNormalizer{Layouts: DayFirstLayouts()}
}

// Normalize возвращает дату в виде YYYY-MM-DD. Нераспознанное значение
// возвращается как есть (без пробелов по краям), пустое: как "".
func (d DateNormalizer) Normalize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	layouts := d.Layouts
	if layouts == nil {
		layouts = DayFirstLayouts()
	}

	for _, candidate := range dateCandidates(value) {
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return t.Format(isoLayout)
			}
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return t.Format(isoLayout)
			}
		}
	}
	return value
}

func dateCandidates(value string) []string {
	out := []string{value}
	if head, _, ok := strings.Cut(value, " "); ok {
		out = append(out, head)
	}
	if head, _, ok := strings.Cut(value, "T"); ok {
		out = append(out, head)
	}
	if len(value) >= 10 && strings.ContainsRune("-/.", rune(value[4])) {
		out = append(out, value[:10])
	}

	seen := make(map[string]struct{}, len(out))
	uniq := out[:0]
	for _, c := range out {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		uniq = append(uniq, c)
	}
	return uniq
}

// CoerceISODate для фильтров принимает только строгий YYYY-MM-DD, иначе "".
func (d DateNormalizer) CoerceISODate(value string) string {
	normalized := d.Normalize(value)
	if isoDateRe.MatchString(normalized) {
		return normalized
	}
	return ""
}
