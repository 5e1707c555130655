package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// FilterSet é o conjunto normalizado de restrições aplicado a todas as consultas de uma requisição.
// Datas nulas significam ausência do predicado correspondente.
type FilterSet struct {
	StartDate *time.Time
	EndDate   *time.Time
	StoreIDs  []int
}

// NewFilterSet copia as entradas para que o FilterSet não compartilhe memória com quem chamou
func NewFilterSet(startDate, endDate *time.Time, storeIDs []int) FilterSet {
	filters := FilterSet{
		StartDate: copyDate(startDate),
		EndDate:   copyDate(endDate),
	}

	if len(storeIDs) > 0 {
		ids := slices.Clone(storeIDs)
		slices.Sort(ids)
		filters.StoreIDs = slices.Compact(ids)
	}

	return filters
}

// HasStores indica se o filtro de lojas deve ser aplicado
func (f FilterSet) HasStores() bool {
	return len(f.StoreIDs) > 0
}

// Days retorna a quantidade de dias do intervalo, contando início e fim
func (f FilterSet) Days() int {
	if f.StartDate == nil || f.EndDate == nil {
		return 0
	}
	return int(f.EndDate.Sub(*f.StartDate).Hours()/24) + 1
}

func (f FilterSet) String() string {
	var b strings.Builder
	b.WriteString("start=")
	b.WriteString(formatDate(f.StartDate))
	b.WriteString(" end=")
	b.WriteString(formatDate(f.EndDate))
	if f.HasStores() {
		fmt.Fprintf(&b, " stores=%v", f.StoreIDs)
	}
	return b.String()
}

// Date trunca o instante para a data de calendário em UTC
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CalendarDate converte um instante em qualquer fuso para a data de calendário correspondente
func CalendarDate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

func copyDate(date *time.Time) *time.Time {
	if date == nil {
		return nil
	}
	d := CalendarDate(*date)
	return &d
}

func formatDate(date *time.Time) string {
	if date == nil {
		return "-"
	}
	return date.Format(time.DateOnly)
}

// Granularity define o agrupamento temporal das tendências de vendas
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity aceita day, week ou month; vazio significa day
func ParseGranularity(value string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(value))); g {
	case "":
		return GranularityDay, nil
	case GranularityDay, GranularityWeek, GranularityMonth:
		return g, nil
	default:
		return "", fmt.Errorf("%w: período inválido %q, use day, week ou month", ErrInvalidInput, value)
	}
}
