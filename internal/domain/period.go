package domain

import (
	"fmt"
	"time"
)

// Period é o par (mês, ano) usado como chave das metas
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (p Period) String() string {
	return fmt.Sprintf("%02d-%d", p.Month, p.Year)
}

// Before compara cronologicamente (ano, mês)
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// PeriodFilter reúne os parâmetros opcionais de período aceitos pelos relatórios
type PeriodFilter struct {
	StartMonth *int
	StartYear  *int
	EndMonth   *int
	EndYear    *int
	Month      *int
	Year       *int
}

func (f PeriodFilter) hasRange() bool {
	return f.StartMonth != nil && f.StartYear != nil && f.EndMonth != nil && f.EndYear != nil
}

func (f PeriodFilter) hasSinglePeriod() bool {
	return f.Month != nil && f.Year != nil
}

func (f PeriodFilter) IsEmpty() bool {
	return !f.hasRange() && !f.hasSinglePeriod() && f.Year == nil
}

// DefaultWindow é a janela usada quando nenhum filtro é informado
type DefaultWindow int

const (
	DefaultYear DefaultWindow = iota
	DefaultMonth
)

// ResolvedPeriod é a janela contínua de transações mais os períodos discretos das metas
type ResolvedPeriod struct {
	Start   time.Time `json:"startDate"`
	End     time.Time `json:"endDate"`
	Periods []Period  `json:"periods"`
}

// EndExclusive é o primeiro instante fora da janela (o último dia é inclusivo)
func (r ResolvedPeriod) EndExclusive() time.Time {
	return r.End.AddDate(0, 0, 1)
}

func (r ResolvedPeriod) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(r.Start) && t.Before(r.EndExclusive())
}

func (r ResolvedPeriod) IsEmpty() bool {
	return len(r.Periods) == 0
}

// ResolvePeriod converte o filtro em janela + lista de períodos.
// Prioridade: intervalo completo, mês/ano, apenas ano, padrão do chamador.
// Intervalos invertidos não são rejeitados: resultam em lista de períodos vazia.
func ResolvePeriod(f PeriodFilter, def DefaultWindow, now time.Time) ResolvedPeriod {
	now = now.UTC()

	var start, end time.Time
	switch {
	case f.hasRange():
		start = firstDayOfMonth(*f.StartYear, *f.StartMonth)
		end = lastDayOfMonth(*f.EndYear, *f.EndMonth)
	case f.hasSinglePeriod():
		start = firstDayOfMonth(*f.Year, *f.Month)
		end = lastDayOfMonth(*f.Year, *f.Month)
	case f.Year != nil:
		start = firstDayOfMonth(*f.Year, 1)
		end = lastDayOfMonth(*f.Year, 12)
	case def == DefaultMonth:
		start = firstDayOfMonth(now.Year(), int(now.Month()))
		end = lastDayOfMonth(now.Year(), int(now.Month()))
	default:
		start = firstDayOfMonth(now.Year(), 1)
		end = lastDayOfMonth(now.Year(), 12)
	}

	return ResolvedPeriod{
		Start:   start,
		End:     end,
		Periods: enumeratePeriods(start, end),
	}
}

func enumeratePeriods(start, end time.Time) []Period {
	periods := make([]Period, 0)
	for cursor := firstDayOfMonth(start.Year(), int(start.Month())); !cursor.After(end); cursor = cursor.AddDate(0, 1, 0) {
		periods = append(periods, PeriodOf(cursor))
	}
	return periods
}

func firstDayOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName devolve o rótulo do mês usado nos relatórios mensais
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}
