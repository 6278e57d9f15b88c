package aggregating

import (
	"sort"
	"time"

	"github.com/vfg2006/forecast-venus-api/internal/domain"
)

// Aggregator calcula os indicadores e as séries semanais de uma medida
// sobre o conjunto já filtrado
type Aggregator interface {
	Snapshot(records []*domain.SalesRecord, measure domain.Measure, reference time.Time) *domain.MetricSnapshot
	WeeklySeries(records []*domain.SalesRecord, measure domain.Measure) []domain.WeeklyPoint
	WeeklySeriesByStore(records []*domain.SalesRecord, measure domain.Measure) []domain.StoreWeeklySeries
}

type Service struct{}

func NewService() Aggregator {
	return &Service{}
}

// Snapshot calcula o total acumulado do período filtrado, o YTD do ano da
// data de referência, o YTD equivalente do ano anterior e a variação YoY.
// A variação fica nula quando o YTD anterior é zero.
func (s *Service) Snapshot(records []*domain.SalesRecord, measure domain.Measure, reference time.Time) *domain.MetricSnapshot {
	var total float64
	for _, record := range records {
		total += measure.ValueOf(record)
	}

	currentYTD := YTD(records, measure, reference.Year(), reference)

	// Janela equivalente do ano anterior: 1º de janeiro até a data de
	// referência deslocada um ano para trás
	priorReference := reference.AddDate(-1, 0, 0)
	priorYTD := YTD(records, measure, reference.Year()-1, priorReference)

	return &domain.MetricSnapshot{
		Measure:  measure,
		Total:    total,
		YTD:      currentYTD,
		PriorYTD: priorYTD,
		YoY:      Compare(currentYTD, priorYTD),
	}
}

// YTD soma a medida dos registros do ano informado até a data de corte, inclusive
func YTD(records []*domain.SalesRecord, measure domain.Measure, year int, cutoff time.Time) float64 {
	var sum float64
	for _, record := range records {
		if record.Date.Year() != year || record.Date.After(cutoff) {
			continue
		}
		sum += measure.ValueOf(record)
	}
	return sum
}

// Compare monta a comparação YoY entre dois acumulados. Percentage fica
// nulo quando o valor anterior é zero.
func Compare(current, previous float64) *domain.YoYComparison {
	comparison := &domain.YoYComparison{
		CurrentValue:  current,
		PreviousValue: previous,
		Difference:    current - previous,
	}

	if previous != 0 {
		percentage := (current - previous) / previous * 100
		comparison.Percentage = &percentage
	}

	return comparison
}

// WeeklySeries agrupa a medida por semana ISO (ancorada na segunda-feira)
// e devolve os pontos em ordem crescente de semana
func (s *Service) WeeklySeries(records []*domain.SalesRecord, measure domain.Measure) []domain.WeeklyPoint {
	totals := make(map[time.Time]float64)
	for _, record := range records {
		totals[WeekStart(record.Date)] += measure.ValueOf(record)
	}

	return sortedPoints(totals)
}

// WeeklySeriesByStore agrupa a medida por loja e semana ISO. As lojas são
// devolvidas em ordem alfabética.
func (s *Service) WeeklySeriesByStore(records []*domain.SalesRecord, measure domain.Measure) []domain.StoreWeeklySeries {
	totals := make(map[string]map[time.Time]float64)
	for _, record := range records {
		weeks, ok := totals[record.Store]
		if !ok {
			weeks = make(map[time.Time]float64)
			totals[record.Store] = weeks
		}
		weeks[WeekStart(record.Date)] += measure.ValueOf(record)
	}

	stores := make([]string, 0, len(totals))
	for store := range totals {
		stores = append(stores, store)
	}
	sort.Strings(stores)

	series := make([]domain.StoreWeeklySeries, 0, len(stores))
	for _, store := range stores {
		series = append(series, domain.StoreWeeklySeries{
			Store:  store,
			Points: sortedPoints(totals[store]),
		})
	}

	return series
}

// WeekStart retorna a segunda-feira da semana ISO da data, à meia-noite
func WeekStart(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func sortedPoints(totals map[time.Time]float64) []domain.WeeklyPoint {
	points := make([]domain.WeeklyPoint, 0, len(totals))
	for week, value := range totals {
		points = append(points, domain.WeeklyPoint{WeekStart: week, Value: value})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].WeekStart.Before(points[j].WeekStart)
	})

	return points
}
