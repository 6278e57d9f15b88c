package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Snapshot(t *testing.T) {
	service := NewService()

	records := []*domain.SalesRecord{
		{Store: "Loja A", Date: day(2023, 3, 10), Revenue: 100},
		{Store: "Loja A", Date: day(2023, 8, 10), Revenue: 50}, // depois da referência deslocada
		{Store: "Loja A", Date: day(2024, 2, 5), Revenue: 180},
		{Store: "Loja B", Date: day(2024, 5, 20), Revenue: 70},
		{Store: "Loja B", Date: day(2024, 9, 1), Revenue: 999}, // depois da referência
	}

	snapshot := service.Snapshot(records, domain.MeasureRevenue, day(2024, 6, 30))

	assert.Equal(t, domain.MeasureRevenue, snapshot.Measure)
	assert.Equal(t, 1399.0, snapshot.Total)
	assert.Equal(t, 250.0, snapshot.YTD)      // 180 + 70
	assert.Equal(t, 100.0, snapshot.PriorYTD) // só o registro até 30/06/2023
	assert.NotNil(t, snapshot.YoY)
	assert.Equal(t, 150.0, snapshot.YoY.Difference)
	assert.NotNil(t, snapshot.YoY.Percentage)
	assert.InDelta(t, 150.0, *snapshot.YoY.Percentage, 0.001)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		validate func(t *testing.T, result *domain.YoYComparison)
	}{
		{
			name:     "Crescimento com base anterior positiva",
			current:  120,
			previous: 100,
			validate: func(t *testing.T, result *domain.YoYComparison) {
				assert.Equal(t, 20.0, result.Difference)
				assert.NotNil(t, result.Percentage)
				assert.InDelta(t, 20.0, *result.Percentage, 0.001)
			},
		},
		{
			name:     "Base anterior zero deixa o percentual nulo",
			current:  80,
			previous: 0,
			validate: func(t *testing.T, result *domain.YoYComparison) {
				assert.Equal(t, 80.0, result.Difference)
				assert.Nil(t, result.Percentage)
			},
		},
		{
			name:     "Queda gera percentual negativo",
			current:  50,
			previous: 100,
			validate: func(t *testing.T, result *domain.YoYComparison) {
				assert.Equal(t, -50.0, result.Difference)
				assert.NotNil(t, result.Percentage)
				assert.InDelta(t, -50.0, *result.Percentage, 0.001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Compare(tt.current, tt.previous))
		})
	}
}

func TestWeekStart(t *testing.T) {
	// 2024-06-30 é domingo; a semana ISO começa na segunda 2024-06-24
	assert.Equal(t, day(2024, 6, 24), WeekStart(day(2024, 6, 30)))
	// Segunda-feira é o próprio início da semana
	assert.Equal(t, day(2024, 6, 24), WeekStart(day(2024, 6, 24)))
	// Horário é descartado
	assert.Equal(t, day(2024, 6, 24), WeekStart(time.Date(2024, 6, 26, 15, 30, 0, 0, time.UTC)))
}

func TestService_WeeklySeries(t *testing.T) {
	service := NewService()

	records := []*domain.SalesRecord{
		{Store: "Loja A", Date: day(2024, 6, 24), Quantity: 3}, // segunda
		{Store: "Loja B", Date: day(2024, 6, 26), Quantity: 2}, // mesma semana
		{Store: "Loja A", Date: day(2024, 7, 1), Quantity: 5},  // semana seguinte
	}

	points := service.WeeklySeries(records, domain.MeasureSales)

	assert.Len(t, points, 2)
	assert.Equal(t, day(2024, 6, 24), points[0].WeekStart)
	assert.Equal(t, 5.0, points[0].Value)
	assert.Equal(t, day(2024, 7, 1), points[1].WeekStart)
	assert.Equal(t, 5.0, points[1].Value)

	// A soma das semanas preserva o total da medida
	var total float64
	for _, p := range points {
		total += p.Value
	}
	assert.Equal(t, 10.0, total)
}

func TestService_WeeklySeriesByStore(t *testing.T) {
	service := NewService()

	records := []*domain.SalesRecord{
		{Store: "Loja B", Date: day(2024, 6, 25), Revenue: 40},
		{Store: "Loja A", Date: day(2024, 6, 24), Revenue: 100},
		{Store: "Loja A", Date: day(2024, 7, 2), Revenue: 60},
	}

	series := service.WeeklySeriesByStore(records, domain.MeasureRevenue)

	assert.Len(t, series, 2)
	assert.Equal(t, "Loja A", series[0].Store)
	assert.Len(t, series[0].Points, 2)
	assert.Equal(t, "Loja B", series[1].Store)
	assert.Len(t, series[1].Points, 1)
	assert.Equal(t, 40.0, series[1].Points[0].Value)
}
