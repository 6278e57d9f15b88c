package forecasting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
)

func series(values ...float64) []domain.SeriesPoint {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]domain.SeriesPoint, 0, len(values))
	for i, v := range values {
		points = append(points, domain.SeriesPoint{
			Date:  start.AddDate(0, 0, i*7),
			Value: v,
		})
	}
	return points
}

func TestHoltModel_Forecast(t *testing.T) {
	model := NewHoltModel()
	ctx := context.Background()

	t.Run("Série crescente projeta valores acima do último ponto", func(t *testing.T) {
		history := series(100, 110, 120, 130, 140, 150)

		points, err := model.Forecast(ctx, history, 4)

		assert.NoError(t, err)
		assert.Len(t, points, 4)

		last := history[len(history)-1]
		for i, p := range points {
			assert.True(t, p.IsForecast)
			assert.Greater(t, p.Value, last.Value)
			assert.Equal(t, last.Date.AddDate(0, 0, (i+1)*7), p.Date)
		}

		// A tendência se mantém crescente entre os pontos projetados
		for i := 1; i < len(points); i++ {
			assert.Greater(t, points[i].Value, points[i-1].Value)
		}
	})

	t.Run("Série decrescente não projeta valores negativos", func(t *testing.T) {
		history := series(50, 40, 30, 20, 10, 5)

		points, err := model.Forecast(ctx, history, 8)

		assert.NoError(t, err)
		for _, p := range points {
			assert.GreaterOrEqual(t, p.Value, 0.0)
		}
	})

	t.Run("Histórico com menos de dois pontos falha", func(t *testing.T) {
		_, err := model.Forecast(ctx, series(100), 4)
		assert.ErrorIs(t, err, ErrInsufficientHistory)
	})
}
