package forecasting

import (
	"context"
	"time"

	"github.com/vfg2006/forecast-venus-api/internal/domain"
)

// HoltModel é o modelo local de projeção: suavização exponencial dupla com
// tendência linear aditiva. Serve de fallback quando o serviço externo de
// forecasting não está configurado.
type HoltModel struct {
	Alpha float64
	Beta  float64
}

func NewHoltModel() *HoltModel {
	return &HoltModel{
		Alpha: 0.5,
		Beta:  0.3,
	}
}

func (m *HoltModel) Name() string {
	return "holt-linear"
}

// Forecast ajusta nível e tendência sobre o histórico e extrapola o
// horizonte pedido, mantendo a cadência entre os dois últimos pontos.
func (m *HoltModel) Forecast(_ context.Context, history []domain.SeriesPoint, horizon int) ([]domain.SeriesPoint, error) {
	if len(history) < 2 {
		return nil, ErrInsufficientHistory
	}

	level := history[0].Value
	trend := history[1].Value - history[0].Value

	for _, point := range history[1:] {
		previousLevel := level
		level = m.Alpha*point.Value + (1-m.Alpha)*(level+trend)
		trend = m.Beta*(level-previousLevel) + (1-m.Beta)*trend
	}

	step := history[len(history)-1].Date.Sub(history[len(history)-2].Date)
	if step <= 0 {
		step = 7 * 24 * time.Hour
	}

	lastDate := history[len(history)-1].Date
	points := make([]domain.SeriesPoint, 0, horizon)
	for i := 1; i <= horizon; i++ {
		value := level + trend*float64(i)
		if value < 0 {
			value = 0
		}
		points = append(points, domain.SeriesPoint{
			Date:       lastDate.Add(step * time.Duration(i)),
			Value:      value,
			IsForecast: true,
		})
	}

	return points, nil
}
