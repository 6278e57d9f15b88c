package nixtla

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/forecast-venus-api/infrastructure/integrator/nixtla/nixtlaclient"
	"github.com/vfg2006/forecast-venus-api/internal/config"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
)

const timestampLayout = "2006-01-02"

// Integrator projeta séries semanais através da API da Nixtla (TimeGPT).
type Integrator struct {
	client nixtlaclient.Client
	config *config.Config
}

func NewIntegrator(cfg *config.Config, client nixtlaclient.Client) *Integrator {
	return &Integrator{
		client: client,
		config: cfg,
	}
}

func (i *Integrator) Name() string {
	return "nixtla:" + i.config.Nixtla.Model
}

func (i *Integrator) Forecast(ctx context.Context, history []domain.SeriesPoint, horizon int) ([]domain.SeriesPoint, error) {
	timestamps := make([]string, 0, len(history))
	values := make([]float64, 0, len(history))

	for _, point := range history {
		timestamps = append(timestamps, point.Date.Format(timestampLayout))
		values = append(values, point.Value)
	}

	response, err := i.client.Forecast(ctx, nixtlaclient.ForecastParams{
		Model:      i.config.Nixtla.Model,
		Frequency:  "W",
		Horizon:    horizon,
		Timestamps: timestamps,
		Values:     values,
	})
	if err != nil {
		return nil, errors.Wrap(err, "falha na chamada ao serviço de projeção")
	}

	if len(response.Values) != len(response.Timestamps) {
		return nil, errors.New("resposta do serviço de projeção inconsistente")
	}

	points := make([]domain.SeriesPoint, 0, len(response.Values))

	for idx, value := range response.Values {
		date, err := time.Parse(timestampLayout, response.Timestamps[idx])
		if err != nil {
			return nil, errors.Wrapf(err, "timestamp inválido na resposta: %q", response.Timestamps[idx])
		}

		points = append(points, domain.SeriesPoint{
			Date:       date,
			Value:      value,
			IsForecast: true,
		})
	}

	return points, nil
}
