package forecasting

import (
	"context"

	"github.com/vfg2006/forecast-venus-api/internal/domain"
)

// Forecaster é o contrato com o modelo de projeção propriamente dito
// (serviço externo ou modelo local). Recebe a série histórica ordenada e
// devolve os pontos futuros, um por período do horizonte.
type Forecaster interface {
	Name() string
	Forecast(ctx context.Context, history []domain.SeriesPoint, horizon int) ([]domain.SeriesPoint, error)
}

// Projector é a interface consumida pelo compositor de painéis
type Projector interface {
	Project(ctx context.Context, history []domain.SeriesPoint, horizon int) (*domain.ForecastResult, error)
}
