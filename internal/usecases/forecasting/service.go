package forecasting

import (
	"context"
	"fmt"

	"github.com/vfg2006/forecast-venus-api/internal/config"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
	"github.com/vfg2006/forecast-venus-api/pkg/log"
)

// Service adapta o modelo de projeção ao contrato dos painéis: valida o
// histórico antes de invocar o modelo, garante o comprimento do horizonte e
// marca todos os pontos devolvidos como projetados.
type Service struct {
	model           Forecaster
	defaultHorizon  int
	minObservations int
}

func NewService(model Forecaster, cfg *config.Config) *Service {
	return &Service{
		model:           model,
		defaultHorizon:  cfg.Forecast.Horizon,
		minObservations: cfg.Forecast.MinObservations,
	}
}

// Project gera a projeção para a série semanal informada. Horizonte zero
// usa o valor configurado. Séries mais curtas que o mínimo configurado
// falham com ErrInsufficientHistory sem invocar o modelo.
func (s *Service) Project(ctx context.Context, history []domain.SeriesPoint, horizon int) (*domain.ForecastResult, error) {
	if horizon == 0 {
		horizon = s.defaultHorizon
	}
	if horizon < 0 {
		return nil, ErrInvalidHorizon
	}

	if len(history) < s.minObservations {
		log.ForContext(ctx).WithFields(log.Fields{
			"observations": len(history),
			"minimum":      s.minObservations,
		}).Info("forecasting: histórico abaixo do mínimo, projeção não gerada")
		return nil, ErrInsufficientHistory
	}

	points, err := s.model.Forecast(ctx, history, horizon)
	if err != nil {
		return nil, fmt.Errorf("erro ao invocar o modelo %s: %w", s.model.Name(), err)
	}

	if len(points) < horizon {
		return nil, fmt.Errorf("modelo %s devolveu %d pontos para horizonte %d", s.model.Name(), len(points), horizon)
	}
	points = points[:horizon]

	// O contrato do painel exige todos os pontos marcados como projeção
	for i := range points {
		points[i].IsForecast = true
	}

	return &domain.ForecastResult{
		Model:   s.model.Name(),
		Horizon: horizon,
		Points:  points,
	}, nil
}
