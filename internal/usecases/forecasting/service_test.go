package forecasting_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/forecast-venus-api/internal/config"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/forecasting"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

func weeklyHistory(n int) []domain.SeriesPoint {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]domain.SeriesPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, domain.SeriesPoint{
			Date:  start.AddDate(0, 0, i*7),
			Value: float64(100 + i*10),
		})
	}
	return points
}

func testConfig() *config.Config {
	return &config.Config{
		Forecast: config.Forecast{
			Horizon:         4,
			MinObservations: 3,
		},
	}
}

func TestService_Project(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		history  []domain.SeriesPoint
		horizon  int
		setup    func(model *mocks.MockForecaster)
		validate func(t *testing.T, result *domain.ForecastResult, err error)
	}{
		{
			name:    "Horizonte zero usa o valor configurado",
			history: weeklyHistory(6),
			horizon: 0,
			setup: func(model *mocks.MockForecaster) {
				model.EXPECT().
					Forecast(gomock.Any(), gomock.Any(), 4).
					Return(weeklyHistory(4), nil)
				model.EXPECT().Name().Return("modelo-teste").AnyTimes()
			},
			validate: func(t *testing.T, result *domain.ForecastResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 4, result.Horizon)
				assert.Len(t, result.Points, 4)
				assert.Equal(t, "modelo-teste", result.Model)
			},
		},
		{
			name:    "Histórico abaixo do mínimo falha sem invocar o modelo",
			history: weeklyHistory(2),
			horizon: 4,
			setup:   func(model *mocks.MockForecaster) {},
			validate: func(t *testing.T, result *domain.ForecastResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, forecasting.ErrInsufficientHistory)
			},
		},
		{
			name:    "Horizonte negativo é rejeitado",
			history: weeklyHistory(6),
			horizon: -1,
			setup:   func(model *mocks.MockForecaster) {},
			validate: func(t *testing.T, result *domain.ForecastResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, forecasting.ErrInvalidHorizon)
			},
		},
		{
			name:    "Pontos excedentes do modelo são truncados no horizonte",
			history: weeklyHistory(6),
			horizon: 3,
			setup: func(model *mocks.MockForecaster) {
				model.EXPECT().
					Forecast(gomock.Any(), gomock.Any(), 3).
					Return(weeklyHistory(5), nil)
				model.EXPECT().Name().Return("modelo-teste").AnyTimes()
			},
			validate: func(t *testing.T, result *domain.ForecastResult, err error) {
				assert.NoError(t, err)
				assert.Len(t, result.Points, 3)
				for _, p := range result.Points {
					assert.True(t, p.IsForecast)
				}
			},
		},
		{
			name:    "Erro do modelo é propagado",
			history: weeklyHistory(6),
			horizon: 4,
			setup: func(model *mocks.MockForecaster) {
				model.EXPECT().
					Forecast(gomock.Any(), gomock.Any(), 4).
					Return(nil, errors.New("serviço indisponível"))
				model.EXPECT().Name().Return("modelo-teste").AnyTimes()
			},
			validate: func(t *testing.T, result *domain.ForecastResult, err error) {
				assert.Nil(t, result)
				assert.Error(t, err)
				assert.NotErrorIs(t, err, forecasting.ErrInsufficientHistory)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := mocks.NewMockForecaster(ctrl)
			tt.setup(model)

			service := forecasting.NewService(model, testConfig())
			result, err := service.Project(context.Background(), tt.history, tt.horizon)
			tt.validate(t, result, err)
		})
	}
}
