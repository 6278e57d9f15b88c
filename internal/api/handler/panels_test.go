package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
)

// stubComposer registra os argumentos recebidos e devolve painéis fixos
type stubComposer struct {
	lastMeasure   domain.Measure
	lastSelection *domain.FilterSelection
	lastReference time.Time
	lastHorizon   int
	performance   bool
}

func (s *stubComposer) FilterOptions() *domain.FilterOptions {
	return &domain.FilterOptions{Stores: []string{"Loja A"}}
}

func (s *stubComposer) MetricPanel(_ context.Context, measure domain.Measure, selection *domain.FilterSelection, reference time.Time, horizon int) (*domain.MetricPanel, error) {
	s.lastMeasure = measure
	s.lastSelection = selection
	s.lastReference = reference
	s.lastHorizon = horizon
	return &domain.MetricPanel{Measure: measure}, nil
}

func (s *stubComposer) PerformancePanel(_ context.Context, selection *domain.FilterSelection, reference time.Time) (*domain.PerformancePanel, error) {
	s.performance = true
	s.lastSelection = selection
	s.lastReference = reference
	return &domain.PerformancePanel{}, nil
}

func servePanel(t *testing.T, composer *stubComposer, target string) *httptest.ResponseRecorder {
	t.Helper()

	router := httprouter.New()
	router.Handler(http.MethodGet, "/v1/panels/:panel", GetPanel(composer))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestGetPanel(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		validate func(t *testing.T, composer *stubComposer, recorder *httptest.ResponseRecorder)
	}{
		{
			name:   "Medida com filtros completos",
			target: "/v1/panels/revenue?stores=Loja%20A,Loja%20B&client_types=Novo&start_date=2024-01-01&end_date=2024-06-30&reference_date=2024-06-30&horizon=8",
			validate: func(t *testing.T, composer *stubComposer, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.Equal(t, domain.MeasureRevenue, composer.lastMeasure)
				assert.Equal(t, []string{"Loja A", "Loja B"}, composer.lastSelection.Stores)
				assert.Equal(t, []string{"Novo"}, composer.lastSelection.ClientTypes)
				assert.NotNil(t, composer.lastSelection.StartDate)
				assert.Equal(t, 8, composer.lastHorizon)
				assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), composer.lastReference)
			},
		},
		{
			name:   "Sem parâmetros usa seleção vazia",
			target: "/v1/panels/sales",
			validate: func(t *testing.T, composer *stubComposer, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.Equal(t, domain.MeasureSales, composer.lastMeasure)
				assert.True(t, composer.lastSelection.IsEmpty())
				assert.True(t, composer.lastReference.IsZero())
				assert.Equal(t, 0, composer.lastHorizon)
			},
		},
		{
			name:   "Segmento performance resolve o painel comparativo",
			target: "/v1/panels/performance?stores=Loja%20A",
			validate: func(t *testing.T, composer *stubComposer, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.True(t, composer.performance)
				assert.Equal(t, []string{"Loja A"}, composer.lastSelection.Stores)
			},
		},
		{
			name:   "Painel desconhecido devolve 400",
			target: "/v1/panels/margem",
			validate: func(t *testing.T, composer *stubComposer, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)

				var apiErr map[string]any
				assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
				assert.Equal(t, "VAL_003", apiErr["code"])
			},
		},
		{
			name:   "Data inválida devolve 400",
			target: "/v1/panels/sales?start_date=01-01-2024",
			validate: func(t *testing.T, composer *stubComposer, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:   "Intervalo invertido devolve 400",
			target: "/v1/panels/sales?start_date=2024-06-30&end_date=2024-01-01",
			validate: func(t *testing.T, composer *stubComposer, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:   "Horizonte não numérico devolve 400",
			target: "/v1/panels/sales?horizon=muitas",
			validate: func(t *testing.T, composer *stubComposer, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			composer := &stubComposer{}
			recorder := servePanel(t, composer, tt.target)
			tt.validate(t, composer, recorder)
		})
	}
}

func TestGetFilterOptions(t *testing.T) {
	router := httprouter.New()
	router.Handler(http.MethodGet, "/v1/filters", GetFilterOptions(&stubComposer{}))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/filters", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var options domain.FilterOptions
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &options))
	assert.Equal(t, []string{"Loja A"}, options.Stores)
}
