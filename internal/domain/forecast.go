package domain

import "time"

// SeriesPoint é um ponto observado ou previsto da série temporal de um painel
type SeriesPoint struct {
	Date       time.Time `json:"date"`
	Value      float64   `json:"value"`
	IsForecast bool      `json:"is_forecast"`
}

// ForecastResult é a saída do adaptador de forecasting. Points é imutável
// depois de gerado e tem exatamente Horizon pontos, todos com
// IsForecast=true.
type ForecastResult struct {
	Model   string        `json:"model"`
	Horizon int           `json:"horizon"`
	Points  []SeriesPoint `json:"points"`
}
