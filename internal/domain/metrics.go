package domain

import "time"

// YoYComparison compara o acumulado do ano corrente com o mesmo período do
// ano anterior. Percentage fica nulo quando o acumulado anterior é zero,
// já que a variação é indefinida nesse caso.
type YoYComparison struct {
	CurrentValue  float64  `json:"current_value"`
	PreviousValue float64  `json:"previous_value"`
	Difference    float64  `json:"difference"`
	Percentage    *float64 `json:"percentage"`
}

// MetricSnapshot agrega os indicadores exibidos nos cards de um painel
type MetricSnapshot struct {
	Measure  Measure        `json:"measure"`
	Total    float64        `json:"total"`
	YTD      float64        `json:"ytd"`
	PriorYTD float64        `json:"prior_ytd"`
	YoY      *YoYComparison `json:"yoy"`
}

// WeeklyPoint é um ponto da série semanal, ancorado na segunda-feira da
// semana ISO correspondente
type WeeklyPoint struct {
	WeekStart time.Time `json:"week_start"`
	Value     float64   `json:"value"`
}

// StoreWeeklySeries é a série semanal de uma loja específica
type StoreWeeklySeries struct {
	Store  string        `json:"store"`
	Points []WeeklyPoint `json:"points"`
}
