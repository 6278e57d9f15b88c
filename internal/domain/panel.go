package domain

import "time"

// DatasetInfo resume o conjunto filtrado exibido em um painel
type DatasetInfo struct {
	Records    int        `json:"records"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	StoreCount int        `json:"store_count"`
}

// MetricPanel é a resposta dos painéis de vendas, receita e lucro.
// Series contém o histórico semanal seguido dos pontos projetados; ByStore
// é preenchido quando o painel exibe uma série por loja.
type MetricPanel struct {
	Measure  Measure             `json:"measure"`
	Snapshot *MetricSnapshot     `json:"snapshot"`
	Series   []SeriesPoint       `json:"series"`
	ByStore  []StoreWeeklySeries `json:"by_store,omitempty"`
	Forecast *ForecastResult     `json:"forecast,omitempty"`
	Info     DatasetInfo         `json:"info"`
	Notices  []string            `json:"notices,omitempty"`
}

// PerformancePanel é a resposta do painel de performance das lojas
type PerformancePanel struct {
	Distribution []ChannelSummary `json:"distribution"`
	StoreVolumes []StoreVolume    `json:"store_volumes"`
	YoYByStore   []StoreYoY       `json:"yoy_by_store"`
	Info         DatasetInfo      `json:"info"`
	Notices      []string         `json:"notices,omitempty"`
}
