package domain

// ChannelSummary consolida uma combinação loja×canal para o painel de
// performance. VolumeShare é o percentual da quantidade do grupo sobre o
// total da loja. Médias ficam nulas quando a quantidade do grupo é zero.
type ChannelSummary struct {
	Store         string   `json:"store"`
	Channel       string   `json:"channel"`
	Quantity      int      `json:"quantity"`
	Revenue       float64  `json:"revenue"`
	Profit        float64  `json:"profit"`
	VolumeShare   *float64 `json:"volume_share"`
	AverageTicket *float64 `json:"average_ticket"`
	AverageProfit *float64 `json:"average_profit"`
}

// StoreVolume alimenta os gráficos de dispersão volume × médias.
// VolumeShare aqui é o percentual sobre a quantidade total filtrada.
type StoreVolume struct {
	Store         string   `json:"store"`
	Quantity      int      `json:"quantity"`
	VolumeShare   *float64 `json:"volume_share"`
	AverageTicket *float64 `json:"average_ticket"`
	AverageProfit *float64 `json:"average_profit"`
}

// StoreYoY é uma linha da tabela comparativa ano corrente × ano anterior
type StoreYoY struct {
	Store    string         `json:"store"`
	Quantity *YoYComparison `json:"quantity"`
	Revenue  *YoYComparison `json:"revenue"`
	Profit   *YoYComparison `json:"profit"`
}
