package domain

import (
	"fmt"
	"time"
)

// Canais de venda suportados pelo dataset
const (
	ChannelRetail    = "Varejo"
	ChannelWholesale = "Atacado"
)

// CompanyWide é o pseudo-valor de loja que representa a empresa inteira.
// Quando presente na seleção de lojas, o filtro de loja é desativado.
const CompanyWide = "Empresa"

// SalesRecord representa uma observação de venda carregada do dataset.
// Registros são imutáveis depois de carregados.
type SalesRecord struct {
	Store      string    `json:"store"`
	ClientType string    `json:"client_type"`
	Channel    string    `json:"channel"`
	Date       time.Time `json:"date"`
	Quantity   int       `json:"quantity"`
	Revenue    float64   `json:"revenue"`
	Profit     float64   `json:"profit"`
}

// Measure identifica qual medida do registro é agregada nos painéis
type Measure string

const (
	MeasureSales   Measure = "sales"
	MeasureRevenue Measure = "revenue"
	MeasureProfit  Measure = "profit"
)

// ParseMeasure valida o identificador de medida vindo da rota
func ParseMeasure(s string) (Measure, error) {
	switch Measure(s) {
	case MeasureSales, MeasureRevenue, MeasureProfit:
		return Measure(s), nil
	}
	return "", fmt.Errorf("medida desconhecida: %q", s)
}

// ValueOf extrai do registro o valor da medida
func (m Measure) ValueOf(r *SalesRecord) float64 {
	switch m {
	case MeasureSales:
		return float64(r.Quantity)
	case MeasureRevenue:
		return r.Revenue
	case MeasureProfit:
		return r.Profit
	}
	return 0
}
