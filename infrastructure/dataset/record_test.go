package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
)

func header() []string {
	return []string{"loja", "tipoCliente", "canal", "data", "qtde", "totalVendido", "lucro"}
}

func TestColumnIndex(t *testing.T) {
	index, err := columnIndex(header())
	assert.NoError(t, err)
	assert.Equal(t, 0, index["loja"])
	assert.Equal(t, 6, index["lucro"])

	_, err = columnIndex([]string{"loja", "canal"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "coluna obrigatória")
}

func TestParseRecord(t *testing.T) {
	index, err := columnIndex(header())
	assert.NoError(t, err)

	tests := []struct {
		name     string
		row      []string
		validate func(t *testing.T, record *domain.SalesRecord, err error)
	}{
		{
			name: "Linha válida com decimal brasileiro",
			row:  []string{"Loja A", "Novo", "0", "15/03/2024", "12", "1.234,56", "234,50"},
			validate: func(t *testing.T, record *domain.SalesRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Loja A", record.Store)
				assert.Equal(t, domain.ChannelRetail, record.Channel)
				assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), record.Date)
				assert.Equal(t, 12, record.Quantity)
				assert.InDelta(t, 1234.56, record.Revenue, 0.001)
				assert.InDelta(t, 234.50, record.Profit, 0.001)
			},
		},
		{
			name: "Código 1 resolve para Atacado",
			row:  []string{"Loja A", "Novo", "1", "15/03/2024", "2", "10,00", "1,00"},
			validate: func(t *testing.T, record *domain.SalesRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ChannelWholesale, record.Channel)
			},
		},
		{
			name: "Canal por extenso também é aceito",
			row:  []string{"Loja A", "Novo", "Varejo", "15/03/2024", "2", "10,00", "1,00"},
			validate: func(t *testing.T, record *domain.SalesRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ChannelRetail, record.Channel)
			},
		},
		{
			name: "Canal desconhecido falha com o número da linha",
			row:  []string{"Loja A", "Novo", "7", "15/03/2024", "2", "10,00", "1,00"},
			validate: func(t *testing.T, record *domain.SalesRecord, err error) {
				assert.Nil(t, record)
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "linha 3")
			},
		},
		{
			name: "Data fora do formato dia/mês/ano falha",
			row:  []string{"Loja A", "Novo", "0", "2024-03-15", "2", "10,00", "1,00"},
			validate: func(t *testing.T, record *domain.SalesRecord, err error) {
				assert.Nil(t, record)
				assert.Error(t, err)
			},
		},
		{
			name: "Quantidade não numérica falha",
			row:  []string{"Loja A", "Novo", "0", "15/03/2024", "doze", "10,00", "1,00"},
			validate: func(t *testing.T, record *domain.SalesRecord, err error) {
				assert.Nil(t, record)
				assert.Error(t, err)
			},
		},
		{
			name: "Loja vazia falha",
			row:  []string{"", "Novo", "0", "15/03/2024", "2", "10,00", "1,00"},
			validate: func(t *testing.T, record *domain.SalesRecord, err error) {
				assert.Nil(t, record)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := parseRecord(index, tt.row, 3)
			tt.validate(t, record, err)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	value, err := parseDecimal("1.234,56")
	assert.NoError(t, err)
	assert.InDelta(t, 1234.56, value, 0.001)

	value, err = parseDecimal("10,5")
	assert.NoError(t, err)
	assert.InDelta(t, 10.5, value, 0.001)

	_, err = parseDecimal("")
	assert.Error(t, err)
}
