package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/forecast-venus-api/internal/domain"
)

// Colunas esperadas da origem tabular, na ordem definida pelo cabeçalho
const (
	columnStore      = "loja"
	columnClientType = "tipoCliente"
	columnChannel    = "canal"
	columnDate       = "data"
	columnQuantity   = "qtde"
	columnRevenue    = "totalVendido"
	columnProfit     = "lucro"
)

// Datas chegam no formato brasileiro, dia primeiro
const dateLayout = "02/01/2006"

var requiredColumns = []string{
	columnStore,
	columnClientType,
	columnChannel,
	columnDate,
	columnQuantity,
	columnRevenue,
	columnProfit,
}

// columnIndex mapeia o cabeçalho da origem para a posição de cada coluna
// esperada. Cabeçalho sem alguma coluna obrigatória falha a carga inteira.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("coluna obrigatória %q ausente no cabeçalho", column)
		}
	}

	return index, nil
}

// parseRecord converte uma linha da origem em SalesRecord. line é o número
// da linha na origem, usado nas mensagens de erro.
func parseRecord(index map[string]int, row []string, line int) (*domain.SalesRecord, error) {
	field := func(column string) string {
		i := index[column]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	store := field(columnStore)
	if store == "" {
		return nil, fmt.Errorf("linha %d: loja vazia", line)
	}

	channel, err := parseChannel(field(columnChannel))
	if err != nil {
		return nil, fmt.Errorf("linha %d: %w", line, err)
	}

	date, err := time.Parse(dateLayout, field(columnDate))
	if err != nil {
		return nil, fmt.Errorf("linha %d: data inválida %q", line, field(columnDate))
	}

	quantity, err := strconv.Atoi(field(columnQuantity))
	if err != nil {
		return nil, fmt.Errorf("linha %d: quantidade inválida %q", line, field(columnQuantity))
	}

	revenue, err := parseDecimal(field(columnRevenue))
	if err != nil {
		return nil, fmt.Errorf("linha %d: receita inválida %q", line, field(columnRevenue))
	}

	profit, err := parseDecimal(field(columnProfit))
	if err != nil {
		return nil, fmt.Errorf("linha %d: lucro inválido %q", line, field(columnProfit))
	}

	return &domain.SalesRecord{
		Store:      store,
		ClientType: field(columnClientType),
		Channel:    channel,
		Date:       date,
		Quantity:   quantity,
		Revenue:    revenue,
		Profit:     profit,
	}, nil
}

// parseChannel aceita o código numérico legado (0=Varejo, 1=Atacado) ou o
// nome do canal por extenso
func parseChannel(value string) (string, error) {
	switch value {
	case "0", domain.ChannelRetail:
		return domain.ChannelRetail, nil
	case "1", domain.ChannelWholesale:
		return domain.ChannelWholesale, nil
	}
	return "", fmt.Errorf("canal desconhecido %q", value)
}

// parseDecimal interpreta números no formato brasileiro: ponto como
// separador de milhar e vírgula como separador decimal
func parseDecimal(value string) (float64, error) {
	if value == "" {
		return 0, fmt.Errorf("valor vazio")
	}

	normalized := strings.ReplaceAll(value, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	return strconv.ParseFloat(normalized, 64)
}
