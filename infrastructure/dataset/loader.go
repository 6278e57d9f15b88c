package dataset

import (
	"context"

	"github.com/vfg2006/forecast-venus-api/internal/domain"
)

// Loader carrega o conjunto completo de registros de venda da origem
// configurada (arquivo CSV, planilha XLSX ou banco de dados).
// A carga falha por inteiro na primeira linha malformada; não há carga
// parcial.
type Loader interface {
	Load(ctx context.Context) ([]*domain.SalesRecord, error)
}
