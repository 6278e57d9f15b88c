package filtering

import (
	"github.com/vfg2006/forecast-venus-api/internal/domain"
)

// Filterer restringe o dataset à seleção ativa do painel
type Filterer interface {
	Apply(records []*domain.SalesRecord, selection *domain.FilterSelection) []*domain.SalesRecord
}

type Service struct{}

func NewService() Filterer {
	return &Service{}
}

// Apply retorna o subconjunto de registros que atende a todas as dimensões
// restringidas da seleção (AND entre dimensões, OR dentro de cada dimensão).
// Seleção vazia devolve o conjunto original, na mesma ordem.
func (s *Service) Apply(records []*domain.SalesRecord, selection *domain.FilterSelection) []*domain.SalesRecord {
	if selection.IsEmpty() {
		return records
	}

	stores := toSet(selection.StoreConstraint())
	clientTypes := toSet(selection.ClientTypes)

	filtered := make([]*domain.SalesRecord, 0, len(records))
	for _, record := range records {
		if !matches(record, selection, stores, clientTypes) {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}

func matches(
	record *domain.SalesRecord,
	selection *domain.FilterSelection,
	stores map[string]struct{},
	clientTypes map[string]struct{},
) bool {
	if len(stores) > 0 {
		if _, ok := stores[record.Store]; !ok {
			return false
		}
	}

	if len(clientTypes) > 0 {
		if _, ok := clientTypes[record.ClientType]; !ok {
			return false
		}
	}

	if selection.StartDate != nil && record.Date.Before(*selection.StartDate) {
		return false
	}

	if selection.EndDate != nil && record.Date.After(*selection.EndDate) {
		return false
	}

	return true
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
