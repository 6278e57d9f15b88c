package dataset

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
	"github.com/vfg2006/forecast-venus-api/pkg/log"
	"github.com/vfg2006/forecast-venus-api/pkg/utils"
)

// Store mantém em memória o snapshot corrente do dataset de vendas.
// Leituras servem os painéis; Refresh troca o snapshot inteiro de forma
// atômica, então requisições em andamento continuam enxergando a versão
// anterior até terminarem.
type Store struct {
	loader Loader

	mu       sync.RWMutex
	records  []*domain.SalesRecord
	options  *domain.FilterOptions
	version  string
	loadedAt time.Time
}

func NewStore(loader Loader) *Store {
	return &Store{loader: loader}
}

// Refresh recarrega o dataset da origem e substitui o snapshot corrente.
// Em caso de erro o snapshot anterior permanece intacto.
func (s *Store) Refresh(ctx context.Context) error {
	records, err := s.loader.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "falha ao carregar dataset")
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	options := buildFilterOptions(records)

	version, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "falha ao gerar versão do snapshot")
	}

	s.mu.Lock()
	s.records = records
	s.options = options
	s.version = version
	s.loadedAt = time.Now()
	s.mu.Unlock()

	log.L.WithFields(map[string]interface{}{
		"version": version,
		"records": len(records),
	}).Info("Snapshot do dataset atualizado")

	return nil
}

// Records devolve o snapshot corrente. O slice retornado é compartilhado
// entre leitores e não deve ser modificado.
func (s *Store) Records() []*domain.SalesRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

func (s *Store) Options() *domain.FilterOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.options
}

func (s *Store) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func buildFilterOptions(records []*domain.SalesRecord) *domain.FilterOptions {
	options := &domain.FilterOptions{}
	if len(records) == 0 {
		return options
	}

	stores := make(map[string]struct{})
	clientTypes := make(map[string]struct{})

	minDate := records[0].Date
	maxDate := records[0].Date

	for _, record := range records {
		stores[record.Store] = struct{}{}
		if record.ClientType != "" {
			clientTypes[record.ClientType] = struct{}{}
		}
		if record.Date.Before(minDate) {
			minDate = record.Date
		}
		if record.Date.After(maxDate) {
			maxDate = record.Date
		}
	}

	options.Stores = sortedKeys(stores)
	options.ClientTypes = sortedKeys(clientTypes)
	options.MinDate = &minDate
	options.MaxDate = &maxDate

	return options
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
