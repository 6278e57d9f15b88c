package comparing

import (
	"sort"
	"time"

	"github.com/vfg2006/forecast-venus-api/internal/domain"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/aggregating"
	"github.com/vfg2006/forecast-venus-api/pkg/utils"
)

// Comparator calcula as métricas comparativas do painel de performance
type Comparator interface {
	ChannelSummaries(records []*domain.SalesRecord) []domain.ChannelSummary
	StoreVolumes(records []*domain.SalesRecord) []domain.StoreVolume
	YoYByStore(records []*domain.SalesRecord, reference time.Time) []domain.StoreYoY
}

type Service struct{}

func NewService() Comparator {
	return &Service{}
}

type groupTotals struct {
	quantity int
	revenue  float64
	profit   float64
}

type storeChannelKey struct {
	store   string
	channel string
}

// ChannelSummaries agrupa os registros por loja×canal. O percentual de
// volume é calculado sobre o total da loja, de modo que os canais de uma
// mesma loja somem 100%. Médias de grupos sem quantidade ficam nulas e o
// front as exclui do gráfico.
func (s *Service) ChannelSummaries(records []*domain.SalesRecord) []domain.ChannelSummary {
	groups := make(map[storeChannelKey]*groupTotals)
	storeQuantity := make(map[string]int)

	for _, record := range records {
		key := storeChannelKey{store: record.Store, channel: record.Channel}
		group, ok := groups[key]
		if !ok {
			group = &groupTotals{}
			groups[key] = group
		}
		group.quantity += record.Quantity
		group.revenue += record.Revenue
		group.profit += record.Profit
		storeQuantity[record.Store] += record.Quantity
	}

	keys := make([]storeChannelKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].store != keys[j].store {
			return keys[i].store < keys[j].store
		}
		return keys[i].channel < keys[j].channel
	})

	summaries := make([]domain.ChannelSummary, 0, len(keys))
	for _, key := range keys {
		group := groups[key]

		summary := domain.ChannelSummary{
			Store:         key.store,
			Channel:       key.channel,
			Quantity:      group.quantity,
			Revenue:       group.revenue,
			Profit:        group.profit,
			VolumeShare:   share(group.quantity, storeQuantity[key.store]),
			AverageTicket: average(group.revenue, group.quantity),
			AverageProfit: average(group.profit, group.quantity),
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// StoreVolumes agrupa os registros por loja para os gráficos de dispersão
// volume × ticket médio e volume × lucro médio. Aqui o percentual de volume
// é sobre a quantidade total filtrada.
func (s *Service) StoreVolumes(records []*domain.SalesRecord) []domain.StoreVolume {
	groups := make(map[string]*groupTotals)
	var totalQuantity int

	for _, record := range records {
		group, ok := groups[record.Store]
		if !ok {
			group = &groupTotals{}
			groups[record.Store] = group
		}
		group.quantity += record.Quantity
		group.revenue += record.Revenue
		group.profit += record.Profit
		totalQuantity += record.Quantity
	}

	stores := make([]string, 0, len(groups))
	for store := range groups {
		stores = append(stores, store)
	}
	sort.Strings(stores)

	volumes := make([]domain.StoreVolume, 0, len(stores))
	for _, store := range stores {
		group := groups[store]

		volumes = append(volumes, domain.StoreVolume{
			Store:         store,
			Quantity:      group.quantity,
			VolumeShare:   share(group.quantity, totalQuantity),
			AverageTicket: average(group.revenue, group.quantity),
			AverageProfit: average(group.profit, group.quantity),
		})
	}

	return volumes
}

// YoYByStore compara, por loja, o acumulado do ano da referência com a
// janela equivalente do ano anterior para quantidade, receita e lucro.
// Lojas presentes em apenas um dos anos entram com o outro lado zerado.
func (s *Service) YoYByStore(records []*domain.SalesRecord, reference time.Time) []domain.StoreYoY {
	currentYear := reference.Year()
	priorReference := reference.AddDate(-1, 0, 0)

	current := make(map[string]*groupTotals)
	previous := make(map[string]*groupTotals)

	for _, record := range records {
		var bucket map[string]*groupTotals

		switch {
		case record.Date.Year() == currentYear && !record.Date.After(reference):
			bucket = current
		case record.Date.Year() == currentYear-1 && !record.Date.After(priorReference):
			bucket = previous
		default:
			continue
		}

		group, ok := bucket[record.Store]
		if !ok {
			group = &groupTotals{}
			bucket[record.Store] = group
		}
		group.quantity += record.Quantity
		group.revenue += record.Revenue
		group.profit += record.Profit
	}

	storeSet := make(map[string]struct{})
	for store := range current {
		storeSet[store] = struct{}{}
	}
	for store := range previous {
		storeSet[store] = struct{}{}
	}

	stores := make([]string, 0, len(storeSet))
	for store := range storeSet {
		stores = append(stores, store)
	}
	sort.Strings(stores)

	rows := make([]domain.StoreYoY, 0, len(stores))
	for _, store := range stores {
		cur := current[store]
		if cur == nil {
			cur = &groupTotals{}
		}
		prev := previous[store]
		if prev == nil {
			prev = &groupTotals{}
		}

		rows = append(rows, domain.StoreYoY{
			Store:    store,
			Quantity: aggregating.Compare(float64(cur.quantity), float64(prev.quantity)),
			Revenue:  aggregating.Compare(cur.revenue, prev.revenue),
			Profit:   aggregating.Compare(cur.profit, prev.profit),
		})
	}

	return rows
}

// share devolve o percentual de quantity sobre total, ou nulo quando o
// denominador é zero
func share(quantity, total int) *float64 {
	if total == 0 {
		return nil
	}
	value := utils.RoundWithTwoDecimalPlace(float64(quantity) / float64(total) * 100)
	return &value
}

// average devolve value/quantity arredondado, ou nulo quando o grupo não
// tem quantidade
func average(value float64, quantity int) *float64 {
	if quantity == 0 {
		return nil
	}
	avg := utils.RoundWithTwoDecimalPlace(value / float64(quantity))
	return &avg
}
