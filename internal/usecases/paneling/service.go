package paneling

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/forecast-venus-api/internal/domain"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/aggregating"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/comparing"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/filtering"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/forecasting"
	"github.com/vfg2006/forecast-venus-api/pkg/log"
)

const (
	noticeEmptySelection      = "Nenhum registro atende aos filtros selecionados."
	noticeInsufficientHistory = "Histórico insuficiente para gerar a projeção."
	noticeForecastUnavailable = "Projeção indisponível no momento."
)

// DatasetStore é a visão do snapshot de dados consumida pelos painéis
type DatasetStore interface {
	Records() []*domain.SalesRecord
	Options() *domain.FilterOptions
	Version() string
	LoadedAt() time.Time
}

// Composer monta as respostas dos painéis do dashboard a partir do snapshot
// corrente do dataset
type Composer interface {
	FilterOptions() *domain.FilterOptions
	MetricPanel(ctx context.Context, measure domain.Measure, selection *domain.FilterSelection, reference time.Time, horizon int) (*domain.MetricPanel, error)
	PerformancePanel(ctx context.Context, selection *domain.FilterSelection, reference time.Time) (*domain.PerformancePanel, error)
}

type Service struct {
	store      DatasetStore
	filterer   filtering.Filterer
	aggregator aggregating.Aggregator
	comparator comparing.Comparator
	projector  forecasting.Projector
}

func NewService(
	store DatasetStore,
	filterer filtering.Filterer,
	aggregator aggregating.Aggregator,
	comparator comparing.Comparator,
	projector forecasting.Projector,
) Composer {
	return &Service{
		store:      store,
		filterer:   filterer,
		aggregator: aggregator,
		comparator: comparator,
		projector:  projector,
	}
}

func (s *Service) FilterOptions() *domain.FilterOptions {
	options := s.store.Options()
	if options == nil {
		return &domain.FilterOptions{}
	}
	return options
}

// MetricPanel monta o painel de uma medida: indicadores acumulados, série
// semanal e projeção. Quando exatamente uma loja está selecionada a série é
// apenas a agregada; caso contrário o painel também traz uma série por loja.
// Falha da projeção degrada o painel para somente histórico, com aviso.
func (s *Service) MetricPanel(
	ctx context.Context,
	measure domain.Measure,
	selection *domain.FilterSelection,
	reference time.Time,
	horizon int,
) (*domain.MetricPanel, error) {
	records, err := s.filteredRecords(selection)
	if err != nil {
		return nil, err
	}

	panel := &domain.MetricPanel{
		Measure: measure,
		Info:    datasetInfo(records),
	}

	if len(records) == 0 {
		panel.Notices = append(panel.Notices, noticeEmptySelection)
		return panel, nil
	}

	if reference.IsZero() {
		reference = records[len(records)-1].Date
	}

	panel.Snapshot = s.aggregator.Snapshot(records, measure, reference)
	panel.Series = toSeriesPoints(s.aggregator.WeeklySeries(records, measure))

	if _, single := selection.SingleStore(); !single {
		panel.ByStore = s.aggregator.WeeklySeriesByStore(records, measure)
	}

	forecast, err := s.projector.Project(ctx, panel.Series, horizon)
	switch {
	case err == nil:
		panel.Forecast = forecast
	case errors.Is(err, forecasting.ErrInsufficientHistory):
		panel.Notices = append(panel.Notices, noticeInsufficientHistory)
	default:
		log.ForContext(ctx).WithError(err).Error("paneling: falha ao gerar projeção")
		panel.Notices = append(panel.Notices, noticeForecastUnavailable)
	}

	return panel, nil
}

// PerformancePanel monta o painel comparativo das lojas: distribuição por
// canal, volume × médias e variação anual por loja
func (s *Service) PerformancePanel(
	ctx context.Context,
	selection *domain.FilterSelection,
	reference time.Time,
) (*domain.PerformancePanel, error) {
	records, err := s.filteredRecords(selection)
	if err != nil {
		return nil, err
	}

	panel := &domain.PerformancePanel{
		Info: datasetInfo(records),
	}

	if len(records) == 0 {
		panel.Notices = append(panel.Notices, noticeEmptySelection)
		return panel, nil
	}

	if reference.IsZero() {
		reference = records[len(records)-1].Date
	}

	panel.Distribution = s.comparator.ChannelSummaries(records)
	panel.StoreVolumes = s.comparator.StoreVolumes(records)
	panel.YoYByStore = s.comparator.YoYByStore(records, reference)

	return panel, nil
}

func (s *Service) filteredRecords(selection *domain.FilterSelection) ([]*domain.SalesRecord, error) {
	records := s.store.Records()
	if records == nil {
		return nil, errors.New("dataset ainda não carregado")
	}

	return s.filterer.Apply(records, selection), nil
}

// datasetInfo resume o conjunto filtrado. Os registros chegam ordenados por
// data, então início e fim são as pontas do slice.
func datasetInfo(records []*domain.SalesRecord) domain.DatasetInfo {
	info := domain.DatasetInfo{Records: len(records)}
	if len(records) == 0 {
		return info
	}

	start := records[0].Date
	end := records[len(records)-1].Date
	info.StartDate = &start
	info.EndDate = &end

	stores := make(map[string]struct{})
	for _, record := range records {
		stores[record.Store] = struct{}{}
	}
	info.StoreCount = len(stores)

	return info
}

func toSeriesPoints(points []domain.WeeklyPoint) []domain.SeriesPoint {
	series := make([]domain.SeriesPoint, 0, len(points))
	for _, point := range points {
		series = append(series, domain.SeriesPoint{
			Date:  point.WeekStart,
			Value: point.Value,
		})
	}
	return series
}
