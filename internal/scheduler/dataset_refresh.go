package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/forecast-venus-api/internal/config"
)

// Refresher é o contrato do snapshot de dados que o agendador atualiza
type Refresher interface {
	Refresh(ctx context.Context) error
	Version() string
	LoadedAt() time.Time
}

// DatasetRefreshConfig representa a configuração do agendador de atualização do dataset
type DatasetRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// DatasetRefreshService gerencia o agendamento da recarga periódica do dataset
type DatasetRefreshService struct {
	scheduler              *gocron.Scheduler
	config                 DatasetRefreshConfig
	store                  Refresher
	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshError       string
}

// DatasetRefreshStatus é o estado corrente exposto pela API
type DatasetRefreshStatus struct {
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cron_schedule"`
	Running         bool       `json:"running"`
	SnapshotVersion string     `json:"snapshot_version"`
	SnapshotLoaded  *time.Time `json:"snapshot_loaded_at,omitempty"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	LastError       string     `json:"last_error,omitempty"`
}

// NewDatasetRefreshService cria uma nova instância do serviço de atualização do dataset
func NewDatasetRefreshService(store Refresher, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule:   appConfig.DatasetRefresh.CronSchedule,
		RefreshEnabled: appConfig.DatasetRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de atualização do dataset carregada")

	return &DatasetRefreshService{
		scheduler: scheduler,
		config:    refreshConfig,
		store:     store,
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Atualização periódica do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDataset(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara uma atualização imediata, fora do agendamento
func (s *DatasetRefreshService) RunNow(ctx context.Context) error {
	return s.refreshDataset(ctx)
}

// Status devolve o estado corrente do agendador e do snapshot
func (s *DatasetRefreshService) Status() DatasetRefreshStatus {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	status := DatasetRefreshStatus{
		Enabled:         s.config.RefreshEnabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         s.refreshRunning,
		SnapshotVersion: s.store.Version(),
		LastError:       s.lastRefreshError,
	}

	if loadedAt := s.store.LoadedAt(); !loadedAt.IsZero() {
		status.SnapshotLoaded = &loadedAt
	}
	if !s.lastRefreshStartedAt.IsZero() {
		status.LastStartedAt = &s.lastRefreshStartedAt
	}
	if !s.lastRefreshCompletedAt.IsZero() {
		status.LastCompletedAt = &s.lastRefreshCompletedAt
	}

	return status
}

func (s *DatasetRefreshService) refreshDataset(ctx context.Context) error {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização do dataset já em andamento, ignorando")
		return nil
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização do dataset")

	err := s.store.Refresh(ctx)

	s.refreshMutex.Lock()
	s.lastRefreshCompletedAt = time.Now()
	if err != nil {
		s.lastRefreshError = err.Error()
	} else {
		s.lastRefreshError = ""
	}
	s.refreshMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Falha na atualização do dataset, snapshot anterior mantido")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"version":  s.store.Version(),
		"duration": time.Since(s.lastRefreshStartedAt).String(),
	}).Info("Atualização do dataset concluída")

	return nil
}
