package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/forecast-venus-api/infrastructure/database/postgres"
	"github.com/vfg2006/forecast-venus-api/infrastructure/dataset"
	"github.com/vfg2006/forecast-venus-api/infrastructure/integrator/nixtla"
	"github.com/vfg2006/forecast-venus-api/infrastructure/integrator/nixtla/nixtlaclient"
	"github.com/vfg2006/forecast-venus-api/infrastructure/repository"
	"github.com/vfg2006/forecast-venus-api/internal/api"
	"github.com/vfg2006/forecast-venus-api/internal/config"
	"github.com/vfg2006/forecast-venus-api/internal/scheduler"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/aggregating"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/authenticating"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/comparing"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/filtering"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/forecasting"
	"github.com/vfg2006/forecast-venus-api/internal/usecases/paneling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader, cleanup := newLoader(ctx, cfg)
	defer cleanup()

	store := dataset.NewStore(loader)

	// A primeira carga é obrigatória: sem dataset não há painéis
	if err := store.Refresh(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset inicial")
	}

	authenticator := authenticating.NewService(cfg)

	forecastService := forecasting.NewService(newForecaster(cfg), cfg)

	panelService := paneling.NewService(
		store,
		filtering.NewService(),
		aggregating.NewService(),
		comparing.NewService(),
		forecastService,
	)

	refreshService := scheduler.NewDatasetRefreshService(store, cfg)

	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dataset")
	} else {
		logrus.Info("Agendador de atualização do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		panelService,
		authenticator,
		refreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newLoader seleciona a origem do dataset conforme a configuração
func newLoader(ctx context.Context, cfg *config.Config) (dataset.Loader, func()) {
	switch cfg.Dataset.Source {
	case "xlsx":
		return dataset.NewXLSXLoader(cfg.Dataset.Path, cfg.Dataset.Sheet), func() {}

	case "postgres":
		conn := pgconn(ctx, cfg.Database)
		return repository.NewSalesRecordRepository(conn), func() { conn.Close() }

	default:
		return dataset.NewCSVLoader(cfg.Dataset.Path), func() {}
	}
}

// newForecaster seleciona o modelo de projeção conforme a configuração
func newForecaster(cfg *config.Config) forecasting.Forecaster {
	if cfg.Nixtla.Enabled {
		logrus.WithField("model", cfg.Nixtla.Model).Info("Projeções via API da Nixtla")
		return nixtla.NewIntegrator(cfg, nixtlaclient.NewClient(cfg))
	}

	logrus.Info("Projeções via modelo local de suavização exponencial")
	return forecasting.NewHoltModel()
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
