package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Nixtla         Nixtla         `mapstructure:",squash"`
	Forecast       Forecast       `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Dataset define a origem do conjunto de vendas. Source aceita
// "csv", "xlsx" ou "postgres".
type Dataset struct {
	Source string `mapstructure:"dataset_source"`
	Path   string `mapstructure:"dataset_path"`
	Sheet  string `mapstructure:"dataset_sheet"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Nixtla configura o serviço externo de forecasting. Quando desabilitado
// a aplicação usa o modelo local de suavização exponencial.
type Nixtla struct {
	URL         string `mapstructure:"nixtla_url"`
	AccessToken string `mapstructure:"nixtla_access_token"`
	Model       string `mapstructure:"nixtla_model"`
	Enabled     bool   `mapstructure:"nixtla_enabled"`
}

type Forecast struct {
	Horizon         int `mapstructure:"forecast_horizon"`
	MinObservations int `mapstructure:"forecast_min_observations"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

type Auth struct {
	Secret            string `mapstructure:"auth_secret"`
	TokenTTLHours     int    `mapstructure:"auth_token_ttl_hours"`
	AdminName         string `mapstructure:"auth_admin_name"`
	AdminEmail        string `mapstructure:"auth_admin_email"`
	AdminPasswordHash string `mapstructure:"auth_admin_password_hash"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASET_SOURCE", "csv")
	viper.SetDefault("DATASET_PATH", "dados/victor.csv")
	viper.SetDefault("DATASET_SHEET", "Vendas")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/forecast_venus")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("NIXTLA_URL", "https://api.nixtla.io/v1")
	viper.SetDefault("NIXTLA_ACCESS_TOKEN", "")
	viper.SetDefault("NIXTLA_MODEL", "timegpt-1")
	viper.SetDefault("NIXTLA_ENABLED", false)

	viper.SetDefault("FORECAST_HORIZON", 12)         // 12 semanas à frente
	viper.SetDefault("FORECAST_MIN_OBSERVATIONS", 8) // mínimo de pontos semanais

	viper.SetDefault("DATASET_REFRESH_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 12)
	viper.SetDefault("AUTH_ADMIN_NAME", "Administrador")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "admin@forecastvenus.com.br")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// O arquivo .env é opcional, já que usamos godotenv e variáveis de ambiente
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
