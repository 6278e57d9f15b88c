package nixtlaclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/forecast-venus-api/internal/config"
)

type Client interface {
	Forecast(ctx context.Context, params ForecastParams) (*ForecastResponse, error)
}

type NixtlaClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API da Nixtla.
func NewClient(cfg *config.Config) Client {
	return &NixtlaClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
